package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTag(t *testing.T) {
	assert.Nil(t, parseTag(nil))
	assert.Equal(t, []string{"method:GET", "path:/tokens"}, parseTag([]string{"method", "GET", "path", "/tokens"}))
}

func TestBumpOddTagsDoesNotPanic(t *testing.T) {
	m := New("test")
	assert.NotPanics(t, func() {
		m.BumpSum("odd", 1, "only-key")
		m.BumpTime("odd.time", "only-key").End()
	})
}

func TestBumpWithoutAgent(t *testing.T) {
	m := New("test")
	assert.NotPanics(t, func() {
		m.BumpAvg("avg", 1.5, "k", "v")
		m.BumpHistogram("hist", 2, "k", "v")
		m.BumpTime("time", "k", "v").End()
	})
	_, ok := client().(*LogClient)
	assert.True(t, ok)
}
