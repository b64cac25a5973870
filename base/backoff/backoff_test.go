package backoff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExponential(t *testing.T) {
	b := NewExponential(time.Second, 5*time.Second, 0)
	expected := []time.Duration{time.Second, 2 * time.Second, 4 * time.Second, 5 * time.Second, 5 * time.Second}
	for i, e := range expected {
		assert.Equal(t, e, b.Next(), i)
	}
	assert.Equal(t, len(expected), b.Attempts())

	b.Reset()
	assert.Equal(t, time.Second, b.Next())
}

func TestJitter(t *testing.T) {
	b := NewExponential(time.Second, 0, 100*time.Millisecond)
	for i := 0; i < 3; i++ {
		base := time.Second << uint(i)
		d := b.Next()
		assert.GreaterOrEqual(t, int64(d), int64(base))
		assert.Less(t, int64(d), int64(base+100*time.Millisecond))
	}
}

func TestWaitCanceled(t *testing.T) {
	b := NewExponential(time.Hour, 0, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Equal(t, context.Canceled, b.Wait(ctx))

	b = NewExponential(time.Millisecond, 0, 0)
	assert.NoError(t, b.Wait(context.Background()))
}
