package ctx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type testsuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestWithValues() {
	c := WithValues(Background(), map[string]interface{}{
		"requestID": "r-1",
		"caller":    "0xabc",
	})
	ts.Equal("r-1", c.Value("requestID"))
	ts.Equal("0xabc", c.Value("caller"))
}

func (ts *testsuite) TestWithTimeout() {
	c, cancel := WithTimeout(Background(), 10*time.Millisecond)
	defer cancel()

	select {
	case <-c.Done():
	case <-time.After(time.Second):
		ts.Fail("deadline not reached")
	}
	ts.Equal(context.DeadlineExceeded, c.Err())
}

func (ts *testsuite) TestDetach() {
	parent, cancel := WithCancel(WithValue(Background(), "requestID", "r-2"))
	cancel()
	ts.Error(parent.Err())

	detached := Detach(parent)
	ts.NoError(detached.Err())
	ts.Nil(detached.Value("requestID"))
	ts.Equal(parent.Logger, detached.Logger)
}

func (ts *testsuite) TestFrom() {
	parent := WithValue(Background(), "requestID", "r-3")
	c := From(context.WithValue(context.Background(), "k", "v"), parent.Logger)
	ts.Equal("v", c.Value("k"))
	ts.Equal(parent.Logger, c.Logger)
}
