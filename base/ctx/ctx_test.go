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
	bg := Background()
	ctx := WithValues(bg, map[string]interface{}{
		"flowId": "abc",
		"route":  "/nfts",
	})
	ts.Equal("abc", ctx.Value("flowId"))
	ts.Equal("/nfts", ctx.Value("route"))
}

func (ts *testsuite) TestFromKeepsCtx() {
	c := WithValue(Background(), "requestID", "r1")
	ts.Equal("r1", From(c).Value("requestID"))

	plain := context.WithValue(context.Background(), "k", "v")
	ts.Equal("v", From(plain).Value("k"))
}

func (ts *testsuite) TestTimeout() {
	ctx, cancel := WithTimeout(Background(), 10*time.Millisecond)
	defer cancel()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		ts.Fail("timeout not fired")
	}
	ts.Equal(context.DeadlineExceeded, ctx.Err())
}

func (ts *testsuite) TestDetach() {
	parent, cancel := WithCancel(WithValue(Background(), "flowId", "f1"))
	d := Detach(parent)
	cancel()

	ts.Error(parent.Err())
	ts.NoError(d.Err())
	ts.Nil(d.Done())
	ts.Equal("f1", d.Value("flowId"))

	child, cancelChild := WithTimeout(d, 5*time.Millisecond)
	defer cancelChild()
	<-child.Done()
	ts.Equal(context.DeadlineExceeded, child.Err())
}
