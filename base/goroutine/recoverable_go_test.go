package goroutine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/x-xyz/nftmarket/base/log"
)

func TestRecoverableGo(t *testing.T) {
	res := []string{}

	<-RecoverableGo(
		func() {
			res = append(res, "run task")
			panic("panic")
		},
		WithBeforeStart(func() {
			res = append(res, "before start")
		}),
		WithAfterEnded(func() {
			res = append(res, "after ended")
		}),
		WithAfterRecovered(func(p interface{}, stack []byte) {
			res = append(res, "after recovered")
			res = append(res, p.(string))
		}),
	)

	assert.Equal(t, []string{
		"before start",
		"run task",
		"after ended",
		"after recovered",
		"panic",
	}, res)
}

func TestRecoverableGoNoPanic(t *testing.T) {
	done := false
	p, ok := <-RecoverableGo(func() { done = true })
	assert.Nil(t, p)
	assert.False(t, ok)
	assert.True(t, done)
}

func TestRecoverableGoWithLogger(t *testing.T) {
	recovered := false
	ev := <-RecoverableGo(
		func() { panic("flow exploded") },
		WithLogger(log.Log().WithField("flowId", "f1")),
		WithAfterRecovered(func(p interface{}, stack []byte) {
			recovered = true
			assert.NotEmpty(t, stack)
		}),
	)
	assert.True(t, recovered)
	assert.Equal(t, "flow exploded", ev.Panic)
}
