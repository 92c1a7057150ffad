package app

import (
	"context"
	"testing"

	"github.com/iov-one/htlc"
	"github.com/iov-one/htlc/errors"
	"github.com/iov-one/htlc/weavetest"
	"github.com/iov-one/htlc/weavetest/assert"
)

// panicDecorator panics on deliver.
type panicDecorator struct{}

func (panicDecorator) Check(ctx htlc.Context, db htlc.KVStore, tx htlc.Tx, next htlc.Checker) (*htlc.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

func (panicDecorator) Deliver(htlc.Context, htlc.KVStore, htlc.Tx, htlc.Deliverer) (*htlc.DeliverResult, error) {
	panic("boom")
}

func TestChain(t *testing.T) {
	c1 := &weavetest.Decorator{}
	c2 := &weavetest.Decorator{}
	var nilDecorator *weavetest.Decorator
	h := &weavetest.Handler{}

	stack := ChainDecorators(
		c1,
		NewLogging(),
		nilDecorator,
		NewRecovery(),
		c2,
		panicDecorator{},
	).WithHandler(h)

	ctx := context.Background()

	_, err := stack.Check(ctx, nil, nil)
	assert.Nil(t, err)
	assert.Equal(t, 1, c1.CheckCallCount())
	assert.Equal(t, 1, c2.CheckCallCount())
	assert.Equal(t, 1, h.CheckCallCount())

	// the panic is recovered and does not reach the handler
	_, err = stack.Deliver(ctx, nil, nil)
	assert.IsErr(t, errors.ErrPanic, err)
	assert.Equal(t, 1, c1.DeliverCallCount())
	assert.Equal(t, 1, c2.DeliverCallCount())
	assert.Equal(t, 0, h.DeliverCallCount())
}

func TestChainDoesNotShareBackingArray(t *testing.T) {
	base := ChainDecorators(&weavetest.Decorator{}, &weavetest.Decorator{})
	a := &weavetest.Decorator{}
	b := &weavetest.Decorator{}

	ha := base.Chain(a).WithHandler(&weavetest.Handler{})
	hb := base.Chain(b).WithHandler(&weavetest.Handler{})

	_, err := ha.Deliver(context.Background(), nil, nil)
	assert.Nil(t, err)
	_, err = hb.Deliver(context.Background(), nil, nil)
	assert.Nil(t, err)
	assert.Equal(t, 1, a.DeliverCallCount())
	assert.Equal(t, 1, b.DeliverCallCount())
}
