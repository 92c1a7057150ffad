package weavetest

import "github.com/iov-one/htlc"

// calls counts the Check and Deliver invocations of a mock.
type calls struct {
	check   int
	deliver int
}

func (c *calls) CheckCallCount() int   { return c.check }
func (c *calls) DeliverCallCount() int { return c.deliver }
func (c *calls) CallCount() int        { return c.check + c.deliver }

// Handler is a htlc.Handler returning preset results. When CheckErr or
// DeliverErr is set, the corresponding method fails with it.
type Handler struct {
	calls

	CheckResult htlc.CheckResult
	CheckErr    error

	DeliverResult htlc.DeliverResult
	DeliverErr    error
}

var _ htlc.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx htlc.Context, db htlc.KVStore, tx htlc.Tx) (*htlc.CheckResult, error) {
	h.check++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx htlc.Context, db htlc.KVStore, tx htlc.Tx) (*htlc.DeliverResult, error) {
	h.deliver++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

// Decorator is a htlc.Decorator that calls the next handler unless
// CheckErr or DeliverErr is set, in which case it fails without calling it.
type Decorator struct {
	calls

	CheckErr   error
	DeliverErr error
}

var _ htlc.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx htlc.Context, db htlc.KVStore, tx htlc.Tx, next htlc.Checker) (*htlc.CheckResult, error) {
	d.check++
	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx htlc.Context, db htlc.KVStore, tx htlc.Tx, next htlc.Deliverer) (*htlc.DeliverResult, error) {
	d.deliver++
	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

// Decorate returns a handler that passes every call through d before
// reaching h.
func Decorate(h htlc.Handler, d htlc.Decorator) htlc.Handler {
	return decorated{h: h, d: d}
}

type decorated struct {
	h htlc.Handler
	d htlc.Decorator
}

func (x decorated) Check(ctx htlc.Context, db htlc.KVStore, tx htlc.Tx) (*htlc.CheckResult, error) {
	return x.d.Check(ctx, db, tx, x.h)
}

func (x decorated) Deliver(ctx htlc.Context, db htlc.KVStore, tx htlc.Tx) (*htlc.DeliverResult, error) {
	return x.d.Deliver(ctx, db, tx, x.h)
}
