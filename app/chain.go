package app

import (
	"reflect"

	"github.com/iov-one/htlc"
)

// Decorators is an ordered stack of decorators waiting for the handler they
// wrap.
type Decorators struct {
	stack []htlc.Decorator
}

// ChainDecorators starts a stack. The first decorator runs first. Nil
// decorators are skipped so that optional ones can be passed unconditionally.
//
//	app.ChainDecorators(
//		app.NewLogging(),
//		app.NewRecovery(),
//		sigs.NewDecorator(),
//		cash.NewFundsDecorator(auth, bank),
//	).WithHandler(router)
func ChainDecorators(ds ...htlc.Decorator) Decorators {
	return Decorators{}.Chain(ds...)
}

// Chain returns a new stack extended with ds. The receiver is not modified,
// so a common base can be extended in different ways.
func (d Decorators) Chain(ds ...htlc.Decorator) Decorators {
	stack := make([]htlc.Decorator, 0, len(d.stack)+len(ds))
	stack = append(stack, d.stack...)
	for _, dec := range ds {
		if !isNilDecorator(dec) {
			stack = append(stack, dec)
		}
	}
	return Decorators{stack: stack}
}

func isNilDecorator(d htlc.Decorator) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// WithHandler closes the stack with h.
func (d Decorators) WithHandler(h htlc.Handler) htlc.Handler {
	for i := len(d.stack) - 1; i >= 0; i-- {
		h = step{dec: d.stack[i], next: h}
	}
	return h
}

// step runs one decorator in front of the rest of the stack.
type step struct {
	dec  htlc.Decorator
	next htlc.Handler
}

var _ htlc.Handler = step{}

func (s step) Check(ctx htlc.Context, db htlc.KVStore, tx htlc.Tx) (*htlc.CheckResult, error) {
	return s.dec.Check(ctx, db, tx, s.next)
}

func (s step) Deliver(ctx htlc.Context, db htlc.KVStore, tx htlc.Tx) (*htlc.DeliverResult, error) {
	return s.dec.Deliver(ctx, db, tx, s.next)
}
