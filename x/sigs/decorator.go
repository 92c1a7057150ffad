/*
Package sigs provides basic authentication middleware. It records the
conditions that signed the transaction in the context, so that handlers can
authorize the caller using the Authenticate implementation.

Signature cryptography is verified by the host before a transaction reaches
the application. This package trusts the signers it is given.
*/
package sigs

import (
	"github.com/iov-one/htlc"
	"github.com/iov-one/htlc/errors"
)

// SignedTx represents a transaction that declares its signers.
type SignedTx interface {
	htlc.Tx

	// GetSigners returns the conditions that authorized this
	// transaction. The first one is the main signer.
	GetSigners() []htlc.Condition
}

//----------------- Decorator ----------------
//
// This is just a binding from the functionality into the
// Application stack, not much business logic here.

// Decorator validates the signers and adds them to the context
type Decorator struct {
	allowMissingSigs bool
}

var _ htlc.Decorator = Decorator{}

// NewDecorator returns a default authentication decorator,
// which requires at least one signer to be present
func NewDecorator() Decorator {
	return Decorator{
		allowMissingSigs: false,
	}
}

// AllowMissingSigs allows us to pass along items with no signatures
func (d Decorator) AllowMissingSigs() Decorator {
	d.allowMissingSigs = true
	return d
}

// Check records signers before calling down the stack.
func (d Decorator) Check(ctx htlc.Context, store htlc.KVStore, tx htlc.Tx, next htlc.Checker) (*htlc.CheckResult, error) {
	ctx, err := d.withTxSigners(ctx, tx)
	if err != nil {
		return nil, err
	}
	return next.Check(ctx, store, tx)
}

// Deliver records signers before calling down the stack.
func (d Decorator) Deliver(ctx htlc.Context, store htlc.KVStore, tx htlc.Tx, next htlc.Deliverer) (*htlc.DeliverResult, error) {
	ctx, err := d.withTxSigners(ctx, tx)
	if err != nil {
		return nil, err
	}
	return next.Deliver(ctx, store, tx)
}

func (d Decorator) withTxSigners(ctx htlc.Context, tx htlc.Tx) (htlc.Context, error) {
	var signers []htlc.Condition
	if stx, ok := tx.(SignedTx); ok {
		signers = stx.GetSigners()
	}
	if len(signers) == 0 {
		if d.allowMissingSigs {
			return ctx, nil
		}
		return nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	for i, s := range signers {
		if err := s.Validate(); err != nil {
			return nil, errors.Wrapf(err, "signer %d", i)
		}
	}
	return withSigners(ctx, signers), nil
}
