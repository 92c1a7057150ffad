package sigs

import (
	"context"
	"testing"

	"github.com/iov-one/htlc"
	"github.com/iov-one/htlc/errors"
	"github.com/iov-one/htlc/store"
	"github.com/iov-one/htlc/weavetest"
	"github.com/iov-one/htlc/weavetest/assert"
)

// signersHandler records the signers seen by the handler.
type signersHandler struct {
	weavetest.Handler
	seen []htlc.Condition
}

func (h *signersHandler) Check(ctx htlc.Context, db htlc.KVStore, tx htlc.Tx) (*htlc.CheckResult, error) {
	h.seen = Authenticate{}.GetConditions(ctx)
	return h.Handler.Check(ctx, db, tx)
}

func (h *signersHandler) Deliver(ctx htlc.Context, db htlc.KVStore, tx htlc.Tx) (*htlc.DeliverResult, error) {
	h.seen = Authenticate{}.GetConditions(ctx)
	return h.Handler.Deliver(ctx, db, tx)
}

func TestDecorator(t *testing.T) {
	alice := Signer("alice")
	bob := weavetest.NewCondition()

	cases := map[string]struct {
		decorator   Decorator
		tx          htlc.Tx
		wantErr     *errors.Error
		wantSigners []htlc.Condition
	}{
		"single signer": {
			decorator:   NewDecorator(),
			tx:          &weavetest.Tx{Signers: []htlc.Condition{alice}},
			wantSigners: []htlc.Condition{alice},
		},
		"many signers keep the order": {
			decorator:   NewDecorator(),
			tx:          &weavetest.Tx{Signers: []htlc.Condition{bob, alice}},
			wantSigners: []htlc.Condition{bob, alice},
		},
		"missing signers": {
			decorator: NewDecorator(),
			tx:        &weavetest.Tx{},
			wantErr:   errors.ErrUnauthorized,
		},
		"missing signers allowed": {
			decorator: NewDecorator().AllowMissingSigs(),
			tx:        &weavetest.Tx{},
		},
		"malformed signer": {
			decorator: NewDecorator(),
			tx:        &weavetest.Tx{Signers: []htlc.Condition{htlc.Condition("bad")}},
			wantErr:   errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()

			var h signersHandler
			_, err := tc.decorator.Check(context.Background(), db, tc.tx, &h)
			assert.IsErr(t, tc.wantErr, err)
			assert.Equal(t, tc.wantSigners, h.seen)

			h.seen = nil
			_, err = tc.decorator.Deliver(context.Background(), db, tc.tx, &h)
			assert.IsErr(t, tc.wantErr, err)
			assert.Equal(t, tc.wantSigners, h.seen)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	alice := Signer("alice")
	ctx := withSigners(context.Background(), []htlc.Condition{alice})

	var auth Authenticate
	assert.Equal(t, true, auth.HasAddress(ctx, alice.Address()))
	assert.Equal(t, false, auth.HasAddress(ctx, Signer("bob").Address()))
	assert.Equal(t, false, auth.HasAddress(context.Background(), alice.Address()))
	assert.Nil(t, auth.GetConditions(context.Background()))
}
