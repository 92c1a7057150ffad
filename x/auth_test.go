package x

import (
	"context"
	"testing"

	"github.com/iov-one/htlc"
	"github.com/iov-one/htlc/errors"
	"github.com/iov-one/htlc/weavetest"
	"github.com/iov-one/htlc/weavetest/assert"
)

func TestMainSigner(t *testing.T) {
	a := weavetest.NewCondition()
	b := weavetest.NewCondition()

	ctx1 := &weavetest.CtxAuth{Key: "foo"}
	ctx2 := &weavetest.CtxAuth{Key: "bar"}

	cases := map[string]struct {
		ctx        htlc.Context
		auth       Authenticator
		mainSigner htlc.Condition
		wantErr    *errors.Error
	}{
		"empty context": {
			ctx:     context.Background(),
			auth:    &weavetest.Auth{},
			wantErr: errors.ErrUnauthorized,
		},
		"single signer": {
			ctx:        context.Background(),
			auth:       &weavetest.Auth{Signer: a},
			mainSigner: a,
		},
		"first of many signers": {
			ctx:        ctx1.SetConditions(context.Background(), b, a),
			auth:       ctx1,
			mainSigner: b,
		},
		"ctxAuth with different key sees nothing": {
			ctx:     ctx1.SetConditions(context.Background(), a, b),
			auth:    ctx2,
			wantErr: errors.ErrUnauthorized,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.mainSigner, MainSigner(tc.ctx, tc.auth))

			addr, err := MainSignerAddress(tc.ctx, tc.auth)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.mainSigner != nil {
				assert.Equal(t, tc.mainSigner.Address(), addr)
				if !tc.auth.HasAddress(tc.ctx, addr) {
					t.Fatal("main signer address not found in context")
				}
			}
		})
	}
}
