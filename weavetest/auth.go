package weavetest

import (
	"context"
	"fmt"

	"github.com/iov-one/htlc"
)

// Auth authenticates a fixed set of conditions regardless of the context.
// Signer, when set, is reported first and so becomes the main signer.
type Auth struct {
	Signer  htlc.Condition
	Signers []htlc.Condition
}

func (a *Auth) GetConditions(htlc.Context) []htlc.Condition {
	if a.Signer == nil {
		return a.Signers
	}
	return append([]htlc.Condition{a.Signer}, a.Signers...)
}

func (a *Auth) HasAddress(ctx htlc.Context, addr htlc.Address) bool {
	return hasAddress(a.GetConditions(ctx), addr)
}

// CtxAuth authenticates the conditions stored in the context under Key.
// Two instances with different keys never see each other's conditions.
type CtxAuth struct {
	Key string
}

// SetConditions returns a context authenticating given conditions.
func (a *CtxAuth) SetConditions(ctx htlc.Context, conds ...htlc.Condition) htlc.Context {
	return context.WithValue(ctx, a.Key, conds)
}

func (a *CtxAuth) GetConditions(ctx htlc.Context) []htlc.Condition {
	switch val := ctx.Value(a.Key).(type) {
	case nil:
		return nil
	case []htlc.Condition:
		return val
	default:
		panic(fmt.Sprintf("context key %q holds %T", a.Key, val))
	}
}

func (a *CtxAuth) HasAddress(ctx htlc.Context, addr htlc.Address) bool {
	return hasAddress(a.GetConditions(ctx), addr)
}

func hasAddress(conds []htlc.Condition, addr htlc.Address) bool {
	for _, c := range conds {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
