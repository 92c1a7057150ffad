package cash

import (
	"context"

	"github.com/iov-one/htlc"
	"github.com/iov-one/htlc/coin"
)

type contextKey int // local to the cash module

const (
	contextKeyFunds contextKey = iota
)

// withFunds is a private method, as only this module
// attaches funds
func withFunds(ctx htlc.Context, funds coin.Coins) htlc.Context {
	return context.WithValue(ctx, contextKeyFunds, funds)
}

// Funds returns the coins that were attached to the current transaction
// and moved into the message's funds destination. It returns nil if no
// funds were attached.
func Funds(ctx htlc.Context) coin.Coins {
	val, _ := ctx.Value(contextKeyFunds).(coin.Coins)
	return val
}
