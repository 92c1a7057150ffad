package cash

import (
	"github.com/iov-one/htlc"
	"github.com/iov-one/htlc/coin"
	"github.com/iov-one/htlc/errors"
	"github.com/iov-one/htlc/x"
)

// FundedTx is a transaction that carries coins to be attached to its
// message.
type FundedTx interface {
	htlc.Tx

	// GetFunds returns the coins paid by the main signer.
	GetFunds() coin.Coins
}

// FundsReceiver is implemented by messages that accept attached funds.
type FundsReceiver interface {
	// FundsDestination returns the account that receives the funds
	// attached to the transaction.
	FundsDestination() (htlc.Address, error)
}

//----------------- FundsDecorator ----------------
//
// This is just a binding from the functionality into the
// Application stack, not much business logic here.

// FundsDecorator moves the funds attached to a transaction from the main
// signer to the destination declared by the message, and exposes them to
// the handler through the context.
type FundsDecorator struct {
	auth x.Authenticator
	ctrl Controller
}

var _ htlc.Decorator = FundsDecorator{}

// NewFundsDecorator returns a FundsDecorator paying from the main signer
// of the transaction.
func NewFundsDecorator(auth x.Authenticator, ctrl Controller) FundsDecorator {
	return FundsDecorator{
		auth: auth,
		ctrl: ctrl,
	}
}

// Check moves the funds before calling down the stack
func (d FundsDecorator) Check(ctx htlc.Context, store htlc.KVStore, tx htlc.Tx, next htlc.Checker) (*htlc.CheckResult, error) {
	ctx, err := d.attach(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	return next.Check(ctx, store, tx)
}

// Deliver moves the funds before calling down the stack
func (d FundsDecorator) Deliver(ctx htlc.Context, store htlc.KVStore, tx htlc.Tx, next htlc.Deliverer) (*htlc.DeliverResult, error) {
	ctx, err := d.attach(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	return next.Deliver(ctx, store, tx)
}

func (d FundsDecorator) attach(ctx htlc.Context, store htlc.KVStore, tx htlc.Tx) (htlc.Context, error) {
	ftx, ok := tx.(FundedTx)
	if !ok {
		return ctx, nil
	}
	funds, err := coin.NormalizeCoins(ftx.GetFunds())
	if err != nil {
		return nil, errors.Wrap(err, "funds")
	}
	if funds.IsEmpty() {
		return ctx, nil
	}
	if err := funds.Validate(); err != nil {
		return nil, errors.Wrap(err, "funds")
	}

	payer, err := x.MainSignerAddress(ctx, d.auth)
	if err != nil {
		return nil, errors.Wrap(err, "funds payer")
	}

	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot get transaction message")
	}
	receiver, ok := msg.(FundsReceiver)
	if !ok {
		return nil, errors.Wrapf(errors.ErrMsg, "%T does not accept funds", msg)
	}
	dest, err := receiver.FundsDestination()
	if err != nil {
		return nil, errors.Wrap(err, "funds destination")
	}

	for _, c := range funds {
		if err := d.ctrl.MoveCoins(store, payer, dest, *c); err != nil {
			return nil, errors.Wrapf(err, "attach %s", c)
		}
	}
	return withFunds(ctx, funds), nil
}
