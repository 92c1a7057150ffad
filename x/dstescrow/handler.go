package dstescrow

import (
	"github.com/iov-one/htlc"
	"github.com/iov-one/htlc/errors"
	"github.com/iov-one/htlc/x"
	"github.com/iov-one/htlc/x/cash"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r htlc.Registry, auth x.Authenticator, bank cash.Controller) {
	r.Handle(pathInstantiate, InstantiateHandler{auth: auth})
	r.Handle(pathWithdraw, WithdrawHandler{auth: auth, bank: bank})
	r.Handle(pathPublicWithdraw, PublicWithdrawHandler{auth: auth, bank: bank})
	r.Handle(pathCancel, CancelHandler{auth: auth, bank: bank})
	r.Handle(pathRescue, RescueHandler{auth: auth, bank: bank})
}

// blockNow returns the time of the block being executed.
func blockNow(ctx htlc.Context) (htlc.UnixTime, error) {
	t, ok := htlc.BlockTime(ctx)
	if !ok {
		return 0, errors.Wrap(errors.ErrHuman, "block time not present in context")
	}
	return htlc.AsUnixTime(t), nil
}

// settle pays the disbursement out of the escrow account.
func settle(db htlc.KVStore, bank cash.Controller, escrow htlc.Address, d *Disbursement) error {
	if err := bank.MoveCoins(db, escrow, d.Recipient, d.Amount); err != nil {
		return errors.Wrapf(err, "disburse %s", d)
	}
	return nil
}

//---- instantiate

// InstantiateHandler initializes an escrow with the funds attached to the
// transaction.
type InstantiateHandler struct {
	auth x.Authenticator
}

var _ htlc.Handler = InstantiateHandler{}

// Check verifies the message and that the escrow does not exist yet.
func (h InstantiateHandler) Check(ctx htlc.Context, db htlc.KVStore, tx htlc.Tx) (*htlc.CheckResult, error) {
	msg, addr, _, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if conf.StrictTimelocks {
		if err := msg.Immutables.Timelocks.CheckOrder(); err != nil {
			return nil, err
		}
	}
	return &htlc.CheckResult{Data: addr}, nil
}

// Deliver stores the escrow. The funds were already moved to the escrow
// address by the cash.FundsDecorator.
func (h InstantiateHandler) Deliver(ctx htlc.Context, db htlc.KVStore, tx htlc.Tx) (*htlc.DeliverResult, error) {
	msg, addr, resolver, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	now, err := blockNow(ctx)
	if err != nil {
		return nil, err
	}
	delay, err := DecodeUint256(msg.RescueDelay)
	if err != nil {
		return nil, err
	}

	escrow := NewEscrow(db, addr, conf)
	if err := escrow.Initialize(cash.Funds(ctx), delay, msg.Immutables, now); err != nil {
		return nil, err
	}

	height, _ := htlc.GetHeight(ctx)
	htlc.GetLogger(ctx).Info("escrow created",
		"height", height,
		"escrow", addr,
		"resolver", resolver,
		"taker", msg.Immutables.Taker,
		"amount", msg.Immutables.Token.String())
	return &htlc.DeliverResult{Data: addr}, nil
}

// validate returns the message, the escrow address and the resolver
// depositing the funds.
func (h InstantiateHandler) validate(ctx htlc.Context, db htlc.KVStore, tx htlc.Tx) (*InstantiateMsg, htlc.Address, htlc.Address, error) {
	var msg InstantiateMsg
	if err := htlc.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	resolver, err := x.MainSignerAddress(ctx, h.auth)
	if err != nil {
		return nil, nil, nil, err
	}
	addr, err := msg.Immutables.Address()
	if err != nil {
		return nil, nil, nil, err
	}
	switch ok, err := NewStore(db, addr).IsInitialized(); {
	case err != nil:
		return nil, nil, nil, err
	case ok:
		return nil, nil, nil, errors.Wrapf(ErrAlreadyInitialized, "escrow %s", addr)
	}
	return &msg, addr, resolver, nil
}

//---- withdraw

// WithdrawHandler releases an escrow to the taker.
type WithdrawHandler struct {
	auth x.Authenticator
	bank cash.Controller
}

var _ htlc.Handler = WithdrawHandler{}

// Check verifies the message is well formed and signed.
func (h WithdrawHandler) Check(ctx htlc.Context, db htlc.KVStore, tx htlc.Tx) (*htlc.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &htlc.CheckResult{}, nil
}

// Deliver runs the withdrawal and pays the token to the taker.
func (h WithdrawHandler) Deliver(ctx htlc.Context, db htlc.KVStore, tx htlc.Tx) (*htlc.DeliverResult, error) {
	msg, caller, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := blockNow(ctx)
	if err != nil {
		return nil, err
	}
	d, err := NewEscrow(db, msg.Escrow, conf).Withdraw(caller, now, msg.Secret)
	if err != nil {
		return nil, err
	}
	if err := settle(db, h.bank, msg.Escrow, d); err != nil {
		return nil, err
	}
	htlc.GetLogger(ctx).Info("escrow withdrawn",
		"escrow", msg.Escrow,
		"taker", d.Recipient,
		"amount", d.Amount.String())
	return &htlc.DeliverResult{Data: msg.Escrow, Log: d.String()}, nil
}

func (h WithdrawHandler) validate(ctx htlc.Context, db htlc.KVStore, tx htlc.Tx) (*WithdrawMsg, htlc.Address, Configuration, error) {
	var msg WithdrawMsg
	if err := htlc.LoadMsg(tx, &msg); err != nil {
		return nil, nil, Configuration{}, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, conf, err
	}
	caller, err := x.MainSignerAddress(ctx, h.auth)
	if err != nil {
		return nil, nil, conf, err
	}
	return &msg, caller, conf, nil
}

//---- public withdraw

// PublicWithdrawHandler releases an escrow to the taker on behalf of anyone
// knowing the secret.
type PublicWithdrawHandler struct {
	auth x.Authenticator
	bank cash.Controller
}

var _ htlc.Handler = PublicWithdrawHandler{}

// Check verifies the message is well formed and signed.
func (h PublicWithdrawHandler) Check(ctx htlc.Context, db htlc.KVStore, tx htlc.Tx) (*htlc.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &htlc.CheckResult{}, nil
}

// Deliver runs the public withdrawal and pays the token to the taker.
func (h PublicWithdrawHandler) Deliver(ctx htlc.Context, db htlc.KVStore, tx htlc.Tx) (*htlc.DeliverResult, error) {
	msg, caller, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := blockNow(ctx)
	if err != nil {
		return nil, err
	}
	d, err := NewEscrow(db, msg.Escrow, conf).PublicWithdraw(caller, now, msg.Secret)
	if err != nil {
		return nil, err
	}
	if err := settle(db, h.bank, msg.Escrow, d); err != nil {
		return nil, err
	}
	htlc.GetLogger(ctx).Info("escrow withdrawn publicly",
		"escrow", msg.Escrow,
		"caller", caller,
		"taker", d.Recipient,
		"amount", d.Amount.String())
	return &htlc.DeliverResult{Data: msg.Escrow, Log: d.String()}, nil
}

func (h PublicWithdrawHandler) validate(ctx htlc.Context, db htlc.KVStore, tx htlc.Tx) (*PublicWithdrawMsg, htlc.Address, Configuration, error) {
	var msg PublicWithdrawMsg
	if err := htlc.LoadMsg(tx, &msg); err != nil {
		return nil, nil, Configuration{}, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, conf, err
	}
	caller, err := x.MainSignerAddress(ctx, h.auth)
	if err != nil {
		return nil, nil, conf, err
	}
	return &msg, caller, conf, nil
}

//---- cancel

// CancelHandler returns an escrow to the maker.
type CancelHandler struct {
	auth x.Authenticator
	bank cash.Controller
}

var _ htlc.Handler = CancelHandler{}

// Check verifies the message is well formed and signed.
func (h CancelHandler) Check(ctx htlc.Context, db htlc.KVStore, tx htlc.Tx) (*htlc.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &htlc.CheckResult{}, nil
}

// Deliver cancels the escrow and pays the token back to the maker.
func (h CancelHandler) Deliver(ctx htlc.Context, db htlc.KVStore, tx htlc.Tx) (*htlc.DeliverResult, error) {
	msg, caller, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	now, err := blockNow(ctx)
	if err != nil {
		return nil, err
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	d, err := NewEscrow(db, msg.Escrow, conf).Cancel(caller, now)
	if err != nil {
		return nil, err
	}
	if err := settle(db, h.bank, msg.Escrow, d); err != nil {
		return nil, err
	}
	htlc.GetLogger(ctx).Info("escrow cancelled",
		"escrow", msg.Escrow,
		"maker", d.Recipient,
		"amount", d.Amount.String())
	return &htlc.DeliverResult{Data: msg.Escrow, Log: d.String()}, nil
}

func (h CancelHandler) validate(ctx htlc.Context, tx htlc.Tx) (*CancelMsg, htlc.Address, error) {
	var msg CancelMsg
	if err := htlc.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	caller, err := x.MainSignerAddress(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	return &msg, caller, nil
}

//---- rescue

// RescueHandler sends coins stuck at the escrow address to the taker.
type RescueHandler struct {
	auth x.Authenticator
	bank cash.Controller
}

var _ htlc.Handler = RescueHandler{}

// Check verifies the message is well formed and signed.
func (h RescueHandler) Check(ctx htlc.Context, db htlc.KVStore, tx htlc.Tx) (*htlc.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &htlc.CheckResult{}, nil
}

// Deliver pays the requested amount from the escrow address to the taker.
func (h RescueHandler) Deliver(ctx htlc.Context, db htlc.KVStore, tx htlc.Tx) (*htlc.DeliverResult, error) {
	msg, caller, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	now, err := blockNow(ctx)
	if err != nil {
		return nil, err
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	d, err := NewEscrow(db, msg.Escrow, conf).Rescue(caller, now, *msg.Amount)
	if err != nil {
		return nil, err
	}
	if err := settle(db, h.bank, msg.Escrow, d); err != nil {
		return nil, err
	}
	htlc.GetLogger(ctx).Info("escrow rescued",
		"escrow", msg.Escrow,
		"taker", d.Recipient,
		"amount", d.Amount.String())
	return &htlc.DeliverResult{Data: msg.Escrow, Log: d.String()}, nil
}

func (h RescueHandler) validate(ctx htlc.Context, tx htlc.Tx) (*RescueMsg, htlc.Address, error) {
	var msg RescueMsg
	if err := htlc.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	caller, err := x.MainSignerAddress(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	return &msg, caller, nil
}
