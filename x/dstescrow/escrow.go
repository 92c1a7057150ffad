package dstescrow

import (
	"cosmossdk.io/math"
	"github.com/iov-one/htlc"
	"github.com/iov-one/htlc/coin"
	"github.com/iov-one/htlc/errors"
)

// Escrow is the state machine of a single escrow instance.
type Escrow struct {
	store Store
	conf  Configuration
}

// NewEscrow returns the escrow stored at given address.
func NewEscrow(db htlc.KVStore, addr htlc.Address, conf Configuration) *Escrow {
	return &Escrow{
		store: NewStore(db, addr),
		conf:  conf,
	}
}

// Initialize binds the immutables to the funds deposited with the call. One
// of the attached coins must be exactly the escrow token. Other coins are
// accepted and can be recovered with Rescue.
func (e *Escrow) Initialize(funds coin.Coins, rescueDelay math.Uint, imm *Immutables, now htlc.UnixTime) error {
	switch ok, err := e.store.IsInitialized(); {
	case err != nil:
		return err
	case ok:
		return ErrAlreadyInitialized
	}
	if err := imm.Validate(); err != nil {
		return errors.Wrap(err, "immutables")
	}
	if e.conf.StrictTimelocks {
		if err := imm.Timelocks.CheckOrder(); err != nil {
			return err
		}
	}
	if !funds.HasExact(*imm.Token) {
		return errors.Wrapf(ErrUnmatchedDenomOrAmount, "want %s, got %s", imm.Token, funds)
	}

	if err := e.store.SaveRescueDelay(rescueDelay); err != nil {
		return err
	}
	if err := e.store.SaveImmutables(imm); err != nil {
		return err
	}
	if err := e.store.SaveDeployedAt(now); err != nil {
		return err
	}
	return e.store.SaveStatus(StatusActive)
}

// Withdraw releases the token to the taker. Only the taker can call it,
// within the withdrawal window and with the secret matching the hashlock.
func (e *Escrow) Withdraw(caller htlc.Address, now htlc.UnixTime, secret string) (*Disbursement, error) {
	imm, err := e.store.LoadImmutables()
	if err != nil {
		return nil, err
	}
	if !caller.Equals(imm.Taker) {
		return nil, ErrOnlyTaker
	}
	if err := onlyAfter(imm.Timelocks, DstWithdrawal, now, ErrDestWithdrawTimeLimit); err != nil {
		return nil, err
	}
	return e.release(imm, now, secret)
}

// PublicWithdraw releases the token to the taker. Anyone knowing the secret
// can call it once the public withdrawal window started.
func (e *Escrow) PublicWithdraw(caller htlc.Address, now htlc.UnixTime, secret string) (*Disbursement, error) {
	imm, err := e.store.LoadImmutables()
	if err != nil {
		return nil, err
	}
	if err := caller.Validate(); err != nil {
		return nil, errors.Wrap(err, "caller")
	}
	if err := onlyAfter(imm.Timelocks, DstPublicWithdrawal, now, ErrPublicWithdrawTimeLimit); err != nil {
		return nil, err
	}
	return e.release(imm, now, secret)
}

// release completes both withdrawals once the window start was checked.
func (e *Escrow) release(imm *Immutables, now htlc.UnixTime, secret string) (*Disbursement, error) {
	if err := onlyBefore(imm.Timelocks, DstCancellation, now, ErrDestCancelTimeLimit); err != nil {
		return nil, err
	}
	if err := e.conf.CheckSecret(secret); err != nil {
		return nil, err
	}
	if !MatchSecret(imm.Hashlock, secret) {
		return nil, ErrInvalidSecret
	}
	if err := e.close(StatusWithdrawn); err != nil {
		return nil, err
	}
	return &Disbursement{Recipient: imm.Taker, Amount: *imm.Token}, nil
}

// Cancel returns the token to the maker once the cancellation window
// started. Only the taker can call it.
func (e *Escrow) Cancel(caller htlc.Address, now htlc.UnixTime) (*Disbursement, error) {
	imm, err := e.store.LoadImmutables()
	if err != nil {
		return nil, err
	}
	if !caller.Equals(imm.Taker) {
		return nil, ErrOnlyTaker
	}
	threshold, err := imm.Timelocks.Get(DstCancellation)
	if err != nil {
		return nil, err
	}
	if now <= threshold {
		return nil, errors.Wrapf(ErrCancelTimeLimit, "now %d, cancellation after %d", now, threshold)
	}
	if err := e.close(StatusCancelled); err != nil {
		return nil, err
	}
	return &Disbursement{Recipient: imm.Maker, Amount: *imm.Token}, nil
}

// Rescue sends any amount held by the escrow address to the taker, once
// the rescue delay passed since the initialization. The status is not
// changed.
func (e *Escrow) Rescue(caller htlc.Address, now htlc.UnixTime, amount coin.Coin) (*Disbursement, error) {
	imm, err := e.store.LoadImmutables()
	if err != nil {
		return nil, err
	}
	if !caller.Equals(imm.Taker) {
		return nil, ErrOnlyTaker
	}
	deployedAt, err := e.store.LoadDeployedAt()
	if err != nil {
		return nil, err
	}
	delay, err := e.store.LoadRescueDelay()
	if err != nil {
		return nil, err
	}
	elapsed := now - deployedAt
	if elapsed < 0 || math.NewUint(uint64(elapsed)).LT(delay) {
		return nil, errors.Wrapf(ErrRescueTimeLimit, "deployed at %d, delay %s", deployedAt, delay)
	}
	if err := amount.Validate(); err != nil {
		return nil, errors.Wrap(err, "amount")
	}
	if !amount.IsPositive() {
		return nil, errors.Wrapf(errors.ErrAmount, "rescue %s", amount)
	}
	return &Disbursement{Recipient: imm.Taker, Amount: amount}, nil
}

// State returns everything stored for the escrow.
func (e *Escrow) State() (*State, error) {
	imm, err := e.store.LoadImmutables()
	if err != nil {
		return nil, err
	}
	delay, err := e.store.LoadRescueDelay()
	if err != nil {
		return nil, err
	}
	deployedAt, err := e.store.LoadDeployedAt()
	if err != nil {
		return nil, err
	}
	status, err := e.store.LoadStatus()
	if err != nil {
		return nil, err
	}
	return &State{
		Immutables:  imm,
		RescueDelay: delay,
		DeployedAt:  deployedAt,
		Status:      status,
	}, nil
}

// State is a read only view of a stored escrow.
type State struct {
	Immutables  *Immutables   `json:"immutables"`
	RescueDelay math.Uint     `json:"rescue_delay"`
	DeployedAt  htlc.UnixTime `json:"deployed_at"`
	Status      Status        `json:"status"`
}

func (e *Escrow) close(to Status) error {
	status, err := e.store.LoadStatus()
	if err != nil {
		return err
	}
	if status.IsTerminal() {
		return errors.Wrapf(ErrClosed, "escrow is %s", status)
	}
	return e.store.SaveStatus(to)
}

func onlyAfter(t *Timelocks, s Stage, now htlc.UnixTime, errLimit *errors.Error) error {
	threshold, err := t.Get(s)
	if err != nil {
		return err
	}
	if now < threshold {
		return errors.Wrapf(errLimit, "now %d, %s starts at %d", now, s, threshold)
	}
	return nil
}

func onlyBefore(t *Timelocks, s Stage, now htlc.UnixTime, errLimit *errors.Error) error {
	threshold, err := t.Get(s)
	if err != nil {
		return err
	}
	if now > threshold {
		return errors.Wrapf(errLimit, "now %d, %s started at %d", now, s, threshold)
	}
	return nil
}
