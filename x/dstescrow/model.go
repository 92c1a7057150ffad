package dstescrow

import (
	"fmt"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/htlc"
	"github.com/iov-one/htlc/coin"
	"github.com/iov-one/htlc/errors"
)

// HashlockSize is the length of a Keccak256 digest.
const HashlockSize = 32

// Timelocks holds the thresholds of a swap, in seconds since the epoch.
type Timelocks struct {
	Withdrawal       htlc.UnixTime `protobuf:"varint,1,opt,name=withdrawal,proto3,casttype=github.com/iov-one/htlc.UnixTime" json:"withdrawal"`
	PublicWithdrawal htlc.UnixTime `protobuf:"varint,2,opt,name=public_withdrawal,proto3,casttype=github.com/iov-one/htlc.UnixTime" json:"public_withdrawal"`
	DestCancellation htlc.UnixTime `protobuf:"varint,3,opt,name=dest_cancellation,proto3,casttype=github.com/iov-one/htlc.UnixTime" json:"dest_cancellation"`
	SrcCancellation  htlc.UnixTime `protobuf:"varint,4,opt,name=src_cancellation,proto3,casttype=github.com/iov-one/htlc.UnixTime" json:"src_cancellation"`
}

var _ proto.Message = (*Timelocks)(nil)

func (t *Timelocks) Reset() { *t = Timelocks{} }
func (t *Timelocks) String() string {
	return fmt.Sprintf("withdrawal=%d public_withdrawal=%d dest_cancellation=%d src_cancellation=%d",
		t.Withdrawal, t.PublicWithdrawal, t.DestCancellation, t.SrcCancellation)
}
func (*Timelocks) ProtoMessage() {}

// Validate only checks that every threshold is a valid time. Ordering is
// checked by CheckOrder.
func (t *Timelocks) Validate() error {
	if t == nil {
		return errors.Wrap(errors.ErrEmpty, "timelocks")
	}
	if err := t.Withdrawal.Validate(); err != nil {
		return errors.Wrap(err, "withdrawal")
	}
	if err := t.PublicWithdrawal.Validate(); err != nil {
		return errors.Wrap(err, "public withdrawal")
	}
	if err := t.DestCancellation.Validate(); err != nil {
		return errors.Wrap(err, "dest cancellation")
	}
	if err := t.SrcCancellation.Validate(); err != nil {
		return errors.Wrap(err, "src cancellation")
	}
	return nil
}

// CheckOrder requires a non empty withdrawal window, withdrawal before
// dest cancellation. A public withdrawal that is set must fall within that
// window. Zero means it is not set.
func (t *Timelocks) CheckOrder() error {
	if t.Withdrawal >= t.DestCancellation {
		return errors.Wrapf(ErrInvalidTimelocks, "withdrawal %d not before dest cancellation %d", t.Withdrawal, t.DestCancellation)
	}
	if t.PublicWithdrawal == 0 {
		return nil
	}
	if t.PublicWithdrawal < t.Withdrawal || t.PublicWithdrawal > t.DestCancellation {
		return errors.Wrapf(ErrInvalidTimelocks, "public withdrawal %d outside of [%d, %d]", t.PublicWithdrawal, t.Withdrawal, t.DestCancellation)
	}
	return nil
}

// Immutables describes the swap order an escrow was created for. It is
// written once, when the escrow is initialized.
type Immutables struct {
	OrderHash []byte       `protobuf:"bytes,1,opt,name=order_hash,json=orderHash,proto3" json:"order_hash"`
	Hashlock  []byte       `protobuf:"bytes,2,opt,name=hashlock,proto3" json:"hashlock"`
	Maker     htlc.Address `protobuf:"bytes,3,opt,name=maker,proto3,casttype=github.com/iov-one/htlc.Address" json:"maker"`
	Taker     htlc.Address `protobuf:"bytes,4,opt,name=taker,proto3,casttype=github.com/iov-one/htlc.Address" json:"taker"`
	Token     *coin.Coin   `protobuf:"bytes,5,opt,name=token,proto3" json:"token"`
	Timelocks *Timelocks   `protobuf:"bytes,6,opt,name=timelocks,proto3" json:"timelocks"`
}

var _ htlc.Model = (*Immutables)(nil)

func (m *Immutables) Reset()         { *m = Immutables{} }
func (m *Immutables) String() string { return proto.CompactTextString(m) }
func (*Immutables) ProtoMessage()    {}

// Validate checks the structure of the immutables.
func (m *Immutables) Validate() error {
	if m == nil {
		return errors.Wrap(errors.ErrEmpty, "immutables")
	}
	if len(m.OrderHash) == 0 {
		return errors.Wrap(errors.ErrEmpty, "order hash")
	}
	if len(m.Hashlock) != HashlockSize {
		return errors.Wrapf(errors.ErrInput, "hashlock must be %d bytes", HashlockSize)
	}
	if err := m.Maker.Validate(); err != nil {
		return errors.Wrap(err, "maker")
	}
	if err := m.Taker.Validate(); err != nil {
		return errors.Wrap(err, "taker")
	}
	if m.Token == nil {
		return errors.Wrap(errors.ErrEmpty, "token")
	}
	if err := m.Token.Validate(); err != nil {
		return errors.Wrap(err, "token")
	}
	if !m.Token.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "token %s", m.Token)
	}
	if err := m.Timelocks.Validate(); err != nil {
		return errors.Wrap(err, "timelocks")
	}
	return nil
}

// Address returns the address of the escrow created for these immutables.
// It is known before the escrow is funded.
func (m *Immutables) Address() (htlc.Address, error) {
	raw, err := proto.Marshal(m)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "immutables: %s", err)
	}
	return htlc.NewCondition("dstescrow", "imm", Keccak256(raw)).Address(), nil
}

// Disbursement instructs the ledger to pay the amount to the recipient out
// of the escrow account.
type Disbursement struct {
	Recipient htlc.Address
	Amount    coin.Coin
}

func (d Disbursement) String() string {
	return fmt.Sprintf("%s to %s", d.Amount, d.Recipient)
}
