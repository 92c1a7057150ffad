package dstescrow

import (
	"cosmossdk.io/math"
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/htlc"
	"github.com/iov-one/htlc/coin"
	"github.com/iov-one/htlc/errors"
)

const (
	pathInstantiate    = "dstescrow/instantiate"
	pathWithdraw       = "dstescrow/withdraw"
	pathPublicWithdraw = "dstescrow/public_withdraw"
	pathCancel         = "dstescrow/cancel"
	pathRescue         = "dstescrow/rescue"
)

var (
	_ htlc.Msg = (*InstantiateMsg)(nil)
	_ htlc.Msg = (*WithdrawMsg)(nil)
	_ htlc.Msg = (*PublicWithdrawMsg)(nil)
	_ htlc.Msg = (*CancelMsg)(nil)
	_ htlc.Msg = (*RescueMsg)(nil)
)

// InstantiateMsg creates an escrow. The funds attached to the transaction
// are moved to the escrow address.
type InstantiateMsg struct {
	// RescueDelay is a 256 bit unsigned integer in big endian form.
	RescueDelay []byte      `protobuf:"bytes,1,opt,name=rescue_delay,json=rescueDelay,proto3" json:"rescue_delay"`
	Immutables  *Immutables `protobuf:"bytes,2,opt,name=immutables,proto3" json:"immutables"`
}

// NewInstantiateMsg returns a message creating an escrow for given immutables.
func NewInstantiateMsg(rescueDelay math.Uint, imm *Immutables) *InstantiateMsg {
	return &InstantiateMsg{
		RescueDelay: EncodeUint256(rescueDelay),
		Immutables:  imm,
	}
}

func (m *InstantiateMsg) Reset()         { *m = InstantiateMsg{} }
func (m *InstantiateMsg) String() string { return proto.CompactTextString(m) }
func (*InstantiateMsg) ProtoMessage()    {}

func (InstantiateMsg) Path() string {
	return pathInstantiate
}

func (m *InstantiateMsg) Validate() error {
	if _, err := DecodeUint256(m.RescueDelay); err != nil {
		return errors.Wrap(err, "rescue delay")
	}
	return m.Immutables.Validate()
}

// FundsDestination returns the escrow address, so that the attached funds
// are deposited into the escrow.
func (m *InstantiateMsg) FundsDestination() (htlc.Address, error) {
	if m.Immutables == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "immutables")
	}
	return m.Immutables.Address()
}

// WithdrawMsg releases the escrow to the taker. Signed by the taker.
type WithdrawMsg struct {
	Escrow htlc.Address `protobuf:"bytes,1,opt,name=escrow,proto3,casttype=github.com/iov-one/htlc.Address" json:"escrow"`
	Secret string       `protobuf:"bytes,2,opt,name=secret,proto3" json:"secret"`
}

func (m *WithdrawMsg) Reset()         { *m = WithdrawMsg{} }
func (m *WithdrawMsg) String() string { return "WithdrawMsg " + m.Escrow.String() }
func (*WithdrawMsg) ProtoMessage()    {}

func (WithdrawMsg) Path() string {
	return pathWithdraw
}

func (m *WithdrawMsg) Validate() error {
	return errors.Wrap(m.Escrow.Validate(), "escrow")
}

// PublicWithdrawMsg releases the escrow to the taker. Signed by anyone.
type PublicWithdrawMsg struct {
	Escrow htlc.Address `protobuf:"bytes,1,opt,name=escrow,proto3,casttype=github.com/iov-one/htlc.Address" json:"escrow"`
	Secret string       `protobuf:"bytes,2,opt,name=secret,proto3" json:"secret"`
}

func (m *PublicWithdrawMsg) Reset()         { *m = PublicWithdrawMsg{} }
func (m *PublicWithdrawMsg) String() string { return "PublicWithdrawMsg " + m.Escrow.String() }
func (*PublicWithdrawMsg) ProtoMessage()    {}

func (PublicWithdrawMsg) Path() string {
	return pathPublicWithdraw
}

func (m *PublicWithdrawMsg) Validate() error {
	return errors.Wrap(m.Escrow.Validate(), "escrow")
}

// CancelMsg returns the escrow to the maker. Signed by the taker.
type CancelMsg struct {
	Escrow htlc.Address `protobuf:"bytes,1,opt,name=escrow,proto3,casttype=github.com/iov-one/htlc.Address" json:"escrow"`
}

func (m *CancelMsg) Reset()         { *m = CancelMsg{} }
func (m *CancelMsg) String() string { return "CancelMsg " + m.Escrow.String() }
func (*CancelMsg) ProtoMessage()    {}

func (CancelMsg) Path() string {
	return pathCancel
}

func (m *CancelMsg) Validate() error {
	return errors.Wrap(m.Escrow.Validate(), "escrow")
}

// RescueMsg sends coins held by the escrow address to the taker.
type RescueMsg struct {
	Escrow htlc.Address `protobuf:"bytes,1,opt,name=escrow,proto3,casttype=github.com/iov-one/htlc.Address" json:"escrow"`
	Amount *coin.Coin   `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount"`
}

func (m *RescueMsg) Reset()         { *m = RescueMsg{} }
func (m *RescueMsg) String() string { return "RescueMsg " + m.Escrow.String() }
func (*RescueMsg) ProtoMessage()    {}

func (RescueMsg) Path() string {
	return pathRescue
}

func (m *RescueMsg) Validate() error {
	if err := m.Escrow.Validate(); err != nil {
		return errors.Wrap(err, "escrow")
	}
	if m.Amount == nil {
		return errors.Wrap(errors.ErrEmpty, "amount")
	}
	if err := m.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !m.Amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "rescue %s", m.Amount)
	}
	return nil
}
