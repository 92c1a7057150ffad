package weavetest

import (
	"github.com/iov-one/htlc"
	"github.com/iov-one/htlc/coin"
)

// Tx represents a transaction carrying a single message.
//
// It implements the interfaces expected by the signature and funds
// decorators so that handlers can be tested with a complete context.
type Tx struct {
	// Msg is the message that is to be processed by this transaction.
	Msg htlc.Msg
	// Signers are returned by GetSigners.
	Signers []htlc.Condition
	// Funds are returned by GetFunds.
	Funds coin.Coins
	// Err if set is returned by any method call.
	Err error
}

var _ htlc.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (htlc.Msg, error) {
	return tx.Msg, tx.Err
}

func (tx *Tx) GetSigners() []htlc.Condition {
	return tx.Signers
}

func (tx *Tx) GetFunds() coin.Coins {
	return tx.Funds
}

func (tx *Tx) Reset()         { *tx = Tx{} }
func (tx *Tx) String() string { return "weavetest.Tx" }
func (tx *Tx) ProtoMessage()  {}

// Msg represents a message routed by its path.
type Msg struct {
	// RoutePath returned by the path method, consumed by the router.
	RoutePath string
	// Err if set is returned by the validation.
	Err error
}

var _ htlc.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}

func (m *Msg) Reset()         { *m = Msg{} }
func (m *Msg) String() string { return "weavetest.Msg " + m.RoutePath }
func (m *Msg) ProtoMessage()  {}
