package main

import (
	"github.com/iov-one/htlc"
	"github.com/iov-one/htlc/coin"
	"github.com/iov-one/htlc/x/cash"
	"github.com/iov-one/htlc/x/sigs"
)

// Tx is the transaction executed by the local ledger. Signers are trusted:
// the command line user is authenticated by the operating system.
type Tx struct {
	Msg     htlc.Msg
	Signers []htlc.Condition
	Funds   coin.Coins
}

var (
	_ sigs.SignedTx = (*Tx)(nil)
	_ cash.FundedTx = (*Tx)(nil)
)

func (tx *Tx) GetMsg() (htlc.Msg, error)    { return tx.Msg, nil }
func (tx *Tx) GetSigners() []htlc.Condition { return tx.Signers }
func (tx *Tx) GetFunds() coin.Coins         { return tx.Funds }
func (tx *Tx) Reset()                       { *tx = Tx{} }
func (tx *Tx) String() string               { return "dstescrowd.Tx " + htlc.GetPath(tx) }
func (*Tx) ProtoMessage()                   {}
