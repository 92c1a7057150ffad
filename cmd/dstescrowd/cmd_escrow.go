package main

import (
	"flag"
	"fmt"
	"io"

	"cosmossdk.io/math"
	"github.com/iov-one/htlc"
	"github.com/iov-one/htlc/errors"
	"github.com/iov-one/htlc/x/dstescrow"
)

func cmdInstantiate(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Create a new escrow. The signer is the resolver that funds the escrow with
the token amount. The escrow address is printed.
		`)
		fl.PrintDefaults()
	}
	var (
		ledger       = flLedger(fl)
		signerFl     = fl.String("signer", "", "Name of the resolver signing and funding the escrow.")
		timeFl       = flTime(fl, "time", "Block time as seconds since the epoch or RFC3339. Defaults to now.")
		makerFl      = flAddress(fl, "maker", "", "Address receiving the token on cancellation.")
		takerFl      = flAddress(fl, "taker", "", "Address receiving the token on withdrawal.")
		tokenFl      = flCoin(fl, "token", "", "Amount locked in the escrow, for example 1000stake.")
		fundsFl      = flCoin(fl, "funds", "", "Amount sent along with the message. Defaults to the token amount.")
		hashlockFl   = flHex(fl, "hashlock", "", "Hex encoded hashlock of the secret.")
		orderHashFl  = flHex(fl, "order-hash", "", "Hex encoded hash of the order.")
		withdrawalFl = fl.Int64("withdrawal", 0, "Time after which the taker can withdraw.")
		publicFl     = fl.Int64("public-withdrawal", 0, "Time after which anyone can withdraw.")
		cancelFl     = fl.Int64("dest-cancellation", 0, "Time after which the escrow can be cancelled.")
		srcCancelFl  = fl.Int64("src-cancellation", 0, "Cancellation time of the source chain escrow.")
		rescueFl     = fl.String("rescue-delay", "0", "Seconds after creation before the taker can rescue funds.")
	)
	fl.Parse(args)

	rescueDelay, err := math.ParseUint(*rescueFl)
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "rescue delay: %s", err)
	}
	token := *tokenFl
	imm := &dstescrow.Immutables{
		OrderHash: *orderHashFl,
		Hashlock:  *hashlockFl,
		Maker:     *makerFl,
		Taker:     *takerFl,
		Token:     &token,
		Timelocks: &dstescrow.Timelocks{
			Withdrawal:       htlc.UnixTime(*withdrawalFl),
			PublicWithdrawal: htlc.UnixTime(*publicFl),
			DestCancellation: htlc.UnixTime(*cancelFl),
			SrcCancellation:  htlc.UnixTime(*srcCancelFl),
		},
	}
	funds := *fundsFl
	if funds.IsZero() {
		funds = token
	}

	msg := dstescrow.NewInstantiateMsg(rescueDelay, imm)
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "given data produce an invalid message")
	}
	res, err := submit(*ledger.home, *ledger.logLevel, timeFl.Time(), *signerFl, msg, &funds)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(output, htlc.Address(res.Data))
	return err
}

func cmdWithdraw(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Withdraw the escrow token to the taker by revealing the secret. Only the taker
can withdraw during the private withdrawal window.
		`)
		fl.PrintDefaults()
	}
	var (
		ledger   = flLedger(fl)
		signerFl = fl.String("signer", "", "Name of the taker signing the transaction.")
		timeFl   = flTime(fl, "time", "Block time as seconds since the epoch or RFC3339. Defaults to now.")
		escrowFl = flAddress(fl, "escrow", "", "Hex encoded address of the escrow.")
		secretFl = fl.String("secret", "", "The secret preimage of the hashlock.")
	)
	fl.Parse(args)

	msg := &dstescrow.WithdrawMsg{Escrow: *escrowFl, Secret: *secretFl}
	return submitAndReport(output, ledger, timeFl, *signerFl, msg)
}

func cmdPublicWithdraw(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Withdraw the escrow token to the taker by revealing the secret. Anyone can
submit it during the public withdrawal window.
		`)
		fl.PrintDefaults()
	}
	var (
		ledger   = flLedger(fl)
		signerFl = fl.String("signer", "", "Name of the signer submitting the transaction.")
		timeFl   = flTime(fl, "time", "Block time as seconds since the epoch or RFC3339. Defaults to now.")
		escrowFl = flAddress(fl, "escrow", "", "Hex encoded address of the escrow.")
		secretFl = fl.String("secret", "", "The secret preimage of the hashlock.")
	)
	fl.Parse(args)

	msg := &dstescrow.PublicWithdrawMsg{Escrow: *escrowFl, Secret: *secretFl}
	return submitAndReport(output, ledger, timeFl, *signerFl, msg)
}

func cmdCancel(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Return the escrow token to the maker after the cancellation time.
		`)
		fl.PrintDefaults()
	}
	var (
		ledger   = flLedger(fl)
		signerFl = fl.String("signer", "", "Name of the taker signing the transaction.")
		timeFl   = flTime(fl, "time", "Block time as seconds since the epoch or RFC3339. Defaults to now.")
		escrowFl = flAddress(fl, "escrow", "", "Hex encoded address of the escrow.")
	)
	fl.Parse(args)

	msg := &dstescrow.CancelMsg{Escrow: *escrowFl}
	return submitAndReport(output, ledger, timeFl, *signerFl, msg)
}

func cmdRescue(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Move any amount held by the escrow to the taker once the rescue delay has
passed since the escrow creation.
		`)
		fl.PrintDefaults()
	}
	var (
		ledger   = flLedger(fl)
		signerFl = fl.String("signer", "", "Name of the taker signing the transaction.")
		timeFl   = flTime(fl, "time", "Block time as seconds since the epoch or RFC3339. Defaults to now.")
		escrowFl = flAddress(fl, "escrow", "", "Hex encoded address of the escrow.")
		amountFl = flCoin(fl, "amount", "", "Amount to rescue, for example 10stake.")
	)
	fl.Parse(args)

	amount := *amountFl
	msg := &dstescrow.RescueMsg{Escrow: *escrowFl, Amount: &amount}
	return submitAndReport(output, ledger, timeFl, *signerFl, msg)
}

// submitAndReport validates and executes msg, then prints the result log.
func submitAndReport(output io.Writer, ledger ledgerFlags, at *flagtime, signer string, msg htlc.Msg) error {
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "given data produce an invalid message")
	}
	res, err := submit(*ledger.home, *ledger.logLevel, at.Time(), signer, msg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(output, res.Log)
	return err
}
