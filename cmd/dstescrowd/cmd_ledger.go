package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/htlc"
	"github.com/iov-one/htlc/app"
	"github.com/iov-one/htlc/coin"
	"github.com/iov-one/htlc/errors"
	"github.com/iov-one/htlc/x/dstescrow"
	"github.com/iov-one/htlc/x/sigs"
)

func cmdInit(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Initialize the ledger state using the given genesis file. The genesis file
declares the chain ID and the initial state of each extension.
		`)
		fl.PrintDefaults()
	}
	var (
		ledger    = flLedger(fl)
		genesisFl = fl.String("genesis", "genesis.json", "Path to the genesis file.")
	)
	fl.Parse(args)

	gen, err := app.LoadGenesis(*genesisFl)
	if err != nil {
		return err
	}
	n, err := openNode(*ledger.home, *ledger.logLevel)
	if err != nil {
		return err
	}
	defer n.Close()

	id, err := n.InitChain(gen, initializers())
	if err != nil {
		return errors.Wrap(err, "init chain")
	}
	_, err = fmt.Fprintf(output, "%s %d %X\n", n.ChainID(), id.Version, id.Hash)
	return err
}

func cmdHashlock(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Print the hex encoded hashlock that commits to the given secret.
		`)
		fl.PrintDefaults()
	}
	var (
		secretFl = fl.String("secret", "", "The secret preimage.")
	)
	fl.Parse(args)

	_, err := fmt.Fprintln(output, hex.EncodeToString(dstescrow.Hashlock(*secretFl)))
	return err
}

func cmdAddr(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Print the address of the given signer. The address is hex encoded unless a
bech32 human readable part is given.
		`)
		fl.PrintDefaults()
	}
	var (
		signerFl = fl.String("signer", "", "Name of the signer.")
		hrpFl    = fl.String("hrp", "", "Bech32 human readable part, for example htlc.")
	)
	fl.Parse(args)

	if *signerFl == "" {
		return errors.Wrap(errors.ErrInput, "signer is required")
	}
	addr := sigs.Signer(*signerFl).Address()
	if *hrpFl == "" {
		_, err := fmt.Fprintln(output, addr)
		return err
	}
	enc, err := addr.Bech32(*hrpFl)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(output, enc)
	return err
}

func cmdBalance(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Print the coins held by an account. An empty line is printed for an account
without any funds.
		`)
		fl.PrintDefaults()
	}
	var (
		ledger    = flLedger(fl)
		addressFl = flAddress(fl, "address", "", "Hex encoded address of the account.")
		signerFl  = fl.String("signer", "", "Name of the signer owning the account. Used if the address is not provided.")
	)
	fl.Parse(args)

	addr := *addressFl
	if len(addr) == 0 {
		if *signerFl == "" {
			return errors.Wrap(errors.ErrInput, "address or signer is required")
		}
		addr = sigs.Signer(*signerFl).Address()
	}

	n, err := openNode(*ledger.home, *ledger.logLevel)
	if err != nil {
		return err
	}
	defer n.Close()

	var coins coin.Coins
	err = n.View(func(db htlc.KVStore) error {
		var err error
		coins, err = n.bank.Balance(db, addr)
		if errors.ErrNotFound.Is(err) {
			return nil
		}
		return err
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(output, coins.String())
	return err
}

func cmdShow(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Print the state of an escrow as JSON.
		`)
		fl.PrintDefaults()
	}
	var (
		ledger   = flLedger(fl)
		escrowFl = flAddress(fl, "escrow", "", "Hex encoded address of the escrow.")
	)
	fl.Parse(args)

	if len(*escrowFl) == 0 {
		return errors.Wrap(errors.ErrInput, "escrow address is required")
	}

	n, err := openNode(*ledger.home, *ledger.logLevel)
	if err != nil {
		return err
	}
	defer n.Close()

	var view escrowView
	err = n.View(func(db htlc.KVStore) error {
		state, err := dstescrow.NewEscrow(db, *escrowFl, dstescrow.DefaultConfiguration()).State()
		if err != nil {
			return err
		}
		balance, err := n.bank.Balance(db, *escrowFl)
		if err != nil && !errors.ErrNotFound.Is(err) {
			return err
		}
		view = escrowView{Address: *escrowFl, State: state, Balance: balance}
		return nil
	})
	if err != nil {
		return err
	}

	raw, err := json.MarshalIndent(view, "", "\t")
	if err != nil {
		return errors.Wrap(err, "cannot JSON serialize")
	}
	_, err = fmt.Fprintln(output, string(raw))
	return err
}

type escrowView struct {
	Address htlc.Address `json:"address"`
	*dstescrow.State
	Balance coin.Coins `json:"balance"`
}
