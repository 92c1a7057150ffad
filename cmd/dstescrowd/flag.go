package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/iov-one/htlc"
	"github.com/iov-one/htlc/coin"
	"github.com/iov-one/htlc/errors"
)

// flAddress returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided. This
// function follows Go's flag package convention.
// If given value cannot be deserialized to required type, process is
// terminated.
func flAddress(fl *flag.FlagSet, name, defaultVal, usage string) *htlc.Address {
	var a htlc.Address
	if defaultVal != "" {
		var err error
		a, err = htlc.ParseAddress(defaultVal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q htlc.Address flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var(&a, name, usage)
	return &a
}

// flCoin returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided.
func flCoin(fl *flag.FlagSet, name, defaultVal, usage string) *coin.Coin {
	var c coin.Coin
	if defaultVal != "" {
		var err error
		c, err = coin.ParseHumanFormat(defaultVal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q coin.Coin flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var(&c, name, usage)
	return &c
}

// flHex returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided.
func flHex(fl *flag.FlagSet, name, defaultVal, usage string) *flagbyte {
	var b flagbyte
	if defaultVal != "" {
		if err := b.Set(defaultVal); err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q hex encoded flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var(&b, name, usage)
	return &b
}

type flagbyte []byte

func (b flagbyte) String() string {
	return hex.EncodeToString(b)
}

func (b *flagbyte) Set(raw string) error {
	val, err := hex.DecodeString(raw)
	if err != nil {
		return err
	}
	*b = val
	return nil
}

// flTime returns a block time flag. The value is either seconds since the
// epoch or an RFC3339 formatted time. The current time is used when the
// flag is not provided.
func flTime(fl *flag.FlagSet, name, usage string) *flagtime {
	t := flagtime(time.Now().UTC())
	fl.Var(&t, name, usage)
	return &t
}

type flagtime time.Time

func (t flagtime) String() string {
	return time.Time(t).Format(time.RFC3339)
}

func (t *flagtime) Set(raw string) error {
	if secs, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if secs < 0 {
			return errors.Wrap(errors.ErrInput, "negative time")
		}
		*t = flagtime(time.Unix(secs, 0).UTC())
		return nil
	}
	val, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "time %q: %s", raw, err)
	}
	*t = flagtime(val.UTC())
	return nil
}

// Time returns the flag value.
func (t *flagtime) Time() time.Time {
	return time.Time(*t)
}

// ledgerFlags declares the flags shared by every command that opens the
// ledger.
type ledgerFlags struct {
	home     *string
	logLevel *string
}

func flLedger(fl *flag.FlagSet) ledgerFlags {
	return ledgerFlags{
		home:     fl.String("home", defaultHome(), "Directory where the ledger state is kept."),
		logLevel: fl.String("log", "info", "Log level: debug, info, error or none."),
	}
}

func defaultHome() string {
	if h := os.Getenv("DSTESCROWD_HOME"); h != "" {
		return h
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return ".dstescrowd"
	}
	return dir + "/.dstescrowd"
}
