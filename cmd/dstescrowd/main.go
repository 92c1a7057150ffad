/*
Command dstescrowd runs a local, single node ledger that hosts destination
chain escrows. State is kept in an iavl database in the home directory. Every
transaction command executes one block at the given time.

	$ dstescrowd init -home ./data -genesis genesis.json
	$ dstescrowd instantiate -home ./data -signer resolver -time 100 \
		-maker $(dstescrowd addr -signer maker) \
		-taker $(dstescrowd addr -signer taker) \
		-token 1000stake -hashlock $(dstescrowd hashlock -secret secret) \
		-order-hash 01 -withdrawal 1000 -public-withdrawal 2000 \
		-dest-cancellation 3000 -src-cancellation 4000
	$ dstescrowd withdraw -home ./data -signer taker -time 1500 \
		-escrow <address> -secret secret
*/
package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/iov-one/htlc/errors"
)

// commands is a register of all availables commands that can be executed by
// this program. The name is used to match with the first argument given.
//
// When a cmd function is called it is given stdin, stdout and command line
// arguments except the program name and this command name. It is the
// responsibility of the command function to parse the arguments. Use
// os.Stderr to write error messages.
var commands = map[string]func(input io.Reader, output io.Writer, args []string) error{
	"addr":            cmdAddr,
	"balance":         cmdBalance,
	"cancel":          cmdCancel,
	"hashlock":        cmdHashlock,
	"init":            cmdInit,
	"instantiate":     cmdInstantiate,
	"public-withdraw": cmdPublicWithdraw,
	"rescue":          cmdRescue,
	"show":            cmdShow,
	"version":         cmdVersion,
	"withdraw":        cmdWithdraw,
}

func main() {
	if len(os.Args) == 1 {
		fmt.Fprintf(os.Stderr, "%s runs a local ledger hosting destination chain escrows.\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Usage: %s <command> [<flags>]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		fmt.Fprintf(os.Stderr, "Run '%s <command> -help' to learn more about each command.\n", os.Args[0])
		os.Exit(2)
	}
	run, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		os.Exit(2)
	}

	// Skip two first arguments. Second argument is the command name that
	// we just consumed.
	if err := run(os.Stdin, os.Stdout, os.Args[2:]); err != nil {
		code, log := errors.Info(err, os.Getenv("DSTESCROWD_DEBUG") != "")
		fmt.Fprintf(os.Stderr, "error %d: %s\n", code, log)
		os.Exit(1)
	}
}

func availableCmds() []string {
	available := make([]string, 0, len(commands))
	for name := range commands {
		available = append(available, name)
	}
	sort.Strings(available)
	return available
}

func cmdVersion(in io.Reader, out io.Writer, args []string) error {
	fmt.Fprintln(out, gitHash)
	return nil
}

// gitHash is set during the compilation time.
var gitHash string = "dev"
