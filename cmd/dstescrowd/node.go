package main

import (
	"io"
	"os"
	"time"

	"github.com/iov-one/htlc"
	"github.com/iov-one/htlc/app"
	"github.com/iov-one/htlc/coin"
	"github.com/iov-one/htlc/errors"
	"github.com/iov-one/htlc/store/iavl"
	"github.com/iov-one/htlc/x/cash"
	"github.com/iov-one/htlc/x/dstescrow"
	"github.com/iov-one/htlc/x/sigs"
	"github.com/tendermint/tendermint/libs/log"
)

// dbName is the name of the iavl database inside of the home directory.
const dbName = "state"

// logOutput is where the ledger logs. Tests replace it.
var logOutput io.Writer = os.Stderr

// node is the local ledger opened on a home directory.
type node struct {
	*app.BaseApp
	store iavl.CommitStore
	bank  cash.Controller
}

// openNode loads the state kept in the home directory.
func openNode(home, logLevel string) (*node, error) {
	logger, err := newLogger(logLevel)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(home, 0o700); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "home directory: %s", err)
	}
	st, err := iavl.NewCommitStore(home, dbName)
	if err != nil {
		return nil, err
	}

	bank := cash.NewController()
	auth := sigs.Authenticate{}
	router := app.NewRouter()
	dstescrow.RegisterRoutes(router, auth, bank)
	handler := app.ChainDecorators(
		app.NewLogging(),
		app.NewRecovery(),
		sigs.NewDecorator(),
		cash.NewFundsDecorator(auth, bank),
	).WithHandler(router)

	base, err := app.NewBaseApp(st, handler, logger)
	if err != nil {
		st.Close()
		return nil, err
	}
	return &node{BaseApp: base, store: st, bank: bank}, nil
}

// Close releases the database.
func (n *node) Close() {
	n.store.Close()
}

// initializers returns the genesis initializers of every extension.
func initializers() htlc.Initializer {
	return app.ChainInitializers(
		cash.Initializer{},
		dstescrow.Initializer{},
	)
}

// newLogger returns a logger writing to logOutput, filtered by level.
func newLogger(level string) (log.Logger, error) {
	opt, err := log.AllowLevel(level)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "log level: %s", err)
	}
	logger := log.NewTMLogger(log.NewSyncWriter(logOutput))
	return log.NewFilter(logger, opt).With("module", "dstescrowd"), nil
}

// submit executes a single message signed by signer as a new block.
func submit(home, logLevel string, now time.Time, signer string, msg htlc.Msg, funds ...*coin.Coin) (*htlc.DeliverResult, error) {
	n, err := openNode(home, logLevel)
	if err != nil {
		return nil, err
	}
	defer n.Close()

	if signer == "" {
		return nil, errors.Wrap(errors.ErrUnauthorized, "signer is required")
	}
	tx := &Tx{
		Msg:     msg,
		Signers: []htlc.Condition{sigs.Signer(signer)},
		Funds:   funds,
	}
	res, _, err := n.DeliverTx(now, tx)
	return res, err
}
