package app

import (
	"context"
	"encoding/binary"
	"time"

	"github.com/iov-one/htlc"
	"github.com/iov-one/htlc/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// BaseApp executes transactions on top of a CommitKVStore. Every delivered
// transaction forms its own block: it runs in a cache wrap that is written
// and committed only on success.
//
// BaseApp is not safe for concurrent use. The host serializes calls.
type BaseApp struct {
	store   htlc.CommitKVStore
	handler htlc.Handler
	logger  log.Logger
	chainID string
}

// NewBaseApp loads the latest committed version of the store.
func NewBaseApp(store htlc.CommitKVStore, handler htlc.Handler, logger log.Logger) (*BaseApp, error) {
	if err := store.LoadLatestVersion(); err != nil {
		return nil, errors.Wrap(err, "load store")
	}
	if logger == nil {
		logger = htlc.DefaultLogger
	}
	b := &BaseApp{
		store:   store,
		handler: handler,
		logger:  logger,
	}
	chainID, err := loadChainID(store)
	if err != nil {
		return nil, err
	}
	b.chainID = chainID
	return b, nil
}

// ChainID returns the chain id set at genesis, or an empty string.
func (b *BaseApp) ChainID() string {
	return b.chainID
}

// CommitInfo returns the current height and hash
func (b *BaseApp) CommitInfo() htlc.CommitID {
	return b.store.LatestVersion()
}

// InitChain stores the chain id and runs the genesis initializers. It can
// only be called once.
func (b *BaseApp) InitChain(gen Genesis, init htlc.Initializer) (htlc.CommitID, error) {
	if b.chainID != "" {
		return htlc.CommitID{}, errors.Wrapf(errors.ErrImmutable, "chain %s already initialized", b.chainID)
	}
	cache := b.store.CacheWrap()
	if err := saveChainID(cache, gen.ChainID); err != nil {
		cache.Discard()
		return htlc.CommitID{}, err
	}
	if err := init.FromGenesis(gen.AppOptions, cache); err != nil {
		cache.Discard()
		return htlc.CommitID{}, errors.Wrap(err, "genesis")
	}
	id, err := b.commit(cache)
	if err != nil {
		return id, err
	}
	b.chainID = gen.ChainID
	b.logger.Info("chain initialized", "chain_id", gen.ChainID, "hash", id.Hash)
	return id, nil
}

// LastBlockTime returns the time of the last committed transaction.
func (b *BaseApp) LastBlockTime() (time.Time, error) {
	raw, err := b.store.Get([]byte(blockTimeKey))
	if err != nil {
		return time.Time{}, errors.Wrap(err, "load block time")
	}
	if raw == nil {
		return time.Time{}, nil
	}
	return time.Unix(int64(binary.BigEndian.Uint64(raw)), 0).UTC(), nil
}

// blockContext returns a context describing the next block.
func (b *BaseApp) blockContext(now time.Time) (htlc.Context, error) {
	if b.chainID == "" {
		return nil, errors.Wrap(errors.ErrState, "chain not initialized")
	}
	last, err := b.LastBlockTime()
	if err != nil {
		return nil, err
	}
	if now.Before(last) {
		return nil, errors.Wrapf(errors.ErrInput, "block time %s before the last block time %s", now, last)
	}
	height := b.store.LatestVersion().Version + 1

	ctx := htlc.WithHeight(context.Background(), height)
	ctx = htlc.WithBlockTime(ctx, now)
	ctx = htlc.WithChainID(ctx, b.chainID)
	ctx = htlc.WithLogger(ctx, b.logger)
	return ctx, nil
}

// CheckTx runs the check phase only. Nothing is written.
func (b *BaseApp) CheckTx(now time.Time, tx htlc.Tx) (*htlc.CheckResult, error) {
	ctx, err := b.blockContext(now)
	if err != nil {
		return nil, err
	}
	ctx = htlc.WithLogInfo(ctx, "call", "check_tx", "path", htlc.GetPath(tx))

	cache := b.store.CacheWrap()
	defer cache.Discard()
	return b.handler.Check(ctx, cache, tx)
}

// DeliverTx runs the check and the deliver phase of a transaction in a
// new block. State is committed only when both succeed.
func (b *BaseApp) DeliverTx(now time.Time, tx htlc.Tx) (*htlc.DeliverResult, htlc.CommitID, error) {
	if _, err := b.CheckTx(now, tx); err != nil {
		return nil, htlc.CommitID{}, err
	}

	ctx, err := b.blockContext(now)
	if err != nil {
		return nil, htlc.CommitID{}, err
	}
	ctx = htlc.WithLogInfo(ctx, "call", "deliver_tx", "path", htlc.GetPath(tx))

	cache := b.store.CacheWrap()
	res, err := b.handler.Deliver(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, htlc.CommitID{}, err
	}
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, uint64(now.Unix()))
	if err := cache.Set([]byte(blockTimeKey), raw); err != nil {
		cache.Discard()
		return nil, htlc.CommitID{}, err
	}
	id, err := b.commit(cache)
	if err != nil {
		return nil, id, err
	}
	return res, id, nil
}

// View runs fn on a snapshot of the committed state. Any changes fn makes
// are discarded.
func (b *BaseApp) View(fn func(db htlc.KVStore) error) error {
	cache := b.store.CacheWrap()
	defer cache.Discard()
	return fn(cache)
}

func (b *BaseApp) commit(cache htlc.KVCacheWrap) (htlc.CommitID, error) {
	if err := cache.Write(); err != nil {
		return htlc.CommitID{}, errors.Wrap(err, "write cache")
	}
	id, err := b.store.Commit()
	if err != nil {
		return id, errors.Wrap(err, "commit")
	}
	return id, nil
}
