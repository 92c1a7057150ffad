package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iov-one/htlc"
	"github.com/iov-one/htlc/errors"
	"github.com/iov-one/htlc/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadGenesis(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "genesis.json")
	content := `{
		"chain_id": "htlc-test",
		"app_state": {
			"value": "hello",
			"conf": {"dstescrow": {"strict_timelocks": true}}
		}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	gen, err := LoadGenesis(path)
	require.NoError(t, err)
	assert.Equal(t, "htlc-test", gen.ChainID)

	var v string
	require.NoError(t, gen.AppOptions.ReadOptions("value", &v))
	assert.Equal(t, "hello", v)

	_, err = LoadGenesis(filepath.Join(dir, "missing.json"))
	assert.True(t, errors.ErrInput.Is(err))

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"chain_id": `), 0o600))
	_, err = LoadGenesis(broken)
	assert.True(t, errors.ErrInput.Is(err))
}

type countingInitializer struct {
	calls *int
	err   error
}

func (c countingInitializer) FromGenesis(htlc.Options, htlc.KVStore) error {
	*c.calls++
	return c.err
}

func TestChainInitializers(t *testing.T) {
	var first, second, third int
	init := ChainInitializers(
		countingInitializer{calls: &first},
		countingInitializer{calls: &second, err: errors.ErrState},
		countingInitializer{calls: &third},
	)
	err := init.FromGenesis(nil, store.MemStore())
	assert.True(t, errors.ErrState.Is(err))
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
	assert.Equal(t, 0, third)
}

func TestSaveChainID(t *testing.T) {
	db := store.MemStore()
	assert.True(t, errors.ErrInput.Is(saveChainID(db, "bad")))
	require.NoError(t, saveChainID(db, "good-chain"))
	assert.True(t, errors.ErrImmutable.Is(saveChainID(db, "other-chain")))

	id, err := loadChainID(db)
	require.NoError(t, err)
	assert.Equal(t, "good-chain", id)
}
