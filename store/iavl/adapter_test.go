package iavl

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/iov-one/htlc/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeCommitStore(t testing.TB) (CommitStore, string, func()) {
	t.Helper()
	tmpDir, err := ioutil.TempDir("", "iavl-adapter-")
	require.NoError(t, err)
	commit, err := NewCommitStore(tmpDir, "base")
	require.NoError(t, err)
	cleanup := func() {
		commit.Close()
		os.RemoveAll(tmpDir)
	}
	return commit, tmpDir, cleanup
}

func assertGetHas(t testing.TB, kv store.ReadOnlyKVStore, key, val []byte, has bool) {
	t.Helper()
	got, err := kv.Get(key)
	require.NoError(t, err)
	assert.Equal(t, val, got)
	exists, err := kv.Has(key)
	require.NoError(t, err)
	assert.Equal(t, has, exists)
}

func TestCacheWriteIsVisibleAfterCommit(t *testing.T) {
	commit, _, cleanup := makeCommitStore(t)
	defer cleanup()

	k, v := []byte("dstescrow:aa:status"), []byte{1}

	cache := commit.CacheWrap()
	require.NoError(t, cache.Set(k, v))
	assertGetHas(t, cache, k, v, true)

	// not written yet, nothing in the tree
	got, err := commit.Get(k)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, cache.Write())
	assertGetHas(t, commit.Adapter(), k, v, true)

	// staged but not committed
	got, err = commit.Get(k)
	require.NoError(t, err)
	assert.Nil(t, got)

	id, err := commit.Commit()
	require.NoError(t, err)
	assert.Equal(t, int64(1), id.Version)
	assert.NotEmpty(t, id.Hash)
	assert.Equal(t, id, commit.LatestVersion())

	got, err = commit.Get(k)
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestDiscardedCacheLeavesTreeUntouched(t *testing.T) {
	commit := MockCommitStore()

	k := []byte("dstescrow:bb:immutables")
	cache := commit.CacheWrap()
	require.NoError(t, cache.Set(k, []byte("data")))
	cache.Discard()

	assertGetHas(t, commit.Adapter(), k, nil, false)
}

func TestReopenLoadsLatestVersion(t *testing.T) {
	tmpDir, err := ioutil.TempDir("", "iavl-reopen-")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	k, v := []byte("wallet:alice"), []byte("balance")

	first, err := NewCommitStore(tmpDir, "state")
	require.NoError(t, err)
	require.NoError(t, first.LoadLatestVersion())
	kv := first.Adapter()
	require.NoError(t, kv.Set(k, v))
	require.NoError(t, kv.Delete([]byte("missing")))
	want, err := first.Commit()
	require.NoError(t, err)
	first.Close()

	second, err := NewCommitStore(tmpDir, "state")
	require.NoError(t, err)
	defer second.Close()
	require.NoError(t, second.LoadLatestVersion())
	assert.Equal(t, want, second.LatestVersion())
	assertGetHas(t, second.Adapter(), k, v, true)
}
