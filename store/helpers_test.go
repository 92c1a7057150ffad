package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonAtomicBatch(t *testing.T) {
	base := MemStore()
	require.NoError(t, base.Set([]byte("gone"), []byte("soon")))

	b := NewNonAtomicBatch(base)
	require.NoError(t, b.Set([]byte("key"), []byte("value")))
	require.NoError(t, b.Delete([]byte("gone")))

	ops := b.ShowOps()
	require.Len(t, ops, 2)
	k, v, ok := ops[0].IsSetOp()
	assert.True(t, ok)
	assert.Equal(t, []byte("key"), k)
	assert.Equal(t, []byte("value"), v)
	k, ok = ops[1].IsDeleteOp()
	assert.True(t, ok)
	assert.Equal(t, []byte("gone"), k)

	// nothing is visible before the write
	got, err := base.Get([]byte("key"))
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, b.Write())
	assert.Empty(t, b.ShowOps())

	got, err = base.Get([]byte("key"))
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), got)
	has, err := base.Has([]byte("gone"))
	require.NoError(t, err)
	assert.False(t, has)
}
