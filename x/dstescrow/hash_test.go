package dstescrow

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeccak256(t *testing.T) {
	empty, err := hex.DecodeString("c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")
	require.NoError(t, err)
	assert.Equal(t, empty, Keccak256(nil))
	assert.Len(t, Hashlock("secret"), HashlockSize)
	assert.NotEqual(t, Hashlock("secret"), Hashlock("Secret"))
}

func TestMatchSecret(t *testing.T) {
	hashlock := Hashlock("secret")

	assert.True(t, MatchSecret(hashlock, "secret"))
	assert.False(t, MatchSecret(hashlock, "secret "))
	assert.False(t, MatchSecret(hashlock, ""))
	assert.False(t, MatchSecret(hashlock[:31], "secret"))

	// The lower cased form is accepted as a commitment too.
	assert.True(t, MatchSecret(lowerASCII(hashlock), "secret"))

	// Any other bit flip of the stored hashlock is rejected, ASCII case
	// included.
	for i, c := range hashlock {
		flipped := append([]byte(nil), hashlock...)
		switch {
		case 'a' <= c && c <= 'z':
			flipped[i] = c - ('a' - 'A')
		case 'A' <= c && c <= 'Z':
			flipped[i] = c + ('a' - 'A')
		default:
			flipped[i] = c ^ 0x01
		}
		if bytes.Equal(flipped, lowerASCII(hashlock)) {
			continue
		}
		if MatchSecret(flipped, "secret") {
			t.Fatalf("hashlock with byte %d changed was accepted", i)
		}
	}
}

func TestLowerASCII(t *testing.T) {
	in := []byte{'A', 'z', 'Q', 0x00, 0xC4, '[', '@'}
	want := []byte{'a', 'z', 'q', 0x00, 0xC4, '[', '@'}
	assert.Equal(t, want, lowerASCII(in))
}
