package dstescrow

import (
	"bytes"

	"golang.org/x/crypto/sha3"
)

// Keccak256 returns the legacy Keccak 256 digest of data, as used by
// Ethereum and the source chain contracts.
func Keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}

// Hashlock returns the hashlock committing to given secret.
func Hashlock(secret string) []byte {
	return Keccak256([]byte(secret))
}

// MatchSecret is true when secret is the preimage of the hashlock. The
// hashlock is either the raw digest or the digest with ASCII letters lower
// cased, the form the source chain contracts commit to. The stored hashlock
// is never normalized.
func MatchSecret(hashlock []byte, secret string) bool {
	h := Hashlock(secret)
	return bytes.Equal(h, hashlock) || bytes.Equal(lowerASCII(h), hashlock)
}

func lowerASCII(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return out
}
