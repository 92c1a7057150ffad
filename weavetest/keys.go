package weavetest

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/iov-one/htlc"
)

var condSeq uint64

// NewCondition returns a new, unique condition. Each call returns a
// different value.
func NewCondition() htlc.Condition {
	n := atomic.AddUint64(&condSeq, 1)
	return htlc.NewCondition("weavetest", "seq", SequenceID(n))
}

// SequenceID returns the big endian encoded form of given sequence value.
func SequenceID(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}
