package sigs

import (
	"github.com/iov-one/htlc"
)

// Signer returns the condition of a named local user. It is the signer
// representation used by hosts that authenticate users out of band, like the
// command line client.
func Signer(name string) htlc.Condition {
	return htlc.NewCondition("sigs", "user", []byte(name))
}
