package x

import (
	"github.com/iov-one/htlc"
	"github.com/iov-one/htlc/errors"
)

// Authenticator extracts the conditions that authorized the current
// transaction from the context. Handlers receive it in their constructor so
// that the signature scheme is not hard-coded into the extensions.
type Authenticator interface {
	// GetConditions reveals all Conditions fulfilled. The first one
	// belongs to the main signer.
	GetConditions(htlc.Context) []htlc.Condition
	// HasAddress checks if any condition matches this address
	HasAddress(htlc.Context, htlc.Address) bool
}

// MainSigner returns the first signer of the transaction, or nil if the
// transaction was not signed.
func MainSigner(ctx htlc.Context, auth Authenticator) htlc.Condition {
	signers := auth.GetConditions(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}

// MainSignerAddress returns the address of the main signer. The escrow
// handlers act on behalf of this address: a taker must sign a withdraw and
// a resolver pays for the escrow it instantiates.
func MainSignerAddress(ctx htlc.Context, auth Authenticator) (htlc.Address, error) {
	signer := MainSigner(ctx, auth)
	if signer == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	return signer.Address(), nil
}
