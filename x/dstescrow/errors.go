package dstescrow

import (
	"github.com/iov-one/htlc/errors"
)

// dstescrow takes 1000-1020
var (
	ErrUnmatchedDenomOrAmount  = errors.Register(1000, "no attached fund matches the escrow token")
	ErrOnlyTaker               = errors.Register(1001, "only the taker can call")
	ErrDestWithdrawTimeLimit   = errors.Register(1002, "withdrawal period not started")
	ErrDestCancelTimeLimit     = errors.Register(1003, "cancellation period started")
	ErrInvalidSecret           = errors.Register(1004, "invalid secret")
	ErrNotInitialized          = errors.Register(1005, "escrow not initialized")
	ErrAlreadyInitialized      = errors.Register(1006, "escrow already initialized")
	ErrClosed                  = errors.Register(1007, "escrow closed")
	ErrPublicWithdrawTimeLimit = errors.Register(1008, "public withdrawal period not started")
	ErrCancelTimeLimit         = errors.Register(1009, "cancellation period not started")
	ErrRescueTimeLimit         = errors.Register(1010, "rescue delay not passed")
	ErrInvalidTimelocks        = errors.Register(1011, "invalid timelocks order")
)
