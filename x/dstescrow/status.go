package dstescrow

import (
	"encoding/json"
	"strconv"

	"github.com/iov-one/htlc/errors"
)

// Status is the lifecycle state of an escrow. An escrow starts Active and
// moves into one of the terminal states exactly once.
type Status int32

const (
	StatusInvalid Status = iota
	StatusActive
	StatusWithdrawn
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusWithdrawn:
		return "withdrawn"
	case StatusCancelled:
		return "cancelled"
	}
	return "Status(" + strconv.Itoa(int(s)) + ")"
}

// Validate returns an error if the status is not declared.
func (s Status) Validate() error {
	switch s {
	case StatusActive, StatusWithdrawn, StatusCancelled:
		return nil
	}
	return errors.Wrapf(errors.ErrState, "unknown status %d", s)
}

// IsTerminal is true when no more release is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusWithdrawn || s == StatusCancelled
}

// MarshalJSON uses the status name.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
