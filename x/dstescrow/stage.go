package dstescrow

import (
	"strconv"

	"github.com/iov-one/htlc"
	"github.com/iov-one/htlc/errors"
)

// Stage names a phase of a cross chain swap. Source stages are declared so
// that both halves of the swap share one enumeration.
type Stage int32

const (
	SrcWithdrawal Stage = iota
	SrcPublicWithdrawal
	SrcCancellation
	SrcPublicCancellation
	DstWithdrawal
	DstPublicWithdrawal
	DstCancellation
)

var stageNames = map[Stage]string{
	SrcWithdrawal:         "SrcWithdrawal",
	SrcPublicWithdrawal:   "SrcPublicWithdrawal",
	SrcCancellation:       "SrcCancellation",
	SrcPublicCancellation: "SrcPublicCancellation",
	DstWithdrawal:         "DstWithdrawal",
	DstPublicWithdrawal:   "DstPublicWithdrawal",
	DstCancellation:       "DstCancellation",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "Stage(" + strconv.Itoa(int(s)) + ")"
}

// Validate returns an error if the stage is not declared.
func (s Stage) Validate() error {
	if _, ok := stageNames[s]; !ok {
		return errors.Wrapf(errors.ErrInput, "unknown stage %d", s)
	}
	return nil
}

// Get returns the threshold of given stage. Only stages that have a
// threshold declared in the timelocks can be used.
func (t *Timelocks) Get(s Stage) (htlc.UnixTime, error) {
	switch s {
	case DstWithdrawal:
		return t.Withdrawal, nil
	case DstPublicWithdrawal:
		return t.PublicWithdrawal, nil
	case DstCancellation:
		return t.DestCancellation, nil
	case SrcCancellation:
		return t.SrcCancellation, nil
	}
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return 0, errors.Wrapf(errors.ErrInput, "no threshold for %s stage", s)
}
