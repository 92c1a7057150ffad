package dstescrow

import (
	"testing"

	"github.com/iov-one/htlc/errors"
	"github.com/iov-one/htlc/weavetest/assert"
)

func TestStatus(t *testing.T) {
	cases := map[Status]struct {
		terminal bool
		wantErr  *errors.Error
	}{
		StatusInvalid:   {wantErr: errors.ErrState},
		StatusActive:    {},
		StatusWithdrawn: {terminal: true},
		StatusCancelled: {terminal: true},
		Status(42):      {wantErr: errors.ErrState},
	}
	for s, tc := range cases {
		t.Run(s.String(), func(t *testing.T) {
			assert.IsErr(t, tc.wantErr, s.Validate())
			if got := s.IsTerminal(); got != tc.terminal {
				t.Fatalf("want terminal %v, got %v", tc.terminal, got)
			}
		})
	}
}
