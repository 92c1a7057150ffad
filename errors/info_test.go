package errors

import (
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	cases := map[string]struct {
		err      error
		debug    bool
		wantCode uint32
		wantLog  string
	}{
		"nil error": {
			err:      nil,
			wantCode: 0,
			wantLog:  "",
		},
		"registered error": {
			err:      ErrNotFound,
			wantCode: ErrNotFound.code,
			wantLog:  ErrNotFound.desc,
		},
		"wrapped registered error": {
			err:      Wrap(ErrNotFound, "escrow"),
			wantCode: ErrNotFound.code,
			wantLog:  "escrow: not found",
		},
		"stdlib error is redacted": {
			err:      io.EOF,
			wantCode: internalCode,
			wantLog:  internalLog,
		},
		"wrapped stdlib error is redacted": {
			err:      Wrap(fmt.Errorf("stdlib"), "wrapped"),
			wantCode: internalCode,
			wantLog:  internalLog,
		},
		"stdlib error in debug mode": {
			err:      io.EOF,
			debug:    true,
			wantCode: internalCode,
			wantLog:  "EOF",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			code, log := Info(tc.err, tc.debug)
			if code != tc.wantCode {
				t.Errorf("want %d code, got %d", tc.wantCode, code)
			}
			if !strings.HasPrefix(log, tc.wantLog) {
				t.Errorf("want %q log, got %q", tc.wantLog, log)
			}
		})
	}
}
