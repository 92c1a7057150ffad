package assert

import (
	"fmt"
	"testing"

	"github.com/iov-one/htlc/errors"
)

func TestIsErr(t *testing.T) {
	cases := map[string]struct {
		want     error
		got      error
		wantFail bool
	}{
		"same error": {
			want: errors.ErrEmpty,
			got:  errors.ErrEmpty,
		},
		"nil expected": {
			want:     nil,
			got:      errors.ErrEmpty,
			wantFail: true,
		},
		"both nil": {},
		"wrapped": {
			want: errors.ErrEmpty,
			got:  errors.Wrap(errors.ErrEmpty, "test"),
		},
		"different root": {
			want:     errors.ErrEmpty,
			got:      errors.Wrap(errors.ErrState, "test"),
			wantFail: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			mock := &tmock{TB: t}
			IsErr(mock, tc.want, tc.got)
			if failed := mock.fails > 0; failed != tc.wantFail {
				t.Fatalf("want fail %v, got %d failures", tc.wantFail, mock.fails)
			}
		})
	}
}

func TestNil(t *testing.T) {
	var nilPtr *int
	var nilErr error
	one := 1

	cases := map[string]struct {
		value    interface{}
		wantFail bool
	}{
		"nil":         {value: nil},
		"nil pointer": {value: nilPtr},
		"nil error":   {value: nilErr},
		"nil slice":   {value: []byte(nil)},
		"pointer":     {value: &one, wantFail: true},
		"int":         {value: 0, wantFail: true},
		"string":      {value: "", wantFail: true},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			mock := &tmock{TB: t}
			Nil(mock, tc.value)
			if failed := mock.fails > 0; failed != tc.wantFail {
				t.Fatalf("want fail %v, got %d failures", tc.wantFail, mock.fails)
			}
		})
	}
}

func TestPanics(t *testing.T) {
	mock := &tmock{TB: t}
	Panics(mock, func() { panic(fmt.Sprint("boom")) })
	Panics(mock, func() {})
	if mock.fails != 1 {
		t.Fatalf("want one failure, got %d", mock.fails)
	}
}

// tmock counts failures instead of stopping the test.
type tmock struct {
	testing.TB
	fails int
}

func (t *tmock) Fatal(args ...interface{}) {
	t.TB.Log(args...)
	t.fails++
}

func (t *tmock) Fatalf(s string, args ...interface{}) {
	t.TB.Logf(s, args...)
	t.fails++
}
