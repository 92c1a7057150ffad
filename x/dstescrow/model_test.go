package dstescrow

import (
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/htlc/coin"
	"github.com/iov-one/htlc/errors"
	"github.com/iov-one/htlc/weavetest"
	"github.com/iov-one/htlc/weavetest/assert"
)

func TestImmutablesValidate(t *testing.T) {
	maker := weavetest.NewCondition().Address()
	taker := weavetest.NewCondition().Address()

	cases := map[string]struct {
		mutate  func(*Immutables)
		wantErr *errors.Error
	}{
		"valid": {
			mutate: func(*Immutables) {},
		},
		"missing order hash": {
			mutate:  func(m *Immutables) { m.OrderHash = nil },
			wantErr: errors.ErrEmpty,
		},
		"long hashlock": {
			mutate:  func(m *Immutables) { m.Hashlock = append(m.Hashlock, 0) },
			wantErr: errors.ErrInput,
		},
		"invalid maker": {
			mutate:  func(m *Immutables) { m.Maker = m.Maker[:10] },
			wantErr: errors.ErrInput,
		},
		"missing token": {
			mutate:  func(m *Immutables) { m.Token = nil },
			wantErr: errors.ErrEmpty,
		},
		"zero token": {
			mutate:  func(m *Immutables) { m.Token = coin.NewCoinp(0, "stake") },
			wantErr: errors.ErrAmount,
		},
		"invalid token denomination": {
			mutate:  func(m *Immutables) { m.Token = coin.NewCoinp(1, "s") },
			wantErr: errors.ErrCurrency,
		},
		"missing timelocks": {
			mutate:  func(m *Immutables) { m.Timelocks = nil },
			wantErr: errors.ErrEmpty,
		},
		"negative timelock": {
			mutate:  func(m *Immutables) { m.Timelocks.SrcCancellation = -1 },
			wantErr: errors.ErrState,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			imm := newImmutables(maker, taker)
			tc.mutate(imm)
			assert.IsErr(t, tc.wantErr, imm.Validate())
		})
	}
}

func TestTimelocksGet(t *testing.T) {
	tl := Timelocks{Withdrawal: 1, PublicWithdrawal: 2, DestCancellation: 3, SrcCancellation: 4}

	for stage, want := range map[Stage]int64{
		DstWithdrawal:       1,
		DstPublicWithdrawal: 2,
		DstCancellation:     3,
		SrcCancellation:     4,
	} {
		got, err := tl.Get(stage)
		assert.Nil(t, err)
		assert.Equal(t, want, int64(got))
	}

	_, err := tl.Get(SrcWithdrawal)
	assert.IsErr(t, errors.ErrInput, err)
	_, err = tl.Get(Stage(99))
	assert.IsErr(t, errors.ErrInput, err)

	assert.Equal(t, "DstPublicWithdrawal", DstPublicWithdrawal.String())
	assert.Equal(t, "Stage(99)", Stage(99).String())
}

func TestImmutablesProtobuf(t *testing.T) {
	imm := newImmutables(weavetest.NewCondition().Address(), weavetest.NewCondition().Address())
	raw, err := proto.Marshal(imm)
	assert.Nil(t, err)

	var got Immutables
	assert.Nil(t, proto.Unmarshal(raw, &got))
	assert.Equal(t, imm, &got)
}

func TestEscrowAddressIsDeterministic(t *testing.T) {
	maker := weavetest.NewCondition().Address()
	taker := weavetest.NewCondition().Address()

	a, err := newImmutables(maker, taker).Address()
	assert.Nil(t, err)
	b, err := newImmutables(maker, taker).Address()
	assert.Nil(t, err)
	assert.Equal(t, a, b)
	assert.Nil(t, a.Validate())

	other := newImmutables(maker, taker)
	other.Token = coin.NewCoinp(1001, "stake")
	c, err := other.Address()
	assert.Nil(t, err)
	assert.Equal(t, false, a.Equals(c))
}
