package coin

import (
	"testing"

	"github.com/iov-one/htlc/errors"
	"github.com/iov-one/htlc/weavetest/assert"
)

func TestMakeCoins(t *testing.T) {
	cases := map[string]struct {
		inputs  []Coin
		want    Coins
		wantErr *errors.Error
	}{
		"empty": {
			want: Coins{},
		},
		"sorted and merged": {
			inputs: []Coin{NewCoin(5, "eth"), NewCoin(10, "atom"), NewCoin(5, "eth")},
			want:   Coins{NewCoinp(10, "atom"), NewCoinp(10, "eth")},
		},
		"zero coins are dropped": {
			inputs: []Coin{NewCoin(0, "eth"), NewCoin(1, "atom")},
			want:   Coins{NewCoinp(1, "atom")},
		},
		"invalid denomination": {
			inputs:  []Coin{NewCoin(5, "e")},
			wantErr: errors.ErrCurrency,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := CombineCoins(tc.inputs...)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.Equal(t, true, tc.want.Equals(got))
			}
		})
	}
}

func TestCoinsSubtract(t *testing.T) {
	base, err := CombineCoins(NewCoin(1000, "atom"), NewCoin(5, "eth"))
	assert.Nil(t, err)

	rest, err := base.Subtract(NewCoin(400, "atom"))
	assert.Nil(t, err)
	assert.Equal(t, true, rest.Equals(Coins{NewCoinp(600, "atom"), NewCoinp(5, "eth")}))

	// original is not modified
	assert.Equal(t, true, base.Contains(NewCoin(1000, "atom")))

	rest, err = base.Subtract(NewCoin(5, "eth"))
	assert.Nil(t, err)
	assert.Equal(t, 1, len(rest))

	_, err = base.Subtract(NewCoin(6, "eth"))
	assert.IsErr(t, errors.ErrInsufficientAmount, err)
	_, err = base.Subtract(NewCoin(1, "btc"))
	assert.IsErr(t, errors.ErrInsufficientAmount, err)
}

func TestCoinsHasExact(t *testing.T) {
	funds := Coins{NewCoinp(1000, "atom"), NewCoinp(3, "eth")}

	assert.Equal(t, true, funds.HasExact(NewCoin(1000, "atom")))
	assert.Equal(t, true, funds.HasExact(NewCoin(3, "eth")))
	assert.Equal(t, false, funds.HasExact(NewCoin(500, "atom")))
	assert.Equal(t, false, funds.HasExact(NewCoin(1001, "atom")))
	assert.Equal(t, false, funds.HasExact(NewCoin(1000, "btc")))
	assert.Equal(t, false, Coins(nil).HasExact(NewCoin(1000, "atom")))
}

func TestCombine(t *testing.T) {
	a := Coins{NewCoinp(1, "atom"), NewCoinp(2, "eth")}
	b := Coins{NewCoinp(3, "btc"), NewCoinp(4, "eth")}

	got, err := a.Combine(b)
	assert.Nil(t, err)
	want := Coins{NewCoinp(1, "atom"), NewCoinp(3, "btc"), NewCoinp(6, "eth")}
	assert.Equal(t, true, want.Equals(got))
	assert.Nil(t, got.Validate())
	assert.Equal(t, "1atom,3btc,6eth", got.String())
}

func TestCoinsNormalize(t *testing.T) {
	cases := map[string]struct {
		coins Coins
		want  Coins
	}{
		"nil": {
			coins: nil,
			want:  nil,
		},
		"already normalized": {
			coins: Coins{NewCoinp(1, "atom"), NewCoinp(2, "eth")},
			want:  Coins{NewCoinp(1, "atom"), NewCoinp(2, "eth")},
		},
		"unordered with duplicates and zeros": {
			coins: Coins{NewCoinp(2, "eth"), NewCoinp(0, "btc"), NewCoinp(1, "atom"), NewCoinp(3, "eth")},
			want:  Coins{NewCoinp(1, "atom"), NewCoinp(5, "eth")},
		},
		"only zeros": {
			coins: Coins{NewCoinp(0, "eth"), nil},
			want:  nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := NormalizeCoins(tc.coins)
			assert.Nil(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, true, isNormalized(got))
		})
	}
}

func TestCoinsValidate(t *testing.T) {
	assert.Nil(t, Coins{NewCoinp(1, "atom"), NewCoinp(2, "eth")}.Validate())
	assert.IsErr(t, errors.ErrState, Coins{NewCoinp(2, "eth"), NewCoinp(1, "atom")}.Validate())
	assert.IsErr(t, errors.ErrState, Coins{NewCoinp(0, "eth")}.Validate())
	assert.IsErr(t, errors.ErrEmpty, Coins{nil}.Validate())
}
