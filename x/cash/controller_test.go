package cash

import (
	"testing"

	"github.com/iov-one/htlc/coin"
	"github.com/iov-one/htlc/errors"
	"github.com/iov-one/htlc/store"
	"github.com/iov-one/htlc/weavetest"
	"github.com/iov-one/htlc/weavetest/assert"
)

func TestIssueCoins(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	addr := weavetest.NewCondition().Address()

	_, err := ctrl.Balance(db, addr)
	assert.IsErr(t, errors.ErrNotFound, err)

	assert.Nil(t, ctrl.IssueCoins(db, addr, coin.NewCoin(1000, "atom")))
	assert.Nil(t, ctrl.IssueCoins(db, addr, coin.NewCoin(5, "eth")))
	assert.Nil(t, ctrl.IssueCoins(db, addr, coin.NewCoin(1, "atom")))

	balance, err := ctrl.Balance(db, addr)
	assert.Nil(t, err)
	want := coin.Coins{coin.NewCoinp(1001, "atom"), coin.NewCoinp(5, "eth")}
	if !want.Equals(balance) {
		t.Fatalf("want %s balance, got %s", want, balance)
	}

	err = ctrl.IssueCoins(db, addr, coin.NewCoin(1, "x"))
	assert.IsErr(t, errors.ErrCurrency, err)
}

func TestMoveCoins(t *testing.T) {
	alice := weavetest.NewCondition().Address()
	bert := weavetest.NewCondition().Address()

	cases := map[string]struct {
		src     []byte
		dest    []byte
		amount  coin.Coin
		wantErr *errors.Error
		// balances after the operation
		wantSrc  coin.Coins
		wantDest coin.Coins
	}{
		"partial move": {
			src:      alice,
			dest:     bert,
			amount:   coin.NewCoin(400, "atom"),
			wantSrc:  coin.Coins{coin.NewCoinp(600, "atom"), coin.NewCoinp(3, "eth")},
			wantDest: coin.Coins{coin.NewCoinp(400, "atom")},
		},
		"move everything of a denomination": {
			src:      alice,
			dest:     bert,
			amount:   coin.NewCoin(3, "eth"),
			wantSrc:  coin.Coins{coin.NewCoinp(1000, "atom")},
			wantDest: coin.Coins{coin.NewCoinp(3, "eth")},
		},
		"move to self": {
			src:      alice,
			dest:     alice,
			amount:   coin.NewCoin(1000, "atom"),
			wantSrc:  coin.Coins{coin.NewCoinp(1000, "atom"), coin.NewCoinp(3, "eth")},
			wantDest: coin.Coins{coin.NewCoinp(1000, "atom"), coin.NewCoinp(3, "eth")},
		},
		"insufficient funds": {
			src:     alice,
			dest:    bert,
			amount:  coin.NewCoin(1001, "atom"),
			wantErr: errors.ErrInsufficientAmount,
		},
		"unknown denomination": {
			src:     alice,
			dest:    bert,
			amount:  coin.NewCoin(1, "btc"),
			wantErr: errors.ErrInsufficientAmount,
		},
		"empty source": {
			src:     bert,
			dest:    alice,
			amount:  coin.NewCoin(1, "atom"),
			wantErr: errors.ErrEmpty,
		},
		"zero amount": {
			src:     alice,
			dest:    bert,
			amount:  coin.NewCoin(0, "atom"),
			wantErr: errors.ErrAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController()
			assert.Nil(t, ctrl.IssueCoins(db, alice, coin.NewCoin(1000, "atom")))
			assert.Nil(t, ctrl.IssueCoins(db, alice, coin.NewCoin(3, "eth")))

			err := ctrl.MoveCoins(db, tc.src, tc.dest, tc.amount)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr != nil {
				return
			}

			src, err := ctrl.Balance(db, tc.src)
			assert.Nil(t, err)
			if !tc.wantSrc.Equals(src) {
				t.Errorf("want %s source balance, got %s", tc.wantSrc, src)
			}
			dest, err := ctrl.Balance(db, tc.dest)
			assert.Nil(t, err)
			if !tc.wantDest.Equals(dest) {
				t.Errorf("want %s destination balance, got %s", tc.wantDest, dest)
			}
		})
	}
}

func TestEmptyWalletIsRemoved(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	alice := weavetest.NewCondition().Address()
	bert := weavetest.NewCondition().Address()

	assert.Nil(t, ctrl.IssueCoins(db, alice, coin.NewCoin(7, "atom")))
	assert.Nil(t, ctrl.MoveCoins(db, alice, bert, coin.NewCoin(7, "atom")))

	_, err := ctrl.Balance(db, alice)
	assert.IsErr(t, errors.ErrNotFound, err)

	has, err := db.Has(NewBucket().dbKey(alice))
	assert.Nil(t, err)
	assert.Equal(t, false, has)
}
