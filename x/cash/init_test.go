package cash

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/htlc"
	"github.com/iov-one/htlc/coin"
	"github.com/iov-one/htlc/errors"
	"github.com/iov-one/htlc/store"
	"github.com/iov-one/htlc/weavetest/assert"
)

func TestGenesisKey(t *testing.T) {
	const genesis = `{
		"cash": [
			{
				"address": "C30A2424104F542576EF01FECA2FF558F5EAA61A",
				"coins": ["100atom", {"denom": "eth", "amount": 5}]
			}
		]
	}`
	var opts htlc.Options
	assert.Nil(t, json.Unmarshal([]byte(genesis), &opts))

	db := store.MemStore()
	var ini Initializer
	assert.Nil(t, ini.FromGenesis(opts, db))

	addr, err := htlc.ParseAddress("C30A2424104F542576EF01FECA2FF558F5EAA61A")
	assert.Nil(t, err)
	balance, err := NewController().Balance(db, addr)
	assert.Nil(t, err)
	want := coin.Coins{coin.NewCoinp(100, "atom"), coin.NewCoinp(5, "eth")}
	if !want.Equals(balance) {
		t.Fatalf("want %s, got %s", want, balance)
	}
}

func TestGenesisErrors(t *testing.T) {
	cases := map[string]struct {
		genesis string
		wantErr *errors.Error
	}{
		"no cash section": {
			genesis: `{}`,
			wantErr: nil,
		},
		"short address": {
			genesis: `{"cash": [{"address": "C30A24", "coins": ["1atom"]}]}`,
			wantErr: errors.ErrInput,
		},
		"invalid coin": {
			genesis: `{"cash": [{"address": "C30A2424104F542576EF01FECA2FF558F5EAA61A", "coins": ["1a"]}]}`,
			wantErr: errors.ErrInput,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts htlc.Options
			assert.Nil(t, json.Unmarshal([]byte(tc.genesis), &opts))
			err := Initializer{}.FromGenesis(opts, store.MemStore())
			assert.IsErr(t, tc.wantErr, err)
		})
	}
}
