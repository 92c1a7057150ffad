package cash

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/htlc"
	"github.com/iov-one/htlc/coin"
	"github.com/iov-one/htlc/errors"
)

// BucketName is where we store the balances
const BucketName = "cash"

// Set is the persisted content of a wallet.
type Set struct {
	Coins coin.Coins `protobuf:"bytes,1,rep,name=coins,proto3" json:"coins,omitempty"`
}

var _ proto.Message = (*Set)(nil)

func (s *Set) Reset()         { *s = Set{} }
func (s *Set) String() string { return s.Coins.String() }
func (*Set) ProtoMessage()    {}

// Validate requires that all coins are in alphabetical order
func (s *Set) Validate() error {
	return s.Coins.Validate()
}

// Copy makes a new set with the same coins
func (s *Set) Copy() *Set {
	return &Set{
		Coins: s.Coins.Clone(),
	}
}

// Wallet is the actual object that we want to pass around
// in our code. It contains a set of coins, as well as the
// address.
type Wallet struct {
	key   htlc.Address
	value *Set
}

// NewWallet creates an empty wallet with this address
func NewWallet(key htlc.Address) *Wallet {
	return &Wallet{key: key, value: new(Set)}
}

// WalletWith creates a wallet holding given coins.
func WalletWith(key htlc.Address, coins ...*coin.Coin) (*Wallet, error) {
	w := NewWallet(key)
	if err := w.Concat(coins); err != nil {
		return nil, err
	}
	return w, nil
}

// Key returns the address of the wallet.
func (w Wallet) Key() htlc.Address {
	return w.key
}

// Validate makes sure the fields aren't empty.
// And delegates to the value validator
func (w Wallet) Validate() error {
	if err := w.key.Validate(); err != nil {
		return errors.Wrap(err, "wallet address")
	}
	return w.value.Validate()
}

// Coins returns the coins stored in the wallet
func (w Wallet) Coins() coin.Coins {
	return w.value.Coins
}

// Add modifies the wallet to add Coin c
func (w *Wallet) Add(c coin.Coin) error {
	cs, err := w.Coins().Add(c)
	if err != nil {
		return err
	}
	w.value.Coins = cs
	return nil
}

// Subtract modifies the wallet to remove Coin c
func (w *Wallet) Subtract(c coin.Coin) error {
	cs, err := w.Coins().Subtract(c)
	if err != nil {
		return err
	}
	w.value.Coins = cs
	return nil
}

// Concat combines the coins to make sure they are sorted
// with no duplicates or 0 values.
func (w *Wallet) Concat(coins coin.Coins) error {
	joint, err := w.Coins().Combine(coins)
	if err != nil {
		return err
	}
	w.value.Coins = joint
	return nil
}

//--- Bucket - type-safe access to the wallets

// Bucket loads and stores wallets under the BucketName prefix.
type Bucket struct{}

// NewBucket initializes a cash.Bucket
func NewBucket() Bucket {
	return Bucket{}
}

func (Bucket) dbKey(addr htlc.Address) []byte {
	return append([]byte(BucketName+":"), addr...)
}

// Get returns the wallet stored under given address or nil.
func (b Bucket) Get(db htlc.ReadOnlyKVStore, key htlc.Address) (*Wallet, error) {
	raw, err := db.Get(b.dbKey(key))
	if err != nil {
		return nil, errors.Wrap(err, "get wallet")
	}
	if raw == nil {
		return nil, nil
	}
	var set Set
	if err := proto.Unmarshal(raw, &set); err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "wallet %s: %s", key, err)
	}
	return &Wallet{key: key, value: &set}, nil
}

// Save writes the wallet. Empty wallets are removed from the store.
func (b Bucket) Save(db htlc.KVStore, w *Wallet) error {
	if err := w.Validate(); err != nil {
		return err
	}
	if w.Coins().IsEmpty() {
		return db.Delete(b.dbKey(w.key))
	}
	raw, err := proto.Marshal(w.value)
	if err != nil {
		return errors.Wrapf(errors.ErrModel, "wallet %s: %s", w.key, err)
	}
	return db.Set(b.dbKey(w.key), raw)
}

// GetOrCreate returns the stored wallet or a new empty one.
func (b Bucket) GetOrCreate(db htlc.ReadOnlyKVStore, key htlc.Address) (*Wallet, error) {
	wallet, err := b.Get(db, key)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		wallet = NewWallet(key)
	}
	return wallet, nil
}
