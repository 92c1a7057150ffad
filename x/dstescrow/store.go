package dstescrow

import (
	"encoding/binary"
	"encoding/hex"
	"math/big"

	"cosmossdk.io/math"
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/htlc"
	"github.com/iov-one/htlc/errors"
)

// BucketName prefixes every key written by this package.
const BucketName = "dstescrow"

// uint256Size is the length of the big endian rescue delay encoding.
const uint256Size = 32

const (
	slotRescueDelay = "rescue_delay"
	slotImmutables  = "immutables"
	slotDeployedAt  = "deployed_at"
	slotStatus      = "status"
)

// Store gives access to the persisted slots of a single escrow instance.
// Instances are namespaced by their address so that many escrows share one
// KVStore without collisions.
type Store struct {
	db     htlc.KVStore
	prefix []byte
}

// NewStore returns a store bound to the escrow at given address.
func NewStore(db htlc.KVStore, escrow htlc.Address) Store {
	prefix := BucketName + ":" + hex.EncodeToString(escrow) + ":"
	return Store{db: db, prefix: []byte(prefix)}
}

func (s Store) key(slot string) []byte {
	k := make([]byte, 0, len(s.prefix)+len(slot))
	k = append(k, s.prefix...)
	return append(k, slot...)
}

// IsInitialized returns true once the immutables were written.
func (s Store) IsInitialized() (bool, error) {
	return s.db.Has(s.key(slotImmutables))
}

func (s Store) load(slot string) ([]byte, error) {
	raw, err := s.db.Get(s.key(slot))
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", slot)
	}
	if raw == nil {
		return nil, errors.Wrap(ErrNotInitialized, slot)
	}
	return raw, nil
}

// SaveRescueDelay writes the rescue delay as a 32 byte big endian integer.
func (s Store) SaveRescueDelay(delay math.Uint) error {
	return s.db.Set(s.key(slotRescueDelay), EncodeUint256(delay))
}

// LoadRescueDelay returns the stored rescue delay.
func (s Store) LoadRescueDelay() (math.Uint, error) {
	raw, err := s.load(slotRescueDelay)
	if err != nil {
		return math.ZeroUint(), err
	}
	return DecodeUint256(raw)
}

// SaveImmutables writes the immutables verbatim.
func (s Store) SaveImmutables(imm *Immutables) error {
	raw, err := proto.Marshal(imm)
	if err != nil {
		return errors.Wrapf(errors.ErrModel, "immutables: %s", err)
	}
	return s.db.Set(s.key(slotImmutables), raw)
}

// LoadImmutables returns the stored immutables.
func (s Store) LoadImmutables() (*Immutables, error) {
	raw, err := s.load(slotImmutables)
	if err != nil {
		return nil, err
	}
	var imm Immutables
	if err := proto.Unmarshal(raw, &imm); err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "immutables: %s", err)
	}
	return &imm, nil
}

// SaveDeployedAt writes the time the escrow was initialized at.
func (s Store) SaveDeployedAt(t htlc.UnixTime) error {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, uint64(t))
	return s.db.Set(s.key(slotDeployedAt), raw)
}

// LoadDeployedAt returns the time the escrow was initialized at.
func (s Store) LoadDeployedAt() (htlc.UnixTime, error) {
	raw, err := s.load(slotDeployedAt)
	if err != nil {
		return 0, err
	}
	if len(raw) != 8 {
		return 0, errors.Wrapf(errors.ErrModel, "deployed at: %d bytes", len(raw))
	}
	return htlc.UnixTime(binary.BigEndian.Uint64(raw)), nil
}

// SaveStatus writes the escrow status.
func (s Store) SaveStatus(st Status) error {
	if err := st.Validate(); err != nil {
		return err
	}
	return s.db.Set(s.key(slotStatus), []byte{byte(st)})
}

// LoadStatus returns the escrow status.
func (s Store) LoadStatus() (Status, error) {
	raw, err := s.load(slotStatus)
	if err != nil {
		return StatusInvalid, err
	}
	if len(raw) != 1 {
		return StatusInvalid, errors.Wrapf(errors.ErrModel, "status: %d bytes", len(raw))
	}
	st := Status(raw[0])
	return st, st.Validate()
}

// EncodeUint256 returns the 32 byte big endian form of n.
func EncodeUint256(n math.Uint) []byte {
	return n.BigInt().FillBytes(make([]byte, uint256Size))
}

// DecodeUint256 parses a 32 byte big endian integer.
func DecodeUint256(raw []byte) (math.Uint, error) {
	if len(raw) != uint256Size {
		return math.ZeroUint(), errors.Wrapf(errors.ErrInput, "uint256 must be %d bytes, got %d", uint256Size, len(raw))
	}
	return math.NewUintFromBigInt(new(big.Int).SetBytes(raw)), nil
}
