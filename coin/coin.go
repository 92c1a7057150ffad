package coin

import (
	"encoding/json"
	"regexp"
	"strconv"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/htlc/errors"
)

//-------------- Coin -----------------------

// IsDenom is the RegExp to ensure valid denomination names. A denomination
// starts with a letter and may contain letters, digits and a slash.
var IsDenom = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9/]{2,127}$`).MatchString

// Coin is an amount of a single denomination. The amount is always
// expressed in the smallest indivisible unit of the denomination.
type Coin struct {
	Denom  string `protobuf:"bytes,1,opt,name=denom,proto3" json:"denom,omitempty"`
	Amount uint64 `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

var _ proto.Message = (*Coin)(nil)

func (c *Coin) Reset()      { *c = Coin{} }
func (*Coin) ProtoMessage() {}

// NewCoin creates a new coin object
func NewCoin(amount uint64, denom string) Coin {
	return Coin{
		Denom:  denom,
		Amount: amount,
	}
}

// NewCoinp returns a pointer to a new coin.
func NewCoinp(amount uint64, denom string) *Coin {
	c := NewCoin(amount, denom)
	return &c
}

// ID returns a coin denomination name.
func (c Coin) ID() string {
	return c.Denom
}

// Add combines two coins.
// Returns error if they are of different
// denominations, or if the combination would cause
// an overflow
func (c Coin) Add(o Coin) (Coin, error) {
	// If any of the coins represents no value and does not have a
	// denomination set then it has no influence on the addition result.
	if c.Denom == "" && c.IsZero() {
		return o, nil
	}
	if o.Denom == "" && o.IsZero() {
		return c, nil
	}

	if !c.SameType(o) {
		err := errors.Wrapf(errors.ErrCurrency, "adding %s to %s", c.Denom, o.Denom)
		return Coin{}, err
	}

	sum := c.Amount + o.Amount
	if sum < c.Amount {
		return Coin{}, errors.Wrapf(errors.ErrOverflow, "%s + %s", c, o)
	}
	c.Amount = sum
	return c, nil
}

// Subtract given amount. The result cannot be negative.
func (c Coin) Subtract(o Coin) (Coin, error) {
	if o.IsZero() {
		return c, nil
	}
	if !c.SameType(o) {
		err := errors.Wrapf(errors.ErrCurrency, "subtracting %s from %s", o.Denom, c.Denom)
		return Coin{}, err
	}
	if c.Amount < o.Amount {
		return Coin{}, errors.Wrapf(errors.ErrInsufficientAmount, "%s - %s", c, o)
	}
	c.Amount -= o.Amount
	return c, nil
}

// Compare will check values of two coins, without
// inspecting the denomination. It is up to the caller
// to determine if they want to check this.
//
// Returns 1 if c is larger, -1 if o is larger, 0 if equal
func (c Coin) Compare(o Coin) int {
	switch {
	case c.Amount > o.Amount:
		return 1
	case c.Amount < o.Amount:
		return -1
	default:
		return 0
	}
}

// Equals returns true if all fields are identical
func (c Coin) Equals(o Coin) bool {
	return c.Denom == o.Denom && c.Amount == o.Amount
}

// IsEmpty returns true on null or zero amount
func IsEmpty(c *Coin) bool {
	return c == nil || c.IsZero()
}

// IsZero returns true amounts are 0
func (c Coin) IsZero() bool {
	return c.Amount == 0
}

// IsPositive returns true if the value is greater than 0
func (c Coin) IsPositive() bool {
	return c.Amount > 0
}

// IsGTE returns true if c has the denomination of o and at least its amount.
func (c Coin) IsGTE(o Coin) bool {
	return c.SameType(o) && c.Amount >= o.Amount
}

// SameType returns true if they have the same denomination
func (c Coin) SameType(o Coin) bool {
	return c.Denom == o.Denom
}

// Clone provides an independent copy of a coin pointer
func (c *Coin) Clone() *Coin {
	if c == nil {
		return nil
	}
	return &Coin{
		Denom:  c.Denom,
		Amount: c.Amount,
	}
}

// Validate ensures that the coin has a valid denomination. It accepts zero
// values, so you may want to make other checks in your business logic.
func (c Coin) Validate() error {
	if !IsDenom(c.Denom) {
		return errors.Wrapf(errors.ErrCurrency, "invalid denomination: %q", c.Denom)
	}
	return nil
}

func (c *Coin) UnmarshalJSON(raw []byte) error {
	// Prioritize human readable format that is a string in format
	// "<amount><denom>"
	var human string
	if err := json.Unmarshal(raw, &human); err == nil {
		parsed, err := ParseHumanFormat(human)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	// Fallback into the default unmarshaling. Because UnmarshalJSON method
	// is provided, we can no longer use Coin type for this.
	var coin struct {
		Denom  string
		Amount uint64
	}
	if err := json.Unmarshal(raw, &coin); err != nil {
		return errors.Wrapf(errors.ErrInput, "coin: %s", err)
	}
	c.Denom = coin.Denom
	c.Amount = coin.Amount
	return nil
}

// String provides a human readable representation of the coin. For a valid
// coin the result is a valid human readable format that can be parsed back.
func (c Coin) String() string {
	return strconv.FormatUint(c.Amount, 10) + c.Denom
}

// ParseHumanFormat parse a human readable coin representation. Accepted format
// is a string:
//
//	"<amount>[ ]<denom>"
func ParseHumanFormat(h string) (Coin, error) {
	res := humanCoinFormatRx.FindStringSubmatch(h)
	if len(res) != 3 {
		return Coin{}, errors.Wrapf(errors.ErrInput, "invalid coin format: %q", h)
	}
	amount, err := strconv.ParseUint(res[1], 10, 64)
	if err != nil {
		return Coin{}, errors.Wrapf(errors.ErrOverflow, "invalid amount: %s", err)
	}
	c := Coin{Denom: res[2], Amount: amount}
	if err := c.Validate(); err != nil {
		return Coin{}, err
	}
	return c, nil
}

var humanCoinFormatRx = regexp.MustCompile(`^\s*(\d+)\s*([a-zA-Z][a-zA-Z0-9/]*)\s*$`)

// Set updates this coin value to what is provided. This method implements
// flag.Value interface.
func (c *Coin) Set(raw string) error {
	val, err := ParseHumanFormat(raw)
	if err != nil {
		return err
	}
	*c = val
	return nil
}
