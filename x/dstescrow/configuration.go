package dstescrow

import (
	"github.com/iov-one/htlc"
	"github.com/iov-one/htlc/errors"
	"github.com/iov-one/htlc/gconf"
)

// Configuration is the chain wide setting of all escrows.
type Configuration struct {
	// StrictTimelocks rejects escrows whose destination windows are not
	// ordered.
	StrictTimelocks bool `protobuf:"varint,1,opt,name=strict_timelocks,json=strictTimelocks,proto3" json:"strict_timelocks"`
	// MaxSecretLength limits the secret revealed by withdraw messages.
	// Zero means no limit.
	MaxSecretLength int32 `protobuf:"varint,2,opt,name=max_secret_length,json=maxSecretLength,proto3" json:"max_secret_length"`
}

var _ gconf.Configuration = (*Configuration)(nil)

func (c *Configuration) Reset()         { *c = Configuration{} }
func (c *Configuration) String() string { return "dstescrow.Configuration" }
func (*Configuration) ProtoMessage()    {}

// Validate ensures the configuration values make sense.
func (c *Configuration) Validate() error {
	if c.MaxSecretLength < 0 {
		return errors.Wrap(errors.ErrState, "max secret length must not be negative")
	}
	return nil
}

// DefaultConfiguration is used when no configuration was saved.
func DefaultConfiguration() Configuration {
	return Configuration{StrictTimelocks: true}
}

// CheckSecret returns an error if the secret is longer than allowed.
func (c Configuration) CheckSecret(secret string) error {
	if c.MaxSecretLength > 0 && len(secret) > int(c.MaxSecretLength) {
		return errors.Wrapf(errors.ErrInput, "secret longer than %d bytes", c.MaxSecretLength)
	}
	return nil
}

// loadConf returns the stored configuration or the default one.
func loadConf(db gconf.ReadStore) (Configuration, error) {
	var conf Configuration
	switch err := gconf.Load(db, BucketName, &conf); {
	case err == nil:
		return conf, nil
	case errors.ErrNotFound.Is(err):
		return DefaultConfiguration(), nil
	default:
		return conf, errors.Wrap(err, "load configuration")
	}
}

// Initializer stores the configuration declared in the genesis file.
type Initializer struct{}

var _ htlc.Initializer = Initializer{}

// FromGenesis reads conf.dstescrow. Values absent from the genesis keep
// their defaults. Without the section nothing is stored.
func (Initializer) FromGenesis(opts htlc.Options, db htlc.KVStore) error {
	conf := DefaultConfiguration()
	err := gconf.InitConfig(db, opts, BucketName, &conf)
	if err != nil && !errors.ErrNotFound.Is(err) {
		return err
	}
	return nil
}
