package gconf

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/htlc"
	"github.com/iov-one/htlc/errors"
	"github.com/iov-one/htlc/store"
	"github.com/iov-one/htlc/weavetest/assert"
)

type MyConfig struct {
	Number int64        `protobuf:"varint,1,opt,name=number,proto3" json:"number,omitempty"`
	Text   string       `protobuf:"bytes,2,opt,name=text,proto3" json:"text,omitempty"`
	Addr   htlc.Address `protobuf:"bytes,3,opt,name=addr,proto3" json:"addr,omitempty"`
}

func (c *MyConfig) Reset()         { *c = MyConfig{} }
func (c *MyConfig) String() string { return c.Text }
func (*MyConfig) ProtoMessage()    {}

func (c *MyConfig) Validate() error {
	if c.Number < 0 {
		return errors.Wrap(errors.ErrInput, "negative number")
	}
	if c.Addr != nil {
		return c.Addr.Validate()
	}
	return nil
}

func TestSaveLoad(t *testing.T) {
	addr := htlc.NewCondition("cli", "user", []byte("alice")).Address()

	cases := map[string]struct {
		Conf        *MyConfig
		WantSaveErr *errors.Error
	}{
		"all fields": {
			Conf: &MyConfig{Number: 852151421, Text: "foobar", Addr: addr},
		},
		"zero value": {
			Conf: &MyConfig{},
		},
		"invalid address cannot be saved": {
			Conf:        &MyConfig{Addr: htlc.Address("too short")},
			WantSaveErr: errors.ErrInput,
		},
		"invalid number cannot be saved": {
			Conf:        &MyConfig{Number: -1},
			WantSaveErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			err := Save(db, "mypkg", tc.Conf)
			assert.IsErr(t, tc.WantSaveErr, err)
			if tc.WantSaveErr != nil {
				return
			}

			var got MyConfig
			assert.Nil(t, Load(db, "mypkg", &got))
			assert.Equal(t, tc.Conf.Number, got.Number)
			assert.Equal(t, tc.Conf.Text, got.Text)
			assert.Equal(t, true, tc.Conf.Addr.Equals(got.Addr))
		})
	}
}

func TestLoadMissing(t *testing.T) {
	var got MyConfig
	err := Load(store.MemStore(), "nothing", &got)
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestInitConfig(t *testing.T) {
	cases := map[string]struct {
		genesis string
		wantErr *errors.Error
		want    MyConfig
	}{
		"loaded from genesis": {
			genesis: `{"conf": {"mypkg": {"number": 7, "text": "hello"}}}`,
			want:    MyConfig{Number: 7, Text: "hello"},
		},
		"missing package section": {
			genesis: `{"conf": {"other": {"number": 7}}}`,
			wantErr: errors.ErrNotFound,
		},
		"missing conf section": {
			genesis: `{}`,
			wantErr: errors.ErrNotFound,
		},
		"invalid configuration": {
			genesis: `{"conf": {"mypkg": {"number": -4}}}`,
			wantErr: errors.ErrInput,
		},
		"malformed configuration": {
			genesis: `{"conf": {"mypkg": {"number": "seven"}}}`,
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts htlc.Options
			if err := json.Unmarshal([]byte(tc.genesis), &opts); err != nil {
				t.Fatalf("cannot unmarshal genesis: %s", err)
			}
			db := store.MemStore()
			err := InitConfig(db, opts, "mypkg", &MyConfig{})
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr != nil {
				return
			}
			var got MyConfig
			assert.Nil(t, Load(db, "mypkg", &got))
			assert.Equal(t, tc.want, got)
		})
	}
}
