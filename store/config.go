package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libhistory/store/impls/badgerkv"
	"github.com/sgostarter/libhistory/store/impls/fskv"
	"github.com/sgostarter/libhistory/store/impls/memkv"
	"github.com/sgostarter/libhistory/store/impls/rediskv"
	"gopkg.in/yaml.v3"
)

const (
	TypeMemory = "memory"
	TypeRedis  = "redis"
	TypeFile   = "file"
	TypeBadger = "badger"

	defaultFile = "histories.json"
)

var (
	_ KV = (*memkv.MemKV)(nil)
	_ KV = (*rediskv.RedisKV)(nil)
	_ KV = (*fskv.FSKV)(nil)
	_ KV = (*badgerkv.BadgerKV)(nil)
)

type Config struct {
	Type      string `yaml:"type" json:"type"`
	RedisDSN  string `yaml:"redisDSN" json:"redisDSN"`
	KeyPrefix string `yaml:"keyPrefix" json:"keyPrefix"`
	Root      string `yaml:"root" json:"root"`
	File      string `yaml:"file" json:"file"`
	InMemory  bool   `yaml:"inMemory" json:"inMemory"`
}

func LoadConfig(path string) (cfg *Config, err error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return
	}

	cfg = &Config{}

	if err = yaml.Unmarshal(d, cfg); err != nil {
		cfg = nil

		return
	}

	cfg.init()

	return
}

func (cfg *Config) init() {
	if cfg.Type == "" {
		cfg.Type = TypeMemory
	}

	if cfg.File == "" {
		cfg.File = defaultFile
	}
}

// NewKV builds the backend named by cfg.Type. A nil cfg gives the in-memory
// backend.
func NewKV(cfg *Config, logger l.Wrapper) (KV, error) {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	c := Config{}
	if cfg != nil {
		c = *cfg
	}

	c.init()

	logger = logger.WithFields(l.StringField(l.ClsKey, "kvFactory"), l.StringField("type", c.Type))

	switch c.Type {
	case TypeMemory:
		return memkv.NewMemKV(), nil
	case TypeRedis:
		if c.RedisDSN == "" {
			return nil, fmt.Errorf("redis dsn: %w", commerr.ErrInvalidArgument)
		}

		return rediskv.Dial(c.RedisDSN, c.KeyPrefix, logger)
	case TypeFile:
		return fskv.NewFSKV(filepath.Join(c.Root, c.File), rawfs.NewFSStorage("")), nil
	case TypeBadger:
		if c.Root == "" && !c.InMemory {
			return nil, fmt.Errorf("badger root: %w", commerr.ErrInvalidArgument)
		}

		return badgerkv.Open(c.Root, c.InMemory)
	}

	logger.Error("unknown kv type")

	return nil, fmt.Errorf("%s: %w", c.Type, ErrUnknownType)
}
