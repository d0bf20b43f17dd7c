// Package config loads wordladder settings from a TOML file.
//
// The file is optional. Missing sections fall back to defaults, and command
// line flags are applied on top by the CLI:
//
//	[dictionary]
//	path = "/usr/share/dict/words"
//
//	[transform]
//	alphabet = "abcdefghijklmnopqrstuvwxyz"
//	possessives = true
//
//	[cache]
//	backend = "redis"
//	redis_url = "redis://localhost:6379/0"
//	ttl = "168h"
//
// backend = "mongo" stores entries in a MongoDB collection instead, with
// mongo_uri and mongo_database selecting the deployment.
//
//	[server]
//	addr = ":8080"
//
//	[matrix]
//	cap = 100
//	workers = 8
package config

import (
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/wordladder/pkg/errors"
	"github.com/matzehuels/wordladder/pkg/ladder"
)

// AppName names the config and cache directories.
const AppName = "wordladder"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
	BackendNone  = "none"
)

// Defaults.
const (
	DefaultAddr     = ":8080"
	DefaultRedisURL = "redis://localhost:6379/0"
	DefaultMongoURI = "mongodb://localhost:27017"
	DefaultMongoDB  = AppName
)

// Config is the full set of file-backed settings.
type Config struct {
	Dictionary Dictionary `toml:"dictionary"`
	Transform  Transform  `toml:"transform"`
	Cache      Cache      `toml:"cache"`
	Server     Server     `toml:"server"`
	Matrix     Matrix     `toml:"matrix"`
}

// Dictionary selects the word source. Sample wins over Path.
type Dictionary struct {
	Path   string `toml:"path"`
	Sample bool   `toml:"sample"`
}

// Transform configures neighbor generation.
// Possessives is a pointer so an absent key keeps the default of true.
type Transform struct {
	Alphabet    string `toml:"alphabet"`
	Possessives *bool  `toml:"possessives"`
}

// Cache selects the derived-result cache.
type Cache struct {
	Backend       string   `toml:"backend"`
	RedisURL      string   `toml:"redis_url"`
	MongoURI      string   `toml:"mongo_uri"`
	MongoDatabase string   `toml:"mongo_database"`
	TTL           Duration `toml:"ttl"`
	Prefix        string   `toml:"prefix"`
}

// Server configures `wordladder serve`.
type Server struct {
	Addr string `toml:"addr"`
}

// Matrix configures distance matrix computation.
type Matrix struct {
	Cap     int `toml:"cap"`
	Workers int `toml:"workers"`
}

// Duration decodes TOML strings such as "36h" via time.ParseDuration.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns a config with every default applied.
func Default() *Config {
	c := &Config{}
	c.SetDefaults()
	return c
}

// SetDefaults fills zero-valued fields.
func (c *Config) SetDefaults() {
	if c.Transform.Alphabet == "" {
		c.Transform.Alphabet = ladder.Lowercase
	}
	if c.Transform.Possessives == nil {
		on := true
		c.Transform.Possessives = &on
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = BackendFile
	}
	if c.Cache.Backend == BackendRedis && c.Cache.RedisURL == "" {
		c.Cache.RedisURL = DefaultRedisURL
	}
	if c.Cache.Backend == BackendMongo {
		if c.Cache.MongoURI == "" {
			c.Cache.MongoURI = DefaultMongoURI
		}
		if c.Cache.MongoDatabase == "" {
			c.Cache.MongoDatabase = DefaultMongoDB
		}
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Matrix.Cap <= 0 {
		c.Matrix.Cap = ladder.DefaultCap
	}
}

// Validate checks the config for values the engine cannot use.
func (c *Config) Validate() error {
	if err := errors.ValidateAlphabet(c.Transform.Alphabet); err != nil {
		return err
	}
	switch c.Cache.Backend {
	case BackendFile, BackendRedis, BackendMongo, BackendNone:
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"cache backend %q (want file, redis, mongo or none)", c.Cache.Backend)
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache ttl must not be negative")
	}
	if c.Matrix.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "matrix workers must not be negative")
	}
	if c.Dictionary.Path != "" && !c.Dictionary.Sample {
		if err := errors.ValidatePath(c.Dictionary.Path); err != nil {
			return err
		}
	}
	return nil
}

// TransformerOptions returns the ladder options this config selects.
func (c *Config) TransformerOptions() ladder.TransformerOptions {
	opts := ladder.DefaultTransformerOptions()
	if c.Transform.Alphabet != "" {
		opts.Alphabet = c.Transform.Alphabet
	}
	if c.Transform.Possessives != nil {
		opts.Possessives = *c.Transform.Possessives
	}
	return opts
}

// Load reads path, applies defaults and validates. A missing file yields the
// defaults when optional is true.
func Load(path string, optional bool) (*Config, error) {
	c := &Config{}
	if _, err := toml.DecodeFile(path, c); err != nil {
		if optional && os.IsNotExist(err) {
			return Default(), nil
		}
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	c.SetDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Decode parses TOML text. Used for tests and embedded configs.
func Decode(data string) (*Config, error) {
	c := &Config{}
	if _, err := toml.Decode(data, c); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	c.SetDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Path returns the default config file location,
// $XDG_CONFIG_HOME/wordladder/config.toml or ~/.config/wordladder/config.toml.
func Path() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// CacheDir returns $XDG_CACHE_HOME/wordladder or ~/.cache/wordladder.
func CacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", AppName), nil
}

// RedactURL hides the password in a connection URL so it can be logged or
// printed. Unparseable input is replaced entirely.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid url>"
	}
	return u.Redacted()
}
