package main

import (
	"math"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
)

// Config holds everything the commands can be tuned with. Values come
// from defaults, then an optional toml file, then explicitly set flags.
type Config struct {
	Table      string  `toml:"table"`
	Hash       string  `toml:"hash"`
	LoadFactor float64 `toml:"load_factor"`
	Capacity   int     `toml:"capacity"`
	Count      int     `toml:"count"`
	Seed       int64   `toml:"seed"`
	Keys       string  `toml:"keys"`
}

func defaultConfig() Config {
	return Config{
		Table:      "robin",
		Hash:       "jenkins",
		LoadFactor: 0.8,
		Capacity:   2,
		Count:      100000,
		Seed:       1337,
		Keys:       "int",
	}
}

// loadConfig decodes the toml file at path over cfg. Unknown keys are
// rejected so typos do not silently fall back to defaults.
func loadConfig(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return errors.Wrapf(err, "loading config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.Newf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// override copies every flag the user actually set from flags into cfg
func override(cfg *Config, flags *Config, fs *pflag.FlagSet) {
	if fs.Changed("table") {
		cfg.Table = flags.Table
	}
	if fs.Changed("hash") {
		cfg.Hash = flags.Hash
	}
	if fs.Changed("load-factor") {
		cfg.LoadFactor = flags.LoadFactor
	}
	if fs.Changed("capacity") {
		cfg.Capacity = flags.Capacity
	}
	if fs.Changed("count") {
		cfg.Count = flags.Count
	}
	if fs.Changed("seed") {
		cfg.Seed = flags.Seed
	}
	if fs.Changed("keys") {
		cfg.Keys = flags.Keys
	}
}

func (c *Config) validate() error {
	switch c.Table {
	case "robin", "linear":
	default:
		return errors.Newf("unknown table %q, want robin or linear", c.Table)
	}
	switch c.Keys {
	case "int", "string":
	default:
		return errors.Newf("unknown key kind %q, want int or string", c.Keys)
	}
	if math.IsNaN(c.LoadFactor) || math.IsInf(c.LoadFactor, 0) {
		return errors.Newf("load factor must be a finite number, got %v", c.LoadFactor)
	}
	if c.Count < 0 {
		return errors.Newf("count must not be negative, got %d", c.Count)
	}
	return nil
}
