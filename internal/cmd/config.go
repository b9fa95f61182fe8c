package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/mstoykov/envconfig"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"gopkg.in/guregu/null.v3"
	"gopkg.in/yaml.v3"

	"github.com/coda-lang/coda"
	"github.com/coda-lang/coda/internal/arena"
	"github.com/coda-lang/coda/internal/parser"
	"github.com/coda-lang/coda/internal/selector"
)

// Config holds the compile settings that can come from the config file,
// the environment and flags. Later sources override earlier ones.
type Config struct {
	MaxDepth       null.Int    `envconfig:"CODA_MAX_DEPTH"`
	ArenaBlockSize null.Int    `envconfig:"CODA_ARENA_BLOCK_SIZE"`
	ArenaLimit     null.Int    `envconfig:"CODA_ARENA_LIMIT"`
	Filter         null.String `envconfig:"CODA_FILTER"`
}

// NewConfig creates a Config with the default values.
func NewConfig() Config {
	return Config{
		MaxDepth:       null.NewInt(parser.DefaultMaxDepth, false),
		ArenaBlockSize: null.NewInt(arena.DefaultBlockSize, false),
		ArenaLimit:     null.NewInt(0, false),
		Filter:         null.NewString("", false),
	}
}

// Apply returns c with every valid field of cfg copied over it.
func (c Config) Apply(cfg Config) Config {
	if cfg.MaxDepth.Valid {
		c.MaxDepth = cfg.MaxDepth
	}
	if cfg.ArenaBlockSize.Valid {
		c.ArenaBlockSize = cfg.ArenaBlockSize
	}
	if cfg.ArenaLimit.Valid {
		c.ArenaLimit = cfg.ArenaLimit
	}
	if cfg.Filter.Valid {
		c.Filter = cfg.Filter
	}
	return c
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	var errs []error
	if c.MaxDepth.Int64 <= 0 {
		errs = append(errs, fmt.Errorf("max depth must be positive, got %d", c.MaxDepth.Int64))
	}
	if c.ArenaBlockSize.Int64 <= 0 {
		errs = append(errs, fmt.Errorf("arena block size must be positive, got %d", c.ArenaBlockSize.Int64))
	}
	if c.ArenaLimit.Int64 < 0 {
		errs = append(errs, fmt.Errorf("arena limit must not be negative, got %d", c.ArenaLimit.Int64))
	}
	if c.Filter.String != "" {
		if _, err := selector.Compile(c.Filter.String); err != nil {
			errs = append(errs, fmt.Errorf("invalid filter %q: %w", c.Filter.String, err))
		}
	}
	return errors.Join(errs...)
}

// compileConfig converts c into library settings.
func (c Config) compileConfig() *coda.Config {
	return &coda.Config{
		MaxDepth:       int(c.MaxDepth.Int64),
		ArenaBlockSize: int(c.ArenaBlockSize.Int64),
		ArenaLimit:     int(c.ArenaLimit.Int64),
	}
}

// fileConfig is the layout of the YAML config file.
type fileConfig struct {
	MaxDepth       *int64  `yaml:"maxDepth"`
	ArenaBlockSize *int64  `yaml:"arenaBlockSize"`
	ArenaLimit     *int64  `yaml:"arenaLimit"`
	Filter         *string `yaml:"filter"`
}

// readDiskConfig loads the config file. A missing file is only an error
// when its path was set explicitly.
func readDiskConfig(gs *globalState) (Config, error) {
	path := gs.flags.ConfigFilePath
	exists, err := afero.Exists(gs.fs, path)
	if err != nil {
		return Config{}, err
	}
	if !exists {
		if path == gs.defaultFlags.ConfigFilePath {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("config file %s does not exist", path)
	}

	data, err := afero.ReadFile(gs.fs, path)
	if err != nil {
		return Config{}, fmt.Errorf("couldn't load the configuration from %q: %w", path, err)
	}

	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("couldn't parse the configuration from %q: %w", path, err)
	}

	gs.logger.WithField("path", path).Debug("Loaded config file")
	return Config{
		MaxDepth:       null.IntFromPtr(fc.MaxDepth),
		ArenaBlockSize: null.IntFromPtr(fc.ArenaBlockSize),
		ArenaLimit:     null.IntFromPtr(fc.ArenaLimit),
		Filter:         null.StringFromPtr(fc.Filter),
	}, nil
}

func readEnvConfig(env map[string]string) (Config, error) {
	var conf Config
	err := envconfig.Process("", &conf, func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
	return conf, err
}

// configFromFlags returns the values of the flags the user actually set.
func configFromFlags(flags *pflag.FlagSet) Config {
	var conf Config
	if f := flags.Lookup("max-depth"); f != nil && f.Changed {
		if v, err := flags.GetInt("max-depth"); err == nil {
			conf.MaxDepth = null.IntFrom(int64(v))
		}
	}
	if f := flags.Lookup("filter"); f != nil && f.Changed {
		conf.Filter = null.StringFrom(f.Value.String())
	}
	return conf
}

// getConsolidatedConfig merges, in increasing priority: defaults, the config
// file, environment variables and flags.
func getConsolidatedConfig(gs *globalState, flags *pflag.FlagSet) (Config, error) {
	result := NewConfig()

	fileConf, err := readDiskConfig(gs)
	if err != nil {
		return result, withExitCodeIfNone(err, InvalidConfig)
	}
	result = result.Apply(fileConf)

	envConf, err := readEnvConfig(gs.env)
	if err != nil {
		return result, withExitCodeIfNone(err, InvalidConfig)
	}
	result = result.Apply(envConf)
	result = result.Apply(configFromFlags(flags))

	if err := result.Validate(); err != nil {
		return result, withExitCodeIfNone(err, InvalidConfig)
	}
	return result, nil
}
