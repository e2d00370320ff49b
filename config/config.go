// Package config loads fxroute's runtime settings.
//
// Sources, lowest precedence first: built-in defaults, an optional YAML
// file, a dotenv file, and the process environment (FXROUTE_* variables).
// Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-kit/log/level"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fxroute/converter"
)

// Environment variable names.
const (
	EnvLogLevel  = "FXROUTE_LOG_LEVEL"
	EnvLogFormat = "FXROUTE_LOG_FORMAT"
	EnvAlgorithm = "FXROUTE_ALGORITHM"
	EnvEpsilon   = "FXROUTE_EPSILON"
	EnvRates     = "FXROUTE_RATES"
)

// DefaultEnvFile is read when Load is given no dotenv path.
const DefaultEnvFile = ".env"

// Log formats.
const (
	FormatLogfmt = "logfmt"
	FormatJSON   = "json"
)

// ErrInvalid indicates a setting that failed validation.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds fxroute settings.
type Config struct {
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Solver struct {
		Algorithm string  `yaml:"algorithm"`
		Epsilon   float64 `yaml:"epsilon"`
	} `yaml:"solver"`
	Rates string `yaml:"rates"` // rate file path; empty means a built-in sample
}

// Default returns the built-in settings.
func Default() Config {
	var c Config
	c.Log.Level = "info"
	c.Log.Format = FormatLogfmt
	c.Solver.Algorithm = converter.AlgorithmBellmanFord.String()
	c.Solver.Epsilon = converter.DefaultEpsilon

	return c
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), the dotenv files (DefaultEnvFile when none are given;
// missing files are ignored) and the environment, then validates it.
func Load(path string, envFiles ...string) (Config, error) {
	c := Default()

	if path != "" {
		if err := c.readFile(path); err != nil {
			return Config{}, err
		}
	}

	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	dotenv := make(map[string]string)
	for _, name := range envFiles {
		m, err := godotenv.Read(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", name, err)
		}
		for k, v := range m {
			dotenv[k] = v
		}
	}
	// An empty process variable counts as unset.
	lookup := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}

		return dotenv[key]
	}

	if err := c.applyEnv(lookup); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

func (c *Config) readFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %s: %w", ErrInvalid, path, err)
	}

	return nil
}

func (c *Config) applyEnv(lookup func(string) string) error {
	if v := lookup(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := lookup(EnvLogFormat); v != "" {
		c.Log.Format = v
	}
	if v := lookup(EnvAlgorithm); v != "" {
		c.Solver.Algorithm = v
	}
	if v := lookup(EnvEpsilon); v != "" {
		eps, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvEpsilon, v)
		}
		c.Solver.Epsilon = eps
	}
	if v := lookup(EnvRates); v != "" {
		c.Rates = v
	}

	return nil
}

// Validate checks every field and names the first bad one.
func (c Config) Validate() error {
	if _, err := level.Parse(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case FormatLogfmt, FormatJSON:
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	if _, err := converter.ParseAlgorithm(c.Solver.Algorithm); err != nil {
		return fmt.Errorf("%w: solver.algorithm: %w", ErrInvalid, err)
	}
	if c.Solver.Epsilon < 0 || math.IsNaN(c.Solver.Epsilon) || math.IsInf(c.Solver.Epsilon, 0) {
		return fmt.Errorf("%w: solver.epsilon %v", ErrInvalid, c.Solver.Epsilon)
	}

	return nil
}

// SolverOptions converts the solver settings into converter options.
// The Config must be valid.
func (c Config) SolverOptions() ([]converter.Option, error) {
	alg, err := converter.ParseAlgorithm(c.Solver.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return []converter.Option{
		converter.WithAlgorithm(alg),
		converter.WithEpsilon(c.Solver.Epsilon),
	}, nil
}

// Level returns the configured go-kit level filter option.
func (c Config) Level() level.Option {
	return level.Allow(level.ParseDefault(c.Log.Level, level.InfoValue()))
}
