// Package config loads the statespace configuration: YAML on disk, defaults for
// everything omitted, STATESPACE_* environment overrides on top, then struct
// validation.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/statespace/internal/telemetry"
	"github.com/katalvlaran/statespace/search"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete statespace configuration.
type Config struct {
	Logging telemetry.LoggingConfig `yaml:"logging" json:"logging"`
	Metrics telemetry.MetricsConfig `yaml:"metrics" json:"metrics"`
	Search  SearchConfig            `yaml:"search" json:"search"`
	Bench   BenchConfig             `yaml:"bench" json:"bench"`
}

// SearchConfig configures single searches started from the command line.
type SearchConfig struct {
	// Strategy is dfs, bfs, ucs or astar. Any alias search.ParseStrategy
	// accepts is rewritten to its canonical name by Validate.
	Strategy string `yaml:"strategy" json:"strategy" validate:"required,oneof=dfs bfs ucs astar"`

	// Heuristic is a registered heuristic name, used by astar.
	Heuristic string `yaml:"heuristic" json:"heuristic" validate:"required,oneof=null misplaced_tiles euclidean_distance manhattan_distance row_column_misplacements"`

	// DepthLimit bounds dfs.
	DepthLimit int `yaml:"depth_limit" json:"depth_limit" validate:"gte=0"`

	// Timeout cancels a single search; 0 disables it.
	Timeout time.Duration `yaml:"timeout" json:"timeout" validate:"gte=0"`
}

// BenchConfig configures experiment batches.
type BenchConfig struct {
	// Preset selects the trial list: heuristics or strategies.
	Preset string `yaml:"preset" json:"preset" validate:"required,oneof=heuristics strategies"`

	// Scenarios is the scenario CSV; generated when missing.
	Scenarios string `yaml:"scenarios" json:"scenarios" validate:"required"`

	// Count, Moves, Size and Seed drive scenario generation.
	Count int   `yaml:"count" json:"count" validate:"gte=1"`
	Moves int   `yaml:"moves" json:"moves" validate:"gte=0"`
	Size  int   `yaml:"size" json:"size" validate:"oneof=3 4"`
	Seed  int64 `yaml:"seed" json:"seed"`

	// Workers bounds concurrent searches.
	Workers int `yaml:"workers" json:"workers" validate:"gte=1,lte=256"`

	// CacheSize is the per-heuristic LRU size; 0 disables caching.
	CacheSize int `yaml:"cache_size" json:"cache_size" validate:"gte=0"`

	// ResultsCSV and ResultsSQLite are the sinks; at least one must be set.
	ResultsCSV    string `yaml:"results_csv" json:"results_csv" validate:"required_without=ResultsSQLite"`
	ResultsSQLite string `yaml:"results_sqlite" json:"results_sqlite"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Logging: telemetry.DefaultLoggingConfig(),
		Metrics: telemetry.DefaultMetricsConfig(),
		Search: SearchConfig{
			Strategy:   "astar",
			Heuristic:  "manhattan_distance",
			DepthLimit: 10,
			Timeout:    0,
		},
		Bench: BenchConfig{
			Preset:     "heuristics",
			Scenarios:  "scenarios.csv",
			Count:      100,
			Moves:      25,
			Size:       4,
			Seed:       1,
			Workers:    4,
			CacheSize:  0,
			ResultsCSV: "results.csv",
		},
	}
}

// Load reads path (when non-empty) over the defaults, applies environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = cfg.decode(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML from r over the defaults and validates it; the
// environment is not consulted.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(r); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

var validate = validator.New()

// Validate canonicalizes the strategy name, then checks every struct tag and
// reports all failing fields at once.
func (c *Config) Validate() error {
	if st, err := search.ParseStrategy(c.Search.Strategy); err == nil {
		c.Search.Strategy = st.String()
	}
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// WriteYAML writes the configuration to path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// applyEnvOverrides lets STATESPACE_* variables win over file values.
// Unparseable numbers are ignored.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("STATESPACE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("STATESPACE_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("STATESPACE_STRATEGY"); v != "" {
		c.Search.Strategy = v
	}
	if v := os.Getenv("STATESPACE_HEURISTIC"); v != "" {
		c.Search.Heuristic = v
	}
	if v := os.Getenv("STATESPACE_DEPTH_LIMIT"); v != "" {
		if d, err := strconv.Atoi(v); err == nil && d >= 0 {
			c.Search.DepthLimit = d
		}
	}
	if v := os.Getenv("STATESPACE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			c.Search.Timeout = d
		}
	}
	if v := os.Getenv("STATESPACE_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Bench.Workers = n
		}
	}
	if v := os.Getenv("STATESPACE_RESULTS_SQLITE"); v != "" {
		c.Bench.ResultsSQLite = v
	}
	if v := os.Getenv("STATESPACE_METRICS_ADDR"); v != "" {
		c.Metrics.Enabled = true
		c.Metrics.ListenAddress = v
	}
}
