// Package config resolves taskpick's defaults from built-in values, a YAML
// file, TASKPICK_* environment variables and command-line flags, in that
// order of increasing priority.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/taskpack/knapsack"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFileName is looked up in the working directory when no --config is given.
	DefaultFileName = "taskpick.yaml"

	// EnvPrefix is prepended to upper-cased keys for environment lookup.
	EnvPrefix = "TASKPICK_"
)

// Configuration keys.
const (
	KeyAlgorithm  = "algorithm"
	KeyIndexSpace = "index_space"
	KeyPrune      = "prune"
	KeyTimeLimit  = "time_limit"
	KeyVerbose    = "verbose"
)

var (
	// ErrInvalidConfig is returned for unknown keys and unparsable values.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrConfigReadFailed is returned when an explicit config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse config file")
)

// Keys lists every recognised key in a stable order.
func Keys() []string {
	return []string{KeyAlgorithm, KeyIndexSpace, KeyPrune, KeyTimeLimit, KeyVerbose}
}

// IndexSpace selects which indices the CLI prints.
type IndexSpace string

const (
	// IndexOriginal prints indices into the input file order.
	IndexOriginal IndexSpace = "original"

	// IndexSolver prints the solver's own indices (density positions for
	// branch-and-bound and greedy).
	IndexSolver IndexSpace = "solver"
)

// Source indicates where a configuration value came from.
type Source string

// Configuration source constants.
const (
	SourceDefault Source = "default"
	SourceFile    Source = "file"
	SourceEnv     Source = "env"
	SourceFlag    Source = "flag"
)

// Config is the resolved and validated configuration.
type Config struct {
	// Algorithm is zero when the interactive menu should decide.
	Algorithm  knapsack.Algorithm
	IndexSpace IndexSpace
	Prune      knapsack.PrunePolicy
	TimeLimit  time.Duration
	Verbose    bool

	// File is the config file that was read, empty if none.
	File string

	sources map[string]Source
}

// Source returns where key's effective value came from.
func (c Config) Source(key string) Source {
	if s, ok := c.sources[key]; ok {
		return s
	}

	return SourceDefault
}

// Options converts the configuration into solver options.
// An unset Algorithm falls back to knapsack.DefaultOptions().Algo.
func (c Config) Options() knapsack.Options {
	opts := knapsack.DefaultOptions()
	if c.Algorithm != 0 {
		opts.Algo = c.Algorithm
	}
	opts.Prune = c.Prune
	opts.TimeLimit = c.TimeLimit

	return opts
}

// defaults are the raw built-in values.
var defaults = map[string]string{
	KeyAlgorithm:  "",
	KeyIndexSpace: string(IndexOriginal),
	KeyPrune:      "strict",
	KeyTimeLimit:  "0s",
	KeyVerbose:    "false",
}

// Loader resolves a Config. The zero value reads the real environment.
type Loader struct {
	// LookupEnv replaces os.LookupEnv, mainly for tests.
	LookupEnv func(key string) (string, bool)
}

// Load merges defaults, the YAML file, the environment and flags.
//
// path names an explicit config file that must exist. When path is empty,
// DefaultFileName is read if present. Only non-empty flag values override.
func (l Loader) Load(path string, flags map[string]string) (Config, error) {
	values := make(map[string]string, len(defaults))
	sources := make(map[string]Source, len(defaults))
	for k, v := range defaults {
		values[k] = v
		sources[k] = SourceDefault
	}

	file, err := l.applyFile(path, values, sources)
	if err != nil {
		return Config{}, err
	}
	l.applyEnv(values, sources)
	for k, v := range flags {
		if v == "" {
			continue
		}
		if _, known := defaults[k]; !known {
			return Config{}, invalid(k, v, SourceFlag)
		}
		values[k] = v
		sources[k] = SourceFlag
	}

	cfg, err := parse(values, sources)
	if err != nil {
		return Config{}, err
	}
	cfg.File = file
	cfg.sources = sources

	return cfg, nil
}

func (l Loader) applyFile(path string, values map[string]string, sources map[string]Source) (string, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	// #nosec G304 -- path comes from the user's own --config flag
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", zerr.With(zerr.Wrap(err, ErrConfigReadFailed.Error()), "path", path)
	}

	var parsed map[string]any
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return "", zerr.With(zerr.Wrap(err, ErrConfigParseFailed.Error()), "path", path)
	}

	keys := make([]string, 0, len(parsed))
	for k := range parsed {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		raw := toString(parsed[k])
		if _, known := defaults[k]; !known {
			return "", zerr.With(invalid(k, raw, SourceFile), "path", path)
		}
		values[k] = raw
		sources[k] = SourceFile
	}

	return path, nil
}

func (l Loader) applyEnv(values map[string]string, sources map[string]Source) {
	lookup := l.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	for _, k := range Keys() {
		if v, ok := lookup(EnvPrefix + strings.ToUpper(k)); ok && v != "" {
			values[k] = v
			sources[k] = SourceEnv
		}
	}
}

// parse validates every raw value.
func parse(values map[string]string, sources map[string]Source) (Config, error) {
	var (
		cfg Config
		err error
		raw string
	)

	raw = strings.TrimSpace(values[KeyAlgorithm])
	if raw != "" {
		if cfg.Algorithm, err = knapsack.ParseAlgorithm(raw); err != nil {
			return Config{}, invalid(KeyAlgorithm, raw, sources[KeyAlgorithm])
		}
	}

	raw = strings.ToLower(strings.TrimSpace(values[KeyIndexSpace]))
	switch IndexSpace(raw) {
	case IndexOriginal, IndexSolver:
		cfg.IndexSpace = IndexSpace(raw)
	default:
		return Config{}, invalid(KeyIndexSpace, raw, sources[KeyIndexSpace])
	}

	raw = values[KeyPrune]
	if cfg.Prune, err = knapsack.ParsePrunePolicy(raw); err != nil {
		return Config{}, invalid(KeyPrune, raw, sources[KeyPrune])
	}

	raw = strings.TrimSpace(values[KeyTimeLimit])
	if cfg.TimeLimit, err = time.ParseDuration(raw); err != nil || cfg.TimeLimit < 0 {
		return Config{}, invalid(KeyTimeLimit, raw, sources[KeyTimeLimit])
	}

	raw = strings.TrimSpace(values[KeyVerbose])
	if cfg.Verbose, err = strconv.ParseBool(raw); err != nil {
		return Config{}, invalid(KeyVerbose, raw, sources[KeyVerbose])
	}

	return cfg, nil
}

func invalid(key, value string, src Source) error {
	err := zerr.Wrap(ErrInvalidConfig, fmt.Sprintf("%s %q", key, value))
	err = zerr.With(err, "key", key)

	return zerr.With(err, "source", string(src))
}

func toString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}
