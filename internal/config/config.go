// SPDX-License-Identifier: MIT

// Package config resolves lvpath settings from flags, LVPATH_* environment
// variables and an optional TOML/YAML config file, in that precedence.
package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trim21/errgo"
)

// EnvPrefix prefixes every environment override: --heap-demo is LVPATH_HEAP_DEMO.
const EnvPrefix = "LVPATH"

var (
	// ErrInvalidSetting indicates a setting whose value is out of range or unparsable.
	ErrInvalidSetting = errors.New("config: invalid setting")
)

// Settings is the resolved command-line configuration.
type Settings struct {
	// Graph is a YAML/TOML graph file; empty selects the built-in sample.
	Graph string
	// Sources are the query sources; empty falls back to the graph file's
	// source or node 0.
	Sources []int
	// Target, when set, asks for the path from every source to it.
	Target *int
	// SVG is where the spectral drawing of the first query goes.
	SVG string
	// HeapDemo is the size of the heap demonstration; 0 disables it.
	HeapDemo int
	Seed     int64
	// MaxDistance caps the search radius; +Inf is unbounded.
	MaxDistance float64
	MetricsOut  string
	LogLevel    string
	// Letters names nodes 0..25 as A..Z in the output.
	Letters bool
}

// NewFlagSet declares every flag Load understands.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "TOML or YAML file with default settings")
	fs.String("graph", "", "graph file (.yaml, .yml, .toml); default is the built-in six-node sample")
	fs.StringSlice("source", nil, "source node ID; repeat or comma-separate for several independent queries")
	fs.String("target", "", "print the shortest path from each source to this node")
	fs.String("svg", "", "write a spectral-layout SVG of the graph with the first query's distances")
	fs.Int("heap-demo", 0, "push a random permutation of N priorities, draw the heap and pop it in order")
	fs.Int64("seed", 1, "random seed for the heap demo")
	fs.Float64("max-distance", math.Inf(1), "stop exploring beyond this distance")
	fs.String("metrics-out", "", "write Prometheus metrics of the run to this text file")
	fs.String("log-level", "info", "zerolog level (trace, debug, info, warn, error)")
	fs.Bool("letters", false, "print node IDs 0..25 as letters A..Z")

	return fs
}

// Load parses args with fs and resolves the final Settings.
// fs must come from NewFlagSet. A request for help returns pflag.ErrHelp.
func Load(fs *pflag.FlagSet, args []string) (Settings, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return Settings{}, err
		}

		return Settings{}, errgo.Wrap(err, "failed to parse flags")
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Settings{}, errgo.Wrap(err, "failed to bind flags")
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, errgo.Wrap(err, fmt.Sprintf("failed to read config file %s", path))
		}
	}

	s := Settings{
		Graph:       v.GetString("graph"),
		SVG:         v.GetString("svg"),
		HeapDemo:    v.GetInt("heap-demo"),
		Seed:        v.GetInt64("seed"),
		MaxDistance: v.GetFloat64("max-distance"),
		MetricsOut:  v.GetString("metrics-out"),
		LogLevel:    v.GetString("log-level"),
		Letters:     v.GetBool("letters"),
	}

	var err error
	if s.Sources, err = parseIDs("source", v.GetStringSlice("source")); err != nil {
		return Settings{}, err
	}
	if raw := strings.TrimSpace(v.GetString("target")); raw != "" {
		ids, err := parseIDs("target", []string{raw})
		if err != nil {
			return Settings{}, err
		}
		s.Target = &ids[0]
	}

	return s, s.validate()
}

func (s Settings) validate() error {
	if s.HeapDemo < 0 {
		return fmt.Errorf("%w: heap-demo=%d must be non-negative", ErrInvalidSetting, s.HeapDemo)
	}
	if math.IsNaN(s.MaxDistance) || s.MaxDistance < 0 {
		return fmt.Errorf("%w: max-distance=%v must be non-negative", ErrInvalidSetting, s.MaxDistance)
	}

	return nil
}

// parseIDs accepts repeated values, comma lists (flags) and space lists (env).
func parseIDs(key string, raw []string) ([]int, error) {
	fields := lo.FlatMap(raw, func(item string, _ int) []string {
		return strings.FieldsFunc(item, func(r rune) bool { return r == ',' || r == ' ' })
	})

	ids := make([]int, 0, len(fields))
	for _, f := range fields {
		id, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q is not a node ID", ErrInvalidSetting, key, f)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
