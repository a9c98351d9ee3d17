package cmd

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// Config holds the settings of the command line tool. Values set by flags
// override values read from a configuration file.
type Config struct {
	Split  SplitConfig  `toml:"split"`
	Output OutputConfig `toml:"output"`
	Trace  TraceConfig  `toml:"trace"`
}

// SplitConfig holds the parameters of the split engine.
type SplitConfig struct {
	Delimiter string `toml:"delimiter"`
	Limit     int    `toml:"limit"`    // 0 splits at every occurrence
	Capacity  int    `toml:"capacity"` // maximum fragment length, 0 for unbounded
	Trim      bool   `toml:"trim"`
}

// OutputConfig holds output settings.
type OutputConfig struct {
	Format string `toml:"format"` // text, yaml, dot or table
	Color  bool   `toml:"color"`
	Width  int    `toml:"width"` // line width for tables, 0 asks the terminal
}

// TraceConfig holds tracing settings.
type TraceConfig struct {
	Level string `toml:"level"` // error, info or debug
}

// DefaultConfig returns the settings in effect without a configuration file.
func DefaultConfig() *Config {
	return &Config{
		Split: SplitConfig{
			Delimiter: ",",
		},
		Output: OutputConfig{
			Format: "text",
		},
		Trace: TraceConfig{
			Level: "error",
		},
	}
}

// LoadConfig reads a TOML configuration file. Settings missing from the file
// keep their default values. An empty path yields the default configuration.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config: unknown key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks a configuration for consistency.
func (cfg *Config) Validate() error {
	switch cfg.Output.Format {
	case "text", "yaml", "dot", "table":
	default:
		return fmt.Errorf("config: unknown output format %q", cfg.Output.Format)
	}
	if cfg.Split.Limit < 0 {
		return fmt.Errorf("config: limit must not be negative, use reverse scanning instead")
	}
	if _, err := traceLevel(cfg.Trace.Level); err != nil {
		return err
	}
	return nil
}

func traceLevel(name string) (tracing.TraceLevel, error) {
	switch strings.ToLower(name) {
	case "", "error":
		return tracing.LevelError, nil
	case "info":
		return tracing.LevelInfo, nil
	case "debug":
		return tracing.LevelDebug, nil
	}
	return tracing.LevelError, fmt.Errorf("config: unknown trace level %q", name)
}

// setupTracing directs tracing output to the Go log.
func setupTracing(level string) error {
	l, err := traceLevel(level)
	if err != nil {
		return err
	}
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(l)
	tracing.Select("strsplit").SetTraceLevel(l)
	return nil
}
