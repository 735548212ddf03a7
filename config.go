package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/NickyBoy89/classcheck/diagnostic"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"
)

// The config file that is read when no other one is given, if it exists
const defaultConfigFile = ".classcheck.yaml"

// Config controls how a check is run and reported
type Config struct {
	// Either "text" or "json"
	Output string `yaml:"output"`
	Color  bool   `yaml:"color"`
	// Where to write a Graphviz graph of the class hierarchy, if anywhere
	Graph string `yaml:"graph"`
	// Fail when any validation error is found
	Strict bool `yaml:"strict"`

	Log LogConfig `yaml:"log"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig is used for any setting that is not set anywhere else
func DefaultConfig() Config {
	return Config{
		Output: "text",
		Color:  true,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig reads a YAML config file over the defaults. A missing file is
// only an error if it was asked for explicitly
func LoadConfig(path string, explicit bool) (Config, error) {
	config := DefaultConfig()

	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return config, nil
		}
		return config, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.UnmarshalStrict(contents, &config); err != nil {
		return config, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return config, nil
}

// registerFlags defines the flags that can override the config file
func registerFlags(flags *pflag.FlagSet) {
	defaults := DefaultConfig()
	flags.StringP("output", "o", defaults.Output, "Output format, either text or json")
	flags.Bool("no-color", false, "Disable colored output")
	flags.String("graph", "", "Write a Graphviz graph of the class hierarchy to this file")
	flags.Bool("strict", false, "Exit with a non-zero status when validation finds errors")
	flags.String("log-level", defaults.Log.Level, "Log level (trace, debug, info, warn, error)")
	flags.String("log-format", defaults.Log.Format, "Log format, either text or json")
	flags.BoolP("verbose", "v", false, "Log every declaration, same as --log-level=debug")
}

// ApplyFlags overrides the config with every flag that was set explicitly
func (c *Config) ApplyFlags(flags *pflag.FlagSet) error {
	var err error
	if flags.Changed("output") {
		if c.Output, err = flags.GetString("output"); err != nil {
			return err
		}
	}
	if flags.Changed("no-color") {
		noColor, err := flags.GetBool("no-color")
		if err != nil {
			return err
		}
		c.Color = !noColor
	}
	if flags.Changed("graph") {
		if c.Graph, err = flags.GetString("graph"); err != nil {
			return err
		}
	}
	if flags.Changed("strict") {
		if c.Strict, err = flags.GetBool("strict"); err != nil {
			return err
		}
	}
	if flags.Changed("log-level") {
		if c.Log.Level, err = flags.GetString("log-level"); err != nil {
			return err
		}
	}
	if flags.Changed("log-format") {
		if c.Log.Format, err = flags.GetString("log-format"); err != nil {
			return err
		}
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		c.Log.Level = log.DebugLevel.String()
	}
	return nil
}

// Validate checks that every setting has a usable value
func (c Config) Validate() error {
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("invalid output format: %s. Valid options: [text json]", c.Output)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s. Valid options: [text json]", c.Log.Format)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// Reporter returns the reporter for the configured output format
func (c Config) Reporter() diagnostic.Reporter {
	if c.Output == "json" {
		return diagnostic.JSONReporter{}
	}
	return diagnostic.TextReporter{Plain: !c.Color}
}

// ConfigureLogger applies the log settings to a logger
func (c Config) ConfigureLogger(logger *log.Logger) error {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return err
	}
	logger.SetLevel(level)

	if c.Log.Format == "json" {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{DisableColors: !c.Color})
	}
	return nil
}
