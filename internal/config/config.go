// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package config loads gaugerender settings from flags, environment
// variables, an optional .env file and an optional config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	gauge "github.com/gogpu/gg-gauge"
)

// EnvPrefix prefixes every environment variable, e.g. GAUGE_COMPANY=120.
const EnvPrefix = "GAUGE"

// Output formats.
const (
	FormatPNG    = "png"
	FormatGIF    = "gif"
	FormatFrames = "frames"
)

// Config is the full gaugerender configuration.
type Config struct {
	// Width and Height of the output surface in pixels.
	Width  int `mapstructure:"width" json:"width" toml:"width" yaml:"width"`
	Height int `mapstructure:"height" json:"height" toml:"height" yaml:"height"`

	// Company and Industry are the needle angles in degrees.
	Company  float64 `mapstructure:"company" json:"company" toml:"company" yaml:"company"`
	Industry float64 `mapstructure:"industry" json:"industry" toml:"industry" yaml:"industry"`

	// Duration of the needle sweep. Zero renders a single frame.
	Duration Duration `mapstructure:"duration" json:"duration" toml:"duration" yaml:"duration"`
	// Settle appends a final frame at the target angles.
	Settle bool `mapstructure:"settle" json:"settle" toml:"settle" yaml:"settle"`
	// TickInterval paces live animation. Exports ignore it.
	TickInterval Duration `mapstructure:"tick_interval" json:"tick_interval" toml:"tick_interval" yaml:"tick_interval"`

	Labels Labels `mapstructure:"labels" json:"labels" toml:"labels" yaml:"labels"`
	Output Output `mapstructure:"output" json:"output" toml:"output" yaml:"output"`
	Log    Log    `mapstructure:"log" json:"log" toml:"log" yaml:"log"`
}

// Labels is the legend printed under the dial.
type Labels struct {
	Title         string  `mapstructure:"title" json:"title" toml:"title" yaml:"title"`
	Company       string  `mapstructure:"company" json:"company" toml:"company" yaml:"company"`
	CompanyValue  float64 `mapstructure:"company_value" json:"company_value" toml:"company_value" yaml:"company_value"`
	Industry      string  `mapstructure:"industry" json:"industry" toml:"industry" yaml:"industry"`
	IndustryValue float64 `mapstructure:"industry_value" json:"industry_value" toml:"industry_value" yaml:"industry_value"`
	// Language is a BCP 47 tag used to format the values.
	Language string `mapstructure:"language" json:"language" toml:"language" yaml:"language"`
}

// Output selects where and how frames are written.
type Output struct {
	// Path of the PNG or GIF file, or the directory for frames.
	Path string `mapstructure:"path" json:"path" toml:"path" yaml:"path"`
	// Format is one of png, gif or frames.
	Format string `mapstructure:"format" json:"format" toml:"format" yaml:"format"`
}

// Log configures the CLI logger.
type Log struct {
	// Level is one of trace, debug, info, warn, error, fatal or none.
	Level string `mapstructure:"level" json:"level" toml:"level" yaml:"level"`
	// File, if set, receives log output instead of stdout.
	File string `mapstructure:"file" json:"file" toml:"file" yaml:"file"`
}

// Meta describes where the configuration came from.
type Meta struct {
	FileNotFound bool
	DotEnvUsed   bool
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	d := gauge.DefaultLabels()
	return Config{
		Width:        int(gauge.BackgroundSize),
		Height:       int(gauge.BackgroundSize),
		Company:      120,
		Industry:     45,
		TickInterval: Duration(gauge.FrameInterval),
		Labels: Labels{
			Title:         d.Title,
			Company:       d.Company,
			CompanyValue:  d.CompanyValue,
			Industry:      d.Industry,
			IndustryValue: d.IndustryValue,
			Language:      d.Language.String(),
		},
		Output: Output{
			Path:   "gauge.png",
			Format: FormatPNG,
		},
		Log: Log{
			Level: "info",
		},
	}
}

var defaultKeys = map[string]func(Config) any{
	"width":                 func(c Config) any { return c.Width },
	"height":                func(c Config) any { return c.Height },
	"company":               func(c Config) any { return c.Company },
	"industry":              func(c Config) any { return c.Industry },
	"duration":              func(c Config) any { return c.Duration.String() },
	"settle":                func(c Config) any { return c.Settle },
	"tick_interval":         func(c Config) any { return c.TickInterval.String() },
	"labels.title":          func(c Config) any { return c.Labels.Title },
	"labels.company":        func(c Config) any { return c.Labels.Company },
	"labels.company_value":  func(c Config) any { return c.Labels.CompanyValue },
	"labels.industry":       func(c Config) any { return c.Labels.Industry },
	"labels.industry_value": func(c Config) any { return c.Labels.IndustryValue },
	"labels.language":       func(c Config) any { return c.Labels.Language },
	"output.path":           func(c Config) any { return c.Output.Path },
	"output.format":         func(c Config) any { return c.Output.Format },
	"log.level":             func(c Config) any { return c.Log.Level },
	"log.file":              func(c Config) any { return c.Log.File },
}

// DefineFlags registers the flags GetConfig understands on cmd.
func DefineFlags(cmd *cobra.Command) {
	d := Default()
	cmd.Flags().IntP("width", "", d.Width, "surface width in pixels")
	cmd.Flags().IntP("height", "", d.Height, "surface height in pixels")
	cmd.Flags().Float64P("company", "", d.Company, "company needle angle in degrees")
	cmd.Flags().Float64P("industry", "", d.Industry, "industry needle angle in degrees")
	cmd.Flags().DurationP("duration", "d", 0, "needle sweep duration, 0 renders a single frame")
	cmd.Flags().BoolP("settle", "", false, "finish the animation on the target angles")
	cmd.Flags().StringP("output.path", "o", d.Output.Path, "output file, or directory for frames")
	cmd.Flags().StringP("output.format", "f", d.Output.Format, "output format: png, gif or frames")
	cmd.Flags().StringP("log.level", "", d.Log.Level, "set the log level: trace, debug, info, warn, error, fatal or none")
	cmd.Flags().StringP("log.file", "", "", "optional log file - if not specified logs go to STDOUT")
}

var bindPFlags = []string{
	"width", "height", "company", "industry", "duration", "settle",
	"output.path", "output.format", "log.level", "log.file",
}

// GetConfig builds the configuration. Precedence, highest first: flags set
// on cmd, GAUGE_* environment variables (a .env file in the working
// directory is loaded first if present), configFile, defaults.
// A missing configFile is reported in Meta, not as an error.
func GetConfig(cmd *cobra.Command, configFile string) (Config, Meta, error) {
	var meta Meta
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return Config{}, Meta{}, fmt.Errorf("error loading .env file: %w", err)
		}
		meta.DotEnvUsed = true
	}

	v := viper.NewWithOptions(viper.WithDecodeHook(mapstructure.ComposeDecodeHookFunc(
		StringToDurationHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	)))

	d := Default()
	for key, get := range defaultKeys {
		v.SetDefault(key, get(d))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for _, flag := range bindPFlags {
			if f := cmd.Flags().Lookup(flag); f != nil {
				_ = v.BindPFlag(flag, f)
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			var pathErr *os.PathError
			if errors.As(err, &pathErr) {
				meta.FileNotFound = true
			} else {
				return Config{}, Meta{}, fmt.Errorf("error reading config file %s: %w", configFile, err)
			}
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return Config{}, Meta{}, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return conf, meta, nil
}

// Validate checks the values GetConfig cannot type-check.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	if c.Duration < 0 {
		return fmt.Errorf("negative duration %s", c.Duration)
	}
	switch c.Output.Format {
	case FormatPNG, FormatGIF, FormatFrames:
	default:
		return fmt.Errorf("unknown output format %q: want %s, %s or %s",
			c.Output.Format, FormatPNG, FormatGIF, FormatFrames)
	}
	if _, err := language.Parse(c.Labels.Language); err != nil {
		return fmt.Errorf("invalid labels.language %q: %w", c.Labels.Language, err)
	}
	return nil
}

// GaugeLabels converts the legend settings for gauge.WithLabels.
// An unparsable language falls back to English.
func (c Config) GaugeLabels() gauge.Labels {
	tag, err := language.Parse(c.Labels.Language)
	if err != nil {
		tag = language.English
	}
	return gauge.Labels{
		Title:         c.Labels.Title,
		Company:       c.Labels.Company,
		CompanyValue:  c.Labels.CompanyValue,
		Industry:      c.Labels.Industry,
		IndustryValue: c.Labels.IndustryValue,
		Language:      tag,
	}
}

// Params converts the needle settings for gauge.Renderer.Start.
func (c Config) Params() gauge.Params {
	return gauge.Params{
		CompanyAngle:  c.Company,
		IndustryAngle: c.Industry,
		Duration:      c.Duration.ToDuration(),
	}
}
