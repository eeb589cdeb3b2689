// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/gg-gauge/internal/config"
)

var supportedExtensions = []string{"json", "toml", "yaml", "yml"}

// DefaultConfigCommand writes the default configuration to a file, or to
// stdout when the path is "-" (TOML).
func DefaultConfigCommand() *cobra.Command {
	var defaultConfigFile string
	var force bool
	cmd := &cobra.Command{
		Use:   "defaultconfig",
		Short: "Generate full configuration file with defaults",
		Long:  "Generate full gaugerender configuration file with defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaultConfigFile == "-" {
				b, err := marshalConfig(config.Default(), "toml")
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(b)
				return err
			}
			return DefaultConfig(defaultConfigFile, force)
		},
	}
	cmd.Flags().StringVarP(&defaultConfigFile, "config", "c", "config.toml", "path to default config file to generate, - for stdout")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}

// DefaultConfig writes config.Default to configFile in the format of its
// extension.
func DefaultConfig(configFile string, force bool) error {
	if _, err := os.Stat(configFile); err == nil && !force {
		return fmt.Errorf("target file %s already exists", configFile)
	}
	ext := strings.TrimPrefix(filepath.Ext(configFile), ".")
	b, err := marshalConfig(config.Default(), ext)
	if err != nil {
		return err
	}
	return os.WriteFile(configFile, b, 0o644)
}

func marshalConfig(conf config.Config, ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case "json":
		return json.MarshalIndent(conf, "", "  ")
	case "toml":
		return toml.Marshal(conf)
	case "yaml", "yml":
		return yaml.Marshal(conf)
	}
	return nil, errors.New("output config file must have one of supported extensions: " + strings.Join(supportedExtensions, ", "))
}
