// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/gg-gauge/internal/config"
)

// CheckConfigCommand validates a configuration file.
func CheckConfigCommand(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "checkconfig",
		Short: "Check configuration file",
		Long:  "Check gaugerender configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if *configFile == "" {
				return errors.New("checkconfig requires --config")
			}
			cfg, meta, err := config.GetConfig(nil, *configFile)
			if err != nil {
				return fmt.Errorf("error getting config: %w", err)
			}
			if meta.FileNotFound {
				return fmt.Errorf("config file %s not found", *configFile)
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("error validating config: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "config is valid")
			return err
		},
	}
}
