// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cli implements the gaugerender commands.
package cli

import (
	"log/slog"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	gauge "github.com/gogpu/gg-gauge"
	"github.com/gogpu/gg-gauge/internal/config"
	"github.com/gogpu/gg-gauge/internal/logging"
)

// Version is reported by the version command. It is set at link time.
var Version = "dev"

// Root returns the gaugerender command tree.
func Root() *cobra.Command {
	var configFile string
	root := &cobra.Command{
		Use:           "gaugerender",
		Short:         "Render ROE gauges",
		Long:          "gaugerender draws the semicircular ROE gauge to PNG, BMP, TIFF, GIF or a directory of frames",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to config file (json, toml or yaml)")

	root.AddCommand(
		RenderCommand(&configFile),
		AnimateCommand(&configFile),
		RecordCommand(&configFile),
		DefaultConfigCommand(),
		CheckConfigCommand(&configFile),
		VersionCommand(),
	)
	return root
}

// load reads the configuration, sets up logging and routes the gauge
// library's log output into it. The returned function must be called when
// the command is done.
func load(cmd *cobra.Command, configFile string) (config.Config, func(), error) {
	cfg, meta, err := config.GetConfig(cmd, configFile)
	if err != nil {
		return config.Config{}, nil, err
	}
	closeFn, err := logging.Setup(cfg.Log)
	if err != nil {
		return config.Config{}, nil, err
	}
	gauge.SetLogger(slog.New(logging.NewSlogHandler(log.Logger)))

	if meta.FileNotFound {
		log.Warn().Str("path", configFile).Msg("config file not found, continue using environment and flag options")
	} else if configFile != "" {
		absConfPath, _ := filepath.Abs(configFile)
		log.Info().Str("path", absConfPath).Msg("using config file")
	}
	if meta.DotEnvUsed {
		log.Info().Msg("environment variables have been loaded from .env file")
	}
	return cfg, closeFn, nil
}
