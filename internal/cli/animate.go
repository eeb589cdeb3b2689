// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/gg-gauge/internal/config"
	"github.com/gogpu/gg-gauge/internal/export"
)

// defaultSweep is used by animate when no duration is configured.
const defaultSweep = time.Second

// AnimateCommand writes the needle sweep as a GIF or a frames directory.
func AnimateCommand(configFile *string) *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Render the needle sweep animation",
		Long:  "Render every animation frame to an animated GIF, or to a directory of PNG frames with --output.format frames",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, closeFn, err := load(cmd, *configFile)
			if err != nil {
				return err
			}
			defer closeFn()

			if cfg.Duration == 0 {
				cfg.Duration = config.Duration(defaultSweep)
			}
			if cfg.Output.Format == config.FormatPNG {
				cfg.Output.Format = config.FormatGIF
				if ext := filepath.Ext(cfg.Output.Path); strings.EqualFold(ext, ".png") {
					cfg.Output.Path = strings.TrimSuffix(cfg.Output.Path, ext) + ".gif"
				}
			}
			_, err = export.Run(cmd.Context(), cfg, workers)
			return err
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "", 0, "rasterizer goroutines, 0 means GOMAXPROCS")
	config.DefineFlags(cmd)
	return cmd
}
