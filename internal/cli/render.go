// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/gg-gauge/internal/config"
	"github.com/gogpu/gg-gauge/internal/export"
)

// RenderCommand draws one frame at the target angles.
func RenderCommand(configFile *string) *cobra.Command {
	var watchConfig bool
	var workers int
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a single gauge frame",
		Long:  "Render the gauge at the target angles to a PNG, BMP or TIFF file chosen by the output extension",
		RunE: func(cmd *cobra.Command, args []string) error {
			renderOnce := func() error {
				cfg, closeFn, err := load(cmd, *configFile)
				if err != nil {
					return err
				}
				defer closeFn()
				cfg.Output.Format = config.FormatPNG
				_, err = export.Run(cmd.Context(), cfg, workers)
				return err
			}
			if err := renderOnce(); err != nil {
				return err
			}
			if !watchConfig {
				return nil
			}
			if *configFile == "" {
				return errors.New("--watch requires --config")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return watch(ctx, *configFile, renderOnce)
		},
	}
	cmd.Flags().BoolVarP(&watchConfig, "watch", "w", false, "render again whenever the config file changes")
	cmd.Flags().IntVarP(&workers, "workers", "", 0, "rasterizer goroutines, 0 means GOMAXPROCS")
	config.DefineFlags(cmd)
	return cmd
}

// watch calls render each time path is written or recreated, until ctx is
// done. Render errors are logged and do not stop the watch.
func watch(ctx context.Context, path string, render func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Watch the directory: editors often replace the file instead of
	// writing it in place.
	target := filepath.Clean(path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return err
	}
	log.Info().Str("path", target).Msg("watching config file")

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			log.Debug().Str("event", ev.Op.String()).Msg("config changed")
			if err := render(); err != nil {
				log.Error().Err(err).Msg("error rendering gauge")
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("error watching config file")
		}
	}
}
