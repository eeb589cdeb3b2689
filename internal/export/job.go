// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package export

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	gauge "github.com/gogpu/gg-gauge"
	"github.com/gogpu/gg-gauge/internal/config"
)

// Options builds the renderer options described by cfg.
func Options(cfg config.Config) []gauge.Option {
	opts := []gauge.Option{
		gauge.WithLabels(cfg.GaugeLabels()),
		gauge.WithTickInterval(cfg.TickInterval.ToDuration()),
	}
	if cfg.Settle {
		opts = append(opts, gauge.WithSettle())
	}
	return opts
}

// Run renders cfg to cfg.Output and returns the number of frames written.
//
// The png format always writes the single frame at the target angles.
// The gif and frames formats write the animation frames, or that single
// frame when cfg.Duration is zero.
func Run(ctx context.Context, cfg config.Config, workers int) (int, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}

	p := cfg.Params()
	var still StillFormat
	if cfg.Output.Format == config.FormatPNG {
		p.Duration = 0
		f, err := StillFormatFromPath(cfg.Output.Path)
		if err != nil {
			return 0, err
		}
		still = f
	}

	recs, err := Record(cfg.Width, cfg.Height, p, Options(cfg)...)
	if err != nil {
		return 0, err
	}
	if len(recs) == 0 {
		return 0, fmt.Errorf("company angle %v produces no frames", cfg.Company)
	}
	images, err := Rasterize(ctx, recs, workers)
	if err != nil {
		return 0, err
	}

	switch cfg.Output.Format {
	case config.FormatGIF:
		err = writeFile(cfg.Output.Path, func(w io.Writer) error {
			return EncodeGIF(w, images, gauge.FrameInterval)
		})
	case config.FormatFrames:
		err = WriteFrames(cfg.Output.Path, images)
	default:
		err = writeFile(cfg.Output.Path, func(w io.Writer) error {
			return EncodeStill(w, images[0], still)
		})
	}
	if err != nil {
		return 0, fmt.Errorf("write %s: %w", cfg.Output.Path, err)
	}

	log.Info().
		Str("path", cfg.Output.Path).
		Str("format", cfg.Output.Format).
		Int("frames", len(images)).
		Msg("gauge written")
	return len(images), nil
}
