// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package export turns gauge frames into image files.
//
// Frames are first recorded as command streams, then rasterized onto
// separate ggcanvas surfaces in parallel, then encoded.
package export

import (
	"context"
	"fmt"
	"image"
	"runtime"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	gauge "github.com/gogpu/gg-gauge"
	"github.com/gogpu/gg-gauge/integration/ggcanvas"
	"github.com/gogpu/gg-gauge/recording"
)

// Record draws every frame of p onto its own recording surface and returns
// the recordings in order.
func Record(width, height int, p gauge.Params, opts ...gauge.Option) ([]*recording.Recording, error) {
	frames := gauge.New(recording.NewRecorder(width, height), opts...).Frames(p)

	recs := make([]*recording.Recording, 0, len(frames))
	for i, f := range frames {
		rec := recording.NewRecorder(width, height)
		if err := gauge.New(rec, opts...).Draw(f.Company, f.Industry); err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		recs = append(recs, rec.FinishRecording())
	}
	log.Debug().Int("frames", len(recs)).Msg("frames recorded")
	return recs, nil
}

// Rasterize plays each recording back onto a fresh ggcanvas, at most
// workers at a time (GOMAXPROCS when workers <= 0). The images are
// returned in recording order.
func Rasterize(ctx context.Context, recs []*recording.Recording, workers int) ([]image.Image, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	images := make([]image.Image, len(recs))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, rec := range recs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := rasterize(rec)
			if err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
			images[i] = img
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	log.Debug().Int("frames", len(images)).Int("workers", workers).Msg("frames rasterized")
	return images, nil
}

func rasterize(rec *recording.Recording) (image.Image, error) {
	c, err := ggcanvas.New(rec.Width(), rec.Height())
	if err != nil {
		return nil, err
	}
	defer c.Close()

	rec.Playback(c)
	if err := c.Err(); err != nil {
		return nil, err
	}
	return c.Image(), nil
}
