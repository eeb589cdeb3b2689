// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gauge

import (
	"context"
	"log/slog"
	"time"
)

// Params are the inputs of Start.
type Params struct {
	CompanyAngle  float64
	IndustryAngle float64

	// Duration of the needle sweep. Zero or negative draws the final frame
	// immediately.
	Duration time.Duration
}

// Frame is the pair of needle angles drawn on one animation tick.
type Frame struct {
	Company  float64
	Industry float64
}

// Start draws the gauge for p. Without a positive duration it draws a single
// frame and returns. Otherwise it runs Animate and blocks until the
// animation ends or ctx is canceled.
func (r *Renderer) Start(ctx context.Context, p Params) error {
	if p.Duration <= 0 {
		return r.Draw(p.CompanyAngle, p.IndustryAngle)
	}
	return r.Animate(ctx, p)
}

// Animate sweeps both needles from 0 toward their targets, redrawing every
// tick. Each tick advances a needle by target/duration·FrameInterval.
//
// Only the company needle decides when the animation ends: on the first tick
// where it reaches its target nothing is drawn and the ticker stops, wherever
// the industry needle happens to be. Use WithSettle to finish on the target
// frame.
func (r *Renderer) Animate(ctx context.Context, p Params) error {
	log := r.logger()
	log.Info("gauge: animation started",
		slog.Float64("company", p.CompanyAngle),
		slog.Float64("industry", p.IndustryAngle),
		slog.Duration("duration", p.Duration))

	t := r.newTicker(r.opts.tickInterval)
	defer t.Stop()

	sw := newSweep(p)
	drawn := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C():
		}

		f, ok := sw.next()
		if !ok {
			break
		}
		log.Debug("gauge: frame",
			slog.Int("n", drawn),
			slog.Float64("company", f.Company),
			slog.Float64("industry", f.Industry))
		if err := r.Draw(f.Company, f.Industry); err != nil {
			return err
		}
		drawn++
	}

	if r.opts.settle {
		if err := r.Draw(p.CompanyAngle, p.IndustryAngle); err != nil {
			return err
		}
		drawn++
	}
	log.Info("gauge: animation finished", slog.Int("frames", drawn))
	return nil
}

// Frames returns the needle angles Start would draw for p, in order,
// without waiting for any ticker.
func (r *Renderer) Frames(p Params) []Frame {
	if p.Duration <= 0 {
		return []Frame{{Company: p.CompanyAngle, Industry: p.IndustryAngle}}
	}

	var frames []Frame
	sw := newSweep(p)
	for {
		f, ok := sw.next()
		if !ok {
			break
		}
		frames = append(frames, f)
	}
	if r.opts.settle {
		frames = append(frames, Frame{Company: p.CompanyAngle, Industry: p.IndustryAngle})
	}
	return frames
}

// sweep accumulates needle angles tick by tick.
type sweep struct {
	target         Params
	stepC, stepI   float64
	company, indus float64
}

func newSweep(p Params) *sweep {
	ms := float64(p.Duration) / float64(time.Millisecond)
	frame := float64(FrameInterval / time.Millisecond)
	return &sweep{
		target: p,
		stepC:  p.CompanyAngle / ms * frame,
		stepI:  p.IndustryAngle / ms * frame,
	}
}

// next advances one tick. It reports false once the company angle is no
// longer below its target (NaN included).
func (s *sweep) next() (Frame, bool) {
	s.company += s.stepC
	s.indus += s.stepI
	if !(s.company < s.target.CompanyAngle) {
		return Frame{}, false
	}
	return Frame{Company: s.company, Industry: s.indus}, true
}

type ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct {
	t *time.Ticker
}

func newTimeTicker(d time.Duration) ticker {
	return timeTicker{t: time.NewTicker(d)}
}

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }
