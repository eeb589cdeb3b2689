// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gauge

import (
	"log/slog"
	"time"
)

// Option configures a Renderer during creation.
//
// Example:
//
//	r := gauge.New(canvas,
//	    gauge.WithLogger(slog.Default()),
//	    gauge.WithSettle(),
//	)
type Option func(*options)

type options struct {
	logger       *slog.Logger
	labels       Labels
	settle       bool
	tickInterval time.Duration
}

func defaultOptions() options {
	return options{
		labels:       DefaultLabels(),
		tickInterval: FrameInterval,
	}
}

// WithLogger sets a logger for this Renderer only. Without it the
// package-wide logger from SetLogger is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithLabels replaces the legend text drawn by Draw.
func WithLabels(l Labels) Option {
	return func(o *options) {
		o.labels = l
	}
}

// WithSettle makes an animation finish with one extra frame drawn at the
// target angles. Without it the last frame drawn is the last one whose
// company angle is still below target.
func WithSettle() Option {
	return func(o *options) {
		o.settle = true
	}
}

// WithTickInterval changes the wall-clock spacing of animation ticks.
// The per-tick angle increment is always computed for FrameInterval, so a
// longer interval slows the animation down without changing its frames.
func WithTickInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.tickInterval = d
		}
	}
}
