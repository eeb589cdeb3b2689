// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gauge

import (
	"testing"
	"time"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.logger != nil {
		t.Error("default logger should be nil")
	}
	if o.settle {
		t.Error("settle should be off by default")
	}
	if o.tickInterval != FrameInterval {
		t.Errorf("tickInterval = %v, want %v", o.tickInterval, FrameInterval)
	}
	if o.labels != DefaultLabels() {
		t.Errorf("labels = %+v, want defaults", o.labels)
	}
}

func TestWithTickInterval(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want time.Duration
	}{
		{"positive", 5 * time.Millisecond, 5 * time.Millisecond},
		{"zero ignored", 0, FrameInterval},
		{"negative ignored", -time.Second, FrameInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			WithTickInterval(tt.d)(&o)
			if o.tickInterval != tt.want {
				t.Errorf("tickInterval = %v, want %v", o.tickInterval, tt.want)
			}
		})
	}
}

func TestWithLabelsAndSettle(t *testing.T) {
	l := DefaultLabels()
	l.Title = "ROE"

	o := defaultOptions()
	WithLabels(l)(&o)
	WithSettle()(&o)

	if o.labels.Title != "ROE" {
		t.Errorf("Title = %q, want ROE", o.labels.Title)
	}
	if !o.settle {
		t.Error("WithSettle not applied")
	}
}
