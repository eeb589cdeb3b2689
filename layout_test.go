// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gauge_test

import (
	"testing"

	gauge "github.com/gogpu/gg-gauge"
	"github.com/gogpu/gg-gauge/recording"
	"golang.org/x/text/language"
)

func TestDrawCommandCounts(t *testing.T) {
	r, rec := newRecorded(400)
	if err := r.Draw(90, 45); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if rec.Depth() != 0 {
		t.Errorf("unbalanced Save/Restore after Draw: depth %d", rec.Depth())
	}

	out := rec.FinishRecording()
	// background 1, gradient 180, caps 2, ticks 5, two needles with 2 each
	if got := len(out.Strokes()); got != 192 {
		t.Errorf("strokes = %d, want 192", got)
	}
	// background, pivot, and a triangle plus a pivot per needle
	if got := len(out.Fills()); got != 6 {
		t.Errorf("fills = %d, want 6", got)
	}
	if got := len(out.Texts()); got != 10 {
		t.Errorf("texts = %d, want 10", got)
	}
	if got := out.Count(recording.CmdClearRect); got != 1 {
		t.Errorf("ClearRect = %d, want 1", got)
	}
}

func TestDrawClearsFirst(t *testing.T) {
	r, rec := newRecorded(400)
	if err := r.Draw(0, 0); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	cmds := rec.FinishRecording().Commands()
	clr, ok := cmds[0].(recording.ClearRectCommand)
	if !ok {
		t.Fatalf("first command is %T, want ClearRectCommand", cmds[0])
	}
	if clr.X != 0 || clr.Y != 0 || clr.W != 400 || clr.H != 300 {
		t.Errorf("ClearRect = %+v, want 0,0,400,300", clr)
	}
}

func TestDrawBackground(t *testing.T) {
	r, rec := newRecorded(400)
	if err := r.Draw(10, 10); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	out := rec.FinishRecording()
	bg := out.Fills()[0]
	if bg.Style != gauge.BackgroundColor {
		t.Errorf("background fill = %q, want %q", bg.Style, gauge.BackgroundColor)
	}
	rect, ok := bg.Path[0].(recording.RectCommand)
	if !ok || rect.W != 400 || rect.H != 400 {
		t.Errorf("background path = %+v", bg.Path)
	}
	// The background is stroked with whatever stroke style was current.
	if s := out.Strokes()[0]; s.Style != "#000000" {
		t.Errorf("background stroke = %q, want #000000", s.Style)
	}
}

func TestDrawNeedleOrder(t *testing.T) {
	r, rec := newRecorded(400)
	if err := r.Draw(120, 30); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	fills := rec.FinishRecording().Fills()
	// pivot, industry triangle, industry pivot, company triangle, company pivot
	want := []string{gauge.PivotColor, "#2394df", "#2394df", "#71e7d6", "#71e7d6"}
	got := fills[1:]
	if len(got) != len(want) {
		t.Fatalf("fills = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Style != want[i] {
			t.Errorf("fill %d = %q, want %q", i+1, got[i].Style, want[i])
		}
	}
}

func TestDrawLegend(t *testing.T) {
	tests := []struct {
		name   string
		labels gauge.Labels
		want   []string
	}{
		{
			name:   "default",
			labels: gauge.DefaultLabels(),
			want:   []string{"Future ROE(3yrs)", "Company", "132.1%", "Industry", "11.2%"},
		},
		{
			name: "german",
			labels: gauge.Labels{
				Title:         "ROE",
				Company:       "Firma",
				CompanyValue:  132.1,
				Industry:      "Branche",
				IndustryValue: 11.2,
				Language:      language.German,
			},
			want: []string{"ROE", "Firma", "132,1%", "Branche", "11,2%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, rec := newRecorded(400, gauge.WithLabels(tt.labels))
			if err := r.Draw(0, 0); err != nil {
				t.Fatalf("Draw: %v", err)
			}

			texts := rec.FinishRecording().Texts()
			legend := texts[5:]
			for i, w := range tt.want {
				if legend[i].Text != w {
					t.Errorf("legend %d = %q, want %q", i, legend[i].Text, w)
				}
			}
			if legend[2].Align != gauge.AlignRight || legend[4].Align != gauge.AlignRight {
				t.Error("legend values must be right-aligned")
			}
		})
	}
}

func TestDrawScaleLabels(t *testing.T) {
	r, rec := newRecorded(400)
	if err := r.Draw(0, 0); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	want := []string{"0%", "10.0%", "20.0%", "30.0%", "40.0%"}
	texts := rec.FinishRecording().Texts()
	for i, w := range want {
		txt := texts[i]
		if txt.Text != w || txt.Style != gauge.LabelColor || txt.Font.Size != 12 {
			t.Errorf("scale label %d = %q %q %v", i, txt.Text, txt.Style, txt.Font.Size)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	l := gauge.DefaultLabels()
	if got := l.FormatPercent(0); got != "0.0%" {
		t.Errorf("FormatPercent(0) = %q, want 0.0%%", got)
	}
	if got := l.FormatPercent(12.34); got != "12.3%" {
		t.Errorf("FormatPercent(12.34) = %q, want 12.3%%", got)
	}
}
