// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package recording provides a gauge.Canvas that records drawing calls.
//
// Each Canvas method becomes a typed Command. A Recording can be inspected
// (how many strokes, in which colors, along which path) or played back onto
// any other Canvas, which makes it both the test double for the gauge
// renderer and a way to render the same frame on several backends.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(400, 400)
//	r := gauge.New(rec)
//	_ = r.Draw(60, 30)
//	frame := rec.FinishRecording()
//
//	for _, s := range frame.Strokes() {
//	    fmt.Println(s.Style, s.LineWidth, len(s.Path))
//	}
//
// # Playback
//
//	cv, _ := ggcanvas.New(frame.Width(), frame.Height())
//	frame.Playback(cv)
//	_ = cv.SavePNG("frame.png")
//
// Fill, Stroke and FillText commands also carry the style resolved at record
// time. Playback ignores those fields and lets the target canvas resolve
// them from the replayed style commands.
package recording
