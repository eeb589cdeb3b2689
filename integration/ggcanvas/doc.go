// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggcanvas renders gauges with the gg 2D rasterizer.
//
// Canvas implements gauge.Canvas over a gg.Context, so a gauge.Renderer can
// paint straight into a CPU pixmap that is then written out as PNG:
//
//	canvas, err := ggcanvas.New(400, 400)
//	if err != nil {
//	    return err
//	}
//	defer canvas.Close()
//
//	r := gauge.New(canvas)
//	if err := r.Draw(120, 45); err != nil {
//	    return err
//	}
//	return canvas.SavePNG("gauge.png")
//
// # Canvas Semantics
//
// gg clears the path on Fill and Stroke and keeps paint outside its
// Push/Pop stack. Canvas bridges both differences: it fills and strokes
// with the Preserve variants, and keeps its own stack of line width, colors,
// font and text anchors.
//
// Text is drawn with the Go Regular face from golang.org/x/image unless
// WithFontSource supplies another one. Font families are ignored.
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use. Create one Canvas per goroutine,
// or use external synchronization.
package ggcanvas
