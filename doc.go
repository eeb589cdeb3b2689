// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gauge draws a semicircular "speedometer" gauge on a 2D canvas.
//
// # Overview
//
// A Renderer turns a handful of numbers (radii, angles, colors) into
// primitive drawing calls on a Canvas: arcs, gradient arcs, tick marks,
// text, filled circles and pointer triangles. Draw composes them into a
// fixed chart template with two needles, and Start optionally animates the
// needles toward their targets.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gg-gauge"
//	    "github.com/gogpu/gg-gauge/integration/ggcanvas"
//	)
//
//	cv, _ := ggcanvas.New(400, 400)
//	r := gauge.New(cv)
//	_ = r.Start(ctx, gauge.Params{CompanyAngle: 60, IndustryAngle: 30})
//	_ = cv.SavePNG("gauge.png")
//
// # Backends
//
// Any type implementing Canvas can be drawn on. The module ships two:
//   - integration/ggcanvas rasterizes with github.com/gogpu/gg
//   - recording captures every call as a command for inspection or replay
//
// # Angles
//
// Two angle units coexist and must not be mixed:
//   - arc angles are degrees; solid arcs map d to π(1+d/180), gradient
//     slices map d to π·d/180
//   - tick steps are multiples of 45°
//
// In both cases angles grow clockwise on a y-down surface, so needle angle
// 0 points left and 180 points right.
//
// # Known quirks
//
// Tick marks are always centered on (200,150) whatever the canvas width.
// The needle base points are computed from the complementary angle with
// mirrored signs. Animation stops as soon as the company needle reaches its
// target, without drawing that final frame unless WithSettle is given.
package gauge
