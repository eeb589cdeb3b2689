// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gauge

import (
	"log/slog"
	"math"
	"time"
)

// Fixed geometry of the gauge template.
const (
	// CenterY is the vertical position of the dial center.
	CenterY = 150.0

	// TickCenterX and TickCenterY locate the tick marks. They do not follow
	// the canvas width the way the dial center does.
	TickCenterX = 200.0
	TickCenterY = 150.0

	// DefaultArcBegin and DefaultArcEnd span the upper half circle.
	DefaultArcBegin = 0.0
	DefaultArcEnd   = 180.0

	// PivotStrokeColor is used whenever Round is asked to stroke.
	PivotStrokeColor = "#7775FD"

	// FrameInterval is the animation tick period.
	FrameInterval = 20 * time.Millisecond

	pointerBase = 3.0
)

// Text defaults applied by FillText for zero TextStyle fields.
const (
	DefaultTextColor  = "#333"
	DefaultTextSize   = 18.0
	DefaultTextFamily = "Arial"
	DefaultRoundFill  = "#fff"
)

// TextStyle controls FillText. Zero fields fall back to DefaultTextColor,
// DefaultTextSize and AlignCenter.
type TextStyle struct {
	Color string
	Size  float64
	Align TextAlign
}

// Renderer draws the gauge onto a Canvas. It is created once per surface and
// reused for every frame.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	canvas  Canvas
	centerX float64
	centerY float64

	opts      options
	newTicker func(time.Duration) ticker
}

// New creates a Renderer for canvas. The dial center is (width/2, CenterY).
// canvas must not be nil.
func New(canvas Canvas, opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{
		canvas:    canvas,
		centerX:   canvas.Width() / 2,
		centerY:   CenterY,
		opts:      o,
		newTicker: newTimeTicker,
	}
}

// Center returns the dial center.
func (r *Renderer) Center() (x, y float64) {
	return r.centerX, r.centerY
}

// Canvas returns the surface the Renderer draws on.
func (r *Renderer) Canvas() Canvas {
	return r.canvas
}

func (r *Renderer) logger() *slog.Logger {
	if r.opts.logger != nil {
		return r.opts.logger
	}
	return Logger()
}

// MonochromeArc strokes a single-color arc of radius rad and width w around
// the dial center, from π(1+begin/180) to π(1+end/180).
func (r *Renderer) MonochromeArc(rad, w float64, color string, begin, end float64) {
	c := r.canvas
	c.Save()
	c.BeginPath()
	c.SetLineWidth(w)
	c.SetStrokeStyle(color)
	c.Arc(r.centerX, r.centerY, rad, math.Pi*(1+begin/180), math.Pi*(1+end/180))
	c.Stroke()
	c.Restore()
}

// GradientArc approximates a color gradient along an arc with one stroke per
// degree in [begin, end). Slice i spans π·i/180 to π·(i+1)/180.
//
// Channel values are interpolated with floor division, so the last slice
// usually stops short of the end color.
func (r *Renderer) GradientArc(rad, w float64, from, to string, begin, end int) error {
	start, err := HexToRGB(from)
	if err != nil {
		r.logger().Warn("gauge: gradient start color", slog.String("color", from))
		return err
	}
	stop, err := HexToRGB(to)
	if err != nil {
		r.logger().Warn("gauge: gradient end color", slog.String("color", to))
		return err
	}

	diffR := stop.R - start.R
	diffG := stop.G - start.G
	diffB := stop.B - start.B

	c := r.canvas
	for i := begin; i < end; i++ {
		c.Save()
		c.BeginPath()
		c.SetLineWidth(w)
		c.SetStrokeStyle(PadHex(RGBToHex(
			start.R+floorDiv(diffR*(i-begin), end-begin),
			start.G+floorDiv(diffG*(i-begin), end-begin),
			start.B+floorDiv(diffB*(i-begin), end-begin),
		)))
		c.Arc(r.centerX, r.centerY, rad, math.Pi*(float64(i)/180), math.Pi*(float64(i+1)/180))
		c.Stroke()
		c.ClosePath()
		c.Restore()
	}
	return nil
}

// floorDiv rounds toward negative infinity, unlike Go's integer division.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Scale draws span tick marks starting at step s. Step k lies at k·45°;
// each tick runs from radius sl to radius el around (TickCenterX, TickCenterY).
func (r *Renderer) Scale(s, span int, sl, el float64, color string) {
	c := r.canvas
	step := s
	for i := 0; i < span; i++ {
		c.Save()
		c.BeginPath()
		rad := float64(step) * 45 * math.Pi / 180
		cos, sin := math.Cos(rad), math.Sin(rad)
		c.MoveTo(TickCenterX-cos*sl, TickCenterY-sin*sl)
		c.LineTo(TickCenterX-cos*el, TickCenterY-sin*el)
		c.SetStrokeStyle(color)
		c.Stroke()
		c.Restore()
		step++
	}
}

// FillText draws text centered vertically on y.
func (r *Renderer) FillText(text string, x, y float64, style TextStyle) {
	color := style.Color
	if color == "" {
		color = DefaultTextColor
	}
	size := style.Size
	if size == 0 {
		size = DefaultTextSize
	}
	c := r.canvas
	c.Save()
	c.SetTextAlign(style.Align)
	c.SetTextBaseline(BaselineMiddle)
	c.SetFont(Font{Size: size, Family: DefaultTextFamily})
	c.SetFillStyle(color)
	c.FillText(text, x, y)
	c.Restore()
}

// Round fills a circle. With lineWidth > 0 the circle is also stroked in
// PivotStrokeColor, whatever the fill color. An empty fill means white.
func (r *Renderer) Round(x, y, rad float64, fill string, lineWidth float64) {
	if fill == "" {
		fill = DefaultRoundFill
	}
	c := r.canvas
	c.Save()
	c.BeginPath()
	c.SetLineWidth(lineWidth)
	if lineWidth != 0 {
		c.SetStrokeStyle(PivotStrokeColor)
	}
	c.Arc(x, y, rad, 0, math.Pi*2)
	c.SetFillStyle(fill)
	c.Fill()
	if lineWidth != 0 {
		c.Stroke()
	}
	c.Restore()
}

// Triangle draws the pointer needle: its tip lies h pixels from the center
// along angle (degrees); its base is 3 pixels either side of the center.
func (r *Renderer) Triangle(angle, h float64, color string) {
	c := r.canvas
	c.Save()
	c.BeginPath()
	c.SetLineWidth(1)

	rad := angle * math.Pi / 180
	c.MoveTo(r.centerX-math.Cos(rad)*h, r.centerY-math.Sin(rad)*h)

	// Both base points use the complementary angle with mirrored signs.
	base := (90 - angle) * math.Pi / 180
	c.LineTo(r.centerX-math.Cos(base)*pointerBase, r.centerY+math.Sin(base)*pointerBase)
	c.LineTo(r.centerX+math.Cos(base)*pointerBase, r.centerY-math.Sin(base)*pointerBase)
	c.ClosePath()

	c.SetFillStyle(color)
	c.Fill()
	c.SetStrokeStyle(color)
	c.Stroke()
	c.Restore()
}
