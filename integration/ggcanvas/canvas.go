// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcanvas

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/gpucontext"
	"golang.org/x/image/font/gofont/goregular"

	gauge "github.com/gogpu/gg-gauge"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("ggcanvas: canvas is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("ggcanvas: invalid dimensions")
)

// Canvas implements gauge.Canvas on top of a gg.Context.
//
// gg keeps only the transform on its Push/Pop stack, so Canvas tracks the
// canvas style state itself and applies it to the context right before each
// Fill, Stroke and FillText.
//
// The first rendering error is kept and returned by Err.
//
// Canvas is NOT safe for concurrent use. Create one Canvas per goroutine,
// or use external synchronization.
type Canvas struct {
	ctx    *gg.Context
	width  int
	height int

	source     *text.FontSource
	ownsSource bool
	faces      map[float64]text.Face

	state style
	stack []style

	err    error
	closed bool
}

type style struct {
	lineWidth float64
	stroke    string
	fill      string
	font      gauge.Font
	align     gauge.TextAlign
	baseline  gauge.TextBaseline
}

func defaultStyle() style {
	return style{
		lineWidth: 1,
		stroke:    "#000000",
		fill:      "#000000",
		font:      gauge.Font{Size: 10, Family: "sans-serif"},
		align:     gauge.AlignLeft,
		baseline:  gauge.BaselineAlphabetic,
	}
}

// Option configures a Canvas.
type Option func(*config)

type config struct {
	source   *text.FontSource
	provider gpucontext.DeviceProvider
}

// WithFontSource draws text with src instead of the bundled Go Regular face.
// The caller keeps ownership of src.
func WithFontSource(src *text.FontSource) Option {
	return func(c *config) {
		c.source = src
	}
}

// WithDeviceProvider shares the host GPU device with the gg accelerator,
// when one is registered. Without an accelerator it has no effect.
func WithDeviceProvider(p gpucontext.DeviceProvider) Option {
	return func(c *config) {
		c.provider = p
	}
}

var _ gauge.Canvas = (*Canvas)(nil)

// New creates a Canvas with a transparent width×height surface.
//
// Returns error if dimensions are invalid or the bundled font cannot be
// parsed.
func New(width, height int, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.provider != nil {
		// Non-fatal: the accelerator may not support device sharing.
		_ = gg.SetAcceleratorDeviceProvider(cfg.provider)
	}

	c := &Canvas{
		ctx:    gg.NewContext(width, height),
		width:  width,
		height: height,
		source: cfg.source,
		faces:  make(map[float64]text.Face),
		state:  defaultStyle(),
	}
	if c.source == nil {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("ggcanvas: load font: %w", err)
		}
		c.source = src
		c.ownsSource = true
	}
	return c, nil
}

// MustNew is like New but panics on error.
// Use only when errors are programming mistakes (e.g., hardcoded dimensions).
func MustNew(width, height int, opts ...Option) *Canvas {
	c, err := New(width, height, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Context returns the underlying gg context.
//
// Returns nil if the canvas is closed.
func (c *Canvas) Context() *gg.Context {
	if c.closed {
		return nil
	}
	return c.ctx
}

// Width implements gauge.Canvas.
func (c *Canvas) Width() float64 {
	return float64(c.width)
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() float64 {
	return float64(c.height)
}

// Size returns width and height in pixels.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Err returns the first error reported by the rasterizer, if any.
func (c *Canvas) Err() error {
	return c.err
}

func (c *Canvas) setErr(err error) {
	if err != nil && c.err == nil {
		c.err = err
	}
}

// --------------------------------------------------------------------------
// State
// --------------------------------------------------------------------------

// Save pushes the style state.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore pops the style state. It is a no-op on an empty stack.
func (c *Canvas) Restore() {
	if n := len(c.stack); n > 0 {
		c.state = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

// --------------------------------------------------------------------------
// Path
// --------------------------------------------------------------------------

// BeginPath discards the current path.
func (c *Canvas) BeginPath() {
	c.ctx.ClearPath()
}

// ClosePath closes the current subpath.
func (c *Canvas) ClosePath() {
	c.ctx.ClosePath()
}

// MoveTo starts a new subpath.
func (c *Canvas) MoveTo(x, y float64) {
	c.ctx.MoveTo(x, y)
}

// LineTo adds a line to the current path.
func (c *Canvas) LineTo(x, y float64) {
	c.ctx.LineTo(x, y)
}

// Arc adds a clockwise arc. With a current point, a straight segment joins
// it to the start of the arc.
func (c *Canvas) Arc(x, y, r, startAngle, endAngle float64) {
	sx := x + r*math.Cos(startAngle)
	sy := y + r*math.Sin(startAngle)
	if _, _, ok := c.ctx.GetCurrentPoint(); ok {
		c.ctx.LineTo(sx, sy)
	} else {
		c.ctx.MoveTo(sx, sy)
	}
	c.ctx.DrawArc(x, y, r, startAngle, endAngle)
}

// Rect adds a closed rectangle subpath.
func (c *Canvas) Rect(x, y, w, h float64) {
	c.ctx.DrawRectangle(x, y, w, h)
}

// --------------------------------------------------------------------------
// Drawing
// --------------------------------------------------------------------------

// ClearRect sets every pixel of the rectangle to transparent.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	if c.closed {
		return
	}
	x0 := max(0, int(math.Floor(x)))
	y0 := max(0, int(math.Floor(y)))
	x1 := min(c.width, int(math.Ceil(x+w)))
	y1 := min(c.height, int(math.Ceil(y+h)))
	if x0 == 0 && y0 == 0 && x1 == c.width && y1 == c.height {
		c.ctx.Clear()
		return
	}
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.ctx.SetPixel(px, py, gg.Transparent)
		}
	}
}

// Fill fills the current path with the fill color. The path is kept.
func (c *Canvas) Fill() {
	if c.closed {
		return
	}
	c.ctx.SetFillBrush(gg.SolidHex(c.state.fill))
	c.setErr(c.ctx.FillPreserve())
}

// Stroke strokes the current path with the stroke color and line width.
// The path is kept.
func (c *Canvas) Stroke() {
	if c.closed {
		return
	}
	c.ctx.SetStrokeBrush(gg.SolidHex(c.state.stroke))
	c.ctx.SetLineWidth(c.state.lineWidth)
	c.setErr(c.ctx.StrokePreserve())
}

// FillText draws text in the fill color, anchored at (x, y) according to
// the current alignment and baseline. The font family is ignored.
func (c *Canvas) FillText(s string, x, y float64) {
	if c.closed || s == "" {
		return
	}
	face := c.face(c.state.font.Size)
	c.ctx.SetFont(face)
	c.ctx.SetFillBrush(gg.SolidHex(c.state.fill))

	switch c.state.align {
	case gauge.AlignCenter:
		x -= face.Advance(s) / 2
	case gauge.AlignRight:
		x -= face.Advance(s)
	}

	m := face.Metrics()
	switch c.state.baseline {
	case gauge.BaselineTop:
		y += m.Ascent
	case gauge.BaselineMiddle:
		y += (m.Ascent - m.Descent) / 2
	case gauge.BaselineBottom:
		y -= m.Descent
	}
	c.ctx.DrawString(s, x, y)
}

func (c *Canvas) face(size float64) text.Face {
	if f, ok := c.faces[size]; ok {
		return f
	}
	f := c.source.Face(size)
	c.faces[size] = f
	return f
}

// --------------------------------------------------------------------------
// Style
// --------------------------------------------------------------------------

// SetLineWidth sets the stroke width. Zero, negative and non-finite widths
// are ignored.
func (c *Canvas) SetLineWidth(w float64) {
	if w > 0 && !math.IsInf(w, 1) {
		c.state.lineWidth = w
	}
}

// SetStrokeStyle sets the stroke color. Unparsable colors are ignored.
func (c *Canvas) SetStrokeStyle(color string) {
	if _, err := gauge.HexToRGB(color); err == nil {
		c.state.stroke = color
	}
}

// SetFillStyle sets the fill color. Unparsable colors are ignored.
func (c *Canvas) SetFillStyle(color string) {
	if _, err := gauge.HexToRGB(color); err == nil {
		c.state.fill = color
	}
}

// SetFont sets the text size. Non-positive sizes are ignored.
func (c *Canvas) SetFont(f gauge.Font) {
	if f.Size > 0 {
		c.state.font = f
	}
}

// SetTextAlign sets the horizontal text anchor.
func (c *Canvas) SetTextAlign(a gauge.TextAlign) {
	c.state.align = a
}

// SetTextBaseline sets the vertical text anchor.
func (c *Canvas) SetTextBaseline(b gauge.TextBaseline) {
	c.state.baseline = b
}

// --------------------------------------------------------------------------
// Output
// --------------------------------------------------------------------------

// Image returns a copy of the current pixels.
func (c *Canvas) Image() image.Image {
	return c.ctx.Image()
}

// EncodePNG writes the current pixels as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.closed {
		return ErrCanvasClosed
	}
	return c.ctx.EncodePNG(w)
}

// SavePNG writes the current pixels as a PNG file.
func (c *Canvas) SavePNG(path string) error {
	if c.closed {
		return ErrCanvasClosed
	}
	return c.ctx.SavePNG(path)
}

// Close releases the context and the bundled font. Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	err := c.ctx.Close()
	if c.ownsSource {
		err = errors.Join(err, c.source.Close())
	}
	return err
}
