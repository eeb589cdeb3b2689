// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package recording

import (
	"math"

	gauge "github.com/gogpu/gg-gauge"
)

// Recorder is a gauge.Canvas that captures every call as a Command.
//
// Besides the verbatim call stream, the Recorder tracks the style state the
// way a browser canvas does, so that Fill, Stroke and FillText commands carry
// the color, width and path they were issued with.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command

	path []Command

	state      recorderState
	stateStack []recorderState
}

// recorderState is the part of the canvas state covered by Save/Restore.
type recorderState struct {
	lineWidth   float64
	strokeStyle string
	fillStyle   string
	font        gauge.Font
	align       gauge.TextAlign
	baseline    gauge.TextBaseline
}

func defaultState() recorderState {
	return recorderState{
		lineWidth:   1,
		strokeStyle: "#000000",
		fillStyle:   "#000000",
		font:        gauge.Font{Size: 10, Family: "sans-serif"},
		align:       gauge.AlignLeft,
		baseline:    gauge.BaselineAlphabetic,
	}
}

var _ gauge.Canvas = (*Recorder)(nil)

// NewRecorder creates a Recorder for a surface of the given size.
// The initial state matches a fresh browser canvas: 1px black strokes,
// black fills, left-aligned alphabetic text.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:      width,
		height:     height,
		commands:   make([]Command, 0, 256),
		state:      defaultState(),
		stateStack: make([]recorderState, 0, 8),
	}
}

// FinishRecording returns the recorded commands. The Recorder should not be
// used afterwards.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: r.commands,
	}
}

// Width implements gauge.Canvas.
func (r *Recorder) Width() float64 {
	return float64(r.width)
}

// Height returns the surface height in pixels.
func (r *Recorder) Height() float64 {
	return float64(r.height)
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

func (r *Recorder) record(c Command) {
	r.commands = append(r.commands, c)
}

// --------------------------------------------------------------------------
// State Management
// --------------------------------------------------------------------------

// Save pushes the style state.
func (r *Recorder) Save() {
	r.stateStack = append(r.stateStack, r.state)
	r.record(SaveCommand{})
}

// Restore pops the style state. With an empty stack only the command is
// recorded.
func (r *Recorder) Restore() {
	if n := len(r.stateStack); n > 0 {
		r.state = r.stateStack[n-1]
		r.stateStack = r.stateStack[:n-1]
	}
	r.record(RestoreCommand{})
}

// Depth returns the number of unmatched Save calls.
func (r *Recorder) Depth() int {
	return len(r.stateStack)
}

// --------------------------------------------------------------------------
// Path
// --------------------------------------------------------------------------

// BeginPath discards the current path.
func (r *Recorder) BeginPath() {
	r.path = nil
	r.record(BeginPathCommand{})
}

// ClosePath closes the current subpath.
func (r *Recorder) ClosePath() {
	r.addPath(ClosePathCommand{})
}

// MoveTo starts a subpath.
func (r *Recorder) MoveTo(x, y float64) {
	r.addPath(MoveToCommand{X: x, Y: y})
}

// LineTo adds a straight segment.
func (r *Recorder) LineTo(x, y float64) {
	r.addPath(LineToCommand{X: x, Y: y})
}

// Arc adds a clockwise arc.
func (r *Recorder) Arc(x, y, radius, startAngle, endAngle float64) {
	r.addPath(ArcCommand{X: x, Y: y, R: radius, StartAngle: startAngle, EndAngle: endAngle})
}

// Rect adds a closed rectangle subpath.
func (r *Recorder) Rect(x, y, w, h float64) {
	r.addPath(RectCommand{X: x, Y: y, W: w, H: h})
}

func (r *Recorder) addPath(c Command) {
	r.path = append(r.path, c)
	r.record(c)
}

// snapshot copies the current path so later path calls do not alias it.
func (r *Recorder) snapshot() []Command {
	if len(r.path) == 0 {
		return nil
	}
	p := make([]Command, len(r.path))
	copy(p, r.path)
	return p
}

// --------------------------------------------------------------------------
// Drawing
// --------------------------------------------------------------------------

// ClearRect records a clear of the rectangle.
func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.record(ClearRectCommand{X: x, Y: y, W: w, H: h})
}

// Fill fills the current path with the fill style.
func (r *Recorder) Fill() {
	r.record(FillCommand{Style: r.state.fillStyle, Path: r.snapshot()})
}

// Stroke strokes the current path with the stroke style and line width.
func (r *Recorder) Stroke() {
	r.record(StrokeCommand{
		Style:     r.state.strokeStyle,
		LineWidth: r.state.lineWidth,
		Path:      r.snapshot(),
	})
}

// FillText draws text with the current fill style, font and alignment.
func (r *Recorder) FillText(text string, x, y float64) {
	r.record(FillTextCommand{
		Text:     text,
		X:        x,
		Y:        y,
		Style:    r.state.fillStyle,
		Font:     r.state.font,
		Align:    r.state.align,
		Baseline: r.state.baseline,
	})
}

// --------------------------------------------------------------------------
// Style
// --------------------------------------------------------------------------

// SetLineWidth sets the stroke width. Like a browser canvas, zero, negative
// and non-finite widths are recorded but leave the state unchanged.
func (r *Recorder) SetLineWidth(w float64) {
	if w > 0 && !math.IsInf(w, 1) {
		r.state.lineWidth = w
	}
	r.record(SetLineWidthCommand{Width: w})
}

// SetStrokeStyle sets the stroke color. Unparsable colors are recorded but
// ignored.
func (r *Recorder) SetStrokeStyle(color string) {
	if validColor(color) {
		r.state.strokeStyle = color
	}
	r.record(SetStrokeStyleCommand{Color: color})
}

// SetFillStyle sets the fill color. Unparsable colors are recorded but
// ignored.
func (r *Recorder) SetFillStyle(color string) {
	if validColor(color) {
		r.state.fillStyle = color
	}
	r.record(SetFillStyleCommand{Color: color})
}

// SetFont sets the text font.
func (r *Recorder) SetFont(f gauge.Font) {
	r.state.font = f
	r.record(SetFontCommand{Font: f})
}

// SetTextAlign sets the horizontal text anchor.
func (r *Recorder) SetTextAlign(a gauge.TextAlign) {
	r.state.align = a
	r.record(SetTextAlignCommand{Align: a})
}

// SetTextBaseline sets the vertical text anchor.
func (r *Recorder) SetTextBaseline(b gauge.TextBaseline) {
	r.state.baseline = b
	r.record(SetTextBaselineCommand{Baseline: b})
}

func validColor(s string) bool {
	_, err := gauge.HexToRGB(s)
	return err == nil
}

// --------------------------------------------------------------------------
// Recording
// --------------------------------------------------------------------------

// Recording is an immutable list of recorded commands.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the width of the recorded surface.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recorded surface.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns all recorded commands in call order.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Count returns how many commands of type t were recorded.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Strokes returns every StrokeCommand in call order.
func (r *Recording) Strokes() []StrokeCommand {
	var out []StrokeCommand
	for _, c := range r.commands {
		if s, ok := c.(StrokeCommand); ok {
			out = append(out, s)
		}
	}
	return out
}

// Fills returns every FillCommand in call order.
func (r *Recording) Fills() []FillCommand {
	var out []FillCommand
	for _, c := range r.commands {
		if f, ok := c.(FillCommand); ok {
			out = append(out, f)
		}
	}
	return out
}

// Texts returns every FillTextCommand in call order.
func (r *Recording) Texts() []FillTextCommand {
	var out []FillTextCommand
	for _, c := range r.commands {
		if t, ok := c.(FillTextCommand); ok {
			out = append(out, t)
		}
	}
	return out
}

// Playback replays the recording onto c, call for call.
func (r *Recording) Playback(c gauge.Canvas) {
	for _, cmd := range r.commands {
		switch cmd := cmd.(type) {
		case SaveCommand:
			c.Save()
		case RestoreCommand:
			c.Restore()
		case BeginPathCommand:
			c.BeginPath()
		case ClosePathCommand:
			c.ClosePath()
		case MoveToCommand:
			c.MoveTo(cmd.X, cmd.Y)
		case LineToCommand:
			c.LineTo(cmd.X, cmd.Y)
		case ArcCommand:
			c.Arc(cmd.X, cmd.Y, cmd.R, cmd.StartAngle, cmd.EndAngle)
		case RectCommand:
			c.Rect(cmd.X, cmd.Y, cmd.W, cmd.H)
		case ClearRectCommand:
			c.ClearRect(cmd.X, cmd.Y, cmd.W, cmd.H)
		case FillCommand:
			c.Fill()
		case StrokeCommand:
			c.Stroke()
		case FillTextCommand:
			c.FillText(cmd.Text, cmd.X, cmd.Y)
		case SetLineWidthCommand:
			c.SetLineWidth(cmd.Width)
		case SetStrokeStyleCommand:
			c.SetStrokeStyle(cmd.Color)
		case SetFillStyleCommand:
			c.SetFillStyle(cmd.Color)
		case SetFontCommand:
			c.SetFont(cmd.Font)
		case SetTextAlignCommand:
			c.SetTextAlign(cmd.Align)
		case SetTextBaselineCommand:
			c.SetTextBaseline(cmd.Baseline)
		}
	}
}
