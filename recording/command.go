// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package recording

import gauge "github.com/gogpu/gg-gauge"

// CommandType identifies the Canvas call a command was recorded from.
type CommandType uint8

const (
	// State commands
	CmdSave    CommandType = iota // Save current style state
	CmdRestore                    // Restore previous style state

	// Path commands
	CmdBeginPath // Discard the current path
	CmdClosePath // Close the current subpath
	CmdMoveTo    // Start a subpath
	CmdLineTo    // Straight segment
	CmdArc       // Circular arc
	CmdRect      // Closed rectangle subpath

	// Drawing commands
	CmdClearRect // Reset a rectangle to transparent
	CmdFill      // Fill the current path
	CmdStroke    // Stroke the current path
	CmdFillText  // Draw text

	// Style commands
	CmdSetLineWidth    // Set stroke width
	CmdSetStrokeStyle  // Set stroke color
	CmdSetFillStyle    // Set fill color
	CmdSetFont         // Set font
	CmdSetTextAlign    // Set horizontal text anchor
	CmdSetTextBaseline // Set vertical text anchor
)

var commandTypeNames = [...]string{
	CmdSave:            "Save",
	CmdRestore:         "Restore",
	CmdBeginPath:       "BeginPath",
	CmdClosePath:       "ClosePath",
	CmdMoveTo:          "MoveTo",
	CmdLineTo:          "LineTo",
	CmdArc:             "Arc",
	CmdRect:            "Rect",
	CmdClearRect:       "ClearRect",
	CmdFill:            "Fill",
	CmdStroke:          "Stroke",
	CmdFillText:        "FillText",
	CmdSetLineWidth:    "SetLineWidth",
	CmdSetStrokeStyle:  "SetStrokeStyle",
	CmdSetFillStyle:    "SetFillStyle",
	CmdSetFont:         "SetFont",
	CmdSetTextAlign:    "SetTextAlign",
	CmdSetTextBaseline: "SetTextBaseline",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is one recorded Canvas call.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// SaveCommand pushes the style state.
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

// RestoreCommand pops the style state.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

// --------------------------------------------------------------------------
// Path Commands
// --------------------------------------------------------------------------

// BeginPathCommand discards the current path.
type BeginPathCommand struct{}

// Type implements Command.
func (BeginPathCommand) Type() CommandType { return CmdBeginPath }

// ClosePathCommand closes the current subpath.
type ClosePathCommand struct{}

// Type implements Command.
func (ClosePathCommand) Type() CommandType { return CmdClosePath }

// MoveToCommand starts a new subpath at (X, Y).
type MoveToCommand struct {
	X, Y float64
}

// Type implements Command.
func (MoveToCommand) Type() CommandType { return CmdMoveTo }

// LineToCommand adds a straight segment to (X, Y).
type LineToCommand struct {
	X, Y float64
}

// Type implements Command.
func (LineToCommand) Type() CommandType { return CmdLineTo }

// ArcCommand adds a clockwise arc. Angles are radians.
type ArcCommand struct {
	X, Y, R    float64
	StartAngle float64
	EndAngle   float64
}

// Type implements Command.
func (ArcCommand) Type() CommandType { return CmdArc }

// RectCommand adds a closed rectangle subpath.
type RectCommand struct {
	X, Y, W, H float64
}

// Type implements Command.
func (RectCommand) Type() CommandType { return CmdRect }

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------

// ClearRectCommand resets a rectangle to transparent.
type ClearRectCommand struct {
	X, Y, W, H float64
}

// Type implements Command.
func (ClearRectCommand) Type() CommandType { return CmdClearRect }

// FillCommand fills the current path. Style and Path are the fill color and
// path in effect when the call was made; playback ignores them.
type FillCommand struct {
	Style string
	Path  []Command
}

// Type implements Command.
func (FillCommand) Type() CommandType { return CmdFill }

// StrokeCommand strokes the current path. Style, LineWidth and Path are the
// state in effect when the call was made; playback ignores them.
type StrokeCommand struct {
	Style     string
	LineWidth float64
	Path      []Command
}

// Type implements Command.
func (StrokeCommand) Type() CommandType { return CmdStroke }

// FillTextCommand draws Text at (X, Y). The style fields are resolved at
// record time for inspection; playback ignores them.
type FillTextCommand struct {
	Text     string
	X, Y     float64
	Style    string
	Font     gauge.Font
	Align    gauge.TextAlign
	Baseline gauge.TextBaseline
}

// Type implements Command.
func (FillTextCommand) Type() CommandType { return CmdFillText }

// --------------------------------------------------------------------------
// Style Commands
// --------------------------------------------------------------------------

// SetLineWidthCommand sets the stroke width.
type SetLineWidthCommand struct {
	Width float64
}

// Type implements Command.
func (SetLineWidthCommand) Type() CommandType { return CmdSetLineWidth }

// SetStrokeStyleCommand sets the stroke color.
type SetStrokeStyleCommand struct {
	Color string
}

// Type implements Command.
func (SetStrokeStyleCommand) Type() CommandType { return CmdSetStrokeStyle }

// SetFillStyleCommand sets the fill color.
type SetFillStyleCommand struct {
	Color string
}

// Type implements Command.
func (SetFillStyleCommand) Type() CommandType { return CmdSetFillStyle }

// SetFontCommand sets the text font.
type SetFontCommand struct {
	Font gauge.Font
}

// Type implements Command.
func (SetFontCommand) Type() CommandType { return CmdSetFont }

// SetTextAlignCommand sets the horizontal text anchor.
type SetTextAlignCommand struct {
	Align gauge.TextAlign
}

// Type implements Command.
func (SetTextAlignCommand) Type() CommandType { return CmdSetTextAlign }

// SetTextBaselineCommand sets the vertical text anchor.
type SetTextBaselineCommand struct {
	Baseline gauge.TextBaseline
}

// Type implements Command.
func (SetTextBaselineCommand) Type() CommandType { return CmdSetTextBaseline }
