// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gauge

// TextAlign is the horizontal anchor used by Canvas.FillText.
// The zero value centers text on x.
type TextAlign uint8

const (
	AlignCenter TextAlign = iota
	AlignLeft
	AlignRight
)

var textAlignNames = [...]string{
	AlignCenter: "center",
	AlignLeft:   "left",
	AlignRight:  "right",
}

// String returns the CSS keyword for the alignment.
func (a TextAlign) String() string {
	if int(a) < len(textAlignNames) {
		return textAlignNames[a]
	}
	return "unknown"
}

// MarshalText encodes the alignment as its CSS keyword.
func (a TextAlign) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// TextBaseline is the vertical anchor used by Canvas.FillText.
type TextBaseline uint8

const (
	BaselineAlphabetic TextBaseline = iota
	BaselineTop
	BaselineMiddle
	BaselineBottom
)

var textBaselineNames = [...]string{
	BaselineAlphabetic: "alphabetic",
	BaselineTop:        "top",
	BaselineMiddle:     "middle",
	BaselineBottom:     "bottom",
}

// String returns the CSS keyword for the baseline.
func (b TextBaseline) String() string {
	if int(b) < len(textBaselineNames) {
		return textBaselineNames[b]
	}
	return "unknown"
}

// MarshalText encodes the baseline as its CSS keyword.
func (b TextBaseline) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// Font describes the face used by Canvas.FillText.
type Font struct {
	Size   float64 // pixels
	Family string
}

// Canvas is an immediate-mode 2D drawing surface modelled after the HTML
// canvas 2D context.
//
// The current path is not part of the saved state: Save and Restore only
// cover styles (line width, stroke and fill style, font, text alignment).
// Fill and Stroke do not consume the path; BeginPath discards it.
//
// Angles passed to Arc are in radians, measured clockwise from the positive
// x-axis on a y-down surface. Arc adds a straight segment from the current
// point to the start of the arc when a current point exists.
//
// Colors are CSS hex strings ("#rgb" or "#rrggbb").
type Canvas interface {
	// Width returns the surface width in pixels.
	Width() float64

	Save()
	Restore()

	BeginPath()
	ClosePath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, r, startAngle, endAngle float64)
	Rect(x, y, w, h float64)

	// ClearRect resets every pixel of the rectangle to transparent.
	ClearRect(x, y, w, h float64)
	Fill()
	Stroke()

	SetLineWidth(w float64)
	SetStrokeStyle(color string)
	SetFillStyle(color string)
	SetFont(f Font)
	SetTextAlign(a TextAlign)
	SetTextBaseline(b TextBaseline)
	FillText(text string, x, y float64)
}
