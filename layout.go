// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gauge

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Template dimensions and palette. Draw always paints this exact layout.
const (
	BackgroundSize  = 400.0
	BackgroundColor = "#1b222d"
	LabelColor      = "#FFFFFF"
	PivotColor      = "#484e57"

	scaleRadius = 80.0
	scaleWidth  = 12.0

	indicatorWidth = 12.0
	pivotX         = 200.0
	pivotY         = 150.0
	pivotRadius    = 10.0
	needlePivot    = 6.0
)

// gradientStop is one quadrant of the colored scale.
type gradientStop struct {
	from, to   string
	begin, end int
}

var scaleGradient = [...]gradientStop{
	{"#e64440", "#e0762c", 180, 225},
	{"#e0762c", "#eeb219", 225, 270},
	{"#eeb219", "#85b64a", 270, 315},
	{"#85b64a", "#2dc97e", 315, 360},
}

type scaleLabel struct {
	text string
	x, y float64
}

var scaleLabels = [...]scaleLabel{
	{"0%", 100, 150},
	{"10.0%", 120, 80},
	{"20.0%", 200, 55},
	{"30.0%", 280, 80},
	{"40.0%", 310, 150},
}

// indicator describes one needle: its trailing arc, the needle and the pivot.
type indicator struct {
	arcColor     string
	arcRadius    float64
	needleColor  string
	needleLength float64
}

var (
	industryIndicator = indicator{"#23363e", 40, "#2394df", 45}
	companyIndicator  = indicator{"#1b2d3f", 60, "#71e7d6", 65}
)

// Labels is the legend text printed under the dial.
type Labels struct {
	Title         string
	Company       string
	CompanyValue  float64
	Industry      string
	IndustryValue float64

	// Language selects number formatting for the values.
	Language language.Tag
}

// DefaultLabels returns the stock legend.
func DefaultLabels() Labels {
	return Labels{
		Title:         "Future ROE(3yrs)",
		Company:       "Company",
		CompanyValue:  132.1,
		Industry:      "Industry",
		IndustryValue: 11.2,
		Language:      language.English,
	}
}

// FormatPercent renders v with one decimal and a percent sign using the
// number conventions of the label language.
func (l Labels) FormatPercent(v float64) string {
	return message.NewPrinter(l.Language).Sprintf("%.1f%%", v)
}

// Draw clears the canvas and paints a complete frame with the company and
// industry needles at the given angles (degrees, 0 = left, 180 = right).
// The industry needle is drawn first so the company needle overlaps it.
func (r *Renderer) Draw(companyAngle, industryAngle float64) error {
	c := r.canvas
	c.ClearRect(0, 0, r.centerX*2, r.centerY*2)

	c.Save()
	c.BeginPath()
	c.Rect(0, 0, BackgroundSize, BackgroundSize)
	c.SetFillStyle(BackgroundColor)
	c.Fill()
	c.Stroke()
	c.Restore()

	for _, g := range scaleGradient {
		if err := r.GradientArc(scaleRadius, scaleWidth, g.from, g.to, g.begin, g.end); err != nil {
			return err
		}
	}
	r.MonochromeArc(scaleRadius, scaleWidth, "#803136", -45, 0)
	r.MonochromeArc(scaleRadius, scaleWidth, "#237655", 180, 225)
	r.Scale(0, 5, 74, 86, "#000000")

	small := TextStyle{Color: LabelColor, Size: 12}
	for _, l := range scaleLabels {
		r.FillText(l.text, l.x, l.y, small)
	}

	lb := r.opts.labels
	r.FillText(lb.Title, 200, 210, small)
	company := TextStyle{Color: "#2189ce", Size: 12}
	r.FillText(lb.Company, 177, 225, company)
	company.Align = AlignRight
	r.FillText(lb.FormatPercent(lb.CompanyValue), 252, 225, company)
	industry := TextStyle{Color: "#6fe3d2", Size: 11}
	r.FillText(lb.Industry, 172, 240, industry)
	industry.Align = AlignRight
	r.FillText(lb.FormatPercent(lb.IndustryValue), 250, 240, industry)

	r.Round(pivotX, pivotY, pivotRadius, PivotColor, 0)

	r.drawIndicator(industryIndicator, industryAngle)
	r.drawIndicator(companyIndicator, companyAngle)
	return nil
}

func (r *Renderer) drawIndicator(ind indicator, angle float64) {
	r.MonochromeArc(ind.arcRadius, indicatorWidth, ind.arcColor, 0, angle)
	r.Triangle(angle, ind.needleLength, ind.needleColor)
	r.Round(pivotX, pivotY, needlePivot, ind.needleColor, 0)
}
