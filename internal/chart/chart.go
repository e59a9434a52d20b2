// Package chart lays out category summaries as pie slices and renders them
// as SVG for the browser or as proportional bars for the terminal.
package chart

import (
	"math"
	"strconv"

	"github.com/xolan/timesplit/internal/stats"
)

// Palette is cycled by slice index
var Palette = []string{"#0088FE", "#00C49F", "#FFBB28", "#FF8042", "#8884d8", "#82ca9d", "#a4de6c"}

// Slice is one wedge of the pie. Angles are in degrees, counter-clockwise
// from the 3 o'clock position.
type Slice struct {
	Summary    stats.CategorySummary
	Color      string
	StartAngle float64
	EndAngle   float64
	// Fraction is this slice's share of the drawn pie, 0..1
	Fraction float64
}

// MidAngle is the angle halfway through the slice.
func (s Slice) MidAngle() float64 {
	return (s.StartAngle + s.EndAngle) / 2
}

// Layout assigns each summary a wedge proportional to its Percent, in input order.
// When every percent is zero the slices are returned with zero-width wedges.
func Layout(summaries []stats.CategorySummary) []Slice {
	total := 0.0
	for _, s := range summaries {
		total += s.Percent
	}

	slices := make([]Slice, 0, len(summaries))
	angle := 0.0
	for i, s := range summaries {
		fraction := 0.0
		if total > 0 {
			fraction = s.Percent / total
		}
		end := angle + fraction*360
		slices = append(slices, Slice{
			Summary:    s,
			Color:      Palette[i%len(Palette)],
			StartAngle: angle,
			EndAngle:   end,
			Fraction:   fraction,
		})
		angle = end
	}
	return slices
}

// Point is a position in SVG user space (y grows downward)
type Point struct {
	X, Y float64
}

// PolarToPoint converts an angle in degrees and a radius around (cx, cy).
func PolarToPoint(cx, cy, radius, angle float64) Point {
	rad := -angle * math.Pi / 180
	return Point{
		X: cx + radius*math.Cos(rad),
		Y: cy + radius*math.Sin(rad),
	}
}

// LabelPosition places a slice label 70% of the way from the inner to the outer radius.
func LabelPosition(cx, cy, innerRadius, outerRadius, midAngle float64) Point {
	radius := innerRadius + (outerRadius-innerRadius)*0.7
	return PolarToPoint(cx, cy, radius, midAngle)
}

// LabelText is the percentage drawn on a slice, e.g. "40.0%".
func LabelText(s Slice) string {
	return strconv.FormatFloat(s.Fraction*100, 'f', 1, 64) + "%"
}

// Tooltip is the hover text for a slice, e.g. "Meetings & Calls: 40% (0.5 hours)".
func Tooltip(s stats.CategorySummary) string {
	return s.Category.String() + ": " + FormatNumber(s.Percent) + "% (" + FormatNumber(s.Hours) + " hours)"
}

// SummaryText is the card text for a category, e.g. "0.5 hours (40%)".
func SummaryText(s stats.CategorySummary) string {
	return FormatNumber(s.Hours) + " hours (" + FormatNumber(s.Percent) + "%)"
}

// FormatNumber prints a rounded value without trailing zeros: 40 -> "40", 0.5 -> "0.5".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
