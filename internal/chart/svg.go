package chart

import (
	"fmt"
	"html"
	"strings"
)

// SVGOptions controls the size of the rendered pie
type SVGOptions struct {
	Size        int
	OuterRadius float64
	InnerRadius float64
}

// DefaultSVGOptions matches a 120px outer radius in a square canvas.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Size:        320,
		OuterRadius: 120,
		InnerRadius: 0,
	}
}

// SVG renders the slices as a standalone <svg> element with a <title> tooltip
// and a percentage label on each wedge. Zero-width slices are skipped.
func SVG(slices []Slice, opts SVGOptions) string {
	cx := float64(opts.Size) / 2
	cy := cx

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" class="pie" width="%d" height="%d" viewBox="0 0 %d %d" role="img">`,
		opts.Size, opts.Size, opts.Size, opts.Size)

	for _, s := range slices {
		if s.Fraction <= 0 {
			continue
		}

		b.WriteString(`<g class="slice">`)
		fmt.Fprintf(&b, `<title>%s</title>`, html.EscapeString(Tooltip(s.Summary)))

		if s.Fraction >= 1 {
			fmt.Fprintf(&b, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`, cx, cy, opts.OuterRadius, s.Color)
		} else {
			fmt.Fprintf(&b, `<path d="%s" fill="%s"/>`, wedgePath(cx, cy, opts.OuterRadius, s.StartAngle, s.EndAngle), s.Color)
		}

		label := LabelPosition(cx, cy, opts.InnerRadius, opts.OuterRadius, s.MidAngle())
		fmt.Fprintf(&b, `<text x="%.2f" y="%.2f" fill="white" text-anchor="middle" dominant-baseline="central">%s</text>`,
			label.X, label.Y, LabelText(s))
		b.WriteString(`</g>`)
	}

	b.WriteString(`</svg>`)
	return b.String()
}

// wedgePath draws a pie wedge from start to end degrees, counter-clockwise on screen.
func wedgePath(cx, cy, r, start, end float64) string {
	from := PolarToPoint(cx, cy, r, start)
	to := PolarToPoint(cx, cy, r, end)

	largeArc := 0
	if end-start > 180 {
		largeArc = 1
	}

	return fmt.Sprintf("M %.2f %.2f L %.2f %.2f A %.2f %.2f 0 %d 0 %.2f %.2f Z",
		cx, cy, from.X, from.Y, r, r, largeArc, to.X, to.Y)
}
