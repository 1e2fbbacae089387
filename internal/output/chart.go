package output

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// PieSlice is one wedge of an SVG pie chart centered on (0,0).
type PieSlice struct {
	Label   string
	Value   decimal.Decimal
	Percent float64 // 0-100 of the drawn total
	Color   string
	Path    string // SVG path data
}

// chartPalette cycles through slice colors.
var chartPalette = []string{"#D14D41", "#DA702C", "#3AA99F", "#4385BE", "#8B7EC8", "#879A39", "#D0A215"}

// PieSlices lays out values as consecutive wedges of a circle of the given radius,
// starting at twelve o'clock. Zero and negative values cannot be drawn and are skipped.
func PieSlices(labels []string, values []decimal.Decimal, colors []string, radius float64) []PieSlice {
	total := decimal.Zero
	for _, v := range values {
		if v.IsPositive() {
			total = total.Add(v)
		}
	}
	if total.IsZero() {
		return nil
	}

	var slices []PieSlice
	angle := -math.Pi / 2
	for i, v := range values {
		if !v.IsPositive() {
			continue
		}
		share := v.Div(total).InexactFloat64()
		sweep := share * 2 * math.Pi
		color := chartPalette[i%len(chartPalette)]
		if i < len(colors) && colors[i] != "" {
			color = colors[i]
		}
		slices = append(slices, PieSlice{
			Label:   labels[i],
			Value:   v,
			Percent: share * 100,
			Color:   color,
			Path:    wedgePath(angle, sweep, radius),
		})
		angle += sweep
	}
	return slices
}

// wedgePath returns the path of a wedge from start sweeping clockwise. A full circle is
// drawn as two half arcs because a single arc with equal end points renders nothing.
func wedgePath(start, sweep, r float64) string {
	if sweep >= 2*math.Pi-1e-9 {
		return fmt.Sprintf("M 0 %.3f A %.3f %.3f 0 1 1 0 %.3f A %.3f %.3f 0 1 1 0 %.3f Z", -r, r, r, r, r, r, -r)
	}
	x1, y1 := r*math.Cos(start), r*math.Sin(start)
	x2, y2 := r*math.Cos(start+sweep), r*math.Sin(start+sweep)
	large := 0
	if sweep > math.Pi {
		large = 1
	}
	return fmt.Sprintf("M 0 0 L %.3f %.3f A %.3f %.3f 0 %d 1 %.3f %.3f Z", x1, y1, r, r, large, x2, y2)
}
