package chartviz

import (
	"sort"
)

// pieStart puts the first slice boundary at 12 o'clock; slices run clockwise
// in input order.
const pieStart = -90.0

// FullCircle is the sweep threshold above which a slice is drawn as a plain
// circle: most path based renderers can not express a 360 degree arc.
const FullCircle = 359.9

// Slice is one pie slice, angles in degrees.
type Slice struct {
	Start float64
	Sweep float64
}

// Full reports whether the slice covers the whole pie.
func (s Slice) Full() bool {
	return s.Sweep >= FullCircle
}

// LayoutSlices converts values into proportional sweep angles. Values
// contribute by absolute magnitude; a zero total yields no slices and the
// caller falls back to the no data placeholder.
func LayoutSlices(values []float64) []Slice {
	var total float64
	for _, v := range values {
		if v < 0 {
			v = -v
		}
		total += v
	}
	if total == 0 {
		return nil
	}
	var (
		all   = make([]Slice, 0, len(values))
		angle = pieStart
	)
	for _, v := range values {
		if v < 0 {
			v = -v
		}
		sweep := fullcircle * v / total
		all = append(all, Slice{Start: angle, Sweep: sweep})
		angle += sweep
	}
	return all
}

// RankedBar is one entry of the horizontal top-N fallback used for
// geographic style categorical data.
type RankedBar struct {
	Label string
	Value float64
	// Frac is the bar length relative to the largest value.
	Frac float64
	// Color is interpolated between the two endpoint colors by rank.
	Color string
}

// maxRankedBars caps the geo fallback; everything past it collapses into the
// "+N more" note.
const maxRankedBars = 10

// RankBars sorts points descending by value and keeps the top ten, each with
// its relative length and rank interpolated color. Values below zero keep
// their row but get a zero length bar. The second return is the number of
// entries dropped.
func RankBars(points []DataPoint, from, to string) ([]RankedBar, int) {
	if len(points) == 0 {
		return nil, 0
	}
	sorted := make([]DataPoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value > sorted[j].Value
	})

	more := 0
	if len(sorted) > maxRankedBars {
		more = len(sorted) - maxRankedBars
		sorted = sorted[:maxRankedBars]
	}
	var (
		top = sorted[0].Value
		all = make([]RankedBar, len(sorted))
	)
	for i, pt := range sorted {
		var frac float64
		if top > 0 {
			frac = pt.Value / top
		}
		if frac < 0 {
			frac = 0
		}
		var t float64
		if len(sorted) > 1 {
			t = float64(i) / float64(len(sorted)-1)
		}
		all[i] = RankedBar{
			Label: pt.Label,
			Value: pt.Value,
			Frac:  frac,
			Color: LerpColor(from, to, t),
		}
	}
	return all, more
}
