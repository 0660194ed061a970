package chartviz

import (
	"math"
)

// DefaultLabelWidth is the estimated pixel width of one axis label. The
// surface contract has no text metrics, so callers that know better pass
// their own estimate.
const DefaultLabelWidth = 85.0

// SelectLabelIndices picks an evenly distributed subset of the category
// indices 0..count-1 that fits in avail pixels without overlap. The result is
// ascending and duplicate free; the first and last index are always included
// once count >= 2.
func SelectLabelIndices(count int, avail, labelWidth float64) []int {
	switch {
	case count <= 0:
		return nil
	case count == 1:
		return []int{0}
	case count == 2:
		return []int{0, 1}
	}
	if labelWidth <= 0 {
		labelWidth = DefaultLabelWidth
	}
	max := int(avail / labelWidth)
	if max < 2 {
		max = 2
	}
	if max >= count {
		all := make([]int, count)
		for i := range all {
			all[i] = i
		}
		return all
	}
	var (
		step = float64(count-1) / float64(max-1)
		sel  = make([]int, 0, max)
	)
	for i := 0; i < max; i++ {
		ix := int(math.Round(float64(i) * step))
		if n := len(sel); n > 0 && sel[n-1] == ix {
			continue
		}
		sel = append(sel, ix)
	}
	return sel
}

// LabelAnchor is the alignment convention for decimated axis labels: the
// first is left aligned, the last right aligned, the rest centered, so labels
// never clip at the chart edges.
func LabelAnchor(pos, count int) Anchor {
	switch {
	case count > 1 && pos == 0:
		return AnchorStart
	case count > 1 && pos == count-1:
		return AnchorEnd
	default:
		return AnchorMiddle
	}
}
