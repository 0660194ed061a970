package chartviz

// gridCount is the fixed number of grid intervals on the value axis. Grid
// density stays constant whatever the value magnitude.
const gridCount = 5

// ValueRange is the padded value domain of one chart render. It is computed
// once per call and never persisted.
type ValueRange struct {
	RawMin       float64
	RawMax       float64
	PaddedMin    float64
	PaddedMax    float64
	Total        float64
	HasNegatives bool
}

// ComputeRange derives the drawable value range from a set of values. Peaks
// get 20% headroom so they never touch the chart border; charts without
// negative values always baseline at zero. Empty or all zero input yields a
// usable non degenerate range.
func ComputeRange(values []float64) ValueRange {
	var rg ValueRange
	for i, v := range values {
		if i == 0 || v < rg.RawMin {
			rg.RawMin = v
		}
		if i == 0 || v > rg.RawMax {
			rg.RawMax = v
		}
	}
	if rg.RawMin == 0 && rg.RawMax == 0 {
		rg.RawMax = 1
	}
	rg.HasNegatives = rg.RawMin < 0

	rg.PaddedMax = rg.RawMax
	if rg.RawMax > 0 {
		rg.PaddedMax = rg.RawMax * 1.2
	}
	if rg.HasNegatives {
		rg.PaddedMin = rg.RawMin * 1.2
	}
	rg.Total = rg.PaddedMax - rg.PaddedMin
	if rg.Total == 0 {
		rg.Total = 1
	}
	return rg
}

// Baseline is the pixel y of value zero within area.
func (r ValueRange) Baseline(area Rect) float64 {
	if r.HasNegatives {
		return area.Y + area.H*(r.PaddedMax/r.Total)
	}
	return area.Bottom()
}

// Y maps a value to its pixel y within area.
func (r ValueRange) Y(area Rect, v float64) float64 {
	return area.Y + area.H*(r.PaddedMax-v)/r.Total
}

// Height is the pixel extent of a value measured from the baseline.
func (r ValueRange) Height(area Rect, v float64) float64 {
	if v < 0 {
		v = -v
	}
	return area.H * v / r.Total
}

// GridLine is one horizontal grid line with the value labelled next to it.
type GridLine struct {
	Y     float64
	Value float64
}

// GridLines returns the six evenly spaced grid lines spanning area, top edge
// first.
func (r ValueRange) GridLines(area Rect) []GridLine {
	all := make([]GridLine, 0, gridCount+1)
	for i := 0; i <= gridCount; i++ {
		f := float64(i) / gridCount
		all = append(all, GridLine{
			Y:     area.Y + area.H*f,
			Value: r.PaddedMax - r.Total*f,
		})
	}
	return all
}
