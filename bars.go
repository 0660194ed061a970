package chartviz

// BarOptions are the geometric knobs of bar layout, in logical pixels.
type BarOptions struct {
	MaxWidth float64
	Spacing  float64
}

func DefaultBarOptions() BarOptions {
	return BarOptions{
		MaxWidth: 48,
		Spacing:  4,
	}
}

// groupFraction is the share of a category slot occupied by a multi series
// bar group; the rest separates neighboring categories.
const groupFraction = 0.8

// LayoutBars computes one rectangle per value for a single series bar chart.
// Bars are centered in the area; values extend up or down from the baseline
// depending on their sign. Zero values produce zero height rectangles. The
// layout is color agnostic.
func LayoutBars(values []float64, area Rect, rng ValueRange, opt BarOptions) []Rect {
	n := len(values)
	if n == 0 {
		return nil
	}
	var (
		width = barWidth(area.W, n, opt)
		total = width*float64(n) + opt.Spacing*float64(n-1)
		left  = area.X + (area.W-total)/2
	)
	all := make([]Rect, n)
	for i, v := range values {
		x := left + float64(i)*(width+opt.Spacing)
		all[i] = signedBar(x, width, v, area, rng)
	}
	return all
}

// LayoutGroupedBars computes rectangles for a multi series bar chart: one
// centered group of bars per category. The result is indexed [series][category]
// to match the input.
func LayoutGroupedBars(series [][]float64, area Rect, rng ValueRange, opt BarOptions) [][]Rect {
	count := len(series)
	if count == 0 {
		return nil
	}
	categories := len(series[0])
	for _, vs := range series {
		if len(vs) < categories {
			categories = len(vs)
		}
	}
	if categories == 0 {
		return make([][]Rect, count)
	}
	var (
		slot  = area.W / float64(categories)
		width = barWidth(slot*groupFraction, count, opt)
		total = width*float64(count) + opt.Spacing*float64(count-1)
	)
	all := make([][]Rect, count)
	for s := range all {
		all[s] = make([]Rect, categories)
		for c := 0; c < categories; c++ {
			x := area.X + float64(c)*slot + (slot-total)/2 + float64(s)*(width+opt.Spacing)
			all[s][c] = signedBar(x, width, series[s][c], area, rng)
		}
	}
	return all
}

func barWidth(avail float64, n int, opt BarOptions) float64 {
	w := (avail - opt.Spacing*float64(n-1)) / float64(n)
	if opt.MaxWidth > 0 && w > opt.MaxWidth {
		w = opt.MaxWidth
	}
	if w < 1 {
		w = 1
	}
	return w
}

func signedBar(x, width, value float64, area Rect, rng ValueRange) Rect {
	var (
		base   = rng.Baseline(area)
		height = rng.Height(area, value)
		y      = base - height
	)
	if value < 0 {
		y = base
	}
	return NewRect(x, y, width, height)
}
