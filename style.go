package chartviz

// ChartKind is the semantic classification of a chart, decided by the report
// layer: trends run over a category axis, distributions show shares of a
// whole, geo charts rank categorical entries.
type ChartKind int

const (
	KindTrend ChartKind = iota
	KindDistribution
	KindGeo
)

// ChartStyle is the declared visual style for trend charts.
type ChartStyle int

const (
	StyleBar ChartStyle = iota
	StyleLine
	StyleStepLine
	StyleArea
	StyleScatter
)

const FontSize = 12.0

// ChartSpec describes one chart to render. It is owned by the caller and only
// read by the engine.
type ChartSpec struct {
	Kind  ChartKind
	Style ChartStyle

	Title      string
	ShowLegend bool

	FontSize   float64
	FontFamily string
	Background string
	Border     string
	Palette    Palette

	// Scale multiplies every geometric constant, for DPI or export
	// resolution independence. Zero means 1.
	Scale float64
}

func (s ChartSpec) scale() float64 {
	if s.Scale <= 0 {
		return 1
	}
	return s.Scale
}

func (s ChartSpec) fontSize() float64 {
	if s.FontSize <= 0 {
		return FontSize
	}
	return s.FontSize
}

func (s ChartSpec) palette() Palette {
	if len(s.Palette) == 0 {
		return Category10
	}
	return s.Palette
}
