package chartviz

import (
	"fmt"
	"strconv"

	"github.com/midbel/slices"
)

const fullcircle = 360.0

// Layout constants in logical pixels; everything gets multiplied by the
// chart's render scale.
const (
	markerRadius  = 3.0
	lineWidth     = 2.0
	gridWidth     = 1.0
	axisPad       = 6.0
	leftGutter    = 56.0
	bottomGutter  = 26.0
	topPad        = 8.0
	rightPad      = 12.0
	legendSwatch  = 10.0
	legendWidth   = 130.0
	rankLabelCol  = 110.0
	rankBarMax    = 24.0
	maxLabelRunes = 12
)

const (
	placeholderText  = "no data"
	placeholderColor = "gray"
	gridOpacity      = 0.15
	areaOpacity      = 80.0 / 255.0
)

// Strategy is the layout family a chart resolves to.
type Strategy int

const (
	StrategyPlaceholder Strategy = iota
	StrategyPie
	StrategyBars
	StrategyLines
	StrategyRanked
)

// Classify resolves the layout strategy from the chart classification, not
// the data values: only emptiness short circuits to the placeholder. Pie
// layout is reserved for distribution charts, geo charts rank their entries,
// and everything else splits into the bar or line family by declared style.
func Classify(spec ChartSpec, series []Series) Strategy {
	if alignedLength(series) == 0 {
		return StrategyPlaceholder
	}
	switch spec.Kind {
	case KindDistribution:
		return StrategyPie
	case KindGeo:
		return StrategyRanked
	}
	if spec.Style == StyleBar {
		return StrategyBars
	}
	return StrategyLines
}

// Renderer turns series data into draw calls on a Surface. It keeps no state
// between calls; rendering the same input twice issues identical geometry.
// One renderer must not be shared across goroutines while rendering.
type Renderer struct {
	Spec ChartSpec
	Bars BarOptions
	// LabelWidth is the estimated pixel width of one category label used for
	// decimation, before scaling.
	LabelWidth float64
	// RankLow and RankHigh are the endpoint colors of ranked geo bars.
	RankLow  string
	RankHigh string
}

func New(spec ChartSpec) *Renderer {
	return &Renderer{
		Spec:       spec,
		Bars:       DefaultBarOptions(),
		LabelWidth: DefaultLabelWidth,
		RankLow:    "#1f77b4",
		RankHigh:   "#c6dbef",
	}
}

// Render draws one chart into area. Degenerate data renders the placeholder;
// the call never fails.
func (r *Renderer) Render(s Surface, area Rect, series ...Series) {
	k := r.Spec.scale()
	r.drawFrame(s, area, k)
	if r.Spec.Title != "" {
		band := r.fontSize(k) * 2
		r.drawTitle(s, area, k)
		area = area.Inset(band, 0, 0, 0)
	}
	switch Classify(r.Spec, series) {
	case StrategyPlaceholder:
		r.drawPlaceholder(s, area, k)
	case StrategyPie:
		r.renderPie(s, area, slices.Fst(series), k)
	case StrategyRanked:
		r.renderRanked(s, area, slices.Fst(series), k)
	case StrategyBars:
		r.renderBars(s, area, series, k)
	case StrategyLines:
		r.renderLines(s, area, series, k)
	}
}

func (r *Renderer) fontSize(k float64) float64 {
	return r.Spec.fontSize() * k
}

func (r *Renderer) textStyle(size float64, color string, anchor Anchor, align VerticalAlign) TextStyle {
	return TextStyle{
		Size:   size,
		Family: r.Spec.FontFamily,
		Color:  color,
		Anchor: anchor,
		Align:  align,
	}
}

func (r *Renderer) drawFrame(s Surface, area Rect, k float64) {
	var (
		fill   Fill
		stroke Stroke
	)
	if r.Spec.Background != "" {
		fill = NewFill(SafeColor(r.Spec.Background))
	}
	if r.Spec.Border != "" {
		stroke = NewStroke(SafeColor(r.Spec.Border), gridWidth*k)
	}
	if fill.Color == "" && stroke.Width == 0 {
		return
	}
	s.Rect(area, fill, stroke)
}

func (r *Renderer) drawTitle(s Surface, area Rect, k float64) {
	style := r.textStyle(r.fontSize(k)*1.3, DefaultColor, AnchorMiddle, AlignHanging)
	s.Text(r.Spec.Title, NewPoint(area.CenterX(), area.Y+topPad*k), style)
}

func (r *Renderer) drawPlaceholder(s Surface, area Rect, k float64) {
	style := r.textStyle(r.fontSize(k), placeholderColor, AnchorMiddle, AlignMiddle)
	s.Text(placeholderText, NewPoint(area.CenterX(), area.CenterY()), style)
}

// plotArea carves out the gutters holding value and category labels.
func (r *Renderer) plotArea(area Rect, k float64) Rect {
	return area.Inset(topPad*k, rightPad*k, bottomGutter*k, leftGutter*k)
}

func (r *Renderer) scaledBars(k float64) BarOptions {
	opt := r.Bars
	opt.MaxWidth *= k
	opt.Spacing *= k
	return opt
}

func (r *Renderer) drawGrid(s Surface, plot Rect, rng ValueRange, k float64) {
	var (
		stroke = NewStroke(DefaultColor, gridWidth*k)
		style  = r.textStyle(r.fontSize(k)*0.9, DefaultColor, AnchorEnd, AlignMiddle)
	)
	stroke.Opacity = gridOpacity
	for _, gl := range rng.GridLines(plot) {
		s.Line(NewPoint(plot.X, gl.Y), NewPoint(plot.Right(), gl.Y), stroke)
		s.Text(formatValue(gl.Value, rng.Total), NewPoint(plot.X-axisPad*k, gl.Y), style)
	}
	if rng.HasNegatives {
		base := rng.Baseline(plot)
		s.Line(NewPoint(plot.X, base), NewPoint(plot.Right(), base), NewStroke(DefaultColor, gridWidth*k))
	}
}

func (r *Renderer) drawCategoryLabels(s Surface, plot Rect, labels []string, k float64) {
	var (
		sel  = SelectLabelIndices(len(labels), plot.W, r.LabelWidth*k)
		slot = plot.W / float64(len(labels))
		y    = plot.Bottom() + axisPad*k
	)
	for pos, ix := range sel {
		style := r.textStyle(r.fontSize(k)*0.9, DefaultColor, LabelAnchor(pos, len(sel)), AlignHanging)
		x := plot.X + (float64(ix)+0.5)*slot
		s.Text(labels[ix], NewPoint(x, y), style)
	}
}

func (r *Renderer) renderBars(s Surface, area Rect, series []Series, k float64) {
	if r.Spec.ShowLegend && len(series) > 1 {
		r.drawLegend(s, area, series, k)
	}
	var (
		n    = alignedLength(series)
		plot = r.plotArea(area, k)
		rng  = ComputeRange(allValues(series, n))
	)
	r.drawGrid(s, plot, rng, k)
	r.drawCategoryLabels(s, plot, slices.Fst(series).Labels()[:n], k)

	if len(series) == 1 {
		ser := slices.Fst(series)
		for i, bar := range LayoutBars(ser.Values(), plot, rng, r.scaledBars(k)) {
			s.Rect(bar, NewFill(r.pointColor(ser, i)), Stroke{})
		}
		return
	}
	values := make([][]float64, len(series))
	for i, ser := range series {
		values[i] = ser.Values()[:n]
	}
	for si, bars := range LayoutGroupedBars(values, plot, rng, r.scaledBars(k)) {
		fill := NewFill(r.seriesColor(series[si], si))
		for _, bar := range bars {
			s.Rect(bar, fill, Stroke{})
		}
	}
}

func (r *Renderer) renderLines(s Surface, area Rect, series []Series, k float64) {
	if r.Spec.ShowLegend && len(series) > 1 {
		r.drawLegend(s, area, series, k)
	}
	var (
		n    = alignedLength(series)
		plot = r.plotArea(area, k)
		rng  = ComputeRange(allValues(series, n))
		slot = plot.W / float64(n)
	)
	r.drawGrid(s, plot, rng, k)
	r.drawCategoryLabels(s, plot, slices.Fst(series).Labels()[:n], k)

	for si, ser := range series {
		var (
			color  = r.seriesColor(ser, si)
			points = make([]Point, n)
		)
		for i := 0; i < n; i++ {
			points[i] = NewPoint(plot.X+(float64(i)+0.5)*slot, rng.Y(plot, ser.Points[i].Value))
		}
		r.drawSeriesPath(s, plot, rng, points, color, k)
		for _, pt := range points {
			s.Circle(pt, markerRadius*k, NewFill(color))
		}
	}
}

// drawSeriesPath emits the path for one line family series. Scatter draws no
// path, a single point series draws only its marker.
func (r *Renderer) drawSeriesPath(s Surface, plot Rect, rng ValueRange, points []Point, color string, k float64) {
	if r.Spec.Style == StyleScatter || len(points) < 2 {
		return
	}
	stroke := NewStroke(color, lineWidth*k)
	switch r.Spec.Style {
	case StyleStepLine:
		s.Path(StepPath(points), Fill{}, stroke)
	case StyleArea:
		fill := NewFill(color)
		fill.Opacity = areaOpacity
		s.Path(AreaPath(points, rng.Baseline(plot)), fill, Stroke{})
		s.Path(SmoothPath(points), Fill{}, stroke)
	default:
		s.Path(SmoothPath(points), Fill{}, stroke)
	}
}

func (r *Renderer) renderPie(s Surface, area Rect, ser Series, k float64) {
	parts := LayoutSlices(ser.Values())
	if len(parts) == 0 {
		r.drawPlaceholder(s, area, k)
		return
	}
	pie := area
	withLegend := r.Spec.ShowLegend && area.W-area.H >= legendWidth*k
	if withLegend {
		pie.W = area.W - legendWidth*k
	}
	var (
		radius = pie.W / 2
		center = NewPoint(pie.CenterX(), pie.CenterY())
	)
	if pie.H < pie.W {
		radius = pie.H / 2
	}
	radius -= topPad * k
	if radius <= 0 {
		r.drawPlaceholder(s, area, k)
		return
	}
	for i, sl := range parts {
		fill := NewFill(r.sliceColor(ser, i))
		if sl.Full() {
			s.Circle(center, radius, fill)
		} else {
			s.Sector(center, radius, sl.Start, sl.Sweep, fill)
		}
	}
	if withLegend {
		r.drawPieLegend(s, area, ser, k)
	}
}

func (r *Renderer) drawPieLegend(s Surface, area Rect, ser Series, k float64) {
	var total float64
	for _, pt := range ser.Points {
		if pt.Value < 0 {
			total -= pt.Value
		} else {
			total += pt.Value
		}
	}
	if total == 0 {
		return
	}
	var (
		size   = r.fontSize(k) * 0.9
		step   = size * 1.6
		left   = area.Right() - legendWidth*k
		top    = area.Y + (area.H-float64(len(ser.Points))*step)/2
		sw     = legendSwatch * k
		toText = sw + axisPad*k
	)
	if top < area.Y {
		top = area.Y
	}
	for i, pt := range ser.Points {
		y := top + float64(i)*step
		if y+step > area.Bottom() {
			break
		}
		s.Rect(NewRect(left, y, sw, sw), NewFill(r.sliceColor(ser, i)), Stroke{})
		var (
			v     = pt.Value
			style = r.textStyle(size, DefaultColor, AnchorStart, AlignMiddle)
		)
		if v < 0 {
			v = -v
		}
		pct := int(v/total*100 + 0.5)
		str := fmt.Sprintf("%s %d%%", truncateLabel(pt.Label), pct)
		s.Text(str, NewPoint(left+toText, y+sw/2), style)
	}
}

func (r *Renderer) renderRanked(s Surface, area Rect, ser Series, k float64) {
	bars, more := RankBars(ser.Points, r.RankLow, r.RankHigh)
	if len(bars) == 0 {
		r.drawPlaceholder(s, area, k)
		return
	}
	var (
		rows = len(bars)
		size = r.fontSize(k) * 0.9
	)
	if more > 0 {
		rows++
	}
	var (
		plot  = area.Inset(topPad*k, rightPad*k, topPad*k, rankLabelCol*k)
		rowH  = plot.H / float64(rows)
		barH  = rowH * 0.6
		style = r.textStyle(size, DefaultColor, AnchorEnd, AlignMiddle)
	)
	if barH > rankBarMax*k {
		barH = rankBarMax * k
	}
	for i, bar := range bars {
		var (
			y  = plot.Y + float64(i)*rowH
			cy = y + rowH/2
		)
		s.Text(truncateLabel(bar.Label), NewPoint(plot.X-axisPad*k, cy), style)
		s.Rect(NewRect(plot.X, cy-barH/2, plot.W*bar.Frac, barH), NewFill(bar.Color), Stroke{})
	}
	if more > 0 {
		note := r.textStyle(size, placeholderColor, AnchorStart, AlignMiddle)
		y := plot.Y + float64(rows-1)*rowH + rowH/2
		s.Text(fmt.Sprintf("+%d more", more), NewPoint(plot.X, y), note)
	}
}

func (r *Renderer) drawLegend(s Surface, area Rect, series []Series, k float64) {
	var (
		size  = r.fontSize(k) * 0.9
		sw    = legendSwatch * k
		gap   = axisPad * k
		width float64
	)
	for _, ser := range series {
		width += sw + gap + float64(len(ser.Name))*size*0.6 + gap*2
	}
	var (
		x     = area.Right() - rightPad*k - width
		y     = area.Y
		style = r.textStyle(size, DefaultColor, AnchorStart, AlignMiddle)
	)
	if x < area.X {
		x = area.X
	}
	for i, ser := range series {
		s.Rect(NewRect(x, y, sw, sw), NewFill(r.seriesColor(ser, i)), Stroke{})
		s.Text(ser.Name, NewPoint(x+sw+gap, y+sw/2), style)
		x += sw + gap + float64(len(ser.Name))*size*0.6 + gap*2
	}
}

// sliceColor ignores the series color: neighboring pie slices must differ.
func (r *Renderer) sliceColor(ser Series, i int) string {
	if i >= 0 && i < len(ser.Points) && ser.Points[i].Color != "" {
		return SafeColor(ser.Points[i].Color)
	}
	return r.Spec.palette().At(i)
}

func (r *Renderer) pointColor(ser Series, i int) string {
	if i >= 0 && i < len(ser.Points) && ser.Points[i].Color != "" {
		return SafeColor(ser.Points[i].Color)
	}
	if ser.Color != "" {
		return SafeColor(ser.Color)
	}
	return r.Spec.palette().At(i)
}

func (r *Renderer) seriesColor(ser Series, i int) string {
	if ser.Color != "" {
		return SafeColor(ser.Color)
	}
	return r.Spec.palette().At(i)
}

func formatValue(v, total float64) string {
	prec := 0
	if total < 10 {
		prec = 1
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}

func truncateLabel(str string) string {
	runes := []rune(str)
	if len(runes) <= maxLabelRunes {
		return str
	}
	return string(runes[:maxLabelRunes]) + "…"
}
