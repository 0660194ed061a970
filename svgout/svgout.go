// Package svgout renders chartviz draw calls as SVG.
package svgout

import (
	"bufio"
	"io"
	"math"

	"github.com/midbel/chartviz"
	"github.com/midbel/svg"
)

const deg2rad = math.Pi / 180

// Canvas collects the draw calls of one chart into an SVG group. It
// implements chartviz.Surface and is not safe for concurrent use.
type Canvas struct {
	grp svg.Group
}

func New(class ...string) *Canvas {
	var g svg.Group
	g.Class = class
	return &Canvas{
		grp: g,
	}
}

// Element returns the accumulated group, ready to be appended to a document.
func (c *Canvas) Element() svg.Element {
	return c.grp.AsElement()
}

func (c *Canvas) Line(from, to chartviz.Point, stroke chartviz.Stroke) {
	li := svg.NewLine(pos(from), pos(to))
	li.Stroke = toStroke(stroke)
	c.grp.Append(li.AsElement())
}

func (c *Canvas) Rect(r chartviz.Rect, fill chartviz.Fill, stroke chartviz.Stroke) {
	var el svg.Rect
	el.Pos = svg.NewPos(r.X, r.Y)
	el.Dim = svg.NewDim(r.W, r.H)
	el.Fill = toFill(fill)
	if stroke.Width > 0 {
		el.Stroke = toStroke(stroke)
	}
	c.grp.Append(el.AsElement())
}

func (c *Canvas) Circle(center chartviz.Point, radius float64, fill chartviz.Fill) {
	var el svg.Circle
	el.Pos = pos(center)
	el.Radius = radius
	el.Fill = toFill(fill)
	c.grp.Append(el.AsElement())
}

func (c *Canvas) Sector(center chartviz.Point, radius, startDeg, sweepDeg float64, fill chartviz.Fill) {
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	pat.Fill = toFill(fill)

	var (
		fst = onCircle(center, radius, startDeg*deg2rad)
		lst = onCircle(center, radius, (startDeg+sweepDeg)*deg2rad)
	)
	pat.AbsMoveTo(fst)
	pat.AbsArcTo(lst, radius, radius, 0, sweepDeg > 180, true)
	pat.AbsLineTo(pos(center))
	pat.ClosePath()
	c.grp.Append(pat.AsElement())
}

func (c *Canvas) Path(path chartviz.Path, fill chartviz.Fill, stroke chartviz.Stroke) {
	if len(path) == 0 {
		return
	}
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	pat.Fill = toFill(fill)
	if stroke.Width > 0 {
		pat.Stroke = toStroke(stroke)
	}
	for _, cmd := range path {
		switch cmd.Op {
		case chartviz.OpMove:
			pat.AbsMoveTo(pos(cmd.To))
		case chartviz.OpLine:
			pat.AbsLineTo(pos(cmd.To))
		case chartviz.OpCubic:
			pat.AbsCubicCurve(pos(cmd.To), pos(cmd.Ctrl1), pos(cmd.Ctrl2))
		case chartviz.OpClose:
			pat.ClosePath()
		}
	}
	c.grp.Append(pat.AsElement())
}

func (c *Canvas) Text(str string, at chartviz.Point, style chartviz.TextStyle) {
	font := svg.NewFont(style.Size)
	if style.Family != "" {
		font.Family = []string{style.Family}
	}
	if style.Color != "" {
		font.Fill = style.Color
	}
	txt := svg.NewText(str)
	txt.Pos = pos(at)
	txt.Font = font
	txt.Anchor = anchor(style.Anchor)
	txt.Baseline = baseline(style.Align)
	c.grp.Append(txt.AsElement())
}

// Render assembles the canvases into one SVG document and writes it out.
func Render(w io.Writer, width, height float64, canvases ...*Canvas) error {
	el := svg.NewSVG()
	el.Dim = svg.NewDim(width, height)
	el.OmitProlog = true
	for _, c := range canvases {
		el.Append(c.Element())
	}
	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

func pos(pt chartviz.Point) svg.Pos {
	return svg.NewPos(pt.X, pt.Y)
}

func onCircle(center chartviz.Point, radius, rad float64) svg.Pos {
	return svg.NewPos(center.X+radius*math.Cos(rad), center.Y+radius*math.Sin(rad))
}

func toStroke(s chartviz.Stroke) svg.Stroke {
	sk := svg.NewStroke(s.Color, s.Width)
	if s.Opacity > 0 {
		sk.Opacity = s.Opacity
	}
	return sk
}

func toFill(f chartviz.Fill) svg.Fill {
	if f.Color == "" {
		return svg.NewFill("none")
	}
	fl := svg.NewFill(f.Color)
	if f.Opacity > 0 {
		fl.Opacity = f.Opacity
	}
	return fl
}

func anchor(a chartviz.Anchor) string {
	switch a {
	case chartviz.AnchorMiddle:
		return "middle"
	case chartviz.AnchorEnd:
		return "end"
	default:
		return "start"
	}
}

func baseline(a chartviz.VerticalAlign) string {
	switch a {
	case chartviz.AlignMiddle:
		return "middle"
	case chartviz.AlignHanging:
		return "hanging"
	default:
		return "auto"
	}
}
