package chartviz

// Point is a position in pixel space, origin at the top left corner.
type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

// Rect is an axis aligned rectangle in pixel space.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{
		X: x,
		Y: y,
		W: w,
		H: h,
	}
}

func (r Rect) Right() float64 {
	return r.X + r.W
}

func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Inset shrinks the rectangle by the given amount on each side.
func (r Rect) Inset(top, right, bottom, left float64) Rect {
	r.X += left
	r.Y += top
	r.W -= left + right
	r.H -= top + bottom
	if r.W < 0 {
		r.W = 0
	}
	if r.H < 0 {
		r.H = 0
	}
	return r
}

type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

type VerticalAlign int

const (
	AlignBaseline VerticalAlign = iota
	AlignMiddle
	AlignHanging
)

// Stroke describes the outline of a shape. A zero Width means no stroke,
// an Opacity of zero means fully opaque.
type Stroke struct {
	Color   string
	Width   float64
	Opacity float64
}

func NewStroke(color string, width float64) Stroke {
	return Stroke{
		Color: color,
		Width: width,
	}
}

// Fill describes the interior of a shape. An empty Color means no fill,
// an Opacity of zero means fully opaque.
type Fill struct {
	Color   string
	Opacity float64
}

func NewFill(color string) Fill {
	return Fill{
		Color: color,
	}
}

// TextStyle describes one run of anchored text. An empty Family leaves the
// typeface to the backend default.
type TextStyle struct {
	Size   float64
	Family string
	Color  string
	Anchor Anchor
	Align  VerticalAlign
}

// Surface is the minimal immediate mode canvas the engine draws on. All
// coordinates are pixels of the caller supplied drawing region. Implementations
// keep no geometry state between calls: each operation is self contained.
type Surface interface {
	Line(from, to Point, stroke Stroke)
	Rect(r Rect, fill Fill, stroke Stroke)
	Circle(center Point, radius float64, fill Fill)
	// Sector draws a filled circular sector. Angles are in degrees, zero along
	// the positive x axis, sweeping clockwise.
	Sector(center Point, radius, startDeg, sweepDeg float64, fill Fill)
	Path(path Path, fill Fill, stroke Stroke)
	Text(str string, at Point, style TextStyle)
}
