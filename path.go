package chartviz

import (
	"github.com/midbel/slices"
)

type PathOp int

const (
	OpMove PathOp = iota
	OpLine
	OpCubic
	OpClose
)

// PathCmd is one drawing instruction. Ctrl1 and Ctrl2 are only meaningful for
// OpCubic, To is unused for OpClose.
type PathCmd struct {
	Op    PathOp
	To    Point
	Ctrl1 Point
	Ctrl2 Point
}

type Path []PathCmd

func moveTo(to Point) PathCmd {
	return PathCmd{Op: OpMove, To: to}
}

func lineTo(to Point) PathCmd {
	return PathCmd{Op: OpLine, To: to}
}

func cubicTo(to, ctrl1, ctrl2 Point) PathCmd {
	return PathCmd{Op: OpCubic, To: to, Ctrl1: ctrl1, Ctrl2: ctrl2}
}

// splineTension drives how far the Catmull-Rom control points reach. 0.5 is
// the centripetal-ish middle ground used for every smooth chart line.
const splineTension = 0.5

// SmoothPath builds an interpolating spline through all points: each segment
// is a cubic Bezier whose control points derive from the Catmull-Rom
// neighbors, so the curve passes through every data point. Fewer than two
// points yield no path.
func SmoothPath(points []Point) Path {
	if len(points) < 2 {
		return nil
	}
	pat := make(Path, 0, len(points))
	pat = append(pat, moveTo(slices.Fst(points)))
	for i := 0; i < len(points)-1; i++ {
		var (
			p1 = points[i]
			p2 = points[i+1]
			p0 = p1
			p3 = p2
		)
		if i > 0 {
			p0 = points[i-1]
		}
		if i+2 < len(points) {
			p3 = points[i+2]
		}
		ctrl1 := NewPoint(
			p1.X+(p2.X-p0.X)*splineTension/3,
			p1.Y+(p2.Y-p0.Y)*splineTension/3,
		)
		ctrl2 := NewPoint(
			p2.X-(p3.X-p1.X)*splineTension/3,
			p2.Y-(p3.Y-p1.Y)*splineTension/3,
		)
		pat = append(pat, cubicTo(p2, ctrl1, ctrl2))
	}
	return pat
}

// StepPath builds a right angle staircase: horizontal to the next category,
// then vertical to its value.
func StepPath(points []Point) Path {
	if len(points) < 2 {
		return nil
	}
	pat := make(Path, 0, len(points)*2)
	pat = append(pat, moveTo(slices.Fst(points)))
	for i, pt := range slices.Rest(points) {
		prev := points[i]
		pat = append(pat, lineTo(NewPoint(pt.X, prev.Y)))
		pat = append(pat, lineTo(pt))
	}
	return pat
}

// AreaPath builds the smooth spline closed down to the baseline, for filled
// area charts.
func AreaPath(points []Point, baseline float64) Path {
	pat := SmoothPath(points)
	if len(pat) == 0 {
		return nil
	}
	var (
		fst = slices.Fst(points)
		lst = slices.Lst(points)
	)
	pat = append(pat, lineTo(NewPoint(lst.X, baseline)))
	pat = append(pat, lineTo(NewPoint(fst.X, baseline)))
	pat = append(pat, PathCmd{Op: OpClose})
	return pat
}
