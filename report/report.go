// Package report lays out rendered charts on report pages.
package report

import (
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/midbel/chartviz"
	"github.com/midbel/chartviz/svgout"
)

var (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
)

// Cell places one chart on a page. Position and size are fractions of the
// page dimensions, so the same layout works at any export resolution.
type Cell struct {
	X float64
	Y float64
	W float64
	H float64

	Spec   chartviz.ChartSpec
	Series []chartviz.Series
}

// MakeCell is a full page cell for single chart reports.
func MakeCell(spec chartviz.ChartSpec, series ...chartviz.Series) Cell {
	return Cell{
		W:      1,
		H:      1,
		Spec:   spec,
		Series: series,
	}
}

func (c Cell) area(width, height float64) (chartviz.Rect, error) {
	ok := c.W > 0 && c.H > 0 && c.X >= 0 && c.Y >= 0 && c.X+c.W <= 1 && c.Y+c.H <= 1
	if !ok {
		return chartviz.Rect{}, fmt.Errorf("cell %gx%g at %g,%g outside of page", c.W, c.H, c.X, c.Y)
	}
	return chartviz.NewRect(c.X*width, c.Y*height, c.W*width, c.H*height), nil
}

// Page is one report page of charts.
type Page struct {
	Title  string
	Width  float64
	Height float64
	Cells  []Cell
}

// Render draws every cell chart and writes the assembled SVG page. Charts
// share no state, so cells render concurrently on their own canvas and are
// appended in declaration order.
func (p Page) Render(w io.Writer) error {
	var (
		width  = p.Width
		height = p.Height
	)
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	var (
		canvases = make([]*svgout.Canvas, len(p.Cells))
		grp      errgroup.Group
	)
	for i := range p.Cells {
		i := i
		grp.Go(func() error {
			cell := p.Cells[i]
			area, err := cell.area(width, height)
			if err != nil {
				return fmt.Errorf("%s: %w", p.Title, err)
			}
			canvas := svgout.New("chart")
			chartviz.New(cell.Spec).Render(canvas, area, cell.Series...)
			canvases[i] = canvas
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}
	return svgout.Render(w, width, height, canvases...)
}
