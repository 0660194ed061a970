package svgout

import (
	"bytes"
	"strings"
	"testing"

	"github.com/midbel/chartviz"
)

func TestCanvasRendersAllPrimitives(t *testing.T) {
	t.Parallel()
	canvas := New("chart")
	canvas.Line(chartviz.NewPoint(0, 0), chartviz.NewPoint(10, 10), chartviz.NewStroke("black", 1))
	canvas.Rect(chartviz.NewRect(0, 0, 10, 10), chartviz.NewFill("red"), chartviz.Stroke{})
	canvas.Circle(chartviz.NewPoint(5, 5), 3, chartviz.NewFill("blue"))
	canvas.Sector(chartviz.NewPoint(5, 5), 4, -90, 120, chartviz.NewFill("green"))
	canvas.Path(chartviz.SmoothPath([]chartviz.Point{
		chartviz.NewPoint(0, 0),
		chartviz.NewPoint(5, 8),
		chartviz.NewPoint(10, 2),
	}), chartviz.Fill{}, chartviz.NewStroke("black", 2))
	canvas.Text("hello", chartviz.NewPoint(5, 5), chartviz.TextStyle{Size: 12, Color: "black"})

	var buf bytes.Buffer
	if err := Render(&buf, 100, 100, canvas); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, el := range []string{"<svg", "line", "rect", "circle", "path", "text", "hello"} {
		if !strings.Contains(out, el) {
			t.Errorf("output missing %q:\n%s", el, out)
		}
	}
}

func TestRenderDocumentDimensions(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := Render(&buf, 100, 60, New()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `width="100"`) || !strings.Contains(out, `height="60"`) {
		t.Errorf("document dimensions lost:\n%s", out)
	}
}

func TestTextCarriesFontFamily(t *testing.T) {
	t.Parallel()
	canvas := New()
	canvas.Text("label", chartviz.NewPoint(1, 1), chartviz.TextStyle{
		Size:   12,
		Family: "serif",
		Color:  "gray",
	})

	var buf bytes.Buffer
	if err := Render(&buf, 10, 10, canvas); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `font-family="serif"`) {
		t.Errorf("font family not emitted:\n%s", out)
	}
	if !strings.Contains(out, `fill="gray"`) {
		t.Errorf("text color not emitted:\n%s", out)
	}
}

func TestRenderEmptyPath(t *testing.T) {
	t.Parallel()
	canvas := New()
	canvas.Path(nil, chartviz.Fill{}, chartviz.NewStroke("black", 1))

	var buf bytes.Buffer
	if err := Render(&buf, 10, 10, canvas); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "path") {
		t.Error("empty paths must be dropped, not emitted")
	}
}
