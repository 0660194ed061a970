package chartviz

import (
	"math"
	"reflect"
	"testing"
)

func TestSmoothPathDegeneratesToLine(t *testing.T) {
	t.Parallel()
	var (
		p1  = NewPoint(10, 20)
		p2  = NewPoint(70, 80)
		pat = SmoothPath([]Point{p1, p2})
	)
	if len(pat) != 2 {
		t.Fatalf("got %d commands, want move + one cubic", len(pat))
	}
	if pat[0].Op != OpMove || pat[0].To != p1 {
		t.Fatalf("path must start at the first point, got %+v", pat[0])
	}
	cubic := pat[1]
	if cubic.Op != OpCubic || cubic.To != p2 {
		t.Fatalf("second command must be a cubic to the last point, got %+v", cubic)
	}
	// with clamped neighbors both control points lie on the segment
	for _, ctrl := range []Point{cubic.Ctrl1, cubic.Ctrl2} {
		cross := (p2.X-p1.X)*(ctrl.Y-p1.Y) - (p2.Y-p1.Y)*(ctrl.X-p1.X)
		if math.Abs(cross) > 1e-9 {
			t.Errorf("control point %+v off the straight segment", ctrl)
		}
	}
}

func TestSmoothPathInterpolates(t *testing.T) {
	t.Parallel()
	points := []Point{
		NewPoint(0, 10),
		NewPoint(10, 40),
		NewPoint(20, 20),
		NewPoint(30, 50),
	}
	pat := SmoothPath(points)
	if len(pat) != len(points) {
		t.Fatalf("got %d commands, want %d", len(pat), len(points))
	}
	// every segment ends exactly on the next data point
	for i, cmd := range pat[1:] {
		if cmd.Op != OpCubic {
			t.Fatalf("command %d: got op %v, want cubic", i+1, cmd.Op)
		}
		if cmd.To != points[i+1] {
			t.Errorf("segment %d ends at %+v, want %+v", i, cmd.To, points[i+1])
		}
	}
}

func TestSmoothPathDegenerateInput(t *testing.T) {
	t.Parallel()
	if pat := SmoothPath(nil); pat != nil {
		t.Errorf("empty input: got %v, want nil", pat)
	}
	if pat := SmoothPath([]Point{NewPoint(1, 2)}); pat != nil {
		t.Errorf("single point: got %v, want nil", pat)
	}
}

func TestStepPath(t *testing.T) {
	t.Parallel()
	points := []Point{
		NewPoint(0, 10),
		NewPoint(10, 30),
		NewPoint(20, 5),
	}
	want := Path{
		moveTo(NewPoint(0, 10)),
		lineTo(NewPoint(10, 10)),
		lineTo(NewPoint(10, 30)),
		lineTo(NewPoint(20, 30)),
		lineTo(NewPoint(20, 5)),
	}
	got := StepPath(points)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("staircase mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestAreaPathClosesToBaseline(t *testing.T) {
	t.Parallel()
	points := []Point{
		NewPoint(5, 40),
		NewPoint(25, 10),
		NewPoint(45, 30),
	}
	pat := AreaPath(points, 100)
	if len(pat) == 0 {
		t.Fatal("no path built")
	}
	if pat[len(pat)-1].Op != OpClose {
		t.Fatal("area path must be closed")
	}
	var (
		down = pat[len(pat)-3]
		back = pat[len(pat)-2]
	)
	if down.Op != OpLine || down.To != NewPoint(45, 100) {
		t.Errorf("drop to baseline: got %+v", down)
	}
	if back.Op != OpLine || back.To != NewPoint(5, 100) {
		t.Errorf("run back to first x: got %+v", back)
	}
}

func TestPathsArePure(t *testing.T) {
	t.Parallel()
	points := []Point{
		NewPoint(0, 1),
		NewPoint(2, 3),
		NewPoint(4, 0),
	}
	if !reflect.DeepEqual(SmoothPath(points), SmoothPath(points)) {
		t.Error("smooth path not reproducible")
	}
	if !reflect.DeepEqual(StepPath(points), StepPath(points)) {
		t.Error("step path not reproducible")
	}
	if !reflect.DeepEqual(AreaPath(points, 50), AreaPath(points, 50)) {
		t.Error("area path not reproducible")
	}
}
