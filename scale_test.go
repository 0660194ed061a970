package chartviz

import (
	"math"
	"testing"
)

func TestComputeRange(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		values []float64
		want   ValueRange
	}{
		{
			name:   "positive",
			values: []float64{10, 40, 25},
			want: ValueRange{
				RawMin:    10,
				RawMax:    40,
				PaddedMin: 0,
				PaddedMax: 48,
				Total:     48,
			},
		},
		{
			name:   "all zero",
			values: []float64{0, 0, 0},
			want: ValueRange{
				RawMin:    0,
				RawMax:    1,
				PaddedMin: 0,
				PaddedMax: 1.2,
				Total:     1.2,
			},
		},
		{
			name:   "empty",
			values: nil,
			want: ValueRange{
				RawMin:    0,
				RawMax:    1,
				PaddedMin: 0,
				PaddedMax: 1.2,
				Total:     1.2,
			},
		},
		{
			name:   "with negatives",
			values: []float64{5, -3},
			want: ValueRange{
				RawMin:       -3,
				RawMax:       5,
				PaddedMin:    -3.6,
				PaddedMax:    6,
				Total:        9.6,
				HasNegatives: true,
			},
		},
		{
			name:   "all negative",
			values: []float64{-2, -8},
			want: ValueRange{
				RawMin:       -8,
				RawMax:       -2,
				PaddedMin:    -9.6,
				PaddedMax:    -2,
				Total:        7.6,
				HasNegatives: true,
			},
		},
	}
	for _, c := range tests {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			got := ComputeRange(c.values)
			if !near(got.RawMin, c.want.RawMin) || !near(got.RawMax, c.want.RawMax) {
				t.Errorf("raw range: got %g..%g, want %g..%g", got.RawMin, got.RawMax, c.want.RawMin, c.want.RawMax)
			}
			if !near(got.PaddedMin, c.want.PaddedMin) || !near(got.PaddedMax, c.want.PaddedMax) {
				t.Errorf("padded range: got %g..%g, want %g..%g", got.PaddedMin, got.PaddedMax, c.want.PaddedMin, c.want.PaddedMax)
			}
			if !near(got.Total, c.want.Total) {
				t.Errorf("total: got %g, want %g", got.Total, c.want.Total)
			}
			if got.HasNegatives != c.want.HasNegatives {
				t.Errorf("negatives: got %t, want %t", got.HasNegatives, c.want.HasNegatives)
			}
			if got.PaddedMax < got.RawMax {
				t.Errorf("padded max %g below raw max %g", got.PaddedMax, got.RawMax)
			}
			if got.HasNegatives && got.PaddedMin > got.RawMin {
				t.Errorf("padded min %g above raw min %g", got.PaddedMin, got.RawMin)
			}
			if got.Total <= 0 {
				t.Errorf("total must stay positive, got %g", got.Total)
			}
		})
	}
}

func TestValueRangeMapping(t *testing.T) {
	t.Parallel()
	area := NewRect(0, 0, 100, 96)

	rng := ComputeRange([]float64{5, -3})
	if base := rng.Baseline(area); !near(base, 60) {
		t.Errorf("baseline: got %g, want 60", base)
	}
	if y := rng.Y(area, rng.PaddedMax); !near(y, 0) {
		t.Errorf("padded max must map to the top, got %g", y)
	}
	if y := rng.Y(area, rng.PaddedMin); !near(y, 96) {
		t.Errorf("padded min must map to the bottom, got %g", y)
	}

	positive := ComputeRange([]float64{10, 20})
	if base := positive.Baseline(area); !near(base, area.Bottom()) {
		t.Errorf("positive charts baseline at the bottom edge, got %g", base)
	}
}

func TestGridLines(t *testing.T) {
	t.Parallel()
	var (
		area = NewRect(10, 20, 100, 100)
		rng  = ComputeRange([]float64{100})
		all  = rng.GridLines(area)
	)
	if len(all) != 6 {
		t.Fatalf("got %d grid lines, want 6", len(all))
	}
	if !near(all[0].Y, area.Y) || !near(all[5].Y, area.Bottom()) {
		t.Errorf("grid lines must span the area: %g..%g", all[0].Y, all[5].Y)
	}
	if !near(all[0].Value, rng.PaddedMax) || !near(all[5].Value, rng.PaddedMin) {
		t.Errorf("grid values must span the padded range: %g..%g", all[0].Value, all[5].Value)
	}
	for i := 1; i < len(all); i++ {
		if all[i].Y <= all[i-1].Y {
			t.Errorf("grid line %d not below previous", i)
		}
		if all[i].Value >= all[i-1].Value {
			t.Errorf("grid value %d not decreasing", i)
		}
	}
}

func near(got, want float64) bool {
	return math.Abs(got-want) < 1e-9
}
