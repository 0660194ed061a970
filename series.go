package chartviz

import (
	"time"
)

// DataPoint is one observation on the category axis. Points are produced by
// the report aggregation layer and never mutated by the engine.
type DataPoint struct {
	Label string
	Value float64
	Date  time.Time
	Color string
}

func NewDataPoint(label string, value float64) DataPoint {
	return DataPoint{
		Label: label,
		Value: value,
	}
}

func DatedPoint(label string, value float64, date time.Time) DataPoint {
	return DataPoint{
		Label: label,
		Value: value,
		Date:  date,
	}
}

// Series is a named, colored sequence of points sharing one category axis.
// All series of one chart are aligned by index: point i of every series
// belongs to category i.
type Series struct {
	Name   string
	Color  string
	Points []DataPoint
}

func (s Series) Values() []float64 {
	all := make([]float64, len(s.Points))
	for i := range s.Points {
		all[i] = s.Points[i].Value
	}
	return all
}

func (s Series) Labels() []string {
	all := make([]string, len(s.Points))
	for i := range s.Points {
		all[i] = s.Points[i].Label
	}
	return all
}

// alignedLength is the number of categories usable across all series. Series
// of differing lengths are truncated to the shortest one.
func alignedLength(series []Series) int {
	var n int
	for i, s := range series {
		if i == 0 || len(s.Points) < n {
			n = len(s.Points)
		}
	}
	return n
}

// allValues flattens the first n points of every series, for range computation.
func allValues(series []Series, n int) []float64 {
	var all []float64
	for _, s := range series {
		for i := 0; i < n && i < len(s.Points); i++ {
			all = append(all, s.Points[i].Value)
		}
	}
	return all
}
