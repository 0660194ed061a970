package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/midbel/chartviz"
)

const defaultTimeFormat = "2006-01-02"

// LoadSeries reads the configured series out of a delimited data file. The
// label column feeds every series; malformed numeric cells count as zero so
// one bad row never sinks a whole report.
func LoadSeries(path string, cfg ChartConfig) ([]chartviz.Series, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	series, err := readSeries(r, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return series, nil
}

func readSeries(r io.Reader, cfg ChartConfig) ([]chartviz.Series, error) {
	var (
		rs     = csv.NewReader(r)
		series = make([]chartviz.Series, len(cfg.Series))
		format = cfg.TimeFormat
		first  = true
	)
	rs.TrimLeadingSpace = true
	if format == "" {
		format = defaultTimeFormat
	}
	for i, sc := range cfg.Series {
		series[i] = chartviz.Series{
			Name:  sc.Name,
			Color: sc.Color,
		}
	}
	for {
		row, err := rs.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if first && cfg.Header {
			first = false
			continue
		}
		first = false

		label, err := field(row, cfg.Label)
		if err != nil {
			return nil, fmt.Errorf("label: %w", err)
		}
		var date time.Time
		if cfg.Date != nil {
			str, err := field(row, *cfg.Date)
			if err != nil {
				return nil, fmt.Errorf("date: %w", err)
			}
			date, _ = time.Parse(format, str)
		}
		for i, sc := range cfg.Series {
			str, err := field(row, sc.Column)
			if err != nil {
				return nil, fmt.Errorf("series %s: %w", sc.Name, err)
			}
			value, err := strconv.ParseFloat(str, 64)
			if err != nil {
				value = 0
			}
			pt := chartviz.DatedPoint(label, value, date)
			series[i].Points = append(series[i].Points, pt)
		}
	}
	return series, nil
}

func field(row []string, col int) (string, error) {
	if col < 0 || col >= len(row) {
		return "", fmt.Errorf("column %d out of range (%d columns)", col, len(row))
	}
	return row[col], nil
}
