package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/midbel/chartviz"
)

// Config is the YAML description of one report page.
type Config struct {
	Title  string  `yaml:"title"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	Charts []ChartConfig `yaml:"charts"`
}

// ChartConfig describes one chart and where its data comes from.
type ChartConfig struct {
	Title  string `yaml:"title"`
	Kind   string `yaml:"kind"`
	Style  string `yaml:"style"`
	Legend bool   `yaml:"legend"`

	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`

	Palette    []string `yaml:"palette"`
	Background string   `yaml:"background"`
	Border     string   `yaml:"border"`
	Scale      float64  `yaml:"scale"`

	Data       string         `yaml:"data"`
	Header     bool           `yaml:"header"`
	Label      int            `yaml:"label"`
	Date       *int           `yaml:"date"`
	TimeFormat string         `yaml:"timefmt"`
	Series     []SeriesConfig `yaml:"series"`
}

// SeriesConfig binds one named series to a value column of the data file.
type SeriesConfig struct {
	Name   string `yaml:"name"`
	Color  string `yaml:"color"`
	Column int    `yaml:"column"`
}

// Load reads a page configuration from a YAML file.
func Load(path string) (Config, error) {
	r, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer r.Close()
	cfg, err := Decode(r)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads a page configuration from YAML.
func Decode(r io.Reader) (Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Page resolves the configuration into a renderable page, loading every data
// file relative to dir.
func (c Config) Page(dir string) (Page, error) {
	page := Page{
		Title:  c.Title,
		Width:  c.Width,
		Height: c.Height,
	}
	for i, ch := range c.Charts {
		cell, err := ch.cell(dir)
		if err != nil {
			return page, fmt.Errorf("chart %d: %w", i, err)
		}
		page.Cells = append(page.Cells, cell)
	}
	return page, nil
}

func (c ChartConfig) cell(dir string) (Cell, error) {
	spec, err := c.spec()
	if err != nil {
		return Cell{}, err
	}
	series, err := c.load(dir)
	if err != nil {
		return Cell{}, err
	}
	cell := Cell{
		X:      c.X,
		Y:      c.Y,
		W:      c.W,
		H:      c.H,
		Spec:   spec,
		Series: series,
	}
	if cell.W == 0 && cell.H == 0 {
		cell.W, cell.H = 1, 1
	}
	return cell, nil
}

func (c ChartConfig) spec() (chartviz.ChartSpec, error) {
	spec := chartviz.ChartSpec{
		Title:      c.Title,
		ShowLegend: c.Legend,
		Background: c.Background,
		Border:     c.Border,
		Palette:    chartviz.Palette(c.Palette),
		Scale:      c.Scale,
	}
	switch c.Kind {
	case "", "trend":
		spec.Kind = chartviz.KindTrend
	case "distribution":
		spec.Kind = chartviz.KindDistribution
	case "geo":
		spec.Kind = chartviz.KindGeo
	default:
		return spec, fmt.Errorf("%s: unrecognized chart kind", c.Kind)
	}
	switch c.Style {
	case "", "bar":
		spec.Style = chartviz.StyleBar
	case "line":
		spec.Style = chartviz.StyleLine
	case "step":
		spec.Style = chartviz.StyleStepLine
	case "area":
		spec.Style = chartviz.StyleArea
	case "scatter":
		spec.Style = chartviz.StyleScatter
	default:
		return spec, fmt.Errorf("%s: unrecognized chart style", c.Style)
	}
	return spec, nil
}

func (c ChartConfig) load(dir string) ([]chartviz.Series, error) {
	if c.Data == "" {
		return nil, nil
	}
	if len(c.Series) == 0 {
		return nil, fmt.Errorf("%s: no series configured", c.Data)
	}
	path := c.Data
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	return LoadSeries(path, c)
}
