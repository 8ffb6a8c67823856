package util

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"wine-explorer/models"
)

// MaxRadarWines is the most wines one comparison chart holds.
const MaxRadarWines = 5

// ErrNothingToPlot is returned when no wine is given to a chart.
var ErrNothingToPlot = errors.New("no wines to plot")

type radarAxis struct {
	name  string
	max   float32
	value func(*models.Wine) *float64
}

var radarAxes = []radarAxis{
	{"Tannin", 5, func(w *models.Wine) *float64 { return w.Tannin }},
	{"Sweetness", 5, func(w *models.Wine) *float64 { return w.Sweetness }},
	{"Acidity", 5, func(w *models.Wine) *float64 { return w.Acidity }},
	{"Body", 5, func(w *models.Wine) *float64 { return w.Body }},
	{"Alcohol", 25, func(w *models.Wine) *float64 { return w.Alcohol }},
}

// RadarValues returns a wine's taste profile in axis order. Absent values
// plot as 0.
func RadarValues(w *models.Wine) []float64 {
	values := make([]float64, len(radarAxes))
	for i, axis := range radarAxes {
		if v := axis.value(w); v != nil {
			values[i] = *v
		}
	}
	return values
}

// RenderComparisonRadar writes an HTML radar chart comparing up to
// MaxRadarWines wines, one series per wine.
func RenderComparisonRadar(w io.Writer, wines []models.Wine) error {
	if len(wines) == 0 {
		return ErrNothingToPlot
	}
	if len(wines) > MaxRadarWines {
		return fmt.Errorf("cannot plot %d wines, at most %d", len(wines), MaxRadarWines)
	}

	indicators := make([]*opts.Indicator, len(radarAxes))
	for i, axis := range radarAxes {
		indicators[i] = &opts.Indicator{Name: axis.name, Max: axis.max}
	}

	radar := charts.NewRadar()
	radar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Wine Comparison",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{Title: "Taste profile"}),
		charts.WithRadarComponentOpts(opts.RadarComponent{
			Indicator: indicators,
			Shape:     "polygon",
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	for i := range wines {
		radar.AddSeries(wines[i].WineName, []opts.RadarData{
			{Name: wines[i].WineName, Value: RadarValues(&wines[i])},
		})
	}

	return radar.Render(w)
}

// WriteComparisonRadar renders the chart into an HTML file at path.
func WriteComparisonRadar(path string, wines []models.Wine) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create HTML file: %w", err)
	}
	defer f.Close()

	if err := RenderComparisonRadar(f, wines); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	log.Printf("[Plotter] Comparison chart generated: %s", path)
	return nil
}
