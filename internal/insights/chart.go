package insights

import "insightchat/internal/models"

// barChart builds a single-series bar chart spec. Orientation "h" asks
// the presentation layer for horizontal bars (long category labels).
func barChart(title, xLabel, yLabel, orientation string, x []string, y []float64) *models.ChartSpec {
	return &models.ChartSpec{
		Type:        "bar",
		Title:       title,
		XLabel:      xLabel,
		YLabel:      yLabel,
		Orientation: orientation,
		Series:      []models.ChartSeries{{Name: yLabel, X: x, Y: y}},
	}
}

// lineChart builds a multi-series line chart spec over shared x values.
func lineChart(title, xLabel, yLabel string, x []string, series map[string][]float64, order []string) *models.ChartSpec {
	spec := &models.ChartSpec{
		Type:   "line",
		Title:  title,
		XLabel: xLabel,
		YLabel: yLabel,
	}
	for _, name := range order {
		spec.Series = append(spec.Series, models.ChartSeries{Name: name, X: x, Y: series[name]})
	}
	return spec
}
