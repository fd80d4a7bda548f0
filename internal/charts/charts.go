// Package charts renders dashboard visuals as PNG images using go-chart.
package charts

import (
	"bytes"
	"time"

	"gmartin/finboard/internal/analytics"
	"gmartin/finboard/internal/dateutils"

	"github.com/wcharczuk/go-chart/v2"
)

// ExpenseBarChart renders per-category expense totals as a bar chart.
// Returns nil bytes when there is nothing to draw.
func ExpenseBarChart(summary []analytics.CategoryTotal) ([]byte, error) {
	if len(summary) == 0 {
		return nil, nil
	}

	bars := make([]chart.Value, len(summary))
	for i, total := range summary {
		bars[i] = chart.Value{
			Label: total.Category,
			Value: total.Amount.InexactFloat64(),
		}
	}

	graph := chart.BarChart{
		Title:    "Expenses by Category",
		Width:    1024,
		Height:   512,
		BarWidth: 40,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MonthlyTrendChart renders the monthly net series as a time-series line.
// Returns nil bytes when fewer than two months are available.
func MonthlyTrendChart(points []analytics.MonthlyPoint) ([]byte, error) {
	if len(points) < 2 {
		return nil, nil
	}

	xValues := make([]time.Time, len(points))
	yValues := make([]float64, len(points))
	for i, point := range points {
		month, err := time.Parse(dateutils.MonthLayout, point.Month)
		if err != nil {
			return nil, err
		}
		xValues[i] = month
		yValues[i] = point.Amount.InexactFloat64()
	}

	graph := chart.Chart{
		Title:  "Monthly Net Trend",
		Width:  1024,
		Height: 512,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01"),
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Net",
				XValues: xValues,
				YValues: yValues,
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ProjectionChart renders a savings projection as a line over month offsets.
// Returns nil bytes when fewer than two values are available.
func ProjectionChart(values []float64) ([]byte, error) {
	if len(values) < 2 {
		return nil, nil
	}

	xValues := make([]float64, len(values))
	for i := range values {
		xValues[i] = float64(i)
	}

	graph := chart.Chart{
		Title:  "12-Month Savings Projection",
		Width:  1024,
		Height: 512,
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Projected Savings",
				XValues: xValues,
				YValues: values,
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
