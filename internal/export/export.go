// Package export renders a simulation's key indicators as CSV and Excel
// workbooks, and its GDP impact path as a PNG chart.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"image/color"

	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/mdruszcz/econ/internal/engine"
	"github.com/mdruszcz/econ/internal/modeltypes"
)

// moneyFormat renders a level or impact value with bounded precision, using
// shopspring/decimal rather than float formatting so exported figures never
// carry binary-float noise digits.
func moneyFormat(v float64) string {
	return decimal.NewFromFloat(v).Round(4).String()
}

// CSV writes a simulation's headline indicators to an in-memory CSV buffer:
// one row per simulated year, baseline and scenario side by side.
func CSV(out engine.SimulationOutput) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"year",
		"gdp_growth_baseline", "gdp_growth_scenario",
		"inflation_baseline", "inflation_scenario",
		"deficit_ratio_baseline", "deficit_ratio_scenario",
		"unemployment_baseline", "unemployment_scenario",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for i, yr := range out.Years {
		row := []string{
			fmt.Sprintf("%d", yr),
			moneyFormat(out.BaselineIndicators.GDPGrowth[i]), moneyFormat(out.ScenarioIndicators.GDPGrowth[i]),
			moneyFormat(out.BaselineIndicators.Inflation[i]), moneyFormat(out.ScenarioIndicators.Inflation[i]),
			moneyFormat(out.BaselineIndicators.DeficitRatio[i]), moneyFormat(out.ScenarioIndicators.DeficitRatio[i]),
			moneyFormat(out.BaselineIndicators.Unemployment[i]), moneyFormat(out.ScenarioIndicators.Unemployment[i]),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Excel renders the same indicators plus the level paths carried in
// out.Levels (the engine's headline variables) into a two-sheet workbook.
func Excel(out engine.SimulationOutput) ([]byte, error) {
	wb := xlsx.NewFile()

	indicators, err := wb.AddSheet("Indicators")
	if err != nil {
		return nil, err
	}
	header := indicators.AddRow()
	for _, h := range []string{"Year", "GDP Growth (Baseline)", "GDP Growth (Scenario)", "Inflation (Baseline)", "Inflation (Scenario)", "Deficit Ratio (Baseline)", "Deficit Ratio (Scenario)", "Unemployment (Baseline)", "Unemployment (Scenario)"} {
		header.AddCell().SetString(h)
	}
	for i, yr := range out.Years {
		row := indicators.AddRow()
		row.AddCell().SetInt(int(yr))
		row.AddCell().SetString(moneyFormat(out.BaselineIndicators.GDPGrowth[i]))
		row.AddCell().SetString(moneyFormat(out.ScenarioIndicators.GDPGrowth[i]))
		row.AddCell().SetString(moneyFormat(out.BaselineIndicators.Inflation[i]))
		row.AddCell().SetString(moneyFormat(out.ScenarioIndicators.Inflation[i]))
		row.AddCell().SetString(moneyFormat(out.BaselineIndicators.DeficitRatio[i]))
		row.AddCell().SetString(moneyFormat(out.ScenarioIndicators.DeficitRatio[i]))
		row.AddCell().SetString(moneyFormat(out.BaselineIndicators.Unemployment[i]))
		row.AddCell().SetString(moneyFormat(out.ScenarioIndicators.Unemployment[i]))
	}

	levels, err := wb.AddSheet("Levels")
	if err != nil {
		return nil, err
	}
	levelHeader := levels.AddRow()
	levelHeader.AddCell().SetString("Variable")
	for _, yr := range out.Years {
		levelHeader.AddCell().SetString(fmt.Sprintf("%d", yr))
	}
	for v, series := range out.Levels {
		row := levels.AddRow()
		row.AddCell().SetString(string(v))
		for _, yr := range out.Years {
			row.AddCell().SetString(moneyFormat(series[yr]))
		}
	}

	var buf bytes.Buffer
	if err := wb.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GDPImpactChart renders the GDP impact series (percent deviation from
// baseline) as a PNG line chart.
func GDPImpactChart(out engine.SimulationOutput) ([]byte, error) {
	series, ok := out.Impacts[modeltypes.VarName("GDP_")]
	if !ok {
		return nil, fmt.Errorf("export: no GDP_ impact series in result")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s: GDP impact", out.Name)
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "% deviation from baseline"

	pts := make(plotter.XYs, len(out.Years))
	for i, yr := range out.Years {
		pts[i].X = float64(yr)
		pts[i].Y = series.Values[yr]
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, err
	}
	line.Color = color.RGBA{B: 200, A: 255}
	p.Add(line, points)

	var buf bytes.Buffer
	writer, err := p.WriterTo(600, 400, "png")
	if err != nil {
		return nil, err
	}
	if _, err := writer.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
