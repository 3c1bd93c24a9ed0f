// Package instruments defines the fixed policy-instrument catalogue and the
// logic that writes a chosen instrument vector into a panel.
package instruments

import (
	"fmt"

	"github.com/mdruszcz/econ/internal/modeltypes"
	"github.com/mdruszcz/econ/internal/panel"
)

// Spec describes one policy lever: its panel key, bounds, and a human-
// readable label for the HTTP boundary.
type Spec struct {
	Key         string
	Label       string
	Unit        string
	Default     float64
	Min         float64
	Max         float64
	Description string
}

// Catalogue is the fixed set of ten policy instruments exposed to callers.
var Catalogue = []Spec{
	{
		Key: "VIG_X", Label: "Public Investments", Unit: "mln EUR (change)",
		Default: 0.0, Min: -2000.0, Max: 6000.0,
		Description: "Change in public investment expenditure (millions EUR, constant prices)",
	},
	{
		Key: "ITPC0R_X", Label: "VAT Rate", Unit: "% (level)",
		Default: 21.0, Min: 15.0, Max: 27.0,
		Description: "Standard VAT rate on consumption (%)",
	},
	{
		Key: "DTH_X", Label: "Income Tax Receipts", Unit: "mln EUR (change)",
		Default: 0.0, Min: -10000.0, Max: 10000.0,
		Description: "Change in personal income tax receipts (millions EUR)",
	},
	{
		Key: "CSSFR_X", Label: "Employer SSC Rate", Unit: "% of wages (level)",
		Default: 30.0, Min: 25.0, Max: 40.0,
		Description: "Employer social security contribution rate (% of gross wages)",
	},
	{
		Key: "CSSHR_X", Label: "Employee SSC Rate", Unit: "% of wages (level)",
		Default: 13.0, Min: 10.0, Max: 20.0,
		Description: "Employee social security contribution rate (% of gross wages)",
	},
	{
		Key: "TGH_X", Label: "Transfers to Households", Unit: "% (growth rate)",
		Default: 0.0, Min: -5.0, Max: 5.0,
		Description: "Additional growth rate of transfers to households (%, constant prices)",
	},
	{
		Key: "WR_X", Label: "Private Wage Correction", Unit: "pp",
		Default: 0.0, Min: -2.0, Max: 2.0,
		Description: "Correction to private sector nominal wage growth (percentage points)",
	},
	{
		Key: "WGRR_X", Label: "Public Real Wage Growth", Unit: "% p.a.",
		Default: 0.0, Min: -2.0, Max: 5.0,
		Description: "Real wage growth in the public sector (% per year)",
	},
	{
		Key: "NG_X", Label: "Public Employment", Unit: "thousands (change)",
		Default: 0.0, Min: -40.0, Max: 40.0,
		Description: "Change in public sector employment (thousands of persons)",
	},
	{
		Key: "ZX_X", Label: "Indexation Correction", Unit: "pp",
		Default: 0.0, Min: -2.0, Max: 0.0,
		Description: "Change in automatic wage indexation mechanism (percentage points)",
	},
}

var byKey = func() map[string]Spec {
	m := make(map[string]Spec, len(Catalogue))
	for _, s := range Catalogue {
		m[s.Key] = s
	}
	return m
}()

// Defaults returns the baseline (no-shock) instrument vector.
func Defaults() map[string]float64 {
	out := make(map[string]float64, len(Catalogue))
	for _, s := range Catalogue {
		out[s.Key] = s.Default
	}
	return out
}

// Validate checks every key against the catalogue and every value against
// its bounds, returning one message per violation.
func Validate(values map[string]float64) []string {
	var errs []string
	for key, val := range values {
		spec, ok := byKey[key]
		if !ok {
			errs = append(errs, fmt.Sprintf("unknown instrument: %s", key))
			continue
		}
		if val < spec.Min || val > spec.Max {
			errs = append(errs, fmt.Sprintf("%s: %v out of range [%v, %v]", key, val, spec.Min, spec.Max))
		}
	}
	return errs
}

// Apply writes every instrument value into the panel for every simulation
// year, plus the three derived-variable mappings equations read directly:
// ITPC0R_X -> ITPC0R_ (level), CSSFR_X -> CSSFR_ (level/100), CSSHR_X ->
// CSSHR_ (level/100).
func Apply(p *panel.Panel, values map[string]float64, simYears []modeltypes.Year) {
	for _, year := range simYears {
		for key, value := range values {
			k := modeltypes.VarName(key)
			if !p.Has(k) {
				p.Add(k, 0.0)
			}
			p.Set(k, year, value)
		}

		if v, ok := values["ITPC0R_X"]; ok {
			p.Set("ITPC0R_", year, v)
		}
		if v, ok := values["CSSFR_X"]; ok {
			p.Set("CSSFR_", year, v/100.0)
		}
		if v, ok := values["CSSHR_X"]; ok {
			p.Set("CSSHR_", year, v/100.0)
		}
	}
}
