// Package baseline loads the baseline variable panel and scalar bundle and
// backfills any variables the equation set needs but the baseline data
// omits.
package baseline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mdruszcz/econ/internal/modeltypes"
	"github.com/mdruszcz/econ/internal/panel"
	"github.com/mdruszcz/econ/internal/params"
	"github.com/mdruszcz/econ/internal/registry"
)

// KeyIndicators lists the four variables the dashboard leads with.
var KeyIndicators = []modeltypes.VarName{"GDP_", "PC_", "DR_", "UR_"}

// Loader reads the baseline_variables.json / scalars.json pair from a data
// directory, the same on-disk layout the calibration was shipped in.
type Loader struct {
	dataDir string
}

// NewLoader builds a Loader rooted at dataDir (holds baseline_variables.json
// and scalars.json).
func NewLoader(dataDir string) *Loader {
	return &Loader{dataDir: dataDir}
}

// LoadState reads baseline_variables.json into a Panel.
func (l *Loader) LoadState() (*panel.Panel, error) {
	path := filepath.Join(l.dataDir, "baseline_variables.json")
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("baseline: read %s: %w", path, err)
	}

	var data map[string]map[string]float64
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("baseline: parse %s: %w", path, err)
	}

	yearSet := make(map[modeltypes.Year]bool)
	for _, series := range data {
		for yearStr := range series {
			var yr int
			if _, err := fmt.Sscanf(yearStr, "%d", &yr); err != nil {
				return nil, fmt.Errorf("baseline: bad year key %q: %w", yearStr, err)
			}
			yearSet[modeltypes.Year(yr)] = true
		}
	}
	years := make([]modeltypes.Year, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	sortYears(years)

	p := panel.New(years)
	for varName, series := range data {
		v := modeltypes.VarName(varName)
		p.Add(v, 0.0)
		for yearStr, val := range series {
			var yr int
			fmt.Sscanf(yearStr, "%d", &yr)
			p.Set(v, modeltypes.Year(yr), val)
		}
	}
	return p, nil
}

// LoadScalars reads scalars.json, overlaying any present keys on top of the
// calibrated defaults.
func (l *Loader) LoadScalars() (params.Scalars, error) {
	s := params.Default()
	path := filepath.Join(l.dataDir, "scalars.json")
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("baseline: read %s: %w", path, err)
	}

	var overrides map[string]float64
	if err := json.Unmarshal(raw, &overrides); err != nil {
		return s, fmt.Errorf("baseline: parse %s: %w", path, err)
	}
	return s.WithOverrides(overrides), nil
}

func sortYears(years []modeltypes.Year) {
	for i := 1; i < len(years); i++ {
		for j := i; j > 0 && years[j-1] > years[j]; j-- {
			years[j-1], years[j] = years[j], years[j-1]
		}
	}
}

// EnsureVariables backfills variables the equation set reads but the
// baseline data may not carry: value added, domestic demand, real rates,
// profit rate, unit labour cost, macro cost, and a zero-valued slot for
// every remaining registry variable. Only cells exactly equal to 0.0 are
// overwritten, so real baseline data always wins.
func EnsureVariables(p *panel.Panel, s params.Scalars, reg *registry.Registry) {
	years := p.Years()

	ensure := func(v modeltypes.VarName, fn func(t modeltypes.Year) float64) {
		if !p.Has(v) {
			p.Add(v, 0.0)
		}
		for _, yr := range years {
			if p.Get(v, yr) == 0.0 {
				p.Set(v, yr, fn(yr))
			}
		}
	}

	ensure("Y_", func(t modeltypes.Year) float64 { return p.Get("GDP_", t) })

	ensure("DD_", func(t modeltypes.Year) float64 {
		return p.Get("C_", t) + p.Get("IF_", t) + p.Get("IH_", t) +
			p.Get("IG_", t) + p.Get("CG_", t) + p.Get("DS_", t)
	})

	ensure("RREAL_", func(t modeltypes.Year) float64 { return s.RNominal - 0.015 })

	ensure("RMORT_", func(t modeltypes.Year) float64 {
		if p.Has("RNOM_") {
			return p.Get("RNOM_", t) + 0.015
		}
		return 0.045
	})

	ensure("PROFIT_", func(t modeltypes.Year) float64 {
		y := p.Get("GDP_", t)
		w := p.Get("W_", t)
		l := p.Get("L_", t)
		pc := p.Get("PC_", t)
		k := p.Get("K_", t)
		if pc*k > 0 {
			return (y - w*l/1000.0) / (pc * k)
		}
		return 0.06
	})

	ensure("ULC_", func(t modeltypes.Year) float64 {
		y := p.Get("GDP_", t)
		if y > 0 {
			return p.Get("W_", t) * p.Get("L_", t) / y
		}
		return 0.0
	})

	ensure("COST_", func(t modeltypes.Year) float64 {
		ulc := p.Get("ULC_", t)
		pm := 1.0
		if p.Has("PM_") {
			pm = p.Get("PM_", t)
		}
		return s.CostW*ulc + s.CostPM*pm
	})

	for _, v := range reg.AllVariables() {
		if !p.Has(v) {
			p.Add(v, 0.0)
		}
	}
}
