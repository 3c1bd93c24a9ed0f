// Package panel implements the dense (variable, year) data container the
// solver reads and writes, with the IODE-style operator set (get/set/lag/
// dln/grt/d/mavg) the equation set is written against.
package panel

import (
	"math"
	"sort"

	"github.com/mdruszcz/econ/internal/modeltypes"
)

// Panel wraps a dense map[variable][year]value grid. It is not safe for
// concurrent use; callers that need isolation should Copy it first (the
// engine copies once per Simulate call so that baseline and scenario runs
// never alias state).
type Panel struct {
	cols  map[modeltypes.VarName]map[modeltypes.Year]float64
	years []modeltypes.Year
}

// New builds an empty panel spanning the given years.
func New(years []modeltypes.Year) *Panel {
	sorted := append([]modeltypes.Year(nil), years...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return &Panel{
		cols:  make(map[modeltypes.VarName]map[modeltypes.Year]float64),
		years: sorted,
	}
}

// Years returns every year the panel spans, in ascending order.
func (p *Panel) Years() []modeltypes.Year {
	return append([]modeltypes.Year(nil), p.years...)
}

// SimYears returns the simulation years: every year but the first, which is
// retained only so year-1 lags resolve.
func (p *Panel) SimYears() []modeltypes.Year {
	if len(p.years) == 0 {
		return nil
	}
	return append([]modeltypes.Year(nil), p.years[1:]...)
}

// Columns returns every variable name currently present, order unspecified.
func (p *Panel) Columns() []modeltypes.VarName {
	out := make([]modeltypes.VarName, 0, len(p.cols))
	for v := range p.cols {
		out = append(out, v)
	}
	return out
}

// HasYear reports whether t falls within the panel's year range.
func (p *Panel) HasYear(t modeltypes.Year) bool {
	for _, y := range p.years {
		if y == t {
			return true
		}
	}
	return false
}

// Get returns the value of var at year t, or 0.0 if the cell was never set.
func (p *Panel) Get(v modeltypes.VarName, t modeltypes.Year) float64 {
	col, ok := p.cols[v]
	if !ok {
		return 0.0
	}
	return col[t]
}

// Set writes the value of var at year t.
func (p *Panel) Set(v modeltypes.VarName, t modeltypes.Year, value float64) {
	col, ok := p.cols[v]
	if !ok {
		col = make(map[modeltypes.Year]float64)
		p.cols[v] = col
	}
	col[t] = value
}

// Lag returns var[t-n].
func (p *Panel) Lag(v modeltypes.VarName, t modeltypes.Year, n int) float64 {
	return p.Get(v, t-modeltypes.Year(n))
}

// Dln computes ln(X_t) - ln(X_{t-1}), returning 0.0 if either value is
// non-positive (log of a non-positive number is undefined for this model).
func (p *Panel) Dln(v modeltypes.VarName, t modeltypes.Year) float64 {
	cur := p.Get(v, t)
	prev := p.Lag(v, t, 1)
	if cur <= 0 || prev <= 0 {
		return 0.0
	}
	return math.Log(cur) - math.Log(prev)
}

// Grt computes the percent growth rate (X_t - X_{t-1}) / X_{t-1} * 100,
// returning 0.0 when the lagged value is exactly zero.
func (p *Panel) Grt(v modeltypes.VarName, t modeltypes.Year) float64 {
	prev := p.Lag(v, t, 1)
	if prev == 0 {
		return 0.0
	}
	return (p.Get(v, t) - prev) / prev * 100.0
}

// D computes the first difference X_t - X_{t-1}.
func (p *Panel) D(v modeltypes.VarName, t modeltypes.Year) float64 {
	return p.Get(v, t) - p.Lag(v, t, 1)
}

// Mavg computes the trailing n-year moving average ending at t, skipping
// years outside the panel's range.
func (p *Panel) Mavg(v modeltypes.VarName, t modeltypes.Year, n int) float64 {
	sum, count := 0.0, 0
	for i := 0; i < n; i++ {
		yr := t - modeltypes.Year(i)
		if p.HasYear(yr) {
			sum += p.Get(v, yr)
			count++
		}
	}
	if count == 0 {
		return 0.0
	}
	return sum / float64(count)
}

// Has reports whether var has been added to the panel (even if every cell
// still holds its zero value).
func (p *Panel) Has(v modeltypes.VarName) bool {
	_, ok := p.cols[v]
	return ok
}

// Add registers var with default written into every panel year, a no-op if
// the variable already exists.
func (p *Panel) Add(v modeltypes.VarName, def float64) {
	if p.Has(v) {
		return
	}
	col := make(map[modeltypes.Year]float64, len(p.years))
	for _, yr := range p.years {
		col[yr] = def
	}
	p.cols[v] = col
}

// Copy returns a deep, independent copy of the panel.
func (p *Panel) Copy() *Panel {
	out := &Panel{
		cols:  make(map[modeltypes.VarName]map[modeltypes.Year]float64, len(p.cols)),
		years: append([]modeltypes.Year(nil), p.years...),
	}
	for v, col := range p.cols {
		newCol := make(map[modeltypes.Year]float64, len(col))
		for yr, val := range col {
			newCol[yr] = val
		}
		out.cols[v] = newCol
	}
	return out
}

// ToDict flattens the requested variables (or every column, if vars is
// empty) into a nested map keyed by variable then year.
func (p *Panel) ToDict(vars []modeltypes.VarName) map[modeltypes.VarName]map[modeltypes.Year]float64 {
	cols := vars
	if len(cols) == 0 {
		cols = p.Columns()
	}
	out := make(map[modeltypes.VarName]map[modeltypes.Year]float64, len(cols))
	for _, v := range cols {
		col, ok := p.cols[v]
		if !ok {
			continue
		}
		yearly := make(map[modeltypes.Year]float64, len(p.years))
		for _, yr := range p.years {
			yearly[yr] = col[yr]
		}
		out[v] = yearly
	}
	return out
}
