// Package impact computes per-variable, per-year deviations between a
// scenario panel and the baseline it was shocked from.
package impact

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/mdruszcz/econ/internal/modeltypes"
	"github.com/mdruszcz/econ/internal/panel"
)

// absoluteVars get an absolute percentage-point difference (scenario-baseline
// scaled by 100); every other variable gets a percent deviation from
// baseline.
var absoluteVars = map[modeltypes.VarName]bool{
	"DR_":   true,
	"UR_":   true,
	"BR_":   true,
	"TBR_":  true,
	"YGAP_": true,
	"ZKF_":  true,
}

// Series holds one variable's year-by-year impact values.
type Series struct {
	Variable modeltypes.VarName
	Values   map[modeltypes.Year]float64
}

func seriesFor(v modeltypes.VarName, baseline, scenario *panel.Panel, years []modeltypes.Year) Series {
	values := make(map[modeltypes.Year]float64, len(years))
	abs := absoluteVars[v]
	for _, t := range years {
		b := baseline.Get(v, t)
		sc := scenario.Get(v, t)
		switch {
		case abs:
			values[t] = (sc - b) * 100.0
		case math.Abs(b) <= 1e-10:
			values[t] = 0.0
		default:
			values[t] = (sc - b) / b * 100.0
		}
	}
	return Series{Variable: v, Values: values}
}

// Compute fans out one goroutine per variable via errgroup, computing each
// variable's impact series independently; baseline and scenario are read
// only, never mutated.
func Compute(ctx context.Context, baseline, scenario *panel.Panel, years []modeltypes.Year, variables []modeltypes.VarName) (map[modeltypes.VarName]Series, error) {
	results := make([]Series, len(variables))

	g, _ := errgroup.WithContext(ctx)
	for i, v := range variables {
		i, v := i, v
		g.Go(func() error {
			results[i] = seriesFor(v, baseline, scenario, years)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[modeltypes.VarName]Series, len(variables))
	for _, s := range results {
		out[s.Variable] = s
	}
	return out, nil
}
