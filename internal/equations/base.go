// Package equations implements the ML2 equation set: one small type per
// target variable, each satisfying the Equation interface the registry and
// solver depend on.
package equations

import (
	"math"

	"github.com/mdruszcz/econ/internal/modeltypes"
	"github.com/mdruszcz/econ/internal/panel"
	"github.com/mdruszcz/econ/internal/params"
)

// SafeExp clamps x into [-limit, limit] before exponentiating, keeping
// early, heavily-damped Gauss-Seidel sweeps from overflowing on a wild log
// update.
func SafeExp(x, limit float64) float64 {
	if x > limit {
		x = limit
	}
	if x < -limit {
		x = -limit
	}
	return math.Exp(x)
}

const defaultExpLimit = 0.5

func safeExp(x float64) float64 {
	return SafeExp(x, defaultExpLimit)
}

// Equation computes one target variable's value for a given year from the
// rest of the panel.
type Equation interface {
	Name() modeltypes.VarName
	Type() modeltypes.EquationType
	DependsOn() []modeltypes.VarName
	Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64
}
