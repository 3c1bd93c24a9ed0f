// Package solver implements the three-phase Gauss-Seidel fixed-point solver:
// a single pre-recursive pass, an under-relaxed iterative pass over the
// interdependent block, and a single post-recursive pass.
package solver

import (
	"math"

	"go.uber.org/zap"

	"github.com/mdruszcz/econ/internal/modeltypes"
	"github.com/mdruszcz/econ/internal/panel"
	"github.com/mdruszcz/econ/internal/params"
	"github.com/mdruszcz/econ/internal/registry"
)

// YearConvergence reports how solving a single year went.
type YearConvergence struct {
	Year        modeltypes.Year
	Iterations  int
	MaxResidual float64
	Status      modeltypes.ConvergenceStatus
}

// Config tunes the Gauss-Seidel iteration. Zero value is invalid; use
// DefaultConfig.
type Config struct {
	Relaxation float64
	Eps        float64
	MaxIter    int
}

// DefaultConfig mirrors the calibrated solver defaults: 0.2 under-
// relaxation, 1e-4 convergence tolerance, 1000 iteration cap.
func DefaultConfig() Config {
	return Config{Relaxation: 0.2, Eps: 0.0001, MaxIter: 1000}
}

// Solver runs the three-phase algorithm against a shared registry and
// scalar bundle; it holds no panel state itself, so one Solver can safely
// drive concurrent Solve calls against independent panels.
type Solver struct {
	registry *registry.Registry
	scalars  params.Scalars
	cfg      Config
	log      *zap.Logger
}

// New builds a solver with the default tuning.
func New(reg *registry.Registry, scalars params.Scalars, log *zap.Logger) *Solver {
	return &Solver{registry: reg, scalars: scalars, cfg: DefaultConfig(), log: log}
}

// NewWithConfig builds a solver with an explicit tuning, for tests that
// need a tighter iteration cap or a looser tolerance.
func NewWithConfig(reg *registry.Registry, scalars params.Scalars, cfg Config, log *zap.Logger) *Solver {
	return &Solver{registry: reg, scalars: scalars, cfg: cfg, log: log}
}

// SolveYear runs all three phases for a single year t, mutating p in place.
func (s *Solver) SolveYear(p *panel.Panel, t modeltypes.Year) YearConvergence {
	for _, v := range s.registry.PreOrder() {
		if eq := s.registry.Get(v); eq != nil {
			p.Set(v, t, eq.Compute(p, t, s.scalars))
		}
	}

	status := modeltypes.MaxIterations
	maxResid := 0.0
	iterations := 0

	for it := 1; it <= s.cfg.MaxIter; it++ {
		maxResid = 0.0
		for _, v := range s.registry.InterOrder() {
			eq := s.registry.Get(v)
			if eq == nil {
				continue
			}
			oldVal := p.Get(v, t)
			newVal := eq.Compute(p, t, s.scalars)
			relaxed := s.cfg.Relaxation*newVal + (1-s.cfg.Relaxation)*oldVal
			p.Set(v, t, relaxed)

			var resid float64
			if math.Abs(oldVal) > 1e-10 {
				resid = math.Abs(relaxed-oldVal) / math.Abs(oldVal)
			} else {
				resid = math.Abs(relaxed - oldVal)
			}
			if resid > maxResid {
				maxResid = resid
			}
		}

		iterations = it
		if maxResid < s.cfg.Eps {
			status = modeltypes.Converged
			break
		}
	}

	for _, v := range s.registry.PostOrder() {
		if eq := s.registry.Get(v); eq != nil {
			p.Set(v, t, eq.Compute(p, t, s.scalars))
		}
	}

	if s.log != nil {
		s.log.Info("solved year",
			zap.Int("year", int(t)),
			zap.Int("iterations", iterations),
			zap.Float64("max_residual", maxResid),
			zap.String("status", status.String()),
		)
	}

	return YearConvergence{Year: t, Iterations: iterations, MaxResidual: maxResid, Status: status}
}

// Solve runs SolveYear for every year in simYears, in order, against the
// same panel.
func (s *Solver) Solve(p *panel.Panel, simYears []modeltypes.Year) []YearConvergence {
	results := make([]YearConvergence, 0, len(simYears))
	for _, t := range simYears {
		results = append(results, s.SolveYear(p, t))
	}
	return results
}
