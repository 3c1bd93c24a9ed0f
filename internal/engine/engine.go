// Package engine orchestrates baseline loading, instrument application,
// solving, and impact computation into the single Simulate entry point the
// HTTP boundary calls.
package engine

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/mdruszcz/econ/internal/baseline"
	"github.com/mdruszcz/econ/internal/impact"
	"github.com/mdruszcz/econ/internal/instruments"
	"github.com/mdruszcz/econ/internal/modeltypes"
	"github.com/mdruszcz/econ/internal/panel"
	"github.com/mdruszcz/econ/internal/params"
	"github.com/mdruszcz/econ/internal/registry"
	"github.com/mdruszcz/econ/internal/solver"
)

var tracer = otel.Tracer("github.com/mdruszcz/econ/internal/engine")

// levelVars are the variables whose absolute levels (not just impacts) ride
// along in every SimulationOutput.
var levelVars = []modeltypes.VarName{
	"GDP_", "C_", "IF_", "IH_", "IG_", "X_", "M_",
	"PC_", "W_", "L_", "U_", "UR_", "DR_", "BR_",
	"YDH_", "GDPN_", "K_", "PROD_", "ULC_",
	"GRECEIPTS_", "GEXPENSE_", "D_", "B_",
}

// KeyIndicators summarizes the four headline series the dashboard charts.
type KeyIndicators struct {
	Years         []modeltypes.Year
	GDPGrowth     []float64
	Inflation     []float64
	DeficitRatio  []float64
	Unemployment  []float64
}

// SimulationOutput is the complete result of one Simulate call.
type SimulationOutput struct {
	Name                string
	Years               []modeltypes.Year
	BaselineIndicators  KeyIndicators
	ScenarioIndicators  KeyIndicators
	Impacts             map[modeltypes.VarName]impact.Series
	Levels              map[modeltypes.VarName]map[modeltypes.Year]float64
	Convergence         []solver.YearConvergence
	Instruments         map[string]float64
}

// ValidationError wraps instrument validation failures so HTTP handlers can
// map it to a 422 without inspecting error text.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid instruments: %s", strings.Join(e.Errors, "; "))
}

// Engine is the long-lived, concurrency-safe simulation orchestrator: one
// Engine loads the baseline once and serves any number of concurrent
// Simulate calls, each against its own deep-copied panel.
type Engine struct {
	loader   *baseline.Loader
	scalars  params.Scalars
	registry *registry.Registry
	solver   *solver.Solver
	log      *zap.Logger

	baselinePanel *panel.Panel
}

// New builds an Engine reading baseline data from dataDir.
func New(dataDir string, log *zap.Logger) *Engine {
	reg := registry.New()
	loader := baseline.NewLoader(dataDir)
	scalars, err := loader.LoadScalars()
	if err != nil {
		scalars = params.Default()
	}
	return &Engine{
		loader:   loader,
		scalars:  scalars,
		registry: reg,
		solver:   solver.New(reg, scalars, log),
		log:      log,
	}
}

// LoadBaseline reads baseline data from disk and backfills any variables the
// solver needs but the data omits. Idempotent.
func (e *Engine) LoadBaseline() error {
	p, err := e.loader.LoadState()
	if err != nil {
		return err
	}
	baseline.EnsureVariables(p, e.scalars, e.registry)
	e.baselinePanel = p
	return nil
}

// Baseline returns the loaded baseline panel, loading it on first access.
func (e *Engine) Baseline() (*panel.Panel, error) {
	if e.baselinePanel == nil {
		if err := e.LoadBaseline(); err != nil {
			return nil, err
		}
	}
	return e.baselinePanel, nil
}

func (e *Engine) extractIndicators(p *panel.Panel, simYears []modeltypes.Year) KeyIndicators {
	ind := KeyIndicators{
		Years:        simYears,
		GDPGrowth:    make([]float64, len(simYears)),
		Inflation:    make([]float64, len(simYears)),
		DeficitRatio: make([]float64, len(simYears)),
		Unemployment: make([]float64, len(simYears)),
	}
	for i, t := range simYears {
		ind.GDPGrowth[i] = p.Grt("GDP_", t)
		ind.Inflation[i] = p.Grt("PC_", t)
		ind.DeficitRatio[i] = p.Get("DR_", t) * 100
		ind.Unemployment[i] = p.Get("UR_", t) * 100
	}
	return ind
}

// Simulate runs one scenario: merges instrumentValues over the defaults,
// validates, copies the baseline into baseline/scenario panels, applies
// instruments to the scenario, solves it year by year, and computes impacts
// against the untouched baseline copy.
func (e *Engine) Simulate(ctx context.Context, instrumentValues map[string]float64, name string) (SimulationOutput, error) {
	ctx, span := tracer.Start(ctx, "engine.Simulate", trace.WithAttributes(
		attribute.String("scenario.name", name),
	))
	defer span.End()

	chosen := instruments.Defaults()
	if len(instrumentValues) > 0 {
		if errs := instruments.Validate(instrumentValues); len(errs) > 0 {
			return SimulationOutput{}, &ValidationError{Errors: errs}
		}
		for k, v := range instrumentValues {
			chosen[k] = v
		}
	}

	basePanel, err := e.Baseline()
	if err != nil {
		return SimulationOutput{}, err
	}

	baselinePanel := basePanel.Copy()
	scenarioPanel := basePanel.Copy()
	simYears := scenarioPanel.SimYears()

	instruments.Apply(scenarioPanel, chosen, simYears)

	convergence := make([]solver.YearConvergence, 0, len(simYears))
	for _, t := range simYears {
		_, yearSpan := tracer.Start(ctx, "engine.SolveYear", trace.WithAttributes(
			attribute.Int("year", int(t)),
		))
		yc := e.solver.SolveYear(scenarioPanel, t)
		yearSpan.End()
		convergence = append(convergence, yc)
	}

	baselineInd := e.extractIndicators(baselinePanel, simYears)
	scenarioInd := e.extractIndicators(scenarioPanel, simYears)

	allVars := e.registry.AllVariables()
	impacts, err := impact.Compute(ctx, baselinePanel, scenarioPanel, simYears, allVars)
	if err != nil {
		return SimulationOutput{}, err
	}

	levels := scenarioPanel.ToDict(levelVars)

	if e.log != nil {
		e.log.Info("simulation complete",
			zap.String("scenario", name),
			zap.Int("years", len(simYears)),
			zap.Int("instruments", len(chosen)),
		)
	}

	return SimulationOutput{
		Name:               name,
		Years:              simYears,
		BaselineIndicators: baselineInd,
		ScenarioIndicators: scenarioInd,
		Impacts:            impacts,
		Levels:             levels,
		Convergence:        convergence,
		Instruments:        chosen,
	}, nil
}

// GetBaselineIndicators returns baseline key indicators without running a
// simulation.
func (e *Engine) GetBaselineIndicators() (KeyIndicators, error) {
	p, err := e.Baseline()
	if err != nil {
		return KeyIndicators{}, err
	}
	return e.extractIndicators(p, p.SimYears()), nil
}

// GetInstrumentSpecs returns the fixed instrument catalogue, catalogue order
// preserved.
func (e *Engine) GetInstrumentSpecs() []instruments.Spec {
	return append([]instruments.Spec(nil), instruments.Catalogue...)
}
