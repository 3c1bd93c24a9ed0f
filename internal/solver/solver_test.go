package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdruszcz/econ/internal/baseline"
	"github.com/mdruszcz/econ/internal/modeltypes"
	"github.com/mdruszcz/econ/internal/params"
	"github.com/mdruszcz/econ/internal/registry"
)

func loadFixturePanel(t *testing.T) *baseline.Loader {
	t.Helper()
	return baseline.NewLoader("../../testdata/baseline")
}

func TestSolveYearReturnsAStatusWithinIterationCap(t *testing.T) {
	loader := loadFixturePanel(t)
	p, err := loader.LoadState()
	require.NoError(t, err)

	reg := registry.New()
	scalars := params.Default()
	baseline.EnsureVariables(p, scalars, reg)

	s := New(reg, scalars, nil)
	conv := s.SolveYear(p, modeltypes.Year(2013))

	assert.Greater(t, conv.Iterations, 0)
	assert.LessOrEqual(t, conv.Iterations, DefaultConfig().MaxIter)
	assert.Contains(t, []modeltypes.ConvergenceStatus{modeltypes.Converged, modeltypes.MaxIterations}, conv.Status)
}

func TestSolveYearWritesEveryRegisteredVariable(t *testing.T) {
	loader := loadFixturePanel(t)
	p, err := loader.LoadState()
	require.NoError(t, err)

	reg := registry.New()
	scalars := params.Default()
	baseline.EnsureVariables(p, scalars, reg)

	s := New(reg, scalars, nil)
	s.SolveYear(p, modeltypes.Year(2013))

	for _, v := range reg.AllVariables() {
		assert.NotEqual(t, 0.0, p.Get(v, modeltypes.Year(2013)), "expected %s to be written by the solver", v)
	}
}

func TestSolveAdvancesThroughMultipleYearsInOrder(t *testing.T) {
	loader := loadFixturePanel(t)
	p, err := loader.LoadState()
	require.NoError(t, err)

	reg := registry.New()
	scalars := params.Default()
	baseline.EnsureVariables(p, scalars, reg)

	s := New(reg, scalars, nil)
	simYears := p.SimYears()
	results := s.Solve(p, simYears)

	require.Len(t, results, len(simYears))
	for i, r := range results {
		assert.Equal(t, simYears[i], r.Year)
	}
}

func TestTighterToleranceNeverConvergesFaster(t *testing.T) {
	loader := loadFixturePanel(t)
	p1, err := loader.LoadState()
	require.NoError(t, err)
	p2, err := loader.LoadState()
	require.NoError(t, err)

	reg := registry.New()
	scalars := params.Default()
	baseline.EnsureVariables(p1, scalars, reg)
	baseline.EnsureVariables(p2, scalars, reg)

	loose := NewWithConfig(reg, scalars, Config{Relaxation: 0.2, Eps: 0.01, MaxIter: 1000}, nil)
	tight := NewWithConfig(reg, scalars, Config{Relaxation: 0.2, Eps: 1e-8, MaxIter: 1000}, nil)

	loose.SolveYear(p1, modeltypes.Year(2013))
	convLoose := loose.SolveYear(p1, modeltypes.Year(2014))
	tight.SolveYear(p2, modeltypes.Year(2013))
	convTight := tight.SolveYear(p2, modeltypes.Year(2014))

	assert.LessOrEqual(t, convLoose.Iterations, convTight.Iterations)
}
