package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdruszcz/econ/internal/modeltypes"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e := New("../../testdata/baseline", nil)
	require.NoError(t, e.LoadBaseline())
	return e
}

func TestGetBaselineIndicatorsCoversEverySimYear(t *testing.T) {
	e := newTestEngine(t)
	ind, err := e.GetBaselineIndicators()
	require.NoError(t, err)
	assert.Len(t, ind.Years, 8)
	assert.Len(t, ind.GDPGrowth, 8)
}

func TestGetInstrumentSpecsReturnsFullCatalogueCopy(t *testing.T) {
	e := newTestEngine(t)
	specs := e.GetInstrumentSpecs()
	assert.Len(t, specs, 10)
}

func TestSimulateWithDefaultsConverges(t *testing.T) {
	e := newTestEngine(t)
	out, err := e.Simulate(context.Background(), nil, "Baseline roll-forward")
	require.NoError(t, err)

	assert.Equal(t, "Baseline roll-forward", out.Name)
	assert.Len(t, out.Convergence, len(out.Years))
	assert.NotEmpty(t, out.Impacts)
	assert.Contains(t, out.Levels, modeltypes.VarName("GDP_"))
}

func TestSimulateRejectsOutOfRangeInstruments(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.Simulate(context.Background(), map[string]float64{"VIG_X": -1_000_000}, "Bad scenario")
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Errors)
}

func TestSimulateLeavesBaselineUntouched(t *testing.T) {
	e := newTestEngine(t)
	before := e.baselinePanel.Get("GDP_", 2013)

	_, err := e.Simulate(context.Background(), map[string]float64{"VIG_X": 600.0}, "Higher investment grant")
	require.NoError(t, err)

	assert.Equal(t, before, e.baselinePanel.Get("GDP_", 2013), "Simulate must never mutate the stored baseline panel")
}
