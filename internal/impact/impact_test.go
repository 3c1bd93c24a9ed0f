package impact

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdruszcz/econ/internal/modeltypes"
	"github.com/mdruszcz/econ/internal/panel"
)

func TestComputePercentDeviation(t *testing.T) {
	yrs := []modeltypes.Year{2013, 2014}
	base := panel.New(yrs)
	scen := panel.New(yrs)
	base.Set("GDP_", 2013, 100.0)
	scen.Set("GDP_", 2013, 110.0)

	out, err := Compute(context.Background(), base, scen, yrs, []modeltypes.VarName{"GDP_"})
	require.NoError(t, err)
	assert.InDelta(t, 10.0, out["GDP_"].Values[2013], 1e-9)
}

func TestComputeAbsoluteVarsGetPercentagePointDiff(t *testing.T) {
	yrs := []modeltypes.Year{2013}
	base := panel.New(yrs)
	scen := panel.New(yrs)
	base.Set("UR_", 2013, 0.05)
	scen.Set("UR_", 2013, 0.07)

	out, err := Compute(context.Background(), base, scen, yrs, []modeltypes.VarName{"UR_"})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, out["UR_"].Values[2013], 1e-9)
}

func TestComputeZeroBaselineFallsBackToZero(t *testing.T) {
	yrs := []modeltypes.Year{2013}
	base := panel.New(yrs)
	scen := panel.New(yrs)
	scen.Set("TB_", 2013, 5.0)

	out, err := Compute(context.Background(), base, scen, yrs, []modeltypes.VarName{"TB_"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, out["TB_"].Values[2013])
}

func TestComputePercentDeviationPreservesSignForNegativeBaseline(t *testing.T) {
	yrs := []modeltypes.Year{2013}
	base := panel.New(yrs)
	scen := panel.New(yrs)
	base.Set("D_", 2013, -10.0)
	scen.Set("D_", 2013, -12.0)

	out, err := Compute(context.Background(), base, scen, yrs, []modeltypes.VarName{"D_"})
	require.NoError(t, err)
	assert.InDelta(t, 20.0, out["D_"].Values[2013], 1e-9, "a deeper deficit must report as a positive deviation, matching the spec/original formula's signed division")
}

func TestComputeCoversEveryRequestedVariable(t *testing.T) {
	yrs := []modeltypes.Year{2013, 2014}
	base := panel.New(yrs)
	scen := panel.New(yrs)
	vars := []modeltypes.VarName{"GDP_", "C_", "UR_", "DR_"}

	out, err := Compute(context.Background(), base, scen, yrs, vars)
	require.NoError(t, err)
	assert.Len(t, out, len(vars))
	for _, v := range vars {
		assert.Contains(t, out, v)
		assert.Len(t, out[v].Values, len(yrs))
	}
}
