package baseline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdruszcz/econ/internal/modeltypes"
	"github.com/mdruszcz/econ/internal/panel"
	"github.com/mdruszcz/econ/internal/params"
	"github.com/mdruszcz/econ/internal/registry"
)

func TestLoadStateParsesEveryVariableAndYear(t *testing.T) {
	l := NewLoader("../../testdata/baseline")
	p, err := l.LoadState()
	require.NoError(t, err)

	assert.True(t, p.HasYear(2012))
	assert.True(t, p.HasYear(2020))
	assert.False(t, p.HasYear(2021))
	assert.Equal(t, 387.00, p.Get("GDP_", 2012))
	assert.Equal(t, 432.04, p.Get("GDP_", 2020))
}

func TestLoadScalarsFallsBackToDefaultsWhenNoFile(t *testing.T) {
	l := NewLoader("../../testdata/baseline")
	s, err := l.LoadScalars()
	require.NoError(t, err)
	assert.Equal(t, params.Default(), s)
}

func TestEnsureVariablesBackfillsDerivedVariablesOnlyWhereZero(t *testing.T) {
	l := NewLoader("../../testdata/baseline")
	p, err := l.LoadState()
	require.NoError(t, err)

	reg := registry.New()
	scalars := params.Default()
	EnsureVariables(p, scalars, reg)

	assert.Equal(t, 387.00, p.Get("Y_", 2012), "Y_ is already present in the fixture and must not be overwritten")

	for _, v := range reg.AllVariables() {
		assert.True(t, p.Has(v), "expected registry variable %s to be present after EnsureVariables", v)
	}
}

func TestEnsureVariablesProfitFallsBackWhenCapitalIsZero(t *testing.T) {
	p := panel.New([]modeltypes.Year{2012})
	reg := registry.New()
	scalars := params.Default()
	EnsureVariables(p, scalars, reg)

	assert.Equal(t, 0.06, p.Get("PROFIT_", 2012))
}
