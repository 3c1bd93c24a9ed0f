package instruments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdruszcz/econ/internal/modeltypes"
	"github.com/mdruszcz/econ/internal/panel"
)

func TestCatalogueHasTenInstruments(t *testing.T) {
	assert.Len(t, Catalogue, 10)
}

func TestDefaultsMatchCatalogue(t *testing.T) {
	defaults := Defaults()
	require.Len(t, defaults, len(Catalogue))
	for _, spec := range Catalogue {
		assert.Equal(t, spec.Default, defaults[spec.Key])
	}
}

func TestValidateUnknownInstrument(t *testing.T) {
	errs := Validate(map[string]float64{"NOT_REAL": 1.0})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "unknown instrument")
}

func TestValidateOutOfRange(t *testing.T) {
	errs := Validate(map[string]float64{"VIG_X": 1_000_000})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "out of range")
}

func TestValidateAcceptsDefaults(t *testing.T) {
	errs := Validate(Defaults())
	assert.Empty(t, errs)
}

func TestApplyWritesEveryYearAndDerivedMappings(t *testing.T) {
	yrs := []modeltypes.Year{2013, 2014, 2015}
	p := panel.New(append([]modeltypes.Year{2012}, yrs...))

	Apply(p, map[string]float64{
		"ITPC0R_X": 23.0,
		"CSSFR_X":  32.0,
		"CSSHR_X":  15.0,
		"VIG_X":    500.0,
	}, yrs)

	for _, yr := range yrs {
		assert.Equal(t, 23.0, p.Get("ITPC0R_", yr), "derived VAT mapping must apply every simulated year")
		assert.InDelta(t, 0.32, p.Get("CSSFR_", yr), 1e-9)
		assert.InDelta(t, 0.15, p.Get("CSSHR_", yr), 1e-9)
		assert.Equal(t, 500.0, p.Get("VIG_X", yr))
	}

	assert.Equal(t, 0.0, p.Get("ITPC0R_", 2012), "the mapping must not leak into years outside simYears")
}
