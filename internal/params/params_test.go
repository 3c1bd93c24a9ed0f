package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultMatchesCalibration(t *testing.T) {
	s := Default()
	assert.Equal(t, 0.675, s.Alpha)
	assert.Equal(t, 0.03, s.RNominal)
	assert.Equal(t, 387.0, s.GDPBase)
}

func TestWithOverridesMatchesSnakeCaseKeys(t *testing.T) {
	s := Default()
	overridden := s.WithOverrides(map[string]float64{
		"alpha":      0.7,
		"r_nominal":  0.05,
		"tfp_growth": 0.01,
		"not_a_real_field": 1.0,
	})

	assert.Equal(t, 0.7, overridden.Alpha)
	assert.Equal(t, 0.05, overridden.RNominal)
	assert.Equal(t, 0.01, overridden.TFPGrowth)

	assert.Equal(t, 0.675, s.Alpha, "WithOverrides must not mutate the receiver")
}

func TestWithOverridesEmptyIsNoop(t *testing.T) {
	s := Default()
	assert.Equal(t, s, s.WithOverrides(nil))
	assert.Equal(t, s, s.WithOverrides(map[string]float64{}))
}
