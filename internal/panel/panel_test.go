package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdruszcz/econ/internal/modeltypes"
)

func years(start, end int) []modeltypes.Year {
	out := make([]modeltypes.Year, 0, end-start+1)
	for y := start; y <= end; y++ {
		out = append(out, modeltypes.Year(y))
	}
	return out
}

func TestSetGet(t *testing.T) {
	p := New(years(2012, 2015))
	p.Set("GDP_", 2013, 100.0)
	assert.Equal(t, 100.0, p.Get("GDP_", 2013))
	assert.Equal(t, 0.0, p.Get("GDP_", 2014))
	assert.Equal(t, 0.0, p.Get("MISSING_", 2013))
}

func TestLag(t *testing.T) {
	p := New(years(2012, 2015))
	p.Set("GDP_", 2012, 100.0)
	p.Set("GDP_", 2013, 110.0)
	assert.Equal(t, 100.0, p.Lag("GDP_", 2013, 1))
	assert.Equal(t, 110.0, p.Lag("GDP_", 2015, 2))
}

func TestDln(t *testing.T) {
	p := New(years(2012, 2013))
	p.Set("GDP_", 2012, 100.0)
	p.Set("GDP_", 2013, 110.0)
	dln := p.Dln("GDP_", 2013)
	assert.InDelta(t, 0.0953, dln, 0.001)

	p.Set("GDP_", 2012, -5.0)
	assert.Equal(t, 0.0, p.Dln("GDP_", 2013))
}

func TestGrt(t *testing.T) {
	p := New(years(2012, 2013))
	p.Set("GDP_", 2012, 100.0)
	p.Set("GDP_", 2013, 105.0)
	assert.InDelta(t, 5.0, p.Grt("GDP_", 2013), 1e-9)

	p2 := New(years(2012, 2013))
	assert.Equal(t, 0.0, p2.Grt("GDP_", 2013))
}

func TestHasYearAndMavg(t *testing.T) {
	p := New(years(2012, 2016))
	for i, yr := range years(2012, 2016) {
		p.Set("GDP_", yr, float64(100+i*10))
	}
	assert.True(t, p.HasYear(2014))
	assert.False(t, p.HasYear(2011))

	avg := p.Mavg("GDP_", 2016, 3)
	assert.InDelta(t, (120.0+130.0+140.0)/3.0, avg, 1e-9)

	avg2 := p.Mavg("GDP_", 2013, 5)
	assert.InDelta(t, (100.0+110.0)/2.0, avg2, 1e-9)
}

func TestAddAndHas(t *testing.T) {
	p := New(years(2012, 2013))
	assert.False(t, p.Has("NEW_"))
	p.Add("NEW_", 5.0)
	assert.True(t, p.Has("NEW_"))
	assert.Equal(t, 5.0, p.Get("NEW_", 2012))
	assert.Equal(t, 5.0, p.Get("NEW_", 2013))

	p.Add("NEW_", 9.0)
	assert.Equal(t, 5.0, p.Get("NEW_", 2012), "Add is a no-op once the variable exists")
}

func TestCopyIsIndependent(t *testing.T) {
	p := New(years(2012, 2013))
	p.Set("GDP_", 2012, 100.0)
	clone := p.Copy()
	clone.Set("GDP_", 2012, 999.0)
	assert.Equal(t, 100.0, p.Get("GDP_", 2012))
	assert.Equal(t, 999.0, clone.Get("GDP_", 2012))
}

func TestToDict(t *testing.T) {
	p := New(years(2012, 2013))
	p.Set("GDP_", 2012, 1.0)
	p.Set("GDP_", 2013, 2.0)
	p.Add("PC_", 0.0)

	dict := p.ToDict([]modeltypes.VarName{"GDP_"})
	require.Contains(t, dict, modeltypes.VarName("GDP_"))
	assert.NotContains(t, dict, modeltypes.VarName("PC_"))
	assert.Equal(t, 1.0, dict["GDP_"][2012])
}

func TestSimYearsExcludesFirst(t *testing.T) {
	p := New(years(2012, 2015))
	sim := p.SimYears()
	require.Len(t, sim, 3)
	assert.Equal(t, modeltypes.Year(2013), sim[0])
}
