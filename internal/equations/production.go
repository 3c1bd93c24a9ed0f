package equations

import (
	"math"

	"github.com/mdruszcz/econ/internal/modeltypes"
	"github.com/mdruszcz/econ/internal/panel"
	"github.com/mdruszcz/econ/internal/params"
)

// TFP is total factor productivity: TFP_t = TFP_{t-1} * (1 + g_tfp).
type TFP struct{}

func (TFP) Name() modeltypes.VarName            { return "TFP_" }
func (TFP) Type() modeltypes.EquationType        { return modeltypes.Technical }
func (TFP) DependsOn() []modeltypes.VarName      { return nil }
func (TFP) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	return p.Lag("TFP_", t, 1) * (1 + s.TFPGrowth)
}

// Capital is the accumulation identity: K_t = IF_t + (1 - delta) * K_{t-1}.
type Capital struct{}

func (Capital) Name() modeltypes.VarName       { return "K_" }
func (Capital) Type() modeltypes.EquationType   { return modeltypes.Identity }
func (Capital) DependsOn() []modeltypes.VarName { return []modeltypes.VarName{"IF_"} }
func (Capital) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	return p.Get("IF_", t) + (1-s.Delta)*p.Lag("K_", t, 1)
}

// Output is the Cobb-Douglas production function Y = TFP * K^(1-alpha) * LH^alpha.
type Output struct{}

func (Output) Name() modeltypes.VarName       { return "Y_" }
func (Output) Type() modeltypes.EquationType   { return modeltypes.Behavioral }
func (Output) DependsOn() []modeltypes.VarName { return []modeltypes.VarName{"TFP_", "K_", "LH_"} }
func (Output) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	tfp := p.Get("TFP_", t)
	k := p.Get("K_", t)
	lh := p.Get("LH_", t)
	if k <= 0 || lh <= 0 || tfp <= 0 {
		return p.Lag("Y_", t, 1)
	}
	return tfp * math.Pow(k, 1-s.Alpha) * math.Pow(lh, s.Alpha)
}

// PotentialOutput uses current capital, TFP, and structural labour (NAIRU-
// consistent employment) in place of the actual labour input.
type PotentialOutput struct{}

func (PotentialOutput) Name() modeltypes.VarName { return "YSTAR_" }
func (PotentialOutput) Type() modeltypes.EquationType {
	return modeltypes.Technical
}
func (PotentialOutput) DependsOn() []modeltypes.VarName {
	return []modeltypes.VarName{"TFP_", "K_", "NAT_", "NG_"}
}
func (PotentialOutput) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	tfp := p.Get("TFP_", t)
	k := p.Get("K_", t)
	nat := p.Get("NAT_", t)
	ng := p.Get("NG_", t)
	lStar := (1-s.Nairu)*nat - ng
	l := p.Get("L_", t)
	if l < 1 {
		l = 1
	}
	lhStar := lStar * p.Get("LH_", t) / l
	if k <= 0 || lhStar <= 0 {
		return p.Lag("YSTAR_", t, 1)
	}
	return tfp * math.Pow(k, 1-s.Alpha) * math.Pow(lhStar, s.Alpha)
}

// OutputGap is the identity YGAP = (Y - YSTAR) / YSTAR.
type OutputGap struct{}

func (OutputGap) Name() modeltypes.VarName       { return "YGAP_" }
func (OutputGap) Type() modeltypes.EquationType   { return modeltypes.Identity }
func (OutputGap) DependsOn() []modeltypes.VarName { return []modeltypes.VarName{"Y_", "YSTAR_"} }
func (OutputGap) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	ystar := p.Get("YSTAR_", t)
	if ystar == 0 {
		return 0.0
	}
	return (p.Get("Y_", t) - ystar) / ystar
}

// CapacityUtilization is ZKF = Y / YSTAR, bounded to [0.80, 1.10].
type CapacityUtilization struct{}

func (CapacityUtilization) Name() modeltypes.VarName { return "ZKF_" }
func (CapacityUtilization) Type() modeltypes.EquationType {
	return modeltypes.Identity
}
func (CapacityUtilization) DependsOn() []modeltypes.VarName {
	return []modeltypes.VarName{"Y_", "YSTAR_"}
}
func (CapacityUtilization) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	ystar := p.Get("YSTAR_", t)
	if ystar == 0 {
		return 1.0
	}
	raw := p.Get("Y_", t) / ystar
	if raw < 0.80 {
		return 0.80
	}
	if raw > 1.10 {
		return 1.10
	}
	return raw
}

// ProductionEquations lists the production block in registration order.
var ProductionEquations = []Equation{
	TFP{},
	Capital{},
	Output{},
	PotentialOutput{},
	OutputGap{},
	CapacityUtilization{},
}
