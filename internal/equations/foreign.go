package equations

import (
	"github.com/mdruszcz/econ/internal/modeltypes"
	"github.com/mdruszcz/econ/internal/panel"
	"github.com/mdruszcz/econ/internal/params"
)

// NominalExports is the identity XN = X * PX.
type NominalExports struct{}

func (NominalExports) Name() modeltypes.VarName { return "XN_" }
func (NominalExports) Type() modeltypes.EquationType {
	return modeltypes.Identity
}
func (NominalExports) DependsOn() []modeltypes.VarName {
	return []modeltypes.VarName{"X_", "PX_"}
}
func (NominalExports) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	return p.Get("X_", t) * p.Get("PX_", t)
}

// NominalImports is the identity MN = M * PM.
type NominalImports struct{}

func (NominalImports) Name() modeltypes.VarName { return "MN_" }
func (NominalImports) Type() modeltypes.EquationType {
	return modeltypes.Identity
}
func (NominalImports) DependsOn() []modeltypes.VarName {
	return []modeltypes.VarName{"M_", "PM_"}
}
func (NominalImports) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	return p.Get("M_", t) * p.Get("PM_", t)
}

// TradeBalance is the identity TB = XN - MN.
type TradeBalance struct{}

func (TradeBalance) Name() modeltypes.VarName { return "TB_" }
func (TradeBalance) Type() modeltypes.EquationType {
	return modeltypes.Identity
}
func (TradeBalance) DependsOn() []modeltypes.VarName {
	return []modeltypes.VarName{"XN_", "MN_"}
}
func (TradeBalance) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	return p.Get("XN_", t) - p.Get("MN_", t)
}

// TradeBalanceRatio is TBR = TB / GDPN.
type TradeBalanceRatio struct{}

func (TradeBalanceRatio) Name() modeltypes.VarName { return "TBR_" }
func (TradeBalanceRatio) Type() modeltypes.EquationType {
	return modeltypes.Identity
}
func (TradeBalanceRatio) DependsOn() []modeltypes.VarName {
	return []modeltypes.VarName{"TB_", "GDPN_"}
}
func (TradeBalanceRatio) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	gdpn := p.Get("GDPN_", t)
	if gdpn == 0 {
		return 0.0
	}
	return p.Get("TB_", t) / gdpn
}

// ForeignEquations lists the foreign-trade block in registration order.
var ForeignEquations = []Equation{
	NominalExports{},
	NominalImports{},
	TradeBalance{},
	TradeBalanceRatio{},
}
