package equations

import (
	"github.com/mdruszcz/econ/internal/modeltypes"
	"github.com/mdruszcz/econ/internal/panel"
	"github.com/mdruszcz/econ/internal/params"
)

// GovernmentReceipts sums income tax, VAT, employer/employee SSC, and a
// flat 12%-of-nominal-GDP residual for every other revenue source. The
// 0.25 income-tax rate and 0.12 residual share are carried over from the
// original calibration as magic numbers rather than promoted to named
// scalars (see DESIGN.md).
type GovernmentReceipts struct{}

func (GovernmentReceipts) Name() modeltypes.VarName { return "GRECEIPTS_" }
func (GovernmentReceipts) Type() modeltypes.EquationType {
	return modeltypes.Identity
}
func (GovernmentReceipts) DependsOn() []modeltypes.VarName {
	return []modeltypes.VarName{"W_", "L_", "WG_", "NG_", "C_", "PC_", "ITPC0R_", "CSSFR_", "CSSHR_", "GDPN_"}
}
func (GovernmentReceipts) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	privateWB := p.Get("W_", t) * p.Get("L_", t) / 1000.0
	publicWB := p.Get("WG_", t) * p.Get("NG_", t) / 1000.0
	totalWB := privateWB + publicWB

	cssfr := s.CSSEmpRate
	if p.Has("CSSFR_") {
		cssfr = p.Get("CSSFR_", t)
	}
	sscEmp := totalWB * cssfr

	csshr := s.CSSHouseRate
	if p.Has("CSSHR_") {
		csshr = p.Get("CSSHR_", t)
	}
	sscHouse := totalWB * csshr

	dthX := 0.0
	if p.Has("DTH_X") {
		dthX = p.Get("DTH_X", t)
	}
	const incomeTaxRate = 0.25
	incomeTax := totalWB*(1-csshr)*incomeTaxRate + dthX/1000.0

	vatRate := s.VATRate * 100
	if p.Has("ITPC0R_") {
		vatRate = p.Get("ITPC0R_", t)
	}
	consumptionNom := p.Get("C_", t) * p.Get("PC_", t)
	vatRevenue := consumptionNom * (vatRate / 100.0) / (1 + vatRate/100.0)

	const otherRevenueShare = 0.12
	otherRevenue := p.Get("GDPN_", t) * otherRevenueShare

	return incomeTax + vatRevenue + sscEmp + sscHouse + otherRevenue
}

// GovernmentExpenditure sums public consumption, public investment,
// transfers, debt interest, and a flat 8%-of-nominal-GDP residual. The
// 0.08 residual share is a magic number carried over unchanged.
type GovernmentExpenditure struct{}

func (GovernmentExpenditure) Name() modeltypes.VarName { return "GEXPENSE_" }
func (GovernmentExpenditure) Type() modeltypes.EquationType {
	return modeltypes.Identity
}
func (GovernmentExpenditure) DependsOn() []modeltypes.VarName {
	return []modeltypes.VarName{"CG_", "PC_", "IG_", "PIG_", "TGH_", "B_", "GDPN_"}
}
func (GovernmentExpenditure) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	cgNom := p.Get("CG_", t) * p.Get("PC_", t)
	igNom := p.Get("IG_", t) * p.Get("PIG_", t)
	tgh := p.Get("TGH_", t)

	b := p.Get("GDPN_", t) * s.DebtGDP
	if p.Has("B_") {
		b = p.Get("B_", t)
	}
	interest := b * s.DebtRate

	const otherExpenseShare = 0.08
	otherExp := p.Get("GDPN_", t) * otherExpenseShare

	return cgNom + igNom + tgh + interest + otherExp
}

// Deficit is the identity D = GRECEIPTS - GEXPENSE (negative = deficit).
type Deficit struct{}

func (Deficit) Name() modeltypes.VarName { return "D_" }
func (Deficit) Type() modeltypes.EquationType {
	return modeltypes.Identity
}
func (Deficit) DependsOn() []modeltypes.VarName {
	return []modeltypes.VarName{"GRECEIPTS_", "GEXPENSE_"}
}
func (Deficit) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	return p.Get("GRECEIPTS_", t) - p.Get("GEXPENSE_", t)
}

// Debt accumulates: B = B[-1] - D (a deficit adds to outstanding debt).
type Debt struct{}

func (Debt) Name() modeltypes.VarName       { return "B_" }
func (Debt) Type() modeltypes.EquationType   { return modeltypes.Identity }
func (Debt) DependsOn() []modeltypes.VarName { return []modeltypes.VarName{"D_"} }
func (Debt) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	return p.Lag("B_", t, 1) - p.Get("D_", t)
}

// DeficitRatio is DR = D / GDPN.
type DeficitRatio struct{}

func (DeficitRatio) Name() modeltypes.VarName { return "DR_" }
func (DeficitRatio) Type() modeltypes.EquationType {
	return modeltypes.Identity
}
func (DeficitRatio) DependsOn() []modeltypes.VarName {
	return []modeltypes.VarName{"D_", "GDPN_"}
}
func (DeficitRatio) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	gdpn := p.Get("GDPN_", t)
	if gdpn == 0 {
		return 0.0
	}
	return p.Get("D_", t) / gdpn
}

// DebtRatio is BR = B / GDPN.
type DebtRatio struct{}

func (DebtRatio) Name() modeltypes.VarName { return "BR_" }
func (DebtRatio) Type() modeltypes.EquationType {
	return modeltypes.Identity
}
func (DebtRatio) DependsOn() []modeltypes.VarName {
	return []modeltypes.VarName{"B_", "GDPN_"}
}
func (DebtRatio) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	gdpn := p.Get("GDPN_", t)
	if gdpn == 0 {
		return p.Lag("BR_", t, 1)
	}
	return p.Get("B_", t) / gdpn
}

// PublicFinanceEquations lists the fiscal block in registration order.
var PublicFinanceEquations = []Equation{
	GovernmentReceipts{},
	GovernmentExpenditure{},
	Deficit{},
	Debt{},
	DeficitRatio{},
	DebtRatio{},
}
