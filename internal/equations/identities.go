package equations

import (
	"github.com/mdruszcz/econ/internal/modeltypes"
	"github.com/mdruszcz/econ/internal/panel"
	"github.com/mdruszcz/econ/internal/params"
)

// PublicInvestment trends with TFP growth and absorbs the VIG_X instrument
// (millions EUR) converted to billions: IG = IG[-1]*(1+g) + VIG_X/1000.
type PublicInvestment struct{}

func (PublicInvestment) Name() modeltypes.VarName       { return "IG_" }
func (PublicInvestment) Type() modeltypes.EquationType   { return modeltypes.Technical }
func (PublicInvestment) DependsOn() []modeltypes.VarName { return nil }
func (PublicInvestment) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	igPrev := p.Lag("IG_", t, 1)
	trend := igPrev * (1 + s.TFPGrowth)
	vigX := 0.0
	if p.Has("VIG_X") {
		vigX = p.Get("VIG_X", t)
	}
	return trend + vigX/1000.0
}

// PublicConsumption is the public wage bill plus a trending non-wage
// residual: CG = WG*NG/1000 + (CG[-1] - WG[-1]*NG[-1]/1000)*(1+g).
type PublicConsumption struct{}

func (PublicConsumption) Name() modeltypes.VarName { return "CG_" }
func (PublicConsumption) Type() modeltypes.EquationType {
	return modeltypes.Identity
}
func (PublicConsumption) DependsOn() []modeltypes.VarName {
	return []modeltypes.VarName{"WG_", "NG_"}
}
func (PublicConsumption) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	wg := p.Get("WG_", t)
	ng := p.Get("NG_", t)
	cgPrev := p.Lag("CG_", t, 1)
	wg1 := p.Lag("WG_", t, 1)
	ng1 := p.Lag("NG_", t, 1)
	wageBill := wg * ng / 1000.0
	wageBill1 := wg1 * ng1 / 1000.0
	nonWage := cgPrev - wageBill1
	nonWageTrend := nonWage * (1 + s.TFPGrowth)
	return wageBill + nonWageTrend
}

// StockChange (inventories) is held stable at its lagged value.
type StockChange struct{}

func (StockChange) Name() modeltypes.VarName       { return "DS_" }
func (StockChange) Type() modeltypes.EquationType   { return modeltypes.Technical }
func (StockChange) DependsOn() []modeltypes.VarName { return []modeltypes.VarName{"Y_"} }
func (StockChange) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	return p.Lag("DS_", t, 1)
}

// DomesticDemand is the identity DD = C + IF + IH + IG + CG + DS.
type DomesticDemand struct{}

func (DomesticDemand) Name() modeltypes.VarName { return "DD_" }
func (DomesticDemand) Type() modeltypes.EquationType {
	return modeltypes.Identity
}
func (DomesticDemand) DependsOn() []modeltypes.VarName {
	return []modeltypes.VarName{"C_", "IF_", "IH_", "IG_", "CG_", "DS_"}
}
func (DomesticDemand) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	return p.Get("C_", t) + p.Get("IF_", t) + p.Get("IH_", t) + p.Get("IG_", t) + p.Get("CG_", t) + p.Get("DS_", t)
}

// GDP is the expenditure-side identity GDP = DD + X - M.
type GDP struct{}

func (GDP) Name() modeltypes.VarName       { return "GDP_" }
func (GDP) Type() modeltypes.EquationType   { return modeltypes.Identity }
func (GDP) DependsOn() []modeltypes.VarName { return []modeltypes.VarName{"DD_", "X_", "M_"} }
func (GDP) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	return p.Get("DD_", t) + p.Get("X_", t) - p.Get("M_", t)
}

// GDPDeflator is the nominal/real GDP weighted-average deflator.
type GDPDeflator struct{}

func (GDPDeflator) Name() modeltypes.VarName { return "PGDP_" }
func (GDPDeflator) Type() modeltypes.EquationType {
	return modeltypes.Identity
}
func (GDPDeflator) DependsOn() []modeltypes.VarName {
	return []modeltypes.VarName{"PC_", "PIF_", "PIG_", "PIH_", "PX_", "PM_", "C_", "IF_", "IG_", "IH_", "X_", "M_", "CG_"}
}
func (GDPDeflator) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	gdp := p.Get("GDP_", t)
	if gdp == 0 {
		return p.Lag("PGDP_", t, 1)
	}
	nom := p.Get("C_", t)*p.Get("PC_", t) +
		p.Get("IF_", t)*p.Get("PIF_", t) +
		p.Get("IH_", t)*p.Get("PIH_", t) +
		p.Get("IG_", t)*p.Get("PIG_", t) +
		p.Get("CG_", t)*p.Get("PC_", t) +
		p.Get("X_", t)*p.Get("PX_", t) -
		p.Get("M_", t)*p.Get("PM_", t) +
		p.Get("DS_", t)*p.Get("PC_", t)
	return nom / gdp
}

// NominalGDP is the identity GDPN = GDP * PGDP.
type NominalGDP struct{}

func (NominalGDP) Name() modeltypes.VarName { return "GDPN_" }
func (NominalGDP) Type() modeltypes.EquationType {
	return modeltypes.Identity
}
func (NominalGDP) DependsOn() []modeltypes.VarName {
	return []modeltypes.VarName{"GDP_", "PGDP_"}
}
func (NominalGDP) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	return p.Get("GDP_", t) * p.Get("PGDP_", t)
}

// TotalInvestment is the identity I = IF + IH + IG.
type TotalInvestment struct{}

func (TotalInvestment) Name() modeltypes.VarName { return "I_" }
func (TotalInvestment) Type() modeltypes.EquationType {
	return modeltypes.Identity
}
func (TotalInvestment) DependsOn() []modeltypes.VarName {
	return []modeltypes.VarName{"IF_", "IH_", "IG_"}
}
func (TotalInvestment) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	return p.Get("IF_", t) + p.Get("IH_", t) + p.Get("IG_", t)
}

// Profit is the identity PROFIT = (Y - W*L/1000) / (PC*K).
type Profit struct{}

func (Profit) Name() modeltypes.VarName { return "PROFIT_" }
func (Profit) Type() modeltypes.EquationType {
	return modeltypes.Identity
}
func (Profit) DependsOn() []modeltypes.VarName {
	return []modeltypes.VarName{"Y_", "W_", "L_", "PC_", "K_"}
}
func (Profit) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	y := p.Get("Y_", t)
	w := p.Get("W_", t)
	l := p.Get("L_", t)
	pc := p.Get("PC_", t)
	k := p.Get("K_", t)
	if pc*k == 0 {
		return p.Lag("PROFIT_", t, 1)
	}
	return (y - w*l/1000.0) / (pc * k)
}

// RealInterestRate is the Fisher identity RREAL = R_NOM - inflation.
type RealInterestRate struct{}

func (RealInterestRate) Name() modeltypes.VarName { return "RREAL_" }
func (RealInterestRate) Type() modeltypes.EquationType {
	return modeltypes.Identity
}
func (RealInterestRate) DependsOn() []modeltypes.VarName {
	return []modeltypes.VarName{"RNOM_", "PC_"}
}
func (RealInterestRate) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	rnom := s.RNominal
	if p.Has("RNOM_") {
		rnom = p.Get("RNOM_", t)
	}
	pc := p.Get("PC_", t)
	pc1 := p.Lag("PC_", t, 1)
	infl := 0.0
	if pc1 > 0 {
		infl = (pc - pc1) / pc1
	}
	return rnom - infl
}

// MortgageRate adds a fixed 1.5pp spread over the nominal rate.
type MortgageRate struct{}

func (MortgageRate) Name() modeltypes.VarName       { return "RMORT_" }
func (MortgageRate) Type() modeltypes.EquationType   { return modeltypes.Technical }
func (MortgageRate) DependsOn() []modeltypes.VarName { return []modeltypes.VarName{"RNOM_"} }
func (MortgageRate) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	rnom := s.RNominal
	if p.Has("RNOM_") {
		rnom = p.Get("RNOM_", t)
	}
	return rnom + 0.015
}

// LabourForce grows at the exogenous labour force growth rate.
type LabourForce struct{}

func (LabourForce) Name() modeltypes.VarName       { return "NAT_" }
func (LabourForce) Type() modeltypes.EquationType   { return modeltypes.Technical }
func (LabourForce) DependsOn() []modeltypes.VarName { return nil }
func (LabourForce) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	return p.Lag("NAT_", t, 1) * (1 + s.NatGrowth)
}

// PublicEmployment is NG = NG[-1] + NG_X (thousands of persons).
type PublicEmployment struct{}

func (PublicEmployment) Name() modeltypes.VarName       { return "NG_" }
func (PublicEmployment) Type() modeltypes.EquationType   { return modeltypes.Technical }
func (PublicEmployment) DependsOn() []modeltypes.VarName { return nil }
func (PublicEmployment) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	ngPrev := p.Lag("NG_", t, 1)
	ngX := 0.0
	if p.Has("NG_X") {
		ngX = p.Get("NG_X", t)
	}
	return ngPrev + ngX
}

// DisposableIncome nets SSC and a flat income-tax rate off the combined
// private/public wage bill and adds transfers.
type DisposableIncome struct{}

func (DisposableIncome) Name() modeltypes.VarName { return "YDH_" }
func (DisposableIncome) Type() modeltypes.EquationType {
	return modeltypes.Identity
}
func (DisposableIncome) DependsOn() []modeltypes.VarName {
	return []modeltypes.VarName{"W_", "L_", "WG_", "NG_", "PC_", "DTH_", "TGH_"}
}
func (DisposableIncome) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	privateWages := p.Get("W_", t) * p.Get("L_", t) / 1000.0
	publicWages := p.Get("WG_", t) * p.Get("NG_", t) / 1000.0
	totalWages := privateWages + publicWages

	cssHouse := s.CSSHouseRate
	if p.Has("CSSHR_") {
		cssHouse = p.Get("CSSHR_", t)
	}
	netWages := totalWages * (1 - cssHouse)

	dthX := 0.0
	if p.Has("DTH_X") {
		dthX = p.Get("DTH_X", t)
	}
	const baseTaxRate = 0.25
	tax := netWages*baseTaxRate + dthX/1000.0

	tgh := 0.0
	if p.Has("TGH_") {
		tgh = p.Get("TGH_", t)
	}

	return netWages - tax + tgh
}

// Transfers grows with CPI plus the TGH_X growth-rate shock.
type Transfers struct{}

func (Transfers) Name() modeltypes.VarName       { return "TGH_" }
func (Transfers) Type() modeltypes.EquationType   { return modeltypes.Technical }
func (Transfers) DependsOn() []modeltypes.VarName { return []modeltypes.VarName{"PC_"} }
func (Transfers) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	tghPrev := p.Lag("TGH_", t, 1)
	dlnPC := p.Dln("PC_", t)
	tghX := 0.0
	if p.Has("TGH_X") {
		tghX = p.Get("TGH_X", t)
	}
	return tghPrev * safeExp(dlnPC) * (1 + tghX/100.0)
}

// VATRate mirrors the ITPC0R_X instrument, or the baseline rate when unset.
type VATRate struct{}

func (VATRate) Name() modeltypes.VarName       { return "ITPC0R_" }
func (VATRate) Type() modeltypes.EquationType   { return modeltypes.Technical }
func (VATRate) DependsOn() []modeltypes.VarName { return nil }
func (VATRate) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	if p.Has("ITPC0R_X") {
		return p.Get("ITPC0R_X", t)
	}
	return s.VATRate * 100
}

// EmployerSSCRate mirrors the CSSFR_X instrument (percent to fraction), or
// the baseline rate when unset.
type EmployerSSCRate struct{}

func (EmployerSSCRate) Name() modeltypes.VarName       { return "CSSFR_" }
func (EmployerSSCRate) Type() modeltypes.EquationType   { return modeltypes.Technical }
func (EmployerSSCRate) DependsOn() []modeltypes.VarName { return nil }
func (EmployerSSCRate) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	if p.Has("CSSFR_X") {
		return p.Get("CSSFR_X", t) / 100.0
	}
	return s.CSSEmpRate
}

// EmployeeSSCRate mirrors the CSSHR_X instrument (percent to fraction), or
// the baseline rate when unset.
type EmployeeSSCRate struct{}

func (EmployeeSSCRate) Name() modeltypes.VarName       { return "CSSHR_" }
func (EmployeeSSCRate) Type() modeltypes.EquationType   { return modeltypes.Technical }
func (EmployeeSSCRate) DependsOn() []modeltypes.VarName { return nil }
func (EmployeeSSCRate) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	if p.Has("CSSHR_X") {
		return p.Get("CSSHR_X", t) / 100.0
	}
	return s.CSSHouseRate
}

// NominalInterestRate is exogenous and held at its lagged value.
type NominalInterestRate struct{}

func (NominalInterestRate) Name() modeltypes.VarName       { return "RNOM_" }
func (NominalInterestRate) Type() modeltypes.EquationType   { return modeltypes.Technical }
func (NominalInterestRate) DependsOn() []modeltypes.VarName { return nil }
func (NominalInterestRate) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	return p.Lag("RNOM_", t, 1)
}

// WorldDemand grows at the exogenous world trade growth rate.
type WorldDemand struct{}

func (WorldDemand) Name() modeltypes.VarName       { return "XWORLD_" }
func (WorldDemand) Type() modeltypes.EquationType   { return modeltypes.Technical }
func (WorldDemand) DependsOn() []modeltypes.VarName { return nil }
func (WorldDemand) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	return p.Lag("XWORLD_", t, 1) * (1 + s.WorldGrowth)
}

// CompetitorPrice grows at the exogenous competitor price growth rate.
type CompetitorPrice struct{}

func (CompetitorPrice) Name() modeltypes.VarName       { return "PCOMP_" }
func (CompetitorPrice) Type() modeltypes.EquationType   { return modeltypes.Technical }
func (CompetitorPrice) DependsOn() []modeltypes.VarName { return nil }
func (CompetitorPrice) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	return p.Lag("PCOMP_", t, 1) * (1 + s.PCompGrowth)
}

// WageBill is the identity WB = W*L/1000 + WG*NG/1000.
type WageBill struct{}

func (WageBill) Name() modeltypes.VarName { return "WB_" }
func (WageBill) Type() modeltypes.EquationType {
	return modeltypes.Identity
}
func (WageBill) DependsOn() []modeltypes.VarName {
	return []modeltypes.VarName{"W_", "L_", "WG_", "NG_"}
}
func (WageBill) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	return p.Get("W_", t)*p.Get("L_", t)/1000.0 + p.Get("WG_", t)*p.Get("NG_", t)/1000.0
}

// Productivity is the identity PROD = Y / LH.
type Productivity struct{}

func (Productivity) Name() modeltypes.VarName { return "PROD_" }
func (Productivity) Type() modeltypes.EquationType {
	return modeltypes.Identity
}
func (Productivity) DependsOn() []modeltypes.VarName {
	return []modeltypes.VarName{"Y_", "LH_"}
}
func (Productivity) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	lh := p.Get("LH_", t)
	if lh == 0 {
		return p.Lag("PROD_", t, 1)
	}
	return p.Get("Y_", t) / lh
}

// IdentityEquations lists the identity/technical block in registration order.
var IdentityEquations = []Equation{
	PublicInvestment{},
	PublicConsumption{},
	StockChange{},
	DomesticDemand{},
	GDP{},
	GDPDeflator{},
	NominalGDP{},
	TotalInvestment{},
	Profit{},
	RealInterestRate{},
	MortgageRate{},
	LabourForce{},
	PublicEmployment{},
	DisposableIncome{},
	Transfers{},
	VATRate{},
	EmployerSSCRate{},
	EmployeeSSCRate{},
	NominalInterestRate{},
	WorldDemand{},
	CompetitorPrice{},
	WageBill{},
	Productivity{},
}
