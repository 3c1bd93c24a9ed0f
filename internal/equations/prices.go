package equations

import (
	"math"

	"github.com/mdruszcz/econ/internal/modeltypes"
	"github.com/mdruszcz/econ/internal/panel"
	"github.com/mdruszcz/econ/internal/params"
)

// pmGrowthFallback returns dln(PM_) if PM_ is present, else falls back to the
// exogenous import price growth rate used as a placeholder before PM_ is
// added to the panel.
func pmGrowthFallback(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	if p.Has("PM_") {
		return p.Dln("PM_", t)
	}
	return s.PMGrowth
}

// UnitLabourCost is the identity ULC = W * L / Y.
type UnitLabourCost struct{}

func (UnitLabourCost) Name() modeltypes.VarName { return "ULC_" }
func (UnitLabourCost) Type() modeltypes.EquationType {
	return modeltypes.Identity
}
func (UnitLabourCost) DependsOn() []modeltypes.VarName {
	return []modeltypes.VarName{"W_", "L_", "Y_"}
}
func (UnitLabourCost) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	y := p.Get("Y_", t)
	if y == 0 {
		return p.Lag("ULC_", t, 1)
	}
	return p.Get("W_", t) * p.Get("L_", t) / y
}

// MacroCost is COST = cost_w * ULC + cost_pm * PM. When PM_ is absent it
// reads PM_'s lag instead, which for an absent column is 0.0, so the
// import-price term drops out (no constant 1.0 or growth-rate fallback).
type MacroCost struct{}

func (MacroCost) Name() modeltypes.VarName { return "COST_" }
func (MacroCost) Type() modeltypes.EquationType {
	return modeltypes.Identity
}
func (MacroCost) DependsOn() []modeltypes.VarName {
	return []modeltypes.VarName{"ULC_", "PM_"}
}
func (MacroCost) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	ulc := p.Get("ULC_", t)
	pm := p.Get("PM_", t)
	if !p.Has("PM_") {
		pm = p.Lag("PM_", t, 1)
	}
	return s.CostW*ulc + s.CostPM*pm
}

// ConsumerPrice is a cost-push, import-price, output-gap and VAT-shock ECM:
//
//	dln(PC) = pc0 + pc1*dln(COST) + pc2*dln(PM) + pc3*YGAP
//	          + pc4*[ln(PC) - pc5*ln(COST)][-1] + pc_vat*d(ITPC0R/100)
type ConsumerPrice struct{}

func (ConsumerPrice) Name() modeltypes.VarName { return "PC_" }
func (ConsumerPrice) Type() modeltypes.EquationType {
	return modeltypes.Behavioral
}
func (ConsumerPrice) DependsOn() []modeltypes.VarName {
	return []modeltypes.VarName{"COST_", "PM_", "YGAP_", "ITPC0R_"}
}
func (ConsumerPrice) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	pcPrev := p.Lag("PC_", t, 1)
	if pcPrev <= 0 {
		return pcPrev
	}

	dlnCost := p.Dln("COST_", t)
	dlnPM := pmGrowthFallback(p, t, s)
	ygap := p.Get("YGAP_", t)

	cost1 := p.Lag("COST_", t, 1)
	ecm := 0.0
	if pcPrev > 0 && cost1 > 0 {
		ecm = math.Log(pcPrev) - s.PC5*math.Log(cost1)
	}

	vat := s.VATRate * 100
	vat1 := s.VATRate * 100
	if p.Has("ITPC0R_") {
		vat = p.Get("ITPC0R_", t)
		vat1 = p.Lag("ITPC0R_", t, 1)
	}
	dVat := (vat - vat1) / 100.0

	dlnPC := s.PC0 + s.PC1*dlnCost + s.PC2*dlnPM + s.PC3*ygap + s.PC4*ecm + s.PCVat*dVat
	return pcPrev * safeExp(dlnPC)
}

// BusinessInvestmentDeflator is a cost-push and import-price ECM:
//
//	dln(PIF) = pif1*dln(COST) + pif2*dln(PM) + pif3*[ln(PIF) - ln(COST)][-1]
type BusinessInvestmentDeflator struct{}

func (BusinessInvestmentDeflator) Name() modeltypes.VarName { return "PIF_" }
func (BusinessInvestmentDeflator) Type() modeltypes.EquationType {
	return modeltypes.Behavioral
}
func (BusinessInvestmentDeflator) DependsOn() []modeltypes.VarName {
	return []modeltypes.VarName{"COST_", "PM_"}
}
func (BusinessInvestmentDeflator) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	pifPrev := p.Lag("PIF_", t, 1)
	if pifPrev <= 0 {
		return pifPrev
	}
	dlnCost := p.Dln("COST_", t)
	dlnPM := pmGrowthFallback(p, t, s)
	cost1 := p.Lag("COST_", t, 1)
	ecm := 0.0
	if pifPrev > 0 && cost1 > 0 {
		ecm = math.Log(pifPrev) - math.Log(cost1)
	}
	dlnPIF := s.PIF1*dlnCost + s.PIF2*dlnPM + s.PIF3*ecm
	return pifPrev * safeExp(dlnPIF)
}

// HousingInvestmentDeflator is a construction-cost ECM:
//
//	dln(PIH) = pih1*dln(COST) + pih2*dln(PM) + pih3*[ln(PIH) - ln(COST)][-1]
type HousingInvestmentDeflator struct{}

func (HousingInvestmentDeflator) Name() modeltypes.VarName { return "PIH_" }
func (HousingInvestmentDeflator) Type() modeltypes.EquationType {
	return modeltypes.Behavioral
}
func (HousingInvestmentDeflator) DependsOn() []modeltypes.VarName {
	return []modeltypes.VarName{"COST_", "PM_"}
}
func (HousingInvestmentDeflator) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	pihPrev := p.Lag("PIH_", t, 1)
	if pihPrev <= 0 {
		return pihPrev
	}
	dlnCost := p.Dln("COST_", t)
	dlnPM := pmGrowthFallback(p, t, s)
	cost1 := p.Lag("COST_", t, 1)
	ecm := 0.0
	if pihPrev > 0 && cost1 > 0 {
		ecm = math.Log(pihPrev) - math.Log(cost1)
	}
	dlnPIH := s.PIH1*dlnCost + s.PIH2*dlnPM + s.PIH3*ecm
	return pihPrev * safeExp(dlnPIH)
}

// PublicInvestmentDeflator tracks the macro cost index:
//
//	dln(PIG) = pig1*dln(COST) + pig2*dln(PM)
type PublicInvestmentDeflator struct{}

func (PublicInvestmentDeflator) Name() modeltypes.VarName { return "PIG_" }
func (PublicInvestmentDeflator) Type() modeltypes.EquationType {
	return modeltypes.Technical
}
func (PublicInvestmentDeflator) DependsOn() []modeltypes.VarName {
	return []modeltypes.VarName{"COST_", "PM_"}
}
func (PublicInvestmentDeflator) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	pigPrev := p.Lag("PIG_", t, 1)
	if pigPrev <= 0 {
		return pigPrev
	}
	dlnCost := p.Dln("COST_", t)
	dlnPM := pmGrowthFallback(p, t, s)
	return pigPrev * safeExp(s.PIG1*dlnCost+s.PIG2*dlnPM)
}

// ExportPrice is a domestic-cost-versus-competitor-price ECM:
//
//	dln(PX) = px1*dln(COST) + px2*dln(PCOMP) + px3*[ln(PX) - ln(PCOMP)][-1]
type ExportPrice struct{}

func (ExportPrice) Name() modeltypes.VarName { return "PX_" }
func (ExportPrice) Type() modeltypes.EquationType {
	return modeltypes.Behavioral
}
func (ExportPrice) DependsOn() []modeltypes.VarName {
	return []modeltypes.VarName{"COST_", "PCOMP_"}
}
func (ExportPrice) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	pxPrev := p.Lag("PX_", t, 1)
	if pxPrev <= 0 {
		return pxPrev
	}
	dlnCost := p.Dln("COST_", t)
	dlnPcomp := s.PCompGrowth
	if p.Has("PCOMP_") {
		dlnPcomp = p.Dln("PCOMP_", t)
	}
	pcomp1 := 1.0
	if p.Has("PCOMP_") {
		pcomp1 = p.Lag("PCOMP_", t, 1)
	}
	ecm := 0.0
	if pxPrev > 0 && pcomp1 > 0 {
		ecm = math.Log(pxPrev) - math.Log(pcomp1)
	}
	dlnPX := s.PX1*dlnCost + s.PX2*dlnPcomp + s.PX3*ecm
	return pxPrev * safeExp(dlnPX)
}

// ImportPrice is an exogenous trend: PM grows at the world import price
// growth rate.
type ImportPrice struct{}

func (ImportPrice) Name() modeltypes.VarName       { return "PM_" }
func (ImportPrice) Type() modeltypes.EquationType   { return modeltypes.Technical }
func (ImportPrice) DependsOn() []modeltypes.VarName { return nil }
func (ImportPrice) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	return p.Lag("PM_", t, 1) * (1 + s.PMGrowth)
}

// PriceEquations lists the price block in registration order.
var PriceEquations = []Equation{
	UnitLabourCost{},
	MacroCost{},
	ConsumerPrice{},
	BusinessInvestmentDeflator{},
	HousingInvestmentDeflator{},
	PublicInvestmentDeflator{},
	ExportPrice{},
	ImportPrice{},
}
