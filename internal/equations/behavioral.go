package equations

import (
	"math"

	"github.com/mdruszcz/econ/internal/modeltypes"
	"github.com/mdruszcz/econ/internal/panel"
	"github.com/mdruszcz/econ/internal/params"
)

// Consumption is an ECM on real disposable income, the real interest rate,
// and unemployment:
//
//	dln(C) = c0 + c1*dln(YDH/PC) + c2*d(RREAL) + c3*d(UR)
//	         + c4*[ln(C) - c5*ln(YDH/PC)][-1] + c6*dln(C)[-1]
type Consumption struct{}

func (Consumption) Name() modeltypes.VarName { return "C_" }
func (Consumption) Type() modeltypes.EquationType {
	return modeltypes.Behavioral
}
func (Consumption) DependsOn() []modeltypes.VarName {
	return []modeltypes.VarName{"YDH_", "PC_", "UR_", "RREAL_"}
}
func (Consumption) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	cPrev := p.Lag("C_", t, 1)
	if cPrev <= 0 {
		return cPrev
	}

	ydh := p.Get("YDH_", t)
	pc := p.Get("PC_", t)
	ydh1 := p.Lag("YDH_", t, 1)
	pc1 := p.Lag("PC_", t, 1)
	dlnRydi := 0.0
	if ydh > 0 && pc > 0 && ydh1 > 0 && pc1 > 0 {
		dlnRydi = math.Log(ydh/pc) - math.Log(ydh1/pc1)
	}

	rr, rr1 := 0.0, 0.0
	if p.Has("RREAL_") {
		rr = p.Get("RREAL_", t)
		rr1 = p.Lag("RREAL_", t, 1)
	}
	dRreal := rr - rr1

	dUR := p.D("UR_", t)

	c1 := p.Lag("C_", t, 1)
	ecm := 0.0
	if c1 > 0 && ydh1 > 0 && pc1 > 0 {
		ecm = math.Log(c1) - s.C5*math.Log(ydh1/pc1)
	}

	c2 := c1
	if p.HasYear(t - 2) {
		c2 = p.Lag("C_", t, 2)
	}
	dlnCLag := 0.0
	if c2 > 0 && c1 > 0 {
		dlnCLag = math.Log(c1) - math.Log(c2)
	}

	dlnC := s.C0 + s.C1*dlnRydi + s.C2*dRreal + s.C3*dUR + s.C4*ecm + s.C6*dlnCLag
	return cPrev * safeExp(dlnC)
}

// BusinessInvestment is an accelerator, profitability, real-rate and
// capacity-utilization ECM:
//
//	dln(IF) = if0 + if1*dln(Y) + if2*d(PROFIT) + if3*d(RREAL)
//	          + if4*d(ZKF) + if5*[ln(IF) - if6*ln(Y)][-1]
type BusinessInvestment struct{}

func (BusinessInvestment) Name() modeltypes.VarName { return "IF_" }
func (BusinessInvestment) Type() modeltypes.EquationType {
	return modeltypes.Behavioral
}
func (BusinessInvestment) DependsOn() []modeltypes.VarName {
	return []modeltypes.VarName{"Y_", "PROFIT_", "RREAL_", "ZKF_"}
}
func (BusinessInvestment) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	ifPrev := p.Lag("IF_", t, 1)
	if ifPrev <= 0 {
		return ifPrev
	}

	dlnY := p.Dln("Y_", t)

	profit, profit1 := 0.0, 0.0
	if p.Has("PROFIT_") {
		profit = p.Get("PROFIT_", t)
		profit1 = p.Lag("PROFIT_", t, 1)
	}
	dProfit := profit - profit1

	rr, rr1 := 0.0, 0.0
	if p.Has("RREAL_") {
		rr = p.Get("RREAL_", t)
		rr1 = p.Lag("RREAL_", t, 1)
	}
	dRreal := rr - rr1

	zkf := p.Get("ZKF_", t)
	zkf1 := p.Lag("ZKF_", t, 1)
	dZkf := zkf - zkf1

	y1 := p.Lag("Y_", t, 1)
	ecm := 0.0
	if ifPrev > 0 && y1 > 0 {
		ecm = math.Log(ifPrev) - s.IF6*math.Log(y1)
	}

	dlnIF := s.IF0 + s.IF1*dlnY + s.IF2*dProfit + s.IF3*dRreal + s.IF4*dZkf + s.IF5*ecm
	return ifPrev * safeExp(dlnIF)
}

// HousingInvestment is a real-income and mortgage-rate ECM:
//
//	dln(IH) = ih0 + ih1*dln(YDH/PC) + ih2*d(RMORT)
//	          + ih3*[ln(IH) - ih4*ln(YDH/PC)][-1]
type HousingInvestment struct{}

func (HousingInvestment) Name() modeltypes.VarName { return "IH_" }
func (HousingInvestment) Type() modeltypes.EquationType {
	return modeltypes.Behavioral
}
func (HousingInvestment) DependsOn() []modeltypes.VarName {
	return []modeltypes.VarName{"YDH_", "PC_", "RMORT_"}
}
func (HousingInvestment) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	ihPrev := p.Lag("IH_", t, 1)
	if ihPrev <= 0 {
		return ihPrev
	}

	ydh := p.Get("YDH_", t)
	pc := p.Get("PC_", t)
	ydh1 := p.Lag("YDH_", t, 1)
	pc1 := p.Lag("PC_", t, 1)
	dlnRydi := 0.0
	if ydh > 0 && pc > 0 && ydh1 > 0 && pc1 > 0 {
		dlnRydi = math.Log(ydh/pc) - math.Log(ydh1/pc1)
	}

	rm, rm1 := 0.0, 0.0
	if p.Has("RMORT_") {
		rm = p.Get("RMORT_", t)
		rm1 = p.Lag("RMORT_", t, 1)
	}
	dRmort := rm - rm1

	ecm := 0.0
	if ihPrev > 0 && ydh1 > 0 && pc1 > 0 {
		ecm = math.Log(ihPrev) - s.IH4*math.Log(ydh1/pc1)
	}

	dlnIH := s.IH0 + s.IH1*dlnRydi + s.IH2*dRmort + s.IH3*ecm
	return ihPrev * safeExp(dlnIH)
}

// ExportVolume is a foreign-demand and price-competitiveness ECM:
//
//	dln(X) = x0 + x1*dln(XWORLD) + x2*dln(PX/PCOMP)
//	         + x3*[ln(X) - x4*ln(XWORLD) - x5*ln(PX/PCOMP)][-1]
type ExportVolume struct{}

func (ExportVolume) Name() modeltypes.VarName { return "X_" }
func (ExportVolume) Type() modeltypes.EquationType {
	return modeltypes.Behavioral
}
func (ExportVolume) DependsOn() []modeltypes.VarName {
	return []modeltypes.VarName{"XWORLD_", "PX_", "PCOMP_"}
}
func (ExportVolume) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	xPrev := p.Lag("X_", t, 1)
	if xPrev <= 0 {
		return xPrev
	}

	dlnXW := s.WorldGrowth
	if p.Has("XWORLD_") {
		dlnXW = p.Dln("XWORLD_", t)
	}

	px := p.Get("PX_", t)
	pcomp := 1.0
	if p.Has("PCOMP_") {
		pcomp = p.Get("PCOMP_", t)
	}
	px1 := p.Lag("PX_", t, 1)
	pcomp1 := 1.0
	if p.Has("PCOMP_") {
		pcomp1 = p.Lag("PCOMP_", t, 1)
	}
	dlnRelpx := 0.0
	if px > 0 && pcomp > 0 && px1 > 0 && pcomp1 > 0 {
		dlnRelpx = math.Log(px/pcomp) - math.Log(px1/pcomp1)
	}

	xw1 := 1.0
	if p.Has("XWORLD_") {
		xw1 = p.Lag("XWORLD_", t, 1)
	}
	ecm := 0.0
	if xPrev > 0 && xw1 > 0 && px1 > 0 && pcomp1 > 0 {
		ecm = math.Log(xPrev) - s.X4*math.Log(xw1) - s.X5*math.Log(px1/pcomp1)
	}

	dlnX := s.X0 + s.X1*dlnXW + s.X2*dlnRelpx + s.X3*ecm
	return xPrev * safeExp(dlnX)
}

// ImportVolume is a domestic-demand and relative-price ECM:
//
//	dln(M) = m0 + m1*dln(DD) + m2*dln(PM/PC)
//	         + m3*[ln(M) - m4*ln(DD) - m5*ln(PM/PC)][-1]
type ImportVolume struct{}

func (ImportVolume) Name() modeltypes.VarName { return "M_" }
func (ImportVolume) Type() modeltypes.EquationType {
	return modeltypes.Behavioral
}
func (ImportVolume) DependsOn() []modeltypes.VarName {
	return []modeltypes.VarName{"DD_", "PM_", "PC_"}
}
func (ImportVolume) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	mPrev := p.Lag("M_", t, 1)
	if mPrev <= 0 {
		return mPrev
	}

	dlnDD := 0.0
	if p.Has("DD_") {
		dlnDD = p.Dln("DD_", t)
	}

	pm := 1.0
	if p.Has("PM_") {
		pm = p.Get("PM_", t)
	}
	pc := p.Get("PC_", t)
	pm1 := 1.0
	if p.Has("PM_") {
		pm1 = p.Lag("PM_", t, 1)
	}
	pc1 := p.Lag("PC_", t, 1)
	dlnRelpm := 0.0
	if pm > 0 && pc > 0 && pm1 > 0 && pc1 > 0 {
		dlnRelpm = math.Log(pm/pc) - math.Log(pm1/pc1)
	}

	dd1 := 1.0
	if p.Has("DD_") {
		dd1 = p.Lag("DD_", t, 1)
	}
	ecm := 0.0
	if mPrev > 0 && dd1 > 0 && pm1 > 0 && pc1 > 0 {
		ecm = math.Log(mPrev) - s.M4*math.Log(dd1) - s.M5*math.Log(pm1/pc1)
	}

	dlnM := s.M0 + s.M1*dlnDD + s.M2*dlnRelpm + s.M3*ecm
	return mPrev * safeExp(dlnM)
}

// BehavioralEquations lists the expenditure block in registration order.
var BehavioralEquations = []Equation{
	Consumption{},
	BusinessInvestment{},
	HousingInvestment{},
	ExportVolume{},
	ImportVolume{},
}
