package equations

import (
	"math"

	"github.com/mdruszcz/econ/internal/modeltypes"
	"github.com/mdruszcz/econ/internal/panel"
	"github.com/mdruszcz/econ/internal/params"
)

// LabourHours is an error-correction model of hours demand on output and
// productivity:
//
//	dln(LH) = lh0 + lh1*dln(Y) + lh2*[ln(Y) - (1-alpha)*ln(K) - ln(TFP) - alpha*ln(LH)][-1]
type LabourHours struct{}

func (LabourHours) Name() modeltypes.VarName       { return "LH_" }
func (LabourHours) Type() modeltypes.EquationType   { return modeltypes.Behavioral }
func (LabourHours) DependsOn() []modeltypes.VarName { return []modeltypes.VarName{"Y_", "K_", "TFP_"} }
func (LabourHours) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	lhPrev := p.Lag("LH_", t, 1)
	if lhPrev <= 0 {
		return lhPrev
	}

	dlnY := p.Dln("Y_", t)

	y1 := p.Lag("Y_", t, 1)
	k1 := p.Lag("K_", t, 1)
	tfp1 := p.Lag("TFP_", t, 1)
	ecm := 0.0
	if y1 > 0 && k1 > 0 && tfp1 > 0 && lhPrev > 0 {
		ecm = math.Log(y1) - (1-s.Alpha)*math.Log(k1) - math.Log(tfp1) - s.Alpha*math.Log(lhPrev)
	}

	dlnLH := s.LH0 + s.LH1*dlnY + s.LH2*ecm
	return lhPrev * safeExp(dlnLH)
}

// Employment tracks hours growth: L = L[-1] * (LH / LH[-1]), treating
// average hours per worker as slowly trending exogenous.
type Employment struct{}

func (Employment) Name() modeltypes.VarName       { return "L_" }
func (Employment) Type() modeltypes.EquationType   { return modeltypes.Identity }
func (Employment) DependsOn() []modeltypes.VarName { return []modeltypes.VarName{"LH_"} }
func (Employment) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	lh := p.Get("LH_", t)
	lhPrev := p.Lag("LH_", t, 1)
	lPrev := p.Lag("L_", t, 1)
	if lhPrev == 0 || lPrev == 0 {
		return lPrev
	}
	return lPrev * (lh / lhPrev)
}

// Unemployment is the identity U = NAT - L - NG.
type Unemployment struct{}

func (Unemployment) Name() modeltypes.VarName { return "U_" }
func (Unemployment) Type() modeltypes.EquationType {
	return modeltypes.Identity
}
func (Unemployment) DependsOn() []modeltypes.VarName {
	return []modeltypes.VarName{"NAT_", "L_", "NG_"}
}
func (Unemployment) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	return p.Get("NAT_", t) - p.Get("L_", t) - p.Get("NG_", t)
}

// UnemploymentRate is the identity UR = U / NAT.
type UnemploymentRate struct{}

func (UnemploymentRate) Name() modeltypes.VarName { return "UR_" }
func (UnemploymentRate) Type() modeltypes.EquationType {
	return modeltypes.Identity
}
func (UnemploymentRate) DependsOn() []modeltypes.VarName {
	return []modeltypes.VarName{"U_", "NAT_"}
}
func (UnemploymentRate) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	nat := p.Get("NAT_", t)
	if nat == 0 {
		return 0.0
	}
	return p.Get("U_", t) / nat
}

// Wage is a Phillips-curve plus indexation plus wage-share ECM:
//
//	dln(W) = w0 + w1*dln(PC) + w2*dln(PROD) + w3*(UR - NAIRU) + w4*(WS[-1] - w5)
//
// plus the WR_X and ZX_X instrument corrections (percentage points, divided
// by 100 to enter the log-difference).
type Wage struct{}

func (Wage) Name() modeltypes.VarName { return "W_" }
func (Wage) Type() modeltypes.EquationType {
	return modeltypes.Behavioral
}
func (Wage) DependsOn() []modeltypes.VarName {
	return []modeltypes.VarName{"PC_", "Y_", "LH_", "L_", "UR_"}
}
func (Wage) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	wPrev := p.Lag("W_", t, 1)
	if wPrev <= 0 {
		return wPrev
	}

	dlnPC := p.Dln("PC_", t)

	y := p.Get("Y_", t)
	lh := p.Get("LH_", t)
	y1 := p.Lag("Y_", t, 1)
	lh1 := p.Lag("LH_", t, 1)
	dlnProd := 0.0
	if y > 0 && lh > 0 && y1 > 0 && lh1 > 0 {
		dlnProd = math.Log(y/lh) - math.Log(y1/lh1)
	}

	ur := p.Get("UR_", t)
	urGap := ur - s.Nairu

	l1 := p.Lag("L_", t, 1)
	pc1 := p.Lag("PC_", t, 1)
	ws1 := s.W5
	if y1 > 0 && pc1 > 0 {
		ws1 = (wPrev * l1) / (pc1 * y1 * 1000)
	}

	dlnW := s.W0 + s.W1*dlnPC + s.W2*dlnProd + s.W3*urGap + s.W4*(ws1-s.W5)

	if p.Has("WR_X") {
		dlnW += p.Get("WR_X", t) / 100.0
	}
	if p.Has("ZX_X") {
		dlnW += p.Get("ZX_X", t) / 100.0
	}

	return wPrev * safeExp(dlnW)
}

// PublicWage indexes public wages to CPI plus an exogenous real-growth
// instrument: WG = WG[-1] * safeExp(dln(PC) + WGRR_X/100).
type PublicWage struct{}

func (PublicWage) Name() modeltypes.VarName { return "WG_" }
func (PublicWage) Type() modeltypes.EquationType {
	return modeltypes.Technical
}
func (PublicWage) DependsOn() []modeltypes.VarName { return []modeltypes.VarName{"PC_"} }
func (PublicWage) Compute(p *panel.Panel, t modeltypes.Year, s params.Scalars) float64 {
	wgPrev := p.Lag("WG_", t, 1)
	dlnPC := p.Dln("PC_", t)
	wgrr := 0.0
	if p.Has("WGRR_X") {
		wgrr = p.Get("WGRR_X", t)
	}
	return wgPrev * safeExp(dlnPC+wgrr/100.0)
}

// LaborEquations lists the labour block in registration order.
var LaborEquations = []Equation{
	LabourHours{},
	Employment{},
	Unemployment{},
	UnemploymentRate{},
	Wage{},
	PublicWage{},
}
