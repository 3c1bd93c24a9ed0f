// Package registry maps variable names to their equations and fixes the
// three-phase solve order the Gauss-Seidel solver walks every year.
package registry

import (
	"github.com/mdruszcz/econ/internal/equations"
	"github.com/mdruszcz/econ/internal/modeltypes"
)

// Registry is built once and shared read-only across every solve call; it
// holds no panel state of its own.
type Registry struct {
	byName map[modeltypes.VarName]equations.Equation
	pre    []modeltypes.VarName
	inter  []modeltypes.VarName
	post   []modeltypes.VarName
}

// New builds the registry: registers every equation and fixes the
// pre/inter/post solve order.
func New() *Registry {
	r := &Registry{byName: make(map[modeltypes.VarName]equations.Equation)}

	all := make([]equations.Equation, 0, 64)
	all = append(all, equations.ProductionEquations...)
	all = append(all, equations.LaborEquations...)
	all = append(all, equations.BehavioralEquations...)
	all = append(all, equations.PriceEquations...)
	all = append(all, equations.IdentityEquations...)
	all = append(all, equations.PublicFinanceEquations...)
	all = append(all, equations.ForeignEquations...)
	for _, eq := range all {
		r.byName[eq.Name()] = eq
	}

	// Phase 1 (pre-recursive): exogenous trends and instrument mappings.
	r.pre = []modeltypes.VarName{
		"TFP_", "NAT_", "NG_", "XWORLD_", "PCOMP_", "PM_",
		"RNOM_", "RMORT_", "ITPC0R_", "CSSFR_", "CSSHR_",
		"IG_", "TGH_", "DS_",
	}

	// Phase 2 (interdependent): iterative Gauss-Seidel block. Order chosen
	// to minimize iterations (output -> labor -> wages -> prices -> income
	// -> demand -> trade -> GDP -> back to output).
	r.inter = []modeltypes.VarName{
		"K_", "Y_", "YSTAR_", "YGAP_", "ZKF_",
		"LH_", "L_", "U_", "UR_",
		"W_", "WG_", "ULC_", "COST_",
		"PC_", "PIF_", "PIH_", "PIG_", "PX_",
		"RREAL_", "PROFIT_", "CG_", "YDH_",
		"C_", "IF_", "IH_", "DD_",
		"X_", "M_", "GDP_", "PGDP_", "GDPN_",
		"GRECEIPTS_", "GEXPENSE_", "D_", "B_",
	}

	// Phase 3 (post-recursive): derived ratios and diagnostics.
	r.post = []modeltypes.VarName{
		"I_", "PROD_", "WB_", "DR_", "BR_",
		"XN_", "MN_", "TB_", "TBR_",
	}

	return r
}

// Get returns the equation targeting var, or nil if none is registered.
func (r *Registry) Get(v modeltypes.VarName) equations.Equation {
	return r.byName[v]
}

// PreOrder returns phase 1's fixed variable order.
func (r *Registry) PreOrder() []modeltypes.VarName { return append([]modeltypes.VarName(nil), r.pre...) }

// InterOrder returns phase 2's fixed variable order.
func (r *Registry) InterOrder() []modeltypes.VarName {
	return append([]modeltypes.VarName(nil), r.inter...)
}

// PostOrder returns phase 3's fixed variable order.
func (r *Registry) PostOrder() []modeltypes.VarName {
	return append([]modeltypes.VarName(nil), r.post...)
}

// AllVariables returns every variable the registry knows about, phase
// order preserved (pre, then inter, then post).
func (r *Registry) AllVariables() []modeltypes.VarName {
	out := make([]modeltypes.VarName, 0, len(r.pre)+len(r.inter)+len(r.post))
	out = append(out, r.pre...)
	out = append(out, r.inter...)
	out = append(out, r.post...)
	return out
}

// Len returns the number of registered equations.
func (r *Registry) Len() int { return len(r.byName) }
