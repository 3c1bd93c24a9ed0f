package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRegistersEveryOrderedVariable(t *testing.T) {
	r := New()
	all := r.AllVariables()
	assert.Len(t, all, len(r.PreOrder())+len(r.InterOrder())+len(r.PostOrder()))

	seen := make(map[string]bool, len(all))
	for _, v := range all {
		assert.False(t, seen[string(v)], "variable %s listed twice across phases", v)
		seen[string(v)] = true
	}
}

func TestPhaseSizesMatchModelDescription(t *testing.T) {
	r := New()
	assert.Len(t, r.PreOrder(), 14)
	assert.Len(t, r.InterOrder(), 35)
	assert.Len(t, r.PostOrder(), 9)
}

func TestOrderAccessorsReturnCopies(t *testing.T) {
	r := New()
	pre := r.PreOrder()
	pre[0] = "MUTATED_"
	assert.NotEqual(t, modeltypesFirst(r), "MUTATED_")
}

func modeltypesFirst(r *Registry) string {
	return string(r.PreOrder()[0])
}

func TestGetReturnsRegisteredEquation(t *testing.T) {
	r := New()
	for _, v := range r.AllVariables() {
		assert.NotNil(t, r.Get(v), "expected an equation registered for %s", v)
	}
	assert.Nil(t, r.Get("NOT_A_REAL_VAR_"))
}

func TestLenMatchesRegisteredEquationCount(t *testing.T) {
	r := New()
	assert.Equal(t, r.Len(), len(r.AllVariables()))
}
