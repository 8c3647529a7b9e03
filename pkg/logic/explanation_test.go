package logic

import (
	"testing"

	"github.com/dlogic/argue/pkg/collection"
	"github.com/stretchr/testify/assert"
)

func noPreference() Preference {
	return NewRanking()
}

// TestExplainModusPonens exercises the textbook case: a, b, and a∧b→c
// together decide c outright.
func TestExplainModusPonens(t *testing.T) {
	a, b, c := Variable("a"), Variable("b"), Variable("c")
	rule := Implies(And(a, b), c)

	exp := Explain(noPreference(), c, []Proposition{rule, a, b})

	assert.Len(t, exp.Winners.Pro, 1)
	assert.Equal(t, rule, exp.Winners.Pro[0].Head().Unwrap())
	assert.Empty(t, exp.OpenQuestions)
}

// TestExplainDisjunctivePremise exercises a premise wholly unrelated to the
// question: nothing decides c, and the disjunction's own atoms surface as
// an open branch.
func TestExplainDisjunctivePremise(t *testing.T) {
	a, b, c := Variable("a"), Variable("b"), Variable("c")

	exp := Explain(noPreference(), c, []Proposition{Or(a, b)})

	for _, w := range exp.Winners.Pro {
		assert.Equal(t, KindOpen, w.Kind())
	}

	assert.Equal(t, [][]Atom{{"a", "b"}}, exp.OpenQuestions)
}

// TestExplainContradictoryPreference exercises a preference that reverses
// which of two directly contradictory assumptions wins.
func TestExplainContradictoryPreference(t *testing.T) {
	p := Variable("p")
	pref := NewRanking(
		collection.NewPair(1, Not(p)),
		collection.NewPair(0, p),
	)

	exp := Explain(pref, p, []Proposition{p, Not(p)})

	assert.Empty(t, exp.Winners.Pro)
	assert.Len(t, exp.Winners.Contra, 1)
	assert.Equal(t, Not(p), exp.Winners.Contra[0].Head().Unwrap())
}

// TestExplainMilitaryOfficialOverridesEmployed exercises the literal
// contradictory-preference scenario: a general rule that employment grants a
// request is overridden, for military officials, by a more specific rule
// forbidding it, once the preference ranks the more specific implication
// above the general one.
func TestExplainMilitaryOfficialOverridesEmployed(t *testing.T) {
	var (
		employed         = Variable("employed")
		militaryOfficial = Variable("militaryOfficial")
		mayRequest       = Variable("mayRequest")
		general          = Implies(employed, mayRequest)
		exception        = Implies(And(employed, militaryOfficial), Not(mayRequest))
	)

	pref := NewRanking(
		collection.NewPair(1, exception),
		collection.NewPair(0, general),
	)

	exp := Explain(pref, mayRequest, []Proposition{general, exception, employed, militaryOfficial})

	assert.Empty(t, exp.Winners.Pro)
	assert.NotEmpty(t, exp.Winners.Contra)
}

// TestExplainUnrelatedPremise exercises a premise about a disjoint atom:
// nothing decides y, and the question's own atom is reported as open.
func TestExplainUnrelatedPremise(t *testing.T) {
	x, y := Variable("x"), Variable("y")

	exp := Explain(noPreference(), y, []Proposition{x})

	assert.Equal(t, [][]Atom{{"y"}}, exp.OpenQuestions)
}

// TestExplainDoubleNegation exercises that Not(Not(p)) is decided exactly
// like p itself.
func TestExplainDoubleNegation(t *testing.T) {
	p := Variable("p")

	exp := Explain(noPreference(), Not(Not(p)), []Proposition{p})

	assert.Len(t, exp.Winners.Pro, 1)
	assert.Equal(t, KindAssumption, exp.Winners.Pro[0].Kind())
	assert.Equal(t, p, exp.Winners.Pro[0].Head().Unwrap())
}

// TestExplainMutualRebuttalWithoutPreference exercises that, absent any
// preference, directly contradictory assumptions both survive as winners.
func TestExplainMutualRebuttalWithoutPreference(t *testing.T) {
	p := Variable("p")

	exp := Explain(noPreference(), p, []Proposition{p, Not(p)})

	assert.Len(t, exp.Winners.Pro, 1)
	assert.Len(t, exp.Winners.Contra, 1)
}

// TestExplainEmptyInformation exercises the empty-information-base
// boundary: everything comes back empty.
func TestExplainEmptyInformation(t *testing.T) {
	exp := Explain(noPreference(), Variable("q"), nil)

	assert.Empty(t, exp.Winners.Pro)
	assert.Empty(t, exp.Winners.Contra)
	assert.Empty(t, exp.Losers.Pro)
	assert.Empty(t, exp.Losers.Contra)
	assert.Empty(t, exp.OpenQuestions)
}
