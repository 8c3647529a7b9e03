package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConjunctionConsistent(t *testing.T) {
	a, b := Atom("a"), Atom("b")

	assert.True(t, Conjunction{Positive(a), Positive(b)}.Consistent())
	assert.False(t, Conjunction{Positive(a), Negative(a)}.Consistent())
	assert.True(t, Conjunction{}.Consistent())
}

func TestDNFImpossible(t *testing.T) {
	a := Atom("a")

	assert.True(t, DNF{}.Impossible())
	assert.True(t, DNF{{Positive(a), Negative(a)}}.Impossible())
	assert.False(t, DNF{{Positive(a), Negative(a)}, {Positive(a)}}.Impossible())
}

func TestDecomposeVariable(t *testing.T) {
	a := Variable("a")
	assert.Equal(t, DNF{{Positive("a")}}, Decompose(a))
}

func TestDecomposeAnd(t *testing.T) {
	a, b := Variable("a"), Variable("b")
	assert.Equal(t, DNF{{Positive("a"), Positive("b")}}, Decompose(And(a, b)))
}

func TestDecomposeOr(t *testing.T) {
	a, b := Variable("a"), Variable("b")
	assert.Equal(t, DNF{{Positive("a")}, {Positive("b")}}, Decompose(Or(a, b)))
}

func TestDecomposeImplies(t *testing.T) {
	a, b := Variable("a"), Variable("b")
	// a -> b decomposes like (not a) or b.
	assert.Equal(t, DNF{{Negative("a")}, {Positive("b")}}, Decompose(Implies(a, b)))
}

func TestDecomposeDoubleNegation(t *testing.T) {
	a := Variable("a")
	assert.Equal(t, Decompose(a), Decompose(Not(Not(a))))
}

func TestDecomposeNotAnd(t *testing.T) {
	a, b := Variable("a"), Variable("b")
	// not(a and b) decomposes like (not a) or (not b).
	assert.Equal(t, DNF{{Negative("a")}, {Negative("b")}}, Decompose(Not(And(a, b))))
}

func TestDecomposeNotOr(t *testing.T) {
	a, b := Variable("a"), Variable("b")
	assert.Equal(t, DNF{{Negative("a"), Negative("b")}}, Decompose(Not(Or(a, b))))
}

func TestCasesFiltersInconsistentConjunctions(t *testing.T) {
	a := Variable("a")
	// a and (not a) decomposes to a single inconsistent conjunct.
	cases := Cases(And(a, Not(a)))
	assert.Empty(t, cases)
	assert.True(t, Decompose(And(a, Not(a)))[0].Consistent() == false)
}

func TestCasesKeepsConsistentDisjuncts(t *testing.T) {
	a, b := Variable("a"), Variable("b")
	assert.Equal(t, DNF{{Positive("a")}, {Positive("b")}}, Cases(Or(a, b)))
}
