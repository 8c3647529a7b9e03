package logic

// Conjunction is an ordered sequence of facts, implicitly ANDed together.
// Duplicate facts are permitted and are semantically idempotent; order is
// input-driven and carries no independent meaning but must stay
// deterministic.
type Conjunction []Fact

// Consistent reports whether no two facts in this conjunction contradict.
func (c Conjunction) Consistent() bool {
	for i := range c {
		for j := i + 1; j < len(c); j++ {
			if c[i].Contradicts(c[j]) {
				return false
			}
		}
	}

	return true
}

func (c Conjunction) concat(o Conjunction) Conjunction {
	out := make(Conjunction, 0, len(c)+len(o))
	out = append(out, c...)
	out = append(out, o...)

	return out
}

// DNF is an ordered sequence of conjunctions, implicitly ORed together. The
// empty DNF denotes False; a DNF containing the empty conjunction denotes
// True.
type DNF []Conjunction

// Impossible reports whether every conjunction in this DNF is inconsistent
// (so the DNF as a whole denotes False, however many disjuncts it has).
func (d DNF) Impossible() bool {
	for _, c := range d {
		if c.Consistent() {
			return false
		}
	}

	return true
}

func (d DNF) append(o DNF) DNF {
	out := make(DNF, 0, len(d)+len(o))
	out = append(out, d...)
	out = append(out, o...)

	return out
}

// Decompose rewrites an arbitrary Proposition into DNF by structural
// recursion, without short-circuiting on tautology or contradiction.
func Decompose(p Proposition) DNF {
	switch {
	case p.Equals(True):
		return DNF{{}}
	case p.Equals(False):
		return DNF{}
	}

	if a, ok := p.IsVariable(); ok {
		return DNF{{Positive(a)}}
	}

	left, right := p.Children()

	return decomposeConnective(p, left, right)
}

func decomposeConnective(p, left, right Proposition) DNF {
	switch {
	case isNot(p):
		return decomposeNot(left)
	case isAnd(p):
		return decomposeAnd(left, right)
	case isOr(p):
		return Decompose(left).append(Decompose(right))
	case isImplies(p):
		return Decompose(Or(Not(left), right))
	case isEquiv(p):
		return Decompose(And(Implies(left, right), Implies(right, left)))
	default:
		panic("unreachable proposition kind")
	}
}

func decomposeAnd(left, right Proposition) DNF {
	var (
		lhs = Decompose(left)
		rhs = Decompose(right)
		out = make(DNF, 0, len(lhs)*len(rhs))
	)

	for _, lc := range lhs {
		for _, rc := range rhs {
			out = append(out, lc.concat(rc))
		}
	}

	return out
}

func decomposeNot(inner Proposition) DNF {
	switch {
	case inner.Equals(True):
		return DNF{}
	case inner.Equals(False):
		return DNF{{}}
	}

	if a, ok := inner.IsVariable(); ok {
		return DNF{{Negative(a)}}
	}

	left, right := inner.Children()

	switch {
	case isNot(inner):
		return Decompose(left)
	case isAnd(inner):
		return Decompose(Or(Not(left), Not(right)))
	case isOr(inner):
		return Decompose(And(Not(left), Not(right)))
	case isImplies(inner):
		// Intentional classically-invalid rewrite, preserved for behavioral
		// parity with the reasoning system this engine mirrors: see
		// DESIGN.md / SPEC_FULL.md §9.
		return Decompose(Implies(Not(right), Not(left)))
	case isEquiv(inner):
		return Decompose(Or(Not(Implies(left, right)), Not(Implies(right, left))))
	default:
		panic("unreachable proposition kind")
	}
}

func isNot(p Proposition) bool     { return p.kind == kindNot }
func isAnd(p Proposition) bool     { return p.kind == kindAnd }
func isOr(p Proposition) bool      { return p.kind == kindOr }
func isImplies(p Proposition) bool { return p.kind == kindImplies }
func isEquiv(p Proposition) bool   { return p.kind == kindEquiv }

// Cases filters Decompose(p) down to its consistent conjunctions.
func Cases(p Proposition) DNF {
	full := Decompose(p)
	out := make(DNF, 0, len(full))

	for _, c := range full {
		if c.Consistent() {
			out = append(out, c)
		}
	}

	return out
}
