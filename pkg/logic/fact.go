package logic

// Fact is a signed literal: an atom together with a polarity.  Positive(a)
// asserts a; Negative(a) asserts its negation.
type Fact struct {
	Sign bool
	Name Atom
}

// Positive constructs the fact asserting that the given atom holds.
func Positive(a Atom) Fact {
	return Fact{true, a}
}

// Negative constructs the fact asserting that the given atom does not hold.
func Negative(a Atom) Fact {
	return Fact{false, a}
}

// Negate flips the polarity of this fact.
func (f Fact) Negate() Fact {
	return Fact{!f.Sign, f.Name}
}

// Contradicts determines whether two facts name the same atom with opposite
// sign.
func (f Fact) Contradicts(o Fact) bool {
	return f.Name == o.Name && f.Sign != o.Sign
}

// Cmp implements collection.Comparable.  Facts are ordered first by atom
// name, then by sign (positive before negative), so that Positive(a) and
// Negative(a) sort adjacently.
func (f Fact) Cmp(o Fact) int {
	if c := f.Name.Cmp(o.Name); c != 0 {
		return c
	}

	switch {
	case f.Sign == o.Sign:
		return 0
	case f.Sign:
		return -1
	default:
		return 1
	}
}

// String renders a fact using the conventional ¬ prefix for negation.
func (f Fact) String() string {
	if f.Sign {
		return string(f.Name)
	}

	return "¬" + string(f.Name)
}
