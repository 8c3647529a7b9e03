package logic

import "github.com/dlogic/argue/pkg/collection"

// ArgKind tags the variant of an Argument.
type ArgKind uint8

const (
	// KindAssumption: the premise alone decides the sub-question.
	KindAssumption ArgKind = iota
	// KindArgument: the premise is relevant but not decisive; pro/contra
	// argue the residual sub-question.
	KindArgument
	// KindOpen: no premise advances the sub-question; facts names the
	// atoms of the still-undecided disjuncts.
	KindOpen
)

// Argument is a justification structure for a sub-question, built
// recursively from the premises of an information base.
type Argument struct {
	kind    ArgKind
	premise Proposition
	pro     []Argument
	contra  []Argument
	facts   []Fact
}

// NewAssumption constructs an Assumption argument: premise p is, on its own,
// decisive for the current sub-question.
func NewAssumption(p Proposition) Argument {
	return Argument{kind: KindAssumption, premise: p}
}

// NewArgument constructs an Argument node: premise p is relevant but not
// decisive, and the residual sub-question is further argued by pro/contra.
func NewArgument(p Proposition, pro, contra []Argument) Argument {
	return Argument{kind: KindArgument, premise: p, pro: pro, contra: contra}
}

// NewOpen constructs an Open argument: no premise advances the
// sub-question, and facts names the atoms of what remains undecided.
func NewOpen(facts []Fact) Argument {
	return Argument{kind: KindOpen, facts: facts}
}

// Kind returns this argument's variant.
func (a Argument) Kind() ArgKind {
	return a.kind
}

// Pro returns the supporting sub-arguments of an Argument node (nil for
// Assumption/Open).
func (a Argument) Pro() []Argument {
	return a.pro
}

// Contra returns the opposing sub-arguments of an Argument node (nil for
// Assumption/Open).
func (a Argument) Contra() []Argument {
	return a.contra
}

// Facts returns the atoms of an Open argument's undecided disjuncts (nil
// otherwise).
func (a Argument) Facts() []Fact {
	return a.facts
}

// Head returns this argument's premise, or None for Open (which carries no
// premise and so has no usable head for preference comparison).
func (a Argument) Head() collection.Option[Proposition] {
	if a.kind == KindOpen {
		return collection.None[Proposition]()
	}

	return collection.Some(a.premise)
}

// Support is a pair of argument lists: those for (pro) and against (contra)
// a question.
type Support struct {
	Pro    []Argument
	Contra []Argument
}

// ProContra computes the pro and contra arguments for questionDNF from the
// given information base.
func ProContra(questionDNF DNF, information []Proposition) Support {
	return Support{
		Pro:    Arguments(questionDNF, information),
		Contra: Arguments(Negate(questionDNF), information),
	}
}

// Arguments builds the resolution-style argument list for questionDNF from
// information, per premise.  Each premise is classified as relevant/decisive
// (Assumption), relevant-but-not-decisive (recurse into a nested Argument,
// or drop if the recursion finds nothing), or irrelevant (dropped, save for
// the fallback described below).
//
// When every premise turns out irrelevant (so the loop below yields
// nothing) and there was at least one premise to consider, a single Open
// argument is appended reporting what remains undecided: the atoms of
// whichever premise's own cases were most informative (i.e. the most
// disjunctive amongst the irrelevant premises), or — when no premise was
// itself disjunctive — the atoms of the negated question. This is how
// §4.6's open-question atoms surface even when the information base has
// nothing whatsoever to say about the question.
func Arguments(questionDNF DNF, information []Proposition) []Argument {
	var (
		result         []Argument
		openCandidates DNF
	)

	for i, p := range information {
		var (
			c            = Cases(p)
			n            = Negate(questionDNF)
			restQuestion = ConsistentCases(c, n).append(ConsistentCases(n, c))
			relevant     = len(restQuestion) < len(c)*len(n)
			decisive     = len(restQuestion) == 0
			rest         = remove(information, i)
		)

		switch {
		case relevant && decisive:
			result = append(result, NewAssumption(p))
		case relevant:
			sub := ProContra(Negate(restQuestion), rest)
			if len(sub.Pro) != 0 || len(sub.Contra) != 0 {
				result = append(result, NewArgument(p, sub.Pro, sub.Contra))
			}
		default:
			if len(c) > 1 {
				openCandidates = openCandidates.append(c)
			}
		}
	}

	if len(result) == 0 && len(information) > 0 && len(questionDNF) > 0 {
		source := openCandidates
		if len(source) == 0 {
			source = Negate(questionDNF)
		}

		result = append(result, NewOpen(flattenFacts(source)))
	}

	return result
}

func remove(information []Proposition, i int) []Proposition {
	out := make([]Proposition, 0, len(information)-1)
	out = append(out, information[:i]...)
	out = append(out, information[i+1:]...)

	return out
}

func flattenFacts(d DNF) []Fact {
	var out []Fact

	for _, c := range d {
		out = append(out, c...)
	}

	return out
}
