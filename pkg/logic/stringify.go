package logic

import (
	"sort"
	"strings"
)

// String renders an argument in a canonical, order-independent form: nested
// argument strings are sorted lexicographically before being joined, so
// that two arguments built from information given in different orders still
// print identically.
func (a Argument) String() string {
	switch a.kind {
	case KindAssumption:
		return "Assumption(" + a.premise.String() + ")"
	case KindOpen:
		return "Open(" + joinFacts(a.facts) + ")"
	case KindArgument:
		return "(pro: [" + joinArguments(a.pro) + "], contra: [" + joinArguments(a.contra) + "], " +
			a.premise.String() + ")"
	default:
		panic("unknown argument kind")
	}
}

func joinArguments(args []Argument) string {
	strs := make([]string, len(args))
	for i, a := range args {
		strs[i] = a.String()
	}

	sort.Strings(strs)

	return strings.Join(strs, ", ")
}

func joinFacts(facts []Fact) string {
	strs := make([]string, len(facts))
	for i, f := range facts {
		strs[i] = f.String()
	}

	sort.Strings(strs)

	return strings.Join(strs, ", ")
}
