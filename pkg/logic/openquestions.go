package logic

import "github.com/dlogic/argue/pkg/collection"

// OpenArguments collects the Open leaves reachable from support's winning
// pro-arguments, recursing into each winning Argument's own nested
// Children.Winners.Pro.  Contra winners are deliberately not descended
// into: an Open leaf sitting only on a winning argument's contra side
// describes what remains undecided about a question nobody asked, not the
// question actually posed, and surfacing it would report atoms unrelated
// to the top-level question (see DESIGN.md).
func OpenArguments(pref Preference, support Support) []Argument {
	wl := ComputeWinnersLosers(pref, support)
	return openLeaves(wl.Winners.Pro)
}

func openLeaves(winners []ScoredArgument) []Argument {
	var out []Argument

	for _, w := range winners {
		switch w.Kind() {
		case KindOpen:
			out = append(out, w.Argument)
		case KindArgument:
			out = append(out, openLeaves(w.Children.Winners.Pro)...)
		}
	}

	return out
}

// Questions reduces the Open leaves of support, under pref, to the atoms
// whose determination would close every currently-open branch: the sorted,
// deduplicated union of every Open leaf's atoms, wrapped as a single
// candidate combination.  An empty result means nothing is left open.
func Questions(pref Preference, support Support) [][]Atom {
	opens := OpenArguments(pref, support)
	if len(opens) == 0 {
		return nil
	}

	atoms := collection.NewSortedSet[Atom]()

	for _, o := range opens {
		for _, f := range o.Facts() {
			atoms = atoms.Insert(f.Name)
		}
	}

	return [][]Atom{atoms.ToArray()}
}
