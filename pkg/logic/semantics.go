package logic

import "github.com/dlogic/argue/pkg/collection"

// IsRebutted reports whether a is outranked by some undefeated opponent:
// some b in opponents such that b is not itself defeated, and b's head
// outranks a's head under pref.  An argument with no usable head (Open)
// can neither rebut nor be rebutted through this comparison.
func IsRebutted(pref Preference, opponents []Argument, a Argument) bool {
	for _, b := range opponents {
		if !IsDefeated(pref, b) && compareHeads(pref, b.Head(), a.Head()) == Greater {
			return true
		}
	}

	return false
}

// IsDefeated reports whether a fails to survive on its own terms.
// Assumption and Open arguments are never defeated: an Assumption is
// decisive by construction, and Open carries no premise to attack.  An
// Argument node is defeated when either every one of its pro arguments is
// itself defeated or rebutted by its contra, or some contra argument
// survives (is neither defeated nor rebutted by the pro) and outranks the
// argument itself.
func IsDefeated(pref Preference, a Argument) bool {
	if a.kind != KindArgument {
		return false
	}

	proAllDown := true

	for _, p := range a.pro {
		if !(IsDefeated(pref, p) || IsRebutted(pref, a.contra, p)) {
			proAllDown = false
			break
		}
	}

	if proAllDown {
		return true
	}

	for _, c := range a.contra {
		if IsDefeated(pref, c) || IsRebutted(pref, a.pro, c) {
			continue
		}

		if compareHeads(pref, c.Head(), a.Head()) == Greater {
			return true
		}
	}

	return false
}

func compareHeads(pref Preference, lhs, rhs collection.Option[Proposition]) Comparison {
	if !lhs.HasValue() || !rhs.HasValue() {
		return Incomparable
	}

	return pref.Compare(lhs.Unwrap(), rhs.Unwrap())
}

// ScoredArgument pairs a winning Argument with the recursive win/loss split
// over its own pro/contra support, so a caller can render the full
// explanation tree without recomputing it.  Children is the zero
// WinnersLosers for Assumption and Open arguments, which have no
// sub-support to recurse into.
type ScoredArgument struct {
	Argument
	Children WinnersLosers
}

// ScoredSupport is a pair of ScoredArgument lists: those for (pro) and
// against (contra) a question, each annotated with its own nested
// win/loss split.
type ScoredSupport struct {
	Pro    []ScoredArgument
	Contra []ScoredArgument
}

// WinnersLosers partitions a Support into the arguments that survive
// (Winners, recursively annotated) and those that are defeated or rebutted
// by the opposing side (Losers, kept flat: a loser's own sub-support is not
// needed to report that it lost).
type WinnersLosers struct {
	Winners ScoredSupport
	Losers  Support
}

// ComputeWinnersLosers splits support.Pro and support.Contra against one
// another: an argument on one side is a loser if it is intrinsically
// defeated, or if some undefeated argument on the opposing side outranks
// it.  Surviving arguments are scored with their own recursively computed
// WinnersLosers.
func ComputeWinnersLosers(pref Preference, support Support) WinnersLosers {
	var result WinnersLosers

	for _, p := range support.Pro {
		if IsDefeated(pref, p) || IsRebutted(pref, support.Contra, p) {
			result.Losers.Pro = append(result.Losers.Pro, p)
		} else {
			result.Winners.Pro = append(result.Winners.Pro, score(pref, p))
		}
	}

	for _, c := range support.Contra {
		if IsDefeated(pref, c) || IsRebutted(pref, support.Pro, c) {
			result.Losers.Contra = append(result.Losers.Contra, c)
		} else {
			result.Winners.Contra = append(result.Winners.Contra, score(pref, c))
		}
	}

	return result
}

// score recursively computes an Argument's own WinnersLosers over its
// pro/contra support.  Assumption and Open carry no sub-support, so they
// terminate with a zero Children.
func score(pref Preference, a Argument) ScoredArgument {
	scored := ScoredArgument{Argument: a}

	if a.Kind() == KindArgument {
		scored.Children = ComputeWinnersLosers(pref, Support{Pro: a.Pro(), Contra: a.Contra()})
	}

	return scored
}
