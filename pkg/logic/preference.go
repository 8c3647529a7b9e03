package logic

import "github.com/dlogic/argue/pkg/collection"

// Comparison is the tri-state result of comparing two propositions under a
// Preference: one outranks the other, or neither does.
type Comparison uint8

const (
	// Incomparable: neither proposition is preferred over the other.
	Incomparable Comparison = iota
	// Greater: the first proposition outranks the second.
	Greater
	// Lesser: the second proposition outranks the first.
	Lesser
)

// Preference ranks propositions against one another.  Compare is expected
// to be antisymmetric: Compare(p,q) == Greater iff Compare(q,p) == Lesser.
type Preference interface {
	Compare(p, q Proposition) Comparison
}

// ranking is a Preference backed by a fixed list of (rank, proposition)
// entries.  Higher rank numbers outrank lower ones; a proposition with no
// matching entry is Incomparable against everything.
type ranking struct {
	entries []collection.Pair[int, Proposition]
}

// NewRanking builds a Preference from explicit (rank, proposition) entries.
// Ties are deliberately not given special treatment beyond the natural
// antisymmetric fallback: two entries sharing a rank compare Incomparable.
func NewRanking(entries ...collection.Pair[int, Proposition]) Preference {
	return ranking{entries: entries}
}

func (r ranking) rankOf(p Proposition) (int, bool) {
	for _, e := range r.entries {
		if e.Right.Equals(p) {
			return e.Left, true
		}
	}

	return 0, false
}

func (r ranking) Compare(p, q Proposition) Comparison {
	pr, pok := r.rankOf(p)
	qr, qok := r.rankOf(q)

	if !pok || !qok {
		return Incomparable
	}

	switch {
	case pr > qr:
		return Greater
	case pr < qr:
		return Lesser
	default:
		return Incomparable
	}
}
