package collection

// Pair provides a simple encapsulation of two items paired together. Used by
// logic.NewRanking to hold (rank, proposition) entries.
type Pair[S any, T any] struct {
	Left  S
	Right T
}

// NewPair returns a new instance of Pair.
func NewPair[S any, T any](left S, right T) Pair[S, T] {
	return Pair[S, T]{left, right}
}
