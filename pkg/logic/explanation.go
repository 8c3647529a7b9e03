package logic

// Explanation is the full result of putting a question to an information
// base under a preference: the winning and losing arguments on each side,
// plus whatever remains open.  Winners carry their own recursive win/loss
// split (see WinnersLosers); losers are reported flat.
type Explanation struct {
	Winners       ScoredSupport
	Losers        Support
	OpenQuestions [][]Atom
}

// Explain decomposes question into cases, builds the pro/contra arguments
// from information, and resolves them under preference into a full
// Explanation.
func Explain(preference Preference, question Proposition, information []Proposition) Explanation {
	support := ProContra(Cases(question), information)
	wl := ComputeWinnersLosers(preference, support)

	return Explanation{
		Winners:       wl.Winners,
		Losers:        wl.Losers,
		OpenQuestions: Questions(preference, support),
	}
}
