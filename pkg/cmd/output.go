package cmd

import (
	"fmt"
	"strings"

	"github.com/dlogic/argue/pkg/logic"
	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"
)

// argumentDTO renders an argument by head only: its kind and premise/facts,
// without descending into its own pro/contra support.  This is the shape
// losers are reported in — a loser's sub-support isn't needed to report
// that it lost (see logic.WinnersLosers).
type argumentDTO struct {
	Kind    string   `json:"kind"`
	Premise string   `json:"premise,omitempty"`
	Facts   []string `json:"facts,omitempty"`
}

func toDTO(a logic.Argument) argumentDTO {
	switch a.Kind() {
	case logic.KindAssumption:
		return argumentDTO{Kind: "assumption", Premise: a.Head().Unwrap().String()}
	case logic.KindOpen:
		return argumentDTO{Kind: "open", Facts: factStrings(a.Facts())}
	default:
		return argumentDTO{Kind: "argument", Premise: a.Head().Unwrap().String()}
	}
}

func toDTOs(args []logic.Argument) []argumentDTO {
	out := make([]argumentDTO, len(args))
	for i, a := range args {
		out[i] = toDTO(a)
	}

	return out
}

func factStrings(facts []logic.Fact) []string {
	out := make([]string, len(facts))
	for i, f := range facts {
		out[i] = f.String()
	}

	return out
}

type supportDTO struct {
	Pro    []argumentDTO `json:"pro"`
	Contra []argumentDTO `json:"contra"`
}

func toSupportDTO(s logic.Support) supportDTO {
	return supportDTO{Pro: toDTOs(s.Pro), Contra: toDTOs(s.Contra)}
}

// scoredArgumentDTO renders a winning argument by head, plus — for an
// Argument node — the recursive win/loss split over its own pro/contra,
// so a reader can tell its surviving sub-arguments from its defeated ones.
type scoredArgumentDTO struct {
	Kind     string            `json:"kind"`
	Premise  string            `json:"premise,omitempty"`
	Facts    []string          `json:"facts,omitempty"`
	Children *winnersLosersDTO `json:"children,omitempty"`
}

func toScoredDTO(a logic.ScoredArgument) scoredArgumentDTO {
	head := toDTO(a.Argument)
	dto := scoredArgumentDTO{Kind: head.Kind, Premise: head.Premise, Facts: head.Facts}

	if a.Kind() == logic.KindArgument {
		children := toWinnersLosersDTO(a.Children)
		dto.Children = &children
	}

	return dto
}

func toScoredDTOs(args []logic.ScoredArgument) []scoredArgumentDTO {
	out := make([]scoredArgumentDTO, len(args))
	for i, a := range args {
		out[i] = toScoredDTO(a)
	}

	return out
}

type scoredSupportDTO struct {
	Pro    []scoredArgumentDTO `json:"pro"`
	Contra []scoredArgumentDTO `json:"contra"`
}

func toScoredSupportDTO(s logic.ScoredSupport) scoredSupportDTO {
	return scoredSupportDTO{Pro: toScoredDTOs(s.Pro), Contra: toScoredDTOs(s.Contra)}
}

type winnersLosersDTO struct {
	Winners scoredSupportDTO `json:"winners"`
	Losers  supportDTO       `json:"losers"`
}

func toWinnersLosersDTO(wl logic.WinnersLosers) winnersLosersDTO {
	return winnersLosersDTO{Winners: toScoredSupportDTO(wl.Winners), Losers: toSupportDTO(wl.Losers)}
}

type explanationDTO struct {
	Winners       scoredSupportDTO `json:"winners"`
	Losers        supportDTO       `json:"losers"`
	OpenQuestions [][]string       `json:"open_questions"`
}

func toExplanationDTO(exp logic.Explanation) explanationDTO {
	questions := make([][]string, len(exp.OpenQuestions))

	for i, q := range exp.OpenQuestions {
		row := make([]string, len(q))
		for j, atom := range q {
			row[j] = string(atom)
		}

		questions[i] = row
	}

	return explanationDTO{
		Winners:       toScoredSupportDTO(exp.Winners),
		Losers:        toSupportDTO(exp.Losers),
		OpenQuestions: questions,
	}
}

func renderExplanation(cmd *cobra.Command, exp logic.Explanation) {
	if GetString(cmd, "format") == "json" {
		data, err := json.MarshalIndent(toExplanationDTO(exp), "", "  ")
		if err != nil {
			fmt.Println(err)
			return
		}

		fmt.Println(string(data))

		return
	}

	width := terminalWidth(cmd)

	fmt.Println("Winners:")
	printScoredArgumentList("  pro", exp.Winners.Pro, width, "    ")
	printScoredArgumentList("  contra", exp.Winners.Contra, width, "    ")

	fmt.Println("Losers:")
	printArgumentList("  pro", exp.Losers.Pro, width)
	printArgumentList("  contra", exp.Losers.Contra, width)

	printOpenQuestions(exp.OpenQuestions, width)
}

// headLabel renders an argument by head only, without descending into its
// own pro/contra support (see argumentDTO).
func headLabel(a logic.Argument) string {
	switch a.Kind() {
	case logic.KindAssumption:
		return "Assumption(" + a.Head().Unwrap().String() + ")"
	case logic.KindOpen:
		return "Open(" + strings.Join(factStrings(a.Facts()), ", ") + ")"
	default:
		return "Argument(" + a.Head().Unwrap().String() + ")"
	}
}

func printArgumentList(label string, args []logic.Argument, width int) {
	if len(args) == 0 {
		fmt.Printf("%s: (none)\n", label)
		return
	}

	fmt.Printf("%s:\n", label)

	for _, a := range args {
		fmt.Println(wrap(headLabel(a), width, "    "))
	}
}

// printScoredArgumentList renders winning arguments by head, recursing into
// an Argument node's own nested winners/losers so a reader can tell its
// surviving sub-arguments from its defeated ones.
func printScoredArgumentList(label string, args []logic.ScoredArgument, width int, indent string) {
	if len(args) == 0 {
		fmt.Printf("%s: (none)\n", label)
		return
	}

	fmt.Printf("%s:\n", label)

	for _, a := range args {
		fmt.Println(wrap(headLabel(a.Argument), width, indent))

		if a.Kind() != logic.KindArgument {
			continue
		}

		childIndent := indent + "  "
		printScoredArgumentList(childIndent+"pro", a.Children.Winners.Pro, width, childIndent+"  ")
		printScoredArgumentList(childIndent+"contra", a.Children.Winners.Contra, width, childIndent+"  ")
		printArgumentList(childIndent+"losers pro", a.Children.Losers.Pro, width)
		printArgumentList(childIndent+"losers contra", a.Children.Losers.Contra, width)
	}
}

func printOpenQuestions(questions [][]logic.Atom, width int) {
	if len(questions) == 0 {
		fmt.Println("Open questions: (none)")
		return
	}

	fmt.Println("Open questions:")

	for _, q := range questions {
		atoms := make([]string, len(q))
		for i, a := range q {
			atoms[i] = string(a)
		}

		fmt.Println(wrap(strings.Join(atoms, ", "), width, "  "))
	}
}

func renderQuestions(cmd *cobra.Command, questions [][]logic.Atom) {
	if GetString(cmd, "format") == "json" {
		rows := make([][]string, len(questions))

		for i, q := range questions {
			row := make([]string, len(q))
			for j, a := range q {
				row[j] = string(a)
			}

			rows[i] = row
		}

		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			fmt.Println(err)
			return
		}

		fmt.Println(string(data))

		return
	}

	printOpenQuestions(questions, terminalWidth(cmd))
}

// wrap breaks s into width-wide lines, each prefixed with indent, breaking
// only at spaces so words stay intact.
func wrap(s string, width int, indent string) string {
	limit := width - len(indent)
	if limit < 1 {
		return indent + s
	}

	words := strings.Fields(s)
	if len(words) == 0 {
		return indent + s
	}

	var (
		lines []string
		cur   = words[0]
	)

	for _, w := range words[1:] {
		if len(cur)+1+len(w) > limit {
			lines = append(lines, cur)
			cur = w
		} else {
			cur += " " + w
		}
	}

	lines = append(lines, cur)

	for i, l := range lines {
		lines[i] = indent + l
	}

	return strings.Join(lines, "\n")
}
