package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dlogic/argue/pkg/collection"
	"github.com/dlogic/argue/pkg/logic"
	"github.com/dlogic/argue/pkg/reader"
	"github.com/spf13/cobra"
)

func parseProposition(expr string) logic.Proposition {
	p, err := reader.Read(expr)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return p
}

func parseInformation(exprs []string) []logic.Proposition {
	information := make([]logic.Proposition, len(exprs))
	for i, expr := range exprs {
		information[i] = parseProposition(expr)
	}

	return information
}

// parsePreference builds a Preference from "<expr>=<rank>" entries, where
// higher ranks outrank lower ones.  An empty list yields a Preference under
// which nothing outranks anything else.
func parsePreference(entries []string) logic.Preference {
	pairs := make([]collection.Pair[int, logic.Proposition], len(entries))

	for i, entry := range entries {
		expr, rankStr, ok := strings.Cut(entry, "=")
		if !ok {
			fmt.Printf("invalid --rank entry %q: expected <expr>=<rank>\n", entry)
			os.Exit(2)
		}

		rank, err := strconv.Atoi(strings.TrimSpace(rankStr))
		if err != nil {
			fmt.Printf("invalid --rank entry %q: %s\n", entry, err)
			os.Exit(2)
		}

		pairs[i] = collection.NewPair(rank, parseProposition(strings.TrimSpace(expr)))
	}

	return logic.NewRanking(pairs...)
}

func requireFlags(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		f := cmd.Flags().Lookup(name)
		if f == nil || !f.Changed {
			fmt.Printf("missing required --%s flag\n", name)
			os.Exit(2)
		}
	}
}
