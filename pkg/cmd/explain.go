package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dlogic/argue/pkg/logic"
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Decide a question against an information base and show why.",
	Run: func(cmd *cobra.Command, args []string) {
		initVerbosity(cmd)
		requireFlags(cmd, "question")

		var (
			question    = parseProposition(GetString(cmd, "question"))
			information = parseInformation(GetStringArray(cmd, "info"))
			preference  = parsePreference(GetStringArray(cmd, "rank"))
		)

		log.WithFields(log.Fields{
			"question": question.String(),
			"premises": len(information),
		}).Debug("explaining question")

		exp := logic.Explain(preference, question, information)
		renderExplanation(cmd, exp)
	},
}

func init() {
	explainCmd.Flags().String("question", "", "the question to decide")
	explainCmd.Flags().StringArray("info", nil, "an information-base premise (repeatable)")
	explainCmd.Flags().StringArray("rank", nil, "a preference entry \"<expr>=<rank>\" (repeatable, higher ranks outrank lower ones)")
}
