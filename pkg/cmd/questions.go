package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dlogic/argue/pkg/logic"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Report the minimal atoms left undecided about a question.",
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
		}).Debug("computing open questions")

		support := logic.ProContra(logic.Cases(question), information)
		renderQuestions(cmd, logic.Questions(preference, support))
	},
}

func init() {
	questionsCmd.Flags().String("question", "", "the question to decide")
	questionsCmd.Flags().StringArray("info", nil, "an information-base premise (repeatable)")
	questionsCmd.Flags().StringArray("rank", nil, "a preference entry \"<expr>=<rank>\" (repeatable, higher ranks outrank lower ones)")
}
