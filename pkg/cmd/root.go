package cmd

import (
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is empty unless set at link time (-ldflags "-X ..."); when empty,
// --version reports the module version from the build info instead.
var Version string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "argue",
	Short: "A defeasible argumentation engine for propositional questions.",
	Long:  "argue decides a propositional question against an information base, showing winning and losing arguments and what remains open.",
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Print("argue ")

			if Version != "" {
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				fmt.Printf("%s", info.Main.Version)
			} else {
				fmt.Printf("(unknown version)")
			}

			fmt.Println()
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main() and only needs to happen
// once.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().String("format", "text", "output format: text or json")
	rootCmd.PersistentFlags().Uint("width", 0, "wrap output to this width (0: detect terminal width)")

	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(questionsCmd)

	cobra.OnInitialize(func() {
		log.SetLevel(log.InfoLevel)
	})
}

func initVerbosity(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}
