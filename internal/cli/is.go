package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var isCmd = &cobra.Command{
	Use:   "is <word>...",
	Short: "Test whether words are stopwords",
	Long: `Test each word against the stopword automaton. Words are lowercased
before the lookup; no tokenization is applied.

Examples:
  stopdfa is the quick brown fox
  stopdfa is "Don't"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIs,
}

func init() {
	rootCmd.AddCommand(isCmd)
}

func runIs(cmd *cobra.Command, args []string) error {
	classifier := GetEngine().Classifier
	out := cmd.OutOrStdout()
	for _, word := range args {
		if classifier.IsStopword(word) {
			fmt.Fprintf(out, "'%s' is a stopword.\n", word)
		} else {
			fmt.Fprintf(out, "'%s' is not a stopword.\n", word)
		}
	}
	return nil
}
