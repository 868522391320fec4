package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"stopdfa/internal/adapter/automaton"
)

var dfaDump bool

var dfaCmd = &cobra.Command{
	Use:   "dfa",
	Short: "Show the stopword automaton",
	Long: `Print the size of the stopword automaton. With --dump, print every
transition as "from --'c'--> to", marking accepting targets with *.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		trie := GetEngine().Trie
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "Stopwords:   %d\n", trie.Len())
		fmt.Fprintf(out, "States:      %d\n", trie.StateCount())
		fmt.Fprintf(out, "Transitions: %d\n", trie.TransitionCount())

		if dfaDump {
			fmt.Fprintln(out)
			dumpTransitions(out, trie)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dfaCmd)
	dfaCmd.Flags().BoolVar(&dfaDump, "dump", false, "print every transition")
}

func dumpTransitions(w io.Writer, trie *automaton.Trie) {
	trie.Transitions(func(from automaton.State, r rune, to automaton.State) {
		mark := ""
		if trie.IsAccept(to) {
			mark = "*"
		}
		fmt.Fprintf(w, "%d --%q--> %d%s\n", from, r, to, mark)
	})
}
