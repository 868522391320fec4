package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var stopwordsCount bool

var stopwordsCmd = &cobra.Command{
	Use:   "stopwords",
	Short: "List the active stopwords",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		words := GetEngine().Trie.Words()
		if stopwordsCount {
			fmt.Fprintln(cmd.OutOrStdout(), len(words))
			return nil
		}
		for _, w := range words {
			fmt.Fprintln(cmd.OutOrStdout(), w)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stopwordsCmd)
	stopwordsCmd.Flags().BoolVar(&stopwordsCount, "count", false, "print only the number of stopwords")
}
