package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"stopdfa/internal/domain"
	"stopdfa/internal/usecase"
)

var (
	checkText    string
	checkView    string
	checkJSON    bool
	checkNoColor bool
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Classify the tokens of a text",
	Long: `Classify every token of a text as stopword or not.

The text is taken from --text, from the file argument, or from stdin when it
is a pipe. Output has three views: the per-token result log, the original text
with stopwords highlighted, and the stopword occurrence table.

Examples:
  stopdfa check -t "The cat and the dog"
  stopdfa check notes.txt --view counts
  cat notes.txt | stopdfa check --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&checkText, "text", "t", "", "text to classify")
	checkCmd.Flags().StringVar(&checkView, "view", "all", "what to show: all, logs, text or counts")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "output as JSON")
	checkCmd.Flags().BoolVar(&checkNoColor, "no-color", false, "disable highlighting")
}

// checkOutput is the JSON form of a check.
type checkOutput struct {
	domain.Result
	Lines []domain.Line `json:"lines"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	switch checkView {
	case "all", "logs", "text", "counts":
	default:
		return fmt.Errorf("unknown view %q (want all, logs, text or counts)", checkView)
	}

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	res := GetEngine().Classifier.Classify(text)
	lines := usecase.Highlight(text, res)

	out := cmd.OutOrStdout()
	if checkJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(checkOutput{Result: res, Lines: lines})
	}

	p := newPalette(GetConfig().Output.Color && !checkNoColor)
	all := checkView == "all"
	if all || checkView == "logs" {
		if all {
			heading(out, "Result Logs")
		}
		renderLogs(out, res.Tokens, p)
	}
	if all || checkView == "text" {
		if all {
			fmt.Fprintln(out)
			heading(out, "Result Text")
		}
		renderText(out, lines, p)
	}
	if all || checkView == "counts" {
		if all {
			fmt.Fprintln(out)
			heading(out, "Stopword Occurrences")
		}
		renderCounts(out, res.Occurrences)
	}

	return nil
}

// readInput returns the text to classify from --text, a file argument or
// piped stdin, in that order.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if cmd.Flags().Changed("text") {
		return checkText, nil
	}

	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
		return string(data), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil {
			return "", fmt.Errorf("failed to check stdin: %w", err)
		}
		if stat.Mode()&os.ModeCharDevice != 0 {
			return "", fmt.Errorf("no input: use --text, a file argument, or pipe text to stdin")
		}
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
