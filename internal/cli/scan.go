package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"stopdfa/internal/adapter/fs"
	"stopdfa/internal/usecase"
)

var (
	scanIncludes []string
	scanExcludes []string
	scanWorkers  int
	scanJSON     bool
	scanQuiet    bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Classify every text file under a directory",
	Long: `Classify every file selected by the scan include/exclude globs and report
per-file and total stopword occurrences.

Examples:
  stopdfa scan .
  stopdfa scan ./docs --include "**/*.rst" --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringSliceVar(&scanIncludes, "include", nil, "include globs (default from config)")
	scanCmd.Flags().StringSliceVar(&scanExcludes, "exclude", nil, "exclude globs (default from config)")
	scanCmd.Flags().IntVarP(&scanWorkers, "workers", "w", 0, "concurrent files (default from config)")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "output as JSON")
	scanCmd.Flags().BoolVarP(&scanQuiet, "quiet", "q", false, "hide the progress bar")
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	path := rootDir
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}

	includes := cfg.Scan.Includes
	if len(scanIncludes) > 0 {
		includes = scanIncludes
	}
	excludes := cfg.Scan.Excludes
	if len(scanExcludes) > 0 {
		excludes = scanExcludes
	}
	workers := cfg.Scan.Workers
	if scanWorkers > 0 {
		workers = scanWorkers
	}

	walker := fs.NewWalker(includes, excludes)
	scanUC := usecase.NewScanUseCase(walker, GetEngine().Classifier, workers, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	var progress usecase.ProgressFunc
	if !scanQuiet && !scanJSON {
		progress = newScanProgress()
	}

	result, err := scanUC.Scan(ctx, path, progress)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if scanJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprintf(out, "\nScan complete:\n")
	fmt.Fprintf(out, "  Files classified: %d\n", len(result.Files))
	fmt.Fprintf(out, "  Tokens:           %d\n", result.Tokens)
	fmt.Fprintf(out, "  Stopwords:        %d\n", result.Stopwords)
	if result.Tokens > 0 {
		fmt.Fprintf(out, "  Stopword ratio:   %.1f%%\n", 100*float64(result.Stopwords)/float64(result.Tokens))
	}
	fmt.Fprintln(out)
	renderCounts(out, result.Totals)

	if len(result.Errors) > 0 {
		fmt.Fprintf(out, "\nWarnings:\n")
		for _, e := range result.Errors {
			fmt.Fprintf(out, "  - %s\n", e)
		}
	}

	return nil
}

// newScanProgress returns a progress callback that lazily creates a bar
// once the number of files is known.
func newScanProgress() usecase.ProgressFunc {
	var (
		bar       *progressbar.ProgressBar
		mu        sync.Mutex
		startTime time.Time
	)

	return func(processed, total int, currentFile string) {
		mu.Lock()
		defer mu.Unlock()

		if bar == nil {
			startTime = time.Now()
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Scanning[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(os.Stderr)
				}),
			)
		}

		_ = bar.Set(processed)

		elapsed := time.Since(startTime)
		rate := float64(processed) / elapsed.Seconds()
		if rate > 0 {
			eta := time.Duration(float64(total-processed)/rate) * time.Second
			bar.Describe(fmt.Sprintf("[cyan]Scanning[reset] ETA: %s", formatDuration(eta)))
		}
	}
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "<1s"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}
