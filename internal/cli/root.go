package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stopdfa/config"
	"stopdfa/internal/logging"
	"stopdfa/internal/usecase"
)

var (
	cfgFile  string
	cfg      *config.Config
	rootDir  string
	logLevel string
	logger   = zap.NewNop()
	engine   *usecase.Engine
)

var rootCmd = &cobra.Command{
	Use:   "stopdfa",
	Short: "Stopword DFA - flag English stopwords in text",
	Long: `stopdfa builds a deterministic automaton over the English stopword list
and uses it to classify every token of a text as stopword or not, with
per-stopword occurrence counts.

Example usage:
  stopdfa check -t "The cat and the dog"   # Classify a text
  stopdfa check notes.txt --view counts     # Occurrence table for a file
  stopdfa scan ./docs                       # Classify every text file in a directory
  stopdfa is the quick brown fox            # Test single words`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}

		logger, err = logging.New(cfg.Logging)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		engine, err = usecase.NewEngine(cfg)
		if err != nil {
			return err
		}
		logger.Debug("stopword automaton built",
			zap.Int("stopwords", engine.Trie.Len()),
			zap.Int("states", engine.Trie.StateCount()),
			zap.Int("transitions", engine.Trie.TransitionCount()),
		)

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./stopdfa.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "directory to look for stopdfa.yaml in (default is current directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default from config)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetEngine() *usecase.Engine {
	return engine
}
