package main

import (
	"fmt"
	"os"

	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

const defaultConfigPath = "config.yaml"

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "transcript-flow",
		Short: "Meeting transcript formatter",
		Long: `transcript-flow turns raw meeting transcripts (plain text or WebVTT)
into structured Markdown with speaker-grouped paragraphs.

Optional steps:
  - Glossary substitution with unknown acronym tracking
  - Grammar checking through LanguageTool
  - Summary and action item extraction`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "Path to config file")

	rootCmd.AddCommand(formatCmd(&configPath))
	rootCmd.AddCommand(watchCmd(&configPath))
	rootCmd.AddCommand(glossaryCmd(&configPath))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads .env, then the config file. The default config path may
// be absent, in which case built-in defaults apply.
func loadConfig(path string) (*config.Config, error) {
	if err := config.LoadEnvFiles(".env"); err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && path == defaultConfigPath {
			return config.Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return config.Load(path)
}
