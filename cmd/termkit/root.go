package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jask/termkit/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "termkit",
	Short: "termkit is a terminal UI toolkit with a console task runner and modal dialogs",
	Long: `termkit runs long tasks in a scrolling console without blocking the UI and
asks questions through modal dialogs whose answers are routed by key.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.config/termkit/config.toml)")
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadFile(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
