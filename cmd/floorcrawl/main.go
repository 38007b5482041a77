// Package main is the entry point for floorcrawl.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/samdwyer/floorcrawl/internal/config"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "floorcrawl",
	Short: "A turn-based zombie roguelike",
	Long: `floorcrawl is a terminal roguelike. Climb floor after floor of a
building overrun by zombies, using whatever you find on the way.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return cfg.Validate()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), modeMenu)
	},
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new game, skipping the main menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), modeNew)
	},
}

var continueCmd = &cobra.Command{
	Use:   "continue",
	Short: "Continue the saved game, skipping the main menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), modeContinue)
	},
}

func main() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.BindFlags(rootCmd.PersistentFlags())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(continueCmd)
	rootCmd.AddCommand(genCmd)
}
