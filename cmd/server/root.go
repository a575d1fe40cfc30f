package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "1.0.0"

const serviceName = "promptcraft-api"

var rootCmd = &cobra.Command{
	Use:   "promptcraft",
	Short: "Promptcraft Guild API server",
	Long: `Promptcraft Guild API serves prompt generation and evaluation for the
Promptcraft Guild card game, plus the card catalog and token calculator.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s v%s\n", serviceName, version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
