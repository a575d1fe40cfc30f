package main

import (
	"os"
)

// @title Promptcraft Guild API
// @version 1.0.0
// @description Prompt generation and evaluation for the Promptcraft Guild card game.
// @host localhost:8000
// @BasePath /
// @schemes http
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
