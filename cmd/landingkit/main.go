// cmd/landingkit/main.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"landingkit/internal/config"
)

// global flags
var (
	configPath string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:           "landingkit",
	Short:         "landingkit - build and export single-page pitch sites",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.FileName, "Path to the project config file.")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging.")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Operation failed: %v\n", err)
		os.Exit(1)
	}
}
