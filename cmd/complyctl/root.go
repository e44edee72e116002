package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "complyctl",
	Short: "Run and administer the ComplianceOS server",
	Long: `complyctl runs the ComplianceOS HTTP server and administers its
database, role policy and configuration.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
