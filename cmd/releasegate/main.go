package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vertti/releasegate/pkg/logging"
)

// Version is set at build time via ldflags
var Version = "dev"

var logLevel string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "releasegate",
	Short:        "Gate release versions on the alpha/beta/rc/stable progression",
	Long:         "Releasegate checks that a proposed release version is a legal successor of the previous one.",
	Version:      Version,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logging.SetDefaultStructuredLogger("releasegate", Version, logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "diagnostic log level: debug, info, warn, error (default from "+logging.EnvVar+")")
}
