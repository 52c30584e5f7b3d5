package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var artifactsFile string

var artifactsCmd = &cobra.Command{
	Use:   "artifacts [product]",
	Short: "List products, or the build targets of one product",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runArtifacts,
}

func init() {
	artifactsCmd.Flags().StringVar(&artifactsFile, "file", "", "artifact map YAML (default: built-in map)")
	rootCmd.AddCommand(artifactsCmd)
}

func runArtifacts(cmd *cobra.Command, args []string) error {
	m, err := loadArtifacts(artifactsFile)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		for _, product := range m.Products() {
			_, _ = fmt.Fprintln(out, product)
		}
		return nil
	}

	targets, ok := m.Targets(args[0])
	if !ok {
		return fmt.Errorf("unknown product %q", args[0])
	}
	for _, target := range targets {
		_, _ = fmt.Fprintln(out, target)
	}
	return nil
}
