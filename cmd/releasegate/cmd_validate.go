package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vertti/releasegate/pkg/releasecheck"
)

var (
	validateProduct   string
	validateArtifacts string
)

var validateCmd = &cobra.Command{
	Use:   "validate <old-version> <new-version>",
	Short: "Check that a new version legally follows an old one",
	Long: `Check that a new version legally follows an old one.

Versions may be literals (1.2.0-beta01), @FILE to read a version file,
FILE#PATH to read a string from a JSON file (package.json#version),
or git:PREFIX for the highest version tagged PREFIXX.Y.Z (git:v, git:espresso-).`,
	Args: cobra.ExactArgs(2),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateProduct, "product", "", "product name; lists its build targets")
	validateCmd.Flags().StringVar(&validateArtifacts, "artifacts", "", "artifact map YAML (default: built-in map)")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	resolver := newResolver()

	from, err := resolver.Resolve(args[0])
	if err != nil {
		return fmt.Errorf("old version: %w", err)
	}
	to, err := resolver.Resolve(args[1])
	if err != nil {
		return fmt.Errorf("new version: %w", err)
	}
	slog.Debug("resolved versions", "from", from, "to", to)

	c := &releasecheck.Check{
		Product: validateProduct,
		From:    from,
		To:      to,
	}

	if validateProduct != "" {
		m, err := loadArtifacts(validateArtifacts)
		if err != nil {
			return err
		}
		targets, ok := m.Targets(validateProduct)
		if !ok {
			return fmt.Errorf("unknown product %q", validateProduct)
		}
		c.Targets = targets
	}

	return runCheck(cmd.OutOrStdout(), c)
}
