package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vertti/releasegate/pkg/artifacts"
	"github.com/vertti/releasegate/pkg/check"
	"github.com/vertti/releasegate/pkg/manifest"
	"github.com/vertti/releasegate/pkg/output"
	"github.com/vertti/releasegate/pkg/releasecheck"
	"github.com/vertti/releasegate/pkg/versionsource"
)

var runFile string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Check every release listed in a " + manifest.FileName + " manifest",
	Args:  cobra.NoArgs,
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&runFile, "file", "", "path to release manifest (default: search up from current directory)")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, _ []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	manifestPath, err := manifest.FindFile(wd, runFile)
	if err != nil {
		return err
	}
	slog.Debug("using release manifest", "path", manifestPath)

	m, err := manifest.ParseFile(manifestPath)
	if err != nil {
		return err
	}

	artifactMap, err := loadArtifacts(m.Artifacts)
	if err != nil {
		return err
	}

	resolver := newResolver()
	out := cmd.OutOrStdout()
	results := make([]check.Result, 0, len(m.Releases))

	for _, r := range m.Releases {
		result := checkRelease(resolver, artifactMap, r)
		output.Fprint(out, result)
		results = append(results, result)
	}

	passed, failed := check.Summary(results)
	output.FprintSummary(out, passed, failed)
	if failed > 0 {
		return ErrCheckFailed
	}
	return nil
}

// checkRelease resolves both version sources of r and runs its check.
// A source that cannot be resolved fails this release only.
func checkRelease(resolver *versionsource.Resolver, artifactMap artifacts.Map, r manifest.Release) check.Result {
	c := &releasecheck.Check{Product: r.Product, From: r.From, To: r.To}
	result := check.Result{Name: c.Name()}

	from, err := resolver.Resolve(r.From)
	if err != nil {
		return result.Failf("from: %w", err)
	}
	to, err := resolver.Resolve(r.To)
	if err != nil {
		return result.Failf("to: %w", err)
	}
	c.From, c.To = from, to

	if targets, ok := artifactMap.Targets(r.Product); ok {
		c.Targets = targets
	} else {
		slog.Warn("product not in artifact map", "product", r.Product)
	}
	return c.Run()
}
