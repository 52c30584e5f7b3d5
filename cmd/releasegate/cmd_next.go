package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vertti/releasegate/pkg/release"
	"github.com/vertti/releasegate/pkg/version"
)

var nextCmd = &cobra.Command{
	Use:   "next <version>",
	Short: "List the legal next versions",
	Args:  cobra.ExactArgs(1),
	RunE:  runNext,
}

func init() {
	rootCmd.AddCommand(nextCmd)
}

func runNext(cmd *cobra.Command, args []string) error {
	s, err := newResolver().Resolve(args[0])
	if err != nil {
		return err
	}
	v, err := version.Parse(s)
	if err != nil {
		return err
	}

	for _, next := range release.Successors(v) {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), next)
	}
	return nil
}
