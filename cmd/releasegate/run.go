package main

import (
	"errors"
	"io"
	"log/slog"

	"github.com/vertti/releasegate/pkg/artifacts"
	"github.com/vertti/releasegate/pkg/check"
	"github.com/vertti/releasegate/pkg/output"
	"github.com/vertti/releasegate/pkg/versionsource"
)

// ErrCheckFailed is returned when a check fails.
var ErrCheckFailed = errors.New("check failed")

// runCheck executes a check, prints the result, and returns an error if failed.
// The returned error causes Cobra to exit with code 1.
func runCheck(w io.Writer, c check.Checker) error {
	result := c.Run()
	output.Fprint(w, result)

	if !result.OK() {
		slog.Debug("check failed", "name", result.Name, "error", result.Err)
		return ErrCheckFailed
	}
	return nil
}

func newResolver() *versionsource.Resolver {
	return &versionsource.Resolver{
		FS:  &versionsource.RealFileSystem{},
		Git: &versionsource.RealGitRunner{},
	}
}

// loadArtifacts returns the artifact map at path, or the built-in map when path is empty.
func loadArtifacts(path string) (artifacts.Map, error) {
	if path == "" {
		return artifacts.Default(), nil
	}
	m, err := artifacts.Load(&artifacts.RealFileSystem{}, path)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded artifact map", "path", path, "products", len(m))
	return m, nil
}
