// Package manifest reads .releasegate.yaml release manifests.
//
// A manifest lists the version bumps proposed for a release train:
//
//	artifacts: release/artifacts.yaml   # optional override of the built-in map
//	releases:
//	  - product: Espresso
//	    from: 3.6.0-rc01
//	    to: 3.6.0
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the manifest name searched for by FindFile.
const FileName = ".releasegate.yaml"

// ErrInvalidManifest is returned when a manifest fails validation.
var ErrInvalidManifest = errors.New("invalid release manifest")

// Release is one proposed version bump.
type Release struct {
	Product string `yaml:"product"`
	From    string `yaml:"from"`
	To      string `yaml:"to"`
}

// Manifest is the parsed content of a release manifest.
type Manifest struct {
	Artifacts string    `yaml:"artifacts,omitempty"`
	Releases  []Release `yaml:"releases"`
}

func FindFile(startDir, explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("release manifest not found: %w", err)
		}
		return explicitPath, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		manifestPath := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(manifestPath); err == nil {
			return manifestPath, nil
		}

		if currentDir == homeDir {
			break
		}

		gitPath := filepath.Join(currentDir, ".git")
		if _, err := os.Stat(gitPath); err == nil {
			break
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached filesystem root
			break
		}
		currentDir = parentDir
	}

	return "", errors.New(FileName + " not found")
}

func ParseFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // intentional: reading release manifest
	if err != nil {
		return nil, fmt.Errorf("failed to read release manifest: %w", err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	// Relative artifact paths are resolved against the manifest's directory.
	if m.Artifacts != "" && !filepath.IsAbs(m.Artifacts) {
		m.Artifacts = filepath.Join(filepath.Dir(path), m.Artifacts)
	}
	return m, nil
}

// Parse decodes and validates manifest content.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}

	if len(m.Releases) == 0 {
		return nil, fmt.Errorf("%w: no releases listed", ErrInvalidManifest)
	}

	for i, r := range m.Releases {
		switch {
		case strings.TrimSpace(r.Product) == "":
			return nil, fmt.Errorf("%w: release %d has no product", ErrInvalidManifest, i+1)
		case r.From == "":
			return nil, fmt.Errorf("%w: release %q has no from version", ErrInvalidManifest, r.Product)
		case r.To == "":
			return nil, fmt.Errorf("%w: release %q has no to version", ErrInvalidManifest, r.Product)
		}
	}

	return &m, nil
}
