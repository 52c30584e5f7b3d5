// Package artifacts maps releasable products to the build targets that publish them.
package artifacts

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// ErrInvalidMap is returned when an artifact map fails validation.
var ErrInvalidMap = errors.New("invalid artifact map")

// Map maps a product name to its build targets.
type Map map[string][]string

// FileSystem abstracts file operations for testing.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
}

// RealFileSystem implements FileSystem using the real file system.
type RealFileSystem struct{}

// ReadFile reads the entire file contents.
func (r *RealFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name) //nolint:gosec // intentional: artifact map path from user config
}

// Default returns the built-in artifact map.
func Default() Map {
	m, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded artifact map: %v", err))
	}
	return m
}

// Load reads and parses an artifact map file.
func Load(fs FileSystem, path string) (Map, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact map: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes and validates a YAML artifact map.
func Parse(data []byte) (Map, error) {
	var m Map
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMap, err)
	}
	if len(m) == 0 {
		return nil, fmt.Errorf("%w: no products", ErrInvalidMap)
	}

	for product, targets := range m {
		if strings.TrimSpace(product) == "" {
			return nil, fmt.Errorf("%w: empty product name", ErrInvalidMap)
		}
		if len(targets) == 0 {
			return nil, fmt.Errorf("%w: product %q has no targets", ErrInvalidMap, product)
		}
		seen := make(map[string]bool, len(targets))
		for _, target := range targets {
			if target == "" {
				return nil, fmt.Errorf("%w: product %q has an empty target", ErrInvalidMap, product)
			}
			if seen[target] {
				return nil, fmt.Errorf("%w: product %q lists %q twice", ErrInvalidMap, product, target)
			}
			seen[target] = true
		}
	}
	return m, nil
}

// Products returns the product names in sorted order.
func (m Map) Products() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Targets returns the build targets of a product.
func (m Map) Targets(product string) ([]string, bool) {
	targets, ok := m[product]
	return targets, ok
}
