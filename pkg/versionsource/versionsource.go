// Package versionsource resolves a version argument to a version string.
//
// An argument is one of:
//
//	1.2.0-beta01             a literal version
//	@VERSION                 the trimmed contents of a text file
//	package.json#version     a string value in a JSON file, addressed by a gjson path
//	git:espresso-            the highest version tagged as espresso-X.Y.Z (git: alone for plain tags)
package versionsource

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
)

const gitPrefix = "git:"

// ErrUnresolved is returned when a source cannot produce a version string.
var ErrUnresolved = errors.New("cannot resolve version")

// FileSystem abstracts file operations for testing.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
}

// RealFileSystem implements FileSystem using the real file system.
type RealFileSystem struct{}

// ReadFile reads the entire file contents.
func (r *RealFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name) //nolint:gosec // intentional: version file path from user
}

// Resolver turns version arguments into version strings.
type Resolver struct {
	FS  FileSystem
	Git GitRunner
}

// Resolve returns the version string named by spec.
func (r *Resolver) Resolve(spec string) (string, error) {
	switch {
	case spec == "":
		return "", fmt.Errorf("%w: empty argument", ErrUnresolved)

	case strings.HasPrefix(spec, gitPrefix):
		return r.fromGit(strings.TrimPrefix(spec, gitPrefix))

	case strings.HasPrefix(spec, "@"):
		path := spec[1:]
		content, err := r.FS.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrUnresolved, err)
		}
		v := strings.TrimSpace(string(content))
		if v == "" {
			return "", fmt.Errorf("%w: %s is empty", ErrUnresolved, path)
		}
		return v, nil

	case strings.Contains(spec, "#"):
		path, key, _ := strings.Cut(spec, "#")
		return r.fromJSON(path, key)
	}

	return spec, nil
}

func (r *Resolver) fromJSON(path, key string) (string, error) {
	if path == "" || key == "" {
		return "", fmt.Errorf("%w: expected FILE#PATH, got %q", ErrUnresolved, path+"#"+key)
	}

	content, err := r.FS.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnresolved, err)
	}

	jsonStr := string(content)
	if !gjson.Valid(jsonStr) {
		return "", fmt.Errorf("%w: %s is not valid JSON", ErrUnresolved, path)
	}

	result := gjson.Get(jsonStr, key)
	if !result.Exists() {
		return "", fmt.Errorf("%w: key %q not found in %s", ErrUnresolved, key, path)
	}
	if result.Type != gjson.String {
		return "", fmt.Errorf("%w: key %q in %s is %s, not a string", ErrUnresolved, key, path, result.Type)
	}
	return result.String(), nil
}
