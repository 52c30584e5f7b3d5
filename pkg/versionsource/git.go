package versionsource

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/vertti/releasegate/pkg/version"
)

// GitRunner abstracts git command execution for testability.
type GitRunner interface {
	// IsGitRepo returns true if the current directory is inside a git repository.
	IsGitRepo() (bool, error)

	// Tags returns all tags in the repository.
	Tags() ([]string, error)
}

// RealGitRunner executes actual git commands.
type RealGitRunner struct{}

func (r *RealGitRunner) IsGitRepo() (bool, error) {
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	if err := cmd.Run(); err != nil {
		// Exit code 128 = not a git repository
		return false, nil
	}
	return true, nil
}

func (r *RealGitRunner) Tags() ([]string, error) {
	cmd := exec.Command("git", "tag", "--list")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return nil, err
	}
	output := strings.TrimSpace(out.String())
	if output == "" {
		return nil, nil
	}
	return strings.Split(output, "\n"), nil
}

// fromGit returns the highest release version among tags named PREFIX + version.
// A "v" before the version is accepted. Tags that do not parse are ignored.
func (r *Resolver) fromGit(prefix string) (string, error) {
	if r.Git == nil {
		return "", fmt.Errorf("%w: git lookups are not available", ErrUnresolved)
	}

	isRepo, err := r.Git.IsGitRepo()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnresolved, err)
	}
	if !isRepo {
		return "", fmt.Errorf("%w: not a git repository", ErrUnresolved)
	}

	tags, err := r.Git.Tags()
	if err != nil {
		return "", fmt.Errorf("%w: failed to list tags: %w", ErrUnresolved, err)
	}

	var latest *version.Version
	for _, tag := range tags {
		rest, ok := strings.CutPrefix(strings.TrimSpace(tag), prefix)
		if !ok {
			continue
		}
		v, err := version.Parse(strings.TrimPrefix(rest, "v"))
		if err != nil {
			continue
		}
		if latest == nil || v.Compare(*latest) > 0 {
			latest = &v
		}
	}

	if latest == nil {
		return "", fmt.Errorf("%w: no release tags with prefix %q", ErrUnresolved, prefix)
	}
	return latest.String(), nil
}
