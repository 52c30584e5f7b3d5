package version

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Error types for version parsing failures. All of them wrap ErrMalformedVersion.
var (
	ErrMalformedVersion = errors.New("malformed version")
	ErrEmptyVersion     = fmt.Errorf("%w: empty version string", ErrMalformedVersion)
	ErrInvalidCore      = fmt.Errorf("%w: invalid MAJOR.MINOR.BUGFIX", ErrMalformedVersion)
	ErrInvalidSuffix    = fmt.Errorf("%w: invalid prerelease suffix", ErrMalformedVersion)
)

const (
	// MaxCounter is the largest prerelease counter; counters are always two digits.
	MaxCounter = 99
	// MaxComponent is the largest MAJOR, MINOR or BUGFIX number.
	MaxComponent = math.MaxInt32
)

// Core is the numeric MAJOR.MINOR.BUGFIX part of a version.
type Core struct {
	Major  int
	Minor  int
	Bugfix int
}

// String returns the core as "MAJOR.MINOR.BUGFIX".
func (c Core) String() string {
	return fmt.Sprintf("%d.%d.%d", c.Major, c.Minor, c.Bugfix)
}

// Suffix is the prerelease part of a version, e.g. alpha01.
type Suffix struct {
	Stage   Stage
	Counter int
}

// String returns the suffix as written after the dash, or "" for stable.
func (s Suffix) String() string {
	if !s.Stage.IsPrerelease() {
		return ""
	}
	return fmt.Sprintf("%s%02d", s.Stage, s.Counter)
}

// Version is a parsed release version: MAJOR.MINOR.BUGFIX[-(alpha|beta|rc)NN].
type Version struct {
	Major   int
	Minor   int
	Bugfix  int
	Stage   Stage
	Counter int // 0 when stable
}

// Core returns the numeric part of v.
func (v Version) Core() Core {
	return Core{Major: v.Major, Minor: v.Minor, Bugfix: v.Bugfix}
}

// Suffix returns the prerelease part of v.
func (v Version) Suffix() Suffix {
	return Suffix{Stage: v.Stage, Counter: v.Counter}
}

// IsStable reports whether v has no prerelease suffix.
func (v Version) IsStable() bool {
	return v.Stage == StageStable
}

// String returns the version as a string.
func (v Version) String() string {
	if v.IsStable() {
		return v.Core().String()
	}
	return v.Core().String() + "-" + v.Suffix().String()
}

var suffixRegex = regexp.MustCompile(`^([a-z]+)(\d{2})$`)

// Parse parses a version string into a Version.
// Every error except ErrEmptyVersion ends with the quoted input.
func Parse(s string) (Version, error) {
	if s == "" {
		return Version{}, ErrEmptyVersion
	}
	v, err := parse(s)
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q", err, s)
	}
	return v, nil
}

func parse(s string) (Version, error) {
	if strings.TrimSpace(s) != s {
		return Version{}, fmt.Errorf("%w: surrounding whitespace", ErrMalformedVersion)
	}

	sv, err := semver.StrictNewVersion(s)
	if err != nil {
		return Version{}, fmt.Errorf("%w: %v", ErrInvalidCore, err)
	}
	if sv.Metadata() != "" {
		return Version{}, fmt.Errorf("%w: build metadata", ErrMalformedVersion)
	}

	v := Version{Stage: StageStable}
	if v.Major, err = toInt(sv.Major()); err != nil {
		return Version{}, err
	}
	if v.Minor, err = toInt(sv.Minor()); err != nil {
		return Version{}, err
	}
	if v.Bugfix, err = toInt(sv.Patch()); err != nil {
		return Version{}, err
	}

	if pre := sv.Prerelease(); pre != "" {
		suffix, err := ParseSuffix(pre)
		if err != nil {
			return Version{}, err
		}
		v.Stage, v.Counter = suffix.Stage, suffix.Counter
	}

	return v, nil
}

// ParseSuffix parses a prerelease suffix such as "beta03".
func ParseSuffix(s string) (Suffix, error) {
	matches := suffixRegex.FindStringSubmatch(s)
	if matches == nil {
		return Suffix{}, fmt.Errorf("%w: %q is not (alpha|beta|rc)NN", ErrInvalidSuffix, s)
	}
	stage, err := ParseStage(matches[1])
	if err != nil {
		return Suffix{}, err
	}
	counter, _ := strconv.Atoi(matches[2])
	if counter < 1 {
		return Suffix{}, fmt.Errorf("%w: counter in %q must start at 01", ErrInvalidSuffix, s)
	}
	return Suffix{Stage: stage, Counter: counter}, nil
}

// MustParse parses a version string and panics if parsing fails.
// Only use this for hardcoded strings or in tests.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

func toInt(n uint64) (int, error) {
	if n > MaxComponent {
		return 0, fmt.Errorf("%w: component %d out of range", ErrInvalidCore, n)
	}
	return int(n), nil
}
