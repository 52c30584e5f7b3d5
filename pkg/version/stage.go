package version

import "fmt"

// Stage is a release stage. Stages are ordered: alpha < beta < rc < stable.
type Stage int

const (
	StageAlpha Stage = iota
	StageBeta
	StageRC
	StageStable
)

var stageNames = map[Stage]string{
	StageAlpha: "alpha",
	StageBeta:  "beta",
	StageRC:    "rc",
}

// ParseStage parses a prerelease stage name. Stable has no name and is rejected.
func ParseStage(s string) (Stage, error) {
	switch s {
	case "alpha":
		return StageAlpha, nil
	case "beta":
		return StageBeta, nil
	case "rc":
		return StageRC, nil
	}
	return StageStable, fmt.Errorf("%w: unknown stage %q", ErrInvalidSuffix, s)
}

// String returns the suffix name of the stage, or "stable".
func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	if s == StageStable {
		return "stable"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// IsPrerelease reports whether s is alpha, beta or rc.
func (s Stage) IsPrerelease() bool {
	_, ok := stageNames[s]
	return ok
}

// Next returns the stage that follows s. Stable has no successor.
func (s Stage) Next() (Stage, bool) {
	if s >= StageStable || s < StageAlpha {
		return s, false
	}
	return s + 1, true
}
