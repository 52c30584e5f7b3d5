package release

import "github.com/vertti/releasegate/pkg/version"

// Successors returns every legal next version of v in ascending order.
func Successors(v version.Version) []version.Version {
	var out []version.Version
	if v.IsStable() {
		if v.Minor < version.MaxComponent {
			out = append(out, version.Version{Major: v.Major, Minor: v.Minor + 1, Stage: version.StageAlpha, Counter: 1})
		}
		if v.Major < version.MaxComponent {
			out = append(out, version.Version{Major: v.Major + 1, Stage: version.StageAlpha, Counter: 1})
		}
		return out
	}

	if v.Counter < version.MaxCounter {
		next := v
		next.Counter++
		out = append(out, next)
	}
	if stage, ok := v.Stage.Next(); ok {
		next := v
		next.Stage = stage
		next.Counter = 1
		if stage == version.StageStable {
			next.Counter = 0
		}
		out = append(out, next)
	}
	return out
}
