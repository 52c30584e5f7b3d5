package version

// Compare returns -1 if c < other, 0 if c == other, 1 if c > other.
func (c Core) Compare(other Core) int {
	if c.Major != other.Major {
		return sign(c.Major - other.Major)
	}
	if c.Minor != other.Minor {
		return sign(c.Minor - other.Minor)
	}
	return sign(c.Bugfix - other.Bugfix)
}

// Compare returns -1 if v < other, 0 if v == other, 1 if v > other.
// Versions order by core, then stage (alpha < beta < rc < stable), then counter.
func (v Version) Compare(other Version) int {
	if c := v.Core().Compare(other.Core()); c != 0 {
		return c
	}
	if v.Stage != other.Stage {
		return sign(int(v.Stage) - int(other.Stage))
	}
	return sign(v.Counter - other.Counter)
}

// LessThan returns true if v < other.
func (v Version) LessThan(other Version) bool {
	return v.Compare(other) < 0
}

// GreaterThanOrEqual returns true if v >= other.
func (v Version) GreaterThanOrEqual(other Version) bool {
	return v.Compare(other) >= 0
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
