package version

import "testing"

func TestVersion_Compare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.0", "2.0.0", -1},
		{"2.0.0", "1.0.0", 1},
		{"1.1.0", "1.0.0", 1},
		{"1.0.1", "1.0.0", 1},
		{"1.0.0-alpha01", "1.0.0", -1},
		{"1.0.0-rc01", "1.0.0-beta09", 1},
		{"1.0.0-beta02", "1.0.0-beta10", -1},
		{"1.0.0-alpha05", "1.0.0-alpha05", 0},
		{"0.9.9", "1.0.0-alpha01", -1},
	}

	for _, tt := range tests {
		got := MustParse(tt.a).Compare(MustParse(tt.b))
		if got != tt.want {
			t.Errorf("%s.Compare(%s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestVersion_LessThan(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"1.0.0", "2.0.0", true},
		{"2.0.0", "1.0.0", false},
		{"1.0.0", "1.0.0", false},
		{"1.0.0-rc03", "1.0.0", true},
	}

	for _, tt := range tests {
		got := MustParse(tt.a).LessThan(MustParse(tt.b))
		if got != tt.want {
			t.Errorf("%s.LessThan(%s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestVersion_GreaterThanOrEqual(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"1.0.0", "1.0.0", true},
		{"2.0.0", "1.0.0", true},
		{"1.0.0", "2.0.0", false},
		{"1.0.0-beta01", "1.0.0-alpha20", true},
	}

	for _, tt := range tests {
		got := MustParse(tt.a).GreaterThanOrEqual(MustParse(tt.b))
		if got != tt.want {
			t.Errorf("%s.GreaterThanOrEqual(%s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
