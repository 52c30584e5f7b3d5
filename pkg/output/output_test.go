package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vertti/releasegate/pkg/check"
)

// noColor clears color codes for the duration of a test.
func noColor(t *testing.T) {
	t.Helper()
	oldGreen, oldRed, oldDim, oldReset := green, red, dim, reset
	green, red, dim, reset = "", "", "", ""
	t.Cleanup(func() { green, red, dim, reset = oldGreen, oldRed, oldDim, oldReset })
}

func TestFormatLabel(t *testing.T) {
	noColor(t)

	tests := []struct {
		input string
		want  string
	}{
		{"release: Core 1.0.0 -> 1.1.0-alpha01", "release: Core 1.0.0 -> 1.1.0-alpha01"},
		{"target: //core:maven", "target: //core:maven"},
		{"no colon here", "no colon here"},
		{"", ""},
	}

	for _, tt := range tests {
		got := formatLabel(tt.input)
		if got != tt.want {
			t.Errorf("formatLabel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatLabelWithColors(t *testing.T) {
	oldDim, oldReset := dim, reset
	defer func() { dim, reset = oldDim, oldReset }()
	dim, reset = "[DIM]", "[RESET]"

	tests := []struct {
		input string
		want  string
	}{
		{"transition: stable", "[DIM]transition:[RESET] stable"},
		{"target: //core:maven", "[DIM]target:[RESET] //core:maven"},
		{"no colon here", "no colon here"},
		{"malformed version: bad input", "malformed version: bad input"},
	}

	for _, tt := range tests {
		got := formatLabel(tt.input)
		if got != tt.want {
			t.Errorf("formatLabel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFprintOK(t *testing.T) {
	noColor(t)

	var buf bytes.Buffer
	Fprint(&buf, check.Result{
		Name:    "release: Core 1.5.0-rc01 -> 1.5.0",
		Status:  check.StatusOK,
		Details: []string{"transition: stable", "target: //core:maven"},
	})

	expected := "[OK] release: Core 1.5.0-rc01 -> 1.5.0\n     transition: stable\n     target: //core:maven\n"
	if buf.String() != expected {
		t.Errorf("Fprint output = %q, want %q", buf.String(), expected)
	}
}

func TestFprintFail(t *testing.T) {
	noColor(t)

	var buf bytes.Buffer
	Fprint(&buf, check.Result{
		Name:    "release: 1.0.0-alpha01 -> 1.0.0-rc01",
		Status:  check.StatusFail,
		Details: []string{"invalid suffix rc01 after alpha01"},
	})

	expected := "[FAIL] release: 1.0.0-alpha01 -> 1.0.0-rc01\n       invalid suffix rc01 after alpha01\n"
	if buf.String() != expected {
		t.Errorf("Fprint output = %q, want %q", buf.String(), expected)
	}
}

func TestFprintIndentation(t *testing.T) {
	noColor(t)

	var ok, fail bytes.Buffer
	Fprint(&ok, check.Result{Name: "test", Status: check.StatusOK, Details: []string{"detail"}})
	Fprint(&fail, check.Result{Name: "test", Status: check.StatusFail, Details: []string{"detail"}})

	// OK: "[OK] " is 5 chars, so detail should have 5 space indent
	if !strings.Contains(ok.String(), "\n     detail\n") {
		t.Errorf("OK output should have 5-space indent for details, got: %q", ok.String())
	}

	// FAIL: "[FAIL] " is 7 chars, so detail should have 7 space indent
	if !strings.Contains(fail.String(), "\n       detail\n") {
		t.Errorf("FAIL output should have 7-space indent for details, got: %q", fail.String())
	}
}

func TestFprintSummary(t *testing.T) {
	noColor(t)

	var buf bytes.Buffer
	FprintSummary(&buf, 3, 1)
	if buf.String() != "3 passed, 1 failed\n" {
		t.Errorf("FprintSummary output = %q", buf.String())
	}
}
