package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/releasegate/pkg/check"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, dim, reset = "", "", "", ""
	}
}

// Fprint outputs a check result with colored status to w.
// Details are indented to line up with the result name.
func Fprint(w io.Writer, r check.Result) {
	var indent string
	if r.OK() {
		_, _ = fmt.Fprintf(w, "%s[OK]%s %s\n", green, reset, formatLabel(r.Name))
		indent = strings.Repeat(" ", len("[OK] "))
	} else {
		_, _ = fmt.Fprintf(w, "%s[FAIL]%s %s\n", red, reset, formatLabel(r.Name))
		indent = strings.Repeat(" ", len("[FAIL] "))
	}
	for _, d := range r.Details {
		_, _ = fmt.Fprintf(w, "%s%s\n", indent, formatLabel(d))
	}
}

// FprintSummary outputs a one-line pass/fail count.
func FprintSummary(w io.Writer, passed, failed int) {
	color := green
	if failed > 0 {
		color = red
	}
	_, _ = fmt.Fprintf(w, "%s%d passed, %d failed%s\n", color, passed, failed, reset)
}

// formatLabel dims the "label:" prefix of a line, if it has one.
func formatLabel(s string) string {
	label, rest, found := strings.Cut(s, ": ")
	if !found || strings.Contains(label, " ") {
		return s
	}
	return dim + label + ":" + reset + " " + rest
}
