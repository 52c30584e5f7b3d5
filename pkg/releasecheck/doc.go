// Package releasecheck adapts the release validator to the check.Checker interface
// so that version bumps are reported like any other gate result.
package releasecheck
