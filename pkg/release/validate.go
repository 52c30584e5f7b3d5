// Package release decides whether a proposed version is a legal next release.
//
// Legal transitions fall under a fixed progression:
//
//	X.Y.Z          -> next-number-alpha01  (new cycle)
//	X.Y.Z-alphaNN  -> X.Y.Z-alpha(NN+1) or X.Y.Z-beta01
//	X.Y.Z-betaNN   -> X.Y.Z-beta(NN+1)  or X.Y.Z-rc01
//	X.Y.Z-rcNN     -> X.Y.Z-rc(NN+1)    or X.Y.Z (stable)
//
// where next-number is either a major bump (M+1.0.0) or a minor bump (M.m+1.0).
// Bugfix-only releases are not handled here.
package release

import (
	"github.com/vertti/releasegate/pkg/version"
)

// ValidateVersions parses both strings and validates the transition.
func ValidateVersions(oldVersion, newVersion string) error {
	oldV, err := version.Parse(oldVersion)
	if err != nil {
		return &TransitionError{Kind: ErrMalformedVersion, Old: oldVersion, New: newVersion, Err: err}
	}
	newV, err := version.Parse(newVersion)
	if err != nil {
		return &TransitionError{Kind: ErrMalformedVersion, Old: oldVersion, New: newVersion, Err: err}
	}
	return ValidateTransition(oldV, newV)
}

// ValidateTransition returns nil if newV is a legal next release after oldV.
func ValidateTransition(oldV, newV version.Version) error {
	switch {
	case newV.IsStable():
		// Only an rc of the very same number can be promoted to stable.
		if oldV.Stage != version.StageRC || oldV.Core() != newV.Core() {
			return reject(ErrInvalidVersion, oldV, newV)
		}
		return nil

	case oldV.IsStable():
		if newV.Suffix() != (version.Suffix{Stage: version.StageAlpha, Counter: 1}) {
			return reject(ErrInvalidVersion, oldV, newV)
		}
		return ValidateVersionNumberIncrement(oldV.Core(), newV.Core())

	default:
		if oldV.Core() != newV.Core() {
			return reject(ErrInvalidVersion, oldV, newV)
		}
		return ValidateSuffixIncrement(oldV.Suffix(), newV.Suffix())
	}
}

// ValidateVersionNumberIncrement accepts a major bump (M+1.0.0) or a minor bump (M.m+1.0).
func ValidateVersionNumberIncrement(oldCore, newCore version.Core) error {
	majorBump := newCore.Major == oldCore.Major+1 && newCore.Minor == 0 && newCore.Bugfix == 0
	minorBump := newCore.Major == oldCore.Major && newCore.Minor == oldCore.Minor+1 && newCore.Bugfix == 0
	if majorBump || minorBump {
		return nil
	}
	return reject(ErrInvalidVersionNumber, oldCore, newCore)
}

// ValidateSuffixIncrement accepts the next counter within a stage, or 01 of the next stage.
func ValidateSuffixIncrement(oldSuffix, newSuffix version.Suffix) error {
	if !oldSuffix.Stage.IsPrerelease() || !newSuffix.Stage.IsPrerelease() {
		return reject(ErrInvalidSuffix, oldSuffix, newSuffix)
	}

	switch {
	case newSuffix.Counter == 1:
		next, ok := oldSuffix.Stage.Next()
		if !ok || next != newSuffix.Stage {
			return reject(ErrInvalidSuffix, oldSuffix, newSuffix)
		}
	case oldSuffix.Stage != newSuffix.Stage:
		return reject(ErrInvalidSuffix, oldSuffix, newSuffix)
	case oldSuffix.Counter+1 != newSuffix.Counter:
		return reject(ErrInvalidSuffix, oldSuffix, newSuffix)
	}
	return nil
}
