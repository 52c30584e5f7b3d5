package releasecheck

import (
	"fmt"

	"github.com/vertti/releasegate/pkg/check"
	"github.com/vertti/releasegate/pkg/release"
	"github.com/vertti/releasegate/pkg/version"
)

// Check verifies that a product's proposed version is a legal next release.
type Check struct {
	Product string   // product name, optional
	From    string   // currently released version
	To      string   // proposed version
	Targets []string // build targets published for the product
}

// Run executes the release check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: c.Name(),
	}

	if err := release.ValidateVersions(c.From, c.To); err != nil {
		return result.Fail(err.Error(), err)
	}

	// Both parse: ValidateVersions succeeded.
	from, to := version.MustParse(c.From), version.MustParse(c.To)
	result.AddDetailf("transition: %s", Describe(from, to))

	for _, target := range c.Targets {
		result.AddDetailf("target: %s", target)
	}

	result.Status = check.StatusOK
	return result
}

// Name labels the check by product and transition.
func (c *Check) Name() string {
	if c.Product == "" {
		return fmt.Sprintf("release: %s -> %s", c.From, c.To)
	}
	return fmt.Sprintf("release: %s %s -> %s", c.Product, c.From, c.To)
}

// Describe names the kind of a legal transition.
func Describe(from, to version.Version) string {
	switch {
	case from.IsStable():
		return "new cycle"
	case to.IsStable():
		return "stable"
	case from.Stage != to.Stage:
		return "stage promotion"
	default:
		return "prerelease"
	}
}
