package check

// Checker is implemented by every gate that produces a Result.
//
// Implementations:
//   - releasecheck.Check: validates a product's proposed version bump
type Checker interface {
	Run() Result
}
