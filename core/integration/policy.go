// ABOUTME: Error policies applied to backend calls
// ABOUTME: Decides whether a failed call is propagated or replaced by an empty result

package integration

// ErrorPolicy tells fetch what to do with a failed backend call
type ErrorPolicy int

const (
	// Propagate returns the failure to the caller
	Propagate ErrorPolicy = iota

	// Suppress logs the failure and returns the zero value without an error
	Suppress
)

// String returns the policy name used in log fields
func (p ErrorPolicy) String() string {
	switch p {
	case Propagate:
		return "propagate"
	case Suppress:
		return "suppress"
	default:
		return "unknown"
	}
}
