package errors

import (
	"fmt"
	"strings"
)

// MalformedGraphError occurs when a flow graph cannot be traversed, such as
// when a cycle is detected or a Pipe references a missing predecessor
type MalformedGraphError struct {
	Pipe   string   // the name of the Pipe at which the problem was detected
	Path   []string // the names of the Pipes forming a cycle, if any
	Reason string
}

// Error returns a textual representation of this MalformedGraphError
func (e MalformedGraphError) Error() string {
	if len(e.Path) > 0 {
		return fmt.Sprintf("Malformed graph at pipe %s: %s: %s", e.Pipe, e.Reason, strings.Join(e.Path, " -> "))
	}
	return fmt.Sprintf("Malformed graph at pipe %s: %s", e.Pipe, e.Reason)
}

// ConfigurationError occurs when the job configuration cannot be used to build an estimator chain
type ConfigurationError struct {
	Key   string // the configuration key at fault
	Cause error
}

// Error returns a textual representation of this ConfigurationError
func (e ConfigurationError) Error() string {
	return fmt.Sprintf("Invalid configuration for %s: %v", e.Key, e.Cause)
}

// Unwrap returns the underlying cause of this ConfigurationError
func (e ConfigurationError) Unwrap() error {
	return e.Cause
}

// UnknownEstimatorError occurs when a configured estimator identifier has not been registered
type UnknownEstimatorError struct{ Name string }

// Error returns a textual representation of this UnknownEstimatorError
func (e UnknownEstimatorError) Error() string {
	return fmt.Sprintf("Estimator %s is not registered", e.Name)
}
