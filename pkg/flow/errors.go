package flow

import "fmt"

// StructuralError represents a single document invariant violation.
type StructuralError struct {
	Field  string // Path of the offending field, e.g. "nodes[2].edges[0].destination_node_id"
	Reason string // Human-readable reason for the failure
	Value  any    // The value that violated the invariant
}

func (e *StructuralError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("flow: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("flow: %s: %s (got %v)", e.Field, e.Reason, e.Value)
}

// AggregateError collects every invariant violation found in one validation
// pass, so callers see all defects at once instead of fixing them one by one.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d structural errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// StructuralErrors returns the individual violations if err is an
// AggregateError. Otherwise returns nil.
func StructuralErrors(err error) []error {
	if aggr, ok := err.(*AggregateError); ok {
		return aggr.Errors
	}
	return nil
}

// SerializationError wraps a JSON encode/decode failure. A well-formed
// document should never produce one; treat it as fatal.
type SerializationError struct {
	Op  string // "encode" or "decode"
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("flow: %s: %v", e.Op, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}
