package domain

import "fmt"

// InvalidAssumptionsError is the single error kind the projection core can
// produce. It is raised once, before the recurrence starts, when an input
// violates its documented domain constraint. The API layer surfaces it to the
// caller without interpretation.
type InvalidAssumptionsError struct {
	Field  string
	Reason string
}

func (e *InvalidAssumptionsError) Error() string {
	return fmt.Sprintf("invalid assumptions: %s %s", e.Field, e.Reason)
}

// invalidAssumption builds the error for a single offending field.
func invalidAssumption(field, reason string) error {
	return &InvalidAssumptionsError{Field: field, Reason: reason}
}
