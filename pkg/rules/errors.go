package rules

// errors.go — Construction-time errors.
//
// A missing collaborator is fatal to the rule's instantiation: either all
// three collaborators are present and the rule is usable, or construction
// fails and no rule instance exists.

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument marks a rule construction failure caused by a missing
// required collaborator.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError identifies which collaborator was missing when a rule was
// constructed. Name is one of "model", "context" or "sink".
type ArgumentError struct {
	Rule string
	Name string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %v: missing required collaborator %q", e.Rule, ErrInvalidArgument, e.Name)
}

func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }
