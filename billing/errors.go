/*
errors.go - Centralized error types for the billing primitives

PURPOSE:
  All sentinel errors in one place for consistency and discoverability.
  Structured errors carry context and Unwrap to a sentinel so callers
  can branch with errors.Is or extract detail with errors.As.

USAGE:
  rate, err := rates.HourlyRate(skill)
  if errors.Is(err, billing.ErrUnknownSkill) {
      // rate book is missing an entry
  }
*/
package billing

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrUnknownSkill is returned when a rate book has no rate for a skill.
	ErrUnknownSkill = errors.New("unknown skill")

	// ErrUnknownStateCode is returned when an address is constructed with
	// a state code that is not a recognized US state or territory code.
	ErrUnknownStateCode = errors.New("unknown state code")

	// ErrNegativeHours is returned when a time entry is constructed with
	// a negative hour count.
	ErrNegativeHours = errors.New("negative hours")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// UnknownSkillError identifies the skill that has no configured rate.
type UnknownSkillError struct {
	Skill Skill
}

func (e *UnknownSkillError) Error() string {
	return fmt.Sprintf("no hourly rate for skill %q", string(e.Skill))
}

func (e *UnknownSkillError) Unwrap() error { return ErrUnknownSkill }

// UnknownStateError identifies the state code that failed validation.
type UnknownStateError struct {
	Code string
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("unrecognized state code %q", e.Code)
}

func (e *UnknownStateError) Unwrap() error { return ErrUnknownStateCode }
