package stickmap

import (
	"errors"
	"fmt"
)

// Sentinel errors returned while parsing profiles and slot tokens. The
// engine itself never fails: unknown directions degrade to empty labels and
// ineligible assignments are ignored.
var (
	ErrUnknownDirection = errors.New("unknown direction")
	ErrUnknownCondition = errors.New("unknown set change condition")
	ErrUnknownTurboMode = errors.New("unknown turbo mode")
	ErrUnknownStickMode = errors.New("unknown stick mode")
	ErrInvalidSlot      = errors.New("invalid slot")
	ErrInvalidSet       = errors.New("set index out of range")
	ErrInvalidSpring    = errors.New("spring dead circle out of range")
	ErrStickNotFound    = errors.New("stick not found")
)

// ProfileError reports a failure while loading or applying a profile.
type ProfileError struct {
	Op  string // Operation that failed (e.g., "decode", "apply")
	Err error  // Underlying error
}

func (e *ProfileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("stickmap: profile %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("stickmap: profile %s", e.Op)
}

func (e *ProfileError) Unwrap() error {
	return e.Err
}

// NewProfileError creates a new profile error.
func NewProfileError(op string, err error) *ProfileError {
	return &ProfileError{Op: op, Err: err}
}

// IsProfileError checks if an error came from profile handling.
func IsProfileError(err error) bool {
	var profileErr *ProfileError
	return errors.As(err, &profileErr)
}
