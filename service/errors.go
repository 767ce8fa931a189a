package application

import (
	stderrors "errors"

	"github.com/Warsame-Adam/skystream-api/errors"
)

// ErrInUse blocks a delete while other documents still reference the
// target, callers match it with errors.Is.
var ErrInUse = stderrors.New(errors.InUseError)

// ValidationError marks input the caller can fix, handlers answer it with
// a 400 instead of the generic failure message.
type ValidationError struct {
	Message string `json:"message"`
}

func (v *ValidationError) Error() string {
	return v.Message
}
