package detekt

import (
	"errors"
	"fmt"
)

// ErrNoProject is returned when the command is built or executed before
// FromProject was called.
var ErrNoProject = errors.New("a project must be specified")

// ExitError reports a detekt run that ended with a non-zero status.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("detekt exited with status %d", e.Code)
}
