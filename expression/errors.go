package expression

import (
	"errors"
	"fmt"
)

// ErrAlreadyExecuted reports a second Execute call on the same
// expression instance. This is a programmer contract violation: the
// call fails before any side effects and is never retried.
var ErrAlreadyExecuted = errors.New("expression already executed")

// StatementError reports a statement the database rejected. The driver
// error stays reachable through errors.Is and errors.As.
type StatementError struct {
	Step      int
	Statement string
	Err       error
}

func (e *StatementError) Error() string {
	return fmt.Sprintf("statement at step %d failed: %v", e.Step, e.Err)
}

func (e *StatementError) Unwrap() error { return e.Err }
