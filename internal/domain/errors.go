package domain

import "fmt"

// SubmitError is a failed gateway write. Reason is safe to show to users.
type SubmitError struct {
	Err        error
	Reason     string
	StatusCode int
}

func (e *SubmitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}
