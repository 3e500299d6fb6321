package attempts

import "fmt"

// InvalidInputError indicates the caller supplied an unusable attempt
// payload (missing questions, oversized answer set, and so on).
type InvalidInputError struct {
	Reason string
	Err    error
}

func (e *InvalidInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid attempt input: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid attempt input: %s", e.Reason)
}

func (e *InvalidInputError) Unwrap() error { return e.Err }

// SaveFailedError indicates the attempt could not be persisted. The
// quiz outcome is still valid; only storage failed.
type SaveFailedError struct {
	Err error
}

func (e *SaveFailedError) Error() string {
	return fmt.Sprintf("failed to save quiz result: %v", e.Err)
}

func (e *SaveFailedError) Unwrap() error { return e.Err }
