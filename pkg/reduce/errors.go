package reduce

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrLimitExceeded matches every *LimitError with errors.Is.
var ErrLimitExceeded = errors.New("evaluation step limit exceeded")

// ErrTooDeep matches every *DepthError with errors.Is.
var ErrTooDeep = errors.New("evaluation nested too deeply")

// LimitError is returned when a term needs more than the configured
// number of beta reductions. Steps holds the trace recorded before giving
// up (empty unless tracing was enabled).
type LimitError struct {
	MaxSteps int
	Steps    []Step
	Stats    Stats
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("evaluation exceeded %d steps; the term may not have a normal form", e.MaxSteps)
}

func (e *LimitError) Is(target error) bool {
	return target == ErrLimitExceeded
}

// DepthError is returned when evaluating a term would recurse more than
// MaxDepth levels.
type DepthError struct {
	MaxDepth int
	Stats    Stats
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("evaluation nested deeper than %d levels", e.MaxDepth)
}

func (e *DepthError) Is(target error) bool {
	return target == ErrTooDeep
}
