package pipeline

import "fmt"

// Step names used to tag errors.
const (
	StepConfig   = "config"
	StepTemplate = "template"
	StepRender   = "render"
	StepSave     = "save"
	StepCount    = "count"
	StepHandout  = "handout"
	StepOutline  = "outline"
)

// StepError tags an error with the pipeline step that produced it.
type StepError struct {
	Step string
	Err  error
}

// Error returns the message formatted as [pipeline.Step] error message
func (e *StepError) Error() string {
	return fmt.Sprintf("[pipeline.%s] %v", e.Step, e.Err)
}

// Unwrap returns the original error for errors.Is/errors.As.
func (e *StepError) Unwrap() error {
	return e.Err
}

// wrapStep returns nil for a nil err.
func wrapStep(step string, err error) error {
	if err == nil {
		return nil
	}
	return &StepError{Step: step, Err: err}
}
