package domain

import "fmt"

// PipelineError is the base error type with context.
type PipelineError struct {
	Phase      string // "config", "extract", "template", "assemble", "write", "watch"
	File       string
	LineNumber int
	Message    string
	Cause      error
}

func (e *PipelineError) Error() string {
	s := fmt.Sprintf("[%s]", e.Phase)
	if e.File != "" {
		s += fmt.Sprintf(" %s", e.File)
	}
	if e.LineNumber > 0 {
		s += fmt.Sprintf(":%d", e.LineNumber)
	}
	s += fmt.Sprintf(": %s", e.Message)
	if e.Cause != nil {
		s += fmt.Sprintf(": %v", e.Cause)
	}
	return s
}

func (e *PipelineError) Unwrap() error {
	return e.Cause
}

// NewError creates a new PipelineError.
func NewError(phase, file string, line int, message string, cause error) *PipelineError {
	return &PipelineError{
		Phase:      phase,
		File:       file,
		LineNumber: line,
		Message:    message,
		Cause:      cause,
	}
}
