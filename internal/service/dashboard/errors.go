package dashboard

import "errors"

var (
	ErrEmptyBody           = errors.New("empty request body")
	ErrInvalidPayloadShape = errors.New("payload must be a JSON object")

	ErrTemplateLoad = errors.New("failed to load template")
	ErrGenerate     = errors.New("failed to generate workbook")
)

// StageError ties a failure to the generation stage it happened in.
// Stage is one of ErrTemplateLoad or ErrGenerate.
type StageError struct {
	Stage error
	Err   error
}

func (e *StageError) Error() string {
	return e.Stage.Error() + ": " + e.Err.Error()
}

func (e *StageError) Unwrap() []error {
	return []error{e.Stage, e.Err}
}
