package assistant

import "errors"

var (
	// ErrEmptyPrompt is returned when the query text is blank.
	ErrEmptyPrompt = errors.New("prompt is empty")

	// ErrMalformedModelOutput is returned when the intent analysis
	// model call produces text that does not parse into the
	// {budget, categories} contract. It indicates a broken model
	// contract and is never silently defaulted.
	ErrMalformedModelOutput = errors.New("malformed model output")
)
