package generator

import "errors"

var (
	// ErrGenerationFailed is the single failure mode the rest of the
	// application sees: configuration, transport, API and validation
	// problems are all wrapped in it.
	ErrGenerationFailed = errors.New("copy generation failed")

	// ErrMissingAPIKey indicates the service was asked to generate
	// without an API key configured.
	ErrMissingAPIKey = errors.New("generation API key is not configured")

	// ErrEmptyResponse indicates the API returned no usable candidate
	// text.
	ErrEmptyResponse = errors.New("empty response from generation API")
)
