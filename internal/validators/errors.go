package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyProductName = errors.New("product name is required")
	ErrEmptyAudience    = errors.New("target audience is required")
	ErrEmptyProblem     = errors.New("problem statement is required")
	ErrEmptyFeatures    = errors.New("features description is required")
	ErrInvalidTone      = errors.New("invalid tone")
	ErrInvalidTheme     = errors.New("invalid color theme")

	ErrMissingSection = errors.New("missing copy section")
	ErrEmptyCopyField = errors.New("empty copy field")
)
