package market

import "errors"

// ErrValidation matches every input error the market reports.
var ErrValidation = errors.New("validation error")

type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

var (
	ErrInvalidDateFormat = &ValidationError{msg: "invalid date format, use YYYY-MM-DD"}
	ErrMissingRangeBound = &ValidationError{msg: "both bounds required"}
	ErrInvertedRange     = &ValidationError{msg: "from_date must not be after to_date"}
	ErrUnknownCategory   = &ValidationError{msg: "unknown category"}
)
