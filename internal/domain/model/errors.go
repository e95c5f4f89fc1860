package model

import (
	"errors"
	"fmt"
)

// ErrValidation matches every ValidationError through errors.Is.
var ErrValidation = errors.New("validation failed")

// ErrResultMismatch is returned when a schedule is requested for a result
// that was not computed from the given request.
var ErrResultMismatch = errors.New("calculation result does not match request")

// ErrorCode classifies a validation failure.
type ErrorCode string

const (
	CodeInvalidAmount       ErrorCode = "INVALID_AMOUNT"
	CodeInvalidTerm         ErrorCode = "INVALID_TERM"
	CodeInvalidRate         ErrorCode = "INVALID_RATE"
	CodeInvalidFee          ErrorCode = "INVALID_FEE"
	CodeInvalidFrequency    ErrorCode = "INVALID_FREQUENCY"
	CodeInvalidInterestType ErrorCode = "INVALID_INTEREST_TYPE"
	CodeInvalidGracePeriod  ErrorCode = "INVALID_GRACE_PERIOD"
	CodeInvalidLateDays     ErrorCode = "INVALID_LATE_DAYS"
	CodeInvalidDate         ErrorCode = "INVALID_DATE"
	CodeInvalidPaymentsMade ErrorCode = "INVALID_PAYMENTS_MADE"
)

// ValidationError names the offending field and the constraint it violated.
type ValidationError struct {
	Code    ErrorCode
	Field   string
	Message string
}

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(code ErrorCode, field, format string, args ...any) *ValidationError {
	return &ValidationError{Code: code, Field: field, Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is lets errors.Is(err, ErrValidation) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
