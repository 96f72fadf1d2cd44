package usecase

// Error codes attached to DomainError/TechnicalError.
const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeDatabaseError   = "DATABASE_ERROR"
)

// DomainError is a business rejection: the caller sent something we refuse.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError is an infrastructure failure the caller cannot fix.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

func newValidationFailed(errs []ValidationError) *DomainError {
	msg := "validation failed: "
	for i, e := range errs {
		if i > 0 {
			msg += ", "
		}
		msg += e.Field + " (" + e.Message + ")"
	}
	return &DomainError{Code: CodeValidationError, Message: msg}
}
