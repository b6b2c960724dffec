package common

import "fmt"

// ErrorKind is the stable machine-readable classification exposed to
// callers. Internal detail (DSNs, driver errors) never leaves the service.
type ErrorKind string

const (
	// KindInvalidInput marks malformed or out-of-enum request data. Never
	// retried.
	KindInvalidInput ErrorKind = "invalid_input"
	// KindNotFound marks an absent referenced entity. Not retried.
	KindNotFound ErrorKind = "not_found"
	// KindConflict marks a uniqueness violation on create; callers should
	// re-resolve through the lookup path instead of retrying the create.
	KindConflict ErrorKind = "conflict"
	// KindUpstream marks a store transport failure. Retriable.
	KindUpstream ErrorKind = "upstream"
	// KindDataIntegrity marks a User without its ScoreRecord, which normal
	// operation never produces. Distinct from NotFound so operators can
	// detect and repair orphan rows.
	KindDataIntegrity ErrorKind = "data_integrity"
)

type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewInvalidInput(message string) *AppError {
	return &AppError{Kind: KindInvalidInput, Message: message}
}

func NewNotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewConflict(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

func NewUpstream(message string, err error) *AppError {
	return &AppError{Kind: KindUpstream, Message: message, Err: err}
}

func NewDataIntegrity(message string) *AppError {
	return &AppError{Kind: KindDataIntegrity, Message: message}
}
