package errors

import "fmt"

// ErrorCode represents a nano-banana error code.
type ErrorCode string

const (
	ErrInvalidRequest      ErrorCode = "INVALID_REQUEST"      // 400
	ErrNotFound            ErrorCode = "NOT_FOUND"            // 404
	ErrConflict            ErrorCode = "CONFLICT"             // 409
	ErrDocumentMissing     ErrorCode = "DOCUMENT_MISSING"     // 404 (fatal for the generator)
	ErrEmptyCorpus         ErrorCode = "EMPTY_CORPUS"         // 422
	ErrArtifactUnavailable ErrorCode = "ARTIFACT_UNAVAILABLE" // 502
	ErrArtifactMalformed   ErrorCode = "ARTIFACT_MALFORMED"   // 502
	ErrInternal            ErrorCode = "INTERNAL"             // 500
)

// Error represents a structured error with code, status, and details.
// Callers inspect the code to decide whether to log, fall back, or abort;
// the library layers never print.
type Error struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *Error {
	return &Error{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for a case that cannot be found.
func NewNotFound(identifier string) *Error {
	return &Error{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("case not found: %s", identifier),
		Details: map[string]any{"identifier": identifier},
	}
}

// NewConflict creates a 409 error for general conflicts.
func NewConflict(msg string) *Error {
	return &Error{
		Code:    ErrConflict,
		Status:  409,
		Message: msg,
	}
}

// NewDocumentMissing creates an error for a missing source document.
// Fatal for the generator; a fallback trigger for the runtime loader.
func NewDocumentMissing(path string) *Error {
	return &Error{
		Code:    ErrDocumentMissing,
		Status:  404,
		Message: fmt.Sprintf("source document not found: %s", path),
		Details: map[string]any{"path": path},
	}
}

// NewEmptyCorpus creates an error for a run that retained zero records.
func NewEmptyCorpus(source string) *Error {
	return &Error{
		Code:    ErrEmptyCorpus,
		Status:  422,
		Message: fmt.Sprintf("no cases extracted from %s", source),
		Details: map[string]any{"source": source},
	}
}

// NewArtifactUnavailable creates an error for a failed artifact fetch.
// Never fatal at runtime: the loader treats it as "artifact absent".
func NewArtifactUnavailable(url string, cause error) *Error {
	msg := fmt.Sprintf("artifact unavailable: %s", url)
	if cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, cause)
	}
	return &Error{
		Code:    ErrArtifactUnavailable,
		Status:  502,
		Message: msg,
		Details: map[string]any{"url": url},
	}
}

// NewArtifactMalformed creates an error for an artifact that fetched but
// failed to parse or validate.
func NewArtifactMalformed(url string, cause error) *Error {
	msg := fmt.Sprintf("artifact malformed: %s", url)
	if cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, cause)
	}
	return &Error{
		Code:    ErrArtifactMalformed,
		Status:  502,
		Message: msg,
		Details: map[string]any{"url": url},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *Error {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &Error{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a structured Error with the given code.
func Is(err error, code ErrorCode) bool {
	if e, ok := err.(*Error); ok {
		return e.Code == code
	}
	return false
}
