package recipe

import (
	"errors"
	"fmt"
)

// ErrorKind classifies generation failures.
type ErrorKind string

const (
	KindMissingCredential ErrorKind = "MISSING_CREDENTIAL"
	KindNetworkFailure    ErrorKind = "NETWORK_FAILURE"
	KindHTTPError         ErrorKind = "HTTP_ERROR"
	KindEmptyResponse     ErrorKind = "EMPTY_RESPONSE"
	KindParseFailure      ErrorKind = "PARSE_FAILURE"
	KindInvalidShape      ErrorKind = "INVALID_SHAPE"
)

// GenerationError is the typed failure of the generation pipeline. Status is
// set for KindHTTPError only.
type GenerationError struct {
	Kind   ErrorKind
	Status int
	Detail string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Kind == KindHTTPError {
		return fmt.Sprintf("generation failed: %s (status %d): %s", e.Kind, e.Status, e.Detail)
	}
	return fmt.Sprintf("generation failed: %s: %s", e.Kind, e.Detail)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Soft reports whether the failure should be treated as a "no recipes"
// outcome rather than a hard error. The kind is still preserved for
// diagnostics.
func (e *GenerationError) Soft() bool {
	switch e.Kind {
	case KindEmptyResponse, KindParseFailure, KindInvalidShape:
		return true
	}
	return false
}

// AsGenerationError extracts a GenerationError from err, if any.
func AsGenerationError(err error) (*GenerationError, bool) {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr, true
	}
	return nil, false
}

func newGenerationError(kind ErrorKind, detail string, err error) *GenerationError {
	return &GenerationError{
		Kind:   kind,
		Detail: detail,
		Err:    err,
	}
}

func newHTTPError(status int, detail string) *GenerationError {
	return &GenerationError{
		Kind:   KindHTTPError,
		Status: status,
		Detail: detail,
	}
}
