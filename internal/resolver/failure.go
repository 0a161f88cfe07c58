package resolver

import "errors"

// FailureKind distinguishes the terminal failure modes of resolution.
type FailureKind string

const (
	KindParseError FailureKind = "parse_error"
	KindNotFound   FailureKind = "not_found"
)

// Failure is the error returned when no stage produced a location. For
// not-found failures, Suggestions carries hints for sharpening the query.
type Failure struct {
	Kind        FailureKind
	Message     string
	Suggestions []string
}

// Error implements error.
func (f *Failure) Error() string { return f.Message }

// IsNotFound reports whether err is a not-found resolution failure.
func IsNotFound(err error) bool {
	var f *Failure
	return errors.As(err, &f) && f.Kind == KindNotFound
}

// IsParseError reports whether err is a parse failure.
func IsParseError(err error) bool {
	var f *Failure
	return errors.As(err, &f) && f.Kind == KindParseError
}

// SuggestionsFrom extracts the suggestions attached to a resolution
// failure, if any.
func SuggestionsFrom(err error) []string {
	var f *Failure
	if errors.As(err, &f) {
		return f.Suggestions
	}
	return nil
}
