// Package apperr defines the error kinds reported by list-posts.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDirectory       = errors.New("cannot open posts directory")
	ErrFileOpen        = errors.New("cannot read post")
	ErrMalformedHeader = errors.New("missing colon in line")
	ErrMalformedDate   = errors.New("malformed date line")
	ErrCapacity        = errors.New("too many posts")
)

// PostError ties an error kind to the post file and header line that caused it.
// Line is empty when the failure is not tied to a specific line.
type PostError struct {
	Kind error
	File string
	Line string
	Err  error
}

// Error formats as "<file>: <kind>" followed by the offending line or cause.
func (e *PostError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", e.File, e.Kind)
	if e.Line != "" {
		fmt.Fprintf(&b, ": %q", strings.TrimSuffix(e.Line, "\n"))
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap exposes both the kind and the underlying cause to errors.Is.
func (e *PostError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
