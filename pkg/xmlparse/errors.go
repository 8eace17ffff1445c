package xmlparse

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the ways a parse can fail.
type ErrorKind uint8

// Parse failure kinds. Every kind is fatal for the parse in progress:
// the parser aborts at the first failure and no partial result is kept.
const (
	// ErrOutOfRange indicates a lookahead past the end of the buffer.
	ErrOutOfRange ErrorKind = iota

	// ErrUnexpectedCharacter indicates a required literal character was absent.
	ErrUnexpectedCharacter

	// ErrInvalidName indicates an identifier did not start with a letter.
	ErrInvalidName

	// ErrMalformedComment indicates a comment body did not terminate with "-->".
	ErrMalformedComment

	// ErrMisplacedHeader indicates an <?xml?> prolog after the first construct.
	ErrMisplacedHeader

	// ErrExpectedTag indicates top-level content that is neither a tag,
	// a comment, nor the prolog.
	ErrExpectedTag

	// ErrClosingTagMismatch indicates a closing tag name that does not match
	// its opening tag.
	ErrClosingTagMismatch

	// ErrMalformedTag indicates the attribute scanning loop reached input it
	// cannot make progress on.
	ErrMalformedTag

	// ErrMultipleRoots indicates a second top-level tag under WithSingleRoot.
	ErrMultipleRoots

	// ErrNoRootElement indicates a document with no top-level tag under
	// WithSingleRoot.
	ErrNoRootElement
)

// String returns the kind's name.
func (k ErrorKind) String() string {
	switch k {
	case ErrOutOfRange:
		return "out of range"
	case ErrUnexpectedCharacter:
		return "unexpected character"
	case ErrInvalidName:
		return "invalid name"
	case ErrMalformedComment:
		return "malformed comment"
	case ErrMisplacedHeader:
		return "misplaced header"
	case ErrExpectedTag:
		return "expected tag"
	case ErrClosingTagMismatch:
		return "closing tag mismatch"
	case ErrMalformedTag:
		return "malformed tag"
	case ErrMultipleRoots:
		return "multiple root elements"
	case ErrNoRootElement:
		return "no root element"
	default:
		return "unknown"
	}
}

// ParseError is the error type for all scanning and parsing failures.
// Line is 1-based; Column counts characters consumed since the last newline.
type ParseError struct {
	// Kind classifies the failure.
	Kind ErrorKind

	// Line and Column locate the failure in the input.
	Line   int
	Column int

	// Expected and Found carry the mismatched values for
	// ErrUnexpectedCharacter and ErrClosingTagMismatch.
	Expected string
	Found    string

	// Msg holds additional detail for kinds without a fixed shape.
	Msg string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrUnexpectedCharacter:
		return fmt.Sprintf("%d:%d: %s: expected %q, found %q", e.Line, e.Column, e.Kind, e.Expected, e.Found)
	case ErrClosingTagMismatch:
		return fmt.Sprintf("%d:%d: %s: expected </%s>, found </%s>", e.Line, e.Column, e.Kind, e.Expected, e.Found)
	default:
		if e.Msg != "" {
			return fmt.Sprintf("%d:%d: %s: %s", e.Line, e.Column, e.Kind, e.Msg)
		}
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Kind)
	}
}

// IsKind reports whether err is (or wraps) a *ParseError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return false
	}
	return pe.Kind == kind
}
