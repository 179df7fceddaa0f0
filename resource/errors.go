package resource

import (
	"errors"
	"fmt"
	"strings"

	"apiresource/primitive"
)

//go:generate go tool stringer -type=ErrorCode -output=errorcode_string.go

// ErrorDomain namespaces the codes of *Error.
const ErrorDomain = "apiresource"

// ErrorCode classifies a decode failure.
type ErrorCode int

const (
	ErrorUnknown ErrorCode = iota
	// ErrorResourceSpecificationInvalid means the format itself is unusable.
	ErrorResourceSpecificationInvalid
	// ErrorResourceDictionaryMissingKey means a required key is absent or null.
	ErrorResourceDictionaryMissingKey
	// ErrorResourceDictionaryInvalid means a value has the wrong shape.
	ErrorResourceDictionaryInvalid
	// ErrorResourceDictionaryNestedResourceInvalid means a nested resource failed
	// to decode; the cause is in Err.
	ErrorResourceDictionaryNestedResourceInvalid
)

// Sentinels for errors.Is. They match any *Error with the same code.
var (
	ErrSpecificationInvalid  = &Error{Code: ErrorResourceSpecificationInvalid}
	ErrMissingKey            = &Error{Code: ErrorResourceDictionaryMissingKey}
	ErrDictionaryInvalid     = &Error{Code: ErrorResourceDictionaryInvalid}
	ErrNestedResourceInvalid = &Error{Code: ErrorResourceDictionaryNestedResourceInvalid}
)

// Error is the only error type returned by Decode.
type Error struct {
	Code ErrorCode
	// Resource is the format name of the model being decoded.
	Resource string
	// Key is the dictionary key at fault, empty for whole-dictionary failures.
	Key string
	// Expected is the descriptor kind the value failed to match.
	Expected Kind
	// Got is the shape actually found.
	Got primitive.KindEnum
	// Message replaces the generated description when set.
	Message string
	// Suggestion is a declared key close to an unknown one.
	Suggestion string
	// Err is the nested *Error or the diagnostics of an invalid format.
	Err error
}

func (e *Error) Error() string {
	return ErrorDomain + ": " + e.describe()
}

func (e *Error) describe() string {
	var b strings.Builder
	if e.Resource != "" {
		b.WriteString(e.Resource)
		b.WriteString(": ")
	}

	if e.Key != "" && e.Code != ErrorResourceDictionaryMissingKey {
		fmt.Fprintf(&b, "key %q: ", e.Key)
	}

	switch {
	case e.Message != "":
		b.WriteString(e.Message)
	case e.Code == ErrorResourceSpecificationInvalid:
		b.WriteString("invalid resource specification")
	case e.Code == ErrorResourceDictionaryMissingKey:
		fmt.Fprintf(&b, "missing required key %q", e.Key)
	case e.Code == ErrorResourceDictionaryInvalid:
		fmt.Fprintf(&b, "expected %s, got %s", e.Expected.Name(), e.Got.Name())
	case e.Code == ErrorResourceDictionaryNestedResourceInvalid:
		b.WriteString("invalid nested resource")
	default:
		b.WriteString("unknown error")
	}

	if e.Suggestion != "" {
		fmt.Fprintf(&b, " (did you mean %q?)", e.Suggestion)
	}

	if e.Err != nil {
		b.WriteString(": ")

		var inner *Error
		if errors.As(e.Err, &inner) {
			b.WriteString(inner.describe())
		} else {
			b.WriteString(e.Err.Error())
		}
	}

	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error carrying the same code, which makes the sentinels work
// with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return t.Code == e.Code
}

// Path joins the keys down the chain of nested errors, outermost first.
func (e *Error) Path() string {
	var keys []string
	for cur := e; cur != nil; {
		if cur.Key != "" {
			keys = append(keys, cur.Key)
		}

		if cur.Code != ErrorResourceDictionaryNestedResourceInvalid {
			break
		}

		var next *Error
		if !errors.As(cur.Err, &next) {
			break
		}

		cur = next
	}

	return strings.Join(keys, ".")
}

// Cause returns the innermost *Error of a nested chain.
func (e *Error) Cause() *Error {
	cur := e
	for cur.Code == ErrorResourceDictionaryNestedResourceInvalid {
		var next *Error
		if !errors.As(cur.Err, &next) {
			break
		}

		cur = next
	}

	return cur
}

// CodeOf returns the code of the first *Error in err's chain, ErrorUnknown otherwise.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	return ErrorUnknown
}
