package diagnostic

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"apiresource/internal/common"
)

// Diagnostics collects the findings of one validation pass.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic is a single finding.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a stable snake_case identifier, e.g. "duplicate_key".
	Code string
	// Message is the human-readable description.
	Message string
	// Resource names the model type (if any).
	Resource string
	// Key is the API key or Go field the diagnostic refers to (if any).
	Key string
	// Suggestions are likely fixes, closest first.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticWarning DiagnosticSeverity = iota + 1
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic and returns it for further decoration.
func (d *Diagnostics) AddError(code, message, resource, key string) *Diagnostic {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: DiagnosticError,
		Code:     code,
		Message:  message,
		Resource: resource,
		Key:      key,
	})

	return &d.Errors[len(d.Errors)-1]
}

// AddWarning adds a warning diagnostic and returns it for further decoration.
func (d *Diagnostics) AddWarning(code, message, resource, key string) *Diagnostic {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		Resource: resource,
		Key:      key,
	})

	return &d.Warnings[len(d.Warnings)-1]
}

// Suggest appends suggestions to the diagnostic, skipping empty ones.
func (d *Diagnostic) Suggest(suggestions ...string) {
	for _, s := range suggestions {
		if s != "" {
			d.Suggestions = append(d.Suggestions, s)
		}
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Merge appends the findings of other.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// Codes returns the codes of all errors in insertion order.
func (d *Diagnostics) Codes() []string {
	codes := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		codes = append(codes, e.Code)
	}

	return codes
}

// Sort orders errors and warnings by resource, then key, then code. Insertion
// order is kept for ties.
func (d *Diagnostics) Sort() {
	less := func(list []Diagnostic) func(i, j int) bool {
		return func(i, j int) bool {
			a, b := list[i], list[j]
			if a.Resource != b.Resource {
				return a.Resource < b.Resource
			}
			if a.Key != b.Key {
				return a.Key < b.Key
			}

			return a.Code < b.Code
		}
	}

	sort.SliceStable(d.Errors, less(d.Errors))
	sort.SliceStable(d.Warnings, less(d.Warnings))
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Resource != "" {
		prefix = append(prefix, "["+d.Resource+"]")
	}

	if d.Key != "" {
		prefix = append(prefix, d.Key)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(quoteAll(d.Suggestions), " or "))
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

func quoteAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = fmt.Sprintf("%q", s)
	}

	return out
}
