package operations

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"apiresource/internal/diagnostic"
	"apiresource/resource"
)

var (
	errorLabel   = color.New(color.FgRed, color.Bold).SprintFunc()
	warningLabel = color.New(color.FgYellow, color.Bold).SprintFunc()
	okLabel      = color.New(color.FgGreen, color.Bold).SprintFunc()
	faint        = color.New(color.Faint).SprintFunc()
)

// printDiagnostics writes errors before warnings, one per line.
func printDiagnostics(w io.Writer, diags diagnostic.Diagnostics) {
	diags.Sort()

	for _, d := range diags.Errors {
		fmt.Fprintf(w, "%s %s\n", errorLabel("error:"), d)
	}

	for _, d := range diags.Warnings {
		fmt.Fprintf(w, "%s %s\n", warningLabel("warning:"), d)
	}
}

// printDecodeError reports a decode failure with its code and key path.
func printDecodeError(w io.Writer, err error) {
	var rerr *resource.Error
	if !errors.As(err, &rerr) {
		fmt.Fprintf(w, "%s %v\n", errorLabel("error:"), err)
		return
	}

	fmt.Fprintf(w, "%s %v\n", errorLabel("error:"), rerr)
	fmt.Fprintf(w, "  %s %s (%s %d)\n", faint("code:"), rerr.Code, resource.ErrorDomain, int(rerr.Code))

	if path := rerr.Path(); path != "" {
		fmt.Fprintf(w, "  %s %s\n", faint("path:"), path)
	}

	if cause := rerr.Cause(); cause != rerr {
		fmt.Fprintf(w, "  %s %s\n", faint("cause:"), cause.Code)
	}
}

var (
	addedLine   = color.New(color.FgGreen).SprintFunc()
	removedLine = color.New(color.FgRed).SprintFunc()
)

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}

	return strings.Split(s, "\n")
}
