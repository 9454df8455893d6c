package uargs

import (
	"errors"
	"fmt"
	"strings"
)

// HelpInvokedErr is returned by Parse when a declared help flag is given.
// It is control flow, not a failure: ParseOrExit renders the usage and exits 0.
var HelpInvokedErr = errors.New("help invoked")

// VersionInvokedErr is returned by Parse when a declared version flag is given.
var VersionInvokedErr = errors.New("version invoked")

// MissingValueError reports an option that requires a value but got none.
type MissingValueError struct {
	Option string // as typed, e.g. "-c" or "--bytes"; may be empty
}

func (e *MissingValueError) Error() string {
	if e.Option == "" {
		return "Missing value"
	}
	return fmt.Sprintf("Missing value for '%s'.", e.Option)
}

// MissingPositionalsError reports required positional slots left unfilled.
type MissingPositionalsError struct {
	Names []string // slot names, in signature order
}

func (e *MissingPositionalsError) Error() string {
	var sb strings.Builder
	sb.WriteString("Missing values for the following positional arguments:")
	for _, name := range e.Names {
		sb.WriteString("\n  - ")
		sb.WriteString(name)
	}
	return sb.String()
}

// UnexpectedOptionError reports an option that matches nothing declared.
type UnexpectedOptionError struct {
	Option      string   // as typed, e.g. "--colr" or "-x"
	Suggestions []string // close declared names, already prefixed for display
}

func (e *UnexpectedOptionError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found an invalid option '%s'.", e.Option)
	if len(e.Suggestions) > 0 {
		sb.WriteString("\nDid you mean: ")
		sb.WriteString(strings.Join(e.Suggestions, ", "))
	}
	return sb.String()
}

// UnexpectedArgumentError reports a surplus operand.
type UnexpectedArgumentError struct {
	Value string
}

func (e *UnexpectedArgumentError) Error() string {
	return fmt.Sprintf("Found an invalid argument '%s'.", e.Value)
}

// UnexpectedValueError reports a value attached to an option that takes none.
type UnexpectedValueError struct {
	Option string
	Value  string
}

func (e *UnexpectedValueError) Error() string {
	return fmt.Sprintf("Got an unexpected value '%s' for option '%s'.", e.Value, e.Option)
}

// ParsingFailedError wraps a value-coercion failure with the option it was
// for and the literal text that failed.
type ParsingFailedError struct {
	Option string // as typed; empty for bare positional coercion
	Value  string
	Cause  error
}

func (e *ParsingFailedError) Error() string {
	if e.Option == "" {
		return fmt.Sprintf("Invalid value '%s': %v", e.Value, e.Cause)
	}
	return fmt.Sprintf("Invalid value '%s' for '%s': %v", e.Value, e.Option, e.Cause)
}

func (e *ParsingFailedError) Unwrap() error {
	return e.Cause
}

// AmbiguousOptionError reports an abbreviation matching several long options.
type AmbiguousOptionError struct {
	Option     string   // the abbreviation as typed, without dashes
	Candidates []string // every match, in declaration order, without dashes
}

func (e *AmbiguousOptionError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Option '%s' is ambiguous. The following candidates match:", e.Option)
	for _, c := range e.Candidates {
		sb.WriteString("\n  - ")
		sb.WriteString(c)
	}
	return sb.String()
}

// AmbiguousValueError reports an abbreviated enum value matching several
// declared values. It surfaces wrapped in a ParsingFailedError naming the
// option it was passed to.
type AmbiguousValueError struct {
	Value      string
	Candidates []string
}

func (e *AmbiguousValueError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Value '%s' is ambiguous. The following candidates match:", e.Value)
	for _, c := range e.Candidates {
		sb.WriteString("\n  - ")
		sb.WriteString(c)
	}
	return sb.String()
}

// NonUnicodeValueError reports raw bytes that are not valid UTF-8 where
// strict text was required.
type NonUnicodeValueError struct {
	Raw string // original bytes, preserved exactly
}

func (e *NonUnicodeValueError) Error() string {
	return fmt.Sprintf("Invalid unicode value found: %s", strings.ToValidUTF8(e.Raw, "�"))
}

// CustomError carries a caller-defined failure through the parse unchanged.
// A value parser returning one bypasses the ParsingFailedError wrapping.
type CustomError struct {
	Cause error
}

func (e *CustomError) Error() string {
	return e.Cause.Error()
}

func (e *CustomError) Unwrap() error {
	return e.Cause
}
