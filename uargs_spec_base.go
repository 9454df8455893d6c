package uargs

import "errors"

// Arity is the declared cardinality of an option's value.
type Arity int

const (
	// ArityNone declares a flag: the option never takes a value.
	ArityNone Arity = iota
	// ArityOptional declares a value consumed only when attached, as in
	// --color=auto or -wVAL. A detached following argument is never taken.
	ArityOptional
	// ArityRequired declares a value that is always consumed: attached text
	// if present, the following argument otherwise.
	ArityRequired
)

func (a Arity) String() string {
	switch a {
	case ArityOptional:
		return "optional"
	case ArityRequired:
		return "required"
	default:
		return "none"
	}
}

// BaseSpec is the declared identity shared by every option spec, filled in
// through the fluent builders before registration.
type BaseSpec struct {
	Name      string   // Primary identifier, unique within a command
	Shorts    string   // Short option characters, e.g. "bq" declares -b and -q
	Longs     []string // Long option names, without leading dashes
	Help      string   // Help text shown in usage output
	Metavar   string   // Value placeholder in usage and docs, e.g. "NUM"
	Hidden    bool     // Hide from usage, completion and docs
	EnvVar    string   // Environment variable consulted as a default source
	PrefixKey string   // dd-style key recognized as key=value, without '='
}

// spec is the registered, type-erased form of a builder, stored in a Cmd.
// The typed parser and apply handler are folded into the closures.
type spec struct {
	base    BaseSpec
	arity   Arity
	choices []string // declared value spellings, for completion and docs
	filter  func(string) (string, bool)

	applyFlag    func()                          // arity none
	applyImplied func()                          // arity optional, no value attached
	applyValue   func(display, raw string) error // coerce raw and apply
}

// wrapParseError dresses a coercion failure with the option display form and
// the literal text that failed. A CustomError passes through untouched, and
// so does a NonUnicodeValueError: the unicode check fails before the value
// is really parsed, so the failure is the argument's, not the option's.
func wrapParseError(display, raw string, err error) error {
	var custom *CustomError
	if errors.As(err, &custom) {
		return custom
	}
	var nonUnicode *NonUnicodeValueError
	if errors.As(err, &nonUnicode) {
		return nonUnicode
	}
	return &ParsingFailedError{Option: display, Value: raw, Cause: err}
}
