package uargs

import (
	"fmt"
	"strings"
)

// Opt builds an option whose value coerces to T.
type Opt[T any] struct {
	BaseSpec
	parse   func(string) (T, error)
	implied *T
	filter  func(string) (string, bool)
	choices []string
}

// NewOpt starts an option builder around a value parser. See ParseString,
// ParseInt and friends for the built-in coercions; any func(string) (T, error)
// works. The option requires a value until SetOptionalValue is called.
func NewOpt[T any](name string, parse func(string) (T, error)) *Opt[T] {
	return &Opt[T]{BaseSpec: BaseSpec{Name: name}, parse: parse}
}

// NewChoice starts an option builder over a closed set of values, matched
// like long options: an exact spelling wins outright, a prefix must select a
// single choice, several choices are ambiguous and none is invalid.
func NewChoice[T any](name string, choices ...Choice[T]) *Opt[T] {
	o := &Opt[T]{BaseSpec: BaseSpec{Name: name}}
	cs := make([]Choice[T], len(choices))
	copy(cs, choices)
	o.parse = func(raw string) (T, error) {
		return matchChoice(raw, cs)
	}
	for _, c := range cs {
		o.choices = append(o.choices, c.Names...)
	}
	return o
}

func (o *Opt[T]) SetShorts(set string) *Opt[T] {
	o.Shorts = set
	return o
}

func (o *Opt[T]) SetLongs(names ...string) *Opt[T] {
	o.Longs = names
	return o
}

func (o *Opt[T]) SetHelp(help string) *Opt[T] {
	o.Help = help
	return o
}

func (o *Opt[T]) SetMetavar(metavar string) *Opt[T] {
	o.Metavar = metavar
	return o
}

func (o *Opt[T]) SetHidden(b bool) *Opt[T] {
	o.Hidden = b
	return o
}

// SetEnv names an environment variable consulted before the arguments are
// read. When set and non-empty it is coerced like a command line value, with
// the variable name standing in for the option in diagnostics.
func (o *Opt[T]) SetEnv(name string) *Opt[T] {
	o.EnvVar = name
	return o
}

// SetOptionalValue makes the value optional. A value still binds when
// attached with '=' or glued to the short option, but a standalone option
// applies v instead of consuming the next argument.
func (o *Opt[T]) SetOptionalValue(v T) *Opt[T] {
	o.implied = &v
	return o
}

// SetPrefix routes arguments of the form key=value to this option without
// any dashes, in the style of dd. The whole command switches to prefix
// parsing as soon as one prefix option is registered.
func (o *Opt[T]) SetPrefix(key string) *Opt[T] {
	o.PrefixKey = key
	return o
}

// SetFilter claims whole arguments before ordinary lexing. When fn returns
// ok the returned text is coerced as this option's value and the argument is
// consumed; filters run in registration order at each argument boundary.
func (o *Opt[T]) SetFilter(fn func(arg string) (value string, ok bool)) *Opt[T] {
	o.filter = fn
	return o
}

// Register attaches the option to cmd. apply runs once per parsed value, in
// argument order.
func (o *Opt[T]) Register(cmd *Cmd, apply func(T)) error {
	if o.parse == nil {
		return fmt.Errorf("option %q has no value parser", o.Name)
	}
	arity := ArityRequired
	if o.implied != nil {
		arity = ArityOptional
	}
	parse := o.parse
	sp := &spec{
		base:    o.BaseSpec,
		arity:   arity,
		choices: o.choices,
		filter:  o.filter,
		applyValue: func(display, raw string) error {
			v, err := parse(raw)
			if err != nil {
				return wrapParseError(display, raw, err)
			}
			apply(v)
			return nil
		},
	}
	if o.implied != nil {
		implied := *o.implied
		sp.applyImplied = func() { apply(implied) }
	}
	return cmd.register(sp)
}

// MatchLeadingMinus matches legacy numeric shorthands like "-10": a '-'
// followed by nothing but ASCII digits. The digits come back without the
// sign, the way head and tail style counts expect them. Use it with
// SetFilter.
func MatchLeadingMinus(arg string) (string, bool) {
	num, ok := strings.CutPrefix(arg, "-")
	if !ok || num == "" {
		return "", false
	}
	for i := 0; i < len(num); i++ {
		if !isDigit(num[i]) {
			return "", false
		}
	}
	return num, true
}

// MatchLeadingPlus matches legacy "+10" and "+-10" shorthands, returning the
// possibly signed remainder after the '+'.
func MatchLeadingPlus(arg string) (string, bool) {
	num, ok := strings.CutPrefix(arg, "+")
	if !ok || num == "" {
		return "", false
	}
	digits := strings.TrimPrefix(num, "-")
	if digits == "" {
		return "", false
	}
	for i := 0; i < len(digits); i++ {
		if !isDigit(digits[i]) {
			return "", false
		}
	}
	return num, true
}
