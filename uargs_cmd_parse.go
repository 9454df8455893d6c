package uargs

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/amterp/color"
)

// Parse runs args through the registered specs. Option callbacks fire in
// argument order, interleaved with operand collection, so later arguments
// observe state set by earlier ones. args[0] is the program name and is
// skipped. The operands come back as a slice, validated against the operand
// shape when one was set; the first failure aborts the parse.
//
// Help or version spellings abort with HelpInvokedErr or VersionInvokedErr.
func (c *Cmd) Parse(args []string, opts ...ParseOpt) ([]string, error) {
	initializeColorFromEnv()

	cfg := parseCfg{lookupEnv: os.LookupEnv}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := c.applyEnvDefaults(cfg); err != nil {
		return nil, err
	}

	if len(args) > 0 {
		args = args[1:]
	}

	var lexOpts []LexOpt
	if cfg.echoStyle {
		lexOpts = append(lexOpts, EchoShorts(c.shortSet()))
	}
	if len(c.prefixOrder) > 0 {
		lexOpts = append(lexOpts, PrefixStyle())
	}
	if cfg.optionsFirst {
		lexOpts = append(lexOpts, OptionsFirst())
	}

	s := c.newSession(cfg)
	s.lx = NewLexer(args, lexOpts...)

	for {
		if err := s.applyFilters(); err != nil {
			return nil, err
		}
		tok := s.lx.Next()
		if tok.Kind == TokenEnd {
			break
		}
		if err := s.handle(tok); err != nil {
			return nil, err
		}
	}

	if c.operands != nil {
		if _, err := c.operands.Unpack(s.operands); err != nil {
			return nil, err
		}
	}
	return s.operands, nil
}

// ParseOrExit is Parse for program main functions: help and version requests
// render to stdout and exit 0, errors render to stderr as "error: {message}"
// and exit with the command's exit code. On success it returns the operands.
func (c *Cmd) ParseOrExit(args []string, opts ...ParseOpt) []string {
	operands, err := c.Parse(args, opts...)
	if err == nil {
		return operands
	}
	switch {
	case errors.Is(err, HelpInvokedErr):
		fmt.Fprint(stdoutWriter, c.GenerateUsage())
		osExit(0)
	case errors.Is(err, VersionInvokedErr):
		fmt.Fprintf(stdoutWriter, "%s %s\n", c.name, c.version)
		osExit(0)
	default:
		fmt.Fprintf(stderrWriter, "error: %s\n", err)
		osExit(c.exitCode)
	}
	return nil
}

func (c *Cmd) applyEnvDefaults(cfg parseCfg) error {
	for _, sp := range c.specs {
		if sp.base.EnvVar == "" || sp.applyValue == nil {
			continue
		}
		if v, ok := cfg.lookupEnv(sp.base.EnvVar); ok && v != "" {
			if err := sp.applyValue(sp.base.EnvVar, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Cmd) shortSet() string {
	var b strings.Builder
	for _, sp := range c.specs {
		b.WriteString(sp.base.Shorts)
	}
	return b.String()
}

// session is the per-parse state: the lexer, the collected operands, and the
// long-name resolution set with the help and version spellings folded in.
type session struct {
	cmd      *Cmd
	lx       *Lexer
	operands []string

	longNames []string // resolution set: declared longs, then help, then version
	helpLong  map[string]bool
	helpShort map[rune]bool
	verLong   map[string]bool
	verShort  map[rune]bool
}

func (c *Cmd) newSession(cfg parseCfg) *session {
	s := &session{
		cmd:       c,
		helpLong:  make(map[string]bool),
		helpShort: make(map[rune]bool),
		verLong:   make(map[string]bool),
		verShort:  make(map[rune]bool),
	}
	seen := make(map[string]bool, len(c.longOrder))
	for _, long := range c.longOrder {
		s.longNames = append(s.longNames, long)
		seen[long] = true
	}
	fold := func(names []string, shorts map[rune]bool, longs map[string]bool) {
		for _, name := range names {
			short, long := splitOptionName(name)
			if short != 0 {
				shorts[short] = true
			} else if long != "" {
				longs[long] = true
				if !seen[long] {
					s.longNames = append(s.longNames, long)
					seen[long] = true
				}
			}
		}
	}
	fold(c.helpFlags, s.helpShort, s.helpLong)
	fold(c.versionFlags, s.verShort, s.verLong)
	return s
}

// applyFilters gives every argument filter a look at the next raw argument,
// repeating until none claims one. Filters only run between raw arguments
// with option recognition live, never inside a cluster or after "--".
func (s *session) applyFilters() error {
	if len(s.cmd.filters) == 0 || !s.lx.atRawBoundary() {
		return nil
	}
	for {
		arg, ok := s.lx.peekRaw()
		if !ok || !utf8.ValidString(arg) {
			return nil
		}
		claimed := false
		for _, sp := range s.cmd.filters {
			if text, ok := sp.filter(arg); ok {
				s.lx.takeRaw()
				if err := sp.applyValue("", text); err != nil {
					return err
				}
				claimed = true
				break
			}
		}
		if !claimed {
			return nil
		}
	}
}

func (s *session) handle(tok Token) error {
	switch tok.Kind {
	case TokenPositional:
		s.operands = append(s.operands, tok.Raw)
		return nil
	case TokenShort:
		return s.handleShort(tok)
	case TokenLong:
		if tok.Prefix {
			return s.handlePrefix(tok)
		}
		return s.handleLong(tok)
	default:
		return nil
	}
}

func (s *session) handleShort(tok Token) error {
	if sp := s.cmd.shortIndex[tok.Short]; sp != nil {
		return s.applySpec(sp, "-"+string(tok.Short), tok)
	}
	if s.helpShort[tok.Short] {
		return HelpInvokedErr
	}
	if s.verShort[tok.Short] {
		return VersionInvokedErr
	}
	return &UnexpectedOptionError{Option: string(tok.Short)}
}

func (s *session) handleLong(tok Token) error {
	long, err := ResolveLong(tok.Long, s.longNames)
	if err != nil {
		return err
	}
	if sp := s.cmd.longIndex[long]; sp != nil {
		return s.applySpec(sp, "--"+long, tok)
	}
	if s.helpLong[long] {
		return HelpInvokedErr
	}
	if s.verLong[long] {
		return VersionInvokedErr
	}
	return &UnexpectedOptionError{Option: "--" + long}
}

func (s *session) handlePrefix(tok Token) error {
	sp := s.cmd.prefixIndex[tok.Long]
	if sp == nil {
		return &UnexpectedOptionError{
			Option:      tok.Long,
			Suggestions: Suggestions(tok.Long, s.cmd.prefixOrder, ""),
		}
	}
	val, _ := s.lx.OptionalValue()
	return sp.applyValue("", val.Raw)
}

func (s *session) applySpec(sp *spec, display string, tok Token) error {
	switch sp.arity {
	case ArityNone:
		if tok.Attached != nil {
			return &UnexpectedValueError{Option: display, Value: *tok.Attached}
		}
		sp.applyFlag()
		return nil
	case ArityOptional:
		if val, ok := s.lx.OptionalValue(); ok {
			return sp.applyValue(display, val.Raw)
		}
		sp.applyImplied()
		return nil
	default:
		val, err := s.lx.Value(display)
		if err != nil {
			return err
		}
		return sp.applyValue(display, val.Raw)
	}
}

func initializeColorFromEnv() {
	colorValue := strings.ToLower(strings.TrimSpace(os.Getenv("UARGS_COLOR")))
	switch colorValue {
	case "never":
		color.NoColor = true
	case "always":
		color.NoColor = false
	case "", "auto":
		// default behavior
		// let amterp/color decide based on tty
	default:
		// invalid value - treat as auto
	}
}
