package uargs

import (
	"strings"
	"unicode/utf8"
)

// TokenKind classifies what the lexer found at the current position.
type TokenKind int

const (
	// TokenEnd signals argument exhaustion.
	TokenEnd TokenKind = iota
	// TokenShort is a single short option character, e.g. the 'c' in -c or -xcf.
	TokenShort
	// TokenLong is a long option name, e.g. --bytes or --bytes=42, or a
	// prefix-style key=value argument when that extension is enabled.
	TokenLong
	// TokenValue is text consumed as an option's value.
	TokenValue
	// TokenPositional is an operand: text not claimed by any option.
	TokenPositional
)

// Token is one classified unit of the raw argument vector.
type Token struct {
	Kind     TokenKind
	Short    rune    // the option character, for TokenShort
	Long     string  // the option name without dashes, for TokenLong
	Attached *string // the =value split off a long option, if any
	Raw      string  // literal text, for TokenValue and TokenPositional
	Prefix   bool    // true when a prefix-style key=value produced this TokenLong
}

type lexCfg struct {
	echoShorts   string
	echoStyle    bool
	prefixStyle  bool
	optionsFirst bool
}

// LexOpt configures a Lexer at construction.
type LexOpt func(*lexCfg)

// EchoShorts enables echo-style classification: an argument starting with '-'
// is an operand unless every following character is in set, and "--" is never
// a terminator.
func EchoShorts(set string) LexOpt {
	return func(c *lexCfg) {
		c.echoStyle = true
		c.echoShorts = set
	}
}

// PrefixStyle enables dd-style recognition: any argument containing '=' before
// the terminator is lexed as a long token whose name is the text before the
// first '='.
func PrefixStyle() LexOpt {
	return func(c *lexCfg) {
		c.prefixStyle = true
	}
}

// OptionsFirst latches the lexer into all-operand mode at the first operand,
// so a wrapped command line passes through untouched.
func OptionsFirst() LexOpt {
	return func(c *lexCfg) {
		c.optionsFirst = true
	}
}

// Lexer turns a raw argument vector into a pull-based token stream. It never
// fails: every argument classifies into exactly one token, and unicode
// problems surface later, during value coercion. A Lexer is single-use;
// construct a fresh one per parse.
type Lexer struct {
	args []string
	idx  int
	cfg  lexCfg

	cluster    string  // unread remainder of the current short cluster
	attached   *string // unconsumed =value of the current long option
	terminated bool    // saw "--"
	latched    bool    // options-first tripped; everything is an operand now
}

// NewLexer returns a Lexer over args. The slice is read, never written.
func NewLexer(args []string, opts ...LexOpt) *Lexer {
	l := &Lexer{args: args}
	for _, opt := range opts {
		opt(&l.cfg)
	}
	return l
}

// Next returns the next token, or a TokenEnd once the arguments are exhausted.
// An attached value left unconsumed by Value or OptionalValue is dropped when
// the lexer moves on; callers that care inspect Token.Attached.
func (l *Lexer) Next() Token {
	if l.cluster != "" {
		r, size := utf8.DecodeRuneInString(l.cluster)
		l.cluster = l.cluster[size:]
		return Token{Kind: TokenShort, Short: r}
	}
	l.attached = nil

	if l.idx >= len(l.args) {
		return Token{Kind: TokenEnd}
	}
	arg := l.args[l.idx]
	l.idx++

	if l.terminated || l.latched {
		return Token{Kind: TokenPositional, Raw: arg}
	}

	if l.cfg.echoStyle && echoStylePositional(arg, l.cfg.echoShorts) {
		return l.positional(arg)
	}

	if l.cfg.prefixStyle && utf8.ValidString(arg) {
		if key, val, ok := strings.Cut(arg, "="); ok {
			v := val
			l.attached = &v
			return Token{Kind: TokenLong, Long: key, Attached: &v, Prefix: true}
		}
	}

	switch {
	case arg == "-":
		return l.positional(arg)
	case arg == "--":
		l.terminated = true
		return l.Next()
	case strings.HasPrefix(arg, "--"):
		name := arg[2:]
		if eq := strings.IndexByte(name, '='); eq >= 0 {
			v := name[eq+1:]
			l.attached = &v
			return Token{Kind: TokenLong, Long: name[:eq], Attached: &v}
		}
		return Token{Kind: TokenLong, Long: name}
	case strings.HasPrefix(arg, "-"):
		rest := arg[1:]
		r, size := utf8.DecodeRuneInString(rest)
		l.cluster = rest[size:]
		return Token{Kind: TokenShort, Short: r}
	default:
		return l.positional(arg)
	}
}

// Peek returns the token Next would return, without committing to it.
func (l *Lexer) Peek() Token {
	saved := *l
	tok := l.Next()
	*l = saved
	return tok
}

// Value consumes a required value for the option last returned by Next: the
// attached text if any (the =rest of a long option, or the entire remainder
// of a short cluster with one leading '=' stripped), otherwise the following
// raw argument verbatim. option is the display form for the error, e.g. "-c".
func (l *Lexer) Value(option string) (Token, error) {
	if tok, ok := l.OptionalValue(); ok {
		return tok, nil
	}
	if l.idx < len(l.args) {
		arg := l.args[l.idx]
		l.idx++
		return Token{Kind: TokenValue, Raw: arg}, nil
	}
	return Token{}, &MissingValueError{Option: option}
}

// OptionalValue consumes a value only when one is attached to the option last
// returned by Next. It never takes the following argument, so an option that
// happens to follow is never mistaken for a value.
func (l *Lexer) OptionalValue() (Token, bool) {
	if l.attached != nil {
		v := *l.attached
		l.attached = nil
		return Token{Kind: TokenValue, Raw: v}, true
	}
	if l.cluster != "" {
		v := strings.TrimPrefix(l.cluster, "=")
		l.cluster = ""
		return Token{Kind: TokenValue, Raw: v}, true
	}
	return Token{}, false
}

func (l *Lexer) positional(arg string) Token {
	if l.cfg.optionsFirst {
		l.latched = true
	}
	return Token{Kind: TokenPositional, Raw: arg}
}

// atRawBoundary reports whether the lexer sits between raw arguments with
// option recognition still live, which is the only place free filters and
// other whole-argument extensions may run.
func (l *Lexer) atRawBoundary() bool {
	return l.cluster == "" && l.attached == nil && !l.terminated && !l.latched
}

func (l *Lexer) peekRaw() (string, bool) {
	if l.idx < len(l.args) {
		return l.args[l.idx], true
	}
	return "", false
}

func (l *Lexer) takeRaw() string {
	arg := l.args[l.idx]
	l.idx++
	return arg
}

// echoStylePositional reports whether arg is an operand under echo-style
// rules: anything that is not a '-' followed by one or more recognized short
// flags. That includes "--" and arguments that are not valid UTF-8.
func echoStylePositional(arg string, shorts string) bool {
	if !utf8.ValidString(arg) {
		return true
	}
	if len(arg) < 2 || arg[0] != '-' {
		return true
	}
	for _, r := range arg[1:] {
		if !strings.ContainsRune(shorts, r) {
			return true
		}
	}
	return false
}
