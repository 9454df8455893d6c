package uargs

import (
	"fmt"
)

// Cmd collects option specs, operand shapes, and command metadata, and
// parses argument vectors against them. Registration is the only mutation;
// parsing never changes the Cmd, so one Cmd can serve many argument vectors.
type Cmd struct {
	name         string
	description  string
	version      string
	afterOptions string   // extra help text printed below the options table
	exitCode     int      // exit code for ParseOrExit on bad input
	helpFlags    []string // spellings that invoke help, e.g. "--help", "-h"
	versionFlags []string // spellings that invoke version output
	operands     *Signature

	specs       []*spec          // declaration order
	byName      map[string]*spec // spec name -> spec
	shortIndex  map[rune]*spec   // short option -> spec
	longIndex   map[string]*spec // long option -> spec
	longOrder   []string         // long options in declaration order
	prefixIndex map[string]*spec // prefix key -> spec
	prefixOrder []string         // prefix keys in declaration order
	filters     []*spec          // specs with argument filters, declaration order
}

func NewCmd(name string) *Cmd {
	return &Cmd{
		name:         name,
		exitCode:     1,
		helpFlags:    []string{"--help"},
		versionFlags: []string{"--version"},
		byName:       make(map[string]*spec),
		shortIndex:   make(map[rune]*spec),
		longIndex:    make(map[string]*spec),
		prefixIndex:  make(map[string]*spec),
	}
}

func (c *Cmd) SetDescription(desc string) *Cmd {
	c.description = desc
	return c
}

func (c *Cmd) SetVersion(version string) *Cmd {
	c.version = version
	return c
}

// SetAfterOptions adds free text printed after the options table in help
// output.
func (c *Cmd) SetAfterOptions(text string) *Cmd {
	c.afterOptions = text
	return c
}

// SetExitCode changes the code ParseOrExit exits with on bad input. Help and
// version requests always exit 0.
func (c *Cmd) SetExitCode(code int) *Cmd {
	c.exitCode = code
	return c
}

// SetHelpFlags replaces the spellings that invoke help, given with their
// dashes ("-h", "--help"). Calling it with no arguments disables the built-in
// help entirely.
func (c *Cmd) SetHelpFlags(names ...string) *Cmd {
	c.helpFlags = names
	return c
}

// SetVersionFlags replaces the spellings that invoke version output, like
// SetHelpFlags.
func (c *Cmd) SetVersionFlags(names ...string) *Cmd {
	c.versionFlags = names
	return c
}

// SetOperands declares the shape of the positional arguments. Without it the
// operands come back from Parse as a plain slice and anything is accepted.
func (c *Cmd) SetOperands(sig *Signature) *Cmd {
	c.operands = sig
	return c
}

func (c *Cmd) register(sp *spec) error {
	name := sp.base.Name
	if name == "" {
		return fmt.Errorf("option name must not be empty")
	}
	if _, exists := c.byName[name]; exists {
		return fmt.Errorf("option %q already defined", name)
	}
	seenShorts := make(map[rune]bool)
	for _, r := range sp.base.Shorts {
		if r == '-' {
			return fmt.Errorf("short flag '-' is reserved")
		}
		if seenShorts[r] || c.shortIndex[r] != nil {
			return fmt.Errorf("short flag %q already defined", string(r))
		}
		seenShorts[r] = true
	}
	seenLongs := make(map[string]bool)
	for _, long := range sp.base.Longs {
		if long == "" {
			return fmt.Errorf("long flag name must not be empty")
		}
		if seenLongs[long] || c.longIndex[long] != nil {
			return fmt.Errorf("long flag %q already defined", long)
		}
		seenLongs[long] = true
	}
	if key := sp.base.PrefixKey; key != "" && c.prefixIndex[key] != nil {
		return fmt.Errorf("prefix key %q already defined", key)
	}
	if len(sp.base.Shorts) == 0 && len(sp.base.Longs) == 0 &&
		sp.base.PrefixKey == "" && sp.filter == nil && sp.base.EnvVar == "" {
		return fmt.Errorf("option %q has no short, long, prefix, filter, or env binding", name)
	}
	if sp.arity != ArityNone && sp.base.Metavar == "" {
		sp.base.Metavar = "VALUE"
	}

	c.specs = append(c.specs, sp)
	c.byName[name] = sp
	for _, r := range sp.base.Shorts {
		c.shortIndex[r] = sp
	}
	for _, long := range sp.base.Longs {
		c.longIndex[long] = sp
		c.longOrder = append(c.longOrder, long)
	}
	if key := sp.base.PrefixKey; key != "" {
		c.prefixIndex[key] = sp
		c.prefixOrder = append(c.prefixOrder, key)
	}
	if sp.filter != nil {
		c.filters = append(c.filters, sp)
	}
	return nil
}

// OptionInfo describes one registered option for renderers and tooling.
type OptionInfo struct {
	Name      string   // spec name
	Shorts    string   // short options, one per rune
	Longs     []string // long options, no dashes
	Arity     Arity    // whether and how the option takes a value
	Metavar   string   // value placeholder, "" for flags
	Help      string   // one line description
	Hidden    bool     // omit from help output
	Values    []string // closed value set, empty when free-form
	PrefixKey string   // key for key=value style options, "" otherwise
}

// Options lists the registered options in declaration order, hidden ones
// included. The built-in help and version entries are not options and do not
// appear here.
func (c *Cmd) Options() []OptionInfo {
	infos := make([]OptionInfo, 0, len(c.specs))
	for _, sp := range c.specs {
		infos = append(infos, OptionInfo{
			Name:      sp.base.Name,
			Shorts:    sp.base.Shorts,
			Longs:     sp.base.Longs,
			Arity:     sp.arity,
			Metavar:   sp.base.Metavar,
			Help:      sp.base.Help,
			Hidden:    sp.base.Hidden,
			Values:    sp.choices,
			PrefixKey: sp.base.PrefixKey,
		})
	}
	return infos
}

// Operands lists the declared operand slots in order, or nil when no shape
// was set.
func (c *Cmd) Operands() []SlotInfo {
	if c.operands == nil {
		return nil
	}
	return c.operands.Slots()
}

func (c *Cmd) Name() string           { return c.name }
func (c *Cmd) Description() string    { return c.description }
func (c *Cmd) Version() string        { return c.version }
func (c *Cmd) AfterOptions() string   { return c.afterOptions }
func (c *Cmd) HelpFlags() []string    { return c.helpFlags }
func (c *Cmd) VersionFlags() []string { return c.versionFlags }
