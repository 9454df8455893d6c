package uargs

import (
	"fmt"
	"io"
	"strings"
)

// completionArg is one option row for the completion and doc renderers:
// every visible spec with at least one dashed spelling contributes one.
type completionArg struct {
	shorts string
	longs  []string
	help   string
	takes  bool
	values []string
}

func (c *Cmd) completionArgs() []completionArg {
	var args []completionArg
	for _, sp := range c.specs {
		if sp.base.Hidden {
			continue
		}
		if sp.base.Shorts == "" && len(sp.base.Longs) == 0 {
			continue
		}
		args = append(args, completionArg{
			shorts: sp.base.Shorts,
			longs:  sp.base.Longs,
			help:   firstLine(sp.base.Help),
			takes:  sp.arity != ArityNone,
			values: sp.choices,
		})
	}
	return args
}

// GenBashCompletion writes a bash completion script for the command: file
// completion in any position, plus the flag words once the current word looks
// like an option.
func (c *Cmd) GenBashCompletion(w io.Writer) error {
	// The program "[" is not a valid function name fragment.
	ident := c.name
	if ident == "[" {
		ident = "bracket"
	}
	var words strings.Builder
	for _, arg := range c.completionArgs() {
		for _, r := range arg.shorts {
			words.WriteString("-" + string(r) + " ")
		}
		for _, long := range arg.longs {
			words.WriteString("--" + long + " ")
		}
	}
	_, err := fmt.Fprintf(w, bashCompletionTemplate, ident, c.name, ident, words.String())
	return err
}

const bashCompletionTemplate = "complete -F _comp_%s '%s';" +
	"_comp_%s(){ local cur;_init_completion||return;COMPREPLY=();" +
	"if [[ \"$cur\" != \"-*\" ]]; then _filedir;fi;" +
	"COMPREPLY+=($(compgen -W \"%s\" -- \"$cur\"));}\n"

// GenFishCompletion writes a fish completion script: one complete call per
// option carrying all its spellings, with declared value sets offered as
// candidates.
func (c *Cmd) GenFishCompletion(w io.Writer) error {
	var sb strings.Builder
	for _, arg := range c.completionArgs() {
		sb.WriteString("complete -c " + c.name)
		for _, r := range arg.shorts {
			sb.WriteString(" -s " + string(r))
		}
		for _, long := range arg.longs {
			sb.WriteString(" -l " + long)
		}
		sb.WriteString(" -d '" + fishEscape(arg.help) + "'")
		if len(arg.values) > 0 {
			sb.WriteString(" -f -a \"" + strings.Join(arg.values, " ") + "\"")
		}
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func fishEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
