package uargs

import (
	"fmt"
	"io"
	"strings"
)

const zshCompletionTemplate = `#compdef %[1]s

autoload -U is-at-least

_%[1]s() {
    typeset -A opt_args
    typeset -a _arguments_options
    local ret=1

    if is-at-least 5.2; then
        _arguments_options=(-s -S -C)
    else
        _arguments_options=(-s -C)
    fi

    local context curcontext="$curcontext" state line
    _arguments "${_arguments_options[@]}" \
%[2]s&& ret=0
}

if [ "$funcstack[1]" = "_%[1]s" ]; then
    %[1]s "$@"
else
    compdef _%[1]s %[1]s
fi
`

// GenZshCompletion writes a zsh completion script: an _arguments spec with
// one entry per flag spelling.
func (c *Cmd) GenZshCompletion(w io.Writer) error {
	_, err := fmt.Fprintf(w, zshCompletionTemplate, c.name, c.zshArgLines())
	return err
}

func (c *Cmd) zshArgLines() string {
	var sb strings.Builder
	indent := strings.Repeat(" ", 8)
	for _, arg := range c.completionArgs() {
		help := zshEscape(arg.help)
		for _, r := range arg.shorts {
			sb.WriteString(fmt.Sprintf("%s'-%c[%s]' \\\n", indent, r, help))
		}
		for _, long := range arg.longs {
			sb.WriteString(fmt.Sprintf("%s'--%s[%s]' \\\n", indent, long, help))
		}
	}
	return sb.String()
}

func zshEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "[", `\[`)
	s = strings.ReplaceAll(s, "]", `\]`)
	return strings.ReplaceAll(s, "'", `'\''`)
}
