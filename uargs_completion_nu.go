package uargs

import (
	"fmt"
	"io"
	"strings"
)

// GenNushellCompletion writes a nushell extern signature for the command,
// one row per flag spelling with value-taking options typed as string.
func (c *Cmd) GenNushellCompletion(w io.Writer) error {
	type row struct {
		arg  string
		help string
	}
	var rows []row
	for _, arg := range c.completionArgs() {
		typ := ""
		if arg.takes {
			typ = ": string"
		}
		for _, r := range arg.shorts {
			rows = append(rows, row{"-" + string(r) + typ, arg.help})
		}
		for _, long := range arg.longs {
			rows = append(rows, row{"--" + long + typ, arg.help})
		}
	}
	longest := 0
	for _, r := range rows {
		if len(r.arg) > longest {
			longest = len(r.arg)
		}
	}

	var sb strings.Builder
	sb.WriteString("export extern " + c.name + " [\n")
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("    %-*s # %s\n", longest, r.arg, r.help))
	}
	sb.WriteString("]\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
