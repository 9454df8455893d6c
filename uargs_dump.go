package uargs

import (
	"fmt"
	"os"
	"strings"
)

// Dump renders the declared table and command metadata for debugging option
// tables. The format is for humans; do not parse it.
func (c *Cmd) Dump() string {
	var sb strings.Builder

	sb.WriteString(GreenBoldS("Command Dump") + "\n")
	sb.WriteString(strings.Repeat("=", 50) + "\n\n")

	sb.WriteString(GreenBoldS("Command Information:") + "\n")
	sb.WriteString("  Name: " + BoldS(c.name) + "\n")
	sb.WriteString("  Description: " + orNotSet(c.description) + "\n")
	sb.WriteString("  Version: " + orNotSet(c.version) + "\n")
	sb.WriteString("  Exit Code: " + BoldS(fmt.Sprintf("%d", c.exitCode)) + "\n")
	sb.WriteString("  Help Flags: " + flagListOrDisabled(c.helpFlags) + "\n")
	sb.WriteString("  Version Flags: " + flagListOrDisabled(c.versionFlags) + "\n")
	sb.WriteString("\n")

	sb.WriteString(GreenBoldS("Options:") + "\n")
	if len(c.specs) == 0 {
		sb.WriteString("  " + CyanS("<none>") + "\n")
	} else {
		for i, sp := range c.specs {
			sb.WriteString(fmt.Sprintf("  [%d] %s\n", i, formatSpecForDump(sp)))
		}
	}
	sb.WriteString("\n")

	sb.WriteString(GreenBoldS("Operands:") + "\n")
	slots := c.Operands()
	if len(slots) == 0 {
		sb.WriteString("  " + CyanS("<none declared>") + "\n")
	} else {
		for i, slot := range slots {
			sb.WriteString(fmt.Sprintf("  [%d] %s %s\n", i, BoldS(slot.Name), CyanS(slotDescription(slot))))
		}
	}
	sb.WriteString("\n")

	sb.WriteString(GreenBoldS("Environment:") + "\n")
	if v := os.Getenv("UARGS_COLOR"); v != "" {
		sb.WriteString("  UARGS_COLOR: " + BoldS(v) + "\n")
	} else {
		sb.WriteString("  UARGS_COLOR: " + CyanS("not set") + "\n")
	}

	return sb.String()
}

func orNotSet(v string) string {
	if v == "" {
		return CyanS("<not set>")
	}
	return BoldS(v)
}

func flagListOrDisabled(names []string) string {
	if len(names) == 0 {
		return CyanS("<disabled>")
	}
	return BoldS(strings.Join(names, ", "))
}

// formatSpecForDump packs one spec's declaration onto a single line.
func formatSpecForDump(sp *spec) string {
	var parts []string

	if spellings := dumpSpellings(sp); spellings != "" {
		parts = append(parts, fmt.Sprintf("%s (%s)", BoldS(sp.base.Name), spellings))
	} else {
		parts = append(parts, BoldS(sp.base.Name))
	}

	parts = append(parts, "value:"+CyanS(sp.arity.String()))
	if sp.arity != ArityNone && sp.base.Metavar != "" {
		parts = append(parts, "metavar:"+CyanS(sp.base.Metavar))
	}
	if len(sp.choices) > 0 {
		parts = append(parts, fmt.Sprintf("values:[%s]", strings.Join(sp.choices, ",")))
	}
	if sp.base.EnvVar != "" {
		parts = append(parts, "env:"+sp.base.EnvVar)
	}
	if sp.filter != nil {
		parts = append(parts, "filter")
	}
	if sp.base.Hidden {
		parts = append(parts, "hidden")
	}
	if sp.base.Help != "" {
		parts = append(parts, fmt.Sprintf("help:%q", sp.base.Help))
	}

	return strings.Join(parts, " ")
}

func dumpSpellings(sp *spec) string {
	var spellings []string
	for _, r := range sp.base.Shorts {
		spellings = append(spellings, "-"+string(r))
	}
	for _, long := range sp.base.Longs {
		spellings = append(spellings, "--"+long)
	}
	if sp.base.PrefixKey != "" {
		spellings = append(spellings, sp.base.PrefixKey+"=")
	}
	return strings.Join(spellings, ", ")
}
