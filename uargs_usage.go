package uargs

import (
	"fmt"
	"strings"

	"github.com/amterp/color"
)

var (
	greenBold  = color.New(color.FgGreen, color.Bold)
	cyan       = color.New(color.FgCyan)
	bold       = color.New(color.Bold)
	GreenBoldS = greenBold.SprintfFunc()
	CyanS      = cyan.SprintfFunc()
	BoldS      = bold.SprintfFunc()
)

const (
	usageIndent = 2
	usageWidth  = 16
)

// GenerateUsage renders the help text: name and version, the description,
// a synthesized usage line, the options table, and any after-options text.
// ParseOrExit prints it on a help request; callers with their own output
// path can use it directly.
func (c *Cmd) GenerateUsage() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s %s\n", BoldS(c.name), c.version))
	if c.description != "" {
		sb.WriteString(c.description + "\n")
	}

	sb.WriteString("\n" + GreenBoldS("Usage:") + "\n")
	sb.WriteString("  " + c.generateSynopsis() + "\n")

	c.writeOptionsTable(&sb)

	if c.afterOptions != "" {
		sb.WriteString("\n" + c.afterOptions + "\n")
	}

	return sb.String()
}

func (c *Cmd) generateSynopsis() string {
	var sb strings.Builder
	sb.WriteString(BoldS(c.name))
	sb.WriteString(" " + CyanS("[OPTION]..."))
	if c.operands != nil {
		if syn := c.operands.synopsis(); syn != "" {
			sb.WriteString(" " + CyanS(syn))
		}
	}
	return sb.String()
}

type usageRow struct {
	flags string
	help  string
}

func (c *Cmd) optionRows() []usageRow {
	var rows []usageRow
	for _, sp := range c.specs {
		if sp.base.Hidden {
			continue
		}
		col := flagColumn(sp)
		if col == "" {
			continue
		}
		rows = append(rows, usageRow{flags: col, help: sp.base.Help})
	}
	if len(c.helpFlags) > 0 {
		rows = append(rows, usageRow{
			flags: namedFlagColumn(c.helpFlags),
			help:  "Display this help message",
		})
	}
	if len(c.versionFlags) > 0 {
		rows = append(rows, usageRow{
			flags: namedFlagColumn(c.versionFlags),
			help:  "Display version information",
		})
	}
	return rows
}

// writeOptionsTable lays out two columns: flag spellings, then help text.
// Help starts at a fixed column; a spelling column too wide for it pushes
// the help onto the following lines instead of shifting the column.
func (c *Cmd) writeOptionsTable(sb *strings.Builder) {
	rows := c.optionRows()
	if len(rows) == 0 {
		return
	}

	sb.WriteString("\n" + GreenBoldS("Options:") + "\n")
	indent := strings.Repeat(" ", usageIndent)
	cont := strings.Repeat(" ", usageWidth+usageIndent+2)
	for _, row := range rows {
		lines := helpLines(row.help)
		sb.WriteString(indent + row.flags)
		if len(row.flags) <= usageWidth {
			if len(lines) == 0 {
				sb.WriteString("\n")
				continue
			}
			sb.WriteString(strings.Repeat(" ", usageWidth-len(row.flags)+2))
			sb.WriteString(lines[0] + "\n")
			lines = lines[1:]
		} else {
			sb.WriteString("\n")
		}
		for _, line := range lines {
			sb.WriteString(cont + line + "\n")
		}
	}
}

func helpLines(help string) []string {
	if help == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(help, "\n"), "\n")
}

// flagColumn renders one spec's spellings: every short, then every long,
// each carrying its own value marker, "-s VAL" and "--flag=VAL" for required
// values, "-s[VAL]" and "--flag[=VAL]" for optional ones. Long-only rows are
// indented so long options line up across the table.
func flagColumn(sp *spec) string {
	var shorts, longs []string
	for _, r := range sp.base.Shorts {
		switch sp.arity {
		case ArityNone:
			shorts = append(shorts, "-"+string(r))
		case ArityOptional:
			shorts = append(shorts, fmt.Sprintf("-%c[%s]", r, sp.base.Metavar))
		default:
			shorts = append(shorts, fmt.Sprintf("-%c %s", r, sp.base.Metavar))
		}
	}
	for _, long := range sp.base.Longs {
		switch sp.arity {
		case ArityNone:
			longs = append(longs, "--"+long)
		case ArityOptional:
			longs = append(longs, fmt.Sprintf("--%s[=%s]", long, sp.base.Metavar))
		default:
			longs = append(longs, fmt.Sprintf("--%s=%s", long, sp.base.Metavar))
		}
	}
	col := joinColumns(strings.Join(shorts, ", "), strings.Join(longs, ", "))
	if col == "" && sp.base.PrefixKey != "" {
		return sp.base.PrefixKey + "=" + sp.base.Metavar
	}
	return col
}

func namedFlagColumn(names []string) string {
	var shorts, longs []string
	for _, name := range names {
		short, long := splitOptionName(name)
		if short != 0 {
			shorts = append(shorts, "-"+string(short))
		} else if long != "" {
			longs = append(longs, "--"+long)
		}
	}
	return joinColumns(strings.Join(shorts, ", "), strings.Join(longs, ", "))
}

func joinColumns(short, long string) string {
	switch {
	case short == "" && long == "":
		return ""
	case short == "":
		return "    " + long
	case long == "":
		return short
	default:
		return short + ", " + long
	}
}
