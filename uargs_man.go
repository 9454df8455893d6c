package uargs

import (
	"io"
	"strings"
)

// GenMan writes a roff man page built from the declared table: NAME,
// SYNOPSIS, DESCRIPTION, OPTIONS, and ARGUMENTS when operand shapes were
// declared.
func (c *Cmd) GenMan(w io.Writer) error {
	var sb strings.Builder

	sb.WriteString(".TH " + strings.ToUpper(manEscape(c.name)) + " 1\n")
	sb.WriteString(".SH NAME\n")
	sb.WriteString(manText(c.name) + "\n")

	sb.WriteString(".SH SYNOPSIS\n")
	sb.WriteString(".B " + manEscape(c.name) + "\n")
	syn := "[OPTION]..."
	if c.operands != nil {
		if s := c.operands.synopsis(); s != "" {
			syn += " " + s
		}
	}
	sb.WriteString(manText(syn) + "\n")

	if c.description != "" {
		sb.WriteString(".SH DESCRIPTION\n")
		sb.WriteString(manText(c.description) + "\n")
	}

	var rows []*spec
	for _, sp := range c.specs {
		if !sp.base.Hidden && manOptionRow(sp) != "" {
			rows = append(rows, sp)
		}
	}
	if len(rows) > 0 {
		sb.WriteString(".SH OPTIONS\n")
		for _, sp := range rows {
			sb.WriteString(".TP\n")
			sb.WriteString(manOptionRow(sp) + "\n")
			sb.WriteString(manText(sp.base.Help) + "\n")
		}
	}

	if slots := c.Operands(); len(slots) > 0 {
		sb.WriteString(".SH ARGUMENTS\n")
		for _, slot := range slots {
			sb.WriteString(".TP\n")
			sb.WriteString(`\fI` + manEscape(slot.Name) + `\fR` + "\n")
			sb.WriteString(manText(slotDescription(slot)) + "\n")
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// manOptionRow renders one option's spellings with bold flags and italic
// metavariables, long spellings first.
func manOptionRow(sp *spec) string {
	meta := `\fI` + manEscape(sp.base.Metavar) + `\fR`
	var parts []string
	for _, long := range sp.base.Longs {
		f := `\fB` + manEscape("--"+long) + `\fR`
		switch sp.arity {
		case ArityRequired:
			f += "=" + meta
		case ArityOptional:
			f += "[=" + meta + "]"
		}
		parts = append(parts, f)
	}
	for _, r := range sp.base.Shorts {
		f := `\fB` + manEscape("-"+string(r)) + `\fR`
		switch sp.arity {
		case ArityRequired:
			f += " " + meta
		case ArityOptional:
			f += "[" + meta + "]"
		}
		parts = append(parts, f)
	}
	if sp.base.PrefixKey != "" {
		parts = append(parts, `\fB`+manEscape(sp.base.PrefixKey)+`\fR=`+meta)
	}
	return strings.Join(parts, ", ")
}

func slotDescription(slot SlotInfo) string {
	desc := "required"
	if !slot.Needed {
		desc = "optional"
	}
	if slot.Repeats {
		desc += ", repeatable"
	}
	return desc
}

func manEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, "-", `\-`)
}

// manText escapes free text for roff, guarding lines that would otherwise
// read as control requests.
func manText(s string) string {
	lines := strings.Split(manEscape(s), "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, ".") || strings.HasPrefix(line, "'") {
			lines[i] = `\&` + line
		}
	}
	return strings.Join(lines, "\n")
}
