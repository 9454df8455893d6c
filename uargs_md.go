package uargs

import (
	"io"
	"strings"
)

// GenMarkdown writes documentation in the mdbook style: a title, the
// version, the description, then definition lists for options and declared
// operands.
func (c *Cmd) GenMarkdown(w io.Writer) error {
	var sb strings.Builder

	sb.WriteString("# " + c.name + "\n\n")
	if c.version != "" {
		sb.WriteString("<div class=\"additional\">" + c.version + "</div>\n\n")
	}
	if c.description != "" {
		sb.WriteString(c.description + "\n\n")
	}

	sb.WriteString("## Options\n\n<dl>\n")
	for _, sp := range c.specs {
		if sp.base.Hidden {
			continue
		}
		dt := mdFlagList(sp)
		if dt == "" {
			continue
		}
		sb.WriteString("<dt>" + dt + "</dt>\n")
		sb.WriteString("<dd>\n\n" + sp.base.Help + "\n\n</dd>\n")
	}
	sb.WriteString("</dl>\n")

	if slots := c.Operands(); len(slots) > 0 {
		sb.WriteString("\n## Arguments\n\n<dl>\n")
		for _, slot := range slots {
			sb.WriteString("<dt><code>" + slot.Name + "</code></dt>\n")
			sb.WriteString("<dd>\n\n" + slotDescription(slot) + "\n\n</dd>\n")
		}
		sb.WriteString("</dl>\n")
	}

	if c.afterOptions != "" {
		sb.WriteString("\n" + c.afterOptions + "\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// mdFlagList renders one option's spellings as code spans, long forms first.
func mdFlagList(sp *spec) string {
	var flags []string
	for _, long := range sp.base.Longs {
		flags = append(flags, "<code>--"+long+"</code>")
	}
	for _, r := range sp.base.Shorts {
		flags = append(flags, "<code>-"+string(r)+"</code>")
	}
	if sp.base.PrefixKey != "" {
		flags = append(flags, "<code>"+sp.base.PrefixKey+"=</code>")
	}
	return strings.Join(flags, ", ")
}
