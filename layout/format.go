// SPDX-License-Identifier: MIT

package layout

import "strings"

// Format renders the type of n in a compact form, for logs and errors:
//
//	{event: var * Momentum4D{px: float64, py: float64, pz: float64, E: float64}}
func Format(n Node) string {
	var sb strings.Builder
	writeType(&sb, n)
	return sb.String()
}

func writeType(sb *strings.Builder, n Node) {
	switch t := n.(type) {
	case nil:
		sb.WriteString("<nil>")
	case *Leaf:
		sb.WriteString(t.dtype.String())
	case *List:
		sb.WriteString("var * ")
		writeType(sb, t.content)
	case *Indexed:
		if t.IsOption() {
			sb.WriteByte('?')
		}
		writeType(sb, t.content)
	case *Masked:
		sb.WriteByte('?')
		writeType(sb, t.content)
	case *Record:
		sb.WriteString(t.name)
		sb.WriteByte('{')
		for i, f := range t.fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(f.Name)
			sb.WriteString(": ")
			writeType(sb, f.Content)
		}
		sb.WriteByte('}')
	case *Union:
		sb.WriteString("union[")
		for i, c := range t.contents {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeType(sb, c)
		}
		sb.WriteByte(']')
	}
}
