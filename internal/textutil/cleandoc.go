// Package textutil provides whitespace normalization for embedded
// documentation strings.
package textutil

import (
	"strings"
)

// tabstop is the column width used when expanding tabs before measuring
// indentation.
const tabstop = 8

// Cleandoc normalizes an indented documentation block. Tabs are expanded,
// leading whitespace is stripped from the first line, the longest common
// leading whitespace is removed from every following line, and blank lines
// at the start and end are dropped.
func Cleandoc(doc string) string {
	lines := strings.Split(expandTabs(doc), "\n")

	// Margin is measured over every line after the first that has content.
	margin := -1
	for _, line := range lines[1:] {
		content := strings.TrimLeft(line, " ")
		if content == "" {
			continue
		}
		indent := len(line) - len(content)
		if margin < 0 || indent < margin {
			margin = indent
		}
	}

	lines[0] = strings.TrimLeft(lines[0], " ")
	if margin > 0 {
		for i := 1; i < len(lines); i++ {
			if len(lines[i]) >= margin {
				lines[i] = lines[i][margin:]
			} else {
				lines[i] = strings.TrimLeft(lines[i], " ")
			}
		}
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}

	return strings.Join(lines, "\n")
}

// expandTabs replaces tabs with spaces, padding each to the next
// tabstop-column boundary.
func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}

	var b strings.Builder
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			pad := tabstop - col%tabstop
			b.WriteString(strings.Repeat(" ", pad))
			col += pad
		case '\n':
			b.WriteRune(r)
			col = 0
		default:
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}
