package packer

import (
	"strconv"
	"strings"
)

// Sentinel marks a line with nothing to pack or a line that failed the grammar.
const Sentinel = "-"

// Format renders chosen item indices joined by commas, or Sentinel when empty.
func Format(chosen []Item) string {
	if len(chosen) == 0 {
		return Sentinel
	}
	indices := make([]string, len(chosen))
	for i, item := range chosen {
		indices[i] = strconv.Itoa(item.Index)
	}
	return strings.Join(indices, ",")
}

// Join terminates every line with a newline, including the last.
func Join(lines []string) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
