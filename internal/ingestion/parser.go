package ingestion

import "strings"

// Parse splits a settlement export into rows of cells. Lines are split on
// newlines, cells on commas, with double quotes toggling a literal state so
// quoted commas survive. An unterminated quote consumes to end of line.
// Blank lines are dropped; the header line comes back as row 0. Parse never
// fails: malformed input degrades to whatever cells it can produce.
func Parse(text string) [][]string {
	var rows [][]string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, splitLine(line))
	}

	return rows
}

func splitLine(line string) []string {
	var cells []string
	var cell strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			cells = append(cells, cell.String())
			cell.Reset()
		default:
			cell.WriteRune(r)
		}
	}
	cells = append(cells, cell.String())

	return cells
}

// Detect reports whether the first non-blank line looks like the header of a
// settlement export: it must mention, case-insensitively, a transaction id,
// a device, a card and a commission column. Callers use this to reject
// unrelated uploads before running the full pipeline.
func Detect(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		header := strings.ToLower(line)
		for _, token := range []string{"transac", "disposit", "tarjeta", "comisi"} {
			if !strings.Contains(header, token) {
				return false
			}
		}
		return true
	}
	return false
}
