package preview

import "strings"

// MaxTextLines is how many lines of text the garment shows.
const MaxTextLines = 3

// TextLines splits raw text on newlines and keeps the first three lines.
// Empty text has no lines.
func TextLines(raw string) []string {
	if raw == "" {
		return nil
	}
	lines := strings.Split(raw, "\n")
	if len(lines) > MaxTextLines {
		lines = lines[:MaxTextLines]
	}
	return lines
}

// joinedLines is the value text changes are detected on.
func joinedLines(raw string) string {
	return strings.Join(TextLines(raw), "\n")
}
