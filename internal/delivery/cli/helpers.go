package cli

import (
	"strconv"
	"strings"
)

// splitCommand splits a line into its first word and the trimmed remainder.
func splitCommand(line string) (string, string) {
	cmd, args, _ := strings.Cut(strings.TrimSpace(line), " ")
	return strings.ToLower(cmd), strings.TrimSpace(args)
}

// parseID parses a question number as shown by /all.
func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimPrefix(strings.TrimSpace(s), "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parseOption converts a 1-based option number typed by the user to an index.
func parseOption(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n - 1, true
}
