package adrci

import "strings"

// ParseBase extracts the repository base path from a "show base"
// report. The interpreter prints a single line of the form
//
//	ADR base is "/u01/app/oracle"
//
// (older releases use "=" instead of "is"). Returns "" when no such
// line is present.
func ParseBase(output string) string {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if !strings.Contains(line, "ADR base") {
			continue
		}
		start := strings.Index(line, `"`)
		end := strings.LastIndex(line, `"`)
		if start >= 0 && end > start {
			return line[start+1 : end]
		}
	}
	return ""
}

// ParseHomes extracts the relative home paths from a "show homes"
// report, preserving the interpreter's order and any repeats. The
// "ADR Homes:" banner, blank lines, and notices such as "No ADR homes
// are set" are dropped; everything path-shaped is kept as-is.
func ParseHomes(output string) []string {
	var homes []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasSuffix(line, ":") {
			continue
		}
		if !strings.Contains(line, "/") {
			continue
		}
		homes = append(homes, line)
	}
	return homes
}

func firstLine(b []byte) string {
	s := strings.TrimSpace(string(b))
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	return s
}
