package render

import (
	"regexp"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
)

var (
	jsonKeyPattern = regexp.MustCompile(`^(\s*)("(?:[^"\\]|\\.)*")(\s*:)`)
	yamlKeyPattern = regexp.MustCompile(`^(\s*-?\s*)([A-Za-z_][^:\s]*)(:)`)
	stringPattern  = regexp.MustCompile(`"(?:[^"\\]|\\.)*"`)
	literalPattern = regexp.MustCompile(`\b(true|false|null|-?\d+(?:\.\d+)?)\b`)
)

// Colorize applies ANSI highlighting to rendered json or yaml text: keys in
// cyan, quoted strings in green, numeric and boolean literals in yellow.
// Table output and unknown formats are returned unchanged. Callers gate on
// tty detection and the colorize setting; this function always colors.
func Colorize(s string, format Format) string {
	var keyPattern *regexp.Regexp
	switch format {
	case FormatJSON:
		keyPattern = jsonKeyPattern
	case FormatYAML:
		keyPattern = yamlKeyPattern
	default:
		return s
	}

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		prefix := ""
		rest := line
		if m := keyPattern.FindStringSubmatch(line); m != nil {
			prefix = m[1] + text.FgCyan.Sprint(m[2]) + m[3]
			rest = line[len(m[0]):]
		}
		lines[i] = prefix + colorizeValues(rest)
	}
	return strings.Join(lines, "\n")
}

// colorizeValues colors quoted strings green and bare literals yellow,
// leaving the string interiors untouched.
func colorizeValues(s string) string {
	var b strings.Builder
	last := 0
	for _, span := range stringPattern.FindAllStringIndex(s, -1) {
		b.WriteString(colorizeLiterals(s[last:span[0]]))
		b.WriteString(text.FgGreen.Sprint(s[span[0]:span[1]]))
		last = span[1]
	}
	b.WriteString(colorizeLiterals(s[last:]))
	return b.String()
}

func colorizeLiterals(s string) string {
	return literalPattern.ReplaceAllStringFunc(s, func(m string) string {
		return text.FgYellow.Sprint(m)
	})
}
