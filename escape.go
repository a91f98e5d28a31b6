package scribe

import (
	"fmt"
	"html"
	"strings"
)

// Characters escaped with a backslash wherever they appear.
const escapable = "&<>\\`*_~()|![]"

// Escape makes s safe to embed as literal text in Markdown or XML-style
// tag content. Markdown punctuation and the characters &, < and > are
// backslash-escaped, and a block marker at the start of any line (heading,
// blockquote, bullet or "N." ordered marker) is escaped so it cannot be
// read as block syntax.
func Escape(s string) string {
	if s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = escapeLine(line)
	}
	return strings.Join(lines, "\n")
}

func escapeLine(line string) string {
	marker := blockMarker(line)
	var b strings.Builder
	b.Grow(len(line) + 8)
	for i := 0; i < len(line); i++ {
		c := line[i]
		if i == marker || strings.IndexByte(escapable, c) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// blockMarker returns the byte offset of the character that would make line
// a block construct, or -1. Characters already in escapable are handled by
// the general pass and are not reported here.
func blockMarker(line string) int {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	if i >= len(line) {
		return -1
	}
	switch line[i] {
	case '#', '-', '+':
		return i
	}
	j := i
	for j < len(line) && line[j] >= '0' && line[j] <= '9' {
		j++
	}
	if j > i && j < len(line) && line[j] == '.' {
		return j
	}
	return -1
}

// EscapeLineStarts escapes only the block markers at the start of each line
// of s, leaving inline punctuation alone.
func EscapeLineStarts(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if m := blockMarker(line); m >= 0 {
			lines[i] = line[:m] + "\\" + line[m:]
			continue
		}
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, ">") || strings.HasPrefix(trimmed, "*") {
			m := len(line) - len(trimmed)
			lines[i] = line[:m] + "\\" + line[m:]
		}
	}
	return strings.Join(lines, "\n")
}

// CodeSpan wraps s in an inline code span whose backtick fence is one longer
// than the longest backtick run inside s. Content that starts or ends with
// whitespace or a backtick is padded with a space on each side. Empty input
// yields an empty string.
func CodeSpan(s string) string {
	if s == "" {
		return ""
	}
	fence := strings.Repeat("`", longestRun(s, '`')+1)
	if isPadChar(s[0]) || isPadChar(s[len(s)-1]) {
		s = " " + s + " "
	}
	return fence + s + fence
}

func isPadChar(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '`'
}

// longestRun returns the length of the longest run of c in s.
func longestRun(s string, c byte) int {
	longest, run := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] != c {
			run = 0
			continue
		}
		run++
		if run > longest {
			longest = run
		}
	}
	return longest
}

// Schemes accepted by SanitizeURL. Destinations without a scheme are
// relative and always accepted.
var allowedSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
}

// SanitizeURL makes u safe to use as a Markdown link or image destination.
// Any scheme other than http, https or mailto yields "#". The scheme is
// checked after entity references are decoded, as Markdown renderers
// decode them in destinations. Otherwise unsafe bytes are percent-encoded
// and parentheses are backslash-escaped.
func SanitizeURL(u string) string {
	u = strings.TrimSpace(u)
	if !allowedURL(u) {
		return "#"
	}
	var b strings.Builder
	for i := 0; i < len(u); i++ {
		c := u[i]
		switch {
		case c == '(' || c == ')':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c <= 0x20 || c >= 0x7f || strings.IndexByte("<>\"`{}|\\^", c) >= 0:
			fmt.Fprintf(&b, "%%%02X", c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// allowedURL reports whether u, and u with entity references decoded, is
// relative or uses an allowed scheme.
func allowedURL(u string) bool {
	for _, candidate := range []string{u, html.UnescapeString(u)} {
		if scheme, ok := urlScheme(candidate); ok && !allowedSchemes[strings.ToLower(scheme)] {
			return false
		}
	}
	return true
}

// urlScheme extracts the scheme of u. Control characters and whitespace are
// ignored while scanning so "java\tscript:" is still seen as a scheme.
func urlScheme(u string) (string, bool) {
	var b strings.Builder
	for i := 0; i < len(u); i++ {
		c := u[i]
		switch {
		case c == ':':
			return b.String(), b.Len() > 0
		case c == '/' || c == '?' || c == '#':
			return "", false
		case c <= 0x20:
			continue
		default:
			b.WriteByte(c)
		}
	}
	return "", false
}
