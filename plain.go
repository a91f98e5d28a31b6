package scribe

import (
	"regexp"
	"strings"
)

// Escaped punctuation is parked in the private use area while markup is
// stripped, then restored unescaped.
const escapeBase = 0xE000

var (
	escapedChar = regexp.MustCompile("\\\\([!-/:-@\\[-`{-~])")
	parkedChar  = regexp.MustCompile("[\uE000-\uE07F]")

	plainRules = []struct {
		re   *regexp.Regexp
		repl string
	}{
		{regexp.MustCompile(`(?s)<!--.*?-->`), ""},
		{regexp.MustCompile("(?m)^[ \t]*`{3,}.*$\n?"), ""},
		{regexp.MustCompile(`(?m)^[ \t]*</?[A-Za-z][\w.:-]*>[ \t]*$\n?`), ""},
		{regexp.MustCompile(`(?m)^#{1,6}[ \t]+`), ""},
		{regexp.MustCompile(`(?m)^>[ \t]*\[!(\w+)\][ \t]*$`), "$1:"},
		{regexp.MustCompile(`(?m)^>[ \t]?`), ""},
		{regexp.MustCompile(`(?m)^[ \t]*(-{3,}|\*{3,}|_{3,})[ \t]*$`), ""},
		{regexp.MustCompile(`(?m)^\|([ \t]*:?-+:?[ \t]*\|)+[ \t]*$\n?`), ""},
		{regexp.MustCompile(`(?m)^\|[ \t]*(.*?)[ \t]*\|[ \t]*$`), "$1"},
		{regexp.MustCompile(`(?m)^([ \t]*)[-*+][ \t]+\[[ xX]\][ \t]+`), "$1"},
		{regexp.MustCompile(`(?m)^([ \t]*)[-*+][ \t]+`), "$1"},
		{regexp.MustCompile(`!\[([^\]]*)\]\((?:\\.|[^)\\])*\)`), "$1"},
		{regexp.MustCompile(`\[([^\]]*)\]\((?:\\.|[^)\\])*\)`), "$1"},
		{regexp.MustCompile(`\*\*(.+?)\*\*`), "$1"},
		{regexp.MustCompile(`__(.+?)__`), "$1"},
		{regexp.MustCompile(`~~(.+?)~~`), "$1"},
		{regexp.MustCompile(`\*([^*\n]+)\*`), "$1"},
		{regexp.MustCompile(`\b_([^_\n]+)_\b`), "$1"},
		{regexp.MustCompile("`+ ?([^`]+?) ?`+"), "$1"},
		{regexp.MustCompile(`\n{3,}`), "\n\n"},
	}
)

// ToPlainText strips Markdown markup, comments and tag lines from the
// rendered text and unescapes escaped punctuation. It is a best-effort
// pattern substitution, not a Markdown parser.
func (w *Writer) ToPlainText() string {
	return ToPlainText(w.String())
}

// ToPlainText strips Markdown markup from s. See [Writer.ToPlainText].
func ToPlainText(s string) string {
	s = escapedChar.ReplaceAllStringFunc(s, func(m string) string {
		return string(rune(escapeBase + int(m[1])))
	})
	for _, rule := range plainRules {
		s = rule.re.ReplaceAllString(s, rule.repl)
	}
	s = parkedChar.ReplaceAllStringFunc(s, func(m string) string {
		return string(rune([]rune(m)[0] - escapeBase))
	})
	return strings.TrimSpace(s)
}
