package scribe

import (
	"strings"
)

// CalloutKind is the severity keyword of a [Writer.Callout].
type CalloutKind string

const (
	Note      CalloutKind = "NOTE"
	Tip       CalloutKind = "TIP"
	Important CalloutKind = "IMPORTANT"
	Warning   CalloutKind = "WARNING"
	Caution   CalloutKind = "CAUTION"
)

// CalloutKinds returns every callout kind.
func CalloutKinds() []CalloutKind {
	return []CalloutKind{Note, Tip, Important, Warning, Caution}
}

// content resolves the body of a block. A func(*Writer) is run against a
// child Writer in the same mode. Plain values are escaped only when escape
// is set and the Writer is in safe mode.
func (w *Writer) content(v any, escape bool) string {
	switch x := v.(type) {
	case func(*Writer):
		c := w.child()
		if x != nil {
			x(c)
		}
		return strings.TrimRight(c.String(), " \t\r\n")
	case func(*Writer) *Writer:
		c := w.child()
		if x != nil {
			x(c)
		}
		return strings.TrimRight(c.String(), " \t\r\n")
	}
	if escape {
		return strings.TrimRight(textOf(v, w.safe), " \t\r\n")
	}
	s, _ := resolve(v)
	return s
}

// Heading appends a heading. Level is clamped to 1..6.
func (w *Writer) Heading(level int, parts ...any) *Writer {
	level = max(1, min(level, 6))
	return w.block(strings.Repeat("#", level) + " " + joinText(parts, w.safe))
}

// H1 appends a level 1 heading.
func (w *Writer) H1(parts ...any) *Writer { return w.Heading(1, parts...) }

// H2 appends a level 2 heading.
func (w *Writer) H2(parts ...any) *Writer { return w.Heading(2, parts...) }

// H3 appends a level 3 heading.
func (w *Writer) H3(parts ...any) *Writer { return w.Heading(3, parts...) }

// Blockquote appends a quote. Each value becomes a quoted paragraph; values
// are separated by a bare ">" line.
func (w *Writer) Blockquote(lines ...any) *Writer {
	if len(lines) == 0 {
		return w
	}
	paras := make([]string, len(lines))
	for i, v := range lines {
		paras[i] = quote(textOf(v, w.safe))
	}
	return w.block(strings.Join(paras, "\n>\n"))
}

// quote prefixes every line of s with a quote marker.
func quote(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line == "" {
			lines[i] = ">"
			continue
		}
		lines[i] = "> " + line
	}
	return strings.Join(lines, "\n")
}

// Separator appends a horizontal rule.
func (w *Writer) Separator() *Writer { return w.block("---") }

// Comment appends an HTML comment. The text is never escaped.
func (w *Writer) Comment(text any) *Writer {
	s, _ := resolve(text)
	return w.block("<!-- " + s + " -->")
}

// Codeblock appends a fenced code block. Content may be a string, a *Writer,
// [Text] or a func(*Writer) building the body in a child Writer. The body is
// never escaped; the fence grows when the body contains one.
func (w *Writer) Codeblock(lang string, content any) *Writer {
	body := w.content(content, false)
	switch content.(type) {
	case func(*Writer), func(*Writer) *Writer:
		body = strings.TrimSpace(body)
	}
	fence := strings.Repeat("`", max(3, longestRun(body, '`')+1))
	return w.block(fence + lang + "\n" + body + "\n" + fence)
}

// Tag wraps content in <name> and </name> lines. String content is escaped
// in safe mode; Writer and builder content is not. Unlike other blocks a tag
// is closed by a single newline.
func (w *Writer) Tag(name string, content any) *Writer {
	body := w.content(content, true)
	var b strings.Builder
	b.WriteString(w.padding())
	b.WriteString("<" + name + ">\n")
	if body != "" {
		b.WriteString(body + "\n")
	}
	b.WriteString("</" + name + ">\n")
	w.push(b.String())
	return w
}

// Callout appends a GitHub alert: a blockquote headed by [!KIND].
func (w *Writer) Callout(kind CalloutKind, content any) *Writer {
	header := "> [!" + strings.ToUpper(string(kind)) + "]"
	body := w.content(content, true)
	if body == "" {
		return w.block(header)
	}
	return w.block(header + "\n" + quote(body))
}

// Delimit wraps content between the literal open and close lines. Nothing
// is escaped.
func (w *Writer) Delimit(open, close string, content any) *Writer {
	body := strings.TrimRight(w.content(content, false), "\r\n")
	if body == "" {
		return w.block(open + "\n" + close)
	}
	return w.block(open + "\n" + body + "\n" + close)
}
