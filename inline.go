package scribe

import "strings"

// Formatters produces inline Markdown fragments. The zero value formats
// without escaping and returns plain [Text]; [SafeFmt] escapes its input and
// returns trusted Text. Use [Writer.Fmt] to get the set matching a Writer.
type Formatters struct {
	safe bool
}

var (
	// PlainFmt formats without escaping.
	PlainFmt = Formatters{}
	// SafeFmt escapes untrusted input and marks its output trusted.
	SafeFmt = Formatters{safe: true}
)

// IsSafe reports whether f escapes its input.
func (f Formatters) IsSafe() bool { return f.safe }

func (f Formatters) wrap(marker string, values []any) Text {
	return f.result(marker + joinText(values, f.safe) + marker)
}

func (f Formatters) result(s string) Text {
	if f.safe {
		return Trusted(s)
	}
	return Plain(s)
}

// Bold returns **values**.
func (f Formatters) Bold(values ...any) Text { return f.wrap("**", values) }

// Italic returns *values*.
func (f Formatters) Italic(values ...any) Text { return f.wrap("*", values) }

// Strike returns ~~values~~.
func (f Formatters) Strike(values ...any) Text { return f.wrap("~~", values) }

// Code returns values as an inline code span. In safe mode the fence is
// sized so the content cannot close it early.
func (f Formatters) Code(values ...any) Text {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i], _ = resolve(v)
	}
	s := strings.Join(parts, " ")
	if f.safe {
		return Trusted(CodeSpan(s))
	}
	return Plain("`" + s + "`")
}

// Inline is an alias of Code.
func (f Formatters) Inline(values ...any) Text { return f.Code(values...) }

// Link returns [text](url) with an optional title.
func (f Formatters) Link(text any, url string, title ...string) Text {
	return f.result("[" + textOf(text, f.safe) + "](" + f.destination(url, title) + ")")
}

// Image returns ![alt](url) with an optional title.
func (f Formatters) Image(alt any, url string, title ...string) Text {
	return f.result("![" + textOf(alt, f.safe) + "](" + f.destination(url, title) + ")")
}

func (f Formatters) destination(url string, title []string) string {
	if f.safe {
		url = SanitizeURL(url)
	}
	if len(title) == 0 || title[0] == "" {
		return url
	}
	t := title[0]
	if f.safe {
		t = strings.ReplaceAll(strings.ReplaceAll(t, `\`, `\\`), `"`, `\"`)
	}
	return url + ` "` + t + `"`
}

// Bold formats values as bold text without escaping.
func Bold(values ...any) Text { return PlainFmt.Bold(values...) }

// Italic formats values as italic text without escaping.
func Italic(values ...any) Text { return PlainFmt.Italic(values...) }

// Strike formats values as struck-through text without escaping.
func Strike(values ...any) Text { return PlainFmt.Strike(values...) }

// Code formats values as an inline code span.
func Code(values ...any) Text { return PlainFmt.Code(values...) }

// Inline is an alias of [Code].
func Inline(values ...any) Text { return PlainFmt.Code(values...) }

// Link formats a Markdown link without sanitizing the destination.
func Link(text any, url string, title ...string) Text { return PlainFmt.Link(text, url, title...) }

// Image formats a Markdown image without sanitizing the destination.
func Image(alt any, url string, title ...string) Text { return PlainFmt.Image(alt, url, title...) }

// Bold writes values as a bold line.
func (w *Writer) Bold(values ...any) *Writer { return w.Write(w.Fmt().Bold(values...)) }

// Italic writes values as an italic line.
func (w *Writer) Italic(values ...any) *Writer { return w.Write(w.Fmt().Italic(values...)) }

// Strike writes values as a struck-through line.
func (w *Writer) Strike(values ...any) *Writer { return w.Write(w.Fmt().Strike(values...)) }

// Code writes values as an inline code span on its own line.
func (w *Writer) Code(values ...any) *Writer { return w.Write(w.Fmt().Code(values...)) }

// Link writes a link line.
func (w *Writer) Link(text any, url string, title ...string) *Writer {
	return w.Write(w.Fmt().Link(text, url, title...))
}

// Image writes an image line.
func (w *Writer) Image(alt any, url string, title ...string) *Writer {
	return w.Write(w.Fmt().Image(alt, url, title...))
}
