package scribe

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidTemplate   = errors.New("invalid template")
	ErrValidation        = errors.New("validation failed")
	ErrMarshal           = errors.New("marshal failed")
	ErrInvalidSchema     = errors.New("invalid schema")
)

// Format names a structured payload format.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

var formats = []Format{JSON, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported structured formats.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if strings.EqualFold(string(f), s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Writer accumulates rendered Markdown fragments.
//
// Append methods mutate the Writer and return it for chaining. Clone, Fill,
// Compact, Trim and Execute leave the receiver untouched and return a new,
// independent Writer. A Writer is not safe for concurrent use.
type Writer struct {
	parts       []string
	skipPadding bool
	safe        bool
}

// New returns an empty Writer.
func New() *Writer { return &Writer{} }

// NewSafe returns an empty Writer in safe mode: plain values passed to it
// are escaped before they are embedded.
func NewSafe() *Writer { return &Writer{safe: true} }

// Write returns a new Writer with values written as its first paragraph.
func Write(values ...any) *Writer { return New().Write(values...) }

// Safe returns a new safe-mode Writer with values written as its first
// paragraph.
func Safe(values ...any) *Writer { return NewSafe().Write(values...) }

// Template returns a Writer seeded with text verbatim, typically a template
// with {{name}} placeholders for [Writer.Fill].
func Template(text string) *Writer {
	w := New()
	w.push(text)
	return w
}

// Join appends the rendered text of every writer into a new Writer.
func Join(writers ...*Writer) *Writer {
	return New().Append(writers...)
}

// IsSafe reports whether the Writer escapes plain values.
func (w *Writer) IsSafe() bool { return w.safe }

// Fmt returns the inline formatters matching the Writer's mode.
func (w *Writer) Fmt() Formatters { return Formatters{safe: w.safe} }

// child returns an empty Writer inheriting the receiver's mode.
func (w *Writer) child() *Writer { return &Writer{safe: w.safe} }

func (w *Writer) push(s string) {
	if s != "" {
		w.parts = append(w.parts, s)
	}
}

// padding computes the separator required before the next fragment. It is
// the only place spacing between fragments is decided.
func (w *Writer) padding() string {
	if w.skipPadding || len(w.parts) == 0 {
		w.skipPadding = false
		return ""
	}
	last := w.parts[len(w.parts)-1]
	switch {
	case strings.HasSuffix(last, "\n\n"):
		return ""
	case strings.HasSuffix(last, "\n"):
		return "\n"
	default:
		return "\n\n"
	}
}

// block appends content as a padded block closed by a blank line.
func (w *Writer) block(content string) *Writer {
	w.push(w.padding() + content + "\n\n")
	return w
}

// Write appends values, joined by single spaces, as a line. In safe mode
// plain values are escaped; Writers and trusted Text are not.
//
// Writing nothing to an empty Writer is a no-op. Writing nothing to a
// non-empty Writer adds an extra blank line.
func (w *Writer) Write(values ...any) *Writer {
	text := joinText(values, w.safe)
	if len(w.parts) == 0 && text == "" {
		return w
	}
	w.push(w.padding() + text + "\n")
	return w
}

// NextLine glues the next append to the previous line instead of starting a
// new paragraph.
func (w *Writer) NextLine() *Writer {
	w.skipPadding = true
	return w
}

// Append copies the rendered text of each writer into w. The text is not
// escaped; later changes to the source writers do not affect w.
func (w *Writer) Append(writers ...*Writer) *Writer {
	for _, other := range writers {
		if other == nil {
			continue
		}
		text := other.String()
		if text == "" {
			continue
		}
		w.push(w.padding() + text)
	}
	return w
}

// When calls fn with w if cond is true.
func (w *Writer) When(cond bool, fn func(*Writer)) *Writer {
	if cond && fn != nil {
		fn(w)
	}
	return w
}

// With calls fn with w. It exists to group related appends.
func (w *Writer) With(fn func(*Writer)) *Writer {
	if fn != nil {
		fn(w)
	}
	return w
}

// Each calls fn once per item, in order. See [ForEach] for a typed variant.
func (w *Writer) Each(items []any, fn func(item any, w *Writer, i int)) *Writer {
	return ForEach(w, items, fn)
}

// Section appends a heading followed by the content built by fn in a child
// Writer. The heading level defaults to 2.
func (w *Writer) Section(name any, fn func(*Writer), level ...int) *Writer {
	lvl := 2
	if len(level) > 0 {
		lvl = level[0]
	}
	w.Heading(lvl, name)
	if fn == nil {
		return w
	}
	c := w.child()
	fn(c)
	return w.Append(c)
}

// Clone returns an independent copy of w.
func (w *Writer) Clone() *Writer {
	parts := make([]string, len(w.parts))
	copy(parts, w.parts)
	return &Writer{parts: parts, skipPadding: w.skipPadding, safe: w.safe}
}

var blankRuns = regexp.MustCompile(`\n{3,}`)

// Compact returns a new Writer with every run of three or more newlines
// collapsed to two.
func (w *Writer) Compact() *Writer {
	return w.derive(blankRuns.ReplaceAllString(w.String(), "\n\n"))
}

// Trim returns a new Writer with leading and trailing whitespace removed.
func (w *Writer) Trim() *Writer {
	return w.derive(strings.TrimSpace(w.String()))
}

// derive returns a Writer in the same mode seeded with text.
func (w *Writer) derive(text string) *Writer {
	d := w.child()
	d.push(text)
	return d
}

// String renders the Writer.
func (w *Writer) String() string {
	return strings.Join(w.parts, "")
}

// Len returns the length in bytes of the rendered text.
func (w *Writer) Len() int {
	n := 0
	for _, p := range w.parts {
		n += len(p)
	}
	return n
}

// WriteTo writes the rendered text to dst.
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	var total int64
	for _, p := range w.parts {
		n, err := io.WriteString(dst, p)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
