package scribe

import (
	"fmt"
	"strings"
)

// Text is a fragment of inline text that knows whether it still needs
// escaping. Trusted text is embedded verbatim in every mode; plain text is
// escaped when it reaches a safe-mode [Writer].
//
// The safe inline formatters return trusted Text, so feeding their output
// back into a safe Writer never escapes it twice.
type Text struct {
	s       string
	trusted bool
}

// Plain wraps untrusted text.
func Plain(s string) Text { return Text{s: s} }

// Trusted wraps text that must never be escaped again.
func Trusted(s string) Text { return Text{s: s, trusted: true} }

// String returns the underlying text.
func (t Text) String() string { return t.s }

// IsTrusted reports whether t is exempt from escaping.
func (t Text) IsTrusted() bool { return t.trusted }

// resolve converts a caller-supplied value to text. The boolean result
// reports whether the text is trusted: Writer output and trusted Text are,
// everything else is not.
func resolve(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case Text:
		return x.s, x.trusted
	case *Text:
		if x == nil {
			return "", false
		}
		return x.s, x.trusted
	case *Writer:
		if x == nil {
			return "", true
		}
		return strings.TrimRight(x.String(), " \t\r\n"), true
	case string:
		return x, false
	case fmt.Stringer:
		return x.String(), false
	default:
		return fmt.Sprint(x), false
	}
}

// textOf resolves v and escapes it when safe is set and the value is not
// trusted.
func textOf(v any, safe bool) string {
	s, trusted := resolve(v)
	if safe && !trusted {
		return Escape(s)
	}
	return s
}

// joinText resolves each value and joins them with a single space.
func joinText(values []any, safe bool) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = textOf(v, safe)
	}
	return strings.Join(parts, " ")
}
