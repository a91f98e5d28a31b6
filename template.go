package scribe

import (
	"fmt"
	"regexp"
	"strings"
	"text/template"
)

var placeholder = regexp.MustCompile(`\{\{([A-Za-z_][A-Za-z0-9_]*)\}\}`)

// Fill returns a new Writer with every {{name}} placeholder replaced by the
// matching entry of vars. Names are identifiers with no surrounding
// whitespace; "{{ name }}" is not a placeholder. Placeholders without an
// entry are left as they are. In safe mode plain values are escaped. The receiver is unchanged, so
// one template can produce many variants.
func (w *Writer) Fill(vars map[string]any) *Writer {
	text := placeholder.ReplaceAllStringFunc(w.String(), func(m string) string {
		name := placeholder.FindStringSubmatch(m)[1]
		v, ok := vars[name]
		if !ok {
			return m
		}
		return textOf(v, w.safe)
	})
	return w.derive(text)
}

// Execute renders the Writer's text as a Go text/template against data and
// returns the result as a new Writer. The receiver is unchanged.
func (w *Writer) Execute(data any) (*Writer, error) {
	tmpl, err := template.New("scribe").Option("missingkey=zero").Parse(w.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	return w.derive(sb.String()), nil
}
