package scribe

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

func marshalJSON(data any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return "", fmt.Errorf("%w: json: %v", ErrMarshal, err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
