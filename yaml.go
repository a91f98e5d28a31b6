package scribe

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

func marshalYAML(data any) (s string, err error) {
	// yaml.v3 panics on some unsupported values, e.g. funcs.
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: yaml: %v", ErrMarshal, p)
		}
	}()
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return "", fmt.Errorf("%w: yaml: %v", ErrMarshal, err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("%w: yaml: %v", ErrMarshal, err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// ParseYAML decodes a YAML document into generic values. It can be used as
// [ValidationOptions.ParseYAML].
func ParseYAML(s string) (any, error) {
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return nil, err
	}
	return v, nil
}
