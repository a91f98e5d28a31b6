package scribe

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ValidationIssue describes one problem reported by a [Validator].
type ValidationIssue struct {
	Message string
	// Path locates the offending value, e.g. a JSON pointer. Optional.
	Path string
}

// ValidationResult is the outcome of a [Validator] call.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// Valid returns a passing result.
func Valid() ValidationResult { return ValidationResult{Valid: true} }

// Invalid returns a failing result carrying issues.
func Invalid(issues ...ValidationIssue) ValidationResult {
	return ValidationResult{Issues: issues}
}

// Validator checks data, already parsed from its string form when
// possible, against schema.
type Validator func(format Format, data any, schema any) ValidationResult

// ValidationOptions controls validation of [Writer.JSON] and [Writer.YAML]
// payloads. Without Validate nothing is validated.
type ValidationOptions struct {
	Schema   any
	Validate Validator
	// Label titles the error message. Default: "<FORMAT> validation failed".
	Label string
	// ParseYAML parses string input for YAML validation. Without it string
	// input is validated as a raw string. See [ParseYAML].
	ParseYAML func(string) (any, error)
}

// ValidationError is returned when a payload fails validation. Nothing is
// appended to the Writer when it is returned.
type ValidationError struct {
	Format Format
	Label  string
	Issues []ValidationIssue
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.Label != "" {
		sb.WriteString(e.Label)
	} else {
		sb.WriteString(strings.ToUpper(string(e.Format)) + " validation failed")
	}
	for i, issue := range e.Issues {
		fmt.Fprintf(&sb, "\n%d. %s", i+1, issue.Message)
		if issue.Path != "" {
			fmt.Fprintf(&sb, " (at %s)", issue.Path)
		}
	}
	return sb.String()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func firstOptions(opts []ValidationOptions) ValidationOptions {
	if len(opts) == 0 {
		return ValidationOptions{}
	}
	return opts[0]
}

// validate runs the optional validator for a payload. String input is
// parsed first so the validator sees structured data.
func validate(format Format, data any, opts ValidationOptions) error {
	if opts.Validate == nil {
		return nil
	}
	fail := func(issues ...ValidationIssue) error {
		if len(issues) == 0 {
			issues = []ValidationIssue{{Message: "value was rejected by the validator"}}
		}
		return &ValidationError{Format: format, Label: opts.Label, Issues: issues}
	}

	value := data
	if s, ok := data.(string); ok {
		switch format {
		case JSON:
			var v any
			if err := json.Unmarshal([]byte(s), &v); err != nil {
				return fail(ValidationIssue{Message: "invalid JSON: " + err.Error()})
			}
			value = v
		case YAML:
			if opts.ParseYAML != nil {
				v, err := opts.ParseYAML(s)
				if err != nil {
					return fail(ValidationIssue{Message: "invalid YAML: " + err.Error()})
				}
				value = v
			}
		}
	}

	if res := opts.Validate(format, value, opts.Schema); !res.Valid {
		return fail(res.Issues...)
	}
	return nil
}

// Marshal serializes data in format f. Strings are returned verbatim, minus
// trailing newlines.
func Marshal(f Format, data any) (string, error) {
	if s, ok := data.(string); ok {
		return strings.TrimRight(s, "\r\n"), nil
	}
	switch f {
	case JSON:
		return marshalJSON(data)
	case YAML:
		return marshalYAML(data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// JSON appends data as a fenced json block. When opts carries a validator
// the data is validated first and nothing is appended on failure.
func (w *Writer) JSON(data any, opts ...ValidationOptions) error {
	return w.structured(JSON, data, firstOptions(opts))
}

// YAML appends data as a fenced yaml block. When opts carries a validator
// the data is validated first and nothing is appended on failure.
func (w *Writer) YAML(data any, opts ...ValidationOptions) error {
	return w.structured(YAML, data, firstOptions(opts))
}

func (w *Writer) structured(f Format, data any, opts ValidationOptions) error {
	if err := validate(f, data, opts); err != nil {
		return err
	}
	body, err := Marshal(f, data)
	if err != nil {
		return err
	}
	w.Codeblock(string(f), body)
	return nil
}

// SchemaOptions controls [Writer.Schema].
type SchemaOptions struct {
	// Format defaults to JSON.
	Format Format
	// Title, when set, is written as a heading first.
	Title string
	// Level of the title heading. Default 2.
	Level int
	// Tag, when set, wraps the payload in <Tag> markers instead of a code
	// fence.
	Tag string
}

// Schema appends a schema (or any payload) with an optional heading, either
// fenced or wrapped in a tag. Use [SchemaOf] to derive one from a Go type.
func (w *Writer) Schema(data any, opts SchemaOptions) error {
	f := opts.Format
	if f == "" {
		f = JSON
	}
	body, err := Marshal(f, data)
	if err != nil {
		return err
	}
	if opts.Title != "" {
		level := opts.Level
		if level == 0 {
			level = 2
		}
		w.Heading(level, opts.Title)
	}
	if opts.Tag != "" {
		w.Tag(opts.Tag, Trusted(body))
		return nil
	}
	w.Codeblock(string(f), body)
	return nil
}
