package scribe

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const schemaURL = "schema.json"

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// CompileSchema compiles a JSON Schema given as a map (e.g. from
// [SchemaOf]), a JSON string or []byte, or an already compiled
// *jsonschema.Schema. A nil schema compiles to nil.
func CompileSchema(schema any) (*jsonschema.Schema, error) {
	var doc any
	var err error
	switch s := schema.(type) {
	case nil:
		return nil, nil
	case *jsonschema.Schema:
		return s, nil
	case string:
		doc, err = jsonschema.UnmarshalJSON(strings.NewReader(s))
	case []byte:
		doc, err = jsonschema.UnmarshalJSON(bytes.NewReader(s))
	default:
		var raw []byte
		raw, err = json.Marshal(s)
		if err == nil {
			doc, err = jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	return compiled, nil
}

// JSONSchema returns a [Validator] that checks data against the JSON Schema
// passed as [ValidationOptions.Schema]. It serves both JSON and YAML
// payloads: data is normalized through JSON before validation, so Go
// structs and YAML documents are checked the same way as parsed JSON.
//
// Each failing schema keyword becomes one issue whose Path is a JSON
// pointer to the offending value.
func JSONSchema() Validator {
	printer := message.NewPrinter(language.English)
	return func(_ Format, data any, schema any) ValidationResult {
		compiled, err := CompileSchema(schema)
		if err != nil {
			return Invalid(ValidationIssue{Message: err.Error()})
		}
		if compiled == nil {
			return Valid()
		}
		inst, err := normalizeInstance(data)
		if err != nil {
			return Invalid(ValidationIssue{Message: err.Error()})
		}
		err = compiled.Validate(inst)
		if err == nil {
			return Valid()
		}
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			return Invalid(ValidationIssue{Message: err.Error()})
		}
		var issues []ValidationIssue
		collectIssues(ve, printer, &issues)
		return Invalid(issues...)
	}
}

// normalizeInstance round-trips data through JSON so the validator sees
// the value types it expects.
func normalizeInstance(data any) (any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: json: %v", ErrMarshal, err)
	}
	return jsonschema.UnmarshalJSON(bytes.NewReader(raw))
}

// collectIssues flattens the cause tree of ve into its leaves.
func collectIssues(ve *jsonschema.ValidationError, p *message.Printer, out *[]ValidationIssue) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			collectIssues(cause, p, out)
		}
		return
	}
	var path string
	if len(ve.InstanceLocation) > 0 {
		segs := make([]string, len(ve.InstanceLocation))
		for i, s := range ve.InstanceLocation {
			segs[i] = pointerEscaper.Replace(s)
		}
		path = "/" + strings.Join(segs, "/")
	}
	*out = append(*out, ValidationIssue{
		Message: ve.ErrorKind.LocalizedString(p),
		Path:    path,
	})
}
