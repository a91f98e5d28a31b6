package scribe

import (
	"encoding/json"
	"iter"
	"reflect"
	"strings"
	"time"
)

var (
	timeType     = reflect.TypeFor[time.Time]()
	durationType = reflect.TypeFor[time.Duration]()
	rawJSONType  = reflect.TypeFor[json.RawMessage]()
)

// SchemaOf derives a JSON Schema from T. See [SchemaFor].
func SchemaOf[T any]() map[string]any {
	return SchemaFor(reflect.TypeFor[T]())
}

// SchemaFor derives a JSON Schema from t by reflection.
//
// Struct fields are named by their json tag, falling back to the yaml tag
// and then the field name. Fields are required unless they are pointers or
// tagged omitempty. A "description" struct tag becomes the property's
// description. time.Time maps to a date-time string and time.Duration to an
// integer of nanoseconds, the way encoding/json encodes it.
//
// Recursive types are expressed with $ref: a reference back to t itself
// points at the root ("#"), other recursive structs are placed under $defs.
func SchemaFor(t reflect.Type) map[string]any {
	if t == nil {
		return map[string]any{"type": "null"}
	}
	root := t
	for root.Kind() == reflect.Pointer {
		root = root.Elem()
	}
	g := &schemaGen{
		root:      root,
		visiting:  make(map[reflect.Type]bool),
		recursive: make(map[reflect.Type]bool),
		defs:      make(map[string]any),
	}
	s := g.schema(t)
	if len(g.defs) > 0 {
		s["$defs"] = g.defs
	}
	return s
}

type schemaGen struct {
	root      reflect.Type
	visiting  map[reflect.Type]bool
	recursive map[reflect.Type]bool
	defs      map[string]any
}

func (g *schemaGen) schema(t reflect.Type) map[string]any {
	if t.Kind() == reflect.Pointer {
		s := g.schema(t.Elem())
		if typ, ok := s["type"].(string); ok {
			s["type"] = []string{typ, "null"}
		} else if _, ok := s["$ref"]; ok {
			return map[string]any{"anyOf": []any{s, map[string]any{"type": "null"}}}
		}
		return s
	}

	switch t {
	case timeType:
		return map[string]any{"type": "string", "format": "date-time"}
	case durationType:
		return map[string]any{"type": "integer", "description": "Duration in nanoseconds"}
	case rawJSONType:
		return map[string]any{}
	}

	switch t.Kind() {
	case reflect.String:
		return map[string]any{"type": "string"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return map[string]any{"type": "integer"}
	case reflect.Float32, reflect.Float64:
		return map[string]any{"type": "number"}
	case reflect.Bool:
		return map[string]any{"type": "boolean"}
	case reflect.Slice, reflect.Array:
		return map[string]any{"type": "array", "items": g.schema(t.Elem())}
	case reflect.Map:
		return map[string]any{"type": "object", "additionalProperties": g.schema(t.Elem())}
	case reflect.Struct:
		return g.structSchema(t)
	default:
		return map[string]any{}
	}
}

func (g *schemaGen) structSchema(t reflect.Type) map[string]any {
	if g.visiting[t] {
		if t == g.root {
			return map[string]any{"$ref": "#"}
		}
		g.recursive[t] = true
		return map[string]any{"$ref": defRef(t)}
	}
	g.visiting[t] = true
	defer delete(g.visiting, t)

	properties := make(map[string]any)
	var required []string

	for field := range fieldsOf(t) {
		name, omitempty, skip := fieldName(field)
		if skip {
			continue
		}
		prop := g.schema(field.Type)
		if desc := field.Tag.Get("description"); desc != "" {
			prop["description"] = desc
		}
		properties[name] = prop
		if !omitempty && field.Type.Kind() != reflect.Pointer {
			required = append(required, name)
		}
	}

	s := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	if t != g.root && g.recursive[t] {
		g.defs[t.String()] = s
		return map[string]any{"$ref": defRef(t)}
	}
	return s
}

func defRef(t reflect.Type) string {
	return "#/$defs/" + t.String()
}

// fieldsOf yields the exported fields of t, flattening embedded structs the
// way encoding/json does.
func fieldsOf(t reflect.Type) iter.Seq[reflect.StructField] {
	return func(yield func(reflect.StructField) bool) {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.Anonymous && f.Type.Kind() == reflect.Struct && f.Tag.Get("json") == "" {
				for inner := range fieldsOf(f.Type) {
					if !yield(inner) {
						return
					}
				}
				continue
			}
			if !f.IsExported() {
				continue
			}
			if !yield(f) {
				return
			}
		}
	}
}

func fieldName(f reflect.StructField) (name string, omitempty, skip bool) {
	tag, ok := f.Tag.Lookup("json")
	if !ok {
		tag = f.Tag.Get("yaml")
	}
	if tag == "-" {
		return "", false, true
	}
	name = f.Name
	parts := strings.Split(tag, ",")
	if parts[0] != "" {
		name = parts[0]
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" || opt == "omitzero" {
			omitempty = true
		}
	}
	return name, omitempty, false
}
