package scribe_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/bjaus/scribe"
	"github.com/stretchr/testify/assert"
)

type base struct {
	ID int `json:"id"`
}

type sample struct {
	base
	Name  string         `json:"name" description:"display name"`
	Tags  []string       `json:"tags,omitempty"`
	Score *float64       `json:"score"`
	When  time.Time      `json:"when"`
	Skip  string         `json:"-"`
	Meta  map[string]int `yaml:"meta"`
}

func TestSchemaOf(t *testing.T) {
	t.Parallel()
	want := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":    map[string]any{"type": "integer"},
			"name":  map[string]any{"type": "string", "description": "display name"},
			"tags":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"score": map[string]any{"type": []string{"number", "null"}},
			"when":  map[string]any{"type": "string", "format": "date-time"},
			"meta":  map[string]any{"type": "object", "additionalProperties": map[string]any{"type": "integer"}},
		},
		"required": []string{"id", "name", "when", "meta"},
	}
	assert.Equal(t, want, scribe.SchemaOf[sample]())
}

func TestSchemaOfScalars(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		got  map[string]any
		want map[string]any
	}{
		"string":   {got: scribe.SchemaOf[string](), want: map[string]any{"type": "string"}},
		"uint":     {got: scribe.SchemaOf[uint8](), want: map[string]any{"type": "integer"}},
		"float":    {got: scribe.SchemaOf[float32](), want: map[string]any{"type": "number"}},
		"bool":     {got: scribe.SchemaOf[bool](), want: map[string]any{"type": "boolean"}},
		"raw json": {got: scribe.SchemaOf[json.RawMessage](), want: map[string]any{}},
		"any":      {got: scribe.SchemaOf[any](), want: map[string]any{}},
		"pointer":  {got: scribe.SchemaOf[*int](), want: map[string]any{"type": []string{"integer", "null"}}},
		"duration": {
			got:  scribe.SchemaOf[time.Duration](),
			want: map[string]any{"type": "integer", "description": "Duration in nanoseconds"},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

type treeNode struct {
	Name     string     `json:"name"`
	Children []treeNode `json:"children,omitempty"`
}

type chain struct {
	Value int    `json:"value"`
	Next  *chain `json:"next"`
}

type forest struct {
	Roots []treeNode `json:"roots"`
}

func TestSchemaOfRecursive(t *testing.T) {
	t.Parallel()
	tree := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":     map[string]any{"type": "string"},
			"children": map[string]any{"type": "array", "items": map[string]any{"$ref": "#"}},
		},
		"required": []string{"name"},
	}
	tests := map[string]struct {
		got  map[string]any
		want map[string]any
	}{
		"self reference": {got: scribe.SchemaOf[treeNode](), want: tree},
		"pointer to root": {
			got: scribe.SchemaOf[*treeNode](),
			want: map[string]any{
				"type":       []string{"object", "null"},
				"properties": tree["properties"],
				"required":   []string{"name"},
			},
		},
		"nullable self reference": {
			got: scribe.SchemaOf[chain](),
			want: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"value": map[string]any{"type": "integer"},
					"next": map[string]any{"anyOf": []any{
						map[string]any{"$ref": "#"},
						map[string]any{"type": "null"},
					}},
				},
				"required": []string{"value"},
			},
		},
		"nested recursive type": {
			got: scribe.SchemaOf[forest](),
			want: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"roots": map[string]any{
						"type":  "array",
						"items": map[string]any{"$ref": "#/$defs/scribe_test.treeNode"},
					},
				},
				"required": []string{"roots"},
				"$defs": map[string]any{
					"scribe_test.treeNode": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"name": map[string]any{"type": "string"},
							"children": map[string]any{
								"type":  "array",
								"items": map[string]any{"$ref": "#/$defs/scribe_test.treeNode"},
							},
						},
						"required": []string{"name"},
					},
				},
			},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
