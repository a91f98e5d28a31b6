package scribe_test

import (
	"testing"

	"github.com/bjaus/scribe"
	"github.com/stretchr/testify/assert"
)

func TestBlocks(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		build func() *scribe.Writer
		want  string
	}{
		"heading": {
			build: func() *scribe.Writer { return scribe.New().Heading(2, "Title") },
			want:  "## Title\n\n",
		},
		"heading clamps low": {
			build: func() *scribe.Writer { return scribe.New().Heading(0, "a") },
			want:  "# a\n\n",
		},
		"heading clamps high": {
			build: func() *scribe.Writer { return scribe.New().Heading(9, "a") },
			want:  "###### a\n\n",
		},
		"heading joins parts": {
			build: func() *scribe.Writer { return scribe.New().H2("x", 1) },
			want:  "## x 1\n\n",
		},
		"safe heading": {
			build: func() *scribe.Writer { return scribe.NewSafe().H1("a_b") },
			want:  "# a\\_b\n\n",
		},
		"headings in sequence": {
			build: func() *scribe.Writer { return scribe.New().H1("a").H3("b") },
			want:  "# a\n\n### b\n\n",
		},
		"blockquote": {
			build: func() *scribe.Writer { return scribe.New().Blockquote("a", "b\nc") },
			want:  "> a\n>\n> b\n> c\n\n",
		},
		"blockquote blank line": {
			build: func() *scribe.Writer { return scribe.New().Blockquote("a\n\nb") },
			want:  "> a\n>\n> b\n\n",
		},
		"empty blockquote": {
			build: func() *scribe.Writer { return scribe.Write("a").Blockquote() },
			want:  "a\n",
		},
		"safe blockquote": {
			build: func() *scribe.Writer { return scribe.NewSafe().Blockquote("> x") },
			want:  "> \\> x\n\n",
		},
		"separator": {
			build: func() *scribe.Writer { return scribe.Write("a").Separator().Write("b") },
			want:  "a\n\n---\n\nb\n",
		},
		"comment never escaped": {
			build: func() *scribe.Writer { return scribe.NewSafe().Comment("a_b") },
			want:  "<!-- a_b -->\n\n",
		},
		"codeblock": {
			build: func() *scribe.Writer { return scribe.New().Codeblock("go", "x := 1") },
			want:  "```go\nx := 1\n```\n\n",
		},
		"codeblock not escaped": {
			build: func() *scribe.Writer { return scribe.NewSafe().Codeblock("", "a_b <c>") },
			want:  "```\na_b <c>\n```\n\n",
		},
		"codeblock fence grows": {
			build: func() *scribe.Writer { return scribe.New().Codeblock("md", "```\nx\n```") },
			want:  "````md\n```\nx\n```\n````\n\n",
		},
		"codeblock builder": {
			build: func() *scribe.Writer {
				return scribe.New().Codeblock("", func(c *scribe.Writer) {
					c.Write("a").Write("b")
				})
			},
			want: "```\na\n\nb\n```\n\n",
		},
		"codeblock chained builder": {
			build: func() *scribe.Writer {
				return scribe.New().Codeblock("txt", func(c *scribe.Writer) *scribe.Writer {
					return c.Write("a").NextLine().Write("b")
				})
			},
			want: "```txt\na\nb\n```\n\n",
		},
		"codeblock writer": {
			build: func() *scribe.Writer { return scribe.New().Codeblock("", scribe.Write("x")) },
			want:  "```\nx\n```\n\n",
		},
		"tag": {
			build: func() *scribe.Writer { return scribe.New().Tag("doc", "x") },
			want:  "<doc>\nx\n</doc>\n",
		},
		"empty tag": {
			build: func() *scribe.Writer { return scribe.New().Tag("doc", "") },
			want:  "<doc>\n</doc>\n",
		},
		"tag then paragraph": {
			build: func() *scribe.Writer { return scribe.New().Tag("doc", "x").Write("next") },
			want:  "<doc>\nx\n</doc>\n\nnext\n",
		},
		"safe tag escapes strings": {
			build: func() *scribe.Writer { return scribe.NewSafe().Tag("doc", "a<b") },
			want:  "<doc>\na\\<b\n</doc>\n",
		},
		"safe tag keeps writer content": {
			build: func() *scribe.Writer { return scribe.NewSafe().Tag("doc", scribe.Write("a_b")) },
			want:  "<doc>\na_b\n</doc>\n",
		},
		"tag builder": {
			build: func() *scribe.Writer {
				return scribe.New().Tag("rules", func(c *scribe.Writer) { c.List("a", "b") })
			},
			want: "<rules>\n- a\n- b\n</rules>\n",
		},
		"callout": {
			build: func() *scribe.Writer { return scribe.New().Callout(scribe.Warning, "Be careful") },
			want:  "> [!WARNING]\n> Be careful\n\n",
		},
		"callout paragraphs": {
			build: func() *scribe.Writer { return scribe.New().Callout(scribe.Note, "a\n\nb") },
			want:  "> [!NOTE]\n> a\n>\n> b\n\n",
		},
		"empty callout": {
			build: func() *scribe.Writer { return scribe.New().Callout(scribe.Tip, "") },
			want:  "> [!TIP]\n\n",
		},
		"callout kind uppercased": {
			build: func() *scribe.Writer { return scribe.New().Callout("caution", "x") },
			want:  "> [!CAUTION]\n> x\n\n",
		},
		"safe callout": {
			build: func() *scribe.Writer { return scribe.NewSafe().Callout(scribe.Important, "*x*") },
			want:  "> [!IMPORTANT]\n> \\*x\\*\n\n",
		},
		"delimit": {
			build: func() *scribe.Writer {
				return scribe.NewSafe().Delimit("---BEGIN---", "---END---", "a_b")
			},
			want: "---BEGIN---\na_b\n---END---\n\n",
		},
		"empty delimit": {
			build: func() *scribe.Writer { return scribe.New().Delimit("<<", ">>", "") },
			want:  "<<\n>>\n\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.build().String())
		})
	}
}

func TestCalloutKinds(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []scribe.CalloutKind{
		scribe.Note, scribe.Tip, scribe.Important, scribe.Warning, scribe.Caution,
	}, scribe.CalloutKinds())
}
