// Package scribe assembles Markdown-flavored text, such as LLM prompts,
// through a chainable builder.
//
// The central type is [Writer]. Every append method renders its fragment
// immediately and returns the same Writer, so calls chain:
//
//	w := scribe.New().
//	    Heading(1, "Task").
//	    Write("Summarize the document below.").
//	    List("be concise", "cite sources").
//	    Tag("document", doc)
//
// # Spacing
//
// Consecutive appends are separated by exactly one blank line. [Writer.NextLine]
// glues the next append to the previous line instead:
//
//	scribe.Write("a").Write("b")            // "a\n\nb\n"
//	scribe.Write("a").NextLine().Write("b") // "a\nb\n"
//
// Calling [Writer.Write] with no arguments on a non-empty Writer forces an
// extra blank line. [Writer.Compact] collapses runs of blank lines.
//
// # Blocks
//
//   - [Writer.List], [Writer.OrderedList], [Writer.Tasks] and their Func
//     variants taking a [ListBuilder] callback, with nesting
//   - [Writer.Heading], [Writer.Blockquote], [Writer.Separator], [Writer.Comment]
//   - [Writer.Codeblock], [Writer.Tag], [Writer.Callout], [Writer.Delimit]
//   - [Writer.Table], [Writer.TableWith], [Writer.Definitions]
//   - [Writer.Section] for a heading followed by nested content
//
// # Safe mode
//
// A Writer created with [NewSafe] or [Safe] escapes every plain value it
// is given (see [Escape]) and sanitizes link destinations (see
// [SanitizeURL]). Content coming from another Writer, and [Text] produced by
// the safe inline formatters ([SafeFmt], or [Writer.Fmt] on a safe Writer),
// is trusted and never escaped twice:
//
//	w := scribe.NewSafe()
//	f := w.Fmt()
//	w.Write("Hello", f.Bold(userName))
//
// # Structured payloads
//
// [Writer.JSON] and [Writer.YAML] embed data as fenced blocks. Pass
// [ValidationOptions] with a [Validator], such as [JSONSchema], to reject
// invalid payloads with a [*ValidationError] before anything is appended:
//
//	err := w.JSON(reply, scribe.ValidationOptions{
//	    Schema:   scribe.SchemaOf[Reply](),
//	    Validate: scribe.JSONSchema(),
//	})
//
// # Templates
//
// [Writer.Fill], [Writer.Clone], [Writer.Compact], [Writer.Trim] and
// [Writer.Execute] return new Writers and leave the receiver untouched, so a
// template can be reused:
//
//	tmpl := scribe.Template("Hello {{name}}!")
//	a := tmpl.Fill(map[string]any{"name": "Ada"})
//	b := tmpl.Fill(map[string]any{"name": "Alan"})
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrValidation]: a payload failed validation ([*ValidationError])
//   - [ErrMarshal]: a payload could not be serialized
//   - [ErrInvalidSchema]: a JSON Schema could not be compiled
//   - [ErrInvalidTemplate]: invalid text/template syntax in [Writer.Execute]
//   - [ErrUnsupportedFormat]: unknown format name
package scribe
