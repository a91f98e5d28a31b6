package scribe

import (
	"strconv"
	"strings"
)

type listKind int

const (
	unorderedList listKind = iota
	orderedList
	taskList
)

// TaskItem is a task list entry with an explicit checked state.
type TaskItem struct {
	Value   any
	Checked bool
}

// Check pairs a value with its checked state for [Writer.Tasks].
func Check(value any, checked bool) TaskItem {
	return TaskItem{Value: value, Checked: checked}
}

// listComment is a comment line placed between list items.
type listComment string

// ListBuilder collects list items inside a ListFunc, OrderedListFunc or
// TasksFunc callback. Its embedded [Formatters] match the mode of the
// Writer the list is built for.
type ListBuilder struct {
	Formatters
	items []any
}

func newListBuilder(safe bool) *ListBuilder {
	return &ListBuilder{Formatters: Formatters{safe: safe}}
}

// Items returns the collected items.
func (b *ListBuilder) Items() []any { return b.items }

// item normalizes values to a single list item. A single value is kept as is
// so nested Writers and TaskItems keep their meaning.
func (b *ListBuilder) item(values []any) any {
	if len(values) == 1 {
		return values[0]
	}
	return Trusted(joinText(values, b.safe))
}

// Item adds an item made of values joined by spaces.
func (b *ListBuilder) Item(values ...any) *ListBuilder {
	b.items = append(b.items, b.item(values))
	return b
}

// List adds a nested unordered list.
func (b *ListBuilder) List(fn func(*ListBuilder)) *ListBuilder {
	return b.nested(unorderedList, fn)
}

// UnorderedList is an alias of List.
func (b *ListBuilder) UnorderedList(fn func(*ListBuilder)) *ListBuilder {
	return b.nested(unorderedList, fn)
}

// OrderedList adds a nested ordered list. Its numbering starts at 1.
func (b *ListBuilder) OrderedList(fn func(*ListBuilder)) *ListBuilder {
	return b.nested(orderedList, fn)
}

// Tasks adds a nested task list.
func (b *ListBuilder) Tasks(fn func(*ListBuilder)) *ListBuilder {
	return b.nested(taskList, fn)
}

func (b *ListBuilder) nested(kind listKind, fn func(*ListBuilder)) *ListBuilder {
	c := &Writer{safe: b.safe}
	c.listFunc(kind, fn)
	b.items = append(b.items, c)
	return b
}

// Task adds a task item with the given checked state.
func (b *ListBuilder) Task(checked bool, values ...any) *ListBuilder {
	b.items = append(b.items, TaskItem{Value: b.item(values), Checked: checked})
	return b
}

// Todo adds an unchecked task item.
func (b *ListBuilder) Todo(values ...any) *ListBuilder { return b.Task(false, values...) }

// Done adds a checked task item.
func (b *ListBuilder) Done(values ...any) *ListBuilder { return b.Task(true, values...) }

// Comment adds an HTML comment line between items. It is never escaped.
func (b *ListBuilder) Comment(text string) *ListBuilder {
	b.items = append(b.items, listComment(text))
	return b
}

// List appends an unordered list. Items may be any value, a nested *Writer
// (indented under the previous item) or a [TaskItem].
func (w *Writer) List(items ...any) *Writer { return w.list(unorderedList, items) }

// UnorderedList is an alias of List.
func (w *Writer) UnorderedList(items ...any) *Writer { return w.list(unorderedList, items) }

// OrderedList appends a list numbered from 1.
func (w *Writer) OrderedList(items ...any) *Writer { return w.list(orderedList, items) }

// Tasks appends a task list. Items are unchecked unless given as a
// [TaskItem], see [Check].
func (w *Writer) Tasks(items ...any) *Writer { return w.list(taskList, items) }

// ListFunc appends an unordered list built by fn.
func (w *Writer) ListFunc(fn func(*ListBuilder)) *Writer { return w.listFunc(unorderedList, fn) }

// OrderedListFunc appends an ordered list built by fn.
func (w *Writer) OrderedListFunc(fn func(*ListBuilder)) *Writer {
	return w.listFunc(orderedList, fn)
}

// TasksFunc appends a task list built by fn.
func (w *Writer) TasksFunc(fn func(*ListBuilder)) *Writer { return w.listFunc(taskList, fn) }

func (w *Writer) listFunc(kind listKind, fn func(*ListBuilder)) *Writer {
	b := newListBuilder(w.safe)
	if fn != nil {
		fn(b)
	}
	return w.list(kind, b.Items())
}

func (w *Writer) list(kind listKind, items []any) *Writer {
	lines := make([]string, 0, len(items))
	n := 0
	for _, item := range items {
		switch x := item.(type) {
		case *Writer:
			if body := strings.TrimRight(x.String(), " \t\r\n"); body != "" {
				lines = append(lines, indent(body, "  "))
			}
		case listComment:
			lines = append(lines, "<!-- "+string(x)+" -->")
		case TaskItem:
			n++
			lines = append(lines, listMarker(kind, n)+checkbox(x.Checked)+textOf(x.Value, w.safe))
		default:
			n++
			line := listMarker(kind, n)
			if kind == taskList {
				line += checkbox(false)
			}
			lines = append(lines, line+textOf(item, w.safe))
		}
	}
	if len(lines) == 0 {
		return w
	}
	return w.block(strings.Join(lines, "\n"))
}

func listMarker(kind listKind, n int) string {
	if kind == orderedList {
		return strconv.Itoa(n) + ". "
	}
	return "- "
}

func checkbox(checked bool) string {
	if checked {
		return "[x] "
	}
	return "[ ] "
}

// indent prefixes every non-empty line of s.
func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
