package scribe

import "iter"

// ForEach calls fn once per item in order and returns w. It is the typed
// form of [Writer.Each].
func ForEach[T any](w *Writer, items []T, fn func(item T, w *Writer, i int)) *Writer {
	if fn == nil {
		return w
	}
	for i, item := range items {
		fn(item, w, i)
	}
	return w
}

// ForEachSeq calls fn for every value yielded by seq, with its position.
func ForEachSeq[T any](w *Writer, seq iter.Seq[T], fn func(item T, w *Writer, i int)) *Writer {
	if fn == nil {
		return w
	}
	i := 0
	for item := range seq {
		fn(item, w, i)
		i++
	}
	return w
}

// ListSeq appends an unordered list of the values yielded by seq. Items are
// collected first: a list is a single block.
func ListSeq[T any](w *Writer, seq iter.Seq[T]) *Writer {
	var items []any
	for item := range seq {
		items = append(items, item)
	}
	return w.List(items...)
}

// OrderedListSeq appends an ordered list of the values yielded by seq.
func OrderedListSeq[T any](w *Writer, seq iter.Seq[T]) *Writer {
	var items []any
	for item := range seq {
		items = append(items, item)
	}
	return w.OrderedList(items...)
}
