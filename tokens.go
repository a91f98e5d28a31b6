package scribe

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/tmc/langchaingo/llms"
)

// TokenCounter estimates the number of model tokens in text.
type TokenCounter func(text string) int

// DefaultTokenCounter estimates one token per four characters, rounded up.
func DefaultTokenCounter(text string) int {
	return (utf8.RuneCountInString(text) + 3) / 4
}

// ModelTokenCounter counts tokens with the tokenizer of the named model,
// e.g. "gpt-4o". Unknown models fall back to langchaingo's approximation.
//
// Unlike the rest of the package this performs network I/O: the tokenizer
// downloads its BPE ranks on first use and caches them in the directory
// named by TIKTOKEN_CACHE_DIR (the OS temp dir by default). When the
// download fails the count falls back to the approximation. Use
// [DefaultTokenCounter] where no network access is allowed.
func ModelTokenCounter(model string) TokenCounter {
	return func(text string) int {
		return llms.CountTokens(model, text)
	}
}

// Tokens estimates the token count of the rendered text. It uses counter
// when given and [DefaultTokenCounter] otherwise.
func (w *Writer) Tokens(counter ...TokenCounter) int {
	count := DefaultTokenCounter
	if len(counter) > 0 && counter[0] != nil {
		count = counter[0]
	}
	return count(w.String())
}

// Width returns the display width of the widest rendered line.
func (w *Writer) Width() int {
	widest := 0
	for line := range strings.SplitSeq(w.String(), "\n") {
		widest = max(widest, runewidth.StringWidth(line))
	}
	return widest
}
