package lipsum

import "sync"

// Fallbacks used by the package-level helpers when given a count below one.
const (
	fallbackCount    = 1
	fallbackElements = 15
)

var (
	defaultMu  sync.Mutex
	defaultGen *Generator
)

// Default returns the package-level generator, creating a randomly seeded
// one on first use.
func Default() *Generator {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultGen == nil {
		defaultGen = MustNew()
	}
	return defaultGen
}

// SetDefault replaces the package-level generator, e.g. with a seeded one
// in tests. A nil g is ignored.
func SetDefault(g *Generator) {
	if g == nil {
		return
	}
	defaultMu.Lock()
	defaultGen = g
	defaultMu.Unlock()
}

// Word returns n random words; n below one yields a single word.
func Word(n int) string {
	s, _ := Default().Words(atLeast(n, fallbackCount))
	return s
}

// Sentence returns n sentences, the first being the opening phrase when
// opening is true.
func Sentence(n int, opening bool) string {
	s, _ := Default().Sentences(atLeast(n, fallbackCount), &Options{NoOpeningPhrase: !opening})
	return s
}

// SentenceFragment returns a fragment of 4 to 9 words.
func SentenceFragment() string {
	s, _ := Default().Fragment(nil)
	return s
}

// Paragraph returns n plain-text paragraphs.
func Paragraph(n int, opening bool) string {
	s, _ := Default().Paragraphs(atLeast(n, fallbackCount), &Options{NoOpeningPhrase: !opening})
	return s
}

// MarkdownParagraph returns n Markdown paragraphs.
func MarkdownParagraph(n int, opening bool) string {
	s, _ := Default().MarkdownParagraphs(atLeast(n, fallbackCount), &Options{NoOpeningPhrase: !opening})
	return s
}

// MarkdownText returns a Markdown document of the given number of
// elements; fewer than two yields the default of 15.
func MarkdownText(elements int) string {
	if elements < 2 {
		elements = fallbackElements
	}
	s, _ := Default().Document(elements, nil)
	return s
}

func atLeast(n, fallback int) int {
	if n < 1 {
		return fallback
	}
	return n
}
