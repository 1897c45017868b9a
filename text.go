package lipsum

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Connective thresholds for a die rolled in [0, 100] between fragments:
// below semicolonBelow a semicolon, below commaBelow a comma, else a dash.
const (
	semicolonBelow = 9
	commaBelow     = 97
)

// Word returns one word drawn uniformly from the vocabulary.
func (g *Generator) Word() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.word()
}

// Words returns n space-separated words.
func (g *Generator) Words(n int) (string, error) {
	if err := validateCountValue("word count", n); err != nil {
		return "", err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	var b strings.Builder
	g.writeWords(&b, n)
	return b.String(), nil
}

// Fragment returns Words-many words with no punctuation.
func (g *Generator) Fragment(o *Options) (string, error) {
	opts := o.resolve()
	if err := opts.validate(fieldWords); err != nil {
		return "", err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.fragment(opts.Words), nil
}

// Sentence returns a capitalized sentence of Fragments-many fragments joined
// by connectives and closed with a single period.
func (g *Generator) Sentence(o *Options) (string, error) {
	opts := o.resolve()
	if err := opts.validate(fieldWords | fieldFragments); err != nil {
		return "", err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.sentence(opts.Words, opts.Fragments), nil
}

// Sentences returns n sentences, each followed by a single space. Unless
// NoOpeningPhrase is set, the first sentence is OpeningPhrase.
func (g *Generator) Sentences(n int, o *Options) (string, error) {
	if err := validateCountValue("sentence count", n); err != nil {
		return "", err
	}
	opts := o.resolve()
	if err := opts.validate(fieldWords | fieldFragments); err != nil {
		return "", err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	var b strings.Builder
	g.writeSentences(&b, n, opts, !opts.NoOpeningPhrase)
	return b.String(), nil
}

// Paragraph returns a tab-indented paragraph of Sentences-many sentences
// terminated by one newline.
func (g *Generator) Paragraph(o *Options) (string, error) {
	opts := o.resolve()
	if err := opts.validate(fieldWords | fieldFragments | fieldSentences); err != nil {
		return "", err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	var b strings.Builder
	g.writeParagraph(&b, opts, !opts.NoOpeningPhrase)
	return b.String(), nil
}

// Paragraphs returns n paragraphs. The opening phrase, if enabled, starts
// the first paragraph only.
func (g *Generator) Paragraphs(n int, o *Options) (string, error) {
	if err := validateCountValue("paragraph count", n); err != nil {
		return "", err
	}
	opts := o.resolve()
	if err := opts.validate(fieldWords | fieldFragments | fieldSentences); err != nil {
		return "", err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	var b strings.Builder
	g.writeParagraphs(&b, n, opts)
	return b.String(), nil
}

// Text is Paragraphs with the paragraph count rolled from Paragraphs.
func (g *Generator) Text(o *Options) (string, error) {
	opts := o.resolve()
	if err := opts.validate(fieldWords | fieldFragments | fieldSentences | fieldParagraphs); err != nil {
		return "", err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	var b strings.Builder
	g.writeParagraphs(&b, opts.Paragraphs.roll(g.rng), opts)
	return b.String(), nil
}

func (g *Generator) writeWords(b *strings.Builder, n int) {
	for i := range n {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(g.word())
	}
}

func (g *Generator) fragment(words Range) string {
	var b strings.Builder
	g.writeWords(&b, words.roll(g.rng))
	return b.String()
}

func (g *Generator) sentence(words, frags Range) string {
	var b strings.Builder
	n := frags.roll(g.rng)
	for i := range n {
		if i > 0 {
			b.WriteString(g.connective())
		}
		g.writeWords(&b, words.roll(g.rng))
	}
	b.WriteByte('.')
	return capitalize(b.String())
}

func (g *Generator) connective() string {
	switch check := g.percent(); {
	case check < semicolonBelow:
		return "; "
	case check < commaBelow:
		return ", "
	default:
		return " - "
	}
}

func (g *Generator) writeSentences(b *strings.Builder, n int, opts Options, opening bool) {
	for i := range n {
		if i == 0 && opening {
			b.WriteString(OpeningPhrase)
		} else {
			b.WriteString(g.sentence(opts.Words, opts.Fragments))
		}
		b.WriteByte(' ')
	}
}

func (g *Generator) writeParagraph(b *strings.Builder, opts Options, opening bool) {
	var body strings.Builder
	g.writeSentences(&body, opts.Sentences.roll(g.rng), opts, opening)
	b.WriteByte('\t')
	b.WriteString(strings.TrimSuffix(body.String(), " "))
	b.WriteByte('\n')
}

func (g *Generator) writeParagraphs(b *strings.Builder, n int, opts Options) {
	opening := !opts.NoOpeningPhrase
	for i := range n {
		g.writeParagraph(b, opts, opening && i == 0)
	}
}

// capitalize upper-cases the first rune of s.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	up := unicode.ToUpper(r)
	if up == r {
		return s
	}
	return string(up) + s[size:]
}
