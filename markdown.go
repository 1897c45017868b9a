package lipsum

import (
	"fmt"
	"strconv"
	"strings"
)

// Element kinds rolled for each free slot of a Document.
const (
	elementParagraph = iota
	elementHeader
	elementList
	elementKinds
)

// Header returns a level-N heading of HeaderWords-many words followed by a
// blank line: "## Lorem ipsum\n\n" or "<h2>Lorem ipsum</h2>\n\n".
func (g *Generator) Header(level int, o *Options) (string, error) {
	if err := validateLevel(level); err != nil {
		return "", err
	}
	opts := o.resolve()
	if err := opts.validate(fieldHeaderWords); err != nil {
		return "", err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	var b strings.Builder
	g.writeHeader(&b, level, opts)
	return b.String(), nil
}

// Emphasis returns a sentence shaped by FormatWords and FormatFragments
// wrapped in bold (**, <strong>) or italic (*, <em>) markup.
func (g *Generator) Emphasis(bold bool, o *Options) (string, error) {
	opts := o.resolve()
	if err := opts.validate(fieldFormatWords | fieldFormatFragments); err != nil {
		return "", err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.emphasis(bold, opts), nil
}

// Link returns a link whose text is a sentence and whose target is URL plus
// a hyphenated fragment of SlugWords-many words:
// "[Lorem ipsum.](https://example.com/#dolor-sit)".
func (g *Generator) Link(o *Options) (string, error) {
	opts := o.resolve()
	if err := opts.validate(fieldFormatWords | fieldFormatFragments | fieldSlugWords); err != nil {
		return "", err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.link(opts), nil
}

// List returns Points-many list items, "1. " numbered when ordered and
// "- " bulleted otherwise, followed by a blank line.
func (g *Generator) List(ordered bool, o *Options) (string, error) {
	opts := o.resolve()
	if err := opts.validate(fieldFormatWords | fieldFormatFragments | fieldPoints); err != nil {
		return "", err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	var b strings.Builder
	g.writeList(&b, ordered, opts)
	return b.String(), nil
}

// MarkdownParagraph returns a paragraph of Sentences-many units, each
// followed by a single space, ending with a blank line. The HTML form wraps
// the space-joined units in <p>. Each unit after the optional
// opening phrase is a plain sentence, except that whenever a fresh roll of
// Sentences lands on its minimum the unit becomes a link or an emphasised
// sentence instead.
func (g *Generator) MarkdownParagraph(o *Options) (string, error) {
	opts := o.resolve()
	if err := opts.validate(markdownParagraphFields); err != nil {
		return "", err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	var b strings.Builder
	g.writeMarkdownParagraph(&b, opts, !opts.NoOpeningPhrase)
	return b.String(), nil
}

// MarkdownParagraphs returns n Markdown paragraphs; only the first may carry
// the opening phrase.
func (g *Generator) MarkdownParagraphs(n int, o *Options) (string, error) {
	if err := validateCountValue("paragraph count", n); err != nil {
		return "", err
	}
	opts := o.resolve()
	if err := opts.validate(markdownParagraphFields); err != nil {
		return "", err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	var b strings.Builder
	opening := !opts.NoOpeningPhrase
	for i := range n {
		g.writeMarkdownParagraph(&b, opts, opening && i == 0)
	}
	return b.String(), nil
}

// Document returns a document of exactly elements blocks: a level-1 header,
// a paragraph, then elements-2 blocks each chosen uniformly among
// paragraph, header (level rolled from HeaderLevels) and list (ordered on a
// coin flip). Paragraphs in a document never carry the opening phrase.
func (g *Generator) Document(elements int, o *Options) (string, error) {
	if elements < 2 {
		return "", fmt.Errorf("%w: document needs at least 2 elements, got %d", ErrInvalidCount, elements)
	}
	opts := o.resolve()
	if err := opts.validate(markdownParagraphFields | fieldPoints | fieldHeaderWords | fieldHeaderLevels); err != nil {
		return "", err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	var b strings.Builder
	g.writeHeader(&b, 1, opts)
	g.writeMarkdownParagraph(&b, opts, false)
	for range elements - 2 {
		switch g.rng.IntN(elementKinds) {
		case elementParagraph:
			g.writeMarkdownParagraph(&b, opts, false)
		case elementHeader:
			g.writeHeader(&b, opts.HeaderLevels.roll(g.rng), opts)
		case elementList:
			g.writeList(&b, g.coin(), opts)
		}
	}
	return b.String(), nil
}

const markdownParagraphFields = fieldWords | fieldFragments | fieldSentences |
	fieldFormatWords | fieldFormatFragments | fieldSlugWords

func (g *Generator) writeHeader(b *strings.Builder, level int, opts Options) {
	text := capitalize(g.fragment(opts.HeaderWords))
	if opts.HTML {
		tag := "h" + strconv.Itoa(level)
		b.WriteString("<" + tag + ">")
		b.WriteString(EscapeHTML(text))
		b.WriteString("</" + tag + ">\n\n")
		return
	}
	b.WriteString(strings.Repeat("#", level))
	b.WriteByte(' ')
	b.WriteString(text)
	b.WriteString("\n\n")
}

func (g *Generator) emphasis(bold bool, opts Options) string {
	text := g.sentence(opts.FormatWords, opts.FormatFragments)
	switch {
	case opts.HTML && bold:
		return "<strong>" + EscapeHTML(text) + "</strong>"
	case opts.HTML:
		return "<em>" + EscapeHTML(text) + "</em>"
	case bold:
		return "**" + text + "**"
	default:
		return "*" + text + "*"
	}
}

func (g *Generator) link(opts Options) string {
	text := g.sentence(opts.FormatWords, opts.FormatFragments)
	href := g.url(opts)
	if opts.HTML {
		return `<a href="` + EscapeHTML(href) + `">` + EscapeHTML(text) + "</a>"
	}
	return "[" + text + "](" + href + ")"
}

func (g *Generator) writeList(b *strings.Builder, ordered bool, opts Options) {
	n := opts.Points.roll(g.rng)
	if opts.HTML {
		tag := "ul"
		if ordered {
			tag = "ol"
		}
		b.WriteString("<" + tag + ">\n")
		for range n {
			b.WriteString("<li>")
			b.WriteString(EscapeHTML(g.sentence(opts.FormatWords, opts.FormatFragments)))
			b.WriteString("</li>\n")
		}
		b.WriteString("</" + tag + ">\n\n")
		return
	}
	for i := range n {
		if ordered {
			b.WriteString(strconv.Itoa(i + 1))
			b.WriteString(". ")
		} else {
			b.WriteString("- ")
		}
		b.WriteString(g.sentence(opts.FormatWords, opts.FormatFragments))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
}

func (g *Generator) writeMarkdownParagraph(b *strings.Builder, opts Options, opening bool) {
	n := opts.Sentences.roll(g.rng)
	units := make([]string, 0, n)
	for i := range n {
		if i == 0 && opening {
			units = append(units, g.plain(OpeningPhrase, opts))
			continue
		}
		if opts.Sentences.roll(g.rng) != opts.Sentences.Min {
			units = append(units, g.plain(g.sentence(opts.Words, opts.Fragments), opts))
			continue
		}
		if g.coin() {
			units = append(units, g.link(opts))
		} else {
			units = append(units, g.emphasis(g.coin(), opts))
		}
	}
	if opts.HTML {
		b.WriteString("<p>" + strings.Join(units, " ") + "</p>\n\n")
		return
	}
	for _, u := range units {
		b.WriteString(u)
		b.WriteByte(' ')
	}
	b.WriteString("\n\n")
}

// plain escapes literal text when rendering HTML.
func (g *Generator) plain(s string, opts Options) string {
	if opts.HTML {
		return EscapeHTML(s)
	}
	return s
}
