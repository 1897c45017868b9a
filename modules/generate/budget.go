package generate

import (
	"math"
	"strings"

	"github.com/dmitrymomot/lipsum"
)

// Route defaults for count, level and elements.
const (
	defaultWords              = 5
	defaultSentences          = 6
	defaultParagraphs         = 5
	defaultMarkdownParagraphs = 5
	defaultLevel              = 1
	defaultElements           = 15
)

var openingWords = len(strings.Fields(lipsum.OpeningPhrase))

// wordBudget returns the largest number of words op can produce for p and
// o, saturating at math.MaxInt. Routes that generate nothing return 0.
func wordBudget(op string, p params, o *lipsum.Options) int {
	def := lipsum.DefaultOptions()
	upper := func(r, d lipsum.Range) int {
		if r.IsZero() {
			return d.Max
		}
		return r.Max
	}

	sentence := mul(upper(o.Words, def.Words), upper(o.Fragments, def.Fragments))
	unit := max(sentence, openingWords)
	sents := upper(o.Sentences, def.Sentences)
	formatted := mul(upper(o.FormatWords, def.FormatWords), upper(o.FormatFragments, def.FormatFragments))
	slugWords := max(upper(o.SlugWords, def.SlugWords), 0)
	headWords := upper(o.HeaderWords, def.HeaderWords)
	link := sat(formatted, slugWords)
	list := mul(upper(o.Points, def.Points), formatted)
	mdParagraph := mul(sents, max(unit, link, formatted))

	switch op {
	case "words":
		return max(intOr(p.Count, defaultWords), 0)
	case "fragment":
		return upper(o.Words, def.Words)
	case "sentence":
		return sentence
	case "sentences":
		return mul(intOr(p.Count, defaultSentences), unit)
	case "paragraph":
		return mul(sents, unit)
	case "paragraphs":
		return mul(intOr(p.Count, defaultParagraphs), sents, unit)
	case "text":
		return mul(upper(o.Paragraphs, def.Paragraphs), sents, unit)
	case "slug", "url":
		return slugWords
	case "header":
		return headWords
	case "emphasis":
		return formatted
	case "link":
		return link
	case "list":
		return list
	case "markdown_paragraph":
		return mdParagraph
	case "markdown_paragraphs":
		return mul(intOr(p.Count, defaultMarkdownParagraphs), mdParagraph)
	case "document":
		return mul(intOr(p.Elements, defaultElements), max(mdParagraph, headWords, list))
	default:
		return 0
	}
}

// mul multiplies factors, returning 0 if any is not positive and
// math.MaxInt on overflow.
func mul(factors ...int) int {
	n := 1
	for _, f := range factors {
		if f <= 0 {
			return 0
		}
		if n > math.MaxInt/f {
			return math.MaxInt
		}
		n *= f
	}
	return n
}

// sat adds two non-negative ints, saturating at math.MaxInt.
func sat(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}
