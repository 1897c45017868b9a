// Package lipsum generates "lorem ipsum" placeholder text.
//
// Text is composed bottom-up: words drawn uniformly from a fixed Latin
// vocabulary form fragments, fragments joined by connectives form sentences,
// sentences form paragraphs, and paragraphs form longer text. A Markdown
// layer builds headers, emphasis, links, lists and whole documents from the
// same pieces, and can render each of them as HTML instead.
//
// Every random count is bounded by a Range. All ranges of an operation are
// carried by a single Options value whose zero fields take documented
// defaults, so a nil *Options is always valid.
//
// Basic Usage:
//
//	g := lipsum.MustNew()
//	p, err := g.Paragraph(nil)
//	if err != nil {
//		return err
//	}
//
// Reproducible output:
//
//	g := lipsum.MustNew(lipsum.WithSeed(42))
//	doc, _ := g.Document(15, &lipsum.Options{
//		HeaderLevels: lipsum.MustRange(2, 3),
//		URL:          "https://docs.example.com/",
//	})
//
// Package-level helpers such as Word, Sentence and MarkdownText use a
// shared default Generator and never fail; out-of-range counts fall back to
// sensible values.
//
// Analysis:
//
// CountSentences counts periods outside parentheses, which keeps the dots in
// Markdown link targets from being counted. CountWords is a plain
// whitespace token count.
//
// Errors:
//
// Invalid input is reported with the sentinel errors ErrInvalidRange,
// ErrInvalidCount, ErrInvalidLevel and ErrEmptyVocabulary, wrapped with
// details. Use errors.Is to match them.
package lipsum
