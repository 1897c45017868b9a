package lipsum

import "fmt"

// Default values applied to unset Options fields.
const (
	DefaultURL           = "https://example.com/"
	DefaultSlugSeparator = "-"
)

// OpeningPhrase is the canonical sentence that seeds generated text.
const OpeningPhrase = "Lorem ipsum dolor sit amet, consectetur adipiscing elit."

// Options configures every generation operation. Each operation reads only
// the fields it needs. Zero-valued fields take the defaults listed below;
// a nil *Options means all defaults.
type Options struct {
	// Words per sentence fragment. Default: 4-9.
	Words Range
	// Fragments per sentence. Default: 1-3.
	Fragments Range
	// Sentences per paragraph. Default: 5-8.
	Sentences Range
	// Paragraphs per Text call. Default: 1-4.
	Paragraphs Range
	// Points per list. Default: 3-5.
	Points Range

	// FormatWords and FormatFragments shape the sentences used by emphasis,
	// links and list points. Defaults: 4-8 and 1-2.
	FormatWords     Range
	FormatFragments Range

	// HeaderWords bounds the words in a header. Default: 2-5.
	HeaderWords Range
	// HeaderLevels bounds the levels of headers inside a Document. Default: 2-4.
	HeaderLevels Range

	// SlugWords bounds the words in a slug and in a link's URL fragment.
	// Default: 2-5.
	SlugWords Range
	// SlugSeparator joins slug words. Default: "-". Links always use "-".
	SlugSeparator string

	// URL is the base address links point to. Default: https://example.com/.
	URL string

	// NoOpeningPhrase disables the "Lorem ipsum dolor sit amet..." opener.
	NoOpeningPhrase bool
	// HTML renders Markdown operations as HTML tags instead.
	HTML bool
}

var defaultOptions = Options{
	Words:           Range{4, 9},
	Fragments:       Range{1, 3},
	Sentences:       Range{5, 8},
	Paragraphs:      Range{1, 4},
	Points:          Range{3, 5},
	FormatWords:     Range{4, 8},
	FormatFragments: Range{1, 2},
	HeaderWords:     Range{2, 5},
	HeaderLevels:    Range{2, 4},
	SlugWords:       Range{2, 5},
	SlugSeparator:   DefaultSlugSeparator,
	URL:             DefaultURL,
}

// DefaultOptions returns a copy of the defaults.
func DefaultOptions() Options {
	return defaultOptions
}

// resolve fills unset fields of o with defaults.
func (o *Options) resolve() Options {
	if o == nil {
		return defaultOptions
	}
	res := *o
	pick := func(v *Range, def Range) {
		if v.IsZero() {
			*v = def
		}
	}
	pick(&res.Words, defaultOptions.Words)
	pick(&res.Fragments, defaultOptions.Fragments)
	pick(&res.Sentences, defaultOptions.Sentences)
	pick(&res.Paragraphs, defaultOptions.Paragraphs)
	pick(&res.Points, defaultOptions.Points)
	pick(&res.FormatWords, defaultOptions.FormatWords)
	pick(&res.FormatFragments, defaultOptions.FormatFragments)
	pick(&res.HeaderWords, defaultOptions.HeaderWords)
	pick(&res.HeaderLevels, defaultOptions.HeaderLevels)
	pick(&res.SlugWords, defaultOptions.SlugWords)
	if res.SlugSeparator == "" {
		res.SlugSeparator = defaultOptions.SlugSeparator
	}
	if res.URL == "" {
		res.URL = defaultOptions.URL
	}
	return res
}

type field uint16

const (
	fieldWords field = 1 << iota
	fieldFragments
	fieldSentences
	fieldParagraphs
	fieldPoints
	fieldFormatWords
	fieldFormatFragments
	fieldHeaderWords
	fieldHeaderLevels
	fieldSlugWords
)

// validate checks only the fields an operation reads.
func (o Options) validate(fields field) error {
	checks := []struct {
		f    field
		name string
		r    Range
	}{
		{fieldWords, "words", o.Words},
		{fieldFragments, "fragments", o.Fragments},
		{fieldSentences, "sentences", o.Sentences},
		{fieldParagraphs, "paragraphs", o.Paragraphs},
		{fieldPoints, "points", o.Points},
		{fieldFormatWords, "format words", o.FormatWords},
		{fieldFormatFragments, "format fragments", o.FormatFragments},
		{fieldHeaderWords, "header words", o.HeaderWords},
		{fieldSlugWords, "slug words", o.SlugWords},
	}
	for _, c := range checks {
		if fields&c.f == 0 {
			continue
		}
		if err := validateCount(c.name, c.r); err != nil {
			return err
		}
	}
	if fields&fieldHeaderLevels != 0 {
		if err := o.HeaderLevels.Validate(); err != nil {
			return fmt.Errorf("header levels: %w", err)
		}
		if err := validateLevel(o.HeaderLevels.Min); err != nil {
			return err
		}
		if err := validateLevel(o.HeaderLevels.Max); err != nil {
			return err
		}
	}
	return nil
}

func validateCountValue(name string, n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %s must be at least 1, got %d", ErrInvalidCount, name, n)
	}
	return nil
}

func validateLevel(level int) error {
	if level < 1 || level > 6 {
		return fmt.Errorf("%w: %d is outside 1..6", ErrInvalidLevel, level)
	}
	return nil
}
