package slug

import (
	"strings"
	"unicode"
)

// Option configures slug generation.
type Option func(*config)

type config struct {
	separator string
	lowercase bool
	maxLength int
}

func defaultConfig() *config {
	return &config{
		separator: "-",
		lowercase: true,
	}
}

// Separator sets the string placed between words. Default is "-".
// An empty separator is ignored.
func Separator(s string) Option {
	return func(c *config) {
		if s != "" {
			c.separator = s
		}
	}
}

// Lowercase controls whether letters are lower-cased. Default is true.
func Lowercase(enabled bool) Option {
	return func(c *config) {
		c.lowercase = enabled
	}
}

// MaxLength caps the slug length in runes. The slug is cut at a word
// boundary, so it never ends with a separator. Zero means no limit.
func MaxLength(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxLength = n
		}
	}
}

// Make joins the letter/digit runs of s with the configured separator.
// Every other rune acts as a word break, and runs of breaks collapse.
func Make(s string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	words := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var b strings.Builder
	length := 0
	sepLen := len([]rune(cfg.separator))
	for i, w := range words {
		if cfg.lowercase {
			w = strings.ToLower(w)
		}
		wl := len([]rune(w))
		extra := wl
		if i > 0 {
			extra += sepLen
		}
		if cfg.maxLength > 0 && length+extra > cfg.maxLength {
			if i == 0 {
				// A single over-long word is truncated rather than dropped.
				b.WriteString(string([]rune(w)[:cfg.maxLength]))
			}
			break
		}
		if i > 0 {
			b.WriteString(cfg.separator)
		}
		b.WriteString(w)
		length += extra
	}
	return b.String()
}
