package lipsum

import "github.com/dmitrymomot/lipsum/pkg/slug"

// Slug returns SlugWords-many words joined by SlugSeparator, suitable as a
// URL path segment or fragment identifier.
func (g *Generator) Slug(o *Options) (string, error) {
	opts := o.resolve()
	if err := opts.validate(fieldSlugWords); err != nil {
		return "", err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.slug(opts.SlugWords, opts.SlugSeparator), nil
}

func (g *Generator) slug(words Range, sep string) string {
	return slug.Make(g.fragment(words), slug.Separator(sep))
}

// URL returns the base URL followed by "#" and a hyphenated fragment of
// SlugWords-many words: "https://example.com/#dolor-sit-amet".
func (g *Generator) URL(o *Options) (string, error) {
	opts := o.resolve()
	if err := opts.validate(fieldSlugWords); err != nil {
		return "", err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.url(opts), nil
}

// url always joins the fragment with "-", whatever SlugSeparator says.
func (g *Generator) url(opts Options) string {
	return opts.URL + "#" + g.slug(opts.SlugWords, DefaultSlugSeparator)
}
