package generate

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/lipsum"
	"github.com/dmitrymomot/lipsum/pkg/cache"
	"github.com/dmitrymomot/lipsum/pkg/mdrender"
	"github.com/dmitrymomot/lipsum/pkg/metrics"
)

// Cache stores seeded results. Both cache.Memory and redis.Store satisfy it.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Service serves the generation API.
type Service struct {
	cfg          Config
	gen          *lipsum.Generator
	cache        Cache
	cacheBackend string
	metrics      *metrics.Metrics
	renderer     *mdrender.Renderer
	log          *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithGenerator sets the generator used for unseeded requests.
func WithGenerator(g *lipsum.Generator) Option {
	return func(s *Service) {
		if g != nil {
			s.gen = g
		}
	}
}

// WithCache replaces the in-memory seeded result cache. backend labels
// cache metrics.
func WithCache(c Cache, backend string) Option {
	return func(s *Service) {
		if c != nil {
			s.cache, s.cacheBackend = c, backend
		}
	}
}

// WithMetrics records generation and cache metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithRenderer sets the Markdown renderer used for render=true.
func WithRenderer(r *mdrender.Renderer) Option {
	return func(s *Service) {
		if r != nil {
			s.renderer = r
		}
	}
}

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// NewService builds a Service. Without options it uses the package default
// generator, an in-memory cache sized by cfg and a discarding logger.
func NewService(cfg Config, opts ...Option) *Service {
	s := &Service{
		cfg:      cfg,
		gen:      lipsum.Default(),
		renderer: mdrender.New(),
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cache == nil {
		s.cache, s.cacheBackend = cache.NewMemory(max(cfg.CacheSize, 1), cfg.CacheTTL), "memory"
	}
	return s
}

// Handle returns the module router.
//
//	r.Mount("/api", generate.NewService(cfg, generate.WithMetrics(m)).Handle())
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/words", s.generate("words", formatText, func(g *lipsum.Generator, p params, o *lipsum.Options) (string, error) {
		return g.Words(intOr(p.Count, defaultWords))
	}))
	r.Get("/fragment", s.generate("fragment", formatText, func(g *lipsum.Generator, _ params, o *lipsum.Options) (string, error) {
		return g.Fragment(o)
	}))
	r.Get("/sentence", s.generate("sentence", formatText, func(g *lipsum.Generator, _ params, o *lipsum.Options) (string, error) {
		return g.Sentence(o)
	}))
	r.Get("/sentences", s.generate("sentences", formatText, func(g *lipsum.Generator, p params, o *lipsum.Options) (string, error) {
		return g.Sentences(intOr(p.Count, defaultSentences), o)
	}))
	r.Get("/paragraph", s.generate("paragraph", formatText, func(g *lipsum.Generator, _ params, o *lipsum.Options) (string, error) {
		return g.Paragraph(o)
	}))
	r.Get("/paragraphs", s.generate("paragraphs", formatText, func(g *lipsum.Generator, p params, o *lipsum.Options) (string, error) {
		return g.Paragraphs(intOr(p.Count, defaultParagraphs), o)
	}))
	r.Get("/text", s.generate("text", formatText, func(g *lipsum.Generator, _ params, o *lipsum.Options) (string, error) {
		return g.Text(o)
	}))
	r.Get("/slug", s.generate("slug", formatText, func(g *lipsum.Generator, _ params, o *lipsum.Options) (string, error) {
		return g.Slug(o)
	}))
	r.Get("/url", s.generate("url", formatText, func(g *lipsum.Generator, _ params, o *lipsum.Options) (string, error) {
		return g.URL(o)
	}))

	r.Route("/markdown", func(r chi.Router) {
		r.Get("/header", s.generate("header", formatMarkdown, func(g *lipsum.Generator, p params, o *lipsum.Options) (string, error) {
			return g.Header(intOr(p.Level, defaultLevel), o)
		}))
		r.Get("/emphasis", s.generate("emphasis", formatMarkdown, func(g *lipsum.Generator, p params, o *lipsum.Options) (string, error) {
			return g.Emphasis(p.Bold, o)
		}))
		r.Get("/link", s.generate("link", formatMarkdown, func(g *lipsum.Generator, _ params, o *lipsum.Options) (string, error) {
			return g.Link(o)
		}))
		r.Get("/list", s.generate("list", formatMarkdown, func(g *lipsum.Generator, p params, o *lipsum.Options) (string, error) {
			return g.List(p.Ordered, o)
		}))
		r.Get("/paragraph", s.generate("markdown_paragraph", formatMarkdown, func(g *lipsum.Generator, _ params, o *lipsum.Options) (string, error) {
			return g.MarkdownParagraph(o)
		}))
		r.Get("/paragraphs", s.generate("markdown_paragraphs", formatMarkdown, func(g *lipsum.Generator, p params, o *lipsum.Options) (string, error) {
			return g.MarkdownParagraphs(intOr(p.Count, defaultMarkdownParagraphs), o)
		}))
		r.Get("/document", s.generate("document", formatMarkdown, func(g *lipsum.Generator, p params, o *lipsum.Options) (string, error) {
			return g.Document(intOr(p.Elements, defaultElements), o)
		}))
	})

	r.Post("/analyze", s.analyze)
	r.Post("/htmlify", s.htmlify)
	r.Get("/version", s.version)

	return r
}
