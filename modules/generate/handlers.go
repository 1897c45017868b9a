package generate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrymomot/lipsum"
	"github.com/dmitrymomot/lipsum/pkg/binder"
	"github.com/dmitrymomot/lipsum/pkg/logger"
)

// Output formats, also used as the metrics format label.
const (
	formatText     = "text"
	formatMarkdown = "markdown"
	formatHTML     = "html"
)

var contentTypes = map[string]string{
	formatText:     "text/plain; charset=utf-8",
	formatMarkdown: "text/markdown; charset=utf-8",
	formatHTML:     "text/html; charset=utf-8",
}

type composeFunc func(g *lipsum.Generator, p params, o *lipsum.Options) (string, error)

// generate wraps an engine call with binding, limits, seeded caching,
// optional Markdown rendering, metrics and logging.
func (s *Service) generate(op, kind string, compose composeFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		p, opts, err := s.parse(r, op)
		if err != nil {
			s.fail(w, r, op, err)
			return
		}

		format := kind
		if kind == formatMarkdown && (p.HTML || p.Render) {
			format = formatHTML
		}

		g := s.gen
		var key string
		if p.Seed != nil {
			key = cacheKey(op, r.URL.Query())
			if out, ok := s.lookup(ctx, key); ok {
				w.Header().Set("X-Cache", "HIT")
				s.write(w, format, out)
				return
			}
			w.Header().Set("X-Cache", "MISS")
			if g, err = lipsum.New(lipsum.WithSeed(*p.Seed)); err != nil {
				s.fail(w, r, op, err)
				return
			}
		}

		start := time.Now()
		out, err := compose(g, p, opts)
		if err != nil {
			s.fail(w, r, op, err)
			return
		}
		if kind == formatMarkdown && p.Render && !p.HTML {
			if out, err = s.renderer.ToHTML(out); err != nil {
				s.fail(w, r, op, err)
				return
			}
		}
		elapsed := time.Since(start)

		if s.metrics != nil {
			s.metrics.ObserveGeneration(op, format, len(out), elapsed)
		}
		attrs := []any{logger.Operation(op), logger.Bytes(len(out)), logger.Duration(elapsed)}
		if p.Seed != nil {
			attrs = append(attrs, logger.Seed(*p.Seed))
		}
		s.log.DebugContext(ctx, "text generated", attrs...)

		if key != "" {
			if err := s.cache.Set(ctx, key, out); err != nil {
				s.log.WarnContext(ctx, "cache store failed", logger.Component(s.cacheBackend), logger.Error(err))
			}
		}
		s.write(w, format, out)
	}
}

func (s *Service) parse(r *http.Request, op string) (params, *lipsum.Options, error) {
	var p params
	if err := binder.Query(r, &p); err != nil {
		return p, nil, err
	}
	if p.Count != nil && *p.Count > s.cfg.MaxCount {
		return p, nil, fmt.Errorf("%w: count is %d, limit %d", ErrLimitExceeded, *p.Count, s.cfg.MaxCount)
	}
	if p.Elements != nil && *p.Elements > s.cfg.MaxElements {
		return p, nil, fmt.Errorf("%w: elements is %d, limit %d", ErrLimitExceeded, *p.Elements, s.cfg.MaxElements)
	}
	opts, err := p.options(s.cfg)
	if err != nil {
		return p, nil, err
	}
	if n := wordBudget(op, p, opts); s.cfg.MaxWords > 0 && n > s.cfg.MaxWords {
		return p, nil, fmt.Errorf("%w: request may produce %d words, limit %d", ErrLimitExceeded, n, s.cfg.MaxWords)
	}
	return p, opts, nil
}

func (s *Service) lookup(ctx context.Context, key string) (string, bool) {
	out, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.WarnContext(ctx, "cache lookup failed", logger.Component(s.cacheBackend), logger.Error(err))
		return "", false
	}
	if s.metrics != nil {
		s.metrics.ObserveCache(s.cacheBackend, ok)
	}
	return out, ok
}

// cacheKey is stable for equal parameter sets; url.Values.Encode sorts by
// key. The engine version keeps results of older engines from being served.
func cacheKey(op string, q url.Values) string {
	return "gen:" + lipsum.Version + ":" + op + ":" + q.Encode()
}

func (s *Service) write(w http.ResponseWriter, format, out string) {
	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(out))
}

type analyzeRequest struct {
	Text string `json:"text" form:"text"`
}

type analyzeResponse struct {
	Sentences int `json:"sentences"`
	Words     int `json:"words"`
}

// analyze counts sentences and words of the request text.
func (s *Service) analyze(w http.ResponseWriter, r *http.Request) {
	text, err := s.readText(w, r)
	if err != nil {
		s.fail(w, r, "analyze", err)
		return
	}
	writeJSON(w, http.StatusOK, analyzeResponse{
		Sentences: lipsum.CountSentences(text),
		Words:     lipsum.CountWords(text),
	})
}

// htmlify wraps each non-empty line of the request text in <p> tags.
func (s *Service) htmlify(w http.ResponseWriter, r *http.Request) {
	text, err := s.readText(w, r)
	if err != nil {
		s.fail(w, r, "htmlify", err)
		return
	}
	//nolint:staticcheck // SA1019: legacy endpoint
	s.write(w, formatHTML, lipsum.HTMLify(text))
}

func (s *Service) version(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": lipsum.EngineVersion()})
}

// readText accepts a JSON {"text": ...} body, a urlencoded text field or a
// raw body of any other type.
func (s *Service) readText(w http.ResponseWriter, r *http.Request) (string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodySize)

	var req analyzeRequest
	switch binder.MediaType(r) {
	case "application/json":
		err := binder.JSON(r, &req)
		return req.Text, err
	case "application/x-www-form-urlencoded":
		err := binder.Form(r, &req)
		return req.Text, err
	default:
		return binder.Text(r, s.cfg.MaxBodySize)
	}
}

func (s *Service) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := statusFor(err)
	if s.metrics != nil {
		s.metrics.ObserveError(op)
	}
	if status >= http.StatusInternalServerError {
		s.log.ErrorContext(r.Context(), "generation failed", logger.Operation(op), logger.Error(err))
		http.Error(w, http.StatusText(status), status)
		return
	}
	s.log.DebugContext(r.Context(), "request rejected", logger.Operation(op), logger.Error(err))
	http.Error(w, err.Error(), status)
}

func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge), errors.Is(err, binder.ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, lipsum.ErrInvalidRange),
		errors.Is(err, lipsum.ErrInvalidCount),
		errors.Is(err, lipsum.ErrInvalidLevel),
		errors.Is(err, ErrLimitExceeded),
		errors.Is(err, binder.ErrInvalidQuery),
		errors.Is(err, binder.ErrInvalidJSON),
		errors.Is(err, binder.ErrInvalidForm):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
