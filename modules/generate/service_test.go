package generate_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lipsum"
	"github.com/dmitrymomot/lipsum/modules/generate"
	"github.com/dmitrymomot/lipsum/pkg/metrics"
)

func newHandler(t *testing.T, opts ...generate.Option) http.Handler {
	t.Helper()
	opts = append([]generate.Option{generate.WithGenerator(lipsum.MustNew(lipsum.WithSeed(1)))}, opts...)
	return generate.NewService(generate.DefaultConfig(), opts...).Handle()
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func post(t *testing.T, h http.Handler, target, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestGenerateRoutes(t *testing.T) {
	t.Parallel()

	h := newHandler(t)
	tests := []struct {
		target      string
		contentType string
		check       func(t *testing.T, body string)
	}{
		{"/words?count=7", "text/plain", func(t *testing.T, body string) {
			assert.Len(t, strings.Fields(body), 7)
		}},
		{"/fragment?min_words=3&max_words=3", "text/plain", func(t *testing.T, body string) {
			assert.Len(t, strings.Fields(body), 3)
		}},
		{"/sentence", "text/plain", func(t *testing.T, body string) {
			assert.True(t, strings.HasSuffix(body, "."), body)
		}},
		{"/sentences?count=3", "text/plain", func(t *testing.T, body string) {
			assert.True(t, strings.HasPrefix(body, lipsum.OpeningPhrase+" "), body)
			assert.Equal(t, 3, lipsum.CountSentences(body))
		}},
		{"/sentences?count=3&no_lipsum=true", "text/plain", func(t *testing.T, body string) {
			assert.NotContains(t, body, lipsum.OpeningPhrase)
		}},
		{"/paragraph?min_sents=2&max_sents=2", "text/plain", func(t *testing.T, body string) {
			assert.True(t, strings.HasPrefix(body, "\t"))
			assert.True(t, strings.HasSuffix(body, ".\n"))
			assert.Equal(t, 2, lipsum.CountSentences(body))
		}},
		{"/paragraphs?count=3", "text/plain", func(t *testing.T, body string) {
			assert.Equal(t, 3, strings.Count(body, "\n"))
			assert.Equal(t, 1, strings.Count(body, lipsum.OpeningPhrase))
		}},
		{"/text?min_paras=2&max_paras=2", "text/plain", func(t *testing.T, body string) {
			assert.Equal(t, 2, strings.Count(body, "\t"))
		}},
		{"/slug?min_slug_words=3&max_slug_words=3&sep=_", "text/plain", func(t *testing.T, body string) {
			assert.Equal(t, 2, strings.Count(body, "_"))
		}},
		{"/url?url=" + url.QueryEscape("https://lipsum.test/") + "&min_slug_words=4&max_slug_words=4", "text/plain", func(t *testing.T, body string) {
			assert.Regexp(t, `^https://lipsum\.test/#[a-z]+(-[a-z]+){3}$`, body)
		}},
		{"/markdown/header?level=3", "text/markdown", func(t *testing.T, body string) {
			assert.True(t, strings.HasPrefix(body, "### "), body)
			assert.True(t, strings.HasSuffix(body, "\n\n"))
		}},
		{"/markdown/emphasis?bold=true", "text/markdown", func(t *testing.T, body string) {
			assert.True(t, strings.HasPrefix(body, "**"), body)
		}},
		{"/markdown/link?url=" + url.QueryEscape("https://lipsum.test/"), "text/markdown", func(t *testing.T, body string) {
			assert.Contains(t, body, "](https://lipsum.test/#")
		}},
		{"/markdown/list?ordered=true&min_points=4&max_points=4", "text/markdown", func(t *testing.T, body string) {
			assert.True(t, strings.HasPrefix(body, "1. "), body)
			assert.Contains(t, body, "\n4. ")
		}},
		{"/markdown/paragraph", "text/markdown", func(t *testing.T, body string) {
			assert.True(t, strings.HasSuffix(body, "\n\n"))
		}},
		{"/markdown/paragraphs?count=2", "text/markdown", func(t *testing.T, body string) {
			assert.Equal(t, 2, strings.Count(body, "\n\n"))
		}},
		{"/markdown/paragraphs", "text/markdown", func(t *testing.T, body string) {
			assert.Equal(t, 5, strings.Count(body, "\n\n"))
		}},
		{"/markdown/document?elements=5", "text/markdown", func(t *testing.T, body string) {
			assert.True(t, strings.HasPrefix(body, "# "), body)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			t.Parallel()
			rec := get(t, h, tt.target)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), tt.contentType))
			tt.check(t, rec.Body.String())
		})
	}
}

func TestGenerateRejectsInvalidParameters(t *testing.T) {
	t.Parallel()

	h := newHandler(t)
	tests := []struct {
		target string
		want   string
	}{
		{"/words?count=0", "invalid count"},
		{"/words?count=abc", "invalid query parameter"},
		{"/words?count=101", "limit exceeded"},
		{"/sentence?min_words=5&max_words=2", "invalid range"},
		{"/sentence?min_words=10", "invalid range"},
		{"/sentence?min_words=0&max_words=0", "invalid count"},
		{"/sentence?max_words=1000", "limit exceeded"},
		{"/markdown/header?level=7", "invalid header level"},
		{"/markdown/document?elements=1", "invalid count"},
		{"/markdown/document?elements=201", "limit exceeded"},
		{"/markdown/document?min_level=0&max_level=9", "invalid"},
		{"/markdown/list?bold=perhaps", "invalid query parameter"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			t.Parallel()
			rec := get(t, h, tt.target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}

func TestGenerateRejectsOversizedOutput(t *testing.T) {
	t.Parallel()

	t.Run("ranges multiply", func(t *testing.T) {
		t.Parallel()
		h := newHandler(t)
		for _, target := range []string{
			"/paragraphs?count=10&max_words=100&max_frags=100&max_sents=100",
			"/text?max_paras=100&max_sents=100&max_frags=100&max_words=100",
			"/markdown/document?elements=200&max_sents=100&max_words=100&max_frags=100",
		} {
			rec := get(t, h, target)
			assert.Equal(t, http.StatusBadRequest, rec.Code, target)
			assert.Contains(t, rec.Body.String(), "limit exceeded")
			assert.Contains(t, rec.Body.String(), "words")
		}
	})

	t.Run("configured limit", func(t *testing.T) {
		t.Parallel()
		cfg := generate.DefaultConfig()
		cfg.MaxWords = 50
		h := generate.NewService(cfg, generate.WithGenerator(lipsum.MustNew(lipsum.WithSeed(3)))).Handle()

		assert.Equal(t, http.StatusOK, get(t, h, "/words?count=50").Code)
		assert.Equal(t, http.StatusBadRequest, get(t, h, "/words?count=51").Code)
		// 8 sentences of up to 9x3 words each.
		assert.Equal(t, http.StatusBadRequest, get(t, h, "/paragraph").Code)
		assert.Equal(t, http.StatusOK, get(t, h, "/paragraph?max_sents=5&min_words=2&max_words=3&max_frags=1").Code)
	})

	t.Run("default request sizes pass", func(t *testing.T) {
		t.Parallel()
		h := newHandler(t)
		for _, target := range []string{
			"/paragraphs?count=100",
			"/markdown/document?elements=200",
			"/markdown/paragraphs?count=100",
		} {
			assert.Equal(t, http.StatusOK, get(t, h, target).Code, target)
		}
	})
}

func TestSeededRequestsAreDeterministicAndCached(t *testing.T) {
	t.Parallel()

	h := newHandler(t)
	target := "/paragraphs?count=2&seed=42"

	first := get(t, h, target)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))

	second := get(t, h, target)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())

	want, err := lipsum.MustNew(lipsum.WithSeed(42)).Paragraphs(2, nil)
	require.NoError(t, err)
	assert.Equal(t, want, first.Body.String())

	other := get(t, newHandler(t), "/paragraphs?seed=42&count=2")
	assert.Equal(t, want, other.Body.String(), "parameter order does not matter")
}

type failingCache struct{}

func (failingCache) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("cache down")
}

func (failingCache) Set(context.Context, string, string) error {
	return errors.New("cache down")
}

func TestCacheFailureDoesNotFailRequest(t *testing.T) {
	t.Parallel()

	h := newHandler(t, generate.WithCache(failingCache{}, "broken"))
	rec := get(t, h, "/sentence?seed=3")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}

func TestMarkdownHTMLAndRender(t *testing.T) {
	t.Parallel()

	h := newHandler(t)

	rec := get(t, h, "/markdown/list?html=true&ordered=true&min_points=3&max_points=3")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html"))
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 3, doc.Find("ol > li").Length())

	rec = get(t, h, "/markdown/document?render=true&seed=5")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html"))
	doc, err = goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Find("h1").Length())
	assert.NotContains(t, rec.Body.String(), "# ")
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	h := newHandler(t)
	text := "Lorem ipsum. Dolor sit [amet.](https://example.com/#a-b)."
	tests := []struct {
		name        string
		contentType string
		body        string
	}{
		{"json", "application/json", `{"text":` + strconvQuote(text) + `}`},
		{"form", "application/x-www-form-urlencoded", url.Values{"text": {text}}.Encode()},
		{"raw", "text/plain", text},
		{"no content type", "", text},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := post(t, h, "/analyze", tt.contentType, tt.body)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var got struct {
				Sentences int `json:"sentences"`
				Words     int `json:"words"`
			}
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, 3, got.Sentences)
			assert.Equal(t, 5, got.Words)
		})
	}
}

func TestAnalyzeRejectsBadBodies(t *testing.T) {
	t.Parallel()

	cfg := generate.DefaultConfig()
	cfg.MaxBodySize = 8
	h := generate.NewService(cfg).Handle()

	assert.Equal(t, http.StatusRequestEntityTooLarge, post(t, h, "/analyze", "text/plain", "far too long for the limit").Code)
	assert.Equal(t, http.StatusBadRequest, post(t, newHandler(t), "/analyze", "application/json", `{"txt":"a"}`).Code)
}

func TestHTMLify(t *testing.T) {
	t.Parallel()

	rec := post(t, newHandler(t), "/htmlify", "text/plain", "\tOne <b>.\n\nTwo.\n")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<p>\tOne &lt;b&gt;.</p>\n<p>Two.</p>\n", rec.Body.String())
}

func TestVersion(t *testing.T) {
	t.Parallel()

	rec := get(t, newHandler(t), "/version")
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"`+lipsum.Version+`"}`, string(body))
}

func TestMetricsRecorded(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	h := newHandler(t, generate.WithMetrics(m))

	get(t, h, "/words?count=2")
	get(t, h, "/words?count=0")
	get(t, h, "/slug?seed=1")
	get(t, h, "/slug?seed=1")

	expected := `
# HELP lipsum_generations_total Generated texts by operation and output format.
# TYPE lipsum_generations_total counter
lipsum_generations_total{format="text",operation="slug"} 1
lipsum_generations_total{format="text",operation="words"} 1
# HELP lipsum_generation_errors_total Rejected generation requests by operation.
# TYPE lipsum_generation_errors_total counter
lipsum_generation_errors_total{operation="words"} 1
# HELP lipsum_cache_lookups_total Seeded result cache lookups by backend and result.
# TYPE lipsum_cache_lookups_total counter
lipsum_cache_lookups_total{backend="memory",result="hit"} 1
lipsum_cache_lookups_total{backend="memory",result="miss"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected),
		"lipsum_generations_total", "lipsum_generation_errors_total", "lipsum_cache_lookups_total"))
}

func TestCost(t *testing.T) {
	t.Parallel()

	tests := map[string]int{
		"/words":                        1,
		"/words?count=12":               12,
		"/words?count=-3":               1,
		"/markdown/document?elements=9": 9,
		"/sentence?count=junk":          1,
	}
	for target, want := range tests {
		assert.Equal(t, want, generate.Cost(httptest.NewRequest(http.MethodGet, target, nil)), target)
	}
}

func strconvQuote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestDefaultURL(t *testing.T) {
	t.Parallel()

	cfg := generate.DefaultConfig()
	cfg.DefaultURL = "https://docs.test/"
	h := generate.NewService(cfg).Handle()

	assert.Contains(t, get(t, h, "/markdown/link").Body.String(), "](https://docs.test/#")
	assert.Contains(t, get(t, h, "/markdown/link?url=https://x.test/").Body.String(), "](https://x.test/#")
}
