package generate

import "time"

// Config bounds what a single request may ask for.
type Config struct {
	// MaxCount caps count on /words, /sentences, /paragraphs and
	// /markdown/paragraphs.
	MaxCount int `env:"GENERATE_MAX_COUNT" envDefault:"100"`
	// MaxElements caps elements on /markdown/document.
	MaxElements int `env:"GENERATE_MAX_ELEMENTS" envDefault:"200"`
	// MaxRange caps the upper bound of every range parameter.
	MaxRange int `env:"GENERATE_MAX_RANGE" envDefault:"100"`
	// MaxWords caps the worst-case number of words a request can produce,
	// taking every count and range upper bound together. 0 disables it.
	MaxWords int `env:"GENERATE_MAX_WORDS" envDefault:"100000"`
	// MaxBodySize caps /analyze and /htmlify request bodies.
	MaxBodySize int64 `env:"GENERATE_MAX_BODY_SIZE" envDefault:"1048576"`
	// DefaultURL is the link target when a request has no url parameter.
	// Empty means lipsum.DefaultURL.
	DefaultURL string `env:"LIPSUM_URL"`
	// CacheSize and CacheTTL size the in-memory seeded result cache used
	// when no other cache is configured.
	CacheSize int           `env:"CACHE_SIZE" envDefault:"1024"`
	CacheTTL  time.Duration `env:"CACHE_TTL" envDefault:"10m"`
}

// DefaultConfig mirrors the env defaults.
func DefaultConfig() Config {
	return Config{
		MaxCount:    100,
		MaxElements: 200,
		MaxRange:    100,
		MaxWords:    100_000,
		MaxBodySize: 1 << 20,
		CacheSize:   1024,
		CacheTTL:    10 * time.Minute,
	}
}
