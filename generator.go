package lipsum

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
	"time"
)

// GeneratorOption configures a Generator.
type GeneratorOption func(*generatorConfig)

type generatorConfig struct {
	seed    uint64
	seeded  bool
	words   []string
	wordErr bool
}

// WithSeed makes the generator reproducible: two generators built with the
// same seed and vocabulary produce identical output for identical calls.
func WithSeed(seed uint64) GeneratorOption {
	return func(c *generatorConfig) {
		c.seed = seed
		c.seeded = true
	}
}

// WithVocabulary replaces the built-in word list. The slice is copied.
// Empty words are dropped; an empty result makes New fail with
// ErrEmptyVocabulary.
func WithVocabulary(words []string) GeneratorOption {
	return func(c *generatorConfig) {
		clean := make([]string, 0, len(words))
		for _, w := range words {
			if w != "" {
				clean = append(clean, w)
			}
		}
		c.words = clean
		c.wordErr = len(clean) == 0
	}
}

// Generator composes placeholder text. It owns its random source; all
// methods are safe for concurrent use, and a single call holds the
// generator for the whole composition so seeded output stays reproducible.
type Generator struct {
	mu    sync.Mutex
	rng   *rand.Rand
	words []string
}

// New returns a Generator. Without WithSeed the source is seeded from
// crypto/rand, falling back to the clock if that fails.
func New(opts ...GeneratorOption) (*Generator, error) {
	cfg := &generatorConfig{words: vocabulary}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.wordErr {
		return nil, ErrEmptyVocabulary
	}
	if !cfg.seeded {
		cfg.seed = randomSeed()
	}
	return &Generator{
		rng:   rand.New(rand.NewPCG(cfg.seed, cfg.seed^0x9e3779b97f4a7c15)),
		words: cfg.words,
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...GeneratorOption) *Generator {
	g, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// Roll draws a value from r using the generator's source.
func (g *Generator) Roll(r Range) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return r.Roll(g.rng)
}

// percent rolls the connective/choice die in [0, 100].
func (g *Generator) percent() int {
	return g.rng.IntN(101)
}

func (g *Generator) coin() bool {
	return g.rng.IntN(2) == 1
}

func (g *Generator) word() string {
	return g.words[g.rng.IntN(len(g.words))]
}

func randomSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}
