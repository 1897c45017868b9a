package generate

import (
	"cmp"
	"fmt"

	"github.com/dmitrymomot/lipsum"
)

// params are the raw query parameters shared by every GET route. Ranges
// arrive as min/max integer pairs and are turned into lipsum.Range values
// before the engine sees them.
type params struct {
	MinWords     *int `query:"min_words"`
	MaxWords     *int `query:"max_words"`
	MinFrags     *int `query:"min_frags"`
	MaxFrags     *int `query:"max_frags"`
	MinSents     *int `query:"min_sents"`
	MaxSents     *int `query:"max_sents"`
	MinParas     *int `query:"min_paras"`
	MaxParas     *int `query:"max_paras"`
	MinPoints    *int `query:"min_points"`
	MaxPoints    *int `query:"max_points"`
	MinFmtWords  *int `query:"min_fmt_words"`
	MaxFmtWords  *int `query:"max_fmt_words"`
	MinFmtFrags  *int `query:"min_fmt_frags"`
	MaxFmtFrags  *int `query:"max_fmt_frags"`
	MinHeadWords *int `query:"min_head_words"`
	MaxHeadWords *int `query:"max_head_words"`
	MinLevel     *int `query:"min_level"`
	MaxLevel     *int `query:"max_level"`
	MinSlugWords *int `query:"min_slug_words"`
	MaxSlugWords *int `query:"max_slug_words"`

	Sep string `query:"sep"`
	URL string `query:"url"`

	Count    *int `query:"count"`
	Level    *int `query:"level"`
	Elements *int `query:"elements"`

	Bold     bool `query:"bold"`
	Ordered  bool `query:"ordered"`
	HTML     bool `query:"html"`
	NoLipsum bool `query:"no_lipsum"`
	Render   bool `query:"render"`

	Seed *uint64 `query:"seed"`
}

// options builds engine options. A pair with one side given takes the
// other side from the defaults. Upper bounds above cfg.MaxRange are
// rejected.
func (p params) options(cfg Config) (*lipsum.Options, error) {
	def := lipsum.DefaultOptions()
	o := &lipsum.Options{
		SlugSeparator:   p.Sep,
		URL:             cmp.Or(p.URL, cfg.DefaultURL),
		NoOpeningPhrase: p.NoLipsum,
		HTML:            p.HTML,
	}

	pairs := []struct {
		name     string
		min, max *int
		def      lipsum.Range
		dst      *lipsum.Range
	}{
		{"words", p.MinWords, p.MaxWords, def.Words, &o.Words},
		{"frags", p.MinFrags, p.MaxFrags, def.Fragments, &o.Fragments},
		{"sents", p.MinSents, p.MaxSents, def.Sentences, &o.Sentences},
		{"paras", p.MinParas, p.MaxParas, def.Paragraphs, &o.Paragraphs},
		{"points", p.MinPoints, p.MaxPoints, def.Points, &o.Points},
		{"fmt_words", p.MinFmtWords, p.MaxFmtWords, def.FormatWords, &o.FormatWords},
		{"fmt_frags", p.MinFmtFrags, p.MaxFmtFrags, def.FormatFragments, &o.FormatFragments},
		{"head_words", p.MinHeadWords, p.MaxHeadWords, def.HeaderWords, &o.HeaderWords},
		{"level", p.MinLevel, p.MaxLevel, def.HeaderLevels, &o.HeaderLevels},
		{"slug_words", p.MinSlugWords, p.MaxSlugWords, def.SlugWords, &o.SlugWords},
	}
	for _, pr := range pairs {
		if pr.min == nil && pr.max == nil {
			continue
		}
		lo, hi := pr.def.Min, pr.def.Max
		if pr.min != nil {
			lo = *pr.min
		}
		if pr.max != nil {
			hi = *pr.max
		}
		if hi > cfg.MaxRange {
			return nil, fmt.Errorf("%w: max_%s is %d, limit %d", ErrLimitExceeded, pr.name, hi, cfg.MaxRange)
		}
		r, err := lipsum.NewRange(lo, hi)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", pr.name, err)
		}
		if r.IsZero() {
			// {0, 0} would read as unset and silently take the default.
			return nil, fmt.Errorf("%w: %s range must start at 1", lipsum.ErrInvalidCount, pr.name)
		}
		*pr.dst = r
	}
	return o, nil
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}
