package lipsum

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Range is a closed integer interval [Min, Max] used to bound a randomly
// rolled count. The zero value means "unset" wherever a Range is part of
// Options and is replaced by that field's default.
type Range struct {
	Min int
	Max int
}

// NewRange returns the range [min, max] or ErrInvalidRange if min > max.
func NewRange(min, max int) (Range, error) {
	r := Range{Min: min, Max: max}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

// MustRange is like NewRange but panics on an invalid interval.
// Intended for package-level defaults and tests.
func MustRange(min, max int) Range {
	r, err := NewRange(min, max)
	if err != nil {
		panic(err)
	}
	return r
}

// Validate reports ErrInvalidRange when Min > Max.
func (r Range) Validate() error {
	if r.Min > r.Max {
		return fmt.Errorf("%w: min %d is greater than max %d", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

// IsZero reports whether r is the unset zero value.
func (r Range) IsZero() bool {
	return r.Min == 0 && r.Max == 0
}

// Roll draws a uniformly distributed integer in [Min, Max] from rng.
func (r Range) Roll(rng *rand.Rand) (int, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	return r.roll(rng), nil
}

// roll assumes r has already been validated.
func (r Range) roll(rng *rand.Rand) int {
	if r.Min == r.Max {
		return r.Min
	}
	// The span is computed in uint64 so intervals as wide as the whole int
	// domain do not overflow.
	span := uint64(r.Max) - uint64(r.Min)
	var off uint64
	if span == math.MaxUint64 {
		off = rng.Uint64()
	} else {
		off = rng.Uint64N(span + 1)
	}
	return int(uint64(r.Min) + off)
}

// String formats the range as "min-max", or a single number when degenerate.
func (r Range) String() string {
	if r.Min == r.Max {
		return strconv.Itoa(r.Min)
	}
	return strconv.Itoa(r.Min) + "-" + strconv.Itoa(r.Max)
}

// Set parses "min-max" or a single "n" into r. Together with String it lets
// *Range be used as a flag.Value.
func (r *Range) Set(s string) error {
	s = strings.TrimSpace(s)
	lo, hi, found := strings.Cut(s, "-")
	if !found {
		hi = lo
	}
	min, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return fmt.Errorf("%w: %q is not a number", ErrInvalidRange, lo)
	}
	max, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return fmt.Errorf("%w: %q is not a number", ErrInvalidRange, hi)
	}
	parsed, err := NewRange(min, max)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// validateCount checks r as a count range: well-formed with Min >= 1.
func validateCount(name string, r Range) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if r.Min < 1 {
		return fmt.Errorf("%w: %s range must start at 1 or above, got %s", ErrInvalidCount, name, r)
	}
	return nil
}
