package lipsum

import "errors"

var (
	// ErrInvalidRange is returned when a range has Min greater than Max.
	ErrInvalidRange = errors.New("lipsum: invalid range")

	// ErrInvalidCount is returned when a count, or the lower bound of a count
	// range, is below one.
	ErrInvalidCount = errors.New("lipsum: invalid count")

	// ErrInvalidLevel is returned when a header level falls outside 1..6.
	ErrInvalidLevel = errors.New("lipsum: invalid header level")

	// ErrEmptyVocabulary is returned when a generator is built with no words.
	ErrEmptyVocabulary = errors.New("lipsum: empty vocabulary")
)
