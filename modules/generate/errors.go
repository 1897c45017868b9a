package generate

import "errors"

// ErrLimitExceeded is returned when a request asks for more than Config allows.
var ErrLimitExceeded = errors.New("generate: limit exceeded")
