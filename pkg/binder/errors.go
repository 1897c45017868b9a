package binder

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("binder: unsupported media type")
	ErrInvalidJSON          = errors.New("binder: invalid JSON body")
	ErrInvalidForm          = errors.New("binder: invalid form data")
	ErrInvalidQuery         = errors.New("binder: invalid query parameter")
	ErrBodyTooLarge         = errors.New("binder: request body too large")
	ErrInvalidTarget        = errors.New("binder: target must be a non-nil pointer to struct")
)
