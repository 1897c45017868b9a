package binder

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
)

// Form binds an application/x-www-form-urlencoded body to the struct v
// points to, using `form:"name"` tags with the same rules as Query.
func Form(r *http.Request, v any) error {
	if mediaType(r) != "application/x-www-form-urlencoded" {
		return fmt.Errorf("%w: expected application/x-www-form-urlencoded", ErrUnsupportedMediaType)
	}
	body, err := readBody(r, DefaultMaxBodySize)
	if err != nil {
		return err
	}
	values, err := url.ParseQuery(string(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}
	return bindToStruct(v, "form", values, ErrInvalidForm)
}

// Text returns the raw request body, capped at limit bytes.
func Text(r *http.Request, limit int64) (string, error) {
	body, err := readBody(r, limit)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// MediaType returns the request media type without parameters, or "".
func MediaType(r *http.Request) string {
	return mediaType(r)
}

func mediaType(r *http.Request) string {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return ""
	}
	return mt
}

func readBody(r *http.Request, limit int64) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("binder: read body: %w", err)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, limit)
	}
	return body, nil
}
