package httpserver

import "errors"

var (
	// ErrStart indicates that the server could not listen or serve.
	ErrStart = errors.New("httpserver: start failed")
	// ErrShutdown indicates that draining or a stop hook failed.
	ErrShutdown = errors.New("httpserver: graceful shutdown failed")
)
