package main

import (
	"testing"

	"github.com/dmitrymomot/lipsum/pkg/config"
)

func resetConfig(t *testing.T) {
	t.Helper()
	config.ResetCache()
	t.Cleanup(config.ResetCache)
}
