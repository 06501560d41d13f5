package tagscan

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerWithPackage(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(slog.NewTextHandler(&buf, nil))

	log.WithPackage("pkg_0001.bin").Info("package scanned")

	assert.Contains(t, buf.String(), "package=pkg_0001.bin")
	assert.Contains(t, buf.String(), "package scanned")
}

func TestNoopLoggerDiscards(t *testing.T) {
	log := NoopLogger()
	log.Error("should not panic", "key", "value")
}
