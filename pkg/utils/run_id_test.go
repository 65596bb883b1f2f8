package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRunID_Format(t *testing.T) {
	at := time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC)

	id := GenerateRunID("Scenario A", at)

	assert.Regexp(t, regexp.MustCompile(`^scenario-a-20240301-[0-9a-f]{8}$`), id)
}

func TestGenerateRunID_EmptyLabel(t *testing.T) {
	id := GenerateRunID("  ", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))

	assert.Regexp(t, regexp.MustCompile(`^run-20240102-[0-9a-f]{8}$`), id)
}

func TestGenerateRunID_Unique(t *testing.T) {
	now := time.Now()
	assert.NotEqual(t, GenerateRunID("x", now), GenerateRunID("x", now))
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"ports.yaml":       "ports-yaml",
		"--Hello__World--": "hello-world",
		"ABC123":           "abc123",
		"":                 "",
	}
	for in, want := range tests {
		assert.Equal(t, want, slugify(in), in)
	}
}
