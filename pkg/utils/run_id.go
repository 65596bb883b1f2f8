package utils

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateRunID creates a human-readable identifier for one replay run.
// Format: {label}-{yyyymmdd}-{8charHexUUID}
//
// Example:
//   - Input: label="Scenario A", at=2024-03-01
//   - Output: "scenario-a-20240301-a3f8e2b1"
//
// An empty label becomes "run".
func GenerateRunID(label string, at time.Time) string {
	slug := slugify(label)
	if slug == "" {
		slug = "run"
	}
	return slug + "-" + at.UTC().Format("20060102") + "-" + generateShortUUID()
}

// slugify lowercases the label and collapses anything that is not a letter
// or digit into single hyphens.
func slugify(label string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(label) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// generateShortUUID creates an 8-character hex string from a UUID
func generateShortUUID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}
