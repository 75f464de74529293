package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// Sanitize strips all HTML from free-text user input (descriptions, notes,
// shipping addresses) before it reaches the store.
func Sanitize(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}
