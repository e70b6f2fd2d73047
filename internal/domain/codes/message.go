package codes

import (
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var messagePolicy = bluemonday.UGCPolicy()

// RenderMessage converts an operator's markdown message into sanitized HTML
// for the redemption screen. An empty message renders to an empty string.
func RenderMessage(markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", nil
	}
	var buf strings.Builder
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render message: %w", err)
	}
	return messagePolicy.Sanitize(buf.String()), nil
}
