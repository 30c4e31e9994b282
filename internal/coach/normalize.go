package coach

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"regexp"
	"strings"

	"coffeechat.app/api/common/logger"
)

// ErrMalformedResponse is returned when generation-service output cannot be
// normalized into the expected structure. The raw upstream text is never part
// of the error; it is logged out-of-band only.
var ErrMalformedResponse = errors.New("invalid response format from generation service")

var (
	openFencePattern  = regexp.MustCompile("^```[a-zA-Z]*\\s*")
	closeFencePattern = regexp.MustCompile("\\s*```$")
	whitespaceRuns    = regexp.MustCompile(`\s+`)
	trailingCommas    = regexp.MustCompile(`,\s*([}\]])`)
)

// Normalize repairs approximately-JSON text into the record v. The generation
// service is not contractually guaranteed to emit strict JSON, so formatting
// noise is the expected input class here: code fences, surrounding prose,
// stray control characters, and trailing commas are all recovered from.
// Structurally broken payloads (e.g. unbalanced braces) still fail.
func Normalize(ctx context.Context, raw string, v any) error {
	cleaned := stripFences(strings.TrimSpace(raw))

	if err := json.Unmarshal([]byte(cleaned), v); err == nil {
		return nil
	}

	// Commentary around the object: take the first '{' through the last '}'.
	if obj, ok := extractObject(cleaned); ok {
		cleaned = obj
	}

	cleaned = whitespaceRuns.ReplaceAllString(cleaned, " ")
	cleaned = trailingCommas.ReplaceAllString(cleaned, "$1")

	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		slog.DebugContext(ctx, "unparseable generation output",
			"error", err,
			"raw", logger.Truncate(raw, 500))
		return ErrMalformedResponse
	}

	return nil
}

func stripFences(s string) string {
	s = openFencePattern.ReplaceAllString(s, "")
	s = closeFencePattern.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

func extractObject(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}
