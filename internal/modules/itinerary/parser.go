// README: Extraction of the JSON plan embedded in a model's free-text reply.
package itinerary

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoJSON means the reply contains no extractable JSON object at all.
	ErrNoJSON = errors.New("no JSON object in model reply")
	// ErrMalformedJSON means a candidate payload was found but did not parse.
	ErrMalformedJSON = errors.New("malformed JSON in model reply")
)

// ExtractPlan locates the JSON object in a raw model reply, parses it and
// validates it against the plan schema. Pure; safe against arbitrary input.
// Failures stay distinct (ErrNoJSON, ErrMalformedJSON, ValidationErrors) so
// logs can tell extraction problems from schema problems.
func ExtractPlan(raw string) (*GeneratedPlan, error) {
	payload, ok := extractJSONObject(raw)
	if !ok {
		return nil, ErrNoJSON
	}

	var value any
	if err := json.Unmarshal([]byte(payload), &value); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	return ValidatePlan(value)
}

// extractJSONObject prefers the contents of a fenced code block (the prompts
// ask for one), then falls back to scanning the whole text for the first
// balanced top-level object. A last-resort greedy slice between the outermost
// braces catches truncated replies so they surface as parse errors rather
// than as "no JSON".
func extractJSONObject(raw string) (string, bool) {
	if fence, ok := fencedBlock(raw); ok {
		if obj, ok := firstBalancedObject(fence); ok {
			return obj, true
		}
	}
	if obj, ok := firstBalancedObject(raw); ok {
		return obj, true
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		return raw[start : end+1], true
	}
	return "", false
}

// fencedBlock returns the contents of the first ``` fence, tolerating an
// optional language tag on the opening line.
func fencedBlock(raw string) (string, bool) {
	start := strings.Index(raw, "```")
	if start < 0 {
		return "", false
	}
	rest := raw[start+3:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 && !strings.Contains(rest[:nl], "```") {
		rest = rest[nl+1:]
	}
	end := strings.Index(rest, "```")
	if end < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:end]), true
}

// firstBalancedObject scans for the first complete top-level JSON object,
// tracking string literals and escapes so braces inside values don't count.
func firstBalancedObject(raw string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				return raw[start : i+1], true
			}
		}
	}
	return "", false
}
