package jsonx

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrNoJSONFound is returned when no valid JSON object/array is found
// in the input.
var ErrNoJSONFound = errors.New("no valid JSON object or array found in response")

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// Extract pulls a JSON object or array out of a model response that
// may contain markdown fences or surrounding prose. Returns the
// cleaned JSON string or ErrNoJSONFound.
func Extract(response string) (string, error) {
	if response == "" {
		return "", ErrNoJSONFound
	}

	cleaned := stripMarkdown(response)

	if candidate := matchBrackets(cleaned); candidate != "" && json.Valid([]byte(candidate)) {
		return candidate, nil
	}

	if json.Valid([]byte(cleaned)) {
		return cleaned, nil
	}

	// Last resort: widest object/array span in the raw response.
	if candidate := widestSpan(response); candidate != "" {
		return candidate, nil
	}

	return "", fmt.Errorf("%w: response length=%d", ErrNoJSONFound, len(response))
}

// ExtractTo extracts JSON from response and unmarshals it into target.
func ExtractTo(response string, target interface{}) error {
	jsonStr, err := Extract(response)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(jsonStr), target)
}

// stripMarkdown removes markdown code fence formatting.
func stripMarkdown(s string) string {
	s = strings.TrimSpace(s)

	if matches := fenceRe.FindStringSubmatch(s); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")

	return strings.TrimSpace(s)
}

// matchBrackets finds the first complete top-level JSON object or
// array using bracket matching, respecting string literals.
func matchBrackets(s string) string {
	startObj := strings.Index(s, "{")
	startArr := strings.Index(s, "[")

	var start int
	var openChar, closeChar byte

	switch {
	case startObj == -1 && startArr == -1:
		return ""
	case startArr == -1 || (startObj != -1 && startObj < startArr):
		start, openChar, closeChar = startObj, '{', '}'
	default:
		start, openChar, closeChar = startArr, '[', ']'
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if escaped {
			escaped = false
			continue
		}

		if c == '\\' && inString {
			escaped = true
			continue
		}

		if c == '"' {
			inString = !inString
			continue
		}

		if inString {
			continue
		}

		if c == openChar {
			depth++
		} else if c == closeChar {
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}

	return ""
}

// widestSpan tries first-to-last brace/bracket spans.
func widestSpan(s string) string {
	if first, last := strings.Index(s, "{"), strings.LastIndex(s, "}"); first != -1 && last > first {
		if candidate := s[first : last+1]; json.Valid([]byte(candidate)) {
			return candidate
		}
	}

	if first, last := strings.Index(s, "["), strings.LastIndex(s, "]"); first != -1 && last > first {
		if candidate := s[first : last+1]; json.Valid([]byte(candidate)) {
			return candidate
		}
	}

	return ""
}
