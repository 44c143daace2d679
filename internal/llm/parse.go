package llm

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
)

// arrayRe grabs the outermost bracketed span in a response, across newlines.
var arrayRe = regexp.MustCompile(`(?s)\[.*\]`)

// ParseStringArray normalizes a raw model response into a string list. It is
// a pipeline of fallible parse attempts where the first success
// short-circuits the rest:
//
//  1. strip markdown code fences,
//  2. strict JSON parse; an object is unwrapped to its first array-valued
//     entry in document order,
//  3. extract the first "[...]" substring and parse that,
//  4. retry each strict parse with single quotes repaired to double quotes.
//
// The boolean reports whether any attempt recovered a JSON array; the list
// keeps only string elements. An empty recovered array returns (nil, true):
// whether that is acceptable is the caller's policy.
func ParseStringArray(raw string) ([]string, bool) {
	text := CleanJSONBlock(raw)

	if vals, ok := parseValue(text); ok {
		return vals, true
	}

	sub := arrayRe.FindString(text)
	if sub == "" {
		return nil, false
	}
	if vals, ok := jsonStrings(sub); ok {
		return vals, true
	}
	return nil, false
}

// parseValue attempts a strict parse of the whole text, unwrapping a mapping
// to its first array-valued entry.
func parseValue(text string) ([]string, bool) {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "{") {
		return unwrapObject(trimmed)
	}
	return jsonStrings(trimmed)
}

// unwrapObject finds the first array value inside a JSON object, preserving
// the document's key order (a decoded map would not).
func unwrapObject(text string) ([]string, bool) {
	for _, candidate := range []string{text, repairQuotes(text)} {
		dec := json.NewDecoder(strings.NewReader(candidate))

		tok, err := dec.Token()
		if err != nil {
			continue
		}
		if delim, ok := tok.(json.Delim); !ok || delim != '{' {
			continue
		}

		for dec.More() {
			if _, err := dec.Token(); err != nil { // key
				break
			}
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				break
			}
			if len(bytes.TrimSpace(raw)) > 0 && bytes.TrimSpace(raw)[0] == '[' {
				return jsonStrings(string(raw))
			}
		}
	}
	return nil, false
}

// jsonStrings parses text as a JSON array and keeps its string elements.
// A failed strict parse is retried once with single quotes repaired.
func jsonStrings(text string) ([]string, bool) {
	var items []any
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		if err := json.Unmarshal([]byte(repairQuotes(text)), &items); err != nil {
			return nil, false
		}
	}

	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out, true
}

// repairQuotes is the permissive single-quote repair: models sometimes emit
// Python-style arrays like ['Go', 'AWS'].
func repairQuotes(text string) string {
	return strings.ReplaceAll(text, "'", `"`)
}
