// Package parser converts raw swiftlint and swiftformat output into
// normalized lint diagnostics.
//
// Parsers are stateless and never fail: anything that does not look like a
// diagnostic is skipped, so callers can feed them whatever a tool printed.
package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Tool names recorded as the diagnostic source.
const (
	SourceSwiftLint   = "swiftlint"
	SourceSwiftFormat = "swiftformat"
)

// arrayCandidates returns the offset of every line that starts with "[".
// Status text such as "[info] Linting 1 file" is a candidate too, so callers
// must check that the line really opens a JSON array.
func arrayCandidates(data []byte) []int {
	var offsets []int

	offset := 0
	for offset < len(data) {
		end := bytes.IndexByte(data[offset:], '\n')
		var line []byte
		if end < 0 {
			line = data[offset:]
		} else {
			line = data[offset : offset+end]
		}

		trimmed := bytes.TrimLeft(line, " \t\r")
		if len(trimmed) > 0 && trimmed[0] == '[' {
			offsets = append(offsets, offset+len(line)-len(trimmed))
		}

		if end < 0 {
			break
		}
		offset += end + 1
	}
	return offsets
}

// jsonElements returns the elements of the first well-formed JSON array in
// data. ok is false when no line opens one, in which case the output is text.
func jsonElements(data []byte) ([]json.RawMessage, bool) {
	for _, start := range arrayCandidates(data) {
		if elements, ok := decodeElements(data[start:]); ok {
			return elements, true
		}
	}
	return nil, false
}

// decodeElements decodes the JSON array at the start of data one element at a
// time. ok is false on a syntax error, which is how bracketed status lines
// like "[1/3] Linting" are told apart from a report. Output cut short keeps
// the elements decoded before the end.
func decodeElements(data []byte) ([]json.RawMessage, bool) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, false
	}
	if delim, isDelim := tok.(json.Delim); !isDelim || delim != '[' {
		return nil, false
	}

	var elements []json.RawMessage
	for dec.More() {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return elements, true
			}
			return nil, false
		}
		elements = append(elements, raw)
	}
	return elements, true
}

// textLines splits output into trimmed, non-empty lines.
func textLines(data []byte) []string {
	raw := strings.Split(strings.TrimSpace(string(data)), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// matchGroups returns the named groups of re matched against line.
func matchGroups(re *regexp.Regexp, line string) (map[string]string, bool) {
	match := re.FindStringSubmatch(line)
	if match == nil {
		return nil, false
	}

	groups := make(map[string]string, len(match))
	for idx, name := range re.SubexpNames() {
		if name != "" {
			groups[name] = strings.TrimSpace(match[idx])
		}
	}
	return groups, true
}

// unescapePath undoes the "\/" escaping some reporters apply to separators.
func unescapePath(path string) string {
	return strings.ReplaceAll(strings.TrimSpace(path), `\/`, "/")
}

// validLine reports whether a JSON line number is present and 1-based.
func validLine(value *int) bool {
	return value != nil && *value >= 1
}

// position clamps a possibly missing 1-based position to at least 1.
func position(value *int) int {
	if value == nil || *value < 1 {
		return 1
	}
	return *value
}

// atoiPosition parses a text position, defaulting to 1.
func atoiPosition(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
