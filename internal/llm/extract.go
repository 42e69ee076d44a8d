package llm

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrNoJSON is returned when no strategy could salvage a JSON value.
var ErrNoJSON = errors.New("no parseable JSON found in model output")

var (
	fencedBlockRe  = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")
	trailingComma  = regexp.MustCompile(`,\s*([}\]])`)
	bareKeyRe      = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_]*)\s*:`)
	controlCharsRe = regexp.MustCompile(`[\x00-\x08\x0b\x0c\x0e-\x1f]`)
)

// ExtractJSON salvages a JSON value from free-form model output and
// unmarshals it into v. Model replies are frequently wrapped in prose or
// markdown fences, or contain minor syntax errors, so candidates are tried
// in order: fenced code block contents, the outermost bracket span, the
// whole text. Each candidate is parsed as-is and then again after a
// lightweight repair pass. First success wins.
func ExtractJSON(raw string, v any) error {
	for _, candidate := range candidates(raw) {
		if candidate == "" {
			continue
		}
		for _, text := range []string{candidate, Repair(candidate)} {
			if json.Valid([]byte(text)) {
				return json.Unmarshal([]byte(text), v)
			}
		}
	}
	return ErrNoJSON
}

func candidates(raw string) []string {
	return []string{
		fencedBlock(raw),
		bracketSpan(raw),
		strings.TrimSpace(raw),
	}
}

func fencedBlock(raw string) string {
	m := fencedBlockRe.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// bracketSpan cuts from the first opening brace or bracket to the last
// matching closer.
func bracketSpan(raw string) string {
	objStart := strings.IndexByte(raw, '{')
	arrStart := strings.IndexByte(raw, '[')

	start, closer := objStart, byte('}')
	if start == -1 || (arrStart != -1 && arrStart < start) {
		start, closer = arrStart, ']'
	}
	if start == -1 {
		return ""
	}
	end := strings.LastIndexByte(raw, closer)
	if end <= start {
		return ""
	}
	return raw[start : end+1]
}

// Repair applies best-effort fixes for the syntax errors models most often
// produce: stray control characters, trailing commas, single-quoted strings
// and unquoted property names.
func Repair(text string) string {
	text = controlCharsRe.ReplaceAllString(text, "")
	text = trailingComma.ReplaceAllString(text, "$1")
	text = coerceSingleQuotes(text)
	text = bareKeyRe.ReplaceAllString(text, `$1"$2":`)
	return text
}

// coerceSingleQuotes rewrites single-quoted strings to double-quoted ones,
// leaving apostrophes inside double-quoted strings alone.
func coerceSingleQuotes(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	inDouble := false
	escaped := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			inDouble = !inDouble
		case c == '\'' && !inDouble:
			c = '"'
		}
		b.WriteByte(c)
	}
	return b.String()
}
