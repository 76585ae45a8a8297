package docsweep

import (
	"strings"
	"unicode"
)

// emDash is the typographic long dash, replaced with a spaced hyphen
// before any phrase rewriting.
const emDash = "—"

// isEmoji reports whether r falls within the fixed set of code point
// ranges treated as emoji: the common pictographic, symbol, and flag
// blocks. A broad approximation, not a full Unicode emoji property
// check.
func isEmoji(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1FAFF, // pictographs through symbols-extended
		r >= 0x2700 && r <= 0x27BF, // dingbats
		r >= 0x2600 && r <= 0x26FF, // miscellaneous symbols
		r >= 0x1F1E6 && r <= 0x1F1FF, // regional indicators (flags)
		r >= 0x1F900 && r <= 0x1F9FF, // supplemental symbols and pictographs
		r == 0x2B50,  // white medium star
		r == 0x231A: // watch
		return true
	}
	return false
}

// IsHeading reports whether a line is a markdown heading: its content,
// after leading whitespace, starts with "#".
func IsHeading(line string) bool {
	return strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), "#")
}

// SanitizeLine applies the per-line pipeline in order: dash
// normalization, phrase rewriting, then the emoji policy. The heading
// flag selects between the heading policy (keep at most one emoji) and
// the body policy (strip all); callers classify the line before any
// rewriting.
func SanitizeLine(line string, heading bool, rules []Rule) string {
	if strings.Contains(line, emDash) {
		line = strings.ReplaceAll(line, emDash, " - ")
	}

	for _, rule := range rules {
		line = rule.Apply(line)
	}

	if heading {
		return capHeadingEmoji(line)
	}
	return stripEmoji(line)
}

// stripEmoji removes every emoji code point from line.
func stripEmoji(line string) string {
	if !strings.ContainsFunc(line, isEmoji) {
		return line
	}
	return strings.Map(func(r rune) rune {
		if isEmoji(r) {
			return -1
		}
		return r
	}, line)
}

// capHeadingEmoji reduces a heading to at most one emoji. When more
// than one is present, all are removed and the first is reinserted at
// the rune index it occupied before removal. Headings with zero or one
// emoji are returned unchanged.
func capHeadingEmoji(line string) string {
	runes := []rune(line)

	first := -1
	count := 0
	for i, r := range runes {
		if isEmoji(r) {
			if first < 0 {
				first = i
			}
			count++
		}
	}
	if count <= 1 {
		return line
	}

	// Every rune before the first emoji survives the removal, so the
	// original index is always a valid insertion point.
	stripped := make([]rune, 0, len(runes)-count)
	for _, r := range runes {
		if !isEmoji(r) {
			stripped = append(stripped, r)
		}
	}

	out := make([]rune, 0, len(stripped)+1)
	out = append(out, stripped[:first]...)
	out = append(out, runes[first])
	out = append(out, stripped[first:]...)
	return string(out)
}

// Sanitize runs the full pipeline over a document. Every line is
// sanitized, a line whose trimmed content equals the trimmed content of
// the previous retained line is dropped, and the result is rejoined
// with "\n", keeping a trailing newline only if the input had one.
// The second result reports whether the output differs from text.
func Sanitize(text string, rules []Rule) (string, bool) {
	trailing := strings.HasSuffix(text, "\n")
	body := strings.TrimSuffix(text, "\n")

	var lines []string
	if body != "" {
		lines = strings.Split(body, "\n")
	}

	cleaned := make([]string, 0, len(lines))
	for _, raw := range lines {
		line := SanitizeLine(raw, IsHeading(raw), rules)

		if len(cleaned) > 0 && strings.TrimSpace(cleaned[len(cleaned)-1]) == strings.TrimSpace(line) {
			continue
		}
		cleaned = append(cleaned, line)
	}

	out := strings.Join(cleaned, "\n")
	if trailing {
		out += "\n"
	}
	return out, out != text
}
