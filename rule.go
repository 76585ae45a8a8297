package docsweep

import (
	"regexp"
	"strings"
)

// Rule rewrites matches of a pattern within a single line.
type Rule struct {
	// Pattern matches the text to rewrite. Every match in the line is
	// rewritten, not just the first.
	Pattern *regexp.Regexp

	// Rewrite produces the replacement for a single match. It receives
	// the submatch groups as returned by FindStringSubmatch (index 0 is
	// the full match).
	Rewrite func(groups []string) string
}

// Apply rewrites every match of the rule's pattern in line.
func (r Rule) Apply(line string) string {
	return r.Pattern.ReplaceAllStringFunc(line, func(m string) string {
		groups := r.Pattern.FindStringSubmatch(m)
		if groups == nil {
			return m
		}
		return r.Rewrite(groups)
	})
}

var (
	// "It's not just X, It's also Y" -> "It includes X and Y".
	// X runs up to the next comma or semicolon; Y runs up to sentence
	// punctuation or end of line. The terminator (group 3) is kept.
	notJustPattern = regexp.MustCompile(`(?i)\bIt['’]s\s+not\s+just\s+([^,;]+?)\s*,\s*It['’]s\s+also\s+(.+?)([.!?]|$)`)

	// Lowercase second clause variant (it's).
	notJustLowerPattern = regexp.MustCompile(`(?i)\bIt['’]s\s+not\s+just\s+([^,;]+?)\s*,\s*it['’]s\s+also\s+(.+?)([.!?]|$)`)

	// "It's not about X, it's about Y" -> "It is about Y".
	notAboutPattern = regexp.MustCompile(`(?i)\bIt['’]s\s+not\s+about\s+([^,;]+?)\s*,\s*it['’]s\s+about\s+(.+?)([.!?]|$)`)
)

// DefaultRules returns the phrase rewriting rules in application order.
// Rules are sequential passes: each rule sees the output of the previous
// one, so rewritten text is re-examined by later rules. The two "not
// just" variants fold to the same matches under case-insensitive
// matching but remain separate passes.
func DefaultRules() []Rule {
	return []Rule{
		{Pattern: notJustPattern, Rewrite: rewriteNotJust},
		{Pattern: notJustLowerPattern, Rewrite: rewriteNotJust},
		{Pattern: notAboutPattern, Rewrite: rewriteNotAbout},
	}
}

func rewriteNotJust(groups []string) string {
	return "It includes " + strings.TrimSpace(groups[1]) + " and " + strings.TrimSpace(groups[2]) + groups[3]
}

func rewriteNotAbout(groups []string) string {
	return "It is about " + strings.TrimSpace(groups[2]) + groups[3]
}
