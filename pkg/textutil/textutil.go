// ABOUTME: Text helpers shared across the module
// ABOUTME: Log sanitization for remote-supplied strings and HTML stripping

package textutil

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

// maxLogLength caps remote-supplied strings before they reach a log line.
const maxLogLength = 100

// SanitizeForLog strips control characters from a remote-supplied string
// and caps its length, so attacker-controlled values cannot forge or
// flood log lines.
func SanitizeForLog(s string) string {
	var b strings.Builder
	count := 0
	for _, r := range s {
		if unicode.IsControl(r) {
			continue
		}
		b.WriteRune(r)
		count++
		if count >= maxLogLength {
			break
		}
	}
	return b.String()
}

// StripHTML renders an HTML fragment as plain text with whitespace runs
// collapsed. A fragment that fails to parse is returned trimmed as-is.
func StripHTML(fragment string) string {
	if fragment == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}
	doc.Find("script, style").Remove()
	return CollapseWhitespace(doc.Text())
}

// CollapseWhitespace reduces every whitespace run to a single space and
// trims the ends.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
