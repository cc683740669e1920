// Package sanitize screens free-form text against a denylist of
// shell/file/code-execution patterns before it is handed to anything that
// might interpret it.
package sanitize

import (
	"fmt"
	"regexp"
	"strings"
)

// denylist holds the fixed dangerous-pattern expressions. Callers can extend
// the set per call but never shrink it.
var denylist = []string{
	`\bimport\b`, `\bexec\b`, `\beval\b`, `\bsystem\(`, `\bos\.`,
	`\bsubprocess\.`, `\brm\s+-rf\b`, `\brmdir\b`, `\bdel\b`,
	`\bopen\(`, `\bwrite\(`, `\bread\(`, `\bchmod\b`, `\bchown\b`,
}

// Sanitize scans text case-insensitively against the built-in denylist plus
// any extra keywords. Extra keywords are regex-escaped so the keyword list
// itself cannot inject patterns.
//
// On the first match it returns an empty string and a diagnostic naming the
// offending text and the matched pattern. On no match it returns the text
// unmodified and an empty diagnostic.
func Sanitize(text string, extra ...string) (string, string) {
	patterns := denylist
	if len(extra) > 0 {
		patterns = make([]string, 0, len(denylist)+len(extra))
		patterns = append(patterns, denylist...)
		for _, keyword := range extra {
			if keyword == "" {
				continue
			}
			patterns = append(patterns, regexp.QuoteMeta(keyword))
		}
	}

	combined := regexp.MustCompile(`(?i)` + strings.Join(patterns, "|"))
	if match := combined.FindString(text); match != "" {
		return "", fmt.Sprintf("blocked potentially dangerous input: %q matches keyword %q", text, match)
	}
	return text, ""
}
