package ingest

import (
	"strings"

	"golang.org/x/net/html"
)

// CleanHTML strips markup from a raw scraped string and returns plain text.
// Tags are removed, entities are decoded to their Unicode characters, and
// surrounding whitespace is trimmed. Case folding happens later, at
// tokenization. The function is total: malformed markup is stripped
// best-effort and never produces an error.
func CleanHTML(raw string) string {
	if raw == "" {
		return ""
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(raw))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// io.EOF or unrecoverable garbage; either way we keep
			// whatever text was collected so far.
			break
		}
		if tt == html.TextToken {
			b.Write(z.Text())
		}
	}

	return normalizeSpace(b.String())
}

// normalizeSpace converts non-breaking spaces (the decoded form of &nbsp;,
// common in scraped blog bodies) to plain spaces and trims the result.
func normalizeSpace(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.TrimSpace(s)
}
