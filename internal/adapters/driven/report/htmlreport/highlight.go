package htmlreport

import (
	"html"
	"strings"
)

// DefaultHighlightTerms are marked in comment fields when no terms are
// configured. The spaces around "ai" keep it from matching inside words.
var DefaultHighlightTerms = []string{
	"machine learning",
	"algorithm",
	" ai ",
	"artificial intelligence",
	"diagnostic",
	"diagnosis",
}

const (
	highlightOpen  = "<b style='color:red;'>"
	highlightClose = "</b>"
)

// Highlight wraps every occurrence of each term in a highlight marker.
//
// The text is scanned left to right; at each position the first listed
// term that matches is wrapped and the scan continues after it, so an
// occurrence is never wrapped twice. Matching is case-sensitive and empty
// terms are ignored. The text itself is not escaped.
func Highlight(text string, terms []string) string {
	return highlight(text, terms, func(s string) string { return s })
}

// highlightEscaped highlights like Highlight but escapes every span of the
// text, matched or not, so the result is safe HTML whose only markup is
// the highlight markers. Terms are matched against the unescaped text and
// can never split an entity.
func highlightEscaped(text string, terms []string) string {
	return highlight(text, terms, html.EscapeString)
}

func highlight(text string, terms []string, escape func(string) string) string {
	if text == "" || len(terms) == 0 {
		return escape(text)
	}

	var sb strings.Builder
	start, i := 0, 0
	for i < len(text) {
		term := matchAt(text[i:], terms)
		if term == "" {
			i++
			continue
		}
		sb.WriteString(escape(text[start:i]))
		sb.WriteString(highlightOpen)
		sb.WriteString(escape(term))
		sb.WriteString(highlightClose)
		i += len(term)
		start = i
	}
	sb.WriteString(escape(text[start:]))
	return sb.String()
}

func matchAt(s string, terms []string) string {
	for _, term := range terms {
		if term != "" && strings.HasPrefix(s, term) {
			return term
		}
	}
	return ""
}
