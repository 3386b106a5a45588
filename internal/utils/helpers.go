package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// TruncateString truncates a string to the specified number of characters and adds "..." if necessary
func TruncateString(s string, length int) string {
	if utf8.RuneCountInString(s) <= length {
		return s
	}
	if length <= 3 {
		return string([]rune(s)[:length])
	}
	return string([]rune(s)[:length-3]) + "..."
}

// PlainText returns the readable text of a job detail. Details copied from job boards often
// carry HTML markup; those are flattened to text, one line per block element.
func PlainText(detail string) string {
	if !strings.ContainsAny(detail, "<>") {
		return strings.TrimSpace(detail)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(detail))
	if err != nil {
		return strings.TrimSpace(detail)
	}

	// Break lines at block boundaries before extracting text
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("p, li, div, h1, h2, h3, h4, tr").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	var lines []string
	for _, line := range strings.Split(doc.Text(), "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
