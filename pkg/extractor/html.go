/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: html.go
Description: HTML log-capture support for the extractor. Android Studio and
bugreport viewers export logcat captures as HTML; this strips the markup with
goquery so the plain-text line scan sees the same logcat conventions.
*/

package extractor

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// LooksLikeHTML reports whether a capture starts with an HTML document
// marker, after leading whitespace.
func LooksLikeHTML(text string) bool {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)
	return strings.HasPrefix(lower, "<!doctype html") || strings.HasPrefix(lower, "<html")
}

// FromHTML recovers plain logcat text from an HTML log export. Preformatted
// blocks are preferred since exporters keep line structure there; otherwise
// the document text is used as-is.
func FromHTML(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML log capture: %w", err)
	}

	if pre := doc.Find("pre"); pre.Length() > 0 {
		var parts []string
		pre.Each(func(_ int, s *goquery.Selection) {
			parts = append(parts, s.Text())
		})
		return strings.Join(parts, "\n"), nil
	}

	return doc.Text(), nil
}
