package knp

import (
	"strings"

	"golang.org/x/text/width"
)

// Normalize prepares raw text for the Juman++/KNP pipeline: surrounding
// whitespace is stripped, line breaks collapse to nothing (the pipeline is
// fed one sentence per line) and halfwidth characters are widened to their
// fullwidth forms, which is what the analyzers' dictionaries expect.
func Normalize(text string) string {
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.ReplaceAll(text, "\n", "")
	return width.Widen.String(text)
}
