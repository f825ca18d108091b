package analysis

import (
	"regexp"
	"strings"
)

// Vision models wrap their replies in markdown even when asked not to.
// Clean strips the markup in a fixed order so the extractor sees plain
// continuous prose. Each stage is idempotent; the order matters because
// emphasis markers must go before line handling and line handling before
// whitespace collapsing.
var (
	boldItalicPattern = regexp.MustCompile(`\*\*\*(.+?)\*\*\*`)
	boldPattern       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern     = regexp.MustCompile(`\*(.+?)\*`)
	underlinePattern  = regexp.MustCompile(`__(.+?)__`)
	altItalicPattern  = regexp.MustCompile(`_(.+?)_`)
	inlineCodePattern = regexp.MustCompile("`(.+?)`")
	headingPattern    = regexp.MustCompile(`(?m)^#{1,6}\s*`)
	// Short numbered label-only lines ending in a colon, e.g. "1. Oggetti:".
	sectionLabelPattern = regexp.MustCompile(`(?m)^\s*\d+[.)]\s*[^\n:]{0,40}:\s*$`)
	bulletPattern       = regexp.MustCompile(`(?m)^\s*[-*•]\s+`)
	lineBreakPattern    = regexp.MustCompile(`\s*\n+\s*`)
	multiSpacePattern   = regexp.MustCompile(`\s{2,}`)
)

// Clean converts raw model output into continuous prose.
func Clean(raw string) string {
	text := raw

	text = boldItalicPattern.ReplaceAllString(text, "$1")
	text = boldPattern.ReplaceAllString(text, "$1")
	text = italicPattern.ReplaceAllString(text, "$1")

	text = underlinePattern.ReplaceAllString(text, "$1")
	text = altItalicPattern.ReplaceAllString(text, "$1")

	text = inlineCodePattern.ReplaceAllString(text, "$1")

	text = headingPattern.ReplaceAllString(text, "")
	text = sectionLabelPattern.ReplaceAllString(text, "")
	text = bulletPattern.ReplaceAllString(text, "")

	text = lineBreakPattern.ReplaceAllString(text, " ")
	text = multiSpacePattern.ReplaceAllString(text, " ")

	text = strings.TrimSpace(text)
	text = strings.Trim(text, ":- ")
	return strings.TrimSpace(text)
}
