package analysis

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	doubleQuotePattern = regexp.MustCompile(`"([^"\n]{1,200})"`)
	guillemetPattern   = regexp.MustCompile(`[«“]([^»”\n]{1,200})[»”]`)

	// Label-prefixed transcriptions captured without quotes, e.g.
	// "il cartello dice CHIUSO" or "the sign says OPEN".
	labelSaysPattern = regexp.MustCompile(`(?i)(?:il cartello|l'insegna|l'etichetta|the sign|the label)\s+(?:dice|recita|riporta|says|reads)\s*:?\s*([^".!?\n]{1,200})`)
	textReadsPattern = regexp.MustCompile(`(?i)(?:c'è scritto|si legge la scritta|the text reads|the writing says)\s*:?\s*([^".!?\n]{1,200})`)

	digitFacePattern = regexp.MustCompile(`(\d+)\s+(?:person[ae]|volt[oi]|facc[ea]|people|persons?|faces?)`)
	wordFacePattern  = regexp.MustCompile(`\b(uno|una|un|due|tre|quattro|cinque|sei|sette|otto|nove|dieci|one|two|three|four|five|six|seven|eight|nine|ten)\s+(?:person[ae]|volt[oi]|facc[ea]|people|persons?|faces?)\b`)

	sentenceEndPattern = regexp.MustCompile(`[.!?]`)
)

// Extract mines cleaned prose for the structured record fields. It fills
// everything except provenance metadata; the result is total even for
// empty input.
func Extract(prose string) *AnalysisRecord {
	description := strings.TrimSpace(prose)
	if description == "" {
		description = PlaceholderDescription
	}
	description = truncateAtRuneBoundary(description, maxDescriptionChars)

	lower := strings.ToLower(description)

	record := &AnalysisRecord{
		DescriptionFull:  description,
		DescriptionShort: shortDescription(description),
		ExtractedText:    extractVisibleText(description, lower),
		DetectedObjects:  detectObjects(lower),
		DetectedFaces:    countFaces(lower),
		SceneCategory:    classifyScene(lower),
	}
	record.Tags = assembleTags(record.SceneCategory, record.DetectedObjects, lower)
	record.Confidence = scoreConfidence(record)
	return record
}

// shortDescription returns the first sentence, truncated to the short cap.
func shortDescription(description string) string {
	short := description
	if loc := sentenceEndPattern.FindStringIndex(description); loc != nil {
		short = strings.TrimSpace(description[:loc[1]])
	}
	if short == "" {
		short = PlaceholderDescription
	}
	return truncateAtRuneBoundary(short, maxShortDescriptionChars)
}

// truncateAtRuneBoundary caps s at max bytes without splitting a
// multi-byte rune, backing up to the start of the straddling character.
func truncateAtRuneBoundary(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

// extractVisibleText collects quoted spans and label-prefixed
// transcriptions in order of appearance. An explicit "no text" statement
// wins over everything.
func extractVisibleText(description, lower string) []string {
	for _, phrase := range textNegationPhrases {
		if strings.Contains(lower, phrase) {
			return nil
		}
	}

	var texts []string
	seen := map[string]bool{}
	add := func(candidate string) {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" || seen[candidate] || len(texts) >= maxExtractedText {
			return
		}
		seen[candidate] = true
		texts = append(texts, candidate)
	}

	for _, pattern := range []*regexp.Regexp{doubleQuotePattern, guillemetPattern, labelSaysPattern, textReadsPattern} {
		for _, m := range pattern.FindAllStringSubmatch(description, -1) {
			add(m[1])
		}
	}
	return texts
}

// classifyScene tests the category keyword sets in priority order against
// the lowercased prose; the first set with a whole-word hit wins.
func classifyScene(lower string) string {
	for _, set := range categoryPriority {
		for _, keyword := range set.keywords {
			if containsWholeWord(lower, keyword) {
				return set.category
			}
		}
	}
	return CategoryOther
}

// detectObjects scans the bilingual object table in order, deduplicating on
// the canonical name and stopping once the cap is reached.
func detectObjects(lower string) []string {
	objects := []string{}
	seen := map[string]bool{}
	for _, entry := range objectTable {
		if seen[entry.canonical] {
			continue
		}
		if containsWholeWord(lower, entry.keyword) {
			seen[entry.canonical] = true
			objects = append(objects, entry.canonical)
			if len(objects) >= maxObjects {
				break
			}
		}
	}
	return objects
}

// countFaces tries a digit pattern first, then number words anchored to
// person/face nouns. An explicit negation always forces zero.
func countFaces(lower string) int {
	for _, phrase := range faceNegationPhrases {
		if strings.Contains(lower, phrase) {
			return 0
		}
	}

	if m := digitFacePattern.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 0 {
			return n
		}
	}

	if m := wordFacePattern.FindStringSubmatch(lower); m != nil {
		if n, ok := numberWords[m[1]]; ok {
			return n
		}
	}

	return 0
}

// assembleTags builds the tag list: category first, then up to three
// detected objects, then semantic keyword hits, all dedup-checked, capped
// at eight.
func assembleTags(category string, objects []string, lower string) []string {
	tags := []string{}
	seen := map[string]bool{}
	add := func(tag string) bool {
		if tag == "" || seen[tag] || len(tags) >= maxTags {
			return len(tags) < maxTags
		}
		seen[tag] = true
		tags = append(tags, tag)
		return true
	}

	if category != CategoryOther {
		add(category)
	}

	for i, object := range objects {
		if i >= 3 {
			break
		}
		add(object)
	}

	for _, entry := range semanticTagTable {
		if len(tags) >= maxTags {
			break
		}
		if seen[entry.canonical] {
			continue
		}
		if containsWholeWord(lower, entry.keyword) {
			add(entry.canonical)
		}
	}

	return tags
}

// scoreConfidence is an additive completeness heuristic clamped to the
// cap. It is not a calibrated probability.
func scoreConfidence(record *AnalysisRecord) float64 {
	score := 0.5
	if len(record.DescriptionFull) > 300 {
		score += 0.1
	}
	if len(record.DescriptionFull) > 600 {
		score += 0.1
	}
	if len(record.DetectedObjects) >= 5 {
		score += 0.1
	}
	if record.DetectedFaces > 0 {
		score += 0.05
	}
	if len(record.ExtractedText) > 0 {
		score += 0.05
	}
	if len(record.Tags) >= 4 {
		score += 0.05
	}
	if score > maxConfidence {
		score = maxConfidence
	}
	return score
}

// containsWholeWord reports whether word occurs in text bounded by
// non-letter, non-digit runes. regexp's \b is ASCII-only and misfires on
// accented Italian keywords, so the boundary check is done by hand.
// Multi-word keywords are matched as phrases with the same boundary rule.
func containsWholeWord(text, word string) bool {
	if word == "" {
		return false
	}
	start := 0
	for {
		idx := strings.Index(text[start:], word)
		if idx < 0 {
			return false
		}
		begin := start + idx
		end := begin + len(word)
		if boundaryBefore(text, begin) && boundaryAfter(text, end) {
			return true
		}
		start = begin + 1
	}
}

func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func boundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
