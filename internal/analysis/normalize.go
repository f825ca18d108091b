package analysis

import "strings"

// NormalizeTags maps foreign-vocabulary tags to their canonical form.
// Lookup is case-insensitive; unmapped tags pass through trimmed but
// otherwise untouched. Order is preserved and no deduplication happens
// here, that is enforced upstream. Normalizing an already-canonical list
// returns it unchanged.
func NormalizeTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if canonical, ok := tagTranslations[strings.ToLower(tag)]; ok {
			tag = canonical
		}
		normalized = append(normalized, tag)
	}
	return normalized
}
