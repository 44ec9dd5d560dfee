// Package strings provides string manipulation utilities.
package strings

import (
	"strings"
)

// NormalizeTags cleans a tag list for display: inner whitespace is collapsed,
// empty entries are dropped and duplicates are removed case-insensitively,
// keeping the first spelling seen. Order is preserved.
//
//	NormalizeTags([]string{" Web  Dev", "web dev", "", "SaaS"})
//	// Returns: []string{"Web Dev", "SaaS"}
func NormalizeTags(values []string) []string {
	if values == nil {
		return nil
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		tag := strings.Join(strings.Fields(v), " ")
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, tag)
	}

	return result
}
