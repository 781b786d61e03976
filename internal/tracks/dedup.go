package tracks

import (
	"strings"

	"github.com/adilet/learnloop/internal/model"
)

// normalizeTitle collapses a title to its comparison form: trimmed and
// case-folded. Interior whitespace is preserved.
func normalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// dedupByTitle drops lessons whose normalized title was already seen,
// keeping the first occurrence. Order is otherwise preserved.
func dedupByTitle(lessons []model.Lesson) []model.Lesson {
	seen := make(map[string]bool, len(lessons))
	out := lessons[:0:0]
	for _, l := range lessons {
		key := normalizeTitle(l.Title)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, l)
	}
	return out
}
