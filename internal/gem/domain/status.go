package gem

import "strings"

// Lifecycle statuses kept after cleaning.
const (
	StatusOperating       = "operating"
	StatusConstruction    = "construction"
	StatusPreConstruction = "pre-construction"
	StatusAnnounced       = "announced"
)

// KeepStatuses is the fixed keep-list applied after status normalization.
var KeepStatuses = []string{
	StatusOperating,
	StatusConstruction,
	StatusPreConstruction,
	StatusAnnounced,
}

// NormalizeStatus trims, lowercases and underscores a raw GEM status value.
func NormalizeStatus(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	return strings.ReplaceAll(s, " ", "_")
}

// StatusKept reports whether a normalized status is in the keep-list.
func StatusKept(status string) bool {
	for _, keep := range KeepStatuses {
		if status == keep {
			return true
		}
	}
	return false
}
