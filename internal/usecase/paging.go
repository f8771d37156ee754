package usecase

const (
	defaultListLimit    = 10
	defaultSummaryLimit = 20
	maxListLimit        = 100
)

// clampLimit applies the per-entity default and the global ceiling. A
// non-positive limit selects the default rather than failing.
func clampLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}

func clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
