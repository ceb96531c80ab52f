package analysis

import "fmt"

// SortField specifies how to order the breakdowns.
type SortField string

const (
	// SortByCount orders by problem count, highest first.
	SortByCount SortField = "count"
	// SortByAlpha orders by rule id or path, A to Z.
	SortByAlpha SortField = "alpha"
	// SortBySeverity orders by error count, then warning count.
	SortBySeverity SortField = "severity"
)

// IsValid returns true if the sort field is valid.
func (s SortField) IsValid() bool {
	switch s {
	case SortByCount, SortByAlpha, SortBySeverity:
		return true
	default:
		return false
	}
}

// ParseSortField converts a string to a SortField. Empty means SortByCount.
func ParseSortField(s string) (SortField, error) {
	if s == "" {
		return SortByCount, nil
	}
	field := SortField(s)
	if !field.IsValid() {
		return "", fmt.Errorf("unknown sort field %q; must be one of: count, alpha, severity", s)
	}
	return field, nil
}

// Options configures Analyze.
type Options struct {
	// SortBy specifies how to order ByRule and ByFile.
	SortBy SortField
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{SortBy: SortByCount}
}
