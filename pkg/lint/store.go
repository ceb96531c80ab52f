package lint

import "github.com/samber/lo"

// FileReport holds every diagnostic reported for one file path.
type FileReport struct {
	// FilePath is the key under which the report is stored.
	FilePath string

	// Diagnostics are kept in the order they were added.
	Diagnostics []Diagnostic
}

// Stats captures aggregate counts for a store.
type Stats struct {
	// Files is the number of files with at least one diagnostic.
	Files int

	// Total is the number of diagnostics across all files.
	Total int

	// Errors is the number of error diagnostics.
	Errors int

	// Warnings is the number of warning diagnostics.
	Warnings int
}

// Store merges diagnostics from all tools, keyed by file path.
// A Store lives for a single run and is not safe for concurrent use.
type Store struct {
	files map[string]*FileReport
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{files: make(map[string]*FileReport)}
}

// GetOrCreate returns the report for path, creating it on first use.
func (s *Store) GetOrCreate(path string) *FileReport {
	if report, ok := s.files[path]; ok {
		return report
	}
	report := &FileReport{FilePath: path}
	s.files[path] = report
	return report
}

// Add appends each diagnostic to the report for its file path.
func (s *Store) Add(diags ...Diagnostic) {
	for _, diag := range diags {
		report := s.GetOrCreate(diag.FilePath)
		report.Diagnostics = append(report.Diagnostics, diag)
	}
}

// Report returns the report for path, or nil if nothing was reported for it.
func (s *Store) Report(path string) *FileReport {
	if s == nil {
		return nil
	}
	return s.files[path]
}

// Paths returns the file paths in the store in no particular order.
func (s *Store) Paths() []string {
	if s == nil {
		return nil
	}
	return lo.Keys(s.files)
}

// Len returns the number of files in the store.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.files)
}

// IsEmpty reports whether no diagnostics were collected.
func (s *Store) IsEmpty() bool {
	return s.Len() == 0
}

// Total returns the number of diagnostics across all files.
func (s *Store) Total() int {
	return s.Stats().Total
}

// Stats computes aggregate counts by severity.
func (s *Store) Stats() Stats {
	var stats Stats
	if s == nil {
		return stats
	}

	for _, report := range s.files {
		if len(report.Diagnostics) == 0 {
			continue
		}
		stats.Files++
		stats.Total += len(report.Diagnostics)
		stats.Errors += lo.CountBy(report.Diagnostics, func(diag Diagnostic) bool {
			return diag.IsError()
		})
	}
	stats.Warnings = stats.Total - stats.Errors

	return stats
}
