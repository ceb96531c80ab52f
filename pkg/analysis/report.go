package analysis

// Report contains the per-rule and per-file views of a store.
type Report struct {
	ByRule []RuleAnalysis `json:"byRule"`
	ByFile []FileAnalysis `json:"byFile"`
	Totals Totals         `json:"totals"`
}

// Totals contains aggregate counts for the report.
type Totals struct {
	Files    int `json:"files"`
	Rules    int `json:"rules"`
	Problems int `json:"problems"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// RuleAnalysis aggregates the diagnostics one tool reported for one rule.
type RuleAnalysis struct {
	RuleID   string   `json:"ruleId"`
	Source   string   `json:"source"`
	Problems int      `json:"problems"`
	Errors   int      `json:"errors"`
	Warnings int      `json:"warnings"`
	Files    []string `json:"files"`
}

// FileAnalysis aggregates the diagnostics reported for one file.
type FileAnalysis struct {
	Path     string   `json:"path"`
	Problems int      `json:"problems"`
	Errors   int      `json:"errors"`
	Warnings int      `json:"warnings"`
	Rules    []string `json:"rules"`
}
