package models

import "time"

type ScanSummary struct {
	Critical int `json:"critical"`
	Warning  int `json:"warning"`
	Info     int `json:"info"`
	Total    int `json:"total"`
}

type ScanResults struct {
	StoreURL     string      `json:"storeUrl"`
	OverallScore int         `json:"overallScore"`
	Issues       []Issue     `json:"issues"`
	Summary      ScanSummary `json:"summary"`
}

// Scan is the record a scanId refers to.
type Scan struct {
	ID        string
	StoreURL  string
	Results   ScanResults
	CreatedAt time.Time
}

func Summarize(issues []Issue) ScanSummary {
	summary := ScanSummary{Total: len(issues)}
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityCritical:
			summary.Critical++
		case SeverityWarning:
			summary.Warning++
		case SeverityInfo:
			summary.Info++
		}
	}
	return summary
}
