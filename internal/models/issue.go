package models

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityWarning, SeverityInfo:
		return true
	}
	return false
}

type Issue struct {
	ID            string   `json:"id" yaml:"id"`
	Title         string   `json:"title" yaml:"title"`
	Description   string   `json:"description" yaml:"description"`
	Severity      Severity `json:"severity" yaml:"severity"`
	Impact        string   `json:"impact" yaml:"impact"`
	Fixable       bool     `json:"fixable" yaml:"fixable"`
	EstimatedTime string   `json:"estimatedTime" yaml:"estimated_time"`
}
