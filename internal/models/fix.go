package models

type FixResult struct {
	IssueID         string
	PreviewMode     bool
	Message         string
	EstimatedImpact string
	FixApplied      bool
}

type FixAllResult struct {
	FixedIssues          []string
	TotalEstimatedImpact string
}

type PreviewChange struct {
	Element string `json:"element" yaml:"element"`
	Before  string `json:"before" yaml:"before"`
	After   string `json:"after" yaml:"after"`
}

type Preview struct {
	IssueID string          `json:"issueId" yaml:"-"`
	Title   string          `json:"title" yaml:"title"`
	Before  string          `json:"before" yaml:"before"`
	After   string          `json:"after" yaml:"after"`
	Changes []PreviewChange `json:"changes" yaml:"changes"`
}
