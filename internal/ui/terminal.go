package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/adanyl0v/aggo-mock-api/internal/models"
)

const progressBarWidth = 20

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	badgeStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
)

// SeverityColor is the terminal counterpart of SeverityBadgeClass.
func SeverityColor(severity models.Severity) lipgloss.Color {
	switch severity {
	case models.SeverityCritical:
		return lipgloss.Color("196")
	case models.SeverityWarning:
		return lipgloss.Color("214")
	case models.SeverityInfo:
		return lipgloss.Color("39")
	default:
		return lipgloss.Color("245")
	}
}

func SeverityBadge(severity models.Severity) string {
	return badgeStyle.
		Foreground(lipgloss.Color("0")).
		Background(SeverityColor(severity)).
		Render(strings.ToUpper(string(severity)))
}

// ProgressBar draws a fixed width bar for a clamped percentage.
func ProgressBar(value float64) string {
	percent := ClampPercent(value)
	filled := int(percent / 100 * progressBarWidth)
	return strings.Repeat("█", filled) +
		mutedStyle.Render(strings.Repeat("░", progressBarWidth-filled)) +
		fmt.Sprintf(" %3.0f%%", percent)
}

// RenderScan formats scan results, and the previews when given, for a terminal.
func RenderScan(scanID string, results models.ScanResults, previews map[string]*models.Preview) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Store diagnostic: " + results.StoreURL))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("scan " + scanID))
	b.WriteString("\n\n")
	b.WriteString("Score ")
	b.WriteString(ProgressBar(float64(results.OverallScore)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%d issues: %d critical, %d warning, %d info\n\n",
		results.Summary.Total, results.Summary.Critical,
		results.Summary.Warning, results.Summary.Info)

	for _, issue := range results.Issues {
		b.WriteString(SeverityBadge(issue.Severity))
		b.WriteString(" ")
		b.WriteString(titleStyle.Render(issue.Title))
		b.WriteString("\n  ")
		b.WriteString(issue.Description)
		b.WriteString("\n  ")
		b.WriteString(mutedStyle.Render(fmt.Sprintf("impact: %s | fix time: %s", issue.Impact, issue.EstimatedTime)))
		b.WriteString("\n")

		if preview, ok := previews[issue.ID]; ok && preview != nil {
			fmt.Fprintf(&b, "  before: %s\n  after:  %s\n", preview.Before, preview.After)
		}
		b.WriteString("\n")
	}

	return b.String()
}
