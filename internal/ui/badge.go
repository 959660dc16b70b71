// Package ui holds the presentation rules shared by the web front-end
// and the terminal client.
package ui

import "github.com/adanyl0v/aggo-mock-api/internal/models"

const (
	badgeCritical = "bg-red-100 text-red-800 border-red-200"
	badgeWarning  = "bg-yellow-100 text-yellow-800 border-yellow-200"
	badgeInfo     = "bg-blue-100 text-blue-800 border-blue-200"
	badgeDefault  = "bg-gray-100 text-gray-800 border-gray-200"
)

// SeverityBadgeClass returns the CSS classes of a severity badge.
func SeverityBadgeClass(severity models.Severity) string {
	switch severity {
	case models.SeverityCritical:
		return badgeCritical
	case models.SeverityWarning:
		return badgeWarning
	case models.SeverityInfo:
		return badgeInfo
	default:
		return badgeDefault
	}
}
