package ui

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adanyl0v/aggo-mock-api/internal/models"
)

func TestSeverityBadgeClass(t *testing.T) {
	tests := []struct {
		severity models.Severity
		want     string
	}{
		{models.SeverityCritical, "bg-red-100 text-red-800 border-red-200"},
		{models.SeverityWarning, "bg-yellow-100 text-yellow-800 border-yellow-200"},
		{models.SeverityInfo, "bg-blue-100 text-blue-800 border-blue-200"},
		{"", "bg-gray-100 text-gray-800 border-gray-200"},
		{"urgent", "bg-gray-100 text-gray-800 border-gray-200"},
	}
	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			assert.Equal(t, tt.want, SeverityBadgeClass(tt.severity))
		})
	}
}

func TestClampPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-10, 0},
		{0, 0},
		{42.5, 42.5},
		{100, 100},
		{150, 100},
		{math.Inf(1), 100},
		{math.Inf(-1), 0},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampPercent(tt.in), "ClampPercent(%v)", tt.in)
	}
}

func TestProgressWidth(t *testing.T) {
	assert.Equal(t, "0%", ProgressWidth(-10))
	assert.Equal(t, "100%", ProgressWidth(150))
	assert.Equal(t, "42.5%", ProgressWidth(42.5))
}

func TestSeverityColor(t *testing.T) {
	assert.NotEqual(t, SeverityColor(models.SeverityCritical), SeverityColor(models.SeverityInfo))
	assert.Equal(t, SeverityColor("bogus"), SeverityColor(""))
}

func TestProgressBar(t *testing.T) {
	full := ProgressBar(150)
	assert.True(t, strings.HasPrefix(full, strings.Repeat("█", progressBarWidth)))
	assert.True(t, strings.HasSuffix(full, " 100%"))
	assert.NotContains(t, ProgressBar(-10), "█")
	assert.Contains(t, ProgressBar(-10), "  0%")
}

func TestRenderScan(t *testing.T) {
	results := models.ScanResults{
		StoreURL:     "test.myshopify.com",
		OverallScore: 72,
		Issues: []models.Issue{
			{ID: "a", Title: "Slow", Severity: models.SeverityCritical, Impact: "High", EstimatedTime: "2 min"},
			{ID: "b", Title: "Alt text", Severity: models.SeverityInfo, Impact: "Low", EstimatedTime: "1 min"},
		},
	}
	results.Summary = models.Summarize(results.Issues)

	out := RenderScan("scan_1", results, map[string]*models.Preview{
		"a": {Before: "4.8s", After: "1.9s"},
	})

	assert.Contains(t, out, "test.myshopify.com")
	assert.Contains(t, out, "scan_1")
	assert.Contains(t, out, "2 issues: 1 critical, 0 warning, 1 info")
	assert.Contains(t, out, "Slow")
	assert.Contains(t, out, "before: 4.8s")
	assert.Equal(t, 1, strings.Count(out, "before:"))
}
