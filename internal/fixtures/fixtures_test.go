package fixtures

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/adanyl0v/aggo-mock-api/internal/models"
)

func TestDefault_Issues(t *testing.T) {
	catalog := Default()

	want := []models.Issue{
		{
			ID:            "slow-page-speed",
			Title:         "Slow Page Load Speed",
			Description:   "Your homepage takes 4.8 seconds to load on mobile. Uncompressed hero images and render-blocking scripts are the main causes.",
			Severity:      models.SeverityCritical,
			Impact:        "High - 23% of mobile visitors leave before the page finishes loading",
			Fixable:       true,
			EstimatedTime: "2 min",
		},
		{
			ID:            "checkout-friction",
			Title:         "Checkout Friction Detected",
			Description:   "Shipping costs are revealed only at the last checkout step, where 68% of shoppers abandon their cart.",
			Severity:      models.SeverityCritical,
			Impact:        "High - an estimated $2,400 in monthly revenue is lost",
			Fixable:       true,
			EstimatedTime: "3 min",
		},
		{
			ID:            "missing-product-descriptions",
			Title:         "Missing Product Descriptions",
			Description:   "12 products have no description, which hurts search ranking and buyer confidence.",
			Severity:      models.SeverityWarning,
			Impact:        "Medium - lower organic traffic and conversion on affected products",
			Fixable:       true,
			EstimatedTime: "5 min",
		},
		{
			ID:            "missing-alt-text",
			Title:         "Images Missing Alt Text",
			Description:   "34 product images have no alt text, affecting accessibility and image search.",
			Severity:      models.SeverityInfo,
			Impact:        "Low - accessibility and image SEO",
			Fixable:       true,
			EstimatedTime: "1 min",
		},
	}
	if diff := cmp.Diff(want, catalog.Issues); diff != "" {
		t.Errorf("issues mismatch (-want +got):\n%s", diff)
	}

	for _, issue := range catalog.Issues {
		_, ok := catalog.Fix(issue.ID)
		assert.True(t, ok, "fix for %s", issue.ID)
	}
}

func TestCatalog_Results(t *testing.T) {
	catalog := Default()

	results := catalog.Results("test.myshopify.com")
	assert.Equal(t, "test.myshopify.com", results.StoreURL)
	assert.Equal(t, 72, results.OverallScore)
	assert.Len(t, results.Issues, 4)
	assert.Equal(t, models.ScanSummary{Critical: 2, Warning: 1, Info: 1, Total: 4}, results.Summary)

	results.Issues[0].Title = "mutated"
	assert.Equal(t, "Slow Page Load Speed", catalog.Issues[0].Title)
}

func TestCatalog_Reply(t *testing.T) {
	catalog := Default()

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"speed keyword", "Why is my store so SLOW?", catalog.Chat.Replies[0].Reply},
		{"word prefix", "people abandoned carts", catalog.Chat.Replies[1].Reply},
		{"first match wins", "fix the checkout", catalog.Chat.Replies[1].Reply},
		{"greeting", "hey there", catalog.Chat.Replies[4].Reply},
		{"no substring match", "this is nothing", catalog.Chat.DefaultReply},
		{"default", "what can you do", catalog.Chat.DefaultReply},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.Reply(tt.message))
		})
	}
}

func TestCatalog_Scripts(t *testing.T) {
	catalog := Default()

	steps, ok := catalog.Script("scan")
	require.True(t, ok)
	require.NotEmpty(t, steps)
	last := steps[len(steps)-1]
	assert.Equal(t, models.StateComplete, last.State)
	require.NotNil(t, last.Progress)
	assert.Equal(t, 100.0, *last.Progress)
	assert.Equal(t, 800*time.Millisecond, last.Delay())

	_, ok = catalog.Script("missing")
	assert.False(t, ok)

	assert.Len(t, catalog.TaskCards(), 4)
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{
			name: "no issues",
			yaml: "overall_score: 10\n",
			want: ErrNoIssues,
		},
		{
			name: "duplicate issue",
			yaml: "issues:\n  - {id: a, severity: info}\n  - {id: a, severity: info}\n",
			want: ErrDuplicateIssue,
		},
		{
			name: "invalid severity",
			yaml: "issues:\n  - {id: a, severity: urgent}\n",
			want: ErrInvalidSeverity,
		},
		{
			name: "fix for unknown issue",
			yaml: "issues:\n  - {id: a, severity: info}\nfixes:\n  b: {message: x}\n",
			want: ErrFixForUnknownIssue,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := Parse([]byte("issues: [oops"))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestStore_Watch(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, embeddedCatalog, 0o644))

	store, err := NewStore(zerolog.Nop(), path)
	require.NoError(t, err)
	require.Equal(t, 72, store.Catalog().OverallScore)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- store.Watch(ctx) }()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)

	broken := []byte("issues: [oops")
	require.NoError(t, os.WriteFile(path, broken, 0o644))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 72, store.Catalog().OverallScore)

	updated := strings.Replace(string(embeddedCatalog), "overall_score: 72", "overall_score: 91", 1)
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

	assert.Eventually(t, func() bool {
		return store.Catalog().OverallScore == 91
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestStore_WatchWithoutPath(t *testing.T) {
	store, err := NewStore(zerolog.Nop(), "")
	require.NoError(t, err)
	assert.NoError(t, store.Watch(context.Background()))
}
