package services

import (
	"context"
	"errors"
	"time"

	"github.com/adanyl0v/aggo-mock-api/internal/models"
)

var (
	ErrStoreURLRequired  = errors.New("store url is required")
	ErrScanIDRequired    = errors.New("scan id is required")
	ErrScanNotFound      = errors.New("scan not found")
	ErrScanAlreadyExists = errors.New("scan already exists")
	ErrIssueNotFound     = errors.New("issue not found")
	ErrIssueNotFixable   = errors.New("issue cannot be fixed automatically")
	ErrIssueIDsRequired  = errors.New("issue ids array is required")
	ErrMessageRequired   = errors.New("message is required")
	ErrScriptNotFound    = errors.New("script not found")
)

type ScanService interface {
	// Scan simulates a store diagnostic. It waits the configured scan
	// delay, records the scan and returns it.
	//
	// It returns ErrStoreURLRequired if storeURL is blank.
	Scan(ctx context.Context, storeURL string) (*models.Scan, error)

	// Diagnostic returns the scan with the given ID. Unknown IDs get
	// the default results with the current time, as the mock has
	// nothing better to say about them.
	//
	// It returns ErrScanIDRequired if scanID is blank.
	Diagnostic(ctx context.Context, scanID string) (*models.Scan, error)
}

type FixService interface {
	// Fix applies, or only previews, the canned fix for an issue after
	// the configured fix delay.
	//
	// It returns ErrIssueNotFound for an unknown issue and
	// ErrIssueNotFixable if the issue has no automatic fix.
	Fix(ctx context.Context, params FixParams) (*models.FixResult, error)

	// Preview returns the canned before/after preview of an issue fix.
	Preview(ctx context.Context, issueID string) (*models.Preview, error)

	// FixAll fixes every known fixable issue among issueIDs, keeping
	// request order and dropping duplicates. A nil slice means the
	// request carried no array and yields ErrIssueIDsRequired.
	FixAll(ctx context.Context, issueIDs []string) (*models.FixAllResult, error)
}

type ChatService interface {
	// Reply answers a chat message from the canned reply table.
	Reply(ctx context.Context, message string) (*models.ChatMessage, error)

	// Play replays a named agent script. The returned channel is
	// closed when the script ends or ctx is done.
	Play(ctx context.Context, script string) (<-chan models.ChatMessage, error)
}

// ScanRepository keeps scans so a scanId can be looked up later.
type ScanRepository interface {
	Save(ctx context.Context, scan *models.Scan) error
	// Get returns ErrScanNotFound if there is no scan with the given ID.
	Get(ctx context.Context, id string) (*models.Scan, error)
}

type FixParams struct {
	IssueID     string
	PreviewMode bool
}

// Delays are the artificial latencies of the mock endpoints.
type Delays struct {
	Scan   time.Duration
	Fix    time.Duration
	FixAll time.Duration
	Chat   time.Duration
}

// wait blocks for d or until ctx is done, whichever comes first.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
