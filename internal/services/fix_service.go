package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/aggo-mock-api/internal/fixtures"
	"github.com/adanyl0v/aggo-mock-api/internal/models"
)

const (
	fixAppliedMessage = "Fix applied successfully"
	previewMessage    = "Preview generated"
)

type fixServiceImpl struct {
	logger      zerolog.Logger
	fixtures    *fixtures.Store
	fixDelay    time.Duration
	fixAllDelay time.Duration
}

func NewFixService(
	logger zerolog.Logger,
	fixtureStore *fixtures.Store,
	fixDelay time.Duration,
	fixAllDelay time.Duration,
) FixService {
	return &fixServiceImpl{
		logger:      logger,
		fixtures:    fixtureStore,
		fixDelay:    fixDelay,
		fixAllDelay: fixAllDelay,
	}
}

func (s *fixServiceImpl) Fix(ctx context.Context, params FixParams) (*models.FixResult, error) {
	catalog := s.fixtures.Catalog()
	fix, err := fixFor(catalog, params.IssueID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("issue_id", params.IssueID).
			Msg("cannot fix issue")
		return nil, err
	}

	err = wait(ctx, s.fixDelay)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("issue_id", params.IssueID).
			Msg("fix interrupted")
		return nil, err
	}

	result := &models.FixResult{
		IssueID:         params.IssueID,
		PreviewMode:     params.PreviewMode,
		Message:         fixAppliedMessage + ". " + fix.Message,
		EstimatedImpact: fix.EstimatedImpact,
		FixApplied:      !params.PreviewMode,
	}
	if params.PreviewMode {
		result.Message = previewMessage + ". " + fix.Message
	}

	s.logger.Info().
		Str("issue_id", params.IssueID).
		Bool("preview_mode", params.PreviewMode).
		Msg("fixed issue")
	return result, nil
}

func (s *fixServiceImpl) Preview(_ context.Context, issueID string) (*models.Preview, error) {
	fix, err := fixFor(s.fixtures.Catalog(), issueID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("issue_id", issueID).
			Msg("cannot preview issue")
		return nil, err
	}

	preview := fix.Preview
	preview.IssueID = issueID
	preview.Changes = append([]models.PreviewChange(nil), fix.Preview.Changes...)

	s.logger.Info().
		Str("issue_id", issueID).
		Msg("previewed fix")
	return &preview, nil
}

func (s *fixServiceImpl) FixAll(ctx context.Context, issueIDs []string) (*models.FixAllResult, error) {
	if issueIDs == nil {
		return nil, ErrIssueIDsRequired
	}

	catalog := s.fixtures.Catalog()
	fixed := make([]string, 0, len(issueIDs))
	seen := make(map[string]struct{}, len(issueIDs))
	totalPercent := 0
	for _, id := range issueIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		fix, err := fixFor(catalog, id)
		if err != nil {
			s.logger.Warn().
				Err(err).
				Str("issue_id", id).
				Msg("skipping issue")
			continue
		}
		fixed = append(fixed, id)
		totalPercent += fix.ImpactPercent
	}

	err := wait(ctx, s.fixAllDelay)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Msg("fix all interrupted")
		return nil, err
	}

	s.logger.Info().
		Int("requested", len(issueIDs)).
		Int("fixed", len(fixed)).
		Msg("fixed all issues")
	return &models.FixAllResult{
		FixedIssues:          fixed,
		TotalEstimatedImpact: fmt.Sprintf("+%d%% conversion rate", totalPercent),
	}, nil
}

func fixFor(catalog *fixtures.Catalog, issueID string) (fixtures.Fix, error) {
	issue, ok := catalog.Issue(issueID)
	if !ok {
		return fixtures.Fix{}, ErrIssueNotFound
	}

	fix, ok := catalog.Fix(issueID)
	if !ok || !issue.Fixable {
		return fixtures.Fix{}, ErrIssueNotFixable
	}
	return fix, nil
}
