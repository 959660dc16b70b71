package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/aggo-mock-api/internal/services"
)

type fixRequest struct {
	PreviewMode bool `json:"previewMode"`
}

type fixResponse struct {
	Success         bool   `json:"success"`
	IssueID         string `json:"issueId"`
	PreviewMode     bool   `json:"previewMode"`
	Message         string `json:"message"`
	EstimatedImpact string `json:"estimatedImpact"`
	FixApplied      bool   `json:"fixApplied"`
}

type fixAllRequest struct {
	IssueIDs []string `json:"issueIds"`
}

type fixAllResponse struct {
	Success              bool     `json:"success"`
	FixedIssues          []string `json:"fixedIssues"`
	TotalEstimatedImpact string   `json:"totalEstimatedImpact"`
}

func (h *handlerImpl) HandleFix(c *gin.Context) {
	var req fixRequest
	err := c.ShouldBindJSON(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		h.logger.Error().
			Err(err).
			Msg("failed to bind request body")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	issueID := c.Param("issueId")
	result, err := h.fixes.Fix(c.Request.Context(), services.FixParams{
		IssueID:     issueID,
		PreviewMode: req.PreviewMode,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("issue_id", issueID).
			Msg("failed to fix issue")
		switch {
		case errors.Is(err, services.ErrIssueNotFound):
			abort(c, newNotFoundError(services.ErrIssueNotFound.Error()))
		case errors.Is(err, services.ErrIssueNotFixable):
			abort(c, newConflictError(services.ErrIssueNotFixable.Error()))
		case isClientGone(err):
			c.Abort()
		default:
			abort(c, newInternalError())
		}
		return
	}

	c.JSON(http.StatusOK, fixResponse{
		Success:         true,
		IssueID:         result.IssueID,
		PreviewMode:     result.PreviewMode,
		Message:         result.Message,
		EstimatedImpact: result.EstimatedImpact,
		FixApplied:      result.FixApplied,
	})
}

func (h *handlerImpl) HandleGetPreview(c *gin.Context) {
	issueID := c.Param("issueId")

	preview, err := h.fixes.Preview(c.Request.Context(), issueID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("issue_id", issueID).
			Msg("failed to preview fix")
		switch {
		case errors.Is(err, services.ErrIssueNotFound):
			abort(c, newNotFoundError(services.ErrIssueNotFound.Error()))
		case errors.Is(err, services.ErrIssueNotFixable):
			abort(c, newConflictError(services.ErrIssueNotFixable.Error()))
		default:
			abort(c, newInternalError())
		}
		return
	}

	c.JSON(http.StatusOK, preview)
}

func (h *handlerImpl) HandleFixAll(c *gin.Context) {
	var req fixAllRequest
	err := c.ShouldBindJSON(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		h.logger.Error().
			Err(err).
			Msg("failed to bind request body")
		abort(c, newBadRequestError(services.ErrIssueIDsRequired.Error()))
		return
	}

	result, err := h.fixes.FixAll(c.Request.Context(), req.IssueIDs)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to fix all issues")
		switch {
		case errors.Is(err, services.ErrIssueIDsRequired):
			abort(c, newBadRequestError(services.ErrIssueIDsRequired.Error()))
		case isClientGone(err):
			c.Abort()
		default:
			abort(c, newInternalError())
		}
		return
	}

	c.JSON(http.StatusOK, fixAllResponse{
		Success:              true,
		FixedIssues:          result.FixedIssues,
		TotalEstimatedImpact: result.TotalEstimatedImpact,
	})
}
