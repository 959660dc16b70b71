package v1

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/aggo-mock-api/internal/models"
	"github.com/adanyl0v/aggo-mock-api/internal/services"
)

type scanRequest struct {
	StoreURL string `json:"storeUrl"`
}

type scanResponse struct {
	Success  bool               `json:"success"`
	StoreURL string             `json:"storeUrl"`
	ScanID   string             `json:"scanId"`
	Results  models.ScanResults `json:"results"`
}

type diagnosticResponse struct {
	ScanID    string             `json:"scanId"`
	Results   models.ScanResults `json:"results"`
	Timestamp time.Time          `json:"timestamp"`
}

func (h *handlerImpl) HandleScan(c *gin.Context) {
	var req scanRequest
	err := c.ShouldBindJSON(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		h.logger.Error().
			Err(err).
			Msg("failed to bind request body")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	scan, err := h.scans.Scan(c.Request.Context(), req.StoreURL)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to scan store")
		switch {
		case errors.Is(err, services.ErrStoreURLRequired):
			abort(c, newBadRequestError(services.ErrStoreURLRequired.Error()))
		case isClientGone(err):
			c.Abort()
		default:
			abort(c, newInternalError())
		}
		return
	}

	c.JSON(http.StatusOK, scanResponse{
		Success:  true,
		StoreURL: scan.StoreURL,
		ScanID:   scan.ID,
		Results:  scan.Results,
	})
}

func (h *handlerImpl) HandleGetDiagnostic(c *gin.Context) {
	scanID := c.Param("scanId")

	scan, err := h.scans.Diagnostic(c.Request.Context(), scanID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("scan_id", scanID).
			Msg("failed to get diagnostic")
		switch {
		case errors.Is(err, services.ErrScanIDRequired):
			abort(c, newBadRequestError(services.ErrScanIDRequired.Error()))
		case isClientGone(err):
			c.Abort()
		default:
			abort(c, newInternalError())
		}
		return
	}

	c.JSON(http.StatusOK, diagnosticResponse{
		ScanID:    scan.ID,
		Results:   scan.Results,
		Timestamp: scan.CreatedAt,
	})
}
