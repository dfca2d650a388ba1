package handlers

import (
	"errors"
	"net/http"

	"statement-transformer/internal/dto"
	apierrors "statement-transformer/internal/errors"
	"statement-transformer/internal/services"

	"github.com/labstack/echo/v4"
)

// ActivityHandler serves the audit trail of statement uploads
type ActivityHandler struct {
	auditService services.AuditServiceInterface
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(auditService services.AuditServiceInterface) *ActivityHandler {
	return &ActivityHandler{auditService: auditService}
}

// GetStatementActivity lists the audit trail of one upload, newest first
// @Summary Statement activity
// @Description Transformations, storage and views recorded for an upload
// @Tags Statements
// @Produce json
// @Param uploadId path string true "Merchant statement upload ID"
// @Param limit query int false "Results limit (max 1000)" default(10)
// @Param offset query int false "Results offset" default(0)
// @Success 200 {object} SuccessResponse{data=dto.AuditLogsListResponse} "Audit trail"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_002 - Missing upload ID"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /statements/activity/{uploadId} [get]
func (h *ActivityHandler) GetStatementActivity(c echo.Context) error {
	uploadID := c.Param("uploadId")
	offset := getIntParam(c, "offset", 0)
	limit := getIntParam(c, "limit", 10)

	if offset < 0 {
		return SendError(c, apierrors.ValidationOutOfRange, apierrors.WithDetails("offset must be greater than or equal to 0"))
	}

	logs, total, err := h.auditService.GetStatementActivity(c.Request().Context(), uploadID, offset, limit)
	if err != nil {
		if errors.Is(err, services.ErrInvalidUploadID) {
			return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails("uploadId: is required"))
		}
		return SendSystemError(c, err)
	}

	entries := make([]dto.AuditLogResponse, len(logs))
	for i, log := range logs {
		entries[i] = dto.NewAuditLogResponse(log)
	}

	if limit <= 0 || limit > 1000 {
		limit = 10
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.AuditLogsListResponse{
			Logs:   entries,
			Total:  total,
			Offset: offset,
			Limit:  limit,
		},
	})
}
