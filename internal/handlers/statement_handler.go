package handlers

import (
	"context"
	"errors"
	"net/http"

	"statement-transformer/internal/dto"
	apierrors "statement-transformer/internal/errors"
	"statement-transformer/internal/models"
	"statement-transformer/internal/repositories"
	"statement-transformer/internal/services"
	"statement-transformer/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// StatementHandler handles statement transformation and retrieval requests
type StatementHandler struct {
	statementService services.StatementServiceInterface
}

// NewStatementHandler creates a new statement handler
func NewStatementHandler(statementService services.StatementServiceInterface) *StatementHandler {
	return &StatementHandler{
		statementService: statementService,
	}
}

// StatementMeta accompanies a transformed statement when it was stored
type StatementMeta struct {
	ID *uuid.UUID `json:"id,omitempty"`
}

// TransformStatement transforms one extracted statement
// @Summary Transform an extracted statement
// @Description Aggregates extracted fee rows into canonical buckets and reconciles them against the header totals
// @Tags Statements
// @Accept json
// @Produce json
// @Param request body dto.TransformStatementRequest true "Extracted statement"
// @Success 200 {object} SuccessResponse{data=models.StatementView} "Transformed statement"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Unknown category tag"
// @Failure 409 {object} errors.ErrorResponse "STATEMENT_003 - Upload already stored"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /statements/transform [post]
func (h *StatementHandler) TransformStatement(c echo.Context) error {
	var req dto.TransformStatementRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	result, err := h.statementService.Transform(c.Request().Context(), req.ToExtractedStatement(), requestInfo(c))
	if err != nil {
		return h.handleServiceError(c, err)
	}

	response := SuccessResponse{Data: result.Statement}
	if result.Record != nil {
		response.Meta = StatementMeta{ID: &result.Record.ID}
	}

	return c.JSON(http.StatusOK, response)
}

// TransformBatch transforms several extracted statements concurrently
// @Summary Transform a batch of extracted statements
// @Description Each statement succeeds or fails on its own; results keep request order
// @Tags Statements
// @Accept json
// @Produce json
// @Param request body dto.TransformBatchRequest true "Extracted statements"
// @Success 200 {object} dto.TransformBatchResponse "Batch results"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 413 {object} errors.ErrorResponse "VALIDATION_006 - Batch too large"
// @Failure 408 {object} errors.ErrorResponse "SYSTEM_007 - Request canceled"
// @Router /statements/transform/batch [post]
func (h *StatementHandler) TransformBatch(c echo.Context) error {
	var req dto.TransformBatchRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	statements := make([]models.ExtractedStatement, len(req.Statements))
	for i := range req.Statements {
		statements[i] = req.Statements[i].ToExtractedStatement()
	}

	outcomes, err := h.statementService.TransformBatch(c.Request().Context(), statements, requestInfo(c))
	if err != nil {
		return h.handleServiceError(c, err)
	}

	response := dto.TransformBatchResponse{Results: make([]dto.BatchItemResult, len(outcomes))}
	for i, outcome := range outcomes {
		item := dto.BatchItemResult{
			Index:    outcome.Index,
			UploadID: req.Statements[outcome.Index].MerchantStatementUploadID,
		}

		if outcome.Err != nil {
			item.Error = batchErrorMessage(outcome.Err)
			response.Failed++
		} else {
			item.Statement = outcome.Result.Statement
			if outcome.Result.Record != nil {
				item.RecordID = &outcome.Result.Record.ID
			}
			response.Succeeded++
		}

		response.Results[i] = item
	}

	return c.JSON(http.StatusOK, response)
}

// GetStatement returns a stored statement by record ID
// @Summary Get a stored statement
// @Tags Statements
// @Produce json
// @Param id path string true "Statement record ID"
// @Success 200 {object} SuccessResponse{data=dto.StatementResponse} "Stored statement"
// @Failure 400 {object} errors.ErrorResponse "STATEMENT_002 - Invalid statement ID"
// @Failure 404 {object} errors.ErrorResponse "STATEMENT_001 - Statement not found"
// @Failure 503 {object} errors.ErrorResponse "STATEMENT_005 - Storage not configured"
// @Router /statements/{id} [get]
func (h *StatementHandler) GetStatement(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.StatementInvalidID)
	}

	record, err := h.statementService.GetStatement(c.Request().Context(), id, requestInfo(c))
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewStatementResponse(record),
	})
}

// ListStatements lists stored statements, or returns the one stored for uploadId
// @Summary List stored statements
// @Tags Statements
// @Produce json
// @Param uploadId query string false "Merchant statement upload ID"
// @Param limit query int false "Results limit (max 100)" default(20)
// @Param offset query int false "Results offset" default(0)
// @Success 200 {object} SuccessResponse{data=dto.StatementListResponse} "Stored statements"
// @Failure 404 {object} errors.ErrorResponse "STATEMENT_001 - Statement not found"
// @Failure 503 {object} errors.ErrorResponse "STATEMENT_005 - Storage not configured"
// @Router /statements [get]
func (h *StatementHandler) ListStatements(c echo.Context) error {
	ctx := c.Request().Context()

	if uploadID := c.QueryParam("uploadId"); uploadID != "" {
		record, err := h.statementService.GetStatementByUploadID(ctx, uploadID, requestInfo(c))
		if err != nil {
			return h.handleServiceError(c, err)
		}
		return c.JSON(http.StatusOK, SuccessResponse{
			Data: dto.NewStatementResponse(record),
		})
	}

	offset := getIntParam(c, "offset", 0)
	limit := getIntParam(c, "limit", 20)
	if offset < 0 {
		return SendError(c, apierrors.ValidationOutOfRange, apierrors.WithDetails("offset must be greater than or equal to 0"))
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	records, total, err := h.statementService.ListStatements(ctx, offset, limit)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	summaries := make([]dto.StatementSummary, len(records))
	for i, record := range records {
		summaries[i] = dto.NewStatementSummary(record)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.StatementListResponse{
			Statements: summaries,
			Total:      total,
			Offset:     offset,
			Limit:      limit,
		},
	})
}

func (h *StatementHandler) handleServiceError(c echo.Context, err error) error {
	if errors.Is(err, repositories.ErrStatementNotFound) {
		return SendError(c, apierrors.StatementNotFound)
	}

	if errors.Is(err, repositories.ErrStatementExists) {
		return SendError(c, apierrors.StatementAlreadyStored)
	}

	if errors.Is(err, services.ErrStoreDisabled) {
		return SendError(c, apierrors.StatementStoreDisabled)
	}

	if errors.Is(err, services.ErrStoreUnavailable) {
		return SendError(c, apierrors.SystemServiceUnavailable, apierrors.WithDetails(err.Error()))
	}

	if errors.Is(err, services.ErrStoreFailed) {
		return SendError(c, apierrors.StatementStoreFailed)
	}

	if errors.Is(err, services.ErrBatchTooLarge) {
		return SendError(c, apierrors.ValidationBatchTooLarge, apierrors.WithDetails(err.Error()))
	}

	if errors.Is(err, services.ErrEmptyBatch) {
		return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails("statements: is required"))
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return SendError(c, apierrors.SystemRequestCanceled)
	}

	return SendSystemError(c, err)
}

// sendValidationError reports every failed field. Unknown category tags get
// their own code so clients can tell them apart from malformed bodies.
func sendValidationError(c echo.Context, err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	code := apierrors.ValidationGeneral
	details := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		if validation.IsTagError(fe) {
			code = apierrors.ValidationInvalidTag
		}
		details = append(details, validation.FormatFieldError(fe))
	}

	return SendError(c, code, apierrors.WithDetails(details...))
}

func batchErrorMessage(err error) string {
	switch {
	case errors.Is(err, repositories.ErrStatementExists):
		return apierrors.GetErrorMessage(apierrors.StatementAlreadyStored)
	case errors.Is(err, services.ErrStoreUnavailable):
		return apierrors.GetErrorMessage(apierrors.SystemServiceUnavailable)
	case errors.Is(err, services.ErrStoreDisabled):
		return apierrors.GetErrorMessage(apierrors.StatementStoreDisabled)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return apierrors.GetErrorMessage(apierrors.SystemRequestCanceled)
	default:
		return apierrors.GetErrorMessage(apierrors.StatementStoreFailed)
	}
}
