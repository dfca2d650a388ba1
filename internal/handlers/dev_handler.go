package handlers

import (
	"net/http"

	"statement-transformer/internal/dto"
	"statement-transformer/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	statementService services.StatementServiceInterface
	generator        services.StatementGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	statementService services.StatementServiceInterface,
	generator services.StatementGeneratorInterface,
) *DevHandler {
	return &DevHandler{
		statementService: statementService,
		generator:        generator,
	}
}

// SampleStatementResponse pairs a generated request with its transformation
type SampleStatementResponse struct {
	Request   dto.TransformStatementRequest `json:"request"`
	Statement interface{}                   `json:"statement,omitempty"`
}

// GenerateSample generates a realistic extracted statement
//
// Method: POST /api/v1/dev/statements/sample
// Environment: Development only
//
// Query parameters:
//   - rows: Number of fee rows to generate (default: 10, max: 500)
//   - transform: Also transform and store the sample (default: true)
//
// Success Response: 200 OK
//   - request: The generated request body, ready to replay against /statements/transform
//   - statement: The transformed statement, when transform is true
func (h *DevHandler) GenerateSample(c echo.Context) error {
	rows := getIntParam(c, "rows", 10)
	if rows < 1 {
		rows = 1
	}
	if rows > 500 {
		rows = 500
	}

	extracted := h.generator.GenerateStatement(rows)
	response := SampleStatementResponse{Request: dto.NewTransformStatementRequest(extracted)}

	if c.QueryParam("transform") != "false" {
		result, err := h.statementService.Transform(c.Request().Context(), extracted, requestInfo(c))
		if err != nil {
			return SendSystemError(c, err)
		}
		response.Statement = result.Statement
	}

	return c.JSON(http.StatusOK, response)
}
