package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"statement-transformer/internal/dto"
	"statement-transformer/internal/models"
	"statement-transformer/internal/repositories"
	"statement-transformer/internal/services"
	"statement-transformer/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const validStatementBody = `{
	"merchantStatementUploadId": "upload-1",
	"businessName": "Corner Cafe Ltd",
	"paymentProvider": "Acquirer",
	"statementDate": "2024-03-31",
	"authorisationFee": "£0.02",
	"transactionCharges": [
		{
			"chargeType": {"scheme": "visa", "presence": "inPerson", "region": "uk", "realm": "consumer", "cardType": "debit"},
			"chargeRate": "0.3% + 2p",
			"numberOfTransactions": 10,
			"chargeTotal": "£3.20",
			"transactionsValue": "£1,000.00"
		}
	],
	"totalValue": "£1,000.00",
	"totalCharges": "£3.20"
}`

// StatementHandlerTestSuite is the test suite for StatementHandler
type StatementHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockStatementServiceInterface
	handler     *StatementHandler
	e           *echo.Echo
}

func (s *StatementHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockStatementServiceInterface(s.ctrl)
	s.handler = NewStatementHandler(s.mockService)
	s.e = echo.New()
	s.e.Validator = NewValidator()
}

func (s *StatementHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestStatementHandlerSuite(t *testing.T) {
	suite.Run(t, new(StatementHandlerTestSuite))
}

func (s *StatementHandlerTestSuite) newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("User-Agent", "statement-client/1.0")
	req.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-123")
	return c, rec
}

func (s *StatementHandlerTestSuite) decodeError(rec *httptest.ResponseRecorder) ErrorResponse {
	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func sampleStatement(uploadID string) *models.NewMerchantStatement {
	fee := decimal.RequireFromString("0.02")
	return &models.NewMerchantStatement{
		Merchant:                 models.MerchantDetails{UploadID: uploadID, MerchantName: "Corner Cafe Ltd"},
		MonthlyRevenue:           decimal.RequireFromString("1000.005"),
		MonthlyCharges:           decimal.RequireFromString("3.2"),
		AverageTransactionAmount: decimal.RequireFromString("100.0005"),
		AuthorisationFee:         &fee,
		Buckets: []*models.AggregatedBucket{{
			Key:                 "visaInPersonUkConsumerDebit",
			RowCount:            10,
			TotalValue:          decimal.RequireFromString("1000.005"),
			TotalCharges:        decimal.RequireFromString("3.2"),
			PercentageOfRevenue: decimal.NewFromInt(100),
		}},
		Metadata: models.ExtractionMetadata{TotalTransactionRows: 1, UniqueBuckets: 1},
	}
}

func (s *StatementHandlerTestSuite) TestTransformStatement_Stored() {
	c, rec := s.newContext(http.MethodPost, "/api/v1/statements/transform", validStatementBody)
	recordID := uuid.New()

	s.mockService.EXPECT().
		Transform(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input models.ExtractedStatement, info services.RequestInfo) (*services.TransformResult, error) {
			s.Equal("upload-1", input.Merchant.UploadID)
			s.Equal("Corner Cafe Ltd", input.Merchant.MerchantName)
			s.Equal("£0.02", input.Merchant.AuthorisationFeeRaw)
			s.Require().Len(input.Rows, 1)
			s.Equal(models.CardTypeDebit, input.Rows[0].CardType)
			s.Equal("0.3% + 2p", input.Rows[0].ChargeRateRaw)
			s.Equal("£1,000.00", input.Header.TotalValueRaw)
			s.Equal("trace-123", info.TraceID)
			s.Equal("10.0.0.1", info.IPAddress)
			s.Equal("statement-client/1.0", info.UserAgent)
			return &services.TransformResult{
				Statement: sampleStatement("upload-1"),
				Record:    &models.StatementRecord{ID: recordID},
			}, nil
		})

	s.NoError(s.handler.TransformStatement(c))
	s.Equal(http.StatusOK, rec.Code)

	var response struct {
		Data map[string]interface{} `json:"data"`
		Meta StatementMeta          `json:"meta"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(1000.01, response.Data["monthlyRevenue"])
	s.Equal(100.0, response.Data["averageTransactionAmount"])
	s.Require().NotNil(response.Meta.ID)
	s.Equal(recordID, *response.Meta.ID)
	s.Contains(rec.Body.String(), `"monthlyRevenue":1000.01`)
}

func (s *StatementHandlerTestSuite) TestTransformStatement_NotStored() {
	c, rec := s.newContext(http.MethodPost, "/api/v1/statements/transform", validStatementBody)

	s.mockService.EXPECT().
		Transform(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&services.TransformResult{Statement: sampleStatement("upload-1")}, nil)

	s.NoError(s.handler.TransformStatement(c))
	s.Equal(http.StatusOK, rec.Code)
	s.NotContains(rec.Body.String(), `"meta"`)
}

func (s *StatementHandlerTestSuite) TestTransformStatement_InvalidTag() {
	body := strings.Replace(validStatementBody, `"cardType": "debit"`, `"cardType": "prepaid"`, 1)
	c, rec := s.newContext(http.MethodPost, "/api/v1/statements/transform", body)

	s.NoError(s.handler.TransformStatement(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	response := s.decodeError(rec)
	s.Equal("VALIDATION_005", response.Error.Code)
	s.Equal("trace-123", response.Error.TraceID)
	s.Require().Len(response.Error.Details, 1)
	s.Equal("transactionCharges[0].chargeType.cardType: must be one of debit, credit", response.Error.Details[0])
}

func (s *StatementHandlerTestSuite) TestTransformStatement_MissingFields() {
	c, rec := s.newContext(http.MethodPost, "/api/v1/statements/transform",
		`{"businessName": "Corner Cafe Ltd", "transactionCharges": []}`)

	s.NoError(s.handler.TransformStatement(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	response := s.decodeError(rec)
	s.Equal("VALIDATION_001", response.Error.Code)
	s.Contains(response.Error.Details, "merchantStatementUploadId: is required")
	s.Contains(response.Error.Details, "statementDate: is required")
}

func (s *StatementHandlerTestSuite) TestTransformStatement_NegativeCount() {
	body := strings.Replace(validStatementBody, `"numberOfTransactions": 10`, `"numberOfTransactions": -1`, 1)
	c, rec := s.newContext(http.MethodPost, "/api/v1/statements/transform", body)

	s.NoError(s.handler.TransformStatement(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", s.decodeError(rec).Error.Code)
}

func (s *StatementHandlerTestSuite) TestTransformStatement_MalformedJSON() {
	c, rec := s.newContext(http.MethodPost, "/api/v1/statements/transform", `{"businessName":`)

	s.NoError(s.handler.TransformStatement(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", s.decodeError(rec).Error.Code)
}

func (s *StatementHandlerTestSuite) TestTransformStatement_ServiceErrors() {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"already stored", repositories.ErrStatementExists, http.StatusConflict, "STATEMENT_003"},
		{"store failed", fmt.Errorf("%w: %w", services.ErrStoreFailed, fmt.Errorf("connection reset")), http.StatusInternalServerError, "STATEMENT_004"},
		{"store disabled", services.ErrStoreDisabled, http.StatusServiceUnavailable, "STATEMENT_005"},
		{"canceled", context.Canceled, http.StatusRequestTimeout, "SYSTEM_007"},
		{"unexpected", fmt.Errorf("boom"), http.StatusInternalServerError, "SYSTEM_001"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			c, rec := s.newContext(http.MethodPost, "/api/v1/statements/transform", validStatementBody)
			s.mockService.EXPECT().Transform(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err)

			s.NoError(s.handler.TransformStatement(c))
			s.Equal(tt.status, rec.Code)
			s.Equal(tt.code, s.decodeError(rec).Error.Code)
		})
	}
}

func (s *StatementHandlerTestSuite) TestTransformBatch_MixedOutcomes() {
	second := strings.Replace(validStatementBody, "upload-1", "upload-2", 1)
	body := fmt.Sprintf(`{"statements": [%s, %s]}`, validStatementBody, second)
	c, rec := s.newContext(http.MethodPost, "/api/v1/statements/transform/batch", body)
	recordID := uuid.New()

	s.mockService.EXPECT().
		TransformBatch(gomock.Any(), gomock.Len(2), gomock.Any()).
		Return([]services.BatchOutcome{
			{Index: 0, Result: &services.TransformResult{
				Statement: sampleStatement("upload-1"),
				Record:    &models.StatementRecord{ID: recordID},
			}},
			{Index: 1, Err: repositories.ErrStatementExists},
		}, nil)

	s.NoError(s.handler.TransformBatch(c))
	s.Equal(http.StatusOK, rec.Code)

	var response struct {
		Results []struct {
			Index    int        `json:"index"`
			UploadID string     `json:"merchantStatementUploadId"`
			RecordID *uuid.UUID `json:"id"`
			Error    string     `json:"error"`
		} `json:"results"`
		Succeeded int `json:"succeeded"`
		Failed    int `json:"failed"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(1, response.Succeeded)
	s.Equal(1, response.Failed)
	s.Require().Len(response.Results, 2)
	s.Equal("upload-1", response.Results[0].UploadID)
	s.Equal(recordID, *response.Results[0].RecordID)
	s.Empty(response.Results[0].Error)
	s.Equal("upload-2", response.Results[1].UploadID)
	s.Nil(response.Results[1].RecordID)
	s.Contains(response.Results[1].Error, "already been stored")
}

func (s *StatementHandlerTestSuite) TestTransformBatch_Empty() {
	c, rec := s.newContext(http.MethodPost, "/api/v1/statements/transform/batch", `{"statements": []}`)

	s.NoError(s.handler.TransformBatch(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", s.decodeError(rec).Error.Code)
}

func (s *StatementHandlerTestSuite) TestTransformBatch_TooLarge() {
	body := fmt.Sprintf(`{"statements": [%s]}`, validStatementBody)
	c, rec := s.newContext(http.MethodPost, "/api/v1/statements/transform/batch", body)

	s.mockService.EXPECT().
		TransformBatch(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: 1 statements, limit 0", services.ErrBatchTooLarge))

	s.NoError(s.handler.TransformBatch(c))
	s.Equal(http.StatusRequestEntityTooLarge, rec.Code)
	s.Equal("VALIDATION_006", s.decodeError(rec).Error.Code)
}

func (s *StatementHandlerTestSuite) TestGetStatement() {
	id := uuid.New()
	c, rec := s.newContext(http.MethodGet, "/api/v1/statements/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	record, err := models.NewStatementRecord(sampleStatement("upload-1"))
	s.Require().NoError(err)
	record.ID = id
	record.CreatedAt = time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)

	s.mockService.EXPECT().GetStatement(gomock.Any(), id, gomock.Any()).Return(record, nil)

	s.NoError(s.handler.GetStatement(c))
	s.Equal(http.StatusOK, rec.Code)

	var response struct {
		Data dto.StatementResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(id, response.Data.ID)
	s.Contains(string(response.Data.Statement), `"visaInPersonUkConsumerDebit"`)
}

func (s *StatementHandlerTestSuite) TestGetStatement_InvalidID() {
	c, rec := s.newContext(http.MethodGet, "/api/v1/statements/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	s.NoError(s.handler.GetStatement(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("STATEMENT_002", s.decodeError(rec).Error.Code)
}

func (s *StatementHandlerTestSuite) TestGetStatement_NotFound() {
	id := uuid.New()
	c, rec := s.newContext(http.MethodGet, "/api/v1/statements/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.mockService.EXPECT().
		GetStatement(gomock.Any(), id, gomock.Any()).
		Return(nil, fmt.Errorf("failed to get statement: %w", repositories.ErrStatementNotFound))

	s.NoError(s.handler.GetStatement(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("STATEMENT_001", s.decodeError(rec).Error.Code)
}

func (s *StatementHandlerTestSuite) TestListStatements_ByUploadID() {
	c, rec := s.newContext(http.MethodGet, "/api/v1/statements?uploadId=upload-7", "")

	record, err := models.NewStatementRecord(sampleStatement("upload-7"))
	s.Require().NoError(err)
	record.ID = uuid.New()

	s.mockService.EXPECT().GetStatementByUploadID(gomock.Any(), "upload-7", gomock.Any()).Return(record, nil)

	s.NoError(s.handler.ListStatements(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), record.ID.String())
}

func (s *StatementHandlerTestSuite) TestListStatements_Paginated() {
	c, rec := s.newContext(http.MethodGet, "/api/v1/statements?offset=5&limit=500", "")

	record, err := models.NewStatementRecord(sampleStatement("upload-1"))
	s.Require().NoError(err)
	record.ID = uuid.New()

	s.mockService.EXPECT().ListStatements(gomock.Any(), 5, 100).Return([]*models.StatementRecord{record}, int64(6), nil)

	s.NoError(s.handler.ListStatements(c))
	s.Equal(http.StatusOK, rec.Code)

	var response struct {
		Data dto.StatementListResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(int64(6), response.Data.Total)
	s.Equal(100, response.Data.Limit)
	s.Require().Len(response.Data.Statements, 1)
	s.Equal("1000.01", response.Data.Statements[0].MonthlyRevenue)
	s.Equal("upload-1", response.Data.Statements[0].UploadID)
}

func (s *StatementHandlerTestSuite) TestListStatements_StoreDisabled() {
	c, rec := s.newContext(http.MethodGet, "/api/v1/statements", "")

	s.mockService.EXPECT().ListStatements(gomock.Any(), 0, 20).Return(nil, int64(0), services.ErrStoreDisabled)

	s.NoError(s.handler.ListStatements(c))
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal("STATEMENT_005", s.decodeError(rec).Error.Code)
}

func (s *StatementHandlerTestSuite) TestListStatements_NegativeOffset() {
	c, rec := s.newContext(http.MethodGet, "/api/v1/statements?offset=-1", "")

	s.NoError(s.handler.ListStatements(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_004", s.decodeError(rec).Error.Code)
}
