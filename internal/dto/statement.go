package dto

import (
	"encoding/json"
	"time"

	"statement-transformer/internal/models"

	"github.com/google/uuid"
)

// Statement Request DTOs

// ChargeTypeRequest is the category classification of a fee row. Every tag is
// optional; an absent tag takes the configured default.
type ChargeTypeRequest struct {
	Scheme                 string  `json:"scheme" validate:"omitempty,scheme"`
	Presence               string  `json:"presence" validate:"omitempty,presence"`
	Region                 string  `json:"region" validate:"omitempty,region"`
	Realm                  string  `json:"realm" validate:"omitempty,realm"`
	CardType               string  `json:"cardType" validate:"omitempty,card_type"`
	SchemeOtherDescription *string `json:"schemeOtherDescription" validate:"omitempty,max=100"`
}

// TransactionChargeRequest is one extracted fee row. Amounts and rates are free
// text; malformed values are reported in the statement metadata, not rejected.
type TransactionChargeRequest struct {
	Reasoning             string            `json:"reasoning" validate:"max=2000"`
	ChargeTypeDescription string            `json:"chargeTypeDescription" validate:"max=500"`
	ChargeType            ChargeTypeRequest `json:"chargeType"`
	ChargeRate            string            `json:"chargeRate" validate:"max=200"`
	NumberOfTransactions  int               `json:"numberOfTransactions" validate:"gte=0"`
	ChargeTotal           string            `json:"chargeTotal" validate:"max=64"`
	TransactionsValue     string            `json:"transactionsValue" validate:"max=64"`
}

// TransformStatementRequest represents the request payload for transforming an extracted statement
type TransformStatementRequest struct {
	MerchantStatementUploadID string                     `json:"merchantStatementUploadId" validate:"required,max=255"`
	BusinessName              string                     `json:"businessName" validate:"required,max=255"`
	MerchantID                *string                    `json:"merchantId" validate:"omitempty,max=255"`
	PaymentProvider           string                     `json:"paymentProvider" validate:"max=255"`
	StatementDate             string                     `json:"statementDate" validate:"required,max=64"`
	StatementPeriod           *string                    `json:"statementPeriod" validate:"omitempty,max=255"`
	AuthorisationFee          *string                    `json:"authorisationFee" validate:"omitempty,max=64"`
	RegisteredCompany         *bool                      `json:"registeredCompany"`
	MerchantCategoryCode      *string                    `json:"merchantCategoryCode" validate:"omitempty,max=16"`
	TransactionCharges        []TransactionChargeRequest `json:"transactionCharges" validate:"required,dive"`
	TotalValue                *string                    `json:"totalValue" validate:"omitempty,max=64"`
	TotalCharges              *string                    `json:"totalCharges" validate:"omitempty,max=64"`
}

// TransformBatchRequest represents the request payload for transforming several statements at once
type TransformBatchRequest struct {
	Statements []TransformStatementRequest `json:"statements" validate:"required,min=1,dive"`
}

// ListStatementsQuery contains the paging parameters of the statement list
type ListStatementsQuery struct {
	UploadID string `query:"uploadId"`
	Limit    int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset   int    `query:"offset" validate:"omitempty,min=0"`
}

// ToExtractedStatement maps the request onto the transformation input.
func (r *TransformStatementRequest) ToExtractedStatement() models.ExtractedStatement {
	rows := make([]models.ExtractedRow, 0, len(r.TransactionCharges))
	for _, charge := range r.TransactionCharges {
		rows = append(rows, models.ExtractedRow{
			Scheme:                 models.Scheme(charge.ChargeType.Scheme),
			SchemeOtherDescription: deref(charge.ChargeType.SchemeOtherDescription),
			Presence:               models.Presence(charge.ChargeType.Presence),
			Region:                 models.Region(charge.ChargeType.Region),
			Realm:                  models.Realm(charge.ChargeType.Realm),
			CardType:               models.CardType(charge.ChargeType.CardType),
			ChargeTypeDescription:  charge.ChargeTypeDescription,
			ChargeRateRaw:          charge.ChargeRate,
			ChargeTotalRaw:         charge.ChargeTotal,
			TransactionsValueRaw:   charge.TransactionsValue,
			TransactionCount:       charge.NumberOfTransactions,
			Reasoning:              charge.Reasoning,
		})
	}

	return models.ExtractedStatement{
		Merchant: models.MerchantDetails{
			UploadID:             r.MerchantStatementUploadID,
			MerchantName:         r.BusinessName,
			MerchantID:           r.MerchantID,
			PaymentProvider:      r.PaymentProvider,
			StatementDate:        r.StatementDate,
			StatementPeriod:      r.StatementPeriod,
			AuthorisationFeeRaw:  deref(r.AuthorisationFee),
			RegisteredCompany:    r.RegisteredCompany,
			MerchantCategoryCode: r.MerchantCategoryCode,
		},
		Rows: rows,
		Header: models.HeaderTotals{
			TotalValueRaw:   deref(r.TotalValue),
			TotalChargesRaw: deref(r.TotalCharges),
		},
	}
}

// NewTransformStatementRequest is the inverse of ToExtractedStatement.
func NewTransformStatementRequest(statement models.ExtractedStatement) TransformStatementRequest {
	charges := make([]TransactionChargeRequest, 0, len(statement.Rows))
	for _, row := range statement.Rows {
		charges = append(charges, TransactionChargeRequest{
			Reasoning:             row.Reasoning,
			ChargeTypeDescription: row.ChargeTypeDescription,
			ChargeType: ChargeTypeRequest{
				Scheme:                 string(row.Scheme),
				Presence:               string(row.Presence),
				Region:                 string(row.Region),
				Realm:                  string(row.Realm),
				CardType:               string(row.CardType),
				SchemeOtherDescription: optional(row.SchemeOtherDescription),
			},
			ChargeRate:           row.ChargeRateRaw,
			NumberOfTransactions: row.TransactionCount,
			ChargeTotal:          row.ChargeTotalRaw,
			TransactionsValue:    row.TransactionsValueRaw,
		})
	}

	merchant := statement.Merchant
	return TransformStatementRequest{
		MerchantStatementUploadID: merchant.UploadID,
		BusinessName:              merchant.MerchantName,
		MerchantID:                merchant.MerchantID,
		PaymentProvider:           merchant.PaymentProvider,
		StatementDate:             merchant.StatementDate,
		StatementPeriod:           merchant.StatementPeriod,
		AuthorisationFee:          optional(merchant.AuthorisationFeeRaw),
		RegisteredCompany:         merchant.RegisteredCompany,
		MerchantCategoryCode:      merchant.MerchantCategoryCode,
		TransactionCharges:        charges,
		TotalValue:                optional(statement.Header.TotalValueRaw),
		TotalCharges:              optional(statement.Header.TotalChargesRaw),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Statement Response DTOs

// StatementResponse is a stored statement together with its record ID
type StatementResponse struct {
	ID        uuid.UUID       `json:"id"`
	CreatedAt time.Time       `json:"createdAt"`
	Statement json.RawMessage `json:"statement"`
}

// StatementSummary is one entry of the statement list
type StatementSummary struct {
	ID             uuid.UUID `json:"id"`
	UploadID       string    `json:"merchantStatementUploadId"`
	MerchantName   string    `json:"merchantName"`
	MonthlyRevenue string    `json:"monthlyRevenue"`
	MonthlyCharges string    `json:"monthlyCharges"`
	UniqueBuckets  int       `json:"uniqueBuckets"`
	WarningCount   int       `json:"warningCount"`
	ErrorCount     int       `json:"errorCount"`
	CreatedAt      time.Time `json:"createdAt"`
}

// StatementListResponse represents a paginated list of stored statements
type StatementListResponse struct {
	Statements []StatementSummary `json:"statements"`
	Total      int64              `json:"total"`
	Offset     int                `json:"offset"`
	Limit      int                `json:"limit"`
}

// BatchItemResult is the outcome of one statement of a batch, in request order
type BatchItemResult struct {
	Index     int                          `json:"index"`
	UploadID  string                       `json:"merchantStatementUploadId"`
	RecordID  *uuid.UUID                   `json:"id,omitempty"`
	Statement *models.NewMerchantStatement `json:"statement,omitempty"`
	Error     string                       `json:"error,omitempty"`
}

// TransformBatchResponse represents the response of a batch transformation
type TransformBatchResponse struct {
	Results   []BatchItemResult `json:"results"`
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
}

// NewStatementSummary converts a stored record into its list entry
func NewStatementSummary(record *models.StatementRecord) StatementSummary {
	return StatementSummary{
		ID:             record.ID,
		UploadID:       record.UploadID,
		MerchantName:   record.MerchantName,
		MonthlyRevenue: record.MonthlyRevenue.StringFixed(models.OutputScale),
		MonthlyCharges: record.MonthlyCharges.StringFixed(models.OutputScale),
		UniqueBuckets:  record.BucketCount,
		WarningCount:   record.WarningCount,
		ErrorCount:     record.ErrorCount,
		CreatedAt:      record.CreatedAt,
	}
}

// NewStatementResponse returns the stored payload of record
func NewStatementResponse(record *models.StatementRecord) StatementResponse {
	return StatementResponse{
		ID:        record.ID,
		CreatedAt: record.CreatedAt,
		Statement: record.RawPayload(),
	}
}
