package dto

import (
	"testing"

	"statement-transformer/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestTransformStatementRequest_MapsBothWays(t *testing.T) {
	mcc := "5411"
	statement := models.ExtractedStatement{
		Merchant: models.MerchantDetails{
			UploadID:             "upload-1",
			MerchantName:         "Corner Cafe Ltd",
			StatementDate:        "2024-03-31",
			AuthorisationFeeRaw:  "£0.02",
			MerchantCategoryCode: &mcc,
		},
		Rows: []models.ExtractedRow{{
			Scheme:                 models.SchemeOther,
			SchemeOtherDescription: "UnionPay",
			Presence:               models.PresenceOnline,
			CardType:               models.CardTypeCredit,
			ChargeRateRaw:          "1.5%",
			ChargeTotalRaw:         "£1.50",
			TransactionsValueRaw:   "£100.00",
			TransactionCount:       4,
		}},
		Header: models.HeaderTotals{TotalValueRaw: "£100.00"},
	}

	request := NewTransformStatementRequest(statement)

	assert.Equal(t, "other", request.TransactionCharges[0].ChargeType.Scheme)
	assert.Equal(t, "", request.TransactionCharges[0].ChargeType.Region)
	assert.Nil(t, request.TotalCharges)
	assert.Equal(t, statement, request.ToExtractedStatement())
}

func TestNewStatementSummary_RoundsTotals(t *testing.T) {
	statement := &models.NewMerchantStatement{
		Merchant: models.MerchantDetails{UploadID: "upload-1", MerchantName: "Corner Cafe Ltd"},
		Metadata: models.ExtractionMetadata{UniqueBuckets: 2, Warnings: []string{"w"}},
	}
	record, err := models.NewStatementRecord(statement)
	assert.NoError(t, err)

	summary := NewStatementSummary(record)

	assert.Equal(t, "0.00", summary.MonthlyRevenue)
	assert.Equal(t, 2, summary.UniqueBuckets)
	assert.Equal(t, 1, summary.WarningCount)
	assert.Equal(t, "upload-1", summary.UploadID)
}
