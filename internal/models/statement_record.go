package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StatementRecord is a persisted transformation result.
// Payload holds the serialised statement exactly as it was returned to the caller.
type StatementRecord struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UploadID       string          `gorm:"type:varchar(255);not null;uniqueIndex" json:"merchantStatementUploadId"`
	MerchantName   string          `gorm:"type:varchar(255)" json:"merchantName"`
	MonthlyRevenue decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"monthlyRevenue"`
	MonthlyCharges decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"monthlyCharges"`
	BucketCount    int             `gorm:"not null;default:0" json:"uniqueBuckets"`
	WarningCount   int             `gorm:"not null;default:0" json:"warningCount"`
	ErrorCount     int             `gorm:"not null;default:0" json:"errorCount"`
	Payload        string          `gorm:"type:text;not null" json:"-"`
	CreatedAt      time.Time       `gorm:"not null;index" json:"createdAt"`
}

func (*StatementRecord) TableName() string {
	return "statements"
}

func (r *StatementRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	return nil
}

// NewStatementRecord snapshots a statement for storage. The stored figures are the
// rounded output figures so that the summary columns match the payload.
func NewStatementRecord(statement *NewMerchantStatement) (*StatementRecord, error) {
	payload, err := json.Marshal(statement)
	if err != nil {
		return nil, fmt.Errorf("failed to serialise statement: %w", err)
	}

	return &StatementRecord{
		UploadID:       statement.Merchant.UploadID,
		MerchantName:   statement.Merchant.MerchantName,
		MonthlyRevenue: statement.MonthlyRevenue.Round(OutputScale),
		MonthlyCharges: statement.MonthlyCharges.Round(OutputScale),
		BucketCount:    statement.Metadata.UniqueBuckets,
		WarningCount:   len(statement.Metadata.Warnings),
		ErrorCount:     len(statement.Metadata.Errors),
		Payload:        string(payload),
	}, nil
}

// RawPayload returns the stored statement JSON.
func (r *StatementRecord) RawPayload() json.RawMessage {
	return json.RawMessage(r.Payload)
}

// DecodeView parses the stored payload back into its rounded view.
func (r *StatementRecord) DecodeView() (*StatementView, error) {
	var view StatementView
	if err := json.Unmarshal([]byte(r.Payload), &view); err != nil {
		return nil, fmt.Errorf("failed to decode statement payload: %w", err)
	}
	return &view, nil
}
