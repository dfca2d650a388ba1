package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"statement-transformer/internal/models"
	"statement-transformer/internal/repositories"
)

// AuditService handles audit logging operations
type AuditService struct {
	repo repositories.AuditLogRepositoryInterface
}

// NewAuditService creates a new audit service
func NewAuditService(repo repositories.AuditLogRepositoryInterface) AuditServiceInterface {
	return &AuditService{
		repo: repo,
	}
}

var (
	ErrInvalidAuditLog = errors.New("invalid audit log")
	ErrInvalidUploadID = errors.New("invalid upload ID")
)

// ValidateActivityType validates that the activity type is one of the allowed types
func ValidateActivityType(action string) error {
	switch action {
	case models.AuditActionStatementTransformed,
		models.AuditActionStatementStored,
		models.AuditActionStatementViewed,
		models.AuditActionBatchTransformed:
		return nil
	default:
		return fmt.Errorf("invalid activity type: %s", action)
	}
}

// CreateAuditLog creates a new audit log entry with validation
func (s *AuditService) CreateAuditLog(ctx context.Context, log *models.AuditLog) error {
	if log == nil {
		return ErrInvalidAuditLog
	}

	if err := ValidateActivityType(log.Action); err != nil {
		return err
	}

	if log.TraceID == "" {
		log.TraceID = getTraceID(ctx)
	}

	if err := s.repo.Create(ctx, log); err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

func newStatementAuditLog(action, uploadID string, info RequestInfo) *models.AuditLog {
	return &models.AuditLog{
		Action:     action,
		Resource:   models.AuditResourceStatement,
		ResourceID: uploadID,
		TraceID:    info.TraceID,
		IPAddress:  info.IPAddress,
		UserAgent:  info.UserAgent,
	}
}

// LogStatementTransformed records a transformation, and its storage when record is set
func (s *AuditService) LogStatementTransformed(ctx context.Context, statement *models.NewMerchantStatement, record *models.StatementRecord, info RequestInfo) error {
	action := models.AuditActionStatementTransformed
	if record != nil {
		action = models.AuditActionStatementStored
	}

	log := newStatementAuditLog(action, statement.Merchant.UploadID, info)
	log.Metadata = models.JSONBMap{
		"rows":     statement.Metadata.TotalTransactionRows,
		"buckets":  statement.Metadata.UniqueBuckets,
		"warnings": len(statement.Metadata.Warnings),
		"errors":   len(statement.Metadata.Errors),
	}
	if record != nil {
		log.SetMetadata("record_id", record.ID.String())
	}

	return s.CreateAuditLog(ctx, log)
}

// LogStatementViewed records a read of a stored statement
func (s *AuditService) LogStatementViewed(ctx context.Context, record *models.StatementRecord, info RequestInfo) error {
	log := newStatementAuditLog(models.AuditActionStatementViewed, record.UploadID, info)
	log.SetMetadata("record_id", record.ID.String())
	return s.CreateAuditLog(ctx, log)
}

// LogBatchTransformed records a batch transformation
func (s *AuditService) LogBatchTransformed(ctx context.Context, succeeded, failed int, info RequestInfo) error {
	log := newStatementAuditLog(models.AuditActionBatchTransformed, "", info)
	log.Metadata = models.JSONBMap{
		"succeeded": succeeded,
		"failed":    failed,
	}
	return s.CreateAuditLog(ctx, log)
}

// GetStatementActivity returns the audit trail of an upload, newest first
func (s *AuditService) GetStatementActivity(ctx context.Context, uploadID string, offset, limit int) ([]*models.AuditLog, int64, error) {
	if uploadID == "" {
		return nil, 0, ErrInvalidUploadID
	}

	if limit <= 0 || limit > 1000 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	return s.repo.GetByResource(ctx, models.AuditResourceStatement, uploadID, offset, limit)
}

// PurgeExpired deletes audit logs older than retention. A non-positive retention keeps everything.
func (s *AuditService) PurgeExpired(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, nil
	}

	deleted, err := s.repo.DeleteOlderThan(ctx, retention)
	if err != nil {
		return 0, fmt.Errorf("failed to purge audit logs: %w", err)
	}

	return deleted, nil
}
