package repositories

import (
	"context"
	"time"

	"statement-transformer/internal/models"

	"github.com/google/uuid"
)

// StatementRepositoryInterface defines the contract for stored statement operations
type StatementRepositoryInterface interface {
	Create(ctx context.Context, record *models.StatementRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.StatementRecord, error)
	GetByUploadID(ctx context.Context, uploadID string) (*models.StatementRecord, error)
	List(ctx context.Context, offset, limit int) ([]*models.StatementRecord, int64, error)
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(ctx context.Context, log *models.AuditLog) error
	GetByResource(ctx context.Context, resource, resourceID string, offset, limit int) ([]*models.AuditLog, int64, error)
	DeleteOlderThan(ctx context.Context, duration time.Duration) (int64, error)
}
