package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"statement-transformer/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrStatementNotFound = errors.New("statement not found")
	ErrStatementExists   = errors.New("statement with upload ID already exists")
)

// StatementRepository handles database operations for transformed statements
type StatementRepository struct {
	db *gorm.DB
}

// NewStatementRepository creates a new statement repository
func NewStatementRepository(db *gorm.DB) StatementRepositoryInterface {
	return &StatementRepository{
		db: db,
	}
}

// Create stores a statement. A second statement for the same upload ID is rejected.
func (r *StatementRepository) Create(ctx context.Context, record *models.StatementRecord) error {
	if record == nil {
		return errors.New("statement record cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrStatementExists
		}
		return fmt.Errorf("failed to create statement: %w", err)
	}

	return nil
}

// GetByID retrieves a statement by its record ID
func (r *StatementRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.StatementRecord, error) {
	var record models.StatementRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStatementNotFound
		}
		return nil, fmt.Errorf("failed to get statement by ID: %w", err)
	}

	return &record, nil
}

// GetByUploadID retrieves the statement produced for an extraction upload
func (r *StatementRepository) GetByUploadID(ctx context.Context, uploadID string) (*models.StatementRecord, error) {
	var record models.StatementRecord
	if err := r.db.WithContext(ctx).Where("upload_id = ?", uploadID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStatementNotFound
		}
		return nil, fmt.Errorf("failed to get statement by upload ID: %w", err)
	}

	return &record, nil
}

// List returns stored statements, newest first
func (r *StatementRepository) List(ctx context.Context, offset, limit int) ([]*models.StatementRecord, int64, error) {
	var records []*models.StatementRecord
	var total int64

	query := r.db.WithContext(ctx).Model(&models.StatementRecord{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count statements: %w", err)
	}

	if err := query.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list statements: %w", err)
	}

	return records, total, nil
}

// isUniqueViolation recognises duplicate key errors from both postgres and sqlite.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
