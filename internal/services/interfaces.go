package services

import (
	"context"
	"time"

	"statement-transformer/internal/models"
	"statement-transformer/internal/transform"

	"github.com/google/uuid"
)

// RequestInfo identifies the caller of an operation for audit purposes
type RequestInfo struct {
	TraceID   string
	IPAddress string
	UserAgent string
}

// TransformResult is a transformed statement and, when it was stored, its record
type TransformResult struct {
	Statement *models.NewMerchantStatement
	Record    *models.StatementRecord
}

// BatchOutcome is the result of one statement of a batch. Exactly one of Result and Err is set.
type BatchOutcome struct {
	Index  int
	Result *TransformResult
	Err    error
}

// StoreStatus describes the statement store as seen by the service
type StoreStatus struct {
	Enabled             bool
	Breaker             BreakerState
	ConsecutiveFailures int
}

// TransformerInterface runs the statement transformation
type TransformerInterface interface {
	Run(statement models.ExtractedStatement) transform.Result
}

// StatementServiceInterface transforms extracted statements and serves stored results
type StatementServiceInterface interface {
	Transform(ctx context.Context, statement models.ExtractedStatement, info RequestInfo) (*TransformResult, error)
	TransformBatch(ctx context.Context, statements []models.ExtractedStatement, info RequestInfo) ([]BatchOutcome, error)
	GetStatement(ctx context.Context, id uuid.UUID, info RequestInfo) (*models.StatementRecord, error)
	GetStatementByUploadID(ctx context.Context, uploadID string, info RequestInfo) (*models.StatementRecord, error)
	ListStatements(ctx context.Context, offset, limit int) ([]*models.StatementRecord, int64, error)
	StoreStatus() StoreStatus
}

// AuditServiceInterface defines the contract for persisted audit trail operations
type AuditServiceInterface interface {
	CreateAuditLog(ctx context.Context, log *models.AuditLog) error
	LogStatementTransformed(ctx context.Context, statement *models.NewMerchantStatement, record *models.StatementRecord, info RequestInfo) error
	LogStatementViewed(ctx context.Context, record *models.StatementRecord, info RequestInfo) error
	LogBatchTransformed(ctx context.Context, succeeded, failed int, info RequestInfo) error
	GetStatementActivity(ctx context.Context, uploadID string, offset, limit int) ([]*models.AuditLog, int64, error)
	PurgeExpired(ctx context.Context, retention time.Duration) (int64, error)
}

// MetricsRecorderInterface records operational metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// AuditLoggerInterface writes structured operational events to the log
type AuditLoggerInterface interface {
	LogTransformStarted(ctx context.Context, uploadID string, rows int)
	LogTransformCompleted(ctx context.Context, statement *models.NewMerchantStatement, diagnostics []transform.Diagnostic, durationMs int64)
	LogStatementStored(ctx context.Context, record *models.StatementRecord)
	LogPersistFailed(ctx context.Context, uploadID string, err error)
	LogBatchCompleted(ctx context.Context, size, succeeded, failed int, durationMs int64)
}

// CircuitBreakerInterface guards calls to an unreliable dependency
type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() BreakerState
	GetFailureCount() int
}

// StatementGeneratorInterface produces sample extracted statements
type StatementGeneratorInterface interface {
	GenerateStatement(rows int) models.ExtractedStatement
}
