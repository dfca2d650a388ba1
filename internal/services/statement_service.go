package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"statement-transformer/internal/config"
	"statement-transformer/internal/models"
	"statement-transformer/internal/repositories"
	"statement-transformer/internal/transform"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

var (
	ErrStoreDisabled = errors.New("statement store is not configured")
	ErrEmptyBatch    = errors.New("batch contains no statements")
	ErrBatchTooLarge = errors.New("batch exceeds the maximum size")
	ErrStoreFailed   = errors.New("failed to store statement")
)

type statementService struct {
	engine           TransformerInterface
	repo             repositories.StatementRepositoryInterface
	audit            AuditServiceInterface
	auditLogger      AuditLoggerInterface
	metrics          MetricsRecorderInterface
	storeBreaker     CircuitBreakerInterface
	persistRequired  bool
	batchConcurrency int
	maxBatchSize     int
}

// NewStatementService wires the transformation engine to storage and auditing.
// repo and audit may be nil, in which case results are not stored or audited.
func NewStatementService(
	engine TransformerInterface,
	repo repositories.StatementRepositoryInterface,
	audit AuditServiceInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	cfg config.TransformConfig,
) StatementServiceInterface {
	concurrency := cfg.BatchConcurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	return &statementService{
		engine:      engine,
		repo:        repo,
		audit:       audit,
		auditLogger: auditLogger,
		metrics:     metrics,
		storeBreaker: NewCircuitBreaker(CircuitBreakerConfig{
			MaxFailures:  cfg.StoreMaxFailures,
			ResetTimeout: cfg.StoreRetryAfter,
		}),
		persistRequired:  cfg.PersistRequired,
		batchConcurrency: concurrency,
		maxBatchSize:     cfg.MaxBatchSize,
	}
}

func (s *statementService) Transform(ctx context.Context, input models.ExtractedStatement, info RequestInfo) (*TransformResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.auditLogger.LogTransformStarted(ctx, input.Merchant.UploadID, len(input.Rows))

	start := time.Now()
	result := s.engine.Run(input)
	duration := time.Since(start)

	statement := result.Statement
	s.recordTransformMetrics(statement, result.Diagnostics, duration)
	s.auditLogger.LogTransformCompleted(ctx, statement, result.Diagnostics, duration.Milliseconds())

	record, err := s.persist(ctx, statement)
	if errors.Is(err, repositories.ErrStatementExists) {
		s.metrics.IncrementCounter(MetricStatementPersisted, map[string]string{"status": "duplicate"})
		return nil, err
	}
	if err != nil {
		s.metrics.IncrementCounter(MetricStatementPersisted, map[string]string{"status": "failed"})
		if s.persistRequired {
			return nil, err
		}
		s.auditLogger.LogPersistFailed(ctx, statement.Merchant.UploadID, err)
	}

	if s.audit != nil {
		if err := s.audit.LogStatementTransformed(ctx, statement, record, info); err != nil {
			slog.WarnContext(ctx, "failed to write audit log",
				"upload_id", statement.Merchant.UploadID,
				"error", err)
		}
	}

	return &TransformResult{Statement: statement, Record: record}, nil
}

// persist stores the statement. It returns a nil record and no error when no store is configured
// and storage is optional. An upload ID that is already stored is reported as ErrStatementExists
// in every mode.
func (s *statementService) persist(ctx context.Context, statement *models.NewMerchantStatement) (*models.StatementRecord, error) {
	if s.repo == nil {
		if s.persistRequired {
			return nil, ErrStoreDisabled
		}
		return nil, nil
	}

	if s.storeBreaker.IsOpen() {
		return nil, ErrStoreUnavailable
	}

	record, err := models.NewStatementRecord(statement)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, record); err != nil {
		if errors.Is(err, repositories.ErrStatementExists) {
			return nil, err
		}
		if ctx.Err() == nil {
			s.storeBreaker.RecordFailure()
		}
		return nil, fmt.Errorf("%w: %w", ErrStoreFailed, err)
	}
	s.storeBreaker.RecordSuccess()

	s.metrics.IncrementCounter(MetricStatementPersisted, map[string]string{"status": "stored"})
	s.auditLogger.LogStatementStored(ctx, record)

	return record, nil
}

// StoreStatus reports whether a store is configured and the state of its write breaker.
func (s *statementService) StoreStatus() StoreStatus {
	return StoreStatus{
		Enabled:             s.repo != nil,
		Breaker:             s.storeBreaker.GetState(),
		ConsecutiveFailures: s.storeBreaker.GetFailureCount(),
	}
}

func (s *statementService) recordTransformMetrics(statement *models.NewMerchantStatement, diagnostics []transform.Diagnostic, duration time.Duration) {
	outcome := "clean"
	switch {
	case len(statement.Metadata.Errors) > 0:
		outcome = "with_errors"
	case len(statement.Metadata.Warnings) > 0:
		outcome = "with_warnings"
	}

	s.metrics.IncrementCounter(MetricStatementTransformed, map[string]string{"outcome": outcome})
	for _, d := range diagnostics {
		s.metrics.IncrementCounter(MetricStatementDiagnostic, map[string]string{"kind": string(d.Kind)})
	}
	s.metrics.RecordGauge(MetricStatementBuckets, float64(statement.Metadata.UniqueBuckets), nil)
	s.metrics.RecordGauge(MetricStatementRows, float64(statement.Metadata.TotalTransactionRows), nil)
	s.metrics.RecordProcessingTime(MetricTransformDuration, duration)
}

// TransformBatch transforms every statement with bounded concurrency. Outcomes are in input
// order. A failed statement does not stop the others; cancelling ctx stops scheduling and the
// unscheduled statements fail with the context error.
func (s *statementService) TransformBatch(ctx context.Context, statements []models.ExtractedStatement, info RequestInfo) ([]BatchOutcome, error) {
	if len(statements) == 0 {
		return nil, ErrEmptyBatch
	}
	if s.maxBatchSize > 0 && len(statements) > s.maxBatchSize {
		return nil, fmt.Errorf("%w: %d statements, limit %d", ErrBatchTooLarge, len(statements), s.maxBatchSize)
	}

	start := time.Now()
	outcomes := make([]BatchOutcome, len(statements))
	for i := range outcomes {
		outcomes[i].Index = i
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchConcurrency)

	for i := range statements {
		if err := gctx.Err(); err != nil {
			outcomes[i].Err = err
			continue
		}

		g.Go(func() error {
			result, err := s.Transform(gctx, statements[i], info)
			outcomes[i].Result = result
			outcomes[i].Err = err
			return nil
		})
	}

	_ = g.Wait()

	succeeded, failed := 0, 0
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			failed++
		} else {
			succeeded++
		}
	}

	status := "completed"
	if failed > 0 {
		status = "partial"
	}
	s.metrics.IncrementCounter(MetricBatchTransformed, map[string]string{"status": status})
	s.metrics.RecordProcessingTime(MetricBatchDuration, time.Since(start))
	s.auditLogger.LogBatchCompleted(ctx, len(statements), succeeded, failed, time.Since(start).Milliseconds())

	if s.audit != nil {
		if err := s.audit.LogBatchTransformed(ctx, succeeded, failed, info); err != nil {
			slog.WarnContext(ctx, "failed to write audit log", "error", err)
		}
	}

	if err := ctx.Err(); err != nil {
		return outcomes, err
	}

	return outcomes, nil
}

func (s *statementService) GetStatement(ctx context.Context, id uuid.UUID, info RequestInfo) (*models.StatementRecord, error) {
	if s.repo == nil {
		return nil, ErrStoreDisabled
	}

	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.auditView(ctx, record, info)
	return record, nil
}

func (s *statementService) GetStatementByUploadID(ctx context.Context, uploadID string, info RequestInfo) (*models.StatementRecord, error) {
	if s.repo == nil {
		return nil, ErrStoreDisabled
	}

	record, err := s.repo.GetByUploadID(ctx, uploadID)
	if err != nil {
		return nil, err
	}

	s.auditView(ctx, record, info)
	return record, nil
}

func (s *statementService) auditView(ctx context.Context, record *models.StatementRecord, info RequestInfo) {
	if s.audit == nil {
		return
	}
	if err := s.audit.LogStatementViewed(ctx, record, info); err != nil {
		slog.WarnContext(ctx, "failed to write audit log",
			"record_id", record.ID,
			"error", err)
	}
}

func (s *statementService) ListStatements(ctx context.Context, offset, limit int) ([]*models.StatementRecord, int64, error) {
	if s.repo == nil {
		return nil, 0, ErrStoreDisabled
	}

	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	return s.repo.List(ctx, offset, limit)
}
