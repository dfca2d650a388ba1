package services

import (
	"context"
	"log/slog"
	"time"

	"statement-transformer/internal/models"
	"statement-transformer/internal/transform"
)

type contextKey string

// TraceIDKey is the context key under which the request trace ID travels into services.
const TraceIDKey contextKey = "trace_id"

// WithTraceID returns a context carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogTransformStarted(ctx context.Context, uploadID string, rows int) {
	al.logger.DebugContext(ctx, "statement transform started",
		slog.String("event_type", "transform_started"),
		slog.String("upload_id", uploadID),
		slog.Int("rows", rows),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func (al *AuditLogger) LogTransformCompleted(ctx context.Context, statement *models.NewMerchantStatement, diagnostics []transform.Diagnostic, durationMs int64) {
	attrs := []slog.Attr{
		slog.String("event_type", "transform_completed"),
		slog.String("upload_id", statement.Merchant.UploadID),
		slog.Int("rows", statement.Metadata.TotalTransactionRows),
		slog.Int("buckets", statement.Metadata.UniqueBuckets),
		slog.Int("warnings", len(statement.Metadata.Warnings)),
		slog.Int("errors", len(statement.Metadata.Errors)),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	}

	level := slog.LevelInfo
	if len(statement.Metadata.Errors) > 0 {
		level = slog.LevelWarn
	}

	al.logger.LogAttrs(ctx, level, "statement transformed", attrs...)

	for _, d := range diagnostics {
		al.logger.DebugContext(ctx, "statement diagnostic",
			slog.String("upload_id", statement.Merchant.UploadID),
			slog.String("kind", string(d.Kind)),
			slog.Int("row", d.Row),
			slog.String("field", d.Field),
			slog.String("raw", d.Raw),
			slog.String("trace_id", getTraceID(ctx)),
		)
	}
}

func (al *AuditLogger) LogStatementStored(ctx context.Context, record *models.StatementRecord) {
	al.logger.InfoContext(ctx, "statement stored",
		slog.String("event_type", "statement_stored"),
		slog.String("record_id", record.ID.String()),
		slog.String("upload_id", record.UploadID),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func (al *AuditLogger) LogPersistFailed(ctx context.Context, uploadID string, err error) {
	al.logger.WarnContext(ctx, "statement not stored",
		slog.String("event_type", "statement_persist_failed"),
		slog.String("upload_id", uploadID),
		slog.String("error", err.Error()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func (al *AuditLogger) LogBatchCompleted(ctx context.Context, size, succeeded, failed int, durationMs int64) {
	al.logger.InfoContext(ctx, "statement batch completed",
		slog.String("event_type", "batch_completed"),
		slog.Int("size", size),
		slog.Int("succeeded", succeeded),
		slog.Int("failed", failed),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func getTraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if traceID, ok := ctx.Value(TraceIDKey).(string); ok {
		return traceID
	}

	return ""
}
