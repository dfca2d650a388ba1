package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"statement-transformer/internal/config"
	"statement-transformer/internal/models"
	"statement-transformer/internal/repositories"
	"statement-transformer/internal/repositories/repository_mocks"
	"statement-transformer/internal/transform"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// recordingMetrics is an inline MetricsRecorderInterface to avoid import cycles with service_mocks
type recordingMetrics struct {
	mu       sync.Mutex
	counters map[string]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{counters: make(map[string]int)}
}

func (m *recordingMetrics) IncrementCounter(name string, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := name
	for _, label := range []string{"outcome", "kind", "status"} {
		if v, ok := tags[label]; ok {
			key += "|" + v
		}
	}
	m.counters[key]++
}

func (m *recordingMetrics) RecordProcessingTime(string, time.Duration) {}

func (m *recordingMetrics) RecordGauge(string, float64, map[string]string) {}

func (m *recordingMetrics) count(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[key]
}

// StatementServiceTestSuite defines the test suite for StatementServiceInterface
type StatementServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	ctrl     *gomock.Controller
	mockRepo *repository_mocks.MockStatementRepositoryInterface
	metrics  *recordingMetrics
	engine   *transform.Engine
	info     RequestInfo
}

func TestStatementServiceSuite(t *testing.T) {
	suite.Run(t, new(StatementServiceTestSuite))
}

func (s *StatementServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = repository_mocks.NewMockStatementRepositoryInterface(s.ctrl)
	s.metrics = newRecordingMetrics()
	s.info = RequestInfo{TraceID: "trace-1", IPAddress: "10.0.0.1", UserAgent: "curl/8"}

	engine, err := transform.NewEngine(transform.DefaultPolicy())
	s.Require().NoError(err)
	s.engine = engine
}

func (s *StatementServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *StatementServiceTestSuite) newService(repo repositories.StatementRepositoryInterface, cfg config.TransformConfig) StatementServiceInterface {
	logger := NewAuditLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewStatementService(s.engine, repo, nil, logger, s.metrics, cfg)
}

func sampleStatement(uploadID string) models.ExtractedStatement {
	return models.ExtractedStatement{
		Merchant: models.MerchantDetails{
			UploadID:      uploadID,
			MerchantName:  gofakeit.Company(),
			StatementDate: "2025-10-22",
		},
		Rows: []models.ExtractedRow{
			{
				Scheme:               models.SchemeVisa,
				Presence:             models.PresenceInPerson,
				Region:               models.RegionUK,
				Realm:                models.RealmConsumer,
				CardType:             models.CardTypeDebit,
				ChargeRateRaw:        "1.50%",
				ChargeTotalRaw:       "£15.00",
				TransactionsValueRaw: "£1000.00",
				TransactionCount:     10,
			},
		},
		Header: models.HeaderTotals{TotalValueRaw: "£1000.00", TotalChargesRaw: "£15.00"},
	}
}

func (s *StatementServiceTestSuite) TestTransform_StoresResult() {
	s.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *models.StatementRecord) error {
			s.Equal("upload-1", record.UploadID)
			s.Equal(1, record.BucketCount)
			record.ID = uuid.New()
			return nil
		})

	service := s.newService(s.mockRepo, config.TransformConfig{BatchConcurrency: 2})
	result, err := service.Transform(s.ctx, sampleStatement("upload-1"), s.info)

	s.Require().NoError(err)
	s.Require().NotNil(result.Record)
	s.NotEqual(uuid.Nil, result.Record.ID)
	s.Equal("1000", result.Statement.MonthlyRevenue.String())
	s.Equal(1, s.metrics.count(MetricStatementTransformed+"|clean"))
	s.Equal(1, s.metrics.count(MetricStatementPersisted+"|stored"))
}

func (s *StatementServiceTestSuite) TestTransform_CountsDiagnosticsByKind() {
	input := sampleStatement("upload-1")
	input.Rows[0].ChargeRateRaw = "see tariff"
	input.Header = models.HeaderTotals{}

	service := s.newService(nil, config.TransformConfig{})
	result, err := service.Transform(s.ctx, input, s.info)

	s.Require().NoError(err)
	s.Nil(result.Record)
	s.Len(result.Statement.Metadata.Warnings, 3)
	s.Equal(1, s.metrics.count(MetricStatementDiagnostic+"|RATE_PARSE"))
	s.Equal(2, s.metrics.count(MetricStatementDiagnostic+"|RECONCILIATION"))
	s.Equal(1, s.metrics.count(MetricStatementTransformed+"|with_warnings"))
}

func (s *StatementServiceTestSuite) TestTransform_StoreFailureIsBestEffort() {
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	service := s.newService(s.mockRepo, config.TransformConfig{})
	result, err := service.Transform(s.ctx, sampleStatement("upload-1"), s.info)

	s.Require().NoError(err)
	s.NotNil(result.Statement)
	s.Nil(result.Record)
	s.Equal(1, s.metrics.count(MetricStatementPersisted+"|failed"))
}

func (s *StatementServiceTestSuite) TestTransform_DuplicateUploadIsRejected() {
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repositories.ErrStatementExists)

	service := s.newService(s.mockRepo, config.TransformConfig{})
	result, err := service.Transform(s.ctx, sampleStatement("upload-1"), s.info)

	s.Nil(result)
	s.ErrorIs(err, repositories.ErrStatementExists)
	s.Equal(1, s.metrics.count(MetricStatementPersisted+"|duplicate"))
	s.Equal(0, s.metrics.count(MetricStatementPersisted+"|failed"))
}

func (s *StatementServiceTestSuite) TestTransform_StoreFailureWhenRequired() {
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repositories.ErrStatementExists)

	service := s.newService(s.mockRepo, config.TransformConfig{PersistRequired: true})
	result, err := service.Transform(s.ctx, sampleStatement("upload-1"), s.info)

	s.Nil(result)
	s.ErrorIs(err, repositories.ErrStatementExists)
}

func (s *StatementServiceTestSuite) TestTransform_StoreRequiredButDisabled() {
	service := s.newService(nil, config.TransformConfig{PersistRequired: true})
	_, err := service.Transform(s.ctx, sampleStatement("upload-1"), s.info)

	s.ErrorIs(err, ErrStoreDisabled)
}

func (s *StatementServiceTestSuite) TestTransform_CanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	service := s.newService(s.mockRepo, config.TransformConfig{})
	_, err := service.Transform(ctx, sampleStatement("upload-1"), s.info)

	s.ErrorIs(err, context.Canceled)
}

func (s *StatementServiceTestSuite) TestTransform_AuditsWhenConfigured() {
	auditRepo := repository_mocks.NewMockAuditLogRepositoryInterface(s.ctrl)
	auditRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, log *models.AuditLog) error {
			s.Equal(models.AuditActionStatementTransformed, log.Action)
			s.Equal("trace-1", log.TraceID)
			return errors.New("audit store down")
		})

	logger := NewAuditLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	service := NewStatementService(s.engine, nil, NewAuditService(auditRepo), logger, s.metrics, config.TransformConfig{})

	result, err := service.Transform(s.ctx, sampleStatement("upload-1"), s.info)
	s.NoError(err)
	s.NotNil(result)
}

func (s *StatementServiceTestSuite) TestTransformBatch_PreservesOrder() {
	const size = 12
	statements := make([]models.ExtractedStatement, size)
	for i := range statements {
		statements[i] = sampleStatement(fmt.Sprintf("upload-%d", i))
	}

	s.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *models.StatementRecord) error {
			if record.UploadID == "upload-3" {
				return repositories.ErrStatementExists
			}
			return nil
		}).
		Times(size)

	service := s.newService(s.mockRepo, config.TransformConfig{BatchConcurrency: 4, MaxBatchSize: 20, PersistRequired: true})
	outcomes, err := service.TransformBatch(s.ctx, statements, s.info)

	s.Require().NoError(err)
	s.Require().Len(outcomes, size)
	for i, outcome := range outcomes {
		s.Equal(i, outcome.Index)
		if i == 3 {
			s.ErrorIs(outcome.Err, repositories.ErrStatementExists)
			s.Nil(outcome.Result)
			continue
		}
		s.Require().NoError(outcome.Err)
		s.Equal(fmt.Sprintf("upload-%d", i), outcome.Result.Statement.Merchant.UploadID)
	}
	s.Equal(1, s.metrics.count(MetricBatchTransformed+"|partial"))
}

func (s *StatementServiceTestSuite) TestTransformBatch_Limits() {
	service := s.newService(nil, config.TransformConfig{MaxBatchSize: 2})

	_, err := service.TransformBatch(s.ctx, nil, s.info)
	s.ErrorIs(err, ErrEmptyBatch)

	_, err = service.TransformBatch(s.ctx, make([]models.ExtractedStatement, 3), s.info)
	s.ErrorIs(err, ErrBatchTooLarge)
}

func (s *StatementServiceTestSuite) TestTransformBatch_CanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	service := s.newService(nil, config.TransformConfig{BatchConcurrency: 1})
	outcomes, err := service.TransformBatch(ctx, []models.ExtractedStatement{sampleStatement("a"), sampleStatement("b")}, s.info)

	s.ErrorIs(err, context.Canceled)
	s.Require().Len(outcomes, 2)
	for _, outcome := range outcomes {
		s.ErrorIs(outcome.Err, context.Canceled)
	}
}

func (s *StatementServiceTestSuite) TestGetStatement() {
	id := uuid.New()
	record := &models.StatementRecord{ID: id, UploadID: "upload-1"}
	s.mockRepo.EXPECT().GetByID(gomock.Any(), id).Return(record, nil)

	service := s.newService(s.mockRepo, config.TransformConfig{})
	found, err := service.GetStatement(s.ctx, id, s.info)

	s.NoError(err)
	s.Equal(record, found)
}

func (s *StatementServiceTestSuite) TestGetStatement_NotFound() {
	s.mockRepo.EXPECT().GetByUploadID(gomock.Any(), "missing").Return(nil, repositories.ErrStatementNotFound)

	service := s.newService(s.mockRepo, config.TransformConfig{})
	_, err := service.GetStatementByUploadID(s.ctx, "missing", s.info)

	s.ErrorIs(err, repositories.ErrStatementNotFound)
}

func (s *StatementServiceTestSuite) TestReadsWithoutStore() {
	service := s.newService(nil, config.TransformConfig{})

	_, err := service.GetStatement(s.ctx, uuid.New(), s.info)
	s.ErrorIs(err, ErrStoreDisabled)
	_, err = service.GetStatementByUploadID(s.ctx, "upload-1", s.info)
	s.ErrorIs(err, ErrStoreDisabled)
	_, _, err = service.ListStatements(s.ctx, 0, 10)
	s.ErrorIs(err, ErrStoreDisabled)
}

func (s *StatementServiceTestSuite) TestListStatements_ClampsPaging() {
	s.mockRepo.EXPECT().List(gomock.Any(), 0, defaultListLimit).Return(nil, int64(0), nil)
	s.mockRepo.EXPECT().List(gomock.Any(), 40, maxListLimit).Return(nil, int64(0), nil)

	service := s.newService(s.mockRepo, config.TransformConfig{})

	_, _, err := service.ListStatements(s.ctx, -1, 0)
	s.NoError(err)
	_, _, err = service.ListStatements(s.ctx, 40, 1000)
	s.NoError(err)
}

func (s *StatementServiceTestSuite) TestTransform_StoreBreakerOpens() {
	s.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(errors.New("connection refused")).
		Times(2)

	service := s.newService(s.mockRepo, config.TransformConfig{StoreMaxFailures: 2, StoreRetryAfter: time.Hour})

	for i := 0; i < 3; i++ {
		result, err := service.Transform(s.ctx, sampleStatement(fmt.Sprintf("upload-%d", i)), s.info)
		s.Require().NoError(err)
		s.Nil(result.Record)
	}

	s.Equal(3, s.metrics.count(MetricStatementPersisted+"|failed"))

	status := service.StoreStatus()
	s.True(status.Enabled)
	s.Equal(StateOpen, status.Breaker)
	s.Equal(2, status.ConsecutiveFailures)
	s.False(s.newService(nil, config.TransformConfig{}).StoreStatus().Enabled)

	required := s.newService(s.mockRepo, config.TransformConfig{PersistRequired: true, StoreMaxFailures: 1, StoreRetryAfter: time.Hour})
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	_, err := required.Transform(s.ctx, sampleStatement("upload-a"), s.info)
	s.ErrorIs(err, ErrStoreFailed)

	_, err = required.Transform(s.ctx, sampleStatement("upload-b"), s.info)
	s.ErrorIs(err, ErrStoreUnavailable)
}
