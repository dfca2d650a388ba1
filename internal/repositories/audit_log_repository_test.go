package repositories

import (
	"context"
	"testing"
	"time"

	"statement-transformer/internal/database"
	"statement-transformer/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestAuditLogRepository(t *testing.T) {
	suite.Run(t, new(AuditLogRepositorySuite))
}

type AuditLogRepositorySuite struct {
	suite.Suite
	ctx  context.Context
	db   *database.DB
	repo AuditLogRepositoryInterface
}

func (s *AuditLogRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAuditLogRepository(s.db.DB)
}

func (s *AuditLogRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *AuditLogRepositorySuite) newLog(action, resourceID string) *models.AuditLog {
	log := &models.AuditLog{
		Action:     action,
		Resource:   models.AuditResourceStatement,
		ResourceID: resourceID,
		TraceID:    uuid.NewString(),
		IPAddress:  "192.168.1.1",
		UserAgent:  "Mozilla/5.0",
	}
	s.Require().NoError(s.repo.Create(s.ctx, log))
	return log
}

func (s *AuditLogRepositorySuite) TestCreate() {
	log := s.newLog(models.AuditActionStatementTransformed, "upload-1")

	s.NotEqual(uuid.Nil, log.ID)
	s.NotZero(log.CreatedAt)
}

func (s *AuditLogRepositorySuite) TestCreate_Nil() {
	s.Error(s.repo.Create(s.ctx, nil))
}

func (s *AuditLogRepositorySuite) TestGetByResource_RoundTripsMetadata() {
	log := &models.AuditLog{
		Action:     models.AuditActionStatementTransformed,
		Resource:   models.AuditResourceStatement,
		ResourceID: "upload-1",
	}
	log.SetMetadata("warnings", 2)
	log.SetMetadata("bucket_keys", []string{"visaInPersonUkConsumerDebit"})
	s.Require().NoError(s.repo.Create(s.ctx, log))

	logs, total, err := s.repo.GetByResource(s.ctx, models.AuditResourceStatement, "upload-1", 0, 10)
	s.Require().NoError(err)
	s.Require().Len(logs, 1)
	s.Equal(int64(1), total)
	s.Equal(log.ID, logs[0].ID)
	s.Equal(log.Action, logs[0].Action)
	s.Equal(float64(2), logs[0].GetMetadata("warnings", nil))
	s.Equal([]interface{}{"visaInPersonUkConsumerDebit"}, logs[0].GetMetadata("bucket_keys", nil))
}

func (s *AuditLogRepositorySuite) TestGetByResource_NoMatches() {
	s.newLog(models.AuditActionStatementViewed, "upload-1")

	logs, total, err := s.repo.GetByResource(s.ctx, models.AuditResourceStatement, "upload-9", 0, 10)
	s.NoError(err)
	s.Empty(logs)
	s.Zero(total)
}

func (s *AuditLogRepositorySuite) TestGetByResource_Pagination() {
	for i := 0; i < 5; i++ {
		s.newLog(models.AuditActionStatementViewed, "upload-1")
		time.Sleep(5 * time.Millisecond)
	}
	s.newLog(models.AuditActionStatementViewed, "upload-2")

	logs, total, err := s.repo.GetByResource(s.ctx, models.AuditResourceStatement, "upload-1", 0, 2)
	s.NoError(err)
	s.Len(logs, 2)
	s.Equal(int64(5), total)
	s.True(!logs[0].CreatedAt.Before(logs[1].CreatedAt), "newest first")

	logs, total, err = s.repo.GetByResource(s.ctx, models.AuditResourceStatement, "upload-1", 4, 2)
	s.NoError(err)
	s.Len(logs, 1)
	s.Equal(int64(5), total)
}

func (s *AuditLogRepositorySuite) TestDeleteOlderThan() {
	old := &models.AuditLog{
		Action:     models.AuditActionBatchTransformed,
		Resource:   models.AuditResourceStatement,
		ResourceID: "upload-old",
		CreatedAt:  time.Now().Add(-48 * time.Hour),
	}
	s.Require().NoError(s.repo.Create(s.ctx, old))
	recent := s.newLog(models.AuditActionBatchTransformed, "upload-new")

	deleted, err := s.repo.DeleteOlderThan(s.ctx, 24*time.Hour)
	s.NoError(err)
	s.Equal(int64(1), deleted)

	_, total, err := s.repo.GetByResource(s.ctx, models.AuditResourceStatement, "upload-old", 0, 10)
	s.NoError(err)
	s.Zero(total)

	logs, _, err := s.repo.GetByResource(s.ctx, models.AuditResourceStatement, "upload-new", 0, 10)
	s.NoError(err)
	s.Require().Len(logs, 1)
	s.Equal(recent.ID, logs[0].ID)

	deleted, err = s.repo.DeleteOlderThan(s.ctx, 24*time.Hour)
	s.NoError(err)
	s.Zero(deleted)
}
