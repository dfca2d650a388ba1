package config

import (
	"os"
	"path/filepath"
	"testing"

	"statement-transformer/internal/models"
	"statement-transformer/internal/transform"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PolicyTestSuite struct {
	suite.Suite
	dir string
}

func TestPolicySuite(t *testing.T) {
	suite.Run(t, new(PolicyTestSuite))
}

func (s *PolicyTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *PolicyTestSuite) writePolicy(content string) string {
	path := filepath.Join(s.dir, "policy.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *PolicyTestSuite) TestPolicy_DefaultsWhenNothingConfigured() {
	cfg := TransformConfig{}

	policy, err := cfg.Policy()

	s.Require().NoError(err)
	s.Equal(transform.DefaultTagPolicy(), policy.Tags)
	s.True(transform.DefaultReconciliationTolerance.Equal(policy.ReconciliationTolerance))
}

func (s *PolicyTestSuite) TestPolicy_FromFile() {
	path := s.writePolicy(`
defaults:
  cardType: debit
  presence: online
reconciliationTolerance: "0.05"
`)
	cfg := TransformConfig{PolicyFile: path}

	policy, err := cfg.Policy()

	s.Require().NoError(err)
	s.Equal(models.CardTypeDebit, policy.Tags.DefaultCardType)
	s.Equal(models.PresenceOnline, policy.Tags.DefaultPresence)
	s.Equal(models.RealmConsumer, policy.Tags.DefaultRealm)
	s.True(decimal.RequireFromString("0.05").Equal(policy.ReconciliationTolerance))
}

func (s *PolicyTestSuite) TestPolicy_EnvironmentOverridesFile() {
	path := s.writePolicy("defaults:\n  region: eea\n")
	cfg := TransformConfig{PolicyFile: path, DefaultRegion: "international"}

	policy, err := cfg.Policy()

	s.Require().NoError(err)
	s.Equal(models.RegionInternational, policy.Tags.DefaultRegion)
}

func (s *PolicyTestSuite) TestPolicy_InvalidValues() {
	testCases := []struct {
		name string
		cfg  TransformConfig
	}{
		{name: "unknown card type", cfg: TransformConfig{DefaultCardType: "prepaid"}},
		{name: "bad tolerance", cfg: TransformConfig{ReconciliationTolerance: "one percent"}},
		{name: "negative tolerance", cfg: TransformConfig{ReconciliationTolerance: "-0.01"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := tc.cfg.Policy()
			s.ErrorIs(err, transform.ErrInvalidPolicy)
		})
	}
}

func (s *PolicyTestSuite) TestPolicy_MissingOrMalformedFile() {
	cfg := TransformConfig{PolicyFile: filepath.Join(s.dir, "missing.yaml")}
	_, err := cfg.Policy()
	s.Error(err)

	cfg = TransformConfig{PolicyFile: s.writePolicy("defaults: [")}
	_, err = cfg.Policy()
	s.Error(err)
}

func (s *PolicyTestSuite) TestLoad_TransformSettingsFromEnvironment() {
	s.T().Setenv("TRANSFORM_BATCH_CONCURRENCY", "8")
	s.T().Setenv("STATEMENT_PERSIST_REQUIRED", "true")
	s.T().Setenv("TRANSFORM_DEFAULT_REALM", "commercial")
	s.T().Setenv("DB_DRIVER", "sqlite")
	s.T().Setenv("CORS_ALLOW_ORIGINS", "")

	cfg := Load()

	s.Equal(8, cfg.Transform.BatchConcurrency)
	s.True(cfg.Transform.PersistRequired)
	s.Equal("commercial", cfg.Transform.DefaultRealm)
	s.Equal("sqlite", cfg.Database.Driver)
	s.True(cfg.Database.Enabled())
	s.Equal([]string{"*"}, cfg.Server.CORSAllowOrigins)
}
