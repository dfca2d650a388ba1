package services

import (
	"testing"

	"statement-transformer/internal/models"
	"statement-transformer/internal/transform"

	"github.com/stretchr/testify/suite"
)

type StatementGeneratorTestSuite struct {
	suite.Suite
	generator *statementGenerator
}

func TestStatementGeneratorSuite(t *testing.T) {
	suite.Run(t, new(StatementGeneratorTestSuite))
}

func (s *StatementGeneratorTestSuite) SetupTest() {
	s.generator = NewStatementGenerator(42).(*statementGenerator)
}

func (s *StatementGeneratorTestSuite) TestMerchantCategories_HaveValidMCCCodes() {
	s.GreaterOrEqual(len(s.generator.categories), 10)
	for _, category := range s.generator.categories {
		s.Len(category.MCCCode, 4, "MCC code should be 4 digits for sector: %s", category.Sector)
		s.NotEmpty(category.Sector)
	}
}

func (s *StatementGeneratorTestSuite) TestGenerateStatement_Shape() {
	statement := s.generator.GenerateStatement(8)

	s.Len(statement.Rows, 8)
	s.NotEmpty(statement.Merchant.UploadID)
	s.NotEmpty(statement.Merchant.MerchantName)
	s.Require().NotNil(statement.Merchant.MerchantCategoryCode)
	s.Len(*statement.Merchant.MerchantCategoryCode, 4)
	s.Regexp(`^£[\d,]+\.\d{2}$`, statement.Header.TotalValueRaw)

	for _, row := range statement.Rows {
		s.Contains(models.AllSchemes(), row.Scheme)
		s.Contains(models.AllCardTypes(), row.CardType)
		s.Positive(row.TransactionCount)
		s.Regexp(`^\d+\.\d{2}%( \+ \d+p)?$`, row.ChargeRateRaw)
	}
}

func (s *StatementGeneratorTestSuite) TestGenerateStatement_MinimumOneRow() {
	s.Len(s.generator.GenerateStatement(0).Rows, 1)
}

func (s *StatementGeneratorTestSuite) TestGenerateStatement_Deterministic() {
	a := NewStatementGenerator(7).GenerateStatement(3)
	b := NewStatementGenerator(7).GenerateStatement(3)

	s.Equal(a.Rows, b.Rows)
	s.Equal(a.Header, b.Header)
}

func (s *StatementGeneratorTestSuite) TestGenerateStatement_TransformsCleanly() {
	statement := s.generator.GenerateStatement(25)

	engine, err := transform.NewEngine(transform.DefaultPolicy())
	s.Require().NoError(err)
	result := engine.Run(statement)

	s.Empty(result.Diagnostics)
	s.Equal(25, result.Statement.Metadata.TotalTransactionRows)
	s.Equal(statement.Header.TotalValueRaw, result.Statement.Metadata.ExtractedTotals.Value)
}
