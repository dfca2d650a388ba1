package services

import (
	"fmt"
	"sync"
	"time"

	"statement-transformer/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	minRowValuePence = 5_000
	maxRowValuePence = 5_000_000
	minRateBasisPts  = 20
	maxRateBasisPts  = 295
	maxRowCount      = 2_000
)

// merchantCategory pairs a trading sector with its merchant category code.
type merchantCategory struct {
	Sector  string
	MCCCode string
}

type statementGenerator struct {
	mu         sync.Mutex
	faker      *gofakeit.Faker
	printer    *message.Printer
	categories []merchantCategory
	providers  []string
}

// NewStatementGenerator creates a generator of realistic extracted statements.
// The same non-zero seed always yields the same statements.
func NewStatementGenerator(seed uint64) StatementGeneratorInterface {
	return &statementGenerator{
		faker:      gofakeit.New(seed),
		printer:    message.NewPrinter(language.BritishEnglish),
		categories: initializeMerchantCategories(),
		providers:  []string{"Worldpay", "Barclaycard", "Elavon", "Lloyds Cardnet", "Global Payments", "Stripe"},
	}
}

func initializeMerchantCategories() []merchantCategory {
	return []merchantCategory{
		{"Groceries", "5411"},
		{"Restaurants", "5812"},
		{"Fast Food", "5814"},
		{"Fuel", "5542"},
		{"Electronics", "5732"},
		{"Home Improvement", "5200"},
		{"Department Store", "5311"},
		{"Clothing", "5651"},
		{"Pharmacy", "5912"},
		{"Hotels", "7011"},
		{"Taxis", "4121"},
		{"Education", "8299"},
	}
}

// GenerateStatement returns a statement of rows fee rows whose header totals
// match the sum of its rows.
func (g *statementGenerator) GenerateStatement(rows int) models.ExtractedStatement {
	g.mu.Lock()
	defer g.mu.Unlock()

	if rows < 1 {
		rows = 1
	}

	category := g.categories[g.faker.IntRange(0, len(g.categories)-1)]
	date := g.faker.DateRange(
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
	)
	merchantID := fmt.Sprintf("%d", g.faker.IntRange(10_000_000, 99_999_999))
	period := date.Format("January 2006")
	registered := g.faker.Bool()
	authorisationFee := g.formatMoney(decimal.NewFromInt(int64(g.faker.IntRange(1, 5))).Shift(-2))

	statement := models.ExtractedStatement{
		Merchant: models.MerchantDetails{
			UploadID:             uuid.NewString(),
			MerchantName:         g.faker.Company(),
			MerchantID:           &merchantID,
			PaymentProvider:      g.faker.RandomString(g.providers),
			StatementDate:        date.Format("2006-01-02"),
			StatementPeriod:      &period,
			AuthorisationFeeRaw:  authorisationFee,
			RegisteredCompany:    &registered,
			MerchantCategoryCode: &category.MCCCode,
		},
		Rows: make([]models.ExtractedRow, 0, rows),
	}

	totalValue := decimal.Zero
	totalCharges := decimal.Zero
	for i := 0; i < rows; i++ {
		row, value, charges := g.generateRow(category)
		statement.Rows = append(statement.Rows, row)
		totalValue = totalValue.Add(value)
		totalCharges = totalCharges.Add(charges)
	}

	statement.Header = models.HeaderTotals{
		TotalValueRaw:   g.formatMoney(totalValue),
		TotalChargesRaw: g.formatMoney(totalCharges),
	}

	return statement
}

func (g *statementGenerator) generateRow(category merchantCategory) (models.ExtractedRow, decimal.Decimal, decimal.Decimal) {
	row := models.ExtractedRow{
		Scheme:   models.Scheme(g.faker.RandomString(toStrings(models.AllSchemes()))),
		Presence: models.Presence(g.faker.RandomString(toStrings(models.AllPresences()))),
		Region:   models.Region(g.faker.RandomString(toStrings(models.AllRegions()))),
		Realm:    models.Realm(g.faker.RandomString(toStrings(models.AllRealms()))),
		CardType: models.CardType(g.faker.RandomString(toStrings(models.AllCardTypes()))),
	}
	if row.Scheme == models.SchemeOther {
		row.SchemeOtherDescription = g.faker.RandomString([]string{"UnionPay", "Alipay", "Bancontact"})
	}

	count := g.faker.IntRange(1, maxRowCount)
	value := decimal.NewFromInt(int64(g.faker.IntRange(minRowValuePence, maxRowValuePence))).Shift(-2)
	percentage := decimal.NewFromInt(int64(g.faker.IntRange(minRateBasisPts, maxRateBasisPts))).Shift(-2)
	fixedPence := []int{0, 2, 3, 5, 10, 20}[g.faker.IntRange(0, 5)]

	charges := value.Mul(percentage).Shift(-2).
		Add(decimal.NewFromInt(int64(count * fixedPence)).Shift(-2)).
		Round(2)

	row.ChargeRateRaw = percentage.StringFixed(2) + "%"
	if fixedPence > 0 {
		row.ChargeRateRaw += fmt.Sprintf(" + %dp", fixedPence)
	}
	row.TransactionCount = count
	row.TransactionsValueRaw = g.formatMoney(value)
	row.ChargeTotalRaw = g.formatMoney(charges)
	row.ChargeTypeDescription = fmt.Sprintf("%s %s %s", category.Sector, row.Scheme, row.CardType)

	return row, value, charges
}

// formatMoney renders amount the way printed statements do, e.g. £1,234.50.
func (g *statementGenerator) formatMoney(amount decimal.Decimal) string {
	return g.printer.Sprintf("£%.2f", amount.InexactFloat64())
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
