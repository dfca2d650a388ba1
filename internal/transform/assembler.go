package transform

import (
	"errors"
	"fmt"

	"statement-transformer/internal/models"

	"github.com/shopspring/decimal"
)

// divisionPrecision is the number of places kept by the internal divisions. It is
// far beyond OutputScale, so it never shows in the rounded output.
const divisionPrecision = 16

// Assembler derives the top-level metrics of a statement from its aggregation.
type Assembler struct{}

func NewAssembler() *Assembler {
	return &Assembler{}
}

// Assemble builds the statement. Diagnostics already raised (aggregation, then
// reconciliation) come first in the metadata, followed by the ones raised here.
// The returned slice holds every diagnostic in metadata order.
func (a *Assembler) Assemble(input models.ExtractedStatement, agg Aggregation, raised []Diagnostic) (*models.NewMerchantStatement, []Diagnostic) {
	diags := &Diagnostics{}
	diags.Add(raised...)

	rows := len(input.Rows)
	revenue := agg.TotalValue
	charges := agg.TotalCharges

	statement := &models.NewMerchantStatement{
		Merchant:                 input.Merchant,
		MonthlyRevenue:           revenue,
		MonthlyCharges:           charges,
		AverageTransactionAmount: decimal.Zero,
		AuthorisationFee:         a.authorisationFee(input.Merchant.AuthorisationFeeRaw, diags),
		Buckets:                  agg.Buckets,
	}

	switch {
	case rows == 0:
		diags.Add(Diagnostic{
			Kind:    KindDegenerateInput,
			Message: "statement has no rows, all derived figures are 0",
		})
	case revenue.IsZero():
		diags.Add(Diagnostic{
			Kind:    KindDegenerateInput,
			Message: fmt.Sprintf("monthly revenue is 0 across %d rows, bucket percentages are 0", rows),
		})
	}

	if rows > 0 {
		statement.AverageTransactionAmount = revenue.DivRound(decimal.NewFromInt(int64(rows)), divisionPrecision)
	}

	for _, bucket := range statement.Buckets {
		if revenue.IsZero() {
			bucket.PercentageOfRevenue = decimal.Zero
			continue
		}
		bucket.PercentageOfRevenue = bucket.TotalValue.Mul(hundred).DivRound(revenue, divisionPrecision)
	}

	statement.Metadata = models.ExtractionMetadata{
		TotalTransactionRows: rows,
		UniqueBuckets:        len(statement.Buckets),
		ExtractedTotals: models.ExtractedTotals{
			Value:   input.Header.TotalValueRaw,
			Charges: input.Header.TotalChargesRaw,
		},
		Errors:   diags.Errors(),
		Warnings: diags.Warnings(),
	}

	return statement, diags.All()
}

// authorisationFee returns the per-authorisation fee, or nil when the statement
// has none. A zero or negative fee is treated as none.
func (a *Assembler) authorisationFee(raw string, diags *Diagnostics) *decimal.Decimal {
	fee, err := ParseMoney(raw)
	if errors.Is(err, ErrEmptyAmount) {
		return nil
	}
	if err != nil {
		diags.Add(Diagnostic{
			Kind:    KindMoneyParse,
			Field:   "authorisationFee",
			Raw:     raw,
			Message: fmt.Sprintf("unrecognised amount %q, omitted", raw),
		})
		return nil
	}
	if !fee.IsPositive() {
		return nil
	}
	return &fee
}
