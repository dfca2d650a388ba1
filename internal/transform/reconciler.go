package transform

import (
	"errors"
	"fmt"

	"statement-transformer/internal/models"

	"github.com/shopspring/decimal"
)

// reconciliationFloor keeps the relative difference defined when a header total is zero.
var reconciliationFloor = decimal.RequireFromString("0.01")

var hundred = decimal.NewFromInt(100)

// Reconciler cross-checks aggregated totals against the totals printed on the statement.
type Reconciler struct {
	tolerance decimal.Decimal
}

func NewReconciler(tolerance decimal.Decimal) *Reconciler {
	return &Reconciler{tolerance: tolerance}
}

// Validate returns a RECONCILIATION warning for each total whose relative
// difference |aggregated - header| / max(|header|, 0.01) exceeds the tolerance.
// A total missing from the header cannot be checked; that is reported too.
func (r *Reconciler) Validate(aggregatedValue, aggregatedCharges decimal.Decimal, header models.HeaderTotals) []Diagnostic {
	var diags []Diagnostic
	if d := r.check("totalValue", aggregatedValue, header.TotalValueRaw); d != nil {
		diags = append(diags, *d)
	}
	if d := r.check("totalCharges", aggregatedCharges, header.TotalChargesRaw); d != nil {
		diags = append(diags, *d)
	}
	return diags
}

func (r *Reconciler) check(field string, aggregated decimal.Decimal, headerRaw string) *Diagnostic {
	expected, err := ParseMoney(headerRaw)
	if err != nil {
		message := fmt.Sprintf("header total %q is not a recognised amount, check skipped", headerRaw)
		if errors.Is(err, ErrEmptyAmount) {
			message = "header total is missing, check skipped"
		}
		return &Diagnostic{
			Kind:    KindReconciliation,
			Field:   field,
			Raw:     headerRaw,
			Message: message,
		}
	}

	divergence := RelativeDifference(aggregated, expected)
	if divergence.LessThanOrEqual(r.tolerance) {
		return nil
	}

	return &Diagnostic{
		Kind:  KindReconciliation,
		Field: field,
		Raw:   headerRaw,
		Message: fmt.Sprintf("aggregated %s differs from header %s by %s%%",
			aggregated.StringFixed(models.OutputScale),
			expected.StringFixed(models.OutputScale),
			divergence.Mul(hundred).StringFixed(models.OutputScale)),
	}
}

// RelativeDifference returns |aggregated - expected| / max(|expected|, 0.01).
func RelativeDifference(aggregated, expected decimal.Decimal) decimal.Decimal {
	denominator := decimal.Max(expected.Abs(), reconciliationFloor)
	return aggregated.Sub(expected).Abs().DivRound(denominator, 16)
}
