package transform

import (
	"fmt"

	"statement-transformer/internal/models"

	"github.com/shopspring/decimal"
)

// Aggregation is the result of grouping rows into buckets. Buckets are in
// first-seen order and every figure is exact.
type Aggregation struct {
	Buckets      []*models.AggregatedBucket
	TotalValue   decimal.Decimal
	TotalCharges decimal.Decimal
	Diagnostics  []Diagnostic
}

type Aggregator struct {
	keys *KeyBuilder
}

func NewAggregator(keys *KeyBuilder) *Aggregator {
	return &Aggregator{keys: keys}
}

// Aggregate folds rows into buckets in input order. Malformed content in a row is
// reported and replaced by zero; it never stops the remaining rows.
func (a *Aggregator) Aggregate(rows []models.ExtractedRow) Aggregation {
	result := Aggregation{
		TotalValue:   decimal.Zero,
		TotalCharges: decimal.Zero,
	}
	index := make(map[string]*models.AggregatedBucket)
	seenFees := make(map[string]map[string]struct{})

	for i, row := range rows {
		rowNum := i + 1

		key, diags := a.keys.KeyForRow(rowNum, row)
		result.Diagnostics = append(result.Diagnostics, diags...)

		value, diag := parseMoneyField(rowNum, "transactionsValue", row.TransactionsValueRaw)
		if diag != nil {
			result.Diagnostics = append(result.Diagnostics, *diag)
		}
		charges, diag := parseMoneyField(rowNum, "chargeTotal", row.ChargeTotalRaw)
		if diag != nil {
			result.Diagnostics = append(result.Diagnostics, *diag)
		}
		fee, diag := parseRateField(rowNum, row.ChargeRateRaw)
		if diag != nil {
			result.Diagnostics = append(result.Diagnostics, *diag)
		}

		count := row.TransactionCount
		if count < 0 {
			result.Diagnostics = append(result.Diagnostics, Diagnostic{
				Kind:    KindInvalidRow,
				Row:     rowNum,
				Field:   "numberOfTransactions",
				Raw:     fmt.Sprint(count),
				Message: fmt.Sprintf("negative transaction count %d, treated as 0", count),
			})
			count = 0
		}

		bucket, ok := index[key]
		if !ok {
			bucket = &models.AggregatedBucket{
				Key:                 key,
				TotalValue:          decimal.Zero,
				TotalCharges:        decimal.Zero,
				PercentageOfRevenue: decimal.Zero,
			}
			index[key] = bucket
			seenFees[key] = make(map[string]struct{})
			result.Buckets = append(result.Buckets, bucket)
		}

		bucket.RowCount += count
		bucket.TotalValue = bucket.TotalValue.Add(value)
		bucket.TotalCharges = bucket.TotalCharges.Add(charges)

		if _, dup := seenFees[key][fee.Key()]; !dup {
			seenFees[key][fee.Key()] = struct{}{}
			bucket.Fees = append(bucket.Fees, fee)
		}

		result.TotalValue = result.TotalValue.Add(value)
		result.TotalCharges = result.TotalCharges.Add(charges)
	}

	return result
}
