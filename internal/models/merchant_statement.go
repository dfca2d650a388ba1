package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// OutputScale is the number of decimal places of every rounded monetary and percentage figure.
const OutputScale = 2

// AggregatedBucket holds the exact, unrounded totals of every row sharing a canonical key.
type AggregatedBucket struct {
	Key                 string
	RowCount            int
	TotalValue          decimal.Decimal
	TotalCharges        decimal.Decimal
	Fees                []FeeTerm
	PercentageOfRevenue decimal.Decimal
}

// ExtractedTotals echoes the header totals exactly as they appeared in the input.
type ExtractedTotals struct {
	Value   string `json:"value"`
	Charges string `json:"charges"`
}

// ExtractionMetadata is the audit trail attached to every statement.
type ExtractionMetadata struct {
	TotalTransactionRows int             `json:"totalTransactionRows"`
	UniqueBuckets        int             `json:"uniqueBuckets"`
	ExtractedTotals      ExtractedTotals `json:"extractedTotals"`
	Errors               []string        `json:"errors"`
	Warnings             []string        `json:"warnings"`
}

// NewMerchantStatement is the result of a transformation. All figures are exact;
// rounding happens only when the statement is serialised (see View).
type NewMerchantStatement struct {
	Merchant                 MerchantDetails
	MonthlyRevenue           decimal.Decimal
	MonthlyCharges           decimal.Decimal
	AverageTransactionAmount decimal.Decimal
	AuthorisationFee         *decimal.Decimal
	Buckets                  []*AggregatedBucket
	Metadata                 ExtractionMetadata
}

// Bucket returns the bucket stored under key, or nil.
func (s *NewMerchantStatement) Bucket(key string) *AggregatedBucket {
	for _, b := range s.Buckets {
		if b.Key == key {
			return b
		}
	}
	return nil
}

// StatementView is the serialised, rounded form of a NewMerchantStatement.
type StatementView struct {
	MerchantDetails
	MonthlyRevenue           json.Number        `json:"monthlyRevenue"`
	MonthlyCharges           json.Number        `json:"monthlyCharges"`
	AverageTransactionAmount json.Number        `json:"averageTransactionAmount"`
	AuthorisationFee         *json.Number       `json:"authorisationFee"`
	Breakdown                Breakdown          `json:"breakdown"`
	ExtractionMetadata       ExtractionMetadata `json:"extractionMetadata"`
}

// BucketView is one rounded entry of the breakdown.
type BucketView struct {
	Count      int         `json:"count"`
	Value      json.Number `json:"value"`
	Charges    json.Number `json:"charges"`
	Percentage json.Number `json:"percentage"`
	Fees       []FeeView   `json:"fees"`
}

// FeeView is the serialised form of a FeeTerm. Components keep their parsed scale
// (never fewer than two places) because they are rates, not accumulated sums.
type FeeView struct {
	Percentage    json.Number `json:"percentage"`
	Fixed         json.Number `json:"fixed"`
	RawExpression string      `json:"rawExpression"`
	Unparseable   bool        `json:"unparseable"`
}

// View applies the rounding boundary: every accumulated figure is rounded half-up
// to OutputScale places here and nowhere else. The receiver is not modified.
func (s *NewMerchantStatement) View() StatementView {
	view := StatementView{
		MerchantDetails:          s.Merchant,
		MonthlyRevenue:           RoundedNumber(s.MonthlyRevenue),
		MonthlyCharges:           RoundedNumber(s.MonthlyCharges),
		AverageTransactionAmount: RoundedNumber(s.AverageTransactionAmount),
		Breakdown:                Breakdown{},
		ExtractionMetadata:       s.Metadata,
	}

	if s.AuthorisationFee != nil {
		fee := RoundedNumber(*s.AuthorisationFee)
		view.AuthorisationFee = &fee
	}

	for _, b := range s.Buckets {
		fees := make([]FeeView, 0, len(b.Fees))
		for _, f := range b.Fees {
			fees = append(fees, FeeView{
				Percentage:    exactNumber(f.Percentage),
				Fixed:         exactNumber(f.Fixed),
				RawExpression: f.RawExpression,
				Unparseable:   f.Unparseable,
			})
		}
		view.Breakdown.Set(b.Key, BucketView{
			Count:      b.RowCount,
			Value:      RoundedNumber(b.TotalValue),
			Charges:    RoundedNumber(b.TotalCharges),
			Percentage: RoundedNumber(b.PercentageOfRevenue),
			Fees:       fees,
		})
	}

	if view.ExtractionMetadata.Errors == nil {
		view.ExtractionMetadata.Errors = []string{}
	}
	if view.ExtractionMetadata.Warnings == nil {
		view.ExtractionMetadata.Warnings = []string{}
	}

	return view
}

// MarshalJSON serialises the rounded view.
func (s *NewMerchantStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.View())
}

// RoundedNumber rounds d half-up (away from zero) to OutputScale places.
func RoundedNumber(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(OutputScale))
}

func exactNumber(d decimal.Decimal) json.Number {
	places := -d.Exponent()
	if places < OutputScale {
		places = OutputScale
	}
	return json.Number(d.StringFixed(places))
}

// Breakdown is a bucket-key → BucketView mapping that serialises in insertion order.
type Breakdown struct {
	keys  []string
	items map[string]BucketView
}

// Set inserts or replaces the entry for key. New keys are appended to the order.
func (b *Breakdown) Set(key string, item BucketView) {
	if b.items == nil {
		b.items = make(map[string]BucketView)
	}
	if _, exists := b.items[key]; !exists {
		b.keys = append(b.keys, key)
	}
	b.items[key] = item
}

// Get returns the entry for key.
func (b Breakdown) Get(key string) (BucketView, bool) {
	item, ok := b.items[key]
	return item, ok
}

// Keys returns the bucket keys in insertion order.
func (b Breakdown) Keys() []string {
	keys := make([]string, len(b.keys))
	copy(keys, b.keys)
	return keys
}

// Len returns the number of entries.
func (b Breakdown) Len() int {
	return len(b.keys)
}

func (b Breakdown) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range b.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		itemJSON, err := json.Marshal(b.items[key])
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		buf.Write(itemJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (b *Breakdown) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*b = Breakdown{}
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("breakdown: expected object, got %v", tok)
	}

	result := Breakdown{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("breakdown: expected string key, got %v", keyTok)
		}
		var item BucketView
		if err := dec.Decode(&item); err != nil {
			return fmt.Errorf("breakdown: bucket %q: %w", key, err)
		}
		result.Set(key, item)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*b = result
	return nil
}
