package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FeeTerm is a parsed fee-rate expression such as "1.53% + 3p".
// Percentage is expressed in percentage points (1.53 means 1.53%), Fixed in major currency units.
type FeeTerm struct {
	Percentage    decimal.Decimal `json:"percentage"`
	Fixed         decimal.Decimal `json:"fixed"`
	RawExpression string          `json:"rawExpression"`
	Unparseable   bool            `json:"unparseable"`
}

// NewUnparseableFeeTerm returns the zero-valued term recorded when an expression is not recognised.
func NewUnparseableFeeTerm(raw string) FeeTerm {
	return FeeTerm{
		Percentage:    decimal.Zero,
		Fixed:         decimal.Zero,
		RawExpression: raw,
		Unparseable:   true,
	}
}

// Equal reports value equality. Parsed terms are equal when both components are
// numerically equal regardless of scale ("1.5%" equals "1.50%"). Unparseable terms
// never equal parsed ones and are compared by their trimmed raw text.
func (f FeeTerm) Equal(other FeeTerm) bool {
	if f.Unparseable != other.Unparseable {
		return false
	}
	if f.Unparseable {
		return strings.TrimSpace(f.RawExpression) == strings.TrimSpace(other.RawExpression)
	}
	return f.Percentage.Equal(other.Percentage) && f.Fixed.Equal(other.Fixed)
}

// Key returns a hash key consistent with Equal.
func (f FeeTerm) Key() string {
	if f.Unparseable {
		return "unparseable|" + strings.TrimSpace(f.RawExpression)
	}
	// String drops trailing fractional zeros, so equal values share one form.
	return f.Percentage.String() + "%|" + f.Fixed.String()
}
