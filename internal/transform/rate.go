package transform

import (
	"fmt"
	"regexp"
	"strings"

	"statement-transformer/internal/models"

	"github.com/shopspring/decimal"
)

// Recognised rate terms. An expression is one or more terms joined by '+':
//
//	1.53%            percentage
//	£0.20  0.20 GBP  fixed amount in major units
//	20p  3 pence  5c fixed amount in minor units
//	1.53% + 20p      compound
const number = `(\d+(?:\.\d+)?|\.\d+)`

var (
	percentTerm     = regexp.MustCompile(`^` + number + `\s*%$`)
	prefixMoneyTerm = regexp.MustCompile(`(?i)^(?:[£$€]|gbp|eur|usd)\s*` + number + `\s*(p|pence|c|cents)?$`)
	suffixMoneyTerm = regexp.MustCompile(`(?i)^` + number + `\s*(gbp|eur|usd)$`)
	minorMoneyTerm  = regexp.MustCompile(`(?i)^` + number + `\s*(p|pence|c|cents)$`)
)

// ParseRate parses a fee-rate expression. It never fails: anything outside the
// recognised grammar yields an unparseable term that keeps the raw text.
func ParseRate(raw string) models.FeeTerm {
	text := normalizeText(raw)
	if text == "" {
		return models.NewUnparseableFeeTerm(raw)
	}

	term := models.FeeTerm{
		Percentage:    decimal.Zero,
		Fixed:         decimal.Zero,
		RawExpression: raw,
	}

	for _, part := range strings.Split(text, "+") {
		part = strings.TrimSpace(part)

		if m := percentTerm.FindStringSubmatch(part); m != nil {
			term.Percentage = term.Percentage.Add(parseNumber(m[1]))
			continue
		}

		amount, ok := parseFixedTerm(part)
		if !ok {
			return models.NewUnparseableFeeTerm(raw)
		}
		term.Fixed = term.Fixed.Add(amount)
	}

	return term
}

func parseFixedTerm(part string) (decimal.Decimal, bool) {
	if m := prefixMoneyTerm.FindStringSubmatch(part); m != nil {
		amount := parseNumber(m[1])
		if m[2] != "" {
			amount = amount.Shift(-2)
		}
		return amount, true
	}
	if m := suffixMoneyTerm.FindStringSubmatch(part); m != nil {
		return parseNumber(m[1]), true
	}
	if m := minorMoneyTerm.FindStringSubmatch(part); m != nil {
		return parseNumber(m[1]).Shift(-2), true
	}
	return decimal.Zero, false
}

// parseNumber converts a string matched by the number pattern.
func parseNumber(s string) decimal.Decimal {
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	return decimal.RequireFromString(s)
}

// parseRateField parses the rate of a row and reports a RATE_PARSE diagnostic
// when the expression is not recognised.
func parseRateField(row int, raw string) (models.FeeTerm, *Diagnostic) {
	term := ParseRate(raw)
	if !term.Unparseable {
		return term, nil
	}

	message := fmt.Sprintf("unrecognised rate expression %q, recorded as unparseable", raw)
	if normalizeText(raw) == "" {
		message = "rate expression is blank, recorded as unparseable"
	}

	return term, &Diagnostic{
		Kind:    KindRateParse,
		Row:     row,
		Field:   "chargeRate",
		Raw:     raw,
		Message: message,
	}
}
