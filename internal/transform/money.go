package transform

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrEmptyAmount   = errors.New("empty amount")
	ErrInvalidAmount = errors.New("invalid amount")
)

var (
	currencySymbols = strings.NewReplacer("£", "", "$", "", "€", "")
	currencyCodes   = regexp.MustCompile(`(?i)\b(gbp|eur|usd)\b`)
	// Group separators: comma, apostrophe and any whitespace (NFKC folds NBSP and thin spaces to a space).
	groupSeparators = regexp.MustCompile(`[,'\s]`)
	groupedAmount   = regexp.MustCompile(`^([+-]?)\s*(\d{1,3}(?:[,'\s]\d{3})+)(\.\d+)?$`)
	plainAmount     = regexp.MustCompile(`^([+-]?)\s*` + number + `$`)
)

// normalizeText folds compatibility characters (full-width digits, full-width %, no-break
// spaces) to their ASCII forms and trims surrounding whitespace.
func normalizeText(raw string) string {
	return strings.TrimSpace(norm.NFKC.String(raw))
}

// ParseMoney converts currency-formatted text such as "£1,234.56", "GBP 12.00",
// "-£3.10" or "(3.10)" into an exact decimal. It never rounds. Separators are only
// accepted between groups of three integer digits, so "1,5" and "1.000,50" are invalid.
func ParseMoney(raw string) (decimal.Decimal, error) {
	text := normalizeText(raw)
	if text == "" {
		return decimal.Zero, ErrEmptyAmount
	}

	negative := false
	if strings.HasPrefix(text, "(") && strings.HasSuffix(text, ")") {
		negative = true
		text = strings.TrimSpace(text[1 : len(text)-1])
	}

	text = currencySymbols.Replace(text)
	text = strings.TrimSpace(currencyCodes.ReplaceAllString(text, ""))
	if g := groupedAmount.FindStringSubmatch(text); g != nil {
		digits, ok := ungroup(g[2])
		if !ok {
			return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
		}
		text = g[1] + digits + g[3]
	}

	m := plainAmount.FindStringSubmatch(text)
	if m == nil || (negative && m[1] != "") {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}

	amount := parseNumber(m[2])
	if negative || m[1] == "-" {
		amount = amount.Neg()
	}

	return amount, nil
}

// ungroup removes thousands separators from an integer part, which must use a single
// separator throughout.
func ungroup(grouped string) (string, bool) {
	separators := groupSeparators.FindAllString(grouped, -1)
	for _, sep := range separators[1:] {
		if sep != separators[0] {
			return "", false
		}
	}
	return groupSeparators.ReplaceAllString(grouped, ""), true
}

// parseMoneyField parses a monetary field of a row, turning failure into a MONEY_PARSE
// diagnostic and a zero amount.
func parseMoneyField(row int, field, raw string) (decimal.Decimal, *Diagnostic) {
	amount, err := ParseMoney(raw)
	if err == nil {
		return amount, nil
	}

	message := fmt.Sprintf("unrecognised amount %q, treated as 0", raw)
	if errors.Is(err, ErrEmptyAmount) {
		message = "amount is blank, treated as 0"
	}

	return decimal.Zero, &Diagnostic{
		Kind:    KindMoneyParse,
		Row:     row,
		Field:   field,
		Raw:     raw,
		Message: message,
	}
}
