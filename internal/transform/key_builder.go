package transform

import (
	"fmt"
	"strings"

	"statement-transformer/internal/models"
)

// KeyBuilder maps the category tags of a row to its canonical bucket key.
type KeyBuilder struct {
	policy TagPolicy
}

func NewKeyBuilder(policy TagPolicy) *KeyBuilder {
	return &KeyBuilder{policy: policy}
}

// BuildKey returns the canonical key of row, e.g. "visaInPersonUkConsumerDebit".
// Segments always appear in the order scheme, presence, region, realm, card type.
func (b *KeyBuilder) BuildKey(row models.ExtractedRow) string {
	key, _ := b.KeyForRow(0, row)
	return key
}

// KeyForRow builds the key of the row at the given 1-based position and reports
// an INVALID_TAG diagnostic for every tag outside its closed set.
func (b *KeyBuilder) KeyForRow(rowNum int, row models.ExtractedRow) (string, []Diagnostic) {
	var diags []Diagnostic
	invalid := func(field, raw, applied string) {
		diags = append(diags, Diagnostic{
			Kind:    KindInvalidTag,
			Row:     rowNum,
			Field:   field,
			Raw:     raw,
			Message: fmt.Sprintf("unknown value %q, defaulted to %s", raw, applied),
		})
	}

	scheme, ok := resolveTag(row.Scheme, models.AllSchemes(), b.policy.DefaultScheme)
	if !ok {
		invalid("scheme", string(row.Scheme), string(scheme))
	}
	presence, ok := resolveTag(row.Presence, models.AllPresences(), b.policy.DefaultPresence)
	if !ok {
		invalid("presence", string(row.Presence), string(presence))
	}
	region, ok := resolveTag(row.Region, models.AllRegions(), b.policy.DefaultRegion)
	if !ok {
		invalid("region", string(row.Region), string(region))
	}
	realm, ok := resolveTag(row.Realm, models.AllRealms(), b.policy.DefaultRealm)
	if !ok {
		invalid("realm", string(row.Realm), string(realm))
	}
	cardType, ok := resolveTag(row.CardType, models.AllCardTypes(), b.policy.DefaultCardType)
	if !ok {
		invalid("cardType", string(row.CardType), string(cardType))
	}

	var key strings.Builder
	key.WriteString(schemeSegment(scheme, row.SchemeOtherDescription))
	key.WriteString(presence.KeySegment())
	key.WriteString(region.KeySegment())
	key.WriteString(realm.KeySegment())
	key.WriteString(cardType.KeySegment())

	return key.String(), diags
}

// resolveTag matches value against its closed set ignoring case and surrounding
// whitespace. A blank value takes the default; an unknown value takes the default
// and reports false.
func resolveTag[T ~string](value T, allowed []T, fallback T) (T, bool) {
	text := normalizeText(string(value))
	if text == "" {
		return fallback, true
	}
	for _, candidate := range allowed {
		if strings.EqualFold(text, string(candidate)) {
			return candidate, true
		}
	}
	return fallback, false
}

// schemeSegment names the network of an "other" row after its description,
// reduced to lower-case ASCII letters and digits ("Union Pay" becomes "unionpay").
func schemeSegment(scheme models.Scheme, otherDescription string) string {
	if scheme != models.SchemeOther {
		return string(scheme)
	}

	var b strings.Builder
	for _, r := range strings.ToLower(normalizeText(otherDescription)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return string(models.SchemeOther)
	}
	return b.String()
}
