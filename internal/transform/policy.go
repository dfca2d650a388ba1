package transform

import (
	"errors"
	"fmt"

	"statement-transformer/internal/models"

	"github.com/shopspring/decimal"
)

var ErrInvalidPolicy = errors.New("invalid transform policy")

// TagPolicy holds the category applied when a row does not state a tag.
// A default never overrides a tag that is present.
type TagPolicy struct {
	// DefaultCardType is the higher-fee category so that ambiguous rows never understate cost.
	DefaultCardType models.CardType
	DefaultRealm    models.Realm
	DefaultPresence models.Presence
	DefaultRegion   models.Region
	DefaultScheme   models.Scheme
}

// DefaultTagPolicy returns the conservative-estimate defaults.
func DefaultTagPolicy() TagPolicy {
	return TagPolicy{
		DefaultCardType: models.CardTypeCredit,
		DefaultRealm:    models.RealmConsumer,
		DefaultPresence: models.PresenceInPerson,
		DefaultRegion:   models.RegionUK,
		DefaultScheme:   models.SchemeOther,
	}
}

func (p TagPolicy) Validate() error {
	if !p.DefaultCardType.IsValid() {
		return fmt.Errorf("%w: default card type %q", ErrInvalidPolicy, p.DefaultCardType)
	}
	if !p.DefaultRealm.IsValid() {
		return fmt.Errorf("%w: default realm %q", ErrInvalidPolicy, p.DefaultRealm)
	}
	if !p.DefaultPresence.IsValid() {
		return fmt.Errorf("%w: default presence %q", ErrInvalidPolicy, p.DefaultPresence)
	}
	if !p.DefaultRegion.IsValid() {
		return fmt.Errorf("%w: default region %q", ErrInvalidPolicy, p.DefaultRegion)
	}
	if !p.DefaultScheme.IsValid() {
		return fmt.Errorf("%w: default scheme %q", ErrInvalidPolicy, p.DefaultScheme)
	}
	return nil
}

// DefaultReconciliationTolerance is the relative divergence (1%) tolerated between
// aggregated and header totals.
var DefaultReconciliationTolerance = decimal.NewFromFloat(0.01)

// Policy is the complete, immutable configuration of an Engine.
type Policy struct {
	Tags TagPolicy
	// ReconciliationTolerance is a fraction: 0.01 means 1%.
	ReconciliationTolerance decimal.Decimal
}

func DefaultPolicy() Policy {
	return Policy{
		Tags:                    DefaultTagPolicy(),
		ReconciliationTolerance: DefaultReconciliationTolerance,
	}
}

func (p Policy) Validate() error {
	if err := p.Tags.Validate(); err != nil {
		return err
	}
	if p.ReconciliationTolerance.IsNegative() {
		return fmt.Errorf("%w: reconciliation tolerance must not be negative, got %s", ErrInvalidPolicy, p.ReconciliationTolerance)
	}
	return nil
}
