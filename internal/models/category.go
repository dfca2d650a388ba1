package models

// Scheme is the card network that carried the transaction.
type Scheme string

const (
	SchemeVisa       Scheme = "visa"
	SchemeMastercard Scheme = "mastercard"
	SchemeAmex       Scheme = "amex"
	SchemeMaestro    Scheme = "maestro"
	SchemeDiners     Scheme = "diners"
	SchemeDiscover   Scheme = "discover"
	SchemeJCB        Scheme = "jcb"
	SchemeOther      Scheme = "other"
)

// Presence distinguishes card-present from cardholder-not-present capture.
type Presence string

const (
	PresenceInPerson Presence = "inPerson"
	PresenceOnline   Presence = "online"
)

// Region is the regulatory region bucket of the issuing card.
// UK is domestic, EEA is the post-Brexit regional bloc, everything else is international.
type Region string

const (
	RegionUK            Region = "uk"
	RegionEEA           Region = "eea"
	RegionInternational Region = "international"
)

// Realm separates personal cards from business cards.
type Realm string

const (
	RealmConsumer   Realm = "consumer"
	RealmCommercial Realm = "commercial"
)

// CardType is the funding mechanism of the card.
type CardType string

const (
	CardTypeDebit  CardType = "debit"
	CardTypeCredit CardType = "credit"
)

// AllSchemes returns all valid scheme values
func AllSchemes() []Scheme {
	return []Scheme{
		SchemeVisa,
		SchemeMastercard,
		SchemeAmex,
		SchemeMaestro,
		SchemeDiners,
		SchemeDiscover,
		SchemeJCB,
		SchemeOther,
	}
}

// AllPresences returns all valid presence values
func AllPresences() []Presence {
	return []Presence{PresenceInPerson, PresenceOnline}
}

// AllRegions returns all valid region values
func AllRegions() []Region {
	return []Region{RegionUK, RegionEEA, RegionInternational}
}

// AllRealms returns all valid realm values
func AllRealms() []Realm {
	return []Realm{RealmConsumer, RealmCommercial}
}

// AllCardTypes returns all valid card type values
func AllCardTypes() []CardType {
	return []CardType{CardTypeDebit, CardTypeCredit}
}

func (s Scheme) IsValid() bool {
	for _, v := range AllSchemes() {
		if s == v {
			return true
		}
	}
	return false
}

func (p Presence) IsValid() bool {
	return p == PresenceInPerson || p == PresenceOnline
}

func (r Region) IsValid() bool {
	return r == RegionUK || r == RegionEEA || r == RegionInternational
}

func (r Realm) IsValid() bool {
	return r == RealmConsumer || r == RealmCommercial
}

func (c CardType) IsValid() bool {
	return c == CardTypeDebit || c == CardTypeCredit
}

// KeySegment returns the capitalised form used inside a canonical bucket key.
func (p Presence) KeySegment() string {
	switch p {
	case PresenceInPerson:
		return "InPerson"
	case PresenceOnline:
		return "Online"
	default:
		return ""
	}
}

func (r Region) KeySegment() string {
	switch r {
	case RegionUK:
		return "Uk"
	case RegionEEA:
		return "Eea"
	case RegionInternational:
		return "International"
	default:
		return ""
	}
}

func (r Realm) KeySegment() string {
	switch r {
	case RealmConsumer:
		return "Consumer"
	case RealmCommercial:
		return "Commercial"
	default:
		return ""
	}
}

func (c CardType) KeySegment() string {
	switch c {
	case CardTypeDebit:
		return "Debit"
	case CardTypeCredit:
		return "Credit"
	default:
		return ""
	}
}
