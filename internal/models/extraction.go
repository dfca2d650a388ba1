package models

// ExtractedRow is a single fee row as produced by the upstream extraction step.
// Category tags are validated upstream; an empty tag means the row did not state it.
type ExtractedRow struct {
	Scheme                 Scheme   `json:"scheme"`
	SchemeOtherDescription string   `json:"schemeOtherDescription,omitempty"`
	Presence               Presence `json:"presence"`
	Region                 Region   `json:"region"`
	Realm                  Realm    `json:"realm"`
	CardType               CardType `json:"cardType"`

	ChargeTypeDescription string `json:"chargeTypeDescription,omitempty"`
	ChargeRateRaw         string `json:"chargeRate"`
	ChargeTotalRaw        string `json:"chargeTotal"`
	TransactionsValueRaw  string `json:"transactionsValue"`
	TransactionCount      int    `json:"numberOfTransactions"`

	// Reasoning is the extractor's audit note. It is carried but never interpreted.
	Reasoning string `json:"reasoning,omitempty"`
}

// HeaderTotals are the summary totals printed on the statement itself.
type HeaderTotals struct {
	TotalValueRaw   string `json:"totalValue"`
	TotalChargesRaw string `json:"totalCharges"`
}

// MerchantDetails is statement-level information echoed into the output unchanged.
type MerchantDetails struct {
	UploadID             string  `json:"merchantStatementUploadId"`
	MerchantName         string  `json:"merchantName"`
	MerchantID           *string `json:"merchantId"`
	PaymentProvider      string  `json:"paymentProvider"`
	StatementDate        string  `json:"statementDate"`
	StatementPeriod      *string `json:"statementPeriod"`
	AuthorisationFeeRaw  string  `json:"-"`
	RegisteredCompany    *bool   `json:"registeredCompany"`
	MerchantCategoryCode *string `json:"merchantCategoryCode"`
}

// ExtractedStatement is the complete input of a transformation.
type ExtractedStatement struct {
	Merchant MerchantDetails
	Rows     []ExtractedRow
	Header   HeaderTotals
}
