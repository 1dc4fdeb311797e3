package types

// BillStatus classifies a patient's payment state
type BillStatus string

const (
	BillStatusPending       BillStatus = "pending"
	BillStatusPartiallyPaid BillStatus = "partially_paid"
	BillStatusFullyCleared  BillStatus = "fully_cleared"
)

// DisplayName returns the human-readable status name
func (s BillStatus) DisplayName() string {
	switch s {
	case BillStatusPending:
		return "Pending"
	case BillStatusPartiallyPaid:
		return "Partially Paid"
	case BillStatusFullyCleared:
		return "Fully Cleared"
	default:
		return "Unknown"
	}
}

// BillLine is a single charge or payment entry
type BillLine struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// BillSummary is a point-in-time view of a bill for presentation
type BillSummary struct {
	Charges       []BillLine `json:"charges"`
	Payments      []BillLine `json:"payments"`
	TotalCharges  float64    `json:"total_charges"`
	TotalPayments float64    `json:"total_payments"`
	Balance       float64    `json:"balance"`
	Status        BillStatus `json:"status"`
}
