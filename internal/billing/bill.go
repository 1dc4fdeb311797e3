// Package billing tracks per-patient charges and payments and derives
// a payment status from them.
package billing

import (
	"github.com/clinicore/hms/pkg/types"
)

// Bill tracks charges and payments for one patient. The status is
// recomputed from the full charge/payment history after every
// mutation; a manual override via SetStatus persists only until the
// next mutation.
type Bill struct {
	charges  []types.BillLine
	payments []types.BillLine
	status   types.BillStatus
}

// New creates an empty bill with status Pending
func New() *Bill {
	return &Bill{status: types.BillStatusPending}
}

// AddCharge appends a charge and recomputes the status. Non-positive
// amounts and empty descriptions are silently ignored.
func (b *Bill) AddCharge(description string, amount float64) {
	if amount <= 0 || description == "" {
		return
	}
	b.charges = append(b.charges, types.BillLine{Description: description, Amount: amount})
	b.updateStatus()
}

// AddPayment appends a payment and recomputes the status. Non-positive
// amounts and empty methods are silently ignored.
func (b *Bill) AddPayment(method string, amount float64) {
	if amount <= 0 || method == "" {
		return
	}
	b.payments = append(b.payments, types.BillLine{Description: method, Amount: amount})
	b.updateStatus()
}

// TotalCharges sums the full charge history
func (b *Bill) TotalCharges() float64 {
	var sum float64
	for _, c := range b.charges {
		sum += c.Amount
	}
	return sum
}

// TotalPayments sums the full payment history
func (b *Bill) TotalPayments() float64 {
	var sum float64
	for _, p := range b.payments {
		sum += p.Amount
	}
	return sum
}

// Balance returns total charges minus total payments
func (b *Bill) Balance() float64 {
	return b.TotalCharges() - b.TotalPayments()
}

// Status returns the current status, derived or manually set
func (b *Bill) Status() types.BillStatus {
	return b.status
}

// SetStatus overrides the derived status unconditionally. The override
// holds until the next AddCharge or AddPayment recomputes it.
func (b *Bill) SetStatus(status types.BillStatus) {
	b.status = status
}

// Summary returns a point-in-time copy of the bill for presentation
func (b *Bill) Summary() types.BillSummary {
	charges := make([]types.BillLine, len(b.charges))
	copy(charges, b.charges)
	payments := make([]types.BillLine, len(b.payments))
	copy(payments, b.payments)

	return types.BillSummary{
		Charges:       charges,
		Payments:      payments,
		TotalCharges:  b.TotalCharges(),
		TotalPayments: b.TotalPayments(),
		Balance:       b.Balance(),
		Status:        b.status,
	}
}

func (b *Bill) updateStatus() {
	bal := b.Balance()
	switch {
	case bal <= 0:
		b.status = types.BillStatusFullyCleared
	case b.TotalPayments() > 0:
		b.status = types.BillStatusPartiallyPaid
	default:
		b.status = types.BillStatusPending
	}
}
