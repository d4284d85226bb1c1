// Package expense contains the HTTP handlers for expense (bill) endpoints.
package expense

import (
	"time"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/service"
)

const billDateFormat = "2006-01-02"

// Expense is the API representation of a recorded expense.
type Expense struct {
	ID          string `json:"id" doc:"Expense UUID"`
	CompanyID   string `json:"company_id" doc:"Owning company UUID"`
	VendorID    string `json:"vendor_id" doc:"Vendor UUID"`
	VendorName  string `json:"vendor_name" doc:"Vendor display name"`
	BillNumber  string `json:"bill_number" doc:"Generated bill number"`
	BillDate    string `json:"bill_date" doc:"Bill date (YYYY-MM-DD)"`
	TotalAmount string `json:"total_amount" doc:"Decimal total amount"`
	BalanceDue  string `json:"balance_due" doc:"Decimal outstanding balance"`
	Status      string `json:"status" doc:"draft, posted, or void"`
	Memo        string `json:"memo,omitempty" doc:"Free-form memo"`
	CreatedAt   string `json:"created_at" doc:"Creation timestamp (RFC 3339)"`
}

// FromService converts a service expense to its API representation.
func FromService(e service.Expense) Expense {
	return Expense{
		ID:          e.ID.String(),
		CompanyID:   e.CompanyID.String(),
		VendorID:    e.VendorID.String(),
		VendorName:  e.VendorName,
		BillNumber:  e.BillNumber,
		BillDate:    e.BillDate.Format(billDateFormat),
		TotalAmount: e.TotalAmount.StringFixed(2),
		BalanceDue:  e.BalanceDue.StringFixed(2),
		Status:      e.Status,
		Memo:        e.Memo,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}
