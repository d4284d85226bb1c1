package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/storage/sqlconfig"
)

// Expense represents a bill with its vendor name in the service layer.
type Expense struct {
	ID          uuid.UUID
	CompanyID   uuid.UUID
	VendorID    uuid.UUID
	VendorName  string
	BillNumber  string
	BillDate    time.Time
	TotalAmount decimal.Decimal
	BalanceDue  decimal.Decimal
	Status      string
	Memo        string
	CreatedAt   time.Time
}

// ExpenseUpdate holds the permitted partial-update fields for an expense.
// Amount updates both total_amount and balance_due. VendorName resolves (or
// creates) the vendor under the bill's company.
type ExpenseUpdate struct {
	VendorName *string
	Amount     *decimal.Decimal
	Memo       *string
	Date       *time.Time
	Status     *string
}

func expenseFromStorage(row *sqlconfig.Bill, vendorName string) Expense {
	return Expense{
		ID:          row.ID,
		CompanyID:   row.CompanyID,
		VendorID:    row.VendorID,
		VendorName:  vendorName,
		BillNumber:  row.BillNumber,
		BillDate:    row.BillDate,
		TotalAmount: row.TotalAmount,
		BalanceDue:  row.BalanceDue,
		Status:      row.Status,
		Memo:        row.Memo,
		CreatedAt:   row.CreatedAt,
	}
}
