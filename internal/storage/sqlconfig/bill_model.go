package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Bill statuses. Voided bills stay in the table.
const (
	BillStatusDraft  = "draft"
	BillStatusPosted = "posted"
	BillStatusVoid   = "void"
)

// Bill represents a recorded expense owed to a vendor.
type Bill struct {
	ID          uuid.UUID       `db:"id"`
	CompanyID   uuid.UUID       `db:"company_id"`
	VendorID    uuid.UUID       `db:"vendor_id"`
	BillNumber  string          `db:"bill_number"`
	BillDate    time.Time       `db:"bill_date"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	BalanceDue  decimal.Decimal `db:"balance_due"`
	Status      string          `db:"status"`
	Memo        string          `db:"memo"`
	CreatedAt   time.Time       `db:"created_at"`
}

// BillWithVendor is a bill row joined with its vendor's name.
type BillWithVendor struct {
	Bill
	VendorName string `db:"vendor_name"`
}

// BillCreate is the input for creating a new bill. TotalAmount and BalanceDue
// are both set from the recorded amount.
type BillCreate struct {
	CompanyID   uuid.UUID
	VendorID    uuid.UUID
	BillNumber  string
	BillDate    time.Time
	TotalAmount decimal.Decimal
	BalanceDue  decimal.Decimal
	Status      string
	Memo        string
}

// BillUpdate holds the permitted partial-update fields for a bill.
type BillUpdate struct {
	VendorID    omit.Val[uuid.UUID]
	TotalAmount omit.Val[decimal.Decimal]
	BalanceDue  omit.Val[decimal.Decimal]
	BillDate    omit.Val[time.Time]
	Status      omit.Val[string]
	Memo        omit.Val[string]
}

// IsEmpty reports whether no fields are set.
func (u *BillUpdate) IsEmpty() bool {
	return !u.VendorID.IsValue() && !u.TotalAmount.IsValue() && !u.BalanceDue.IsValue() &&
		!u.BillDate.IsValue() && !u.Status.IsValue() && !u.Memo.IsValue()
}

// IBillsTable defines the interface for bill storage operations.
//
//go:generate mockery --name IBillsTable --output mock_IBillsTable.go
type IBillsTable interface {
	List(ctx context.Context) ([]*BillWithVendor, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*BillWithVendor, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Bill, error)
	Insert(ctx context.Context, create *BillCreate) (*Bill, error)
	Update(ctx context.Context, id uuid.UUID, update *BillUpdate) (*Bill, error)
}
