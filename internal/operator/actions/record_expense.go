package actions

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/storage"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/storage/sqlconfig"
)

const (
	defaultCategory      = "Uncategorized"
	defaultPaymentMethod = "cash"
)

// RecordExpense records a manual expense as one unit: it resolves the vendor,
// creates the bill, creates the journal entry, and inserts the two balanced
// journal lines. All four steps share the writer's transaction, so a failure
// in any step leaves nothing behind.
//
// UserID is best effort: when it does not reference an existing user the entry
// is recorded with a null created_by instead of failing.
type RecordExpense struct {
	CompanyID     uuid.UUID
	VendorName    string
	Amount        decimal.Decimal
	Category      string
	PaymentMethod string
	Memo          string
	Date          time.Time
	UserID        uuid.NullUUID

	// Populated by Perform on success.
	Bill         *sqlconfig.Bill
	JournalEntry *sqlconfig.JournalEntry
	Lines        []*sqlconfig.JournalLine

	IAction
}

func (a *RecordExpense) Perform(ctx context.Context, writer *storage.Writer) error {
	category := a.Category
	if category == "" {
		category = defaultCategory
	}
	paymentMethod := a.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = defaultPaymentMethod
	}
	date := a.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	vendor, err := writer.Vendors.Upsert(ctx, a.CompanyID, a.VendorName)
	if err != nil {
		return fmt.Errorf("resolve vendor: %w", err)
	}

	bill, err := writer.Bills.Insert(ctx, &sqlconfig.BillCreate{
		CompanyID:   a.CompanyID,
		VendorID:    vendor.ID,
		BillNumber:  "EXP-" + strconv.FormatInt(time.Now().UTC().Unix(), 10),
		BillDate:    date,
		TotalAmount: a.Amount,
		BalanceDue:  a.Amount,
		Status:      sqlconfig.BillStatusDraft,
		Memo:        a.Memo,
	})
	if err != nil {
		return fmt.Errorf("create bill: %w", err)
	}

	var createdBy uuid.NullUUID
	if a.UserID.Valid {
		user, findErr := writer.Users.FindByID(ctx, a.UserID.UUID)
		if findErr == nil && user != nil {
			createdBy = a.UserID
		}
	}

	entry, err := writer.Journals.InsertEntry(ctx, &sqlconfig.JournalEntryCreate{
		CompanyID: a.CompanyID,
		EntryDate: date,
		Memo:      fmt.Sprintf("Expense logged: %s (%s)", a.VendorName, category),
		Status:    "posted",
		CreatedBy: createdBy,
	})
	if err != nil {
		return fmt.Errorf("create journal entry: %w", err)
	}

	// Double entry: one debit, one credit, both equal to the bill amount.
	lines, err := writer.Journals.InsertLines(ctx, []*sqlconfig.JournalLineCreate{
		{
			JournalID:   entry.ID,
			Description: category + " expense",
			Debit:       a.Amount,
			Credit:      decimal.Zero,
		},
		{
			JournalID:   entry.ID,
			Description: paymentMethod + " payment",
			Debit:       decimal.Zero,
			Credit:      a.Amount,
		},
	})
	if err != nil {
		return fmt.Errorf("create journal lines: %w", err)
	}

	a.Bill = bill
	a.JournalEntry = entry
	a.Lines = lines
	return nil
}
