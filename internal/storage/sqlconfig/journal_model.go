package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// JournalEntry groups the balanced lines of one bookkeeping event.
// CreatedBy is null when the recording user is unknown.
type JournalEntry struct {
	ID        uuid.UUID     `db:"id"`
	CompanyID uuid.UUID     `db:"company_id"`
	EntryDate time.Time     `db:"entry_date"`
	Memo      string        `db:"memo"`
	Status    string        `db:"status"`
	CreatedBy uuid.NullUUID `db:"created_by"`
	CreatedAt time.Time     `db:"created_at"`
}

// JournalLine is a single debit or credit within an entry.
type JournalLine struct {
	ID          uuid.UUID       `db:"id"`
	JournalID   uuid.UUID       `db:"journal_id"`
	Description string          `db:"description"`
	Debit       decimal.Decimal `db:"debit"`
	Credit      decimal.Decimal `db:"credit"`
	CreatedAt   time.Time       `db:"created_at"`
}

// JournalEntryCreate is the input for creating a journal entry.
type JournalEntryCreate struct {
	CompanyID uuid.UUID
	EntryDate time.Time
	Memo      string
	Status    string
	CreatedBy uuid.NullUUID
}

// JournalLineCreate is the input for one line of a batch insert.
type JournalLineCreate struct {
	JournalID   uuid.UUID
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

// IJournalsTable defines the interface for journal storage operations.
//
//go:generate mockery --name IJournalsTable --output mock_IJournalsTable.go
type IJournalsTable interface {
	InsertEntry(ctx context.Context, create *JournalEntryCreate) (*JournalEntry, error)
	InsertLines(ctx context.Context, lines []*JournalLineCreate) ([]*JournalLine, error)
}
