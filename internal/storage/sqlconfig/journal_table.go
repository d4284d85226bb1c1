package sqlconfig

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/scan"
)

var journalEntryColumns = []any{"id", "company_id", "entry_date", "memo", "status", "created_by", "created_at"}
var journalLineColumns = []any{"id", "journal_id", "description", "debit", "credit", "created_at"}

var _ IJournalsTable = (*JournalsTable)(nil)

type JournalsTable struct {
	exec bob.Executor
}

func NewJournalsTable(exec bob.Executor) *JournalsTable {
	return &JournalsTable{exec: exec}
}

func (t *JournalsTable) InsertEntry(ctx context.Context, create *JournalEntryCreate) (*JournalEntry, error) {
	query := psql.Insert(
		im.Into("journal_entries", "company_id", "entry_date", "memo", "status", "created_by"),
		im.Values(psql.Arg(create.CompanyID, create.EntryDate, create.Memo, create.Status, create.CreatedBy)),
		im.Returning(journalEntryColumns...),
	)
	return bob.One(ctx, t.exec, query, scan.StructMapper[*JournalEntry]())
}

// InsertLines inserts all lines as one statement so an entry's lines land together.
func (t *JournalsTable) InsertLines(ctx context.Context, lines []*JournalLineCreate) ([]*JournalLine, error) {
	mods := []bob.Mod[*dialect.InsertQuery]{
		im.Into("journal_lines", "journal_id", "description", "debit", "credit"),
		im.Returning(journalLineColumns...),
	}
	for _, line := range lines {
		mods = append(mods, im.Values(psql.Arg(line.JournalID, line.Description, line.Debit, line.Credit)))
	}
	return bob.All(ctx, t.exec, psql.Insert(mods...), scan.StructMapper[*JournalLine]())
}
