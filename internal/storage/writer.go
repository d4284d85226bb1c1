package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/storage/sqlconfig"
)

// Writer exposes the entity tables bound to a single transaction. Everything
// written through it lands or rolls back as one unit.
type Writer struct {
	tx bob.Tx

	Users    sqlconfig.IUsersTable
	Vendors  sqlconfig.IVendorsTable
	Bills    sqlconfig.IBillsTable
	Journals sqlconfig.IJournalsTable
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:       tx,
		Users:    sqlconfig.NewUsersTable(tx),
		Vendors:  sqlconfig.NewVendorsTable(tx),
		Bills:    sqlconfig.NewBillsTable(tx),
		Journals: sqlconfig.NewJournalsTable(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
