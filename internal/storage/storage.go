package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stephenafamo/bob"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/config"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/storage/sqlconfig"
)

// Storage bundles the database handle with one typed table per entity.
type Storage struct {
	DB *sql.DB
	db bob.DB

	Companies  sqlconfig.ICompaniesTable
	Users      sqlconfig.IUsersTable
	Categories sqlconfig.ICategoriesTable
	Vendors    sqlconfig.IVendorsTable
	Bills      sqlconfig.IBillsTable
	Journals   sqlconfig.IJournalsTable
}

func NewStorage(env *config.Config) *Storage {
	db, err := sql.Open("postgres", env.ConnectionString())
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage.open")
	}

	bobDB := bob.NewDB(db)

	return &Storage{
		DB:         db,
		db:         bobDB,
		Companies:  sqlconfig.NewCompaniesTable(bobDB),
		Users:      sqlconfig.NewUsersTable(bobDB),
		Categories: sqlconfig.NewCategoriesTable(bobDB),
		Vendors:    sqlconfig.NewVendorsTable(bobDB),
		Bills:      sqlconfig.NewBillsTable(bobDB),
		Journals:   sqlconfig.NewJournalsTable(bobDB),
	}
}

// Write begins a transaction and returns a Writer with the same tables bound
// to it. The caller must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}
