package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var companyColumns = []any{"id", "name", "industry", "created_at"}

var _ ICompaniesTable = (*CompaniesTable)(nil)

type CompaniesTable struct {
	exec bob.Executor
}

func NewCompaniesTable(exec bob.Executor) *CompaniesTable {
	return &CompaniesTable{exec: exec}
}

// List returns all companies ordered oldest first, so read-time deduplication
// keeps the earliest created row for a given name.
func (t *CompaniesTable) List(ctx context.Context) ([]*Company, error) {
	query := psql.Select(
		sm.Columns(companyColumns...),
		sm.From("companies"),
		sm.OrderBy("created_at").Asc(),
		sm.OrderBy("id").Asc(),
	)
	return bob.All(ctx, t.exec, query, scan.StructMapper[*Company]())
}

// FindByID retrieves a company by primary key. Returns nil when no row exists.
func (t *CompaniesTable) FindByID(ctx context.Context, id uuid.UUID) (*Company, error) {
	query := psql.Select(
		sm.Columns(companyColumns...),
		sm.From("companies"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[*Company]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return row, err
}

// FindByName retrieves the earliest created company with an exact name match.
func (t *CompaniesTable) FindByName(ctx context.Context, name string) (*Company, error) {
	query := psql.Select(
		sm.Columns(companyColumns...),
		sm.From("companies"),
		sm.Where(psql.Quote("name").EQ(psql.Arg(name))),
		sm.OrderBy("created_at").Asc(),
		sm.Limit(1),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[*Company]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return row, err
}

// Insert creates a new company. Name uniqueness is enforced by the database;
// on conflict no row is inserted and nil is returned so the caller can re-read
// the existing row.
func (t *CompaniesTable) Insert(ctx context.Context, create *CompanyCreate) (*Company, error) {
	query := psql.Insert(
		im.Into("companies", "name", "industry"),
		im.Values(psql.Arg(create.Name, create.Industry)),
		im.OnConflict("name").DoNothing(),
		im.Returning(companyColumns...),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[*Company]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return row, err
}

// Update applies the set fields of the update and returns the updated row, or
// nil when the id does not exist.
func (t *CompaniesTable) Update(ctx context.Context, id uuid.UUID, update *CompanyUpdate) (*Company, error) {
	mods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table("companies"),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(companyColumns...),
	}
	if update.Name.IsValue() {
		mods = append(mods, um.SetCol("name").ToArg(update.Name.MustGet()))
	}
	if update.Industry.IsValue() {
		mods = append(mods, um.SetCol("industry").ToArg(update.Industry.MustGet()))
	}

	row, err := bob.One(ctx, t.exec, psql.Update(mods...), scan.StructMapper[*Company]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return row, err
}

// Delete removes a company and returns the number of deleted rows.
func (t *CompaniesTable) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	query := psql.Delete(
		dm.From("companies"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	result, err := bob.Exec(ctx, t.exec, query)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
