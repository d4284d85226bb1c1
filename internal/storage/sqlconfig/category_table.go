package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var categoryColumns = []any{"id", "company_id", "name", "description", "budget_amount", "is_active", "created_at"}

var _ ICategoriesTable = (*CategoriesTable)(nil)

type CategoriesTable struct {
	exec bob.Executor
}

func NewCategoriesTable(exec bob.Executor) *CategoriesTable {
	return &CategoriesTable{exec: exec}
}

// ListActiveByCompany returns the non-deleted categories of a company.
func (t *CategoriesTable) ListActiveByCompany(ctx context.Context, companyID uuid.UUID) ([]*Category, error) {
	query := psql.Select(
		sm.Columns(categoryColumns...),
		sm.From("categories"),
		sm.Where(psql.Quote("company_id").EQ(psql.Arg(companyID))),
		sm.Where(psql.Quote("is_active").EQ(psql.Arg(true))),
		sm.OrderBy("name").Asc(),
	)
	return bob.All(ctx, t.exec, query, scan.StructMapper[*Category]())
}

// FindByID retrieves a category by primary key. Returns nil when no row exists.
func (t *CategoriesTable) FindByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	query := psql.Select(
		sm.Columns(categoryColumns...),
		sm.From("categories"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[*Category]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return row, err
}

func (t *CategoriesTable) Insert(ctx context.Context, create *CategoryCreate) (*Category, error) {
	query := psql.Insert(
		im.Into("categories", "company_id", "name", "description", "budget_amount", "is_active"),
		im.Values(psql.Arg(create.CompanyID, create.Name, create.Description, create.BudgetAmount, true)),
		im.Returning(categoryColumns...),
	)
	return bob.One(ctx, t.exec, query, scan.StructMapper[*Category]())
}

// Update applies the set fields of the update and returns the updated row, or
// nil when the id does not exist. Soft deletion is an update with IsActive=false.
func (t *CategoriesTable) Update(ctx context.Context, id uuid.UUID, update *CategoryUpdate) (*Category, error) {
	mods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table("categories"),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(categoryColumns...),
	}
	if update.Name.IsValue() {
		mods = append(mods, um.SetCol("name").ToArg(update.Name.MustGet()))
	}
	if update.Description.IsValue() {
		mods = append(mods, um.SetCol("description").ToArg(update.Description.MustGet()))
	}
	if update.BudgetAmount.IsValue() {
		mods = append(mods, um.SetCol("budget_amount").ToArg(update.BudgetAmount.MustGet()))
	}
	if update.IsActive.IsValue() {
		mods = append(mods, um.SetCol("is_active").ToArg(update.IsActive.MustGet()))
	}

	row, err := bob.One(ctx, t.exec, psql.Update(mods...), scan.StructMapper[*Category]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return row, err
}
