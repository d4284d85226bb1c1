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

var userColumns = []any{"id", "email", "full_name", "company_id", "role", "user_type", "created_at"}

var _ IUsersTable = (*UsersTable)(nil)

type UsersTable struct {
	exec bob.Executor
}

func NewUsersTable(exec bob.Executor) *UsersTable {
	return &UsersTable{exec: exec}
}

func (t *UsersTable) List(ctx context.Context) ([]*User, error) {
	query := psql.Select(
		sm.Columns(userColumns...),
		sm.From("users"),
		sm.OrderBy("created_at").Asc(),
	)
	return bob.All(ctx, t.exec, query, scan.StructMapper[*User]())
}

func (t *UsersTable) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*User, error) {
	query := psql.Select(
		sm.Columns(userColumns...),
		sm.From("users"),
		sm.Where(psql.Quote("company_id").EQ(psql.Arg(companyID))),
		sm.OrderBy("created_at").Asc(),
	)
	return bob.All(ctx, t.exec, query, scan.StructMapper[*User]())
}

// FindByID retrieves a user by primary key. Returns nil when no row exists.
func (t *UsersTable) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return t.findOne(ctx, psql.Quote("id").EQ(psql.Arg(id)))
}

// FindByEmail retrieves the earliest created user with the given email.
func (t *UsersTable) FindByEmail(ctx context.Context, email string) (*User, error) {
	return t.findOne(ctx, psql.Quote("email").EQ(psql.Arg(email)))
}

func (t *UsersTable) findOne(ctx context.Context, where bob.Expression) (*User, error) {
	query := psql.Select(
		sm.Columns(userColumns...),
		sm.From("users"),
		sm.Where(where),
		sm.OrderBy("created_at").Asc(),
		sm.Limit(1),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[*User]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return row, err
}

// Insert creates a new user, generating an id when the create carries none.
func (t *UsersTable) Insert(ctx context.Context, create *UserCreate) (*User, error) {
	id := create.ID
	if id.IsNil() {
		id = uuid.Must(uuid.NewV4())
	}
	query := psql.Insert(
		im.Into("users", "id", "email", "full_name", "company_id", "role", "user_type"),
		im.Values(psql.Arg(id, create.Email, create.FullName, create.CompanyID, create.Role, create.UserType)),
		im.Returning(userColumns...),
	)
	return bob.One(ctx, t.exec, query, scan.StructMapper[*User]())
}

// Update applies the set fields of the update and returns the updated row, or
// nil when the id does not exist.
func (t *UsersTable) Update(ctx context.Context, id uuid.UUID, update *UserUpdate) (*User, error) {
	mods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table("users"),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(userColumns...),
	}
	if update.Email.IsValue() {
		mods = append(mods, um.SetCol("email").ToArg(update.Email.MustGet()))
	}
	if update.FullName.IsValue() {
		mods = append(mods, um.SetCol("full_name").ToArg(update.FullName.MustGet()))
	}
	if update.CompanyID.IsValue() {
		mods = append(mods, um.SetCol("company_id").ToArg(update.CompanyID.MustGet()))
	}
	if update.Role.IsValue() {
		mods = append(mods, um.SetCol("role").ToArg(update.Role.MustGet()))
	}
	if update.UserType.IsValue() {
		mods = append(mods, um.SetCol("user_type").ToArg(update.UserType.MustGet()))
	}

	row, err := bob.One(ctx, t.exec, psql.Update(mods...), scan.StructMapper[*User]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return row, err
}

// Delete removes a user and returns the number of deleted rows.
func (t *UsersTable) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	query := psql.Delete(
		dm.From("users"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	result, err := bob.Exec(ctx, t.exec, query)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
