package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
)

// User represents a user record. CompanyID is null until the user is linked
// to a company.
type User struct {
	ID        uuid.UUID     `db:"id"`
	Email     string        `db:"email"`
	FullName  string        `db:"full_name"`
	CompanyID uuid.NullUUID `db:"company_id"`
	Role      string        `db:"role"`
	UserType  string        `db:"user_type"`
	CreatedAt time.Time     `db:"created_at"`
}

// UserCreate is the input for creating a new user. A zero ID lets the table
// generate one; callers performing implicit creation supply the id themselves.
type UserCreate struct {
	ID        uuid.UUID
	Email     string
	FullName  string
	CompanyID uuid.NullUUID
	Role      string
	UserType  string
}

// UserUpdate holds the permitted partial-update fields for a user.
type UserUpdate struct {
	Email     omit.Val[string]
	FullName  omit.Val[string]
	CompanyID omit.Val[uuid.NullUUID]
	Role      omit.Val[string]
	UserType  omit.Val[string]
}

// IsEmpty reports whether no fields are set.
func (u *UserUpdate) IsEmpty() bool {
	return !u.Email.IsValue() && !u.FullName.IsValue() && !u.CompanyID.IsValue() &&
		!u.Role.IsValue() && !u.UserType.IsValue()
}

// IUsersTable defines the interface for user storage operations.
//
//go:generate mockery --name IUsersTable --output mock_IUsersTable.go
type IUsersTable interface {
	List(ctx context.Context) ([]*User, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Insert(ctx context.Context, create *UserCreate) (*User, error)
	Update(ctx context.Context, id uuid.UUID, update *UserUpdate) (*User, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
