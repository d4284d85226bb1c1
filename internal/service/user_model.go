package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/storage/sqlconfig"
)

// User represents a user in the service layer. CompanyID is nil until the
// user is linked to a company. Company is populated only by operations that
// join company details in.
type User struct {
	ID        uuid.UUID
	Email     string
	FullName  string
	CompanyID *uuid.UUID
	Role      string
	UserType  string
	CreatedAt time.Time
	Company   *CompanyRef
}

// CompanyRef is the company summary attached to user listings.
type CompanyRef struct {
	Name     string
	Industry string
}

// UserCreate is the input for creating a user. ID is optional; when supplied
// it is used as the primary key.
type UserCreate struct {
	ID        *uuid.UUID
	Email     string
	FullName  string
	CompanyID *uuid.UUID
	Role      string
	UserType  string
}

// UserUpdate holds the permitted partial-update fields for a user.
// Nil fields are left untouched.
type UserUpdate struct {
	Email     *string
	FullName  *string
	CompanyID *uuid.UUID
	Role      *string
	UserType  *string
}

func userFromStorage(row *sqlconfig.User) User {
	user := User{
		ID:        row.ID,
		Email:     row.Email,
		FullName:  row.FullName,
		Role:      row.Role,
		UserType:  row.UserType,
		CreatedAt: row.CreatedAt,
	}
	if row.CompanyID.Valid {
		companyID := row.CompanyID.UUID
		user.CompanyID = &companyID
	}
	return user
}
