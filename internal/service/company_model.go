package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/storage/sqlconfig"
)

// Company represents a company in the service layer. Users is populated only
// by the operations that join users in.
type Company struct {
	ID        uuid.UUID
	Name      string
	Industry  string
	CreatedAt time.Time
	Users     []User
}

// CompanyUpdate holds the permitted partial-update fields for a company.
// Nil fields are left untouched.
type CompanyUpdate struct {
	Name     *string
	Industry *string
}

func companyFromStorage(row *sqlconfig.Company) Company {
	return Company{
		ID:        row.ID,
		Name:      row.Name,
		Industry:  row.Industry,
		CreatedAt: row.CreatedAt,
	}
}
