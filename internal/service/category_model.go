package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/storage/sqlconfig"
)

// Category represents an expense category in the service layer.
type Category struct {
	ID           uuid.UUID
	CompanyID    uuid.UUID
	Name         string
	Description  string
	BudgetAmount *decimal.Decimal
	IsActive     bool
	CreatedAt    time.Time
}

// CategoryCreate is the input for creating a category.
type CategoryCreate struct {
	CompanyID    uuid.UUID
	Name         string
	Description  string
	BudgetAmount *decimal.Decimal
}

// CategoryUpdate holds the permitted partial-update fields for a category.
// Nil fields are left untouched.
type CategoryUpdate struct {
	Name         *string
	Description  *string
	BudgetAmount *decimal.Decimal
	IsActive     *bool
}

func categoryFromStorage(row *sqlconfig.Category) Category {
	category := Category{
		ID:          row.ID,
		CompanyID:   row.CompanyID,
		Name:        row.Name,
		Description: row.Description,
		IsActive:    row.IsActive,
		CreatedAt:   row.CreatedAt,
	}
	if row.BudgetAmount.Valid {
		budget := row.BudgetAmount.Decimal
		category.BudgetAmount = &budget
	}
	return category
}
