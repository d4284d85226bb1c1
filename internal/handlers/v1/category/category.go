package category

import (
	"time"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/service"
)

// Category is the API response model for an expense category.
type Category struct {
	ID           string `json:"id" doc:"Category UUID"`
	CompanyID    string `json:"company_id" doc:"Owning company UUID"`
	Name         string `json:"name" doc:"Category name"`
	Description  string `json:"description,omitempty" doc:"Category description"`
	BudgetAmount string `json:"budget_amount,omitempty" doc:"Decimal budget amount"`
	IsActive     bool   `json:"is_active" doc:"False when soft-deleted"`
	CreatedAt    string `json:"created_at" doc:"RFC3339 creation time"`
}

func categoryFromService(c service.Category) Category {
	out := Category{
		ID:          c.ID.String(),
		CompanyID:   c.CompanyID.String(),
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
	if c.BudgetAmount != nil {
		out.BudgetAmount = c.BudgetAmount.StringFixed(2)
	}
	return out
}
