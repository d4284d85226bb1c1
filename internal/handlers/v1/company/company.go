package company

import (
	"time"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/service"
)

// Company is the API response model for a company. Users is present only on
// operations that join users in.
type Company struct {
	ID        string        `json:"id" doc:"Company UUID"`
	Name      string        `json:"name" doc:"Company name"`
	Industry  string        `json:"industry,omitempty" doc:"Industry label"`
	CreatedAt string        `json:"created_at" doc:"RFC3339 creation time"`
	Users     []CompanyUser `json:"users,omitempty" doc:"Users linked to this company"`
}

// CompanyUser is the user summary embedded in company responses.
type CompanyUser struct {
	FullName string `json:"full_name" doc:"User full name"`
	Email    string `json:"email" doc:"User email"`
	Role     string `json:"role,omitempty" doc:"User role"`
	UserType string `json:"user_type,omitempty" doc:"User type"`
}

func companyFromService(c service.Company) Company {
	out := Company{
		ID:        c.ID.String(),
		Name:      c.Name,
		Industry:  c.Industry,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
	for _, u := range c.Users {
		out.Users = append(out.Users, CompanyUser{
			FullName: u.FullName,
			Email:    u.Email,
			Role:     u.Role,
			UserType: u.UserType,
		})
	}
	return out
}
