package user

import (
	"time"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/service"
)

// User is the API response model for a user.
type User struct {
	ID        string `json:"id" doc:"User UUID"`
	Email     string `json:"email,omitempty" doc:"User email"`
	FullName  string `json:"full_name,omitempty" doc:"User full name"`
	CompanyID string `json:"company_id,omitempty" doc:"Linked company UUID, absent when unlinked"`
	Role      string `json:"role,omitempty" doc:"User role"`
	UserType  string `json:"user_type,omitempty" doc:"User type"`
	CreatedAt string `json:"created_at" doc:"RFC3339 creation time"`
}

func userFromService(u service.User) User {
	out := User{
		ID:        u.ID.String(),
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		UserType:  u.UserType,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
	if u.CompanyID != nil {
		out.CompanyID = u.CompanyID.String()
	}
	return out
}
