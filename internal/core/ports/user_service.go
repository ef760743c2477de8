package ports

import (
	"context"

	"github.com/jltforwarding/backoffice/internal/core/domain"
)

// CreateUserInput carries all data needed to create a new user account.
type CreateUserInput struct {
	FirstName     string
	MiddleName    *string
	LastName      string
	Role          string
	Email         string
	Password      string
	Address       string
	ContactNumber string
	CompanyName   string
}

// UserService exposes user lookup and account management.
type UserService interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
}
