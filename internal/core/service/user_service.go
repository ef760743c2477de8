package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jltforwarding/backoffice/internal/core/domain"
	"github.com/jltforwarding/backoffice/internal/core/ports"
)

// UserService implements user lookup and account management.
type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.FirstName == "" || input.LastName == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidUserInput
	}
	if !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidUserInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		FirstName:     input.FirstName,
		MiddleName:    input.MiddleName,
		LastName:      input.LastName,
		Role:          input.Role,
		Email:         input.Email,
		Address:       input.Address,
		ContactNumber: input.ContactNumber,
		CompanyName:   input.CompanyName,
		PasswordHash:  string(hash),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	return s.repo.Create(ctx, user)
}
