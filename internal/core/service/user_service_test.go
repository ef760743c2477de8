package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/jltforwarding/backoffice/internal/core/domain"
	"github.com/jltforwarding/backoffice/internal/core/ports"
)

type creatingUserRepo struct {
	stubUserRepo
	created *domain.User
}

func (r *creatingUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	r.created = user
	user.ID = 101
	return user, nil
}

func validCreateInput() ports.CreateUserInput {
	return ports.CreateUserInput{
		FirstName:     "Maria",
		LastName:      "Santos",
		Role:          domain.RoleAccountSpecialist,
		Email:         "maria@example.com",
		Password:      "s3cret-pass",
		Address:       "123 Harbor Drive",
		ContactNumber: "09171234567",
		CompanyName:   "JLT Forwarding",
	}
}

func TestUserService_Create(t *testing.T) {
	repo := &creatingUserRepo{}
	svc := NewUserService(repo)

	user, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if user.ID != 101 {
		t.Fatalf("user id = %d", user.ID)
	}
	if user.PasswordHash == "s3cret-pass" || user.PasswordHash == "" {
		t.Fatalf("password must be stored hashed")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pass")) != nil {
		t.Fatalf("stored hash does not verify against the password")
	}
	if user.CreatedAt.IsZero() || !user.CreatedAt.Equal(user.UpdatedAt) {
		t.Fatalf("timestamps not set: created=%v updated=%v", user.CreatedAt, user.UpdatedAt)
	}
}

func TestUserService_Create_RejectsInvalidInput(t *testing.T) {
	svc := NewUserService(&creatingUserRepo{})

	cases := []struct {
		name   string
		mutate func(*ports.CreateUserInput)
	}{
		{"missing first name", func(in *ports.CreateUserInput) { in.FirstName = "" }},
		{"missing last name", func(in *ports.CreateUserInput) { in.LastName = "" }},
		{"missing email", func(in *ports.CreateUserInput) { in.Email = "" }},
		{"missing password", func(in *ports.CreateUserInput) { in.Password = "" }},
		{"unknown role", func(in *ports.CreateUserInput) { in.Role = "Administrator" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validCreateInput()
			tc.mutate(&input)
			_, err := svc.Create(context.Background(), input)
			if !errors.Is(err, domain.ErrInvalidUserInput) {
				t.Fatalf("expected ErrInvalidUserInput, got %v", err)
			}
		})
	}
}

func TestUserService_GetByID(t *testing.T) {
	want := &domain.User{ID: 7, Email: "john@example.com"}
	svc := NewUserService(&stubUserRepo{user: want})

	user, err := svc.GetByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if user.ID != 7 {
		t.Fatalf("user id = %d", user.ID)
	}
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	svc := NewUserService(&stubUserRepo{err: domain.ErrUserNotFound})
	if _, err := svc.GetByID(context.Background(), 99); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
