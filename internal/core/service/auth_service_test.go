package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/jltforwarding/backoffice/internal/core/domain"
)

type stubUserRepo struct {
	user *domain.User
	err  error
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubUserRepo) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return user, nil
}

type stubSessionRepo struct {
	saved   map[string]*domain.User
	savedTTL time.Duration
	deleted []string
	err     error
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{saved: make(map[string]*domain.User)}
}

func (s *stubSessionRepo) Save(ctx context.Context, sessionID string, user *domain.User, ttl time.Duration) error {
	if s.err != nil {
		return s.err
	}
	s.saved[sessionID] = user
	s.savedTTL = ttl
	return nil
}

func (s *stubSessionRepo) Find(ctx context.Context, sessionID string) (*domain.User, error) {
	user, ok := s.saved[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return user, nil
}

func (s *stubSessionRepo) Delete(ctx context.Context, sessionID string) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, sessionID)
	delete(s.saved, sessionID)
	return nil
}

func testUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &domain.User{
		ID:           42,
		FirstName:    "Maria",
		LastName:     "Santos",
		Role:         domain.RoleAccountSpecialist,
		Email:        "maria@example.com",
		PasswordHash: string(hash),
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	user := testUser(t, "s3cret-pass")
	sessions := newStubSessionRepo()
	svc := NewAuthService(&stubUserRepo{user: user}, sessions, "test-secret", time.Hour)

	token, got, err := svc.Login(context.Background(), "maria@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("returned user id = %d, want %d", got.ID, user.ID)
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["role"] != domain.RoleAccountSpecialist {
		t.Fatalf("role claim = %v", claims["role"])
	}

	jti, _ := claims["jti"].(string)
	if jti == "" {
		t.Fatalf("token has no jti claim")
	}
	if _, ok := sessions.saved[jti]; !ok {
		t.Fatalf("no session saved under jti %q", jti)
	}
	if sessions.savedTTL != time.Hour {
		t.Fatalf("session ttl = %v, want 1h", sessions.savedTTL)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	user := testUser(t, "s3cret-pass")
	sessions := newStubSessionRepo()
	svc := NewAuthService(&stubUserRepo{user: user}, sessions, "test-secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "maria@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(sessions.saved) != 0 {
		t.Fatalf("failed login must not create a session")
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := NewAuthService(&stubUserRepo{err: domain.ErrUserNotFound}, newStubSessionRepo(), "test-secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	svc := NewAuthService(&stubUserRepo{}, newStubSessionRepo(), "test-secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("empty email: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@b.c", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("empty password: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Logout_RevokesSession(t *testing.T) {
	user := testUser(t, "s3cret-pass")
	sessions := newStubSessionRepo()
	svc := NewAuthService(&stubUserRepo{user: user}, sessions, "test-secret", time.Hour)

	token, _, err := svc.Login(context.Background(), "maria@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	parsed, _ := jwt.Parse(token, func(t *jwt.Token) (any, error) { return []byte("test-secret"), nil })
	jti := parsed.Claims.(jwt.MapClaims)["jti"].(string)

	if err := svc.Logout(context.Background(), jti); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if _, err := sessions.Find(context.Background(), jti); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("session still resolvable after logout: %v", err)
	}
}

func TestAuthService_Logout_EmptySessionID(t *testing.T) {
	sessions := newStubSessionRepo()
	svc := NewAuthService(&stubUserRepo{}, sessions, "test-secret", time.Hour)

	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Fatalf("empty session id should be a no-op, got %v", err)
	}
	if len(sessions.deleted) != 0 {
		t.Fatalf("no delete should have been issued")
	}
}
