package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jltforwarding/backoffice/internal/core/domain"
)

// SessionRepository persists active sessions in Redis.
// Key format: session:<session_id>, value: JSON-serialized user snapshot.
// The TTL mirrors the token expiry, so abandoned sessions expire on their own.
type SessionRepository struct {
	client *redis.Client
}

// NewSessionRepository creates a SessionRepository wrapping the given Redis client.
func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

type sessionUser struct {
	ID            int64   `json:"id"`
	FirstName     string  `json:"first_name"`
	MiddleName    *string `json:"middle_name"`
	LastName      string  `json:"last_name"`
	FullName      *string `json:"full_name"`
	Role          string  `json:"role"`
	Email         string  `json:"email"`
	Address       string  `json:"address"`
	ContactNumber string  `json:"contact_number"`
	CompanyName   string  `json:"company_name"`
	ImagePath     *string `json:"image_path"`
	CreatedAt     int64   `json:"created_at"`
	UpdatedAt     int64   `json:"updated_at"`
}

func (r *SessionRepository) Save(ctx context.Context, sessionID string, user *domain.User, ttl time.Duration) error {
	payload, err := json.Marshal(sessionUser{
		ID:            user.ID,
		FirstName:     user.FirstName,
		MiddleName:    user.MiddleName,
		LastName:      user.LastName,
		FullName:      user.FullName,
		Role:          user.Role,
		Email:         user.Email,
		Address:       user.Address,
		ContactNumber: user.ContactNumber,
		CompanyName:   user.CompanyName,
		ImagePath:     user.ImagePath,
		CreatedAt:     user.CreatedAt.Unix(),
		UpdatedAt:     user.UpdatedAt.Unix(),
	})
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := r.client.Set(ctx, r.key(sessionID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Find(ctx context.Context, sessionID string) (*domain.User, error) {
	payload, err := r.client.Get(ctx, r.key(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}

	var su sessionUser
	if err := json.Unmarshal(payload, &su); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}

	return &domain.User{
		ID:            su.ID,
		FirstName:     su.FirstName,
		MiddleName:    su.MiddleName,
		LastName:      su.LastName,
		FullName:      su.FullName,
		Role:          su.Role,
		Email:         su.Email,
		Address:       su.Address,
		ContactNumber: su.ContactNumber,
		CompanyName:   su.CompanyName,
		ImagePath:     su.ImagePath,
		CreatedAt:     time.Unix(su.CreatedAt, 0).UTC(),
		UpdatedAt:     time.Unix(su.UpdatedAt, 0).UTC(),
	}, nil
}

func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, r.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (r *SessionRepository) key(sessionID string) string {
	return "session:" + sessionID
}
