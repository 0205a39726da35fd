package ports

import (
	"context"
	"time"

	"github.com/nightshift/gigboard/internal/core/domain"
)

// RegisterInput carries sign-up details. Profile fields are optional.
type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	Phone       string
	Gender      string
	DateOfBirth *time.Time
}

// Session is an issued identity token.
type Session struct {
	Token     string
	TokenID   string
	ExpiresAt time.Time
}

// AuthService is the identity collaborator: it issues identity assertions.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*Session, *domain.User, error)
	Login(ctx context.Context, email, password string) (*Session, *domain.User, error)
	// Logout revokes the token until it would have expired anyway.
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	Me(ctx context.Context, userID string) (*domain.User, error)
}
