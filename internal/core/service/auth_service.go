package service

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/nightshift/gigboard/internal/core/domain"
	"github.com/nightshift/gigboard/internal/core/ports"
)

const (
	minPasswordLen = 6
	minNameLen     = 2
	maxNameLen     = 50
	avatarBaseURL  = "https://i.pravatar.cc/150?u="
)

// AuthService implements registration, login and logout.
type AuthService struct {
	users     ports.UserRepository
	revoker   ports.TokenRevoker
	jwtSecret string
	tokenTTL  time.Duration
	now       Clock
	log       zerolog.Logger
}

var _ ports.AuthService = (*AuthService)(nil)

// NewAuthService returns an AuthService. revoker may be nil, in which case
// Logout is a no-op and tokens stay valid until they expire.
func NewAuthService(users ports.UserRepository, revoker ports.TokenRevoker, jwtSecret string, tokenTTL time.Duration, now Clock, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, revoker: revoker, jwtSecret: jwtSecret, tokenTTL: tokenTTL, now: now, log: log}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.Session, *domain.User, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	if n := utf8.RuneCountInString(name); n < minNameLen || n > maxNameLen {
		return nil, nil, domain.Validation("name must be between %d and %d characters", minNameLen, maxNameLen)
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, nil, domain.Validation("a valid email is required")
	}
	if len(in.Password) < minPasswordLen {
		return nil, nil, domain.Validation("password must be at least %d characters", minPasswordLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	now := s.now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		AvatarURL:    avatarBaseURL + url.QueryEscape(email),
		Phone:        strings.TrimSpace(in.Phone),
		Gender:       strings.TrimSpace(in.Gender),
		DateOfBirth:  in.DateOfBirth,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	session, err := s.issue(created)
	if err != nil {
		return nil, nil, err
	}
	s.log.Info().Str("user_id", created.ID).Msg("user registered")
	return session, created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.Session, *domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	session, err := s.issue(user)
	if err != nil {
		return nil, nil, err
	}
	return session, user, nil
}

// Logout revokes tokenID for the rest of its lifetime.
func (s *AuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if s.revoker == nil || tokenID == "" {
		return nil
	}
	ttl := expiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.revoker.Revoke(ctx, tokenID, ttl); err != nil {
		return domain.Dependency("revoke token", err)
	}
	return nil
}

func (s *AuthService) Me(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) issue(user *domain.User) (*ports.Session, error) {
	now := s.now()
	session := &ports.Session{TokenID: uuid.NewString(), ExpiresAt: now.Add(s.tokenTTL)}

	claims := jwt.MapClaims{
		"sub":        user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"avatar_url": user.AvatarURL,
		"jti":        session.TokenID,
		"iat":        now.Unix(),
		"exp":        session.ExpiresAt.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}
	session.Token = signed
	return session, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
