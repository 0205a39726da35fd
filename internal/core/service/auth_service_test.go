package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/nightshift/gigboard/internal/core/domain"
	"github.com/nightshift/gigboard/internal/core/ports"
)

func newAuthSvc(users *stubUserRepo, revoker ports.TokenRevoker) *AuthService {
	return NewAuthService(users, revoker, "secret", time.Hour, fixedClock(refNow), discardLogger)
}

func registerInput() ports.RegisterInput {
	return ports.RegisterInput{Name: "Alice", Email: " Alice@Example.com ", Password: "pass123"}
}

func TestAuthService_Register_Success(t *testing.T) {
	users := newStubUserRepo()
	svc := newAuthSvc(users, nil)

	session, user, err := svc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("expected normalised email, got %q", user.Email)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.AvatarURL != "https://i.pravatar.cc/150?u=alice%40example.com" {
		t.Fatalf("unexpected default avatar: %s", user.AvatarURL)
	}
	if session.Token == "" || session.TokenID == "" {
		t.Fatalf("expected a signed token")
	}
	if !session.ExpiresAt.Equal(refNow.Add(time.Hour)) {
		t.Fatalf("unexpected expiry: %v", session.ExpiresAt)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newAuthSvc(newStubUserRepo(), nil)

	cases := map[string]func(*ports.RegisterInput){
		"short name":     func(in *ports.RegisterInput) { in.Name = "A" },
		"long name":      func(in *ports.RegisterInput) { in.Name = string(make([]byte, 51)) },
		"bad email":      func(in *ports.RegisterInput) { in.Email = "alice" },
		"short password": func(in *ports.RegisterInput) { in.Password = "12345" },
	}
	for name, mutate := range cases {
		in := registerInput()
		mutate(&in)
		if _, _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("%s: expected validation error, got %v", name, err)
		}
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc := newAuthSvc(newStubUserRepo(), nil)

	if _, _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), registerInput()); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_TokenClaims(t *testing.T) {
	users := newStubUserRepo()
	svc := newAuthSvc(users, nil)
	_, registered, err := svc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	session, user, err := svc.Login(context.Background(), "ALICE@example.com", "pass123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("unexpected user: %s", user.ID)
	}

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(session.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}, jwt.WithTimeFunc(func() time.Time { return refNow }))
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims["sub"] != registered.ID || claims["name"] != "Alice" || claims["email"] != "alice@example.com" {
		t.Fatalf("unexpected claims: %v", claims)
	}
	if claims["jti"] != session.TokenID {
		t.Fatalf("jti must match the session token id")
	}
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	users := newStubUserRepo()
	svc := newAuthSvc(users, nil)
	if _, _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "alice@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "bob@example.com", "pass123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "", ""); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("empty: expected unauthenticated, got %v", err)
	}
}

func TestAuthService_Logout_RevokesForRemainingLifetime(t *testing.T) {
	revoker := &stubRevoker{}
	svc := newAuthSvc(newStubUserRepo(), revoker)

	if err := svc.Logout(context.Background(), "tok-1", refNow.Add(30*time.Minute)); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if ttl := revoker.revoked["tok-1"]; ttl != 30*time.Minute {
		t.Fatalf("expected 30m revocation, got %v", ttl)
	}

	if err := svc.Logout(context.Background(), "tok-2", refNow.Add(-time.Minute)); err != nil {
		t.Fatalf("expired token logout: %v", err)
	}
	if _, ok := revoker.revoked["tok-2"]; ok {
		t.Fatalf("expired tokens need no revocation")
	}

	revoker.err = errors.New("redis down")
	if err := svc.Logout(context.Background(), "tok-3", refNow.Add(time.Minute)); !errors.Is(err, domain.ErrDependency) {
		t.Fatalf("expected dependency error, got %v", err)
	}
}
