package api

import (
	"context"
	"fmt"
	"regexp"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// invalidCredentials is the user-visible failure message. The policy here
// is a placeholder: any well-formed email with a 6+ character password
// succeeds, there is no account database to check against.
const invalidCredentials = "Invalid credentials"

const minPasswordLen = 6

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// LoginResult is the structured outcome of a login attempt. Message is set
// only on failure.
type LoginResult struct {
	Success bool
	Token   string
	Message string
}

func (s *service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	if err := s.wait(ctx); err != nil {
		return LoginResult{}, err
	}

	if !emailRe.MatchString(email) || len(password) < minPasswordLen {
		s.log.Warn(ctx, "login rejected", "email", email)
		return LoginResult{Success: false, Message: invalidCredentials}, nil
	}

	token, err := s.mintToken(email)
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to mint session token: %w", err)
	}

	if err := s.store.SetAuthToken(ctx, token); err != nil {
		return LoginResult{}, fmt.Errorf("failed to persist session token: %w", err)
	}
	if err := s.store.SetCurrentUser(ctx, email); err != nil {
		return LoginResult{}, fmt.Errorf("failed to persist current user: %w", err)
	}

	s.log.Info(ctx, "login succeeded", "email", email)
	return LoginResult{Success: true, Token: token}, nil
}

// mintToken produces the opaque session token: an HS256 JWT carrying the
// email and issue time. Deliberately no expiry — the session lives until an
// explicit logout clears it.
func (s *service) mintToken(email string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:  email,
		IssuedAt: jwt.NewNumericDate(s.now()),
		ID:       uuid.NewString(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *service) Logout(ctx context.Context) error {
	if err := s.wait(ctx); err != nil {
		return err
	}

	if err := s.store.RemoveAuthToken(ctx); err != nil {
		return fmt.Errorf("failed to remove session token: %w", err)
	}
	if err := s.store.ClearCurrentUser(ctx); err != nil {
		return fmt.Errorf("failed to clear current user: %w", err)
	}

	s.log.Info(ctx, "logged out")
	return nil
}

func (s *service) IsAuthenticated() bool {
	_, ok := s.store.GetAuthToken(context.Background())
	return ok
}

func (s *service) CurrentUser() (string, bool) {
	return s.store.GetCurrentUser(context.Background())
}
