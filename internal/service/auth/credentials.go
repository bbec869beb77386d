package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/scanplate-backend/internal/domain"
)

// Register creates the account together with its default profile and signs
// the new user in. A taken email yields ErrAlreadyExists.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Email = canonicalEmail(input.Email)
	input.Name = strings.TrimSpace(input.Name)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: hash password: %w", err)
	}

	now := s.now().UTC()
	account := &domain.User{
		ID:           uuid.New(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The unique index on email decides races between concurrent sign-ups.
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		created, err := s.users.Create(ctx, account)
		if err != nil {
			return err
		}
		account = created

		profile := domain.DefaultUserProfile(account.ID, account.Name)
		if _, err := s.profiles.Create(ctx, &profile); err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		return nil
	})
	switch {
	case errors.Is(err, domain.ErrAlreadyExists):
		return nil, fmt.Errorf("auth.Register: email %w", domain.ErrAlreadyExists)
	case err != nil:
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	result, err := s.issueTokens(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}
	s.log.InfoContext(ctx, "account created", slog.String("user_id", account.ID.String()))
	return result, nil
}

// Login checks an email and password pair. An unknown email and a wrong
// password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Email = canonicalEmail(input.Email)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil, domain.ErrUnauthorized
	case err != nil:
		return nil, fmt.Errorf("auth.Login: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, domain.ErrUnauthorized
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}
	s.log.InfoContext(ctx, "signed in", slog.String("user_id", user.ID.String()))
	return result, nil
}
