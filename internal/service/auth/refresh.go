package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/scanplate-backend/internal/auth"
	"github.com/heartmarshall/scanplate-backend/internal/domain"
)

// Refresh exchanges a refresh token for a new pair. Each refresh token is
// single use: presenting one that was already rotated revokes every session
// of its owner, since the token has evidently leaked.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	token, err := s.tokens.GetByHash(ctx, auth.HashToken(input.RefreshToken))
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil, domain.ErrUnauthorized
	case err != nil:
		return nil, fmt.Errorf("auth.Refresh: %w", err)
	}

	if token.IsRevoked() {
		s.log.WarnContext(ctx, "revoked refresh token presented, revoking all sessions",
			slog.String("user_id", token.UserID.String()))
		if err := s.tokens.RevokeAllByUser(ctx, token.UserID); err != nil {
			return nil, fmt.Errorf("auth.Refresh: revoke sessions: %w", err)
		}
		return nil, domain.ErrUnauthorized
	}
	if token.IsExpired(s.now()) {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil, domain.ErrUnauthorized
	case err != nil:
		return nil, fmt.Errorf("auth.Refresh: %w", err)
	}

	var result *AuthResult
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		err := s.tokens.RevokeByID(ctx, token.ID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			// Rotated by a concurrent request after GetByHash.
			return domain.ErrUnauthorized
		case err != nil:
			return fmt.Errorf("revoke token: %w", err)
		}
		result, err = s.issueTokens(ctx, user)
		return err
	})
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return nil, domain.ErrUnauthorized
	case err != nil:
		return nil, fmt.Errorf("auth.Refresh: %w", err)
	}
	return result, nil
}
