package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanplate-backend/internal/domain"
	"github.com/heartmarshall/scanplate-backend/pkg/ctxutil"
)

func currentUser(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}

// Logout ends every session of the caller, not just the current one.
func (s *Service) Logout(ctx context.Context) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return err
	}
	if err := s.tokens.RevokeAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}
	s.log.InfoContext(ctx, "sessions revoked", slog.String("user_id", userID.String()))
	return nil
}

func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	return user, nil
}

// ValidateToken resolves an access token to its owner. Any failure is
// reported as ErrUnauthorized so middleware need not inspect JWT errors.
func (s *Service) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	id, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}

// CleanupExpiredTokens purges refresh tokens that can no longer be used.
func (s *Service) CleanupExpiredTokens(ctx context.Context) (int, error) {
	n, err := s.tokens.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("auth.CleanupExpiredTokens: %w", err)
	}
	s.log.InfoContext(ctx, "expired refresh tokens purged", slog.Int("count", n))
	return n, nil
}
