package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanplate-backend/internal/domain"
	"github.com/heartmarshall/scanplate-backend/pkg/ctxutil"
)

// View is a profile together with its account and photo quota.
type View struct {
	User    *domain.User
	Profile *domain.UserProfile
	Quota   domain.PhotoQuota
}

// Get returns the current owner's profile. A missing profile is created with
// the defaults.
func (s *Service) Get(ctx context.Context) (*View, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var user *domain.User
	if s.users != nil {
		u, err := s.users.GetByID(ctx, ownerID)
		if err != nil {
			return nil, fmt.Errorf("profile.Get: %w", err)
		}
		user = u
	}

	p, err := s.ensure(ctx, ownerID, user)
	if err != nil {
		return nil, fmt.Errorf("profile.Get: %w", err)
	}

	return s.view(user, p), nil
}

// Update validates and applies a partial update to the current owner's profile.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*View, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	current, err := s.ensure(ctx, ownerID, nil)
	if err != nil {
		return nil, fmt.Errorf("profile.Update: %w", err)
	}

	patch := in.ProfilePatch
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		patch.Name = &name
	}
	next := patch.Apply(*current)
	next.UpdatedAt = s.now().UTC()

	updated, err := s.profiles.Update(ctx, &next)
	if err != nil {
		return nil, fmt.Errorf("profile.Update: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated", slog.String("user_id", ownerID.String()))

	return s.view(nil, updated), nil
}

// ensure loads the owner's profile, creating the default one if absent.
func (s *Service) ensure(ctx context.Context, ownerID uuid.UUID, user *domain.User) (*domain.UserProfile, error) {
	p, err := s.profiles.GetByOwner(ctx, ownerID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	name := ""
	if user != nil {
		name = user.Name
	}
	def := domain.DefaultUserProfile(ownerID, name)
	created, err := s.profiles.Create(ctx, &def)
	if errors.Is(err, domain.ErrAlreadyExists) {
		// Lost a race with a concurrent request.
		return s.profiles.GetByOwner(ctx, ownerID)
	}
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "default profile created", slog.String("user_id", ownerID.String()))
	return created, nil
}

func (s *Service) view(user *domain.User, p *domain.UserProfile) *View {
	return &View{
		User:    user,
		Profile: p,
		Quota:   p.PhotoQuota(domain.MonthKey(s.now(), s.loc), s.photoQuota),
	}
}
