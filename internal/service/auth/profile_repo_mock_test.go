package auth

import (
	"context"
	"github.com/heartmarshall/scanplate-backend/internal/domain"
	"sync"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	CreateFunc func(ctx context.Context, p *domain.UserProfile) (*domain.UserProfile, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			P   *domain.UserProfile
		}
	}
	lockCreate sync.RWMutex
}

func (mock *profileRepoMock) Create(ctx context.Context, p *domain.UserProfile) (*domain.UserProfile, error) {
	if mock.CreateFunc == nil {
		panic("profileRepoMock.CreateFunc: method is nil but profileRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.UserProfile
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *profileRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   *domain.UserProfile
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
