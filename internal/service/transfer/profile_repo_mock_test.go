package transfer

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/scanplate-backend/internal/domain"
	"sync"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	CreateFunc     func(ctx context.Context, p *domain.UserProfile) (*domain.UserProfile, error)
	GetByOwnerFunc func(ctx context.Context, ownerID uuid.UUID) (*domain.UserProfile, error)
	UpdateFunc     func(ctx context.Context, p *domain.UserProfile) (*domain.UserProfile, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			P   *domain.UserProfile
		}
		GetByOwner []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		Update []struct {
			Ctx context.Context
			P   *domain.UserProfile
		}
	}
	lockCreate     sync.RWMutex
	lockGetByOwner sync.RWMutex
	lockUpdate     sync.RWMutex
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

func (mock *profileRepoMock) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.UserProfile, error) {
	if mock.GetByOwnerFunc == nil {
		panic("profileRepoMock.GetByOwnerFunc: method is nil but profileRepo.GetByOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
	}
	mock.lockGetByOwner.Lock()
	mock.calls.GetByOwner = append(mock.calls.GetByOwner, callInfo)
	mock.lockGetByOwner.Unlock()
	return mock.GetByOwnerFunc(ctx, ownerID)
}

func (mock *profileRepoMock) GetByOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockGetByOwner.RLock()
	calls := mock.calls.GetByOwner
	mock.lockGetByOwner.RUnlock()
	return calls
}

func (mock *profileRepoMock) Update(ctx context.Context, p *domain.UserProfile) (*domain.UserProfile, error) {
	if mock.UpdateFunc == nil {
		panic("profileRepoMock.UpdateFunc: method is nil but profileRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.UserProfile
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, p)
}

func (mock *profileRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	P   *domain.UserProfile
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
