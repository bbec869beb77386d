package stats

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/scanplate-backend/internal/domain"
	"sync"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	GetByOwnerFunc func(ctx context.Context, ownerID uuid.UUID) (*domain.UserProfile, error)

	calls struct {
		GetByOwner []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
	}
	lockGetByOwner sync.RWMutex
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
