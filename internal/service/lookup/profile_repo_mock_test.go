package lookup

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/scanplate-backend/internal/domain"
	"sync"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	ConsumePhotoLookupFunc func(ctx context.Context, ownerID uuid.UUID, month string, limit int) (int, error)
	GetByOwnerFunc         func(ctx context.Context, ownerID uuid.UUID) (*domain.UserProfile, error)

	calls struct {
		ConsumePhotoLookup []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Month   string
			Limit   int
		}
		GetByOwner []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
	}
	lockConsumePhotoLookup sync.RWMutex
	lockGetByOwner         sync.RWMutex
}

func (mock *profileRepoMock) ConsumePhotoLookup(ctx context.Context, ownerID uuid.UUID, month string, limit int) (int, error) {
	if mock.ConsumePhotoLookupFunc == nil {
		panic("profileRepoMock.ConsumePhotoLookupFunc: method is nil but profileRepo.ConsumePhotoLookup was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Month   string
		Limit   int
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
		Month:   month,
		Limit:   limit,
	}
	mock.lockConsumePhotoLookup.Lock()
	mock.calls.ConsumePhotoLookup = append(mock.calls.ConsumePhotoLookup, callInfo)
	mock.lockConsumePhotoLookup.Unlock()
	return mock.ConsumePhotoLookupFunc(ctx, ownerID, month, limit)
}

func (mock *profileRepoMock) ConsumePhotoLookupCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Month   string
	Limit   int
} {
	mock.lockConsumePhotoLookup.RLock()
	calls := mock.calls.ConsumePhotoLookup
	mock.lockConsumePhotoLookup.RUnlock()
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
