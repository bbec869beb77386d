package transfer

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/scanplate-backend/internal/domain"
	"sync"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	ListFunc       func(ctx context.Context, f domain.EntryFilter) ([]domain.NutritionEntry, int, error)
	ReplaceAllFunc func(ctx context.Context, ownerID uuid.UUID, entries []domain.NutritionEntry) error

	calls struct {
		List []struct {
			Ctx context.Context
			F   domain.EntryFilter
		}
		ReplaceAll []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Entries []domain.NutritionEntry
		}
	}
	lockList       sync.RWMutex
	lockReplaceAll sync.RWMutex
}

func (mock *entryRepoMock) List(ctx context.Context, f domain.EntryFilter) ([]domain.NutritionEntry, int, error) {
	if mock.ListFunc == nil {
		panic("entryRepoMock.ListFunc: method is nil but entryRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.EntryFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *entryRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.EntryFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *entryRepoMock) ReplaceAll(ctx context.Context, ownerID uuid.UUID, entries []domain.NutritionEntry) error {
	if mock.ReplaceAllFunc == nil {
		panic("entryRepoMock.ReplaceAllFunc: method is nil but entryRepo.ReplaceAll was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Entries []domain.NutritionEntry
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
		Entries: entries,
	}
	mock.lockReplaceAll.Lock()
	mock.calls.ReplaceAll = append(mock.calls.ReplaceAll, callInfo)
	mock.lockReplaceAll.Unlock()
	return mock.ReplaceAllFunc(ctx, ownerID, entries)
}

func (mock *entryRepoMock) ReplaceAllCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Entries []domain.NutritionEntry
} {
	mock.lockReplaceAll.RLock()
	calls := mock.calls.ReplaceAll
	mock.lockReplaceAll.RUnlock()
	return calls
}
