package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/scanplate-backend/internal/domain"
	"github.com/heartmarshall/scanplate-backend/internal/service/entry"
	"sync"
)

var _ entryService = &entryServiceMock{}

type entryServiceMock struct {
	CreateFunc func(ctx context.Context, in entry.CreateInput) (*domain.NutritionEntry, error)
	GetFunc    func(ctx context.Context, id uuid.UUID) (*domain.NutritionEntry, error)
	ListFunc   func(ctx context.Context, in entry.ListInput) (*entry.ListResult, error)
	UpdateFunc func(ctx context.Context, id uuid.UUID, patch domain.EntryPatch) (*domain.NutritionEntry, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) (bool, error)
	ClearFunc  func(ctx context.Context, in entry.ClearInput) (int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			In  entry.CreateInput
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
			In  entry.ListInput
		}
		Update []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Patch domain.EntryPatch
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Clear []struct {
			Ctx context.Context
			In  entry.ClearInput
		}
	}
	lockCreate sync.RWMutex
	lockGet    sync.RWMutex
	lockList   sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
	lockClear  sync.RWMutex
}

func (mock *entryServiceMock) Create(ctx context.Context, in entry.CreateInput) (*domain.NutritionEntry, error) {
	if mock.CreateFunc == nil {
		panic("entryServiceMock.CreateFunc: method is nil but entryService.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  entry.CreateInput
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, in)
}

func (mock *entryServiceMock) CreateCalls() []struct {
	Ctx context.Context
	In  entry.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *entryServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.NutritionEntry, error) {
	if mock.GetFunc == nil {
		panic("entryServiceMock.GetFunc: method is nil but entryService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *entryServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *entryServiceMock) List(ctx context.Context, in entry.ListInput) (*entry.ListResult, error) {
	if mock.ListFunc == nil {
		panic("entryServiceMock.ListFunc: method is nil but entryService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  entry.ListInput
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, in)
}

func (mock *entryServiceMock) ListCalls() []struct {
	Ctx context.Context
	In  entry.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *entryServiceMock) Update(ctx context.Context, id uuid.UUID, patch domain.EntryPatch) (*domain.NutritionEntry, error) {
	if mock.UpdateFunc == nil {
		panic("entryServiceMock.UpdateFunc: method is nil but entryService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Patch domain.EntryPatch
	}{
		Ctx:   ctx,
		ID:    id,
		Patch: patch,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, patch)
}

func (mock *entryServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Patch domain.EntryPatch
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *entryServiceMock) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if mock.DeleteFunc == nil {
		panic("entryServiceMock.DeleteFunc: method is nil but entryService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *entryServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *entryServiceMock) Clear(ctx context.Context, in entry.ClearInput) (int, error) {
	if mock.ClearFunc == nil {
		panic("entryServiceMock.ClearFunc: method is nil but entryService.Clear was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  entry.ClearInput
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockClear.Lock()
	mock.calls.Clear = append(mock.calls.Clear, callInfo)
	mock.lockClear.Unlock()
	return mock.ClearFunc(ctx, in)
}

func (mock *entryServiceMock) ClearCalls() []struct {
	Ctx context.Context
	In  entry.ClearInput
} {
	mock.lockClear.RLock()
	calls := mock.calls.Clear
	mock.lockClear.RUnlock()
	return calls
}
