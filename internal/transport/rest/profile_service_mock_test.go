package rest

import (
	"context"
	"github.com/heartmarshall/scanplate-backend/internal/service/profile"
	"sync"
)

var _ profileService = &profileServiceMock{}

type profileServiceMock struct {
	GetFunc    func(ctx context.Context) (*profile.View, error)
	UpdateFunc func(ctx context.Context, in profile.UpdateInput) (*profile.View, error)

	calls struct {
		Get []struct {
			Ctx context.Context
		}
		Update []struct {
			Ctx context.Context
			In  profile.UpdateInput
		}
	}
	lockGet    sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *profileServiceMock) Get(ctx context.Context) (*profile.View, error) {
	if mock.GetFunc == nil {
		panic("profileServiceMock.GetFunc: method is nil but profileService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx)
}

func (mock *profileServiceMock) GetCalls() []struct {
	Ctx context.Context
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *profileServiceMock) Update(ctx context.Context, in profile.UpdateInput) (*profile.View, error) {
	if mock.UpdateFunc == nil {
		panic("profileServiceMock.UpdateFunc: method is nil but profileService.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  profile.UpdateInput
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, in)
}

func (mock *profileServiceMock) UpdateCalls() []struct {
	Ctx context.Context
	In  profile.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
