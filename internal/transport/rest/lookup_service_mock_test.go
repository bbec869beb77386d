package rest

import (
	"context"
	"github.com/heartmarshall/scanplate-backend/internal/domain"
	"github.com/heartmarshall/scanplate-backend/internal/service/lookup"
	"sync"
)

var _ lookupService = &lookupServiceMock{}

type lookupServiceMock struct {
	BarcodeFunc func(ctx context.Context, code string) (*domain.FoodCandidate, error)
	SearchFunc  func(ctx context.Context, in lookup.SearchInput) ([]domain.FoodCandidate, error)
	PhotoFunc   func(ctx context.Context, in lookup.PhotoInput) ([]domain.FoodCandidate, error)
	QuotaFunc   func(ctx context.Context) (*domain.PhotoQuota, error)

	calls struct {
		Barcode []struct {
			Ctx  context.Context
			Code string
		}
		Search []struct {
			Ctx context.Context
			In  lookup.SearchInput
		}
		Photo []struct {
			Ctx context.Context
			In  lookup.PhotoInput
		}
		Quota []struct {
			Ctx context.Context
		}
	}
	lockBarcode sync.RWMutex
	lockSearch  sync.RWMutex
	lockPhoto   sync.RWMutex
	lockQuota   sync.RWMutex
}

func (mock *lookupServiceMock) Barcode(ctx context.Context, code string) (*domain.FoodCandidate, error) {
	if mock.BarcodeFunc == nil {
		panic("lookupServiceMock.BarcodeFunc: method is nil but lookupService.Barcode was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Code string
	}{
		Ctx:  ctx,
		Code: code,
	}
	mock.lockBarcode.Lock()
	mock.calls.Barcode = append(mock.calls.Barcode, callInfo)
	mock.lockBarcode.Unlock()
	return mock.BarcodeFunc(ctx, code)
}

func (mock *lookupServiceMock) BarcodeCalls() []struct {
	Ctx  context.Context
	Code string
} {
	mock.lockBarcode.RLock()
	calls := mock.calls.Barcode
	mock.lockBarcode.RUnlock()
	return calls
}

func (mock *lookupServiceMock) Search(ctx context.Context, in lookup.SearchInput) ([]domain.FoodCandidate, error) {
	if mock.SearchFunc == nil {
		panic("lookupServiceMock.SearchFunc: method is nil but lookupService.Search was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  lookup.SearchInput
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, in)
}

func (mock *lookupServiceMock) SearchCalls() []struct {
	Ctx context.Context
	In  lookup.SearchInput
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

func (mock *lookupServiceMock) Photo(ctx context.Context, in lookup.PhotoInput) ([]domain.FoodCandidate, error) {
	if mock.PhotoFunc == nil {
		panic("lookupServiceMock.PhotoFunc: method is nil but lookupService.Photo was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  lookup.PhotoInput
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockPhoto.Lock()
	mock.calls.Photo = append(mock.calls.Photo, callInfo)
	mock.lockPhoto.Unlock()
	return mock.PhotoFunc(ctx, in)
}

func (mock *lookupServiceMock) PhotoCalls() []struct {
	Ctx context.Context
	In  lookup.PhotoInput
} {
	mock.lockPhoto.RLock()
	calls := mock.calls.Photo
	mock.lockPhoto.RUnlock()
	return calls
}

func (mock *lookupServiceMock) Quota(ctx context.Context) (*domain.PhotoQuota, error) {
	if mock.QuotaFunc == nil {
		panic("lookupServiceMock.QuotaFunc: method is nil but lookupService.Quota was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockQuota.Lock()
	mock.calls.Quota = append(mock.calls.Quota, callInfo)
	mock.lockQuota.Unlock()
	return mock.QuotaFunc(ctx)
}

func (mock *lookupServiceMock) QuotaCalls() []struct {
	Ctx context.Context
} {
	mock.lockQuota.RLock()
	calls := mock.calls.Quota
	mock.lockQuota.RUnlock()
	return calls
}
