package lookup

import (
	"context"
	"github.com/heartmarshall/scanplate-backend/internal/domain"
	"sync"
)

var _ lookupCache = &lookupCacheMock{}

type lookupCacheMock struct {
	GetBarcodeFunc func(ctx context.Context, code string) (*domain.FoodCandidate, error)
	GetSearchFunc  func(ctx context.Context, query string, limit int) ([]domain.FoodCandidate, error)
	SetBarcodeFunc func(ctx context.Context, code string, cand *domain.FoodCandidate) error
	SetSearchFunc  func(ctx context.Context, query string, limit int, cands []domain.FoodCandidate) error

	calls struct {
		GetBarcode []struct {
			Ctx  context.Context
			Code string
		}
		GetSearch []struct {
			Ctx   context.Context
			Query string
			Limit int
		}
		SetBarcode []struct {
			Ctx  context.Context
			Code string
			Cand *domain.FoodCandidate
		}
		SetSearch []struct {
			Ctx   context.Context
			Query string
			Limit int
			Cands []domain.FoodCandidate
		}
	}
	lockGetBarcode sync.RWMutex
	lockGetSearch  sync.RWMutex
	lockSetBarcode sync.RWMutex
	lockSetSearch  sync.RWMutex
}

func (mock *lookupCacheMock) GetBarcode(ctx context.Context, code string) (*domain.FoodCandidate, error) {
	if mock.GetBarcodeFunc == nil {
		panic("lookupCacheMock.GetBarcodeFunc: method is nil but lookupCache.GetBarcode was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Code string
	}{
		Ctx:  ctx,
		Code: code,
	}
	mock.lockGetBarcode.Lock()
	mock.calls.GetBarcode = append(mock.calls.GetBarcode, callInfo)
	mock.lockGetBarcode.Unlock()
	return mock.GetBarcodeFunc(ctx, code)
}

func (mock *lookupCacheMock) GetBarcodeCalls() []struct {
	Ctx  context.Context
	Code string
} {
	mock.lockGetBarcode.RLock()
	calls := mock.calls.GetBarcode
	mock.lockGetBarcode.RUnlock()
	return calls
}

func (mock *lookupCacheMock) GetSearch(ctx context.Context, query string, limit int) ([]domain.FoodCandidate, error) {
	if mock.GetSearchFunc == nil {
		panic("lookupCacheMock.GetSearchFunc: method is nil but lookupCache.GetSearch was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Query string
		Limit int
	}{
		Ctx:   ctx,
		Query: query,
		Limit: limit,
	}
	mock.lockGetSearch.Lock()
	mock.calls.GetSearch = append(mock.calls.GetSearch, callInfo)
	mock.lockGetSearch.Unlock()
	return mock.GetSearchFunc(ctx, query, limit)
}

func (mock *lookupCacheMock) GetSearchCalls() []struct {
	Ctx   context.Context
	Query string
	Limit int
} {
	mock.lockGetSearch.RLock()
	calls := mock.calls.GetSearch
	mock.lockGetSearch.RUnlock()
	return calls
}

func (mock *lookupCacheMock) SetBarcode(ctx context.Context, code string, cand *domain.FoodCandidate) error {
	if mock.SetBarcodeFunc == nil {
		panic("lookupCacheMock.SetBarcodeFunc: method is nil but lookupCache.SetBarcode was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Code string
		Cand *domain.FoodCandidate
	}{
		Ctx:  ctx,
		Code: code,
		Cand: cand,
	}
	mock.lockSetBarcode.Lock()
	mock.calls.SetBarcode = append(mock.calls.SetBarcode, callInfo)
	mock.lockSetBarcode.Unlock()
	return mock.SetBarcodeFunc(ctx, code, cand)
}

func (mock *lookupCacheMock) SetBarcodeCalls() []struct {
	Ctx  context.Context
	Code string
	Cand *domain.FoodCandidate
} {
	mock.lockSetBarcode.RLock()
	calls := mock.calls.SetBarcode
	mock.lockSetBarcode.RUnlock()
	return calls
}

func (mock *lookupCacheMock) SetSearch(ctx context.Context, query string, limit int, cands []domain.FoodCandidate) error {
	if mock.SetSearchFunc == nil {
		panic("lookupCacheMock.SetSearchFunc: method is nil but lookupCache.SetSearch was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Query string
		Limit int
		Cands []domain.FoodCandidate
	}{
		Ctx:   ctx,
		Query: query,
		Limit: limit,
		Cands: cands,
	}
	mock.lockSetSearch.Lock()
	mock.calls.SetSearch = append(mock.calls.SetSearch, callInfo)
	mock.lockSetSearch.Unlock()
	return mock.SetSearchFunc(ctx, query, limit, cands)
}

func (mock *lookupCacheMock) SetSearchCalls() []struct {
	Ctx   context.Context
	Query string
	Limit int
	Cands []domain.FoodCandidate
} {
	mock.lockSetSearch.RLock()
	calls := mock.calls.SetSearch
	mock.lockSetSearch.RUnlock()
	return calls
}
