package lookup

import (
	"context"
	"github.com/heartmarshall/scanplate-backend/internal/domain"
	"sync"
)

var _ foodProvider = &foodProviderMock{}

type foodProviderMock struct {
	SearchFoodsFunc func(ctx context.Context, query string, limit int) ([]domain.FoodCandidate, error)

	calls struct {
		SearchFoods []struct {
			Ctx   context.Context
			Query string
			Limit int
		}
	}
	lockSearchFoods sync.RWMutex
}

func (mock *foodProviderMock) SearchFoods(ctx context.Context, query string, limit int) ([]domain.FoodCandidate, error) {
	if mock.SearchFoodsFunc == nil {
		panic("foodProviderMock.SearchFoodsFunc: method is nil but foodProvider.SearchFoods was just called")
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
	mock.lockSearchFoods.Lock()
	mock.calls.SearchFoods = append(mock.calls.SearchFoods, callInfo)
	mock.lockSearchFoods.Unlock()
	return mock.SearchFoodsFunc(ctx, query, limit)
}

func (mock *foodProviderMock) SearchFoodsCalls() []struct {
	Ctx   context.Context
	Query string
	Limit int
} {
	mock.lockSearchFoods.RLock()
	calls := mock.calls.SearchFoods
	mock.lockSearchFoods.RUnlock()
	return calls
}
