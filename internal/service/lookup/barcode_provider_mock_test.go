package lookup

import (
	"context"
	"github.com/heartmarshall/scanplate-backend/internal/domain"
	"sync"
)

var _ barcodeProvider = &barcodeProviderMock{}

type barcodeProviderMock struct {
	LookupBarcodeFunc func(ctx context.Context, code string) (*domain.FoodCandidate, error)

	calls struct {
		LookupBarcode []struct {
			Ctx  context.Context
			Code string
		}
	}
	lockLookupBarcode sync.RWMutex
}

func (mock *barcodeProviderMock) LookupBarcode(ctx context.Context, code string) (*domain.FoodCandidate, error) {
	if mock.LookupBarcodeFunc == nil {
		panic("barcodeProviderMock.LookupBarcodeFunc: method is nil but barcodeProvider.LookupBarcode was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Code string
	}{
		Ctx:  ctx,
		Code: code,
	}
	mock.lockLookupBarcode.Lock()
	mock.calls.LookupBarcode = append(mock.calls.LookupBarcode, callInfo)
	mock.lockLookupBarcode.Unlock()
	return mock.LookupBarcodeFunc(ctx, code)
}

func (mock *barcodeProviderMock) LookupBarcodeCalls() []struct {
	Ctx  context.Context
	Code string
} {
	mock.lockLookupBarcode.RLock()
	calls := mock.calls.LookupBarcode
	mock.lockLookupBarcode.RUnlock()
	return calls
}
