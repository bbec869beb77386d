package lookup

import (
	"context"
	"github.com/heartmarshall/scanplate-backend/internal/domain"
	"sync"
)

var _ photoRecognizer = &photoRecognizerMock{}

type photoRecognizerMock struct {
	RecognizeFunc func(ctx context.Context, imageBase64 string) ([]domain.RecognizedLabel, error)

	calls struct {
		Recognize []struct {
			Ctx         context.Context
			ImageBase64 string
		}
	}
	lockRecognize sync.RWMutex
}

func (mock *photoRecognizerMock) Recognize(ctx context.Context, imageBase64 string) ([]domain.RecognizedLabel, error) {
	if mock.RecognizeFunc == nil {
		panic("photoRecognizerMock.RecognizeFunc: method is nil but photoRecognizer.Recognize was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ImageBase64 string
	}{
		Ctx:         ctx,
		ImageBase64: imageBase64,
	}
	mock.lockRecognize.Lock()
	mock.calls.Recognize = append(mock.calls.Recognize, callInfo)
	mock.lockRecognize.Unlock()
	return mock.RecognizeFunc(ctx, imageBase64)
}

func (mock *photoRecognizerMock) RecognizeCalls() []struct {
	Ctx         context.Context
	ImageBase64 string
} {
	mock.lockRecognize.RLock()
	calls := mock.calls.Recognize
	mock.lockRecognize.RUnlock()
	return calls
}
