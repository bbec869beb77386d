package rest

import (
	"context"
	"github.com/heartmarshall/scanplate-backend/internal/service/transfer"
	"io"
	"sync"
)

var _ transferService = &transferServiceMock{}

type transferServiceMock struct {
	WriteCSVFunc  func(ctx context.Context, w io.Writer, in transfer.ExportInput) (int, error)
	WriteJSONFunc func(ctx context.Context, w io.Writer) (int, error)
	ImportFunc    func(ctx context.Context, r io.Reader) (*transfer.ImportResult, error)
	ReportFunc    func(ctx context.Context) (string, error)

	calls struct {
		WriteCSV []struct {
			Ctx context.Context
			W   io.Writer
			In  transfer.ExportInput
		}
		WriteJSON []struct {
			Ctx context.Context
			W   io.Writer
		}
		Import []struct {
			Ctx context.Context
			R   io.Reader
		}
		Report []struct {
			Ctx context.Context
		}
	}
	lockWriteCSV  sync.RWMutex
	lockWriteJSON sync.RWMutex
	lockImport    sync.RWMutex
	lockReport    sync.RWMutex
}

func (mock *transferServiceMock) WriteCSV(ctx context.Context, w io.Writer, in transfer.ExportInput) (int, error) {
	if mock.WriteCSVFunc == nil {
		panic("transferServiceMock.WriteCSVFunc: method is nil but transferService.WriteCSV was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   io.Writer
		In  transfer.ExportInput
	}{
		Ctx: ctx,
		W:   w,
		In:  in,
	}
	mock.lockWriteCSV.Lock()
	mock.calls.WriteCSV = append(mock.calls.WriteCSV, callInfo)
	mock.lockWriteCSV.Unlock()
	return mock.WriteCSVFunc(ctx, w, in)
}

func (mock *transferServiceMock) WriteCSVCalls() []struct {
	Ctx context.Context
	W   io.Writer
	In  transfer.ExportInput
} {
	mock.lockWriteCSV.RLock()
	calls := mock.calls.WriteCSV
	mock.lockWriteCSV.RUnlock()
	return calls
}

func (mock *transferServiceMock) WriteJSON(ctx context.Context, w io.Writer) (int, error) {
	if mock.WriteJSONFunc == nil {
		panic("transferServiceMock.WriteJSONFunc: method is nil but transferService.WriteJSON was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   io.Writer
	}{
		Ctx: ctx,
		W:   w,
	}
	mock.lockWriteJSON.Lock()
	mock.calls.WriteJSON = append(mock.calls.WriteJSON, callInfo)
	mock.lockWriteJSON.Unlock()
	return mock.WriteJSONFunc(ctx, w)
}

func (mock *transferServiceMock) WriteJSONCalls() []struct {
	Ctx context.Context
	W   io.Writer
} {
	mock.lockWriteJSON.RLock()
	calls := mock.calls.WriteJSON
	mock.lockWriteJSON.RUnlock()
	return calls
}

func (mock *transferServiceMock) Import(ctx context.Context, r io.Reader) (*transfer.ImportResult, error) {
	if mock.ImportFunc == nil {
		panic("transferServiceMock.ImportFunc: method is nil but transferService.Import was just called")
	}
	callInfo := struct {
		Ctx context.Context
		R   io.Reader
	}{
		Ctx: ctx,
		R:   r,
	}
	mock.lockImport.Lock()
	mock.calls.Import = append(mock.calls.Import, callInfo)
	mock.lockImport.Unlock()
	return mock.ImportFunc(ctx, r)
}

func (mock *transferServiceMock) ImportCalls() []struct {
	Ctx context.Context
	R   io.Reader
} {
	mock.lockImport.RLock()
	calls := mock.calls.Import
	mock.lockImport.RUnlock()
	return calls
}

func (mock *transferServiceMock) Report(ctx context.Context) (string, error) {
	if mock.ReportFunc == nil {
		panic("transferServiceMock.ReportFunc: method is nil but transferService.Report was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockReport.Lock()
	mock.calls.Report = append(mock.calls.Report, callInfo)
	mock.lockReport.Unlock()
	return mock.ReportFunc(ctx)
}

func (mock *transferServiceMock) ReportCalls() []struct {
	Ctx context.Context
} {
	mock.lockReport.RLock()
	calls := mock.calls.Report
	mock.lockReport.RUnlock()
	return calls
}
