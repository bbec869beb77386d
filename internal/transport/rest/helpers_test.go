package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/scanplate-backend/pkg/ctxutil"
)

//go:generate moq -out auth_service_mock_test.go -pkg rest . authService
//go:generate moq -out entry_service_mock_test.go -pkg rest . entryService
//go:generate moq -out stats_service_mock_test.go -pkg rest . statsService
//go:generate moq -out profile_service_mock_test.go -pkg rest . profileService
//go:generate moq -out transfer_service_mock_test.go -pkg rest . transferService
//go:generate moq -out lookup_service_mock_test.go -pkg rest . lookupService

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testEnvelope struct {
	Success bool                `json:"success"`
	Data    json.RawMessage     `json:"data"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) testEnvelope {
	t.Helper()
	var env testEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env), "body: %s", rec.Body.String())
	return env
}

func decodeData(t *testing.T, env testEnvelope, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, v))
}

// ownerRequest builds a request carrying an authenticated owner.
func ownerRequest(method, target, body string, owner uuid.UUID) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req.WithContext(ctxutil.WithOwnerID(req.Context(), owner))
}
