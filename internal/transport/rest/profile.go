package rest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/scanplate-backend/internal/domain"
	"github.com/heartmarshall/scanplate-backend/internal/service/profile"
	"github.com/heartmarshall/scanplate-backend/internal/service/transfer"
)

type profileService interface {
	Get(ctx context.Context) (*profile.View, error)
	Update(ctx context.Context, in profile.UpdateInput) (*profile.View, error)
}

type transferService interface {
	WriteCSV(ctx context.Context, w io.Writer, in transfer.ExportInput) (int, error)
	WriteJSON(ctx context.Context, w io.Writer) (int, error)
	Import(ctx context.Context, r io.Reader) (*transfer.ImportResult, error)
	Report(ctx context.Context) (string, error)
}

// ProfileHandler serves /api/profile, including export and import.
type ProfileHandler struct {
	profiles  profileService
	transfers transferService
	loc       *time.Location
	now       func() time.Time
	log       *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(profiles profileService, transfers transferService, loc *time.Location, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		profiles:  profiles,
		transfers: transfers,
		loc:       loc,
		now:       time.Now,
		log:       logger.With("handler", "profile"),
	}
}

type updateProfileRequest struct {
	Name          *string  `json:"name"`
	Age           *int     `json:"age"`
	Gender        *string  `json:"gender"`
	Height        *float64 `json:"height"`
	Weight        *float64 `json:"weight"`
	ActivityLevel *string  `json:"activity_level"`
	CalorieGoal   *int     `json:"calorie_goal"`
	DarkMode      *bool    `json:"dark_mode"`
	Language      *string  `json:"language"`
	Units         *string  `json:"units"`
	Notifications *bool    `json:"notifications"`
}

func (req updateProfileRequest) patch() domain.ProfilePatch {
	p := domain.ProfilePatch{
		Name:          req.Name,
		Age:           req.Age,
		Height:        req.Height,
		Weight:        req.Weight,
		CalorieGoal:   req.CalorieGoal,
		DarkMode:      req.DarkMode,
		Language:      req.Language,
		Notifications: req.Notifications,
	}
	if req.Gender != nil {
		g := domain.Gender(*req.Gender)
		p.Gender = &g
	}
	if req.ActivityLevel != nil {
		a := domain.ActivityLevel(*req.ActivityLevel)
		p.ActivityLevel = &a
	}
	if req.Units != nil {
		u := domain.Units(*req.Units)
		p.Units = &u
	}
	return p
}

// Get handles GET /api/profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.profiles.Get(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toProfileResponse(view))
}

// Update handles PUT /api/profile.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.profiles.Update(r.Context(), profile.UpdateInput{ProfilePatch: req.patch()})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeMessage(w, http.StatusOK, "profile updated", toProfileResponse(view))
}

// ExportCSV handles POST /api/profile/export. The document is buffered so
// a failure midway still produces a JSON error instead of a truncated file.
func (h *ProfileHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	var (
		in  transfer.ExportInput
		err error
	)
	if in.StartDate, err = dateParam(r, "start_date", h.loc); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if in.EndDate, err = dateParam(r, "end_date", h.loc); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var buf bytes.Buffer
	n, err := h.transfers.WriteCSV(r.Context(), &buf, in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	h.attach(w, "text/csv; charset=utf-8", "csv", n, &buf)
}

// ExportJSON handles GET /api/profile/export.json.
func (h *ProfileHandler) ExportJSON(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	n, err := h.transfers.WriteJSON(r.Context(), &buf)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	h.attach(w, "application/json", "json", n, &buf)
}

func (h *ProfileHandler) attach(w http.ResponseWriter, contentType, ext string, count int, body *bytes.Buffer) {
	name := fmt.Sprintf("nutrition-%s.%s", h.now().In(h.loc).Format(domain.DateLayout), ext)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	w.Header().Set("X-Entry-Count", strconv.Itoa(count))
	w.WriteHeader(http.StatusOK)
	body.WriteTo(w) //nolint:errcheck
}

type importResponse struct {
	Entries          int  `json:"entries"`
	SettingsRestored bool `json:"settings_restored"`
}

// Import handles POST /api/profile/import. The snapshot is either the raw
// request body or a multipart upload in the "file" field.
func (h *ProfileHandler) Import(w http.ResponseWriter, r *http.Request) {
	var body io.Reader = r.Body

	if mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mediaType == "multipart/form-data" {
		file, _, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "missing file upload")
			return
		}
		defer file.Close()
		body = file
	}

	result, err := h.transfers.Import(r.Context(), body)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeMessage(w, http.StatusOK, "import completed", importResponse{
		Entries:          result.Entries,
		SettingsRestored: result.SettingsRestored,
	})
}

// Report handles GET /api/profile/report.
func (h *ProfileHandler) Report(w http.ResponseWriter, r *http.Request) {
	text, err := h.transfers.Report(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, text) //nolint:errcheck
}
