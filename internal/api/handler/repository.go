package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/hszk-dev/openveo-repository/internal/api/middleware"
	"github.com/hszk-dev/openveo-repository/internal/domain/model"
	"github.com/hszk-dev/openveo-repository/internal/lang"
	"github.com/hszk-dev/openveo-repository/internal/render"
	"github.com/hszk-dev/openveo-repository/internal/usecase"
)

// Request/Response types

type CapabilitiesResponse struct {
	Name                 string          `json:"name"`
	SupportedFileTypes   []string        `json:"supported_filetypes"`
	SupportedReturnTypes int             `json:"supported_returntypes"`
	DefaultReturnType    int             `json:"default_returntype"`
	ContainsPrivateData  bool            `json:"contains_private_data"`
	CheckLogin           bool            `json:"check_login"`
	Privacy              PrivacyResponse `json:"privacy"`
}

type PrivacyResponse struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type FormField struct {
	Type  string `json:"type"`
	ID    string `json:"id"`
	Name  string `json:"name"`
	Label string `json:"label"`
}

type SearchFormResponse struct {
	Login          []FormField `json:"login"`
	LoginBtnLabel  string      `json:"login_btn_label"`
	LoginBtnAction string      `json:"login_btn_action"`
	AllowCaching   bool        `json:"allowcaching"`
}

type ListingEntry struct {
	Size            int    `json:"size"`
	Source          string `json:"source"`
	ShortTitle      string `json:"shorttitle"`
	Title           string `json:"title"`
	Thumbnail       string `json:"thumbnail"`
	ThumbnailWidth  int    `json:"thumbnail_width"`
	ThumbnailHeight int    `json:"thumbnail_height"`
	Date            int64  `json:"date"`
}

type SearchResponse struct {
	List      []ListingEntry `json:"list"`
	Pages     int            `json:"pages"`
	Page      int            `json:"page"`
	NoSearch  bool           `json:"nosearch"`
	NoLogin   bool           `json:"nologin"`
	NoRefresh bool           `json:"norefresh"`
	Manage    string         `json:"manage"`
}

type DetailsResponse struct {
	Details string `json:"details"`
	Status  string `json:"status"`
}

type LinkResponse struct {
	URL string `json:"url"`
}

// RepositoryHandler handles the file picker requests.
type RepositoryHandler struct {
	svc usecase.ReferenceService
}

// NewRepositoryHandler creates a new RepositoryHandler.
func NewRepositoryHandler(svc usecase.ReferenceService) *RepositoryHandler {
	return &RepositoryHandler{svc: svc}
}

// Routes mounts the handler endpoints.
func (h *RepositoryHandler) Routes(r chi.Router) {
	r.Get("/capabilities", h.Capabilities)
	r.Get("/login", h.Login)
	r.Get("/search", h.Search)
	r.Get("/references/{id}", h.ReferenceDetails)
	r.Get("/links/{id}", h.Link)
	r.Get("/files/{id}", h.File)
}

// Capabilities handles GET /v1/capabilities
func (h *RepositoryHandler) Capabilities(w http.ResponseWriter, r *http.Request) {
	l := middleware.GetLocalizer(r.Context())
	c := model.DefaultCapabilities()

	JSON(w, http.StatusOK, CapabilitiesResponse{
		Name:                 l.String(lang.PluginName),
		SupportedFileTypes:   c.SupportedFileTypes,
		SupportedReturnTypes: int(c.SupportedReturnTypes),
		DefaultReturnType:    int(c.DefaultReturnType),
		ContainsPrivateData:  c.ContainsPrivateData,
		CheckLogin:           c.CheckLogin,
		Privacy: PrivacyResponse{
			Reason:  model.PrivacyReason,
			Message: l.String(lang.PrivacyMetadata),
		},
	})
}

// Login handles GET /v1/login
// The login form is a search form, no authentication is involved.
func (h *RepositoryHandler) Login(w http.ResponseWriter, r *http.Request) {
	l := middleware.GetLocalizer(r.Context())

	JSON(w, http.StatusOK, SearchFormResponse{
		Login: []FormField{{
			Type:  "text",
			ID:    "search",
			Name:  "url",
			Label: l.String(lang.SearchFormLinkFieldLabel),
		}},
		LoginBtnLabel:  l.String(lang.SearchFormSubmitLabel),
		LoginBtnAction: "search",
		AllowCaching:   true,
	})
}

// Search handles GET /v1/search?url=...&accepted_types=...
func (h *RepositoryHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	output, err := h.svc.Search(r.Context(), usecase.SearchInput{
		URL:           query.Get("url"),
		AcceptedTypes: parseAcceptedTypes(query.Get("accepted_types")),
	})
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	JSON(w, http.StatusOK, toSearchResponse(output))
}

// ReferenceDetails handles GET /v1/references/{id}?filestatus=...
func (h *RepositoryHandler) ReferenceDetails(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	fileStatus := 0
	if raw := r.URL.Query().Get("filestatus"); raw != "" {
		status, err := strconv.Atoi(raw)
		if err != nil {
			Error(w, http.StatusBadRequest, "invalid_filestatus", "File status must be an integer")
			return
		}
		fileStatus = status
	}

	outcome := h.svc.ReferenceDetails(r.Context(), id, fileStatus)

	JSON(w, http.StatusOK, DetailsResponse{
		Details: detailsText(middleware.GetLocalizer(r.Context()), id, outcome),
		Status:  outcome.Kind.String(),
	})
}

// Link handles GET /v1/links/{id}
func (h *RepositoryHandler) Link(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !model.IsValidVideoID(id) {
		Error(w, http.StatusBadRequest, "invalid_video_id", "Video ID is malformed")
		return
	}

	JSON(w, http.StatusOK, LinkResponse{URL: h.svc.Link(id)})
}

// File handles GET /v1/files/{id}?filename=...
// Videos are never served, only a link to the video page.
func (h *RepositoryHandler) File(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !model.IsValidVideoID(id) {
		Error(w, http.StatusBadRequest, "invalid_video_id", "Video ID is malformed")
		return
	}

	fileName := r.URL.Query().Get("filename")
	if fileName == "" {
		fileName = id
	}

	fragment, err := render.FileReference{URL: h.svc.Link(id), FileName: fileName}.Render()
	if err != nil {
		slog.Error("failed to render file reference",
			"request_id", middleware.GetRequestID(r.Context()),
			"video_id", id,
			"error", err,
		)
		Error(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	HTML(w, http.StatusOK, fragment)
}

func (h *RepositoryHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrNoCompatibleType):
		l := middleware.GetLocalizer(r.Context())
		Error(w, http.StatusUnprocessableEntity, "no_compatible_type", l.String(lang.ErrorNoCompatibleType))
	default:
		slog.Error("search failed",
			"request_id", middleware.GetRequestID(r.Context()),
			"error", err,
		)
		Error(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
	}
}

// detailsText is the title of a published video, the lost source message
// otherwise.
func detailsText(l lang.Localizer, id string, outcome model.Outcome) string {
	if outcome.IsPublished() {
		return outcome.Video.Title
	}
	return l.String(lang.LostSource, id)
}

// parseAcceptedTypes splits a comma separated list. Empty means any type.
func parseAcceptedTypes(raw string) []string {
	var types []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}
	if len(types) == 0 {
		return []string{model.AnyType}
	}
	return types
}

func toSearchResponse(output *usecase.SearchOutput) SearchResponse {
	resp := SearchResponse{
		List:      []ListingEntry{},
		Pages:     1,
		Page:      1,
		NoSearch:  true,
		NoLogin:   true,
		NoRefresh: true,
		Manage:    output.ManageURL,
	}

	if ref := output.Reference; ref != nil {
		resp.List = append(resp.List, ListingEntry{
			Size:            0,
			Source:          ref.ID,
			ShortTitle:      ref.Title,
			Title:           ref.FileName(),
			Thumbnail:       ref.ThumbnailURL,
			ThumbnailWidth:  model.ThumbnailSize,
			ThumbnailHeight: model.ThumbnailSize,
			Date:            ref.PublishedAt,
		})
	}

	return resp
}
