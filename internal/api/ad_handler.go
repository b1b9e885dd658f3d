package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/nvoronina/adboard-api/internal/api/shared"
	"github.com/nvoronina/adboard-api/internal/domain"
	"github.com/nvoronina/adboard-api/internal/store"
)

// CreateAdRequest represents the request body for posting a new ad.
// CreatedAt is optional; when omitted the ad is stamped with the current time.
type CreateAdRequest struct {
	Title       string     `json:"title"       validate:"required,min=1,max=128"`
	Description string     `json:"description" validate:"required,min=1,max=256"`
	UserID      int64      `json:"user_id"     validate:"required,gt=0"`
	CreatedAt   *time.Time `json:"created_at"`
}

// AdResponse represents the response data for an ad.
// Matching the original wire format, it carries the id, title and owner only.
type AdResponse struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	UserID int64  `json:"user_id"`
}

// AdHandler handles ad-related HTTP requests.
type AdHandler struct {
	adStore   store.AdStore
	validator *validator.Validate
	logger    *slog.Logger
}

// NewAdHandler creates a new AdHandler with the given dependencies.
// If logger is nil, a default logger will be used.
func NewAdHandler(adStore store.AdStore, logger *slog.Logger) *AdHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &AdHandler{
		adStore:   adStore,
		validator: validator.New(),
		logger:    logger.With(slog.String("component", "ad_handler")),
	}
}

// GetAd handles GET /ad/{id} requests.
func (h *AdHandler) GetAd(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	ad, err := h.adStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, adToResponse(ad))
}

// CreateAd handles POST /ads/ requests.
func (h *AdHandler) CreateAd(w http.ResponseWriter, r *http.Request) {
	var req CreateAdRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	var createdAt time.Time
	if req.CreatedAt != nil {
		createdAt = *req.CreatedAt
	}

	ad, err := domain.NewAd(req.Title, req.Description, req.UserID, createdAt)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid ad data: "+err.Error())
		return
	}

	if err := h.adStore.Create(r.Context(), ad); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, adToResponse(ad))
}

// DeleteAd handles DELETE /ad/{id} requests.
func (h *AdHandler) DeleteAd(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.adStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{
		"response": "Ad has been deleted",
	})
}

// adToResponse converts a domain.Ad to an AdResponse.
func adToResponse(ad *domain.Ad) AdResponse {
	return AdResponse{
		ID:     ad.ID,
		Title:  ad.Title,
		UserID: ad.UserID,
	}
}
