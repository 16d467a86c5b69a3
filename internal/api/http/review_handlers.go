package http

import (
	"encoding/json"
	"net/http"

	"placereview-backend/internal/service"
)

type ReviewHandler struct {
	reviews service.ReviewService
}

func NewReviewHandler(reviews service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

type createReviewRequest struct {
	Title        string `json:"title"`
	Content      string `json:"content"`
	LocationName string `json:"location_name"`
	Address      string `json:"address"`
}

// Create handles POST /api/reviews
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req createReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	review, err := h.reviews.CreateReview(r.Context(), userID, req.Title, req.Content, req.LocationName, req.Address)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, review)
}

// CheckLocation handles GET /api/reviews/check-location?location_name=&address=
func (h *ReviewHandler) CheckLocation(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentUserID(r); !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	locationName := r.URL.Query().Get("location_name")
	address := r.URL.Query().Get("address")

	availability, err := h.reviews.CheckLocation(r.Context(), locationName, address)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, availability)
}
