package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"placereview-backend/internal/domain"
	"placereview-backend/internal/service"
)

type ReservationHandler struct {
	reservations service.ReservationService
	now          func() time.Time
}

func NewReservationHandler(reservations service.ReservationService) *ReservationHandler {
	return &ReservationHandler{
		reservations: reservations,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// reservationView decorates a reservation with its derived fields.
type reservationView struct {
	domain.LocationReservation
	IsExpired      bool    `json:"is_expired"`
	HoursRemaining float64 `json:"hours_remaining"`
}

func (h *ReservationHandler) view(res *domain.LocationReservation) reservationView {
	now := h.now()
	return reservationView{
		LocationReservation: *res,
		IsExpired:           res.IsExpired(now),
		HoursRemaining:      res.HoursRemaining(now),
	}
}

// CheckEligibility handles GET /api/reservations/check-eligibility
func (h *ReservationHandler) CheckEligibility(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	eligibility, err := h.reservations.CanUserReserve(r.Context(), userID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, eligibility)
}

type createReservationRequest struct {
	LocationName string `json:"location_name"`
	Address      string `json:"address"`
}

// Create handles POST /api/reservations
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req createReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.reservations.ReserveLocation(r.Context(), userID, req.LocationName, req.Address)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, h.view(res))
}

// ListMine handles GET /api/reservations/my-reservations
func (h *ReservationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	reservations, err := h.reservations.GetUserReservations(r.Context(), userID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	views := make([]reservationView, 0, len(reservations))
	for i := range reservations {
		views = append(views, h.view(&reservations[i]))
	}
	respondWithJSON(w, http.StatusOK, views)
}

// Get handles GET /api/reservations/{id}
func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid reservation id")
		return
	}

	res, err := h.reservations.GetReservation(r.Context(), int32(id), userID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, h.view(res))
}

// Cancel handles DELETE /api/reservations/{id}
func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid reservation id")
		return
	}

	res, err := h.reservations.CancelReservation(r.Context(), int32(id), userID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"message":        "Reservation cancelled successfully",
		"reservation_id": res.ID,
		"note":           fmt.Sprintf("Deposit (%d coins) is not refunded for cancelled reservations", res.DepositAmount),
	})
}

// ExpireBatch handles POST /api/reservations/expire-batch. Normally the
// scheduler runs the sweep; this endpoint exists for manual triggers.
func (h *ReservationHandler) ExpireBatch(w http.ResponseWriter, r *http.Request) {
	count, err := h.reservations.ExpireReservations(r.Context())
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":              true,
		"expired_reservations": count,
		"message":              fmt.Sprintf("Expired %d reservations", count),
	})
}
