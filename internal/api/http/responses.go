package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"placereview-backend/internal/domain"
	"placereview-backend/internal/logger"
	"placereview-backend/internal/service"
)

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithDomainError translates service errors into HTTP statuses.
// Unmapped errors are logged and reported as a plain 500 so internals
// never leak to the client.
func respondWithDomainError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError

	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrReviewNotFound),
		errors.Is(err, domain.ErrPackageNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &validationErr),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrZeroAmount),
		errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrInvalidState):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrLocationUnavailable),
		errors.Is(err, service.ErrUsernameTaken):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		respondWithError(w, http.StatusUnauthorized, err.Error())
	default:
		logger.Error("Unhandled service error", "error", err)
		respondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}
