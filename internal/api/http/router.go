package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"placereview-backend/internal/security"
	"placereview-backend/internal/service"
)

// NewRouter wires every handler onto the API surface. Auth endpoints
// are open; everything else requires a bearer token.
func NewRouter(
	auth service.AuthService,
	coins service.CoinService,
	reservations service.ReservationService,
	reviews service.ReviewService,
	tokens security.TokenManager,
) *mux.Router {
	authHandler := NewAuthHandler(auth)
	coinHandler := NewCoinHandler(coins)
	reservationHandler := NewReservationHandler(reservations)
	reviewHandler := NewReviewHandler(reviews)
	authMiddleware := NewAuthMiddleware(tokens)

	r := mux.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger)

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(authMiddleware.RequireAuth)

	api.HandleFunc("/coins/balance", coinHandler.GetBalance).Methods(http.MethodGet)
	api.HandleFunc("/coins/transactions", coinHandler.ListTransactions).Methods(http.MethodGet)
	api.HandleFunc("/coins/packages", coinHandler.ListPackages).Methods(http.MethodGet)
	api.HandleFunc("/coins/purchase/{package_id}", coinHandler.PurchasePackage).Methods(http.MethodPost)
	api.HandleFunc("/coins/tip/{user_id:[0-9]+}", coinHandler.TipUser).Methods(http.MethodPost)

	api.HandleFunc("/reservations/check-eligibility", reservationHandler.CheckEligibility).Methods(http.MethodGet)
	api.HandleFunc("/reservations", reservationHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/reservations/my-reservations", reservationHandler.ListMine).Methods(http.MethodGet)
	api.HandleFunc("/reservations/expire-batch", reservationHandler.ExpireBatch).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{id:[0-9]+}", reservationHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{id:[0-9]+}", reservationHandler.Cancel).Methods(http.MethodDelete)

	api.HandleFunc("/reviews", reviewHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/reviews/check-location", reviewHandler.CheckLocation).Methods(http.MethodGet)

	return r
}
