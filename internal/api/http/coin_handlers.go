package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"placereview-backend/internal/domain"
	"placereview-backend/internal/service"
)

const maxTipAmount = 500

type CoinHandler struct {
	coins service.CoinService
}

func NewCoinHandler(coins service.CoinService) *CoinHandler {
	return &CoinHandler{coins: coins}
}

// GetBalance handles GET /api/coins/balance
func (h *CoinHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	balance, err := h.coins.GetUserBalance(r.Context(), userID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, balance)
}

// ListTransactions handles GET /api/coins/transactions?skip=&limit=
func (h *CoinHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 50
	}

	txs, err := h.coins.ListTransactions(r.Context(), userID, int32(limit), int32(skip))
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	if txs == nil {
		txs = []domain.CoinTransaction{}
	}
	respondWithJSON(w, http.StatusOK, txs)
}

// ListPackages handles GET /api/coins/packages
func (h *CoinHandler) ListPackages(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, domain.CoinPackages)
}

// PurchasePackage handles POST /api/coins/purchase/{package_id}
func (h *CoinHandler) PurchasePackage(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	packageID := mux.Vars(r)["package_id"]
	tx, err := h.coins.PurchasePackage(r.Context(), userID, packageID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"message":        fmt.Sprintf("Successfully purchased %d coins", tx.Amount),
		"transaction_id": tx.ID,
	})
}

type tipRequest struct {
	Amount  int32  `json:"amount"`
	Message string `json:"message"`
}

// TipUser handles POST /api/coins/tip/{user_id}
func (h *CoinHandler) TipUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	recipientID, err := strconv.Atoi(mux.Vars(r)["user_id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if int32(recipientID) == userID {
		respondWithError(w, http.StatusBadRequest, "cannot tip yourself")
		return
	}

	var req tipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Amount <= 0 {
		respondWithError(w, http.StatusBadRequest, "tip amount must be positive")
		return
	}
	if req.Amount > maxTipAmount {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("maximum tip is %d coins", maxTipAmount))
		return
	}

	message := req.Message
	if message == "" {
		message = fmt.Sprintf("Tip to user %d", recipientID)
	}

	senderTx, receiverTx, err := h.coins.TransferCoins(r.Context(), userID, int32(recipientID), req.Amount, message)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":              true,
		"message":              fmt.Sprintf("Tipped %d coins to user %d", req.Amount, recipientID),
		"sender_transaction":   senderTx.ID,
		"receiver_transaction": receiverTx.ID,
	})
}
