package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusActive    ReservationStatus = "ACTIVE"
	ReservationStatusCompleted ReservationStatus = "COMPLETED"
	ReservationStatusExpired   ReservationStatus = "EXPIRED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

// LocationReservation is a temporary hold on a location pending a review.
// ACTIVE transitions exactly once to COMPLETED, EXPIRED or CANCELLED;
// terminal states never revert.
type LocationReservation struct {
	ID                int32             `json:"id"`
	LocationName      string            `json:"location_name"`
	Address           string            `json:"address"`
	LocationKey       string            `json:"location_key"`
	UserID            int32             `json:"user_id"`
	Status            ReservationStatus `json:"status"`
	DepositAmount     int32             `json:"deposit_amount"`
	ReservedAt        time.Time         `json:"reserved_at"`
	ExpiresAt         time.Time         `json:"expires_at"`
	CompletedAt       *time.Time        `json:"completed_at,omitempty"`
	ReviewID          *int32            `json:"review_id,omitempty"`
	CoinTransactionID *int32            `json:"coin_transaction_id,omitempty"`
}

// IsExpired reports whether the hold is past its deadline at the given
// instant. ExpiresAt is fixed at creation and never recomputed.
func (r *LocationReservation) IsExpired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

// HoursRemaining returns the hours left before expiry, floored at 0.
func (r *LocationReservation) HoursRemaining(now time.Time) float64 {
	if r.IsExpired(now) {
		return 0
	}
	return r.ExpiresAt.Sub(now).Hours()
}

// ExistingReservation describes the ACTIVE reservation that blocks a
// user from creating another one.
type ExistingReservation struct {
	ID             int32   `json:"id"`
	LocationName   string  `json:"location_name"`
	HoursRemaining float64 `json:"hours_remaining"`
}

// ReservationEligibility is the result of the can-reserve check. Reason
// and the detail fields let the caller render a specific message.
type ReservationEligibility struct {
	CanReserve          bool                 `json:"can_reserve"`
	Reason              string               `json:"reason,omitempty"`
	ExistingReservation *ExistingReservation `json:"existing_reservation,omitempty"`
	CooldownUntil       *time.Time           `json:"cooldown_until,omitempty"`
}
