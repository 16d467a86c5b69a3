package domain

import "time"

// Review is the published record a completed reservation links to. The
// coin and reservation services only read it by location key; review
// content lives with the request layer.
type Review struct {
	ID           int32     `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	LocationName string    `json:"location_name"`
	Address      string    `json:"address"`
	LocationKey  string    `json:"location_key"`
	OwnerID      int32     `json:"owner_id"`
	IsPublished  bool      `json:"is_published"`
	CreatedAt    time.Time `json:"created_at"`
}

// Location availability conflict types.
const (
	ConflictExistingReview = "existing_review"
	ConflictReserved       = "reserved"
	ConflictSimilar        = "similar"
)

// ReviewSummary is the public slice of a review shown in conflict
// responses; it never carries content.
type ReviewSummary struct {
	ID           int32  `json:"id"`
	Title        string `json:"title"`
	LocationName string `json:"location_name"`
	Address      string `json:"address"`
}

// ReservationSummary describes a hold blocking a location without
// exposing who placed it.
type ReservationSummary struct {
	ID             int32     `json:"id"`
	LocationName   string    `json:"location_name"`
	ExpiresAt      time.Time `json:"expires_at"`
	HoursRemaining float64   `json:"hours_remaining"`
}

// LocationAvailability is the result of the pre-flight location check:
// whether a review can be written for the place, and what blocks it.
type LocationAvailability struct {
	Available      bool                `json:"available"`
	LocationKey    string              `json:"location_key"`
	ConflictType   string              `json:"conflict_type,omitempty"`
	ExistingReview *ReviewSummary      `json:"existing_review,omitempty"`
	Reservation    *ReservationSummary `json:"reservation,omitempty"`
	SimilarReview  *ReviewSummary      `json:"similar_review,omitempty"`
}
