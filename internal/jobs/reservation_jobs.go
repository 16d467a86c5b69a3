package jobs

import (
	"context"

	"placereview-backend/internal/logger"
)

// ExpireReservations flips every ACTIVE reservation past its 72-hour
// deadline to EXPIRED. Deposits are forfeited, so the sweep never
// touches the ledger. Safe to re-run: already expired rows are skipped.
func (jr *JobRunner) ExpireReservations() {
	jr.runWithRecovery("ExpireReservations", func() {
		ctx := context.Background()

		count, err := jr.services.Reservation.ExpireReservations(ctx)
		if err != nil {
			logger.Error("Failed to expire reservations", "error", err)
			return
		}

		logger.Info("Marked reservations as expired", "count", count)
	})
}
