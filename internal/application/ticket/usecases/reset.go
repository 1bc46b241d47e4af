package usecases

import (
	"context"
	"time"

	"skymaint/internal/domain/asset"
	"skymaint/internal/domain/ticket"
)

// resetCounters zeroes the usage counters and last-maintenance clock for
// the closed ticket's asset and every referenced component. Must run inside
// the closing transaction.
func resetCounters(ctx context.Context, ledger asset.UsageLedger, t *ticket.Ticket, at time.Time) error {
	if err := ledger.ResetCounters(ctx, asset.KindAsset, t.AssetID(), at); err != nil {
		return err
	}
	for _, cid := range t.ComponentIDs() {
		if err := ledger.ResetCounters(ctx, asset.KindComponent, cid, at); err != nil {
			return err
		}
	}
	return nil
}
