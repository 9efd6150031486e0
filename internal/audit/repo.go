package audit

import (
	"context"
	"fmt"

	"github.com/cablemart/admin-api/internal/postgres"
)

type Repo struct{ DB postgres.Querier }

func (r *Repo) InsertStatusEvent(ctx context.Context, ev StatusEvent) error {
	_, err := r.DB.Exec(ctx, `INSERT INTO order_status_events(id, order_id, old_status, new_status, occurred_at)
	                          VALUES ($1,$2,$3,$4,$5)`,
		ev.ID, ev.OrderID, ev.OldStatus, ev.NewStatus, ev.OccurredAt)
	if err != nil {
		return fmt.Errorf("insert status event: %w", err)
	}
	return nil
}
