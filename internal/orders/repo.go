package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cablemart/admin-api/internal/postgres"
	"github.com/jackc/pgx/v5"
)

type Repo struct{ DB postgres.Querier }

var ErrNotFound = errors.New("order not found")

const orderCols = `id, order_number, status, subtotal_cents, shipping_cents, total_cents,
       shipping_name, shipping_phone, shipping_line, shipping_city,
       courier, tracking_number, tracking_url, admin_notes,
       created_at, updated_at, shipped_at, delivered_at`

func scanOrder(row pgx.Row, o *Order) error {
	return row.Scan(
		&o.ID, &o.OrderNumber, &o.Status, &o.SubtotalCents, &o.ShippingCents, &o.TotalCents,
		&o.ShippingName, &o.ShippingPhone, &o.ShippingLine, &o.ShippingCity,
		&o.Courier, &o.TrackingNumber, &o.TrackingURL, &o.AdminNotes,
		&o.CreatedAt, &o.UpdatedAt, &o.ShippedAt, &o.DeliveredAt,
	)
}

func (r *Repo) Get(ctx context.Context, id string) (Order, error) {
	var o Order
	row := r.DB.QueryRow(ctx, `SELECT `+orderCols+` FROM orders WHERE id=$1`, id)
	if err := scanOrder(row, &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Order{}, ErrNotFound
		}
		return Order{}, err
	}
	items, err := r.Items(ctx, id)
	if err != nil {
		return Order{}, err
	}
	o.Items = items
	return o, nil
}

func (r *Repo) Items(ctx context.Context, orderID string) ([]Item, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, order_id, product_id, COALESCE(variant_id, ''), name, price_cents, qty
	                              FROM order_items WHERE order_id=$1 ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.VariantID, &it.Name, &it.PriceCents, &it.Qty); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// List returns orders newest first, items attached. Items are loaded one
// query per order; listings are small enough that nobody has batched this.
func (r *Repo) List(ctx context.Context, f Filter) ([]Order, error) {
	q := `SELECT ` + orderCols + ` FROM orders`
	var conds []string
	var args []any
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(order_number ILIKE $%d OR shipping_name ILIKE $%d OR shipping_phone ILIKE $%d)", n, n, n))
	}
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY created_at DESC"

	rows, err := r.DB.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		var o Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		items, err := r.Items(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Items = items
	}
	return out, nil
}

// UpdateStatus writes the status plus whatever the patch carries. Tracking
// fields are merged: only fields present in the patch are touched.
func (r *Repo) UpdateStatus(ctx context.Context, id string, st Status, p StatusPatch) error {
	sets := []string{"status=$1", "updated_at=now()"}
	args := []any{st}
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s=$%d", col, len(args)))
	}
	if p.ShippedAt != nil {
		add("shipped_at", *p.ShippedAt)
	}
	if p.DeliveredAt != nil {
		add("delivered_at", *p.DeliveredAt)
	}
	if tr := p.Tracking; tr != nil {
		if tr.Courier != nil {
			add("courier", *tr.Courier)
		}
		if tr.TrackingNumber != nil {
			add("tracking_number", *tr.TrackingNumber)
		}
		if tr.TrackingURL != nil {
			add("tracking_url", *tr.TrackingURL)
		}
	}
	args = append(args, id)
	q := fmt.Sprintf(`UPDATE orders SET %s WHERE id=$%d`, strings.Join(sets, ", "), len(args))
	ct, err := r.DB.Exec(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("order status write: %w", err)
	}
	if ct.RowsAffected() != 1 {
		return ErrNotFound
	}
	return nil
}

func (r *Repo) UpdateNotes(ctx context.Context, id, notes string) error {
	ct, err := r.DB.Exec(ctx, `UPDATE orders SET admin_notes=$2, updated_at=now() WHERE id=$1`, id, notes)
	if err != nil {
		return fmt.Errorf("order notes write: %w", err)
	}
	if ct.RowsAffected() != 1 {
		return ErrNotFound
	}
	return nil
}
