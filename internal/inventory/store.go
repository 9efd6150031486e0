package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/cablemart/admin-api/internal/postgres"
	"github.com/jackc/pgx/v5"
)

// Tier names which table holds the authoritative stock count for an order
// line. Failures are tagged with the tier so the operator can see which
// layer broke.
type Tier string

const (
	TierVariant Tier = "variant"
	TierProduct Tier = "product"
	TierMerch   Tier = "merch"
)

// Ref points at one stock record: a product variant, a plain product, or a
// merch item.
type Ref struct {
	Tier Tier
	ID   string
}

var ErrNoStockRecord = errors.New("no stock record")

type Store struct{ DB postgres.Querier }

// Lookup resolves the stock record for an order line and returns its current
// count. Priority: a variant id wins; otherwise the product table is probed,
// and a miss there falls through to merch (its count lives in
// quantity_available).
func (s *Store) Lookup(ctx context.Context, productID, variantID string) (Ref, int, error) {
	var stock int
	if variantID != "" {
		err := s.DB.QueryRow(ctx, `SELECT stock FROM product_variants WHERE id=$1`, variantID).Scan(&stock)
		if err != nil {
			return Ref{}, 0, fmt.Errorf("variant stock read: %w", err)
		}
		return Ref{Tier: TierVariant, ID: variantID}, stock, nil
	}

	err := s.DB.QueryRow(ctx, `SELECT stock FROM products WHERE id=$1`, productID).Scan(&stock)
	if err == nil {
		return Ref{Tier: TierProduct, ID: productID}, stock, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return Ref{}, 0, fmt.Errorf("product stock read: %w", err)
	}

	err = s.DB.QueryRow(ctx, `SELECT quantity_available FROM merch WHERE id=$1`, productID).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Ref{}, 0, fmt.Errorf("merch stock read: item %s: %w", productID, ErrNoStockRecord)
		}
		return Ref{}, 0, fmt.Errorf("merch stock read: %w", err)
	}
	return Ref{Tier: TierMerch, ID: productID}, stock, nil
}

// Write stores a new absolute count on the record ref points at.
func (s *Store) Write(ctx context.Context, ref Ref, stock int) error {
	var q string
	switch ref.Tier {
	case TierVariant:
		q = `UPDATE product_variants SET stock=$2 WHERE id=$1`
	case TierProduct:
		q = `UPDATE products SET stock=$2 WHERE id=$1`
	case TierMerch:
		q = `UPDATE merch SET quantity_available=$2 WHERE id=$1`
	default:
		return fmt.Errorf("unknown stock tier %q", ref.Tier)
	}
	ct, err := s.DB.Exec(ctx, q, ref.ID, stock)
	if err != nil {
		return fmt.Errorf("%s stock write: %w", ref.Tier, err)
	}
	if ct.RowsAffected() != 1 {
		return fmt.Errorf("%s stock write: record %s: %w", ref.Tier, ref.ID, ErrNoStockRecord)
	}
	return nil
}
