package inventory

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDB answers queries by substring match on the SQL text.
type fakeDB struct {
	stocks map[string]int // table -> stock value returned
	misses map[string]bool
	failOn string
	execs  []string
}

type fakeRow struct {
	val int
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*int)) = r.val
	return nil
}

func (f *fakeDB) table(sql string) string {
	switch {
	case strings.Contains(sql, "product_variants"):
		return "product_variants"
	case strings.Contains(sql, "merch"):
		return "merch"
	default:
		return "products"
	}
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	t := f.table(sql)
	if f.failOn == t {
		return fakeRow{err: errors.New("connection reset")}
	}
	if f.misses[t] {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{val: f.stocks[t]}
}

func (f *fakeDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not used")
}

func (f *fakeDB) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	t := f.table(sql)
	if f.failOn == t {
		return pgconn.CommandTag{}, errors.New("connection reset")
	}
	if f.misses[t] {
		return pgconn.NewCommandTag("UPDATE 0"), nil
	}
	f.execs = append(f.execs, t)
	return pgconn.NewCommandTag("UPDATE 1"), nil
}

func TestLookupVariantWinsOverProduct(t *testing.T) {
	db := &fakeDB{stocks: map[string]int{"product_variants": 7, "products": 99}}
	s := &Store{DB: db}

	ref, stock, err := s.Lookup(context.Background(), "prod-1", "var-1")
	require.NoError(t, err)
	assert.Equal(t, Ref{Tier: TierVariant, ID: "var-1"}, ref)
	assert.Equal(t, 7, stock)
}

func TestLookupPlainProduct(t *testing.T) {
	db := &fakeDB{stocks: map[string]int{"products": 12}}
	s := &Store{DB: db}

	ref, stock, err := s.Lookup(context.Background(), "prod-1", "")
	require.NoError(t, err)
	assert.Equal(t, Ref{Tier: TierProduct, ID: "prod-1"}, ref)
	assert.Equal(t, 12, stock)
}

func TestLookupFallsThroughToMerch(t *testing.T) {
	db := &fakeDB{
		stocks: map[string]int{"merch": 4},
		misses: map[string]bool{"products": true},
	}
	s := &Store{DB: db}

	ref, stock, err := s.Lookup(context.Background(), "merch-1", "")
	require.NoError(t, err)
	assert.Equal(t, Ref{Tier: TierMerch, ID: "merch-1"}, ref)
	assert.Equal(t, 4, stock)
}

func TestLookupNoRecordAnywhere(t *testing.T) {
	db := &fakeDB{misses: map[string]bool{"products": true, "merch": true}}
	s := &Store{DB: db}

	_, _, err := s.Lookup(context.Background(), "ghost", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoStockRecord)
	assert.Contains(t, err.Error(), "merch stock read")
}

func TestLookupErrorNamesTier(t *testing.T) {
	db := &fakeDB{failOn: "product_variants"}
	s := &Store{DB: db}

	_, _, err := s.Lookup(context.Background(), "prod-1", "var-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "variant stock read")
}

func TestWritePerTier(t *testing.T) {
	db := &fakeDB{stocks: map[string]int{}}
	s := &Store{DB: db}

	require.NoError(t, s.Write(context.Background(), Ref{Tier: TierVariant, ID: "v"}, 3))
	require.NoError(t, s.Write(context.Background(), Ref{Tier: TierProduct, ID: "p"}, 3))
	require.NoError(t, s.Write(context.Background(), Ref{Tier: TierMerch, ID: "m"}, 3))
	assert.Equal(t, []string{"product_variants", "products", "merch"}, db.execs)
}

func TestWriteMissingRecord(t *testing.T) {
	db := &fakeDB{misses: map[string]bool{"merch": true}}
	s := &Store{DB: db}

	err := s.Write(context.Background(), Ref{Tier: TierMerch, ID: "m"}, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoStockRecord)
	assert.Contains(t, err.Error(), "merch stock write")
}
