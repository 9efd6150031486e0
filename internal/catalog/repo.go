package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/cablemart/admin-api/internal/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Repo struct{ DB postgres.Querier }

var ErrNotFound = errors.New("record not found")

// ---- products ----

func (r *Repo) ListProducts(ctx context.Context) ([]Product, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, name, slug, description, price_cents, stock,
	                                     COALESCE(collection_id, ''), image_url, created_at, updated_at
	                              FROM products ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &p.PriceCents, &p.Stock,
			&p.CollectionID, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) GetProduct(ctx context.Context, id string) (Product, error) {
	var p Product
	err := r.DB.QueryRow(ctx, `SELECT id, name, slug, description, price_cents, stock,
	                                  COALESCE(collection_id, ''), image_url, created_at, updated_at
	                           FROM products WHERE id=$1`, id).
		Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &p.PriceCents, &p.Stock,
			&p.CollectionID, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, ErrNotFound
	}
	return p, err
}

func (r *Repo) CreateProduct(ctx context.Context, p Product) (string, error) {
	id := uuid.NewString()
	_, err := r.DB.Exec(ctx, `INSERT INTO products(id, name, slug, description, price_cents, stock, collection_id, image_url)
	                          VALUES ($1,$2,$3,$4,$5,$6,NULLIF($7,''),$8)`,
		id, p.Name, p.Slug, p.Description, p.PriceCents, p.Stock, p.CollectionID, p.ImageURL)
	if err != nil {
		return "", fmt.Errorf("insert product: %w", err)
	}
	return id, nil
}

func (r *Repo) UpdateProduct(ctx context.Context, p Product) error {
	ct, err := r.DB.Exec(ctx, `UPDATE products SET name=$2, slug=$3, description=$4, price_cents=$5,
	                                  stock=$6, collection_id=NULLIF($7,''), image_url=$8, updated_at=now()
	                           WHERE id=$1`,
		p.ID, p.Name, p.Slug, p.Description, p.PriceCents, p.Stock, p.CollectionID, p.ImageURL)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if ct.RowsAffected() != 1 {
		return ErrNotFound
	}
	return nil
}

func (r *Repo) DeleteProduct(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "products", id)
}

// ---- variants ----

func (r *Repo) ListVariants(ctx context.Context, productID string) ([]Variant, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, product_id, label, price_cents, stock
	                              FROM product_variants WHERE product_id=$1 ORDER BY label`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Variant
	for rows.Next() {
		var v Variant
		if err := rows.Scan(&v.ID, &v.ProductID, &v.Label, &v.PriceCents, &v.Stock); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *Repo) CreateVariant(ctx context.Context, v Variant) (string, error) {
	id := uuid.NewString()
	_, err := r.DB.Exec(ctx, `INSERT INTO product_variants(id, product_id, label, price_cents, stock)
	                          VALUES ($1,$2,$3,$4,$5)`, id, v.ProductID, v.Label, v.PriceCents, v.Stock)
	if err != nil {
		return "", fmt.Errorf("insert variant: %w", err)
	}
	return id, nil
}

func (r *Repo) UpdateVariant(ctx context.Context, v Variant) error {
	ct, err := r.DB.Exec(ctx, `UPDATE product_variants SET label=$2, price_cents=$3, stock=$4 WHERE id=$1`,
		v.ID, v.Label, v.PriceCents, v.Stock)
	if err != nil {
		return fmt.Errorf("update variant: %w", err)
	}
	if ct.RowsAffected() != 1 {
		return ErrNotFound
	}
	return nil
}

func (r *Repo) DeleteVariant(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "product_variants", id)
}

// ---- merch ----

func (r *Repo) ListMerch(ctx context.Context) ([]Merch, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, name, price_cents, quantity_available, image_url, created_at
	                              FROM merch ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Merch
	for rows.Next() {
		var m Merch
		if err := rows.Scan(&m.ID, &m.Name, &m.PriceCents, &m.QuantityAvailable, &m.ImageURL, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *Repo) CreateMerch(ctx context.Context, m Merch) (string, error) {
	id := uuid.NewString()
	_, err := r.DB.Exec(ctx, `INSERT INTO merch(id, name, price_cents, quantity_available, image_url)
	                          VALUES ($1,$2,$3,$4,$5)`, id, m.Name, m.PriceCents, m.QuantityAvailable, m.ImageURL)
	if err != nil {
		return "", fmt.Errorf("insert merch: %w", err)
	}
	return id, nil
}

func (r *Repo) UpdateMerch(ctx context.Context, m Merch) error {
	ct, err := r.DB.Exec(ctx, `UPDATE merch SET name=$2, price_cents=$3, quantity_available=$4, image_url=$5 WHERE id=$1`,
		m.ID, m.Name, m.PriceCents, m.QuantityAvailable, m.ImageURL)
	if err != nil {
		return fmt.Errorf("update merch: %w", err)
	}
	if ct.RowsAffected() != 1 {
		return ErrNotFound
	}
	return nil
}

func (r *Repo) DeleteMerch(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "merch", id)
}

// ---- collections ----

func (r *Repo) ListCollections(ctx context.Context) ([]Collection, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, name, slug, description FROM collections ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Collection
	for rows.Next() {
		var c Collection
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repo) CreateCollection(ctx context.Context, c Collection) (string, error) {
	id := uuid.NewString()
	_, err := r.DB.Exec(ctx, `INSERT INTO collections(id, name, slug, description) VALUES ($1,$2,$3,$4)`,
		id, c.Name, c.Slug, c.Description)
	if err != nil {
		return "", fmt.Errorf("insert collection: %w", err)
	}
	return id, nil
}

func (r *Repo) UpdateCollection(ctx context.Context, c Collection) error {
	ct, err := r.DB.Exec(ctx, `UPDATE collections SET name=$2, slug=$3, description=$4 WHERE id=$1`,
		c.ID, c.Name, c.Slug, c.Description)
	if err != nil {
		return fmt.Errorf("update collection: %w", err)
	}
	if ct.RowsAffected() != 1 {
		return ErrNotFound
	}
	return nil
}

func (r *Repo) DeleteCollection(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "collections", id)
}

// ---- discounts ----

func (r *Repo) ListDiscounts(ctx context.Context) ([]Discount, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, code, percent_off, active, expires_at FROM discounts ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Discount
	for rows.Next() {
		var d Discount
		if err := rows.Scan(&d.ID, &d.Code, &d.PercentOff, &d.Active, &d.ExpiresAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *Repo) CreateDiscount(ctx context.Context, d Discount) (string, error) {
	id := uuid.NewString()
	_, err := r.DB.Exec(ctx, `INSERT INTO discounts(id, code, percent_off, active, expires_at)
	                          VALUES ($1,$2,$3,$4,$5)`, id, d.Code, d.PercentOff, d.Active, d.ExpiresAt)
	if err != nil {
		return "", fmt.Errorf("insert discount: %w", err)
	}
	return id, nil
}

func (r *Repo) UpdateDiscount(ctx context.Context, d Discount) error {
	ct, err := r.DB.Exec(ctx, `UPDATE discounts SET code=$2, percent_off=$3, active=$4, expires_at=$5 WHERE id=$1`,
		d.ID, d.Code, d.PercentOff, d.Active, d.ExpiresAt)
	if err != nil {
		return fmt.Errorf("update discount: %w", err)
	}
	if ct.RowsAffected() != 1 {
		return ErrNotFound
	}
	return nil
}

func (r *Repo) DeleteDiscount(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "discounts", id)
}

func (r *Repo) deleteByID(ctx context.Context, table, id string) error {
	ct, err := r.DB.Exec(ctx, `DELETE FROM `+table+` WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	if ct.RowsAffected() != 1 {
		return ErrNotFound
	}
	return nil
}
