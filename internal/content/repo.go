package content

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

// ---- blog posts ----

func (r *Repo) ListPosts(ctx context.Context) ([]BlogPost, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, title, slug, body, published, created_at, updated_at
	                              FROM blog_posts ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []BlogPost
	for rows.Next() {
		var p BlogPost
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.Body, &p.Published, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) GetPost(ctx context.Context, id string) (BlogPost, error) {
	var p BlogPost
	err := r.DB.QueryRow(ctx, `SELECT id, title, slug, body, published, created_at, updated_at
	                           FROM blog_posts WHERE id=$1`, id).
		Scan(&p.ID, &p.Title, &p.Slug, &p.Body, &p.Published, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return BlogPost{}, ErrNotFound
	}
	return p, err
}

func (r *Repo) CreatePost(ctx context.Context, p BlogPost) (string, error) {
	id := uuid.NewString()
	_, err := r.DB.Exec(ctx, `INSERT INTO blog_posts(id, title, slug, body, published) VALUES ($1,$2,$3,$4,$5)`,
		id, p.Title, p.Slug, p.Body, p.Published)
	if err != nil {
		return "", fmt.Errorf("insert post: %w", err)
	}
	return id, nil
}

func (r *Repo) UpdatePost(ctx context.Context, p BlogPost) error {
	ct, err := r.DB.Exec(ctx, `UPDATE blog_posts SET title=$2, slug=$3, body=$4, published=$5, updated_at=now()
	                           WHERE id=$1`, p.ID, p.Title, p.Slug, p.Body, p.Published)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if ct.RowsAffected() != 1 {
		return ErrNotFound
	}
	return nil
}

func (r *Repo) DeletePost(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "blog_posts", id)
}

// ---- reviews ----

func (r *Repo) ListReviews(ctx context.Context) ([]Review, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, product_id, author, rating, body, approved, created_at
	                              FROM reviews ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Review
	for rows.Next() {
		var v Review
		if err := rows.Scan(&v.ID, &v.ProductID, &v.Author, &v.Rating, &v.Body, &v.Approved, &v.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *Repo) SetReviewApproved(ctx context.Context, id string, approved bool) error {
	ct, err := r.DB.Exec(ctx, `UPDATE reviews SET approved=$2 WHERE id=$1`, id, approved)
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	if ct.RowsAffected() != 1 {
		return ErrNotFound
	}
	return nil
}

func (r *Repo) DeleteReview(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "reviews", id)
}

// ---- claims ----

func (r *Repo) ListClaims(ctx context.Context) ([]Claim, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, order_number, customer_name, email, reason, status, created_at
	                              FROM claims ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Claim
	for rows.Next() {
		var c Claim
		if err := rows.Scan(&c.ID, &c.OrderNumber, &c.CustomerName, &c.Email, &c.Reason, &c.Status, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repo) SetClaimStatus(ctx context.Context, id, status string) error {
	ct, err := r.DB.Exec(ctx, `UPDATE claims SET status=$2 WHERE id=$1`, id, status)
	if err != nil {
		return fmt.Errorf("update claim: %w", err)
	}
	if ct.RowsAffected() != 1 {
		return ErrNotFound
	}
	return nil
}

// ---- subscriptions ----

func (r *Repo) ListSubscriptions(ctx context.Context) ([]Subscription, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, email, active, created_at FROM subscriptions ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Subscription
	for rows.Next() {
		var s Subscription
		if err := rows.Scan(&s.ID, &s.Email, &s.Active, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repo) DeleteSubscription(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "subscriptions", id)
}

// ---- profiles ----

func (r *Repo) ListProfiles(ctx context.Context) ([]Profile, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, email, full_name, phone, role, created_at
	                              FROM profiles ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Profile
	for rows.Next() {
		var p Profile
		if err := rows.Scan(&p.ID, &p.Email, &p.FullName, &p.Phone, &p.Role, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) SetProfileRole(ctx context.Context, id, role string) error {
	ct, err := r.DB.Exec(ctx, `UPDATE profiles SET role=$2 WHERE id=$1`, id, role)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if ct.RowsAffected() != 1 {
		return ErrNotFound
	}
	return nil
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
