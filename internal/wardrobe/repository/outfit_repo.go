package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/meshfit/meshfit-backend/internal/wardrobe/domain"
)

const outfitColumns = `id, owner_id, garment_ids, occasion, description, model, stale, created_at`

// OutfitRepository persists saved outfits. Garment ids are stored sorted.
type OutfitRepository struct {
	db *sql.DB
}

func NewOutfitRepository(db *sql.DB) *OutfitRepository {
	return &OutfitRepository{db: db}
}

func (r *OutfitRepository) Create(ctx context.Context, o *domain.Outfit) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	o.GarmentIDs = domain.SortedIDs(o.GarmentIDs)

	query := `
		INSERT INTO outfits (id, owner_id, garment_ids, occasion, description, model)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING stale, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		o.ID,
		o.OwnerID,
		pq.Array(o.GarmentIDs),
		o.Occasion,
		o.Description,
		o.Model,
	).Scan(&o.Stale, &o.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create outfit: %w", err)
	}
	return nil
}

// List returns the owner's outfits, newest first.
func (r *OutfitRepository) List(ctx context.Context, ownerID string) ([]domain.Outfit, error) {
	query := `SELECT ` + outfitColumns + ` FROM outfits WHERE owner_id = $1 ORDER BY created_at DESC`
	return r.query(ctx, query, ownerID)
}

// ListAll returns every outfit ordered by owner, for the audit.
func (r *OutfitRepository) ListAll(ctx context.Context) ([]domain.Outfit, error) {
	query := `SELECT ` + outfitColumns + ` FROM outfits ORDER BY owner_id, created_at`
	return r.query(ctx, query)
}

func (r *OutfitRepository) query(ctx context.Context, query string, args ...any) ([]domain.Outfit, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list outfits: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Outfit, 0, 16)
	for rows.Next() {
		var (
			o     domain.Outfit
			model sql.NullString
		)
		if err := rows.Scan(
			&o.ID,
			&o.OwnerID,
			pq.Array(&o.GarmentIDs),
			&o.Occasion,
			&o.Description,
			&model,
			&o.Stale,
			&o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan outfit: %w", err)
		}
		o.Model = nullableString(model)
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *OutfitRepository) Delete(ctx context.Context, ownerID, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM outfits WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return fmt.Errorf("failed to delete outfit: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrOutfitNotFound
	}
	return nil
}

func (r *OutfitRepository) MarkStale(ctx context.Context, id string, stale bool) error {
	result, err := r.db.ExecContext(ctx, `UPDATE outfits SET stale = $2 WHERE id = $1`, id, stale)
	if err != nil {
		return fmt.Errorf("failed to mark outfit: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrOutfitNotFound
	}
	return nil
}
