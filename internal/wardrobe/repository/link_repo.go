package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/meshfit/meshfit-backend/internal/wardrobe/domain"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// LinkRepository persists compatibility links. Pairs are stored in canonical order so the
// (owner_id, garment_a_id, garment_b_id) unique constraint also rejects reversed duplicates.
type LinkRepository struct {
	db *sql.DB
}

func NewLinkRepository(db *sql.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

func (r *LinkRepository) Create(ctx context.Context, l *domain.Link) error {
	if l.GarmentAID == l.GarmentBID {
		return domain.ErrSelfLink
	}
	*l = l.Canonical()
	if l.ID == "" {
		l.ID = uuid.New().String()
	}

	query := `
		INSERT INTO links (id, owner_id, garment_a_id, garment_b_id, strength, context_tags, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		l.ID,
		l.OwnerID,
		l.GarmentAID,
		l.GarmentBID,
		l.Strength,
		pq.Array(nonNil(l.ContextTags)),
		l.Notes,
	).Scan(&l.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case pqUniqueViolation:
				return domain.ErrLinkExists
			case pqForeignKeyViolation:
				return domain.ErrUnknownGarment
			}
		}
		return fmt.Errorf("failed to create link: %w", err)
	}
	return nil
}

// List returns the owner's links, newest first.
func (r *LinkRepository) List(ctx context.Context, ownerID string) ([]domain.Link, error) {
	query := `
		SELECT id, owner_id, garment_a_id, garment_b_id, strength, context_tags, notes, created_at
		FROM links
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Link, 0, 64)
	for rows.Next() {
		var (
			l     domain.Link
			notes sql.NullString
		)
		if err := rows.Scan(
			&l.ID,
			&l.OwnerID,
			&l.GarmentAID,
			&l.GarmentBID,
			&l.Strength,
			pq.Array(&l.ContextTags),
			&notes,
			&l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		l.Notes = nullableString(notes)
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *LinkRepository) Delete(ctx context.Context, ownerID, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM links WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrLinkNotFound
	}
	return nil
}
