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

const garmentColumns = `id, owner_id, name, category, main_color, secondary_colors, formality, style_tags,
       fit, warmth, pattern, fabric, season_tags, notes, image_url, created_at, updated_at`

// GarmentRepository persists garments in PostgreSQL, scoped by owner.
type GarmentRepository struct {
	db *sql.DB
}

func NewGarmentRepository(db *sql.DB) *GarmentRepository {
	return &GarmentRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGarment(row rowScanner) (*domain.Garment, error) {
	var (
		g                 domain.Garment
		fit, notes, image sql.NullString
	)
	err := row.Scan(
		&g.ID,
		&g.OwnerID,
		&g.Name,
		&g.Category,
		&g.MainColor,
		pq.Array(&g.SecondaryColors),
		&g.Formality,
		pq.Array(&g.StyleTags),
		&fit,
		&g.Warmth,
		&g.Pattern,
		&g.Fabric,
		pq.Array(&g.SeasonTags),
		&notes,
		&image,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if fit.Valid {
		f := domain.Fit(fit.String)
		g.Fit = &f
	}
	g.Notes = nullableString(notes)
	g.ImageURL = nullableString(image)
	return &g, nil
}

// Create inserts g, assigning an id when it has none.
func (r *GarmentRepository) Create(ctx context.Context, g *domain.Garment) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}

	query := `
		INSERT INTO garments (
			id, owner_id, name, category, main_color, secondary_colors, formality, style_tags,
			fit, warmth, pattern, fabric, season_tags, notes, image_url
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		g.ID,
		g.OwnerID,
		g.Name,
		g.Category,
		g.MainColor,
		pq.Array(nonNil(g.SecondaryColors)),
		g.Formality,
		pq.Array(nonNil(g.StyleTags)),
		fitValue(g.Fit),
		g.Warmth,
		g.Pattern,
		g.Fabric,
		pq.Array(nonNil(g.SeasonTags)),
		g.Notes,
		g.ImageURL,
	).Scan(&g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create garment: %w", err)
	}
	return nil
}

func (r *GarmentRepository) Get(ctx context.Context, ownerID, id string) (*domain.Garment, error) {
	query := `SELECT ` + garmentColumns + ` FROM garments WHERE owner_id = $1 AND id = $2`

	g, err := scanGarment(r.db.QueryRowContext(ctx, query, ownerID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrGarmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get garment: %w", err)
	}
	return g, nil
}

// List returns the owner's garments, newest first.
func (r *GarmentRepository) List(ctx context.Context, ownerID string) ([]domain.Garment, error) {
	query := `SELECT ` + garmentColumns + ` FROM garments WHERE owner_id = $1 ORDER BY created_at DESC`
	return r.query(ctx, query, ownerID)
}

// ListByIDs returns the subset of ids that belong to the owner.
func (r *GarmentRepository) ListByIDs(ctx context.Context, ownerID string, ids []string) ([]domain.Garment, error) {
	query := `SELECT ` + garmentColumns + ` FROM garments WHERE owner_id = $1 AND id = ANY($2)`
	return r.query(ctx, query, ownerID, pq.Array(ids))
}

func (r *GarmentRepository) query(ctx context.Context, query string, args ...any) ([]domain.Garment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list garments: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Garment, 0, 32)
	for rows.Next() {
		g, err := scanGarment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan garment: %w", err)
		}
		out = append(out, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites every mutable field of g.
func (r *GarmentRepository) Update(ctx context.Context, g *domain.Garment) error {
	query := `
		UPDATE garments
		SET name = $3, category = $4, main_color = $5, secondary_colors = $6, formality = $7,
		    style_tags = $8, fit = $9, warmth = $10, pattern = $11, fabric = $12,
		    season_tags = $13, notes = $14, image_url = $15, updated_at = NOW()
		WHERE owner_id = $1 AND id = $2
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		g.OwnerID,
		g.ID,
		g.Name,
		g.Category,
		g.MainColor,
		pq.Array(nonNil(g.SecondaryColors)),
		g.Formality,
		pq.Array(nonNil(g.StyleTags)),
		fitValue(g.Fit),
		g.Warmth,
		g.Pattern,
		g.Fabric,
		pq.Array(nonNil(g.SeasonTags)),
		g.Notes,
		g.ImageURL,
	).Scan(&g.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrGarmentNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update garment: %w", err)
	}
	return nil
}

// Delete removes the garment and every link touching it.
func (r *GarmentRepository) Delete(ctx context.Context, ownerID, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM links WHERE owner_id = $1 AND (garment_a_id = $2 OR garment_b_id = $2)`,
		ownerID, id,
	); err != nil {
		return fmt.Errorf("failed to delete garment links: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM garments WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return fmt.Errorf("failed to delete garment: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrGarmentNotFound
	}

	return tx.Commit()
}

func fitValue(f *domain.Fit) any {
	if f == nil {
		return nil
	}
	return string(*f)
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
