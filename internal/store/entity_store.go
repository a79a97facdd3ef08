package store

import (
	"context"

	"forensics/internal/models"
)

type EntityStore struct {
	db DB
}

func NewEntityStore(db DB) *EntityStore {
	return &EntityStore{db: db}
}

func (s *EntityStore) Create(ctx context.Context, tx Execer, id, alias string, username, email *string, riskLevel int, isMalicious bool) error {
	query := `
		INSERT INTO entities (id, alias, username, email, risk_level, is_malicious)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := tx.ExecContext(ctx, query, id, alias, username, email, riskLevel, isMalicious)
	return err
}

// List returns a page of entities, newest first. A non-empty search term is
// matched case-insensitively against alias, username and email.
func (s *EntityStore) List(ctx context.Context, search string, limit, offset int) ([]models.Entity, error) {
	var rows []models.Entity
	query := `
		SELECT id, alias, username, email, risk_level, is_malicious, created_at
		FROM entities
	`
	args := []any{}
	param := 1
	if search != "" {
		query += ` WHERE (alias ILIKE $1 OR username ILIKE $1 OR email ILIKE $1)`
		args = append(args, "%"+search+"%")
		param = 2
	}
	query += ` ORDER BY created_at DESC LIMIT $` + itoa(param) + ` OFFSET $` + itoa(param+1)
	args = append(args, limit, offset)
	err := s.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *EntityStore) Count(ctx context.Context, search string) (int, error) {
	var total int
	if search == "" {
		err := s.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM entities`)
		return total, err
	}
	err := s.db.GetContext(ctx, &total, `
		SELECT COUNT(*) FROM entities
		WHERE (alias ILIKE $1 OR username ILIKE $1 OR email ILIKE $1)
	`, "%"+search+"%")
	return total, err
}

func (s *EntityStore) GetByID(ctx context.Context, id string) (models.Entity, error) {
	var row models.Entity
	err := s.db.GetContext(ctx, &row, `
		SELECT id, alias, username, email, risk_level, is_malicious, created_at
		FROM entities
		WHERE id = $1
	`, id)
	if err != nil {
		return models.Entity{}, err
	}
	return row, nil
}

func (s *EntityStore) ListAll(ctx context.Context) ([]models.Entity, error) {
	var rows []models.Entity
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, alias, username, email, risk_level, is_malicious, created_at
		FROM entities
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *EntityStore) DeleteAll(ctx context.Context, tx Execer) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM entities`)
	return err
}
