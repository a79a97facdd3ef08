package store

import "context"

type AnalystStore struct {
	db DB
}

func NewAnalystStore(db DB) *AnalystStore {
	return &AnalystStore{db: db}
}

type analystRow struct {
	ID           string `db:"id"`
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	CreatedAt    any    `db:"created_at"`
}

func (s *AnalystStore) Create(ctx context.Context, tx Execer, id, username, email, passwordHash string) error {
	query := `
		INSERT INTO analysts (id, username, email, password_hash)
		VALUES ($1, $2, $3, $4)
	`
	_, err := tx.ExecContext(ctx, query, id, username, email, passwordHash)
	return err
}

func (s *AnalystStore) GetByEmail(ctx context.Context, email string) (map[string]any, error) {
	var row analystRow
	err := s.db.GetContext(ctx, &row, `SELECT id, username, email, password_hash, created_at FROM analysts WHERE email = $1`, email)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"id":            row.ID,
		"username":      row.Username,
		"email":         row.Email,
		"password_hash": row.PasswordHash,
		"created_at":    row.CreatedAt,
	}, nil
}

func (s *AnalystStore) GetByID(ctx context.Context, analystID string) (map[string]any, error) {
	var row analystRow
	err := s.db.GetContext(ctx, &row, `SELECT id, username, email, created_at FROM analysts WHERE id = $1`, analystID)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"id":         row.ID,
		"username":   row.Username,
		"email":      row.Email,
		"created_at": row.CreatedAt,
	}, nil
}
