package store

import (
	"context"

	"github.com/lib/pq"
)

type PostStore struct {
	db DB
}

type PostSummary struct {
	ID        string  `db:"id"`
	Title     string  `db:"title"`
	ForumName *string `db:"forum_name"`
	Timestamp any     `db:"timestamp"`
	AuthorID  string  `db:"author_id"`
}

func NewPostStore(db DB) *PostStore {
	return &PostStore{db: db}
}

func (s *PostStore) Create(ctx context.Context, tx Execer, id, title, content string, forumName, onionURL *string, authorID string) error {
	query := `
		INSERT INTO posts (id, title, content, forum_name, onion_url, author_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := tx.ExecContext(ctx, query, id, title, content, forumName, onionURL, authorID)
	return err
}

// ListByEntityIDs returns the display projection of every post authored by
// one of the given entities, used to expand an entity page in one query.
func (s *PostStore) ListByEntityIDs(ctx context.Context, entityIDs []string) ([]PostSummary, error) {
	if len(entityIDs) == 0 {
		return nil, nil
	}
	var rows []PostSummary
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, title, forum_name, timestamp, author_id
		FROM posts
		WHERE author_id = ANY($1)
		ORDER BY timestamp DESC
	`, pq.Array(entityIDs))
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *PostStore) DeleteAll(ctx context.Context, tx Execer) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM posts`)
	return err
}
