package store

import "context"

type ExtractedEntityStore struct {
	db DB
}

func NewExtractedEntityStore(db DB) *ExtractedEntityStore {
	return &ExtractedEntityStore{db: db}
}

func (s *ExtractedEntityStore) Create(ctx context.Context, tx Execer, id, entityType, value string, confidence float64, surroundingText *string, sourceText string) error {
	query := `
		INSERT INTO extracted_entities (id, type, value, confidence, context, source_text)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := tx.ExecContext(ctx, query, id, entityType, value, confidence, surroundingText, sourceText)
	return err
}

func (s *ExtractedEntityStore) DeleteAll(ctx context.Context, tx Execer) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM extracted_entities`)
	return err
}
