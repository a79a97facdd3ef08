package store

import (
	"context"

	"forensics/internal/models"
)

type ReportStore struct {
	db DB
}

func NewReportStore(db DB) *ReportStore {
	return &ReportStore{db: db}
}

func (s *ReportStore) Create(ctx context.Context, tx Execer, id, title, description, content, format string) error {
	query := `
		INSERT INTO forensic_reports (id, title, description, content, format)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := tx.ExecContext(ctx, query, id, title, description, content, format)
	return err
}

func (s *ReportStore) GetByID(ctx context.Context, id string) (models.ForensicReport, error) {
	var row models.ForensicReport
	err := s.db.GetContext(ctx, &row, `
		SELECT id, title, description, content, format, created_at
		FROM forensic_reports
		WHERE id = $1
	`, id)
	if err != nil {
		return models.ForensicReport{}, err
	}
	return row, nil
}

func (s *ReportStore) List(ctx context.Context, format string, limit, offset int) ([]models.ForensicReport, error) {
	var rows []models.ForensicReport
	query := `
		SELECT id, title, description, content, format, created_at
		FROM forensic_reports
	`
	args := []any{}
	param := 1
	if format != "" {
		query += ` WHERE format = $1`
		args = append(args, format)
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

func (s *ReportStore) Count(ctx context.Context, format string) (int, error) {
	var total int
	if format == "" {
		err := s.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM forensic_reports`)
		return total, err
	}
	err := s.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM forensic_reports WHERE format = $1`, format)
	return total, err
}
