package store

import (
	"context"

	"github.com/lib/pq"
)

type WalletStore struct {
	db DB
}

type WalletSummary struct {
	ID       string  `db:"id"`
	Address  string  `db:"address"`
	Type     string  `db:"type"`
	Balance  float64 `db:"balance"`
	EntityID *string `db:"entity_id"`
}

func NewWalletStore(db DB) *WalletStore {
	return &WalletStore{db: db}
}

func (s *WalletStore) Create(ctx context.Context, tx Execer, id, address, walletType string, balance float64, entityID *string) error {
	query := `
		INSERT INTO wallets (id, address, type, balance, entity_id)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := tx.ExecContext(ctx, query, id, address, walletType, balance, entityID)
	return err
}

func (s *WalletStore) ListByEntityIDs(ctx context.Context, entityIDs []string) ([]WalletSummary, error) {
	if len(entityIDs) == 0 {
		return nil, nil
	}
	var rows []WalletSummary
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, address, type, balance, entity_id
		FROM wallets
		WHERE entity_id = ANY($1)
		ORDER BY address
	`, pq.Array(entityIDs))
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *WalletStore) DeleteAll(ctx context.Context, tx Execer) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM wallets`)
	return err
}
