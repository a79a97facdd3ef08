package store

import "context"

type TransactionStore struct {
	db DB
}

type TransactionInput struct {
	ID           string
	Hash         string
	Amount       float64
	Currency     string
	IsSuspicious bool
	FromWalletID string
	ToWalletID   string
}

type TransactionFilter struct {
	Suspicious bool
	Currency   string
}

// transactionRow flattens a transaction joined with both wallets and their
// owning entities (fw/tw = wallets, fe/te = entities).
type transactionRow struct {
	ID             string   `db:"id"`
	Hash           string   `db:"hash"`
	Amount         float64  `db:"amount"`
	Currency       string   `db:"currency"`
	Timestamp      any      `db:"timestamp"`
	IsSuspicious   bool     `db:"is_suspicious"`
	FromWalletID   string   `db:"from_wallet_id"`
	ToWalletID     string   `db:"to_wallet_id"`
	FromAddress    string   `db:"from_address"`
	FromType       string   `db:"from_type"`
	FromBalance    float64  `db:"from_balance"`
	FromEntityID   *string  `db:"from_entity_id"`
	FromAlias      *string  `db:"from_alias"`
	FromUsername   *string  `db:"from_username"`
	ToAddress      string   `db:"to_address"`
	ToType         string   `db:"to_type"`
	ToBalance      float64  `db:"to_balance"`
	ToEntityID     *string  `db:"to_entity_id"`
	ToAlias        *string  `db:"to_alias"`
	ToUsername     *string  `db:"to_username"`
}

type ReportTransaction struct {
	ID           string  `db:"id"`
	Hash         string  `db:"hash"`
	Amount       float64 `db:"amount"`
	Currency     string  `db:"currency"`
	IsSuspicious bool    `db:"is_suspicious"`
	Timestamp    any     `db:"timestamp"`
	FromAddress  string  `db:"from_address"`
	ToAddress    string  `db:"to_address"`
}

const expandedTransactionSelect = `
	SELECT t.id, t.hash, t.amount, t.currency, t.timestamp, t.is_suspicious,
	       t.from_wallet_id, t.to_wallet_id,
	       fw.address AS from_address, fw.type AS from_type, fw.balance AS from_balance,
	       fe.id AS from_entity_id, fe.alias AS from_alias, fe.username AS from_username,
	       tw.address AS to_address, tw.type AS to_type, tw.balance AS to_balance,
	       te.id AS to_entity_id, te.alias AS to_alias, te.username AS to_username
	FROM transactions t
	JOIN wallets fw ON fw.id = t.from_wallet_id
	JOIN wallets tw ON tw.id = t.to_wallet_id
	LEFT JOIN entities fe ON fe.id = fw.entity_id
	LEFT JOIN entities te ON te.id = tw.entity_id
`

func NewTransactionStore(db DB) *TransactionStore {
	return &TransactionStore{db: db}
}

func (s *TransactionStore) Create(ctx context.Context, tx Execer, input TransactionInput) error {
	query := `
		INSERT INTO transactions (id, hash, amount, currency, is_suspicious, from_wallet_id, to_wallet_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := tx.ExecContext(ctx, query,
		input.ID, input.Hash, input.Amount, input.Currency, input.IsSuspicious,
		input.FromWalletID, input.ToWalletID,
	)
	return err
}

// List returns a page of expanded transactions, newest timestamp first.
func (s *TransactionStore) List(ctx context.Context, filter TransactionFilter, limit, offset int) ([]map[string]any, error) {
	var rows []transactionRow
	query := expandedTransactionSelect
	where, args := transactionFilterClauses(filter)
	query += where
	param := len(args) + 1
	query += " ORDER BY t.timestamp DESC LIMIT $" + itoa(param) + " OFFSET $" + itoa(param+1)
	args = append(args, limit, offset)
	err := s.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}
	return transactionRowsToMaps(rows), nil
}

func (s *TransactionStore) Count(ctx context.Context, filter TransactionFilter) (int, error) {
	var total int
	query := `SELECT COUNT(*) FROM transactions t`
	where, args := transactionFilterClauses(filter)
	query += where
	err := s.db.GetContext(ctx, &total, query, args...)
	return total, err
}

func (s *TransactionStore) GetExpanded(ctx context.Context, id string) (map[string]any, error) {
	var row transactionRow
	err := s.db.GetContext(ctx, &row, expandedTransactionSelect+` WHERE t.id = $1`, id)
	if err != nil {
		return nil, err
	}
	return transactionRowToMap(row), nil
}

// ListAllForReport returns every transaction with just the projection a
// report snapshot needs.
func (s *TransactionStore) ListAllForReport(ctx context.Context) ([]ReportTransaction, error) {
	var rows []ReportTransaction
	err := s.db.SelectContext(ctx, &rows, `
		SELECT t.id, t.hash, t.amount, t.currency, t.is_suspicious, t.timestamp,
		       fw.address AS from_address, tw.address AS to_address
		FROM transactions t
		JOIN wallets fw ON fw.id = t.from_wallet_id
		JOIN wallets tw ON tw.id = t.to_wallet_id
		ORDER BY t.timestamp DESC
	`)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *TransactionStore) DeleteAll(ctx context.Context, tx Execer) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM transactions`)
	return err
}

func transactionFilterClauses(filter TransactionFilter) (string, []any) {
	where := ""
	args := []any{}
	if filter.Suspicious {
		where += " WHERE t.is_suspicious = TRUE"
	}
	if filter.Currency != "" {
		if where == "" {
			where += " WHERE"
		} else {
			where += " AND"
		}
		args = append(args, filter.Currency)
		where += " t.currency = $" + itoa(len(args))
	}
	return where, args
}

func transactionRowsToMaps(rows []transactionRow) []map[string]any {
	maps := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		maps = append(maps, transactionRowToMap(row))
	}
	return maps
}

func transactionRowToMap(row transactionRow) map[string]any {
	fromWallet := map[string]any{
		"id":      row.FromWalletID,
		"address": row.FromAddress,
		"type":    row.FromType,
		"balance": row.FromBalance,
		"entity":  walletEntityMap(row.FromEntityID, row.FromAlias, row.FromUsername),
	}
	toWallet := map[string]any{
		"id":      row.ToWalletID,
		"address": row.ToAddress,
		"type":    row.ToType,
		"balance": row.ToBalance,
		"entity":  walletEntityMap(row.ToEntityID, row.ToAlias, row.ToUsername),
	}
	return map[string]any{
		"id":           row.ID,
		"hash":         row.Hash,
		"amount":       row.Amount,
		"currency":     row.Currency,
		"timestamp":    row.Timestamp,
		"isSuspicious": row.IsSuspicious,
		"fromWalletId": row.FromWalletID,
		"toWalletId":   row.ToWalletID,
		"fromWallet":   fromWallet,
		"toWallet":     toWallet,
	}
}

func walletEntityMap(id, alias, username *string) any {
	if id == nil {
		return nil
	}
	return map[string]any{
		"id":       *id,
		"alias":    derefStringPtr(alias),
		"username": derefStringPtr(username),
	}
}
