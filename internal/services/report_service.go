package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"forensics/internal/db"
	"forensics/internal/models"
	"forensics/internal/store"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"
)

type ReportService struct {
	txRunner         db.TxRunner
	entityStore      ReportEntityStore
	postStore        ReportPostStore
	walletStore      ReportWalletStore
	transactionStore ReportTransactionStore
	reportStore      ReportStore
}

type ReportEntityStore interface {
	ListAll(ctx context.Context) ([]models.Entity, error)
}

type ReportPostStore interface {
	ListByEntityIDs(ctx context.Context, entityIDs []string) ([]store.PostSummary, error)
}

type ReportWalletStore interface {
	ListByEntityIDs(ctx context.Context, entityIDs []string) ([]store.WalletSummary, error)
}

type ReportTransactionStore interface {
	ListAllForReport(ctx context.Context) ([]store.ReportTransaction, error)
}

type ReportStore interface {
	Create(ctx context.Context, tx store.Execer, id, title, description, content, format string) error
	GetByID(ctx context.Context, id string) (models.ForensicReport, error)
}

func NewReportService(txRunner db.TxRunner, entityStore ReportEntityStore, postStore ReportPostStore, walletStore ReportWalletStore, transactionStore ReportTransactionStore, reportStore ReportStore) *ReportService {
	return &ReportService{
		txRunner:         txRunner,
		entityStore:      entityStore,
		postStore:        postStore,
		walletStore:      walletStore,
		transactionStore: transactionStore,
		reportStore:      reportStore,
	}
}

type reportContent struct {
	GeneratedAt  time.Time               `json:"generatedAt"`
	Title        string                  `json:"title"`
	Description  string                  `json:"description"`
	Summary      reportSummary           `json:"summary"`
	Entities     []reportEntityRow       `json:"entities"`
	Transactions []reportTransactionRow  `json:"transactions"`
}

type reportSummary struct {
	TotalEntities          int `json:"totalEntities"`
	MaliciousEntities      int `json:"maliciousEntities"`
	TotalTransactions      int `json:"totalTransactions"`
	SuspiciousTransactions int `json:"suspiciousTransactions"`
}

type reportEntityRow struct {
	ID          string  `json:"id"`
	Alias       string  `json:"alias"`
	Username    *string `json:"username"`
	Email       *string `json:"email"`
	RiskLevel   int     `json:"riskLevel"`
	IsMalicious bool    `json:"isMalicious"`
	PostCount   int     `json:"postCount"`
	WalletCount int     `json:"walletCount"`
}

type reportTransactionRow struct {
	ID           string  `json:"id"`
	Hash         string  `json:"hash"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
	IsSuspicious bool    `json:"isSuspicious"`
	Timestamp    any     `json:"timestamp"`
	FromWallet   string  `json:"fromWallet"`
	ToWallet     string  `json:"toWallet"`
}

// Generate snapshots the current entities and transactions into an immutable
// JSON document and persists it as a new report. Any read or write failure
// aborts the whole operation; no partial report is stored.
func (s *ReportService) Generate(ctx context.Context, title, description, format string) (models.ForensicReport, error) {
	var entities []models.Entity
	var transactions []store.ReportTransaction

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		entities, err = s.entityStore.ListAll(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		transactions, err = s.transactionStore.ListAllForReport(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		return models.ForensicReport{}, fmt.Errorf("reading snapshot data: %w", err)
	}

	entityIDs := make([]string, 0, len(entities))
	for _, entity := range entities {
		entityIDs = append(entityIDs, entity.ID)
	}

	var posts []store.PostSummary
	var wallets []store.WalletSummary
	group, groupCtx = errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		posts, err = s.postStore.ListByEntityIDs(groupCtx, entityIDs)
		return err
	})
	group.Go(func() error {
		var err error
		wallets, err = s.walletStore.ListByEntityIDs(groupCtx, entityIDs)
		return err
	})
	if err := group.Wait(); err != nil {
		return models.ForensicReport{}, fmt.Errorf("reading snapshot data: %w", err)
	}

	postCounts := make(map[string]int, len(entities))
	for _, post := range posts {
		postCounts[post.AuthorID]++
	}
	walletCounts := make(map[string]int, len(entities))
	for _, wallet := range wallets {
		if wallet.EntityID != nil {
			walletCounts[*wallet.EntityID]++
		}
	}

	content := reportContent{
		GeneratedAt: time.Now().UTC(),
		Title:       title,
		Description: description,
	}
	content.Summary.TotalEntities = len(entities)
	content.Summary.TotalTransactions = len(transactions)
	content.Entities = make([]reportEntityRow, 0, len(entities))
	for _, entity := range entities {
		if entity.IsMalicious {
			content.Summary.MaliciousEntities++
		}
		content.Entities = append(content.Entities, reportEntityRow{
			ID:          entity.ID,
			Alias:       entity.Alias,
			Username:    entity.Username,
			Email:       entity.Email,
			RiskLevel:   entity.RiskLevel,
			IsMalicious: entity.IsMalicious,
			PostCount:   postCounts[entity.ID],
			WalletCount: walletCounts[entity.ID],
		})
	}
	content.Transactions = make([]reportTransactionRow, 0, len(transactions))
	for _, transaction := range transactions {
		if transaction.IsSuspicious {
			content.Summary.SuspiciousTransactions++
		}
		content.Transactions = append(content.Transactions, reportTransactionRow{
			ID:           transaction.ID,
			Hash:         transaction.Hash,
			Amount:       transaction.Amount,
			Currency:     transaction.Currency,
			IsSuspicious: transaction.IsSuspicious,
			Timestamp:    transaction.Timestamp,
			FromWallet:   transaction.FromAddress,
			ToWallet:     transaction.ToAddress,
		})
	}

	encoded, err := json.Marshal(content)
	if err != nil {
		return models.ForensicReport{}, fmt.Errorf("encoding report content: %w", err)
	}

	reportID := uuid.NewString()
	err = s.txRunner.WithTx(ctx, func(tx *sqlx.Tx) error {
		return s.reportStore.Create(ctx, tx, reportID, title, description, string(encoded), format)
	})
	if err != nil {
		return models.ForensicReport{}, fmt.Errorf("persisting report: %w", err)
	}
	return s.reportStore.GetByID(ctx, reportID)
}
