package handlers

import (
	"context"

	"forensics/internal/ai"
	"forensics/internal/models"
	"forensics/internal/services"
	"forensics/internal/store"
)

type EntityStore interface {
	Create(ctx context.Context, tx store.Execer, id, alias string, username, email *string, riskLevel int, isMalicious bool) error
	GetByID(ctx context.Context, id string) (models.Entity, error)
	List(ctx context.Context, search string, limit, offset int) ([]models.Entity, error)
	Count(ctx context.Context, search string) (int, error)
}

type PostStore interface {
	ListByEntityIDs(ctx context.Context, entityIDs []string) ([]store.PostSummary, error)
}

type WalletStore interface {
	ListByEntityIDs(ctx context.Context, entityIDs []string) ([]store.WalletSummary, error)
}

type LinkStore interface {
	ListOutgoing(ctx context.Context, entityIDs []string) ([]store.LinkWithPeer, error)
	ListIncoming(ctx context.Context, entityIDs []string) ([]store.LinkWithPeer, error)
}

type TransactionStore interface {
	Create(ctx context.Context, tx store.Execer, input store.TransactionInput) error
	GetExpanded(ctx context.Context, id string) (map[string]any, error)
	List(ctx context.Context, filter store.TransactionFilter, limit, offset int) ([]map[string]any, error)
	Count(ctx context.Context, filter store.TransactionFilter) (int, error)
}

type ReportStore interface {
	List(ctx context.Context, format string, limit, offset int) ([]models.ForensicReport, error)
	Count(ctx context.Context, format string) (int, error)
}

type ExtractedEntityStore interface {
	Create(ctx context.Context, tx store.Execer, id, entityType, value string, confidence float64, surroundingText *string, sourceText string) error
}

type AnalystStore interface {
	Create(ctx context.Context, tx store.Execer, id, username, email, passwordHash string) error
	GetByEmail(ctx context.Context, email string) (map[string]any, error)
	GetByID(ctx context.Context, analystID string) (map[string]any, error)
}

type AuditStore interface {
	Log(ctx context.Context, tx store.Execer, actorID *string, action, entityType, entityID, data string) error
	List(ctx context.Context, limit, offset int) ([]map[string]any, error)
}

type ReportService interface {
	Generate(ctx context.Context, title, description, format string) (models.ForensicReport, error)
}

type SeedService interface {
	Reset(ctx context.Context) (services.SeedResult, error)
}

// Analyzer is the AI gateway; nil when no API key is configured.
type Analyzer interface {
	AnalyzeStylometry(ctx context.Context, texts []string) (ai.Result, error)
	ExtractEntities(ctx context.Context, text string) (ai.Result, error)
	AssessRisk(ctx context.Context, entity map[string]any, investigationContext string) (ai.Result, error)
}
