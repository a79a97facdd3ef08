package handlers

import (
	"context"
	"time"

	"forensics/internal/ai"
	"forensics/internal/config"
	"forensics/internal/models"
	"forensics/internal/services"
	"forensics/internal/store"
	"forensics/internal/websocket"

	"github.com/jmoiron/sqlx"
)

type fakeTxRunner struct {
	calls int
	err   error
}

func (r *fakeTxRunner) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	r.calls++
	if r.err != nil {
		return r.err
	}
	return fn(nil)
}

type stubEntityStore struct {
	createFn  func(ctx context.Context, tx store.Execer, id, alias string, username, email *string, riskLevel int, isMalicious bool) error
	getByIDFn func(ctx context.Context, id string) (models.Entity, error)
	listFn    func(ctx context.Context, search string, limit, offset int) ([]models.Entity, error)
	countFn   func(ctx context.Context, search string) (int, error)
}

func (s stubEntityStore) Create(ctx context.Context, tx store.Execer, id, alias string, username, email *string, riskLevel int, isMalicious bool) error {
	return s.createFn(ctx, tx, id, alias, username, email, riskLevel, isMalicious)
}

func (s stubEntityStore) GetByID(ctx context.Context, id string) (models.Entity, error) {
	return s.getByIDFn(ctx, id)
}

func (s stubEntityStore) List(ctx context.Context, search string, limit, offset int) ([]models.Entity, error) {
	return s.listFn(ctx, search, limit, offset)
}

func (s stubEntityStore) Count(ctx context.Context, search string) (int, error) {
	return s.countFn(ctx, search)
}

type stubPostStore struct {
	listByEntityIDsFn func(ctx context.Context, entityIDs []string) ([]store.PostSummary, error)
}

func (s stubPostStore) ListByEntityIDs(ctx context.Context, entityIDs []string) ([]store.PostSummary, error) {
	if s.listByEntityIDsFn == nil {
		return nil, nil
	}
	return s.listByEntityIDsFn(ctx, entityIDs)
}

type stubWalletStore struct {
	listByEntityIDsFn func(ctx context.Context, entityIDs []string) ([]store.WalletSummary, error)
}

func (s stubWalletStore) ListByEntityIDs(ctx context.Context, entityIDs []string) ([]store.WalletSummary, error) {
	if s.listByEntityIDsFn == nil {
		return nil, nil
	}
	return s.listByEntityIDsFn(ctx, entityIDs)
}

type stubLinkStore struct {
	listOutgoingFn func(ctx context.Context, entityIDs []string) ([]store.LinkWithPeer, error)
	listIncomingFn func(ctx context.Context, entityIDs []string) ([]store.LinkWithPeer, error)
}

func (s stubLinkStore) ListOutgoing(ctx context.Context, entityIDs []string) ([]store.LinkWithPeer, error) {
	if s.listOutgoingFn == nil {
		return nil, nil
	}
	return s.listOutgoingFn(ctx, entityIDs)
}

func (s stubLinkStore) ListIncoming(ctx context.Context, entityIDs []string) ([]store.LinkWithPeer, error) {
	if s.listIncomingFn == nil {
		return nil, nil
	}
	return s.listIncomingFn(ctx, entityIDs)
}

type stubTransactionStore struct {
	createFn      func(ctx context.Context, tx store.Execer, input store.TransactionInput) error
	getExpandedFn func(ctx context.Context, id string) (map[string]any, error)
	listFn        func(ctx context.Context, filter store.TransactionFilter, limit, offset int) ([]map[string]any, error)
	countFn       func(ctx context.Context, filter store.TransactionFilter) (int, error)
}

func (s stubTransactionStore) Create(ctx context.Context, tx store.Execer, input store.TransactionInput) error {
	return s.createFn(ctx, tx, input)
}

func (s stubTransactionStore) GetExpanded(ctx context.Context, id string) (map[string]any, error) {
	return s.getExpandedFn(ctx, id)
}

func (s stubTransactionStore) List(ctx context.Context, filter store.TransactionFilter, limit, offset int) ([]map[string]any, error) {
	return s.listFn(ctx, filter, limit, offset)
}

func (s stubTransactionStore) Count(ctx context.Context, filter store.TransactionFilter) (int, error) {
	return s.countFn(ctx, filter)
}

type stubReportStoreHandler struct {
	listFn  func(ctx context.Context, format string, limit, offset int) ([]models.ForensicReport, error)
	countFn func(ctx context.Context, format string) (int, error)
}

func (s stubReportStoreHandler) List(ctx context.Context, format string, limit, offset int) ([]models.ForensicReport, error) {
	return s.listFn(ctx, format, limit, offset)
}

func (s stubReportStoreHandler) Count(ctx context.Context, format string) (int, error) {
	return s.countFn(ctx, format)
}

type stubExtractedStore struct {
	createFn func(ctx context.Context, tx store.Execer, id, entityType, value string, confidence float64, surroundingText *string, sourceText string) error
}

func (s stubExtractedStore) Create(ctx context.Context, tx store.Execer, id, entityType, value string, confidence float64, surroundingText *string, sourceText string) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, tx, id, entityType, value, confidence, surroundingText, sourceText)
}

type stubAnalystStore struct {
	createFn     func(ctx context.Context, tx store.Execer, id, username, email, passwordHash string) error
	getByEmailFn func(ctx context.Context, email string) (map[string]any, error)
	getByIDFn    func(ctx context.Context, analystID string) (map[string]any, error)
}

func (s stubAnalystStore) Create(ctx context.Context, tx store.Execer, id, username, email, passwordHash string) error {
	return s.createFn(ctx, tx, id, username, email, passwordHash)
}

func (s stubAnalystStore) GetByEmail(ctx context.Context, email string) (map[string]any, error) {
	return s.getByEmailFn(ctx, email)
}

func (s stubAnalystStore) GetByID(ctx context.Context, analystID string) (map[string]any, error) {
	return s.getByIDFn(ctx, analystID)
}

type auditEntry struct {
	action     string
	entityType string
	entityID   string
	data       string
}

type stubAuditStore struct {
	entries *[]auditEntry
	listFn  func(ctx context.Context, limit, offset int) ([]map[string]any, error)
}

func (s stubAuditStore) Log(_ context.Context, _ store.Execer, _ *string, action, entityType, entityID, data string) error {
	if s.entries != nil {
		*s.entries = append(*s.entries, auditEntry{action: action, entityType: entityType, entityID: entityID, data: data})
	}
	return nil
}

func (s stubAuditStore) List(ctx context.Context, limit, offset int) ([]map[string]any, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, limit, offset)
}

type stubReportService struct {
	generateFn func(ctx context.Context, title, description, format string) (models.ForensicReport, error)
}

func (s stubReportService) Generate(ctx context.Context, title, description, format string) (models.ForensicReport, error) {
	return s.generateFn(ctx, title, description, format)
}

type stubSeedService struct {
	resetFn func(ctx context.Context) (services.SeedResult, error)
}

func (s stubSeedService) Reset(ctx context.Context) (services.SeedResult, error) {
	return s.resetFn(ctx)
}

type stubAnalyzer struct {
	stylometryFn func(ctx context.Context, texts []string) (ai.Result, error)
	extractFn    func(ctx context.Context, text string) (ai.Result, error)
	riskFn       func(ctx context.Context, entity map[string]any, investigationContext string) (ai.Result, error)
}

func (s stubAnalyzer) AnalyzeStylometry(ctx context.Context, texts []string) (ai.Result, error) {
	return s.stylometryFn(ctx, texts)
}

func (s stubAnalyzer) ExtractEntities(ctx context.Context, text string) (ai.Result, error) {
	return s.extractFn(ctx, text)
}

func (s stubAnalyzer) AssessRisk(ctx context.Context, entity map[string]any, investigationContext string) (ai.Result, error) {
	return s.riskFn(ctx, entity, investigationContext)
}

func testConfig() config.Config {
	return config.Config{
		AppEnv:         "test",
		JWTSecret:      "test-secret",
		TokenTTL:       time.Hour,
		AllowedOrigins: "*",
	}
}

// testHandlerDeps bundles everything New needs so individual tests only set
// the stubs they care about.
type testHandlerDeps struct {
	txRunner      *fakeTxRunner
	entities      stubEntityStore
	posts         stubPostStore
	wallets       stubWalletStore
	links         stubLinkStore
	transactions  stubTransactionStore
	reports       stubReportStoreHandler
	extracted     stubExtractedStore
	analysts      stubAnalystStore
	audit         stubAuditStore
	reportService ReportService
	seedService   SeedService
	analyzer      Analyzer
}

func newTestHandler(deps testHandlerDeps) *Handler {
	if deps.txRunner == nil {
		deps.txRunner = &fakeTxRunner{}
	}
	return New(
		deps.txRunner,
		testConfig(),
		deps.entities,
		deps.posts,
		deps.wallets,
		deps.links,
		deps.transactions,
		deps.reports,
		deps.extracted,
		deps.analysts,
		deps.audit,
		deps.reportService,
		deps.seedService,
		deps.analyzer,
		websocket.NewHub(),
	)
}

func stringPtr(value string) *string {
	return &value
}
