package handlers

import (
	"net/http"

	"forensics/internal/config"
	"forensics/internal/db"
	"forensics/internal/middleware"
	"forensics/internal/websocket"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Handler struct {
	txRunner      db.TxRunner
	cfg           config.Config
	entities      EntityStore
	posts         PostStore
	wallets       WalletStore
	links         LinkStore
	transactions  TransactionStore
	reports       ReportStore
	extracted     ExtractedEntityStore
	analysts      AnalystStore
	audit         AuditStore
	reportService ReportService
	seedService   SeedService
	analyzer      Analyzer
	hub           *websocket.Hub
}

func New(txRunner db.TxRunner, cfg config.Config, entities EntityStore, posts PostStore, wallets WalletStore, links LinkStore, transactions TransactionStore, reports ReportStore, extracted ExtractedEntityStore, analysts AnalystStore, audit AuditStore, reportService ReportService, seedService SeedService, analyzer Analyzer, hub *websocket.Hub) *Handler {
	return &Handler{
		txRunner:      txRunner,
		cfg:           cfg,
		entities:      entities,
		posts:         posts,
		wallets:       wallets,
		links:         links,
		transactions:  transactions,
		reports:       reports,
		extracted:     extracted,
		analysts:      analysts,
		audit:         audit,
		reportService: reportService,
		seedService:   seedService,
		analyzer:      analyzer,
		hub:           hub,
	}
}

func (h *Handler) Routes() http.Handler {
	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{h.cfg.AllowedOrigins},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Route("/api", func(r chi.Router) {
		r.Get("/entities", h.ListEntities)
		r.Post("/entities", h.CreateEntity)
		r.Get("/transactions", h.ListTransactions)
		r.Post("/transactions", h.CreateTransaction)
		r.Get("/reports", h.ListReports)
		r.Post("/reports", h.CreateReport)
		r.Post("/sample-data", h.LoadSampleData)
		r.Post("/ai-analysis", h.AIAnalysis)
	})

	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.With(middleware.Auth(h.cfg.JWTSecret)).Get("/me", h.Me)
	})

	router.With(middleware.Auth(h.cfg.JWTSecret)).Get("/admin/audit", h.ListAuditLogs)

	router.Get("/ws/alerts", h.WSAlerts)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return router
}

func (h *Handler) WSAlerts(w http.ResponseWriter, r *http.Request) {
	websocket.ServeWS(w, r, h.hub)
}
