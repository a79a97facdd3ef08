package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"forensics/internal/models"
	"forensics/internal/validator"

	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"
)

func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := parsePageLimit(r)
	format := r.URL.Query().Get("format")

	var reports []models.ForensicReport
	var total int
	group, ctx := errgroup.WithContext(r.Context())
	group.Go(func() error {
		var err error
		reports, err = h.reports.List(ctx, format, limit, offset)
		return err
	})
	group.Go(func() error {
		var err error
		total, err = h.reports.Count(ctx, format)
		return err
	})
	if err := group.Wait(); err != nil {
		log.Printf("listing reports: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch reports")
		return
	}
	if reports == nil {
		reports = []models.ForensicReport{}
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"reports":    reports,
		"pagination": newPagination(page, limit, total),
	})
}

type createReportRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Format      string `json:"format"`
}

func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	var req createReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Title == "" || req.Description == "" || req.Format == "" {
		respondError(w, http.StatusBadRequest, "Title, description, and format are required")
		return
	}
	if err := validator.ValidateReportFormat(req.Format); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := h.reportService.Generate(r.Context(), req.Title, req.Description, req.Format)
	if err != nil {
		log.Printf("generating report: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create report")
		return
	}

	if err := h.txRunner.WithTx(r.Context(), func(tx *sqlx.Tx) error {
		data, _ := json.Marshal(map[string]string{"title": req.Title, "format": req.Format})
		return h.audit.Log(r.Context(), tx, actorID(r), "create", "report", report.ID, string(data))
	}); err != nil {
		log.Printf("auditing report creation: %v", err)
	}

	respondJSON(w, http.StatusCreated, report)
}
