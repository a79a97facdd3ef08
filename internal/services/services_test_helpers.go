package services

import (
	"context"

	"forensics/internal/models"
	"forensics/internal/store"

	"github.com/jmoiron/sqlx"
)

// fakeTxRunner executes the callback directly. The stub stores below never
// touch the *sqlx.Tx, so passing nil is safe.
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

type stubEntityReader struct {
	listAllFn func(ctx context.Context) ([]models.Entity, error)
}

func (s stubEntityReader) ListAll(ctx context.Context) ([]models.Entity, error) {
	return s.listAllFn(ctx)
}

type stubPostReader struct {
	listByEntityIDsFn func(ctx context.Context, entityIDs []string) ([]store.PostSummary, error)
}

func (s stubPostReader) ListByEntityIDs(ctx context.Context, entityIDs []string) ([]store.PostSummary, error) {
	return s.listByEntityIDsFn(ctx, entityIDs)
}

type stubWalletReader struct {
	listByEntityIDsFn func(ctx context.Context, entityIDs []string) ([]store.WalletSummary, error)
}

func (s stubWalletReader) ListByEntityIDs(ctx context.Context, entityIDs []string) ([]store.WalletSummary, error) {
	return s.listByEntityIDsFn(ctx, entityIDs)
}

type stubTransactionReader struct {
	listAllForReportFn func(ctx context.Context) ([]store.ReportTransaction, error)
}

func (s stubTransactionReader) ListAllForReport(ctx context.Context) ([]store.ReportTransaction, error) {
	return s.listAllForReportFn(ctx)
}

type stubReportStore struct {
	createFn  func(ctx context.Context, tx store.Execer, id, title, description, content, format string) error
	getByIDFn func(ctx context.Context, id string) (models.ForensicReport, error)
}

func (s stubReportStore) Create(ctx context.Context, tx store.Execer, id, title, description, content, format string) error {
	return s.createFn(ctx, tx, id, title, description, content, format)
}

func (s stubReportStore) GetByID(ctx context.Context, id string) (models.ForensicReport, error) {
	return s.getByIDFn(ctx, id)
}

func stringPtr(value string) *string {
	return &value
}
