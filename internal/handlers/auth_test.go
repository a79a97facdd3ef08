package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"forensics/internal/auth"
	"forensics/internal/middleware"
	"forensics/internal/store"

	"github.com/lib/pq"
)

func TestRegisterValidatesInput(t *testing.T) {
	handler := newTestHandler(testHandlerDeps{})

	payload := `{"username":"ab","email":"analyst@agency.gov","password":"longenough1"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

func TestRegisterCreatesAnalystAndToken(t *testing.T) {
	var entries []auditEntry
	handler := newTestHandler(testHandlerDeps{
		analysts: stubAnalystStore{
			createFn: func(_ context.Context, _ store.Execer, _, username, email, passwordHash string) error {
				if username != "analyst_one" || email != "analyst@agency.gov" {
					t.Fatalf("unexpected args: %s %s", username, email)
				}
				if !auth.CheckPassword(passwordHash, "longenough1") {
					t.Fatal("stored hash does not match password")
				}
				return nil
			},
		},
		audit: stubAuditStore{entries: &entries},
	})

	payload := `{"username":"analyst_one","email":"analyst@agency.gov","password":"longenough1"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatalf("missing token: %#v", body)
	}
	claims, err := auth.ParseToken(testConfig().JWTSecret, token)
	if err != nil || claims.AnalystID == "" {
		t.Fatalf("unexpected claims: %#v %v", claims, err)
	}
	if len(entries) != 1 || entries[0].action != "register" {
		t.Fatalf("unexpected audit entries: %#v", entries)
	}
}

func TestRegisterDuplicateConflict(t *testing.T) {
	handler := newTestHandler(testHandlerDeps{
		analysts: stubAnalystStore{
			createFn: func(context.Context, store.Execer, string, string, string, string) error {
				return &pq.Error{Code: "23505"}
			},
		},
	})

	payload := `{"username":"analyst_one","email":"analyst@agency.gov","password":"longenough1"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("rightpassword1")
	if err != nil {
		t.Fatalf("hashing: %v", err)
	}
	handler := newTestHandler(testHandlerDeps{
		analysts: stubAnalystStore{
			getByEmailFn: func(_ context.Context, email string) (map[string]any, error) {
				return map[string]any{"id": "a-1", "password_hash": hash}, nil
			},
		},
	})

	payload := `{"email":"analyst@agency.gov","password":"wrongpassword1"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	handler := newTestHandler(testHandlerDeps{
		analysts: stubAnalystStore{
			getByEmailFn: func(context.Context, string) (map[string]any, error) {
				return nil, sql.ErrNoRows
			},
		},
	})

	payload := `{"email":"nobody@agency.gov","password":"whatever123"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

func TestLoginIssuesToken(t *testing.T) {
	hash, err := auth.HashPassword("rightpassword1")
	if err != nil {
		t.Fatalf("hashing: %v", err)
	}
	var entries []auditEntry
	handler := newTestHandler(testHandlerDeps{
		analysts: stubAnalystStore{
			getByEmailFn: func(_ context.Context, email string) (map[string]any, error) {
				if email != "analyst@agency.gov" {
					t.Fatalf("unexpected email: %s", email)
				}
				return map[string]any{"id": "a-1", "password_hash": hash}, nil
			},
		},
		audit: stubAuditStore{entries: &entries},
	})

	payload := `{"email":"analyst@agency.gov","password":"rightpassword1"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	token, _ := body["token"].(string)
	claims, err := auth.ParseToken(testConfig().JWTSecret, token)
	if err != nil || claims.AnalystID != "a-1" {
		t.Fatalf("unexpected claims: %#v %v", claims, err)
	}
	if len(entries) != 1 || entries[0].action != "login" {
		t.Fatalf("unexpected audit entries: %#v", entries)
	}
}

func TestMeThroughAuthMiddleware(t *testing.T) {
	handler := newTestHandler(testHandlerDeps{
		analysts: stubAnalystStore{
			getByIDFn: func(_ context.Context, analystID string) (map[string]any, error) {
				if analystID != "a-1" {
					t.Fatalf("unexpected analyst id: %s", analystID)
				}
				return map[string]any{"id": "a-1", "username": "analyst_one", "email": "analyst@agency.gov"}, nil
			},
		},
	})
	token, err := auth.GenerateToken(testConfig().JWTSecret, "a-1", testConfig().TokenTTL)
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}

	guarded := middleware.Auth(testConfig().JWTSecret)(http.HandlerFunc(handler.Me))
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["username"] != "analyst_one" {
		t.Fatalf("unexpected body: %#v", body)
	}
}

func TestAuditLogsList(t *testing.T) {
	handler := newTestHandler(testHandlerDeps{
		audit: stubAuditStore{
			listFn: func(_ context.Context, limit, offset int) ([]map[string]any, error) {
				if limit != 10 || offset != 0 {
					t.Fatalf("unexpected paging: %d %d", limit, offset)
				}
				return []map[string]any{{"id": "log-1", "action": "login"}}, nil
			},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/audit", nil)
	rec := httptest.NewRecorder()
	handler.ListAuditLogs(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	body := decodeBody(t, rec)
	logs := body["logs"].([]any)
	if len(logs) != 1 {
		t.Fatalf("unexpected logs: %#v", logs)
	}
}
