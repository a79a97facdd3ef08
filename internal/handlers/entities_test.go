package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"forensics/internal/models"
	"forensics/internal/store"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return body
}

func TestListEntitiesExpandsRelations(t *testing.T) {
	handler := newTestHandler(testHandlerDeps{
		entities: stubEntityStore{
			listFn: func(_ context.Context, search string, limit, offset int) ([]models.Entity, error) {
				if search != "shadow" || limit != 5 || offset != 5 {
					t.Fatalf("unexpected list params: %q %d %d", search, limit, offset)
				}
				return []models.Entity{
					{ID: "e-1", Alias: "ShadowHunter", RiskLevel: 4, IsMalicious: true},
					{ID: "e-2", Alias: "ShadowBroker", RiskLevel: 2},
				}, nil
			},
			countFn: func(_ context.Context, search string) (int, error) {
				return 12, nil
			},
		},
		posts: stubPostStore{listByEntityIDsFn: func(_ context.Context, entityIDs []string) ([]store.PostSummary, error) {
			if len(entityIDs) != 2 {
				t.Fatalf("unexpected entity ids: %#v", entityIDs)
			}
			return []store.PostSummary{{ID: "p-1", Title: "New batch", AuthorID: "e-1"}}, nil
		}},
		wallets: stubWalletStore{listByEntityIDsFn: func(context.Context, []string) ([]store.WalletSummary, error) {
			return []store.WalletSummary{{ID: "w-1", Address: "a1", Type: "BTC", Balance: 2.5, EntityID: stringPtr("e-1")}}, nil
		}},
		links: stubLinkStore{
			listOutgoingFn: func(context.Context, []string) ([]store.LinkWithPeer, error) {
				return []store.LinkWithPeer{{ID: "l-1", FromEntityID: "e-1", ToEntityID: "e-2", LinkType: "similar_pattern", Confidence: 0.87, PeerID: "e-2", PeerAlias: "ShadowBroker"}}, nil
			},
			listIncomingFn: func(context.Context, []string) ([]store.LinkWithPeer, error) {
				return []store.LinkWithPeer{{ID: "l-1", FromEntityID: "e-1", ToEntityID: "e-2", LinkType: "similar_pattern", Confidence: 0.87, PeerID: "e-1", PeerAlias: "ShadowHunter"}}, nil
			},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/entities?search=shadow&page=2&limit=5", nil)
	rec := httptest.NewRecorder()
	handler.ListEntities(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	entities := body["entities"].([]any)
	if len(entities) != 2 {
		t.Fatalf("unexpected entities: %#v", entities)
	}
	first := entities[0].(map[string]any)
	if first["alias"] != "ShadowHunter" {
		t.Fatalf("unexpected first entity: %#v", first)
	}
	if len(first["posts"].([]any)) != 1 || len(first["wallets"].([]any)) != 1 {
		t.Fatalf("unexpected expansions: %#v", first)
	}
	links := first["links"].([]any)
	if len(links) != 1 {
		t.Fatalf("unexpected links: %#v", links)
	}
	toEntity := links[0].(map[string]any)["toEntity"].(map[string]any)
	if toEntity["alias"] != "ShadowBroker" {
		t.Fatalf("unexpected link peer: %#v", toEntity)
	}
	second := entities[1].(map[string]any)
	if len(second["posts"].([]any)) != 0 || len(second["wallets"].([]any)) != 0 {
		t.Fatalf("expected empty collections, got %#v", second)
	}
	linkedTo := second["linkedTo"].([]any)
	if len(linkedTo) != 1 {
		t.Fatalf("unexpected incoming links: %#v", linkedTo)
	}
	fromEntity := linkedTo[0].(map[string]any)["fromEntity"].(map[string]any)
	if fromEntity["alias"] != "ShadowHunter" {
		t.Fatalf("unexpected incoming peer: %#v", fromEntity)
	}

	paginationBody := body["pagination"].(map[string]any)
	if paginationBody["page"] != float64(2) || paginationBody["limit"] != float64(5) {
		t.Fatalf("unexpected pagination: %#v", paginationBody)
	}
	if paginationBody["total"] != float64(12) || paginationBody["pages"] != float64(3) {
		t.Fatalf("unexpected pagination: %#v", paginationBody)
	}
}

func TestListEntitiesDefaultsPageAndLimit(t *testing.T) {
	handler := newTestHandler(testHandlerDeps{
		entities: stubEntityStore{
			listFn: func(_ context.Context, search string, limit, offset int) ([]models.Entity, error) {
				if search != "" || limit != 10 || offset != 0 {
					t.Fatalf("unexpected list params: %q %d %d", search, limit, offset)
				}
				return nil, nil
			},
			countFn: func(context.Context, string) (int, error) {
				return 0, nil
			},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/entities?page=0&limit=-3", nil)
	rec := httptest.NewRecorder()
	handler.ListEntities(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if len(body["entities"].([]any)) != 0 {
		t.Fatalf("unexpected entities: %#v", body["entities"])
	}
}

func TestCreateEntityRequiresAlias(t *testing.T) {
	handler := newTestHandler(testHandlerDeps{})
	req := httptest.NewRequest(http.MethodPost, "/api/entities", strings.NewReader(`{"alias":"   "}`))
	rec := httptest.NewRecorder()
	handler.CreateEntity(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != "Alias is required" {
		t.Fatalf("unexpected error: %#v", body)
	}
}

func TestCreateEntityDefaultsAndAudit(t *testing.T) {
	var entries []auditEntry
	runner := &fakeTxRunner{}
	handler := newTestHandler(testHandlerDeps{
		txRunner: runner,
		entities: stubEntityStore{
			createFn: func(_ context.Context, _ store.Execer, id, alias string, username, email *string, riskLevel int, isMalicious bool) error {
				if alias != "NightOwl" || username != nil || email != nil {
					t.Fatalf("unexpected create args: %s %v %v", alias, username, email)
				}
				if riskLevel != 1 || isMalicious {
					t.Fatalf("unexpected defaults: %d %v", riskLevel, isMalicious)
				}
				return nil
			},
			getByIDFn: func(_ context.Context, id string) (models.Entity, error) {
				return models.Entity{ID: id, Alias: "NightOwl", RiskLevel: 1}, nil
			},
		},
		audit: stubAuditStore{entries: &entries},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/entities", strings.NewReader(`{"alias":"NightOwl"}`))
	rec := httptest.NewRecorder()
	handler.CreateEntity(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}
	if runner.calls != 1 {
		t.Fatalf("expected one transaction, got %d", runner.calls)
	}
	if len(entries) != 1 || entries[0].action != "create" || entries[0].entityType != "entity" {
		t.Fatalf("unexpected audit entries: %#v", entries)
	}
	body := decodeBody(t, rec)
	if body["alias"] != "NightOwl" {
		t.Fatalf("unexpected body: %#v", body)
	}
	if len(body["posts"].([]any)) != 0 || len(body["linkedTo"].([]any)) != 0 {
		t.Fatalf("expected empty collections: %#v", body)
	}
}

func TestCreateEntityHonorsExplicitFields(t *testing.T) {
	handler := newTestHandler(testHandlerDeps{
		entities: stubEntityStore{
			createFn: func(_ context.Context, _ store.Execer, _, alias string, username, email *string, riskLevel int, isMalicious bool) error {
				if username == nil || *username != "owl_77" || email == nil || *email != "owl@dark.onion" {
					t.Fatalf("unexpected optional fields: %v %v", username, email)
				}
				if riskLevel != 8 || !isMalicious {
					t.Fatalf("unexpected fields: %d %v", riskLevel, isMalicious)
				}
				return nil
			},
			getByIDFn: func(_ context.Context, id string) (models.Entity, error) {
				return models.Entity{ID: id, Alias: "NightOwl", RiskLevel: 8, IsMalicious: true}, nil
			},
		},
	})

	payload := `{"alias":"NightOwl","username":"owl_77","email":"owl@dark.onion","riskLevel":8,"isMalicious":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/entities", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.CreateEntity(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}
}
