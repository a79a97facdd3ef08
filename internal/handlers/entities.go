package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"forensics/internal/models"
	"forensics/internal/store"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"
)

func (h *Handler) ListEntities(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	page, limit, offset := parsePageLimit(r)

	var entities []models.Entity
	var total int
	group, ctx := errgroup.WithContext(r.Context())
	group.Go(func() error {
		var err error
		entities, err = h.entities.List(ctx, search, limit, offset)
		return err
	})
	group.Go(func() error {
		var err error
		total, err = h.entities.Count(ctx, search)
		return err
	})
	if err := group.Wait(); err != nil {
		log.Printf("listing entities: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch entities")
		return
	}

	entityIDs := make([]string, 0, len(entities))
	for _, entity := range entities {
		entityIDs = append(entityIDs, entity.ID)
	}

	var posts []store.PostSummary
	var wallets []store.WalletSummary
	var outgoing, incoming []store.LinkWithPeer
	group, ctx = errgroup.WithContext(r.Context())
	group.Go(func() error {
		var err error
		posts, err = h.posts.ListByEntityIDs(ctx, entityIDs)
		return err
	})
	group.Go(func() error {
		var err error
		wallets, err = h.wallets.ListByEntityIDs(ctx, entityIDs)
		return err
	})
	group.Go(func() error {
		var err error
		outgoing, err = h.links.ListOutgoing(ctx, entityIDs)
		return err
	})
	group.Go(func() error {
		var err error
		incoming, err = h.links.ListIncoming(ctx, entityIDs)
		return err
	})
	if err := group.Wait(); err != nil {
		log.Printf("expanding entities: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch entities")
		return
	}

	postsByEntity := make(map[string][]map[string]any)
	for _, post := range posts {
		postsByEntity[post.AuthorID] = append(postsByEntity[post.AuthorID], map[string]any{
			"id":        post.ID,
			"title":     post.Title,
			"forumName": post.ForumName,
			"timestamp": post.Timestamp,
		})
	}
	walletsByEntity := make(map[string][]map[string]any)
	for _, wallet := range wallets {
		if wallet.EntityID == nil {
			continue
		}
		walletsByEntity[*wallet.EntityID] = append(walletsByEntity[*wallet.EntityID], map[string]any{
			"id":      wallet.ID,
			"address": wallet.Address,
			"type":    wallet.Type,
			"balance": wallet.Balance,
		})
	}
	outgoingByEntity := make(map[string][]map[string]any)
	for _, link := range outgoing {
		outgoingByEntity[link.FromEntityID] = append(outgoingByEntity[link.FromEntityID], map[string]any{
			"id":           link.ID,
			"fromEntityId": link.FromEntityID,
			"toEntityId":   link.ToEntityID,
			"linkType":     link.LinkType,
			"confidence":   link.Confidence,
			"toEntity": map[string]any{
				"id":       link.PeerID,
				"alias":    link.PeerAlias,
				"username": link.PeerUsername,
			},
		})
	}
	incomingByEntity := make(map[string][]map[string]any)
	for _, link := range incoming {
		incomingByEntity[link.ToEntityID] = append(incomingByEntity[link.ToEntityID], map[string]any{
			"id":           link.ID,
			"fromEntityId": link.FromEntityID,
			"toEntityId":   link.ToEntityID,
			"linkType":     link.LinkType,
			"confidence":   link.Confidence,
			"fromEntity": map[string]any{
				"id":       link.PeerID,
				"alias":    link.PeerAlias,
				"username": link.PeerUsername,
			},
		})
	}

	expanded := make([]map[string]any, 0, len(entities))
	for _, entity := range entities {
		expanded = append(expanded, entityToMap(entity,
			postsByEntity[entity.ID],
			walletsByEntity[entity.ID],
			outgoingByEntity[entity.ID],
			incomingByEntity[entity.ID],
		))
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"entities":   expanded,
		"pagination": newPagination(page, limit, total),
	})
}

type createEntityRequest struct {
	Alias       string  `json:"alias"`
	Username    *string `json:"username"`
	Email       *string `json:"email"`
	RiskLevel   *int    `json:"riskLevel"`
	IsMalicious *bool   `json:"isMalicious"`
}

func (h *Handler) CreateEntity(w http.ResponseWriter, r *http.Request) {
	var req createEntityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if strings.TrimSpace(req.Alias) == "" {
		respondError(w, http.StatusBadRequest, "Alias is required")
		return
	}
	riskLevel := 1
	if req.RiskLevel != nil {
		riskLevel = *req.RiskLevel
	}
	isMalicious := false
	if req.IsMalicious != nil {
		isMalicious = *req.IsMalicious
	}

	entityID := uuid.NewString()
	err := h.txRunner.WithTx(r.Context(), func(tx *sqlx.Tx) error {
		if err := h.entities.Create(r.Context(), tx, entityID, req.Alias, req.Username, req.Email, riskLevel, isMalicious); err != nil {
			return err
		}
		data, _ := json.Marshal(map[string]any{"alias": req.Alias, "riskLevel": riskLevel})
		return h.audit.Log(r.Context(), tx, actorID(r), "create", "entity", entityID, string(data))
	})
	if err != nil {
		log.Printf("creating entity: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create entity")
		return
	}

	entity, err := h.entities.GetByID(r.Context(), entityID)
	if err != nil {
		log.Printf("loading created entity: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create entity")
		return
	}
	respondJSON(w, http.StatusCreated, entityToMap(entity, nil, nil, nil, nil))
}

// entityToMap builds the expanded wire shape; nil collections render as [].
func entityToMap(entity models.Entity, posts, wallets, links, linkedTo []map[string]any) map[string]any {
	return map[string]any{
		"id":          entity.ID,
		"alias":       entity.Alias,
		"username":    entity.Username,
		"email":       entity.Email,
		"riskLevel":   entity.RiskLevel,
		"isMalicious": entity.IsMalicious,
		"createdAt":   entity.CreatedAt,
		"posts":       emptyIfNil(posts),
		"wallets":     emptyIfNil(wallets),
		"links":       emptyIfNil(links),
		"linkedTo":    emptyIfNil(linkedTo),
	}
}

func emptyIfNil(items []map[string]any) []map[string]any {
	if items == nil {
		return []map[string]any{}
	}
	return items
}
