package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"forensics/internal/store"
	"forensics/internal/websocket"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := parsePageLimit(r)
	filter := store.TransactionFilter{
		Suspicious: r.URL.Query().Get("suspicious") == "true",
		Currency:   r.URL.Query().Get("currency"),
	}

	var transactions []map[string]any
	var total int
	group, ctx := errgroup.WithContext(r.Context())
	group.Go(func() error {
		var err error
		transactions, err = h.transactions.List(ctx, filter, limit, offset)
		return err
	})
	group.Go(func() error {
		var err error
		total, err = h.transactions.Count(ctx, filter)
		return err
	})
	if err := group.Wait(); err != nil {
		log.Printf("listing transactions: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	if transactions == nil {
		transactions = []map[string]any{}
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"transactions": transactions,
		"pagination":   newPagination(page, limit, total),
	})
}

type createTransactionRequest struct {
	Hash         string `json:"hash"`
	Amount       any    `json:"amount"`
	Currency     string `json:"currency"`
	FromWalletID string `json:"fromWalletId"`
	ToWalletID   string `json:"toWalletId"`
	IsSuspicious *bool  `json:"isSuspicious"`
}

func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Hash == "" || req.Amount == nil || req.Currency == "" || req.FromWalletID == "" || req.ToWalletID == "" {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil || amount <= 0 {
		respondError(w, http.StatusBadRequest, "Invalid amount")
		return
	}
	isSuspicious := false
	if req.IsSuspicious != nil {
		isSuspicious = *req.IsSuspicious
	}

	transactionID := uuid.NewString()
	input := store.TransactionInput{
		ID:           transactionID,
		Hash:         req.Hash,
		Amount:       amount,
		Currency:     req.Currency,
		IsSuspicious: isSuspicious,
		FromWalletID: req.FromWalletID,
		ToWalletID:   req.ToWalletID,
	}
	err = h.txRunner.WithTx(r.Context(), func(tx *sqlx.Tx) error {
		if err := h.transactions.Create(r.Context(), tx, input); err != nil {
			return err
		}
		data, _ := json.Marshal(map[string]any{"hash": req.Hash, "amount": amount, "currency": req.Currency})
		return h.audit.Log(r.Context(), tx, actorID(r), "create", "transaction", transactionID, string(data))
	})
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23503":
				respondError(w, http.StatusBadRequest, "Invalid wallet reference")
				return
			case "23505":
				respondError(w, http.StatusConflict, "Transaction hash already exists")
				return
			}
		}
		log.Printf("creating transaction: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create transaction")
		return
	}

	transaction, err := h.transactions.GetExpanded(r.Context(), transactionID)
	if err != nil {
		log.Printf("loading created transaction: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create transaction")
		return
	}
	if isSuspicious {
		h.hub.Broadcast(websocket.Alert{
			Kind:          websocket.AlertSuspiciousTransaction,
			TransactionID: transactionID,
			Hash:          req.Hash,
			Amount:        amount,
			Currency:      req.Currency,
		})
	}
	respondJSON(w, http.StatusCreated, transaction)
}

// parseAmount coerces a JSON string or number into a float amount.
func parseAmount(value any) (float64, error) {
	switch v := value.(type) {
	case string:
		parsed, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return 0, err
		}
		amount, _ := parsed.Float64()
		return amount, nil
	case float64:
		return v, nil
	case json.Number:
		return v.Float64()
	default:
		return 0, errors.New("amount must be a number")
	}
}
