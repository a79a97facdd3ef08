package services

import (
	"context"

	"forensics/internal/db"
	"forensics/internal/store"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type SeedService struct {
	txRunner         db.TxRunner
	entityStore      SeedEntityStore
	postStore        SeedPostStore
	walletStore      SeedWalletStore
	transactionStore SeedTransactionStore
	linkStore        SeedLinkStore
	extractedStore   SeedExtractedStore
}

type SeedEntityStore interface {
	Create(ctx context.Context, tx store.Execer, id, alias string, username, email *string, riskLevel int, isMalicious bool) error
	DeleteAll(ctx context.Context, tx store.Execer) error
}

type SeedPostStore interface {
	Create(ctx context.Context, tx store.Execer, id, title, content string, forumName, onionURL *string, authorID string) error
	DeleteAll(ctx context.Context, tx store.Execer) error
}

type SeedWalletStore interface {
	Create(ctx context.Context, tx store.Execer, id, address, walletType string, balance float64, entityID *string) error
	DeleteAll(ctx context.Context, tx store.Execer) error
}

type SeedTransactionStore interface {
	Create(ctx context.Context, tx store.Execer, input store.TransactionInput) error
	DeleteAll(ctx context.Context, tx store.Execer) error
}

type SeedLinkStore interface {
	Create(ctx context.Context, tx store.Execer, id, fromEntityID, toEntityID, linkType string, confidence float64) error
	DeleteAll(ctx context.Context, tx store.Execer) error
}

type SeedExtractedStore interface {
	DeleteAll(ctx context.Context, tx store.Execer) error
}

type SeedResult struct {
	Entities     int
	Posts        int
	Wallets      int
	Transactions int
}

func NewSeedService(txRunner db.TxRunner, entityStore SeedEntityStore, postStore SeedPostStore, walletStore SeedWalletStore, transactionStore SeedTransactionStore, linkStore SeedLinkStore, extractedStore SeedExtractedStore) *SeedService {
	return &SeedService{
		txRunner:         txRunner,
		entityStore:      entityStore,
		postStore:        postStore,
		walletStore:      walletStore,
		transactionStore: transactionStore,
		linkStore:        linkStore,
		extractedStore:   extractedStore,
	}
}

// Reset wipes every domain table and rebuilds the fixed demo dataset inside
// one transaction. Records whose named owner or endpoint does not resolve
// are skipped, not failed: the lookup miss is an expected state here, unlike
// on the validated create endpoints. Posts and transactions report attempted
// counts, entities and wallets report created counts.
func (s *SeedService) Reset(ctx context.Context) (SeedResult, error) {
	var result SeedResult
	err := s.txRunner.WithTx(ctx, func(tx *sqlx.Tx) error {
		result = SeedResult{}
		// children first, FK order
		if err := s.transactionStore.DeleteAll(ctx, tx); err != nil {
			return err
		}
		if err := s.linkStore.DeleteAll(ctx, tx); err != nil {
			return err
		}
		if err := s.postStore.DeleteAll(ctx, tx); err != nil {
			return err
		}
		if err := s.walletStore.DeleteAll(ctx, tx); err != nil {
			return err
		}
		if err := s.entityStore.DeleteAll(ctx, tx); err != nil {
			return err
		}
		if err := s.extractedStore.DeleteAll(ctx, tx); err != nil {
			return err
		}

		entityIDsByAlias := make(map[string]string, len(sampleEntities))
		for _, entity := range sampleEntities {
			id := uuid.NewString()
			username := optionalString(entity.Username)
			email := optionalString(entity.Email)
			if err := s.entityStore.Create(ctx, tx, id, entity.Alias, username, email, entity.RiskLevel, entity.IsMalicious); err != nil {
				return err
			}
			entityIDsByAlias[entity.Alias] = id
			result.Entities++
		}

		for _, post := range samplePosts {
			result.Posts++
			authorID, ok := entityIDsByAlias[post.AuthorAlias]
			if !ok {
				continue
			}
			forumName := optionalString(post.ForumName)
			onionURL := optionalString(post.OnionURL)
			if err := s.postStore.Create(ctx, tx, uuid.NewString(), post.Title, post.Content, forumName, onionURL, authorID); err != nil {
				return err
			}
		}

		walletIDsByAddress := make(map[string]string, len(sampleWallets))
		for _, wallet := range sampleWallets {
			id := uuid.NewString()
			var entityID *string
			if ownerID, ok := entityIDsByAlias[wallet.EntityAlias]; ok {
				entityID = &ownerID
			}
			if err := s.walletStore.Create(ctx, tx, id, wallet.Address, wallet.Type, wallet.Balance, entityID); err != nil {
				return err
			}
			walletIDsByAddress[wallet.Address] = id
			result.Wallets++
		}

		for _, transaction := range sampleTransactions {
			result.Transactions++
			fromID, fromOK := walletIDsByAddress[transaction.FromWalletAddress]
			toID, toOK := walletIDsByAddress[transaction.ToWalletAddress]
			if !fromOK || !toOK {
				continue
			}
			input := store.TransactionInput{
				ID:           uuid.NewString(),
				Hash:         transaction.Hash,
				Amount:       transaction.Amount,
				Currency:     transaction.Currency,
				IsSuspicious: transaction.IsSuspicious,
				FromWalletID: fromID,
				ToWalletID:   toID,
			}
			if err := s.transactionStore.Create(ctx, tx, input); err != nil {
				return err
			}
		}

		fromEntityID, fromOK := entityIDsByAlias[sampleLinkFromAlias]
		toEntityID, toOK := entityIDsByAlias[sampleLinkToAlias]
		if fromOK && toOK {
			if err := s.linkStore.Create(ctx, tx, uuid.NewString(), fromEntityID, toEntityID, sampleLinkType, sampleLinkConfidence); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return SeedResult{}, err
	}
	return result, nil
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
