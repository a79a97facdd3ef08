package store

import (
	"context"

	"github.com/lib/pq"
)

type LinkStore struct {
	db DB
}

// linkRow carries a link plus the display fields of the entity on the far
// side of it (target for outgoing, source for incoming).
type linkRow struct {
	ID           string  `db:"id"`
	FromEntityID string  `db:"from_entity_id"`
	ToEntityID   string  `db:"to_entity_id"`
	LinkType     string  `db:"link_type"`
	Confidence   float64 `db:"confidence"`
	PeerID       string  `db:"peer_id"`
	PeerAlias    string  `db:"peer_alias"`
	PeerUsername *string `db:"peer_username"`
}

type LinkWithPeer struct {
	ID           string
	FromEntityID string
	ToEntityID   string
	LinkType     string
	Confidence   float64
	PeerID       string
	PeerAlias    string
	PeerUsername *string
}

func NewLinkStore(db DB) *LinkStore {
	return &LinkStore{db: db}
}

func (s *LinkStore) Create(ctx context.Context, tx Execer, id, fromEntityID, toEntityID, linkType string, confidence float64) error {
	query := `
		INSERT INTO entity_links (id, from_entity_id, to_entity_id, link_type, confidence)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := tx.ExecContext(ctx, query, id, fromEntityID, toEntityID, linkType, confidence)
	return err
}

func (s *LinkStore) ListOutgoing(ctx context.Context, entityIDs []string) ([]LinkWithPeer, error) {
	if len(entityIDs) == 0 {
		return nil, nil
	}
	var rows []linkRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT l.id, l.from_entity_id, l.to_entity_id, l.link_type, l.confidence,
		       e.id AS peer_id, e.alias AS peer_alias, e.username AS peer_username
		FROM entity_links l
		JOIN entities e ON e.id = l.to_entity_id
		WHERE l.from_entity_id = ANY($1)
	`, pq.Array(entityIDs))
	if err != nil {
		return nil, err
	}
	return linkRowsToPeers(rows), nil
}

func (s *LinkStore) ListIncoming(ctx context.Context, entityIDs []string) ([]LinkWithPeer, error) {
	if len(entityIDs) == 0 {
		return nil, nil
	}
	var rows []linkRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT l.id, l.from_entity_id, l.to_entity_id, l.link_type, l.confidence,
		       e.id AS peer_id, e.alias AS peer_alias, e.username AS peer_username
		FROM entity_links l
		JOIN entities e ON e.id = l.from_entity_id
		WHERE l.to_entity_id = ANY($1)
	`, pq.Array(entityIDs))
	if err != nil {
		return nil, err
	}
	return linkRowsToPeers(rows), nil
}

func (s *LinkStore) DeleteAll(ctx context.Context, tx Execer) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM entity_links`)
	return err
}

func linkRowsToPeers(rows []linkRow) []LinkWithPeer {
	links := make([]LinkWithPeer, 0, len(rows))
	for _, row := range rows {
		links = append(links, LinkWithPeer{
			ID:           row.ID,
			FromEntityID: row.FromEntityID,
			ToEntityID:   row.ToEntityID,
			LinkType:     row.LinkType,
			Confidence:   row.Confidence,
			PeerID:       row.PeerID,
			PeerAlias:    row.PeerAlias,
			PeerUsername: row.PeerUsername,
		})
	}
	return links
}
