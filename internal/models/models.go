package models

import "time"

type Entity struct {
	ID          string    `db:"id" json:"id"`
	Alias       string    `db:"alias" json:"alias"`
	Username    *string   `db:"username" json:"username"`
	Email       *string   `db:"email" json:"email"`
	RiskLevel   int       `db:"risk_level" json:"riskLevel"`
	IsMalicious bool      `db:"is_malicious" json:"isMalicious"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

type Post struct {
	ID        string    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	ForumName *string   `db:"forum_name" json:"forumName"`
	OnionURL  *string   `db:"onion_url" json:"onionUrl"`
	Timestamp time.Time `db:"timestamp" json:"timestamp"`
	AuthorID  string    `db:"author_id" json:"authorId"`
}

type Wallet struct {
	ID       string  `db:"id" json:"id"`
	Address  string  `db:"address" json:"address"`
	Type     string  `db:"type" json:"type"`
	Balance  float64 `db:"balance" json:"balance"`
	EntityID *string `db:"entity_id" json:"entityId"`
}

type Transaction struct {
	ID           string    `db:"id" json:"id"`
	Hash         string    `db:"hash" json:"hash"`
	Amount       float64   `db:"amount" json:"amount"`
	Currency     string    `db:"currency" json:"currency"`
	Timestamp    time.Time `db:"timestamp" json:"timestamp"`
	IsSuspicious bool      `db:"is_suspicious" json:"isSuspicious"`
	FromWalletID string    `db:"from_wallet_id" json:"fromWalletId"`
	ToWalletID   string    `db:"to_wallet_id" json:"toWalletId"`
}

type EntityLink struct {
	ID           string    `db:"id" json:"id"`
	FromEntityID string    `db:"from_entity_id" json:"fromEntityId"`
	ToEntityID   string    `db:"to_entity_id" json:"toEntityId"`
	LinkType     string    `db:"link_type" json:"linkType"`
	Confidence   float64   `db:"confidence" json:"confidence"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

type ForensicReport struct {
	ID          string    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Content     string    `db:"content" json:"content"`
	Format      string    `db:"format" json:"format"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

type ExtractedEntity struct {
	ID         string    `db:"id" json:"id"`
	Type       string    `db:"type" json:"type"`
	Value      string    `db:"value" json:"value"`
	Confidence float64   `db:"confidence" json:"confidence"`
	Context    *string   `db:"context" json:"context"`
	SourceText string    `db:"source_text" json:"sourceText"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}

type Analyst struct {
	ID           string    `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
