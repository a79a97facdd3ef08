package services

// Fixed demo dataset. Posts and wallets name their owner by alias and
// transactions name their endpoints by wallet address; the seed run resolves
// those references against the rows it just created.

type seedEntity struct {
	Alias       string
	Username    string
	Email       string
	RiskLevel   int
	IsMalicious bool
}

type seedPost struct {
	Title       string
	Content     string
	ForumName   string
	OnionURL    string
	AuthorAlias string
}

type seedWallet struct {
	Address     string
	Type        string
	Balance     float64
	EntityAlias string
}

type seedTransaction struct {
	Hash              string
	Amount            float64
	Currency          string
	FromWalletAddress string
	ToWalletAddress   string
	IsSuspicious      bool
}

var sampleEntities = []seedEntity{
	{Alias: "ShadowHunter", Username: "shadow_hunter", Email: "shadow@onionmail.com", RiskLevel: 4, IsMalicious: true},
	{Alias: "CryptoKing", Username: "crypto_king2024", Email: "king@crypto.onion", RiskLevel: 5, IsMalicious: true},
	{Alias: "DarkWebTrader", Username: "trader_dark", Email: "trader@darkweb.onion", RiskLevel: 3, IsMalicious: true},
	{Alias: "AnonymousUser", Username: "anon_user", RiskLevel: 1, IsMalicious: false},
	{Alias: "MarketplaceVendor", Username: "vendor123", Email: "vendor@market.onion", RiskLevel: 4, IsMalicious: true},
}

var samplePosts = []seedPost{
	{
		Title:       "Marketplace Discussion",
		Content:     "Looking for reliable vendors in the marketplace. Need someone who can deliver quality products discreetly.",
		ForumName:   "DarkNet Forum",
		OnionURL:    "http://forum3ion5k7y.onion",
		AuthorAlias: "ShadowHunter",
	},
	{
		Title:       "Investment Opportunities",
		Content:     "High ROI investment opportunities available in cryptocurrency. Guaranteed returns of 200% within 30 days.",
		ForumName:   "Crypto Forum",
		OnionURL:    "http://crypto4forum2x7.onion",
		AuthorAlias: "CryptoKing",
	},
	{
		Title:       "Trading Tips",
		Content:     "Best practices for secure trading on darknet markets. Always use escrow and verify vendor reputation.",
		ForumName:   "Trading Forum",
		OnionURL:    "http://trade7forum9x3.onion",
		AuthorAlias: "DarkWebTrader",
	},
	{
		Title:       "General Discussion",
		Content:     "Just browsing the forums. Interested in learning about online security and privacy.",
		ForumName:   "General Forum",
		OnionURL:    "http://general5forum8y2.onion",
		AuthorAlias: "AnonymousUser",
	},
	{
		Title:       "Product Listings",
		Content:     "Premium products available at competitive prices. Fast shipping and discrete packaging guaranteed.",
		ForumName:   "Marketplace",
		OnionURL:    "http://market2forum6x4.onion",
		AuthorAlias: "MarketplaceVendor",
	},
}

var sampleWallets = []seedWallet{
	{Address: "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", Type: "BTC", Balance: 2.5, EntityAlias: "ShadowHunter"},
	{Address: "0x742d35Cc6634C0532925a3b844Bc454e4438f44e", Type: "ETH", Balance: 15.7, EntityAlias: "CryptoKing"},
	{Address: "3FZbgi29cpjq2GjdwV8eyHuJJnkLtktZc5", Type: "BTC", Balance: 8.3, EntityAlias: "DarkWebTrader"},
	{Address: "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B", Type: "ETH", Balance: 32.1, EntityAlias: "MarketplaceVendor"},
	{Address: "1FeexV6bAHb8ybZiQLN2M7Y9b5zH8nN7X7", Type: "BTC", Balance: 45.2, EntityAlias: "CryptoKing"},
}

var sampleTransactions = []seedTransaction{
	{
		Hash:              "tx1_hash_example",
		Amount:            1.2,
		Currency:          "BTC",
		FromWalletAddress: "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
		ToWalletAddress:   "3FZbgi29cpjq2GjdwV8eyHuJJnkLtktZc5",
		IsSuspicious:      false,
	},
	{
		Hash:              "tx2_hash_example",
		Amount:            5.5,
		Currency:          "ETH",
		FromWalletAddress: "0x742d35Cc6634C0532925a3b844Bc454e4438f44e",
		ToWalletAddress:   "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B",
		IsSuspicious:      true,
	},
	{
		Hash:              "tx3_hash_example",
		Amount:            3.1,
		Currency:          "BTC",
		FromWalletAddress: "3FZbgi29cpjq2GjdwV8eyHuJJnkLtktZc5",
		ToWalletAddress:   "1FeexV6bAHb8ybZiQLN2M7Y9b5zH8nN7X7",
		IsSuspicious:      false,
	},
	{
		Hash:              "tx4_hash_example",
		Amount:            8.7,
		Currency:          "ETH",
		FromWalletAddress: "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B",
		ToWalletAddress:   "0x742d35Cc6634C0532925a3b844Bc454e4438f44e",
		IsSuspicious:      true,
	},
}

const (
	sampleLinkFromAlias  = "ShadowHunter"
	sampleLinkToAlias    = "CryptoKing"
	sampleLinkType       = "similar_pattern"
	sampleLinkConfidence = 0.87
)
