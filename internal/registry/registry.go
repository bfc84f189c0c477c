package registry

// Registry is the static catalog of tracked tokens and deployer contracts.
// It is built once at startup and shared read-only; accessors hand out
// copies so callers cannot mutate the catalog.
type Registry struct {
	tokens    []Token
	bySymbol  map[string]int
	baselines map[string]Baseline
	deployers []Deployer
}

// Token describes one tracked token, including the descriptive profile
// shown on the token deep-dive view.
type Token struct {
	Symbol      string `json:"symbol"`
	Address     string `json:"address"`
	Name        string `json:"name"`
	Project     string `json:"project"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Summary     string `json:"summary"`
	Founders    string `json:"founders"`
	Launched    string `json:"launched"`
	KeyStats    string `json:"key_stats"`
	Backers     string `json:"backers"`

	// HoldersEstimate is used when the explorer holder count is
	// unavailable or zero.
	HoldersEstimate int `json:"-"`
}

// Baseline holds the per-symbol seed values for sample/demo data.
type Baseline struct {
	PriceUSD       float64
	MarketCapUSD   float64
	FDVUSD         float64
	Volume24h      float64
	PriceChange24h float64
	Holders        int
	TotalSupply    float64
}

// Deployer is a contract whose transactions represent token launches.
type Deployer struct {
	Version string `json:"version"`
	Address string `json:"address"`
}

// Default returns the OpenClaw ecosystem catalog: three Base tokens and
// the two Clanker deployer contract versions.
func Default() *Registry {
	r := &Registry{
		tokens: []Token{
			{
				Symbol:          "CLANKER",
				Address:         "0x1bc0c42215582d5a085795f4badbac3ff36d1bcb",
				Name:            "Clanker",
				Project:         "Clanker World",
				Category:        "Infrastructure",
				Description:     "Token launch infrastructure for AI agents",
				Summary:         "AI-powered token deployment platform on Base. Users create ERC-20 tokens instantly by tagging @clanker on Farcaster - no coding required. Automatically handles smart contract deployment, creates Uniswap liquidity pools, and locks liquidity. Acquired by Farcaster in early 2025.",
				Founders:        "Jack Dishman (Farcaster engineer) & @proxystudio.eth",
				Launched:        "November 2024",
				KeyStats:        "355K+ token launches, $50M+ in fees generated",
				Backers:         "Farcaster (acquired)",
				HoldersEstimate: 505908,
			},
			{
				Symbol:          "BNKR",
				Address:         "0x22af33fe49fd1fa80c7149773dde5890d3c76f3b",
				Name:            "Bankrbot",
				Project:         "Bankrbot",
				Category:        "Infrastructure",
				Description:     "Wallet and DeFi infrastructure for agents",
				Summary:         "AI-powered crypto trading assistant enabling buy/sell/swap via social media commands. Creates secure embedded wallets via Privy - no seed phrases needed. Supports Base, Ethereum, Polygon, Solana with advanced order types (limit, stop loss, TWAP, DCA).",
				Founders:        "Deployer (Ham/TN100X community)",
				Launched:        "February 2025",
				KeyStats:        "First token launched by an AI agent on Base",
				Backers:         "Coinbase Ventures (Base Ecosystem Fund)",
				HoldersEstimate: 220533,
			},
			{
				Symbol:          "MOLT",
				Address:         "0xb695559b26bb2c9703ef1935c37aeae9526bab07",
				Name:            "Moltbook",
				Project:         "Moltbook",
				Category:        "Forums/Social",
				Description:     "Reddit-like platform for AI agents",
				Summary:         "Social networking platform exclusively for AI agents - 'the front page of the agent internet'. Only verified AI agents can post; humans observe. Features threaded conversations in topic-specific 'submolts'. Agents interact via APIs and downloadable skills.",
				Founders:        "Matt Schlicht",
				Launched:        "January 2026",
				KeyStats:        "157K+ active agents, 1M+ human visitors in first week",
				Backers:         "Mentioned by Elon Musk, followed by a16z co-founders",
				HoldersEstimate: 13398,
			},
		},
		baselines: map[string]Baseline{
			"CLANKER": {
				PriceUSD:       42.90,
				MarketCapUSD:   42_900_000,
				FDVUSD:         42_900_000,
				Volume24h:      1_250_000,
				PriceChange24h: 33.2,
				Holders:        505908,
				TotalSupply:    1_000_000,
			},
			"BNKR": {
				PriceUSD:       0.0005,
				MarketCapUSD:   54_900_000,
				FDVUSD:         50_000_000,
				Volume24h:      890_000,
				PriceChange24h: 23.0,
				Holders:        220533,
				TotalSupply:    100_000_000_000,
			},
			"MOLT": {
				PriceUSD:       0.0006,
				MarketCapUSD:   58_500_000,
				FDVUSD:         60_000_000,
				Volume24h:      456_000,
				PriceChange24h: -24.89,
				Holders:        13398,
				TotalSupply:    100_000_000_000,
			},
		},
		deployers: []Deployer{
			{Version: "v3.1", Address: "0xd9acd656a5f1b519c9e76a2a6092265a74186e58"},
			{Version: "v4.1", Address: "0xe85a59c628f7d27878aceb4bf3b35733630083a9"},
		},
	}

	r.bySymbol = make(map[string]int, len(r.tokens))
	for i, t := range r.tokens {
		r.bySymbol[t.Symbol] = i
	}
	return r
}

// Tokens returns the tracked tokens in catalog order.
func (r *Registry) Tokens() []Token {
	out := make([]Token, len(r.tokens))
	copy(out, r.tokens)
	return out
}

// Token looks up a token by symbol.
func (r *Registry) Token(symbol string) (Token, bool) {
	i, ok := r.bySymbol[symbol]
	if !ok {
		return Token{}, false
	}
	return r.tokens[i], true
}

// Baseline returns the sample-data seed values for a symbol.
func (r *Registry) Baseline(symbol string) (Baseline, bool) {
	b, ok := r.baselines[symbol]
	return b, ok
}

// Deployers returns the deployer contracts, oldest version first.
func (r *Registry) Deployers() []Deployer {
	out := make([]Deployer, len(r.deployers))
	copy(out, r.deployers)
	return out
}
