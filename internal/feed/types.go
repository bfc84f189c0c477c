package feed

import "time"

// TokenRecord is one row of the dashboard metrics table. Records are value
// objects rebuilt from scratch on every refresh; nothing is cached or
// mutated in place.
type TokenRecord struct {
	Symbol              string  `json:"symbol"`
	Name                string  `json:"name"`
	Project             string  `json:"project"`
	Category            string  `json:"category"`
	Description         string  `json:"description"`
	Address             string  `json:"address"`
	PriceUSD            float64 `json:"price_usd"`
	MarketCapUSD        float64 `json:"market_cap_usd"`
	FDVUSD              float64 `json:"fdv_usd"`
	Volume24h           float64 `json:"volume_24h"`
	PriceChange24h      float64 `json:"price_change_24h"`
	Holders             int     `json:"holders"`
	TopPoolLiquidityUSD float64 `json:"top_pool_liquidity_usd"`
}

// TokenInfo is the market-data view of a single token as returned by the
// aggregator endpoint.
type TokenInfo struct {
	Name           string  `json:"name"`
	Symbol         string  `json:"symbol"`
	PriceUSD       float64 `json:"price_usd"`
	MarketCapUSD   float64 `json:"market_cap_usd"`
	FDVUSD         float64 `json:"fdv_usd"`
	TotalSupply    string  `json:"total_supply"`
	Volume24h      float64 `json:"volume_24h"`
	PriceChange24h float64 `json:"price_change_24h"`
}

// Pool is an on-chain liquidity pool pairing a tracked token with another
// asset.
type Pool struct {
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	ReserveUSD     float64 `json:"reserve_usd"`
	Volume24h      float64 `json:"volume_24h"`
	PriceChange24h float64 `json:"price_change_24h"`
}

// PricePoint is one candle of a price series. Series are ordered ascending
// by timestamp with no duplicates.
type PricePoint struct {
	Timestamp time.Time `json:"timestamp"`
	Close     float64   `json:"close"`
	Volume    float64   `json:"volume"`
}

// Transaction is one explorer transaction, in the descending time order the
// explorer returns.
type Transaction struct {
	Hash      string    `json:"hash"`
	Timestamp time.Time `json:"timestamp"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Value     float64   `json:"value"`
	GasUsed   int64     `json:"gas_used"`
	IsError   bool      `json:"is_error"`
	Method    string    `json:"method"`
}

// ActivitySummary aggregates a deployer contract's recent transactions.
type ActivitySummary struct {
	TotalTxs          int            `json:"total_txs"`
	ContractCreations int            `json:"contract_creations"`
	DailyActivity     map[string]int `json:"daily_activity"`
}

// ActivityPoint is one day of deployer activity. Deployments is keyed by
// contract version. TotalTxs may exceed the sum of per-version deployments;
// Cumulative is the running sum of per-version deployments and is
// monotonically non-decreasing across an ordered series.
type ActivityPoint struct {
	Date        time.Time      `json:"date"`
	Deployments map[string]int `json:"deployments"`
	TotalTxs    int            `json:"total_txs"`
	Cumulative  int            `json:"cumulative"`
}

// DeploymentSum returns the total per-version deployments for the day.
func (p ActivityPoint) DeploymentSum() int {
	sum := 0
	for _, n := range p.Deployments {
		sum += n
	}
	return sum
}

// EcosystemActivity is the live aggregate across all deployer contracts.
type EcosystemActivity struct {
	Deployers             map[string]DeployerStats `json:"deployers"`
	TotalContractsCreated int                      `json:"total_contracts_created"`
}

// DeployerStats is the per-contract slice of EcosystemActivity.
type DeployerStats struct {
	Address           string         `json:"address"`
	TotalTxs          int            `json:"total_txs"`
	ContractCreations int            `json:"contract_creations"`
	DailyActivity     map[string]int `json:"daily_activity"`
}
