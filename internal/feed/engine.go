package feed

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vishalsachdev/openclaw-dashboard/internal/metrics"
	"github.com/vishalsachdev/openclaw-dashboard/internal/registry"
)

// interCallPause is a fixed courtesy delay between successive per-entity
// upstream calls. It keeps a full refresh under public rate limits; it is
// not an adaptive backoff.
const interCallPause = 500 * time.Millisecond

// ErrLiveDataUnavailable is returned by operations that have no sample
// fallback when live mode is off or every upstream call failed.
var ErrLiveDataUnavailable = errors.New("live data unavailable")

// MarketSource is the market-data aggregator surface the engine consumes.
type MarketSource interface {
	TokenInfo(address string) (TokenInfo, error)
	TokenPools(address string, limit int) ([]Pool, error)
	OHLCV(poolAddress, timeframe string, limit int) ([]PricePoint, error)
}

// ExplorerSource is the block-explorer surface the engine consumes.
type ExplorerSource interface {
	HolderCount(address string) (int, error)
	Transactions(address string, limit int) ([]Transaction, error)
	ContractCreations(address string) (ActivitySummary, error)
}

// Engine assembles dashboard datasets from the live sources, degrading to
// the synthesizer whenever live mode is off or a fetch yields nothing.
// Every refresh rebuilds its result from scratch; nothing is cached
// between requests, and no upstream error escapes this layer.
type Engine struct {
	reg      *registry.Registry
	market   MarketSource
	explorer ExplorerSource
	synth    *Synthesizer
	logger   *slog.Logger
	live     bool
	pause    time.Duration
}

func NewEngine(reg *registry.Registry, market MarketSource, explorer ExplorerSource, logger *slog.Logger, live bool) *Engine {
	return &Engine{
		reg:      reg,
		market:   market,
		explorer: explorer,
		synth:    NewSynthesizer(),
		logger:   logger,
		live:     live,
		pause:    interCallPause,
	}
}

// Live reports whether the engine attempts upstream calls at all.
func (e *Engine) Live() bool { return e.live }

// TokenTable returns the current metrics table, one row per registry
// entry. In live mode each token is fetched sequentially; a token whose
// info fetch fails gets its sample-baseline row so the table shape never
// shrinks.
func (e *Engine) TokenTable() []TokenRecord {
	if !e.live {
		metrics.FallbackTotal.WithLabelValues("tokens").Inc()
		return e.synth.TokenTable(e.reg)
	}

	tokens := e.reg.Tokens()
	records := make([]TokenRecord, 0, len(tokens))
	for i, tok := range tokens {
		if i > 0 {
			time.Sleep(e.pause)
		}
		rec, err := e.liveTokenRecord(tok)
		if err != nil {
			e.logger.Warn("token fetch failed, using sample row",
				"symbol", tok.Symbol, "error", err)
			metrics.FallbackTotal.WithLabelValues("token_row").Inc()
			rec = e.synth.TokenRecord(e.reg, tok)
		}
		records = append(records, rec)
	}
	return records
}

func (e *Engine) liveTokenRecord(tok registry.Token) (TokenRecord, error) {
	start := time.Now()
	info, err := e.market.TokenInfo(tok.Address)
	observeFetch("token_info", start, err)
	if err != nil {
		return TokenRecord{}, err
	}

	start = time.Now()
	holders, err := e.explorer.HolderCount(tok.Address)
	observeFetch("holder_count", start, err)
	if err != nil {
		// holder count is enrichment; the registry estimate covers it
		e.logger.Warn("holder count failed", "symbol", tok.Symbol, "error", err)
		holders = 0
	}

	start = time.Now()
	pools, err := e.market.TokenPools(tok.Address, 1)
	observeFetch("token_pools", start, err)
	if err != nil {
		e.logger.Warn("pool fetch failed", "symbol", tok.Symbol, "error", err)
		pools = nil
	}

	return BuildTokenRecord(tok, info, pools, holders), nil
}

// PriceHistory returns a daily close/volume series for one token: the top
// pool's candles in live mode, otherwise a synthetic walk. Unknown symbols
// are an error rather than a fallback.
func (e *Engine) PriceHistory(symbol string, days int) ([]PricePoint, error) {
	tok, ok := e.reg.Token(symbol)
	if !ok {
		return nil, fmt.Errorf("unknown token %q", symbol)
	}

	if e.live {
		if points := e.livePriceHistory(tok, days); len(points) > 0 {
			return points, nil
		}
	}
	metrics.FallbackTotal.WithLabelValues("price_history").Inc()
	return e.synth.PriceHistory(e.reg, symbol, days), nil
}

func (e *Engine) livePriceHistory(tok registry.Token, days int) []PricePoint {
	start := time.Now()
	pools, err := e.market.TokenPools(tok.Address, 1)
	observeFetch("token_pools", start, err)
	if err != nil || len(pools) == 0 || pools[0].Address == "" {
		if err != nil {
			e.logger.Warn("pool lookup failed", "symbol", tok.Symbol, "error", err)
		}
		return nil
	}

	start = time.Now()
	points, err := e.market.OHLCV(pools[0].Address, "day", days)
	observeFetch("ohlcv", start, err)
	if err != nil {
		e.logger.Warn("ohlcv fetch failed", "symbol", tok.Symbol,
			"pool", pools[0].Address, "error", err)
		return nil
	}
	return points
}

// DeployerActivity returns the per-day deployment series across all
// deployer contract versions, cumulative totals included. The synthetic
// series stands in when live mode is off or no transactions came back.
func (e *Engine) DeployerActivity(days int) []ActivityPoint {
	if e.live {
		if series := e.liveDeployerActivity(days); series != nil {
			return AccumulateDeployments(series)
		}
	}
	metrics.FallbackTotal.WithLabelValues("deployer_activity").Inc()
	return AccumulateDeployments(e.synth.DeployerActivity(e.reg, days))
}

func (e *Engine) liveDeployerActivity(days int) []ActivityPoint {
	deployers := e.reg.Deployers()
	versions := make([]string, 0, len(deployers))
	byVersion := make(map[string][]Transaction, len(deployers))

	fetched := 0
	for i, d := range deployers {
		if i > 0 {
			time.Sleep(e.pause)
		}
		versions = append(versions, d.Version)

		start := time.Now()
		txs, err := e.explorer.Transactions(d.Address, 1000)
		observeFetch("txlist", start, err)
		if err != nil {
			e.logger.Warn("deployer txlist failed",
				"version", d.Version, "address", d.Address, "error", err)
			continue
		}
		byVersion[d.Version] = txs
		fetched += len(txs)
	}

	if fetched == 0 {
		return nil
	}
	return GroupDeployerActivity(byVersion, versions, days, time.Now())
}

// Ecosystem aggregates contract-creation summaries across the deployer
// contracts. It has no sample fallback: callers get an explicit error when
// nothing live is available.
func (e *Engine) Ecosystem() (EcosystemActivity, error) {
	if !e.live {
		return EcosystemActivity{}, ErrLiveDataUnavailable
	}

	out := EcosystemActivity{Deployers: make(map[string]DeployerStats)}
	for i, d := range e.reg.Deployers() {
		if i > 0 {
			time.Sleep(e.pause)
		}

		start := time.Now()
		sum, err := e.explorer.ContractCreations(d.Address)
		observeFetch("contract_creations", start, err)
		if err != nil {
			e.logger.Warn("contract creation count failed",
				"version", d.Version, "address", d.Address, "error", err)
			continue
		}
		out.Deployers[d.Version] = DeployerStats{
			Address:           d.Address,
			TotalTxs:          sum.TotalTxs,
			ContractCreations: sum.ContractCreations,
			DailyActivity:     sum.DailyActivity,
		}
		out.TotalContractsCreated += sum.ContractCreations
	}

	if len(out.Deployers) == 0 {
		return EcosystemActivity{}, ErrLiveDataUnavailable
	}
	return out, nil
}

func observeFetch(endpoint string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.FetchTotal.WithLabelValues(endpoint, status).Inc()
	metrics.FetchDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}
