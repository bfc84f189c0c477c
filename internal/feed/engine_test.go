package feed

import (
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/vishalsachdev/openclaw-dashboard/internal/registry"
)

func mustNowUTC() time.Time { return time.Now().UTC() }

// mockMarket implements MarketSource.
type mockMarket struct {
	info      map[string]TokenInfo
	infoErr   error
	pools     []Pool
	poolsErr  error
	candles   []PricePoint
	ohlcvErr  error
	infoCalls int
}

func (m *mockMarket) TokenInfo(address string) (TokenInfo, error) {
	m.infoCalls++
	if m.infoErr != nil {
		return TokenInfo{}, m.infoErr
	}
	return m.info[address], nil
}

func (m *mockMarket) TokenPools(address string, limit int) ([]Pool, error) {
	if m.poolsErr != nil {
		return nil, m.poolsErr
	}
	return m.pools, nil
}

func (m *mockMarket) OHLCV(poolAddress, timeframe string, limit int) ([]PricePoint, error) {
	if m.ohlcvErr != nil {
		return nil, m.ohlcvErr
	}
	return m.candles, nil
}

// mockExplorer implements ExplorerSource.
type mockExplorer struct {
	holders     int
	holdersErr  error
	txs         map[string][]Transaction
	txsErr      error
	summary     ActivitySummary
	summaryErr  error
	holderCalls int
}

func (m *mockExplorer) HolderCount(address string) (int, error) {
	m.holderCalls++
	return m.holders, m.holdersErr
}

func (m *mockExplorer) Transactions(address string, limit int) ([]Transaction, error) {
	if m.txsErr != nil {
		return nil, m.txsErr
	}
	return m.txs[address], nil
}

func (m *mockExplorer) ContractCreations(address string) (ActivitySummary, error) {
	if m.summaryErr != nil {
		return ActivitySummary{}, m.summaryErr
	}
	return m.summary, nil
}

func testEngine(market MarketSource, explorer ExplorerSource, live bool) *Engine {
	e := NewEngine(registry.Default(), market, explorer, slog.Default(), live)
	e.pause = 0
	return e
}

func TestTokenTableFallbackWhenLiveOff(t *testing.T) {
	market := &mockMarket{}
	e := testEngine(market, &mockExplorer{}, false)

	table := e.TokenTable()
	if len(table) != 3 {
		t.Fatalf("len(table) = %d, want 3", len(table))
	}
	if market.infoCalls != 0 {
		t.Errorf("infoCalls = %d, want 0 when live mode is off", market.infoCalls)
	}
}

func TestFallbackDataConcurrentRequests(t *testing.T) {
	// handler goroutines share one engine, and with it one synthesizer
	e := testEngine(&mockMarket{}, &mockExplorer{}, false)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := len(e.DeployerActivity(30)); got != 30 {
				t.Errorf("len(series) = %d, want 30", got)
			}
			points, err := e.PriceHistory("CLANKER", 30)
			if err != nil {
				t.Errorf("PriceHistory error: %v", err)
				return
			}
			if len(points) != 30 {
				t.Errorf("len(points) = %d, want 30", len(points))
			}
		}()
	}
	wg.Wait()
}

func TestTokenTableAllFailuresDegradeToSamples(t *testing.T) {
	market := &mockMarket{infoErr: errors.New("connection refused")}
	e := testEngine(market, &mockExplorer{}, true)

	table := e.TokenTable()
	if len(table) != 3 {
		t.Fatalf("len(table) = %d, want 3 rows even when every fetch fails", len(table))
	}
	for _, rec := range table {
		if rec.PriceUSD <= 0 {
			t.Errorf("%s: PriceUSD = %v, want baseline value", rec.Symbol, rec.PriceUSD)
		}
	}
}

func TestTokenTableLive(t *testing.T) {
	reg := registry.Default()
	clanker, _ := reg.Token("CLANKER")

	market := &mockMarket{
		info: map[string]TokenInfo{
			clanker.Address: {PriceUSD: 42.9, MarketCapUSD: 42_900_000, Volume24h: 1_250_000},
		},
		pools: []Pool{{Address: "0xaaa", ReserveUSD: 500_000}},
	}
	explorer := &mockExplorer{holders: 42}
	e := testEngine(market, explorer, true)

	table := e.TokenTable()
	if len(table) != 3 {
		t.Fatalf("len(table) = %d, want 3", len(table))
	}

	var clankerRow TokenRecord
	for _, rec := range table {
		if rec.Symbol == "CLANKER" {
			clankerRow = rec
		}
	}
	if clankerRow.PriceUSD != 42.9 {
		t.Errorf("PriceUSD = %v, want 42.9", clankerRow.PriceUSD)
	}
	if clankerRow.Holders != 42 {
		t.Errorf("Holders = %d, want live count 42", clankerRow.Holders)
	}
	if clankerRow.TopPoolLiquidityUSD != 500_000 {
		t.Errorf("TopPoolLiquidityUSD = %v, want 500000", clankerRow.TopPoolLiquidityUSD)
	}
}

func TestTokenTableHolderFallbackOnZero(t *testing.T) {
	reg := registry.Default()
	clanker, _ := reg.Token("CLANKER")

	market := &mockMarket{
		info: map[string]TokenInfo{clanker.Address: {PriceUSD: 1}},
	}
	// no key configured upstream: holder count comes back 0 with no error
	e := testEngine(market, &mockExplorer{holders: 0}, true)

	for _, rec := range e.TokenTable() {
		if rec.Symbol == "CLANKER" && rec.Holders != clanker.HoldersEstimate {
			t.Errorf("Holders = %d, want registry estimate %d", rec.Holders, clanker.HoldersEstimate)
		}
	}
}

func TestPriceHistoryLive(t *testing.T) {
	candles := []PricePoint{{Close: 1.0}, {Close: 1.1}}
	market := &mockMarket{
		pools:   []Pool{{Address: "0xaaa", ReserveUSD: 1}},
		candles: candles,
	}
	e := testEngine(market, &mockExplorer{}, true)

	points, err := e.PriceHistory("CLANKER", 30)
	if err != nil {
		t.Fatalf("PriceHistory error: %v", err)
	}
	if len(points) != 2 {
		t.Errorf("len(points) = %d, want 2 (live candles)", len(points))
	}
}

func TestPriceHistoryFallsBackOnEmptyPools(t *testing.T) {
	e := testEngine(&mockMarket{}, &mockExplorer{}, true)

	points, err := e.PriceHistory("CLANKER", 30)
	if err != nil {
		t.Fatalf("PriceHistory error: %v", err)
	}
	if len(points) != 30 {
		t.Errorf("len(points) = %d, want 30 synthetic points", len(points))
	}
}

func TestPriceHistoryUnknownSymbol(t *testing.T) {
	e := testEngine(&mockMarket{}, &mockExplorer{}, false)
	if _, err := e.PriceHistory("NOPE", 30); err == nil {
		t.Error("PriceHistory(NOPE) expected error, got nil")
	}
}

func TestDeployerActivityLive(t *testing.T) {
	reg := registry.Default()
	deployers := reg.Deployers()

	txs := map[string][]Transaction{}
	for _, d := range deployers {
		txs[d.Address] = []Transaction{{Timestamp: mustNowUTC()}}
	}
	e := testEngine(&mockMarket{}, &mockExplorer{txs: txs}, true)

	series := e.DeployerActivity(14)
	if len(series) != 14 {
		t.Fatalf("len(series) = %d, want 14", len(series))
	}

	last := series[len(series)-1]
	for _, d := range deployers {
		if last.Deployments[d.Version] != 1 {
			t.Errorf("today %s = %d, want 1", d.Version, last.Deployments[d.Version])
		}
	}
	if last.Cumulative != 2 {
		t.Errorf("Cumulative = %d, want 2", last.Cumulative)
	}
}

func TestDeployerActivityFallsBackWhenEmpty(t *testing.T) {
	e := testEngine(&mockMarket{}, &mockExplorer{txsErr: errors.New("timeout")}, true)

	series := e.DeployerActivity(14)
	if len(series) != 14 {
		t.Fatalf("len(series) = %d, want 14 synthetic points", len(series))
	}
	for i := 1; i < len(series); i++ {
		if series[i].Cumulative < series[i-1].Cumulative {
			t.Errorf("cumulative decreased at %d", i)
		}
	}
}

func TestEcosystem(t *testing.T) {
	e := testEngine(&mockMarket{}, &mockExplorer{
		summary: ActivitySummary{TotalTxs: 900, ContractCreations: 350},
	}, true)

	eco, err := e.Ecosystem()
	if err != nil {
		t.Fatalf("Ecosystem error: %v", err)
	}
	if len(eco.Deployers) != 2 {
		t.Errorf("len(Deployers) = %d, want 2", len(eco.Deployers))
	}
	if eco.TotalContractsCreated != 700 {
		t.Errorf("TotalContractsCreated = %d, want 700", eco.TotalContractsCreated)
	}
}

func TestEcosystemUnavailable(t *testing.T) {
	e := testEngine(&mockMarket{}, &mockExplorer{}, false)
	if _, err := e.Ecosystem(); !errors.Is(err, ErrLiveDataUnavailable) {
		t.Errorf("live off: err = %v, want ErrLiveDataUnavailable", err)
	}

	e = testEngine(&mockMarket{}, &mockExplorer{summaryErr: errors.New("boom")}, true)
	if _, err := e.Ecosystem(); !errors.Is(err, ErrLiveDataUnavailable) {
		t.Errorf("all fetches failed: err = %v, want ErrLiveDataUnavailable", err)
	}
}
