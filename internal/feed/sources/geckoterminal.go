package sources

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/vishalsachdev/openclaw-dashboard/internal/feed"
)

const geckoTerminalAPI = "https://api.geckoterminal.com/api/v2"

// GeckoTerminal fetches market data from the keyless GeckoTerminal public
// API. All numeric attributes arrive as strings or null; missing values
// parse to zero.
type GeckoTerminal struct {
	client  *http.Client
	baseURL string
	network string
}

func NewGeckoTerminal() *GeckoTerminal {
	return &GeckoTerminal{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: geckoTerminalAPI,
		network: "base",
	}
}

type geckoTokenResp struct {
	Data struct {
		Attributes struct {
			Name                  string            `json:"name"`
			Symbol                string            `json:"symbol"`
			PriceUSD              string            `json:"price_usd"`
			MarketCapUSD          string            `json:"market_cap_usd"`
			FDVUSD                string            `json:"fdv_usd"`
			TotalSupply           string            `json:"total_supply"`
			VolumeUSD             map[string]string `json:"volume_usd"`
			PriceChangePercentage map[string]string `json:"price_change_percentage"`
		} `json:"attributes"`
	} `json:"data"`
}

type geckoPoolsResp struct {
	Data []struct {
		ID         string `json:"id"`
		Attributes struct {
			Name                  string            `json:"name"`
			Address               string            `json:"address"`
			ReserveInUSD          string            `json:"reserve_in_usd"`
			VolumeUSD             map[string]string `json:"volume_usd"`
			PriceChangePercentage map[string]string `json:"price_change_percentage"`
		} `json:"attributes"`
	} `json:"data"`
}

type geckoOHLCVResp struct {
	Data struct {
		Attributes struct {
			OHLCVList [][]float64 `json:"ohlcv_list"`
		} `json:"attributes"`
	} `json:"data"`
}

// TokenInfo fetches current market attributes for a token address.
func (g *GeckoTerminal) TokenInfo(address string) (feed.TokenInfo, error) {
	url := fmt.Sprintf("%s/networks/%s/tokens/%s", g.baseURL, g.network, address)

	resp, err := g.client.Get(url)
	if err != nil {
		return feed.TokenInfo{}, fmt.Errorf("geckoterminal token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return feed.TokenInfo{}, fmt.Errorf("geckoterminal token status: %d", resp.StatusCode)
	}

	var tr geckoTokenResp
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return feed.TokenInfo{}, fmt.Errorf("decode geckoterminal token: %w", err)
	}

	attrs := tr.Data.Attributes
	return feed.TokenInfo{
		Name:           attrs.Name,
		Symbol:         attrs.Symbol,
		PriceUSD:       floatOrZero(attrs.PriceUSD),
		MarketCapUSD:   floatOrZero(attrs.MarketCapUSD),
		FDVUSD:         floatOrZero(attrs.FDVUSD),
		TotalSupply:    attrs.TotalSupply,
		Volume24h:      floatOrZero(attrs.VolumeUSD["h24"]),
		PriceChange24h: floatOrZero(attrs.PriceChangePercentage["h24"]),
	}, nil
}

// TokenPools fetches up to limit liquidity pools for a token, best first.
func (g *GeckoTerminal) TokenPools(address string, limit int) ([]feed.Pool, error) {
	url := fmt.Sprintf("%s/networks/%s/tokens/%s/pools?page=1", g.baseURL, g.network, address)

	resp, err := g.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("geckoterminal pools: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geckoterminal pools status: %d", resp.StatusCode)
	}

	var pr geckoPoolsResp
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, fmt.Errorf("decode geckoterminal pools: %w", err)
	}

	if limit < 0 {
		limit = 0
	}
	pools := make([]feed.Pool, 0, limit)
	for _, p := range pr.Data {
		if len(pools) == limit {
			break
		}
		pools = append(pools, feed.Pool{
			Name:           p.Attributes.Name,
			Address:        poolAddress(p.Attributes.Address, p.ID),
			ReserveUSD:     floatOrZero(p.Attributes.ReserveInUSD),
			Volume24h:      floatOrZero(p.Attributes.VolumeUSD["h24"]),
			PriceChange24h: floatOrZero(p.Attributes.PriceChangePercentage["h24"]),
		})
	}
	return pools, nil
}

// OHLCV fetches up to limit candles for a pool and returns them sorted
// ascending by timestamp, with at most one candle per timestamp. The API
// occasionally repeats the in-progress candle; the later entry wins.
func (g *GeckoTerminal) OHLCV(poolAddress, timeframe string, limit int) ([]feed.PricePoint, error) {
	url := fmt.Sprintf("%s/networks/%s/pools/%s/ohlcv/%s?limit=%d",
		g.baseURL, g.network, poolAddress, timeframe, limit)

	resp, err := g.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("geckoterminal ohlcv: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geckoterminal ohlcv status: %d", resp.StatusCode)
	}

	var or geckoOHLCVResp
	if err := json.NewDecoder(resp.Body).Decode(&or); err != nil {
		return nil, fmt.Errorf("decode geckoterminal ohlcv: %w", err)
	}

	points := make([]feed.PricePoint, 0, len(or.Data.Attributes.OHLCVList))
	for _, c := range or.Data.Attributes.OHLCVList {
		// candle layout: [timestamp, open, high, low, close, volume]
		if len(c) < 6 {
			continue
		}
		points = append(points, feed.PricePoint{
			Timestamp: time.Unix(int64(c[0]), 0).UTC(),
			Close:     c[4],
			Volume:    c[5],
		})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Timestamp.Before(points[j].Timestamp)
	})
	deduped := points[:0]
	for _, p := range points {
		if n := len(deduped); n > 0 && deduped[n-1].Timestamp.Equal(p.Timestamp) {
			deduped[n-1] = p
			continue
		}
		deduped = append(deduped, p)
	}
	return deduped, nil
}

// poolAddress resolves a pool's on-chain address. The attributes field is
// authoritative; older payloads only encode it as the suffix of the
// network-prefixed id ("base_0xabc...").
func poolAddress(attr, id string) string {
	if attr != "" {
		return attr
	}
	if i := strings.LastIndex(id, "_"); i >= 0 {
		return id[i+1:]
	}
	return ""
}

func floatOrZero(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
