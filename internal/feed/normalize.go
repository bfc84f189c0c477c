package feed

import (
	"time"

	"github.com/vishalsachdev/openclaw-dashboard/internal/registry"
)

// BuildTokenRecord combines gateway outputs for one token into a table row.
// Holder precedence: live count when positive, then the registry estimate,
// then zero. Top pool liquidity comes from the first pool, or zero when no
// pools were found.
func BuildTokenRecord(meta registry.Token, info TokenInfo, pools []Pool, liveHolders int) TokenRecord {
	holders := liveHolders
	if holders <= 0 {
		holders = meta.HoldersEstimate
	}
	if holders < 0 {
		holders = 0
	}

	var topLiquidity float64
	if len(pools) > 0 {
		topLiquidity = pools[0].ReserveUSD
	}

	return TokenRecord{
		Symbol:              meta.Symbol,
		Name:                meta.Name,
		Project:             meta.Project,
		Category:            meta.Category,
		Description:         meta.Description,
		Address:             meta.Address,
		PriceUSD:            info.PriceUSD,
		MarketCapUSD:        info.MarketCapUSD,
		FDVUSD:              info.FDVUSD,
		Volume24h:           info.Volume24h,
		PriceChange24h:      info.PriceChange24h,
		Holders:             holders,
		TopPoolLiquidityUSD: topLiquidity,
	}
}

// GroupDeployerActivity buckets raw deployer transactions into a gap-free
// daily series covering the `days` calendar days ending at now. Every
// day/version combination is present, zero-filled when no transactions
// landed on it. TotalTxs per day is the sum of the per-version counts.
func GroupDeployerActivity(txsByVersion map[string][]Transaction, versions []string, days int, now time.Time) []ActivityPoint {
	counts := make(map[string]map[string]int, len(versions)) // version -> day -> count
	for version, txs := range txsByVersion {
		byDay := make(map[string]int)
		for _, tx := range txs {
			byDay[tx.Timestamp.UTC().Format("2006-01-02")]++
		}
		counts[version] = byDay
	}

	start := now.UTC().Truncate(24 * time.Hour).AddDate(0, 0, -(days - 1))
	series := make([]ActivityPoint, 0, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		key := day.Format("2006-01-02")

		deployments := make(map[string]int, len(versions))
		total := 0
		for _, version := range versions {
			n := counts[version][key]
			deployments[version] = n
			total += n
		}
		series = append(series, ActivityPoint{
			Date:        day,
			Deployments: deployments,
			TotalTxs:    total,
		})
	}
	return series
}
