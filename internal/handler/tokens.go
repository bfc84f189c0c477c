package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vishalsachdev/openclaw-dashboard/internal/feed"
	"github.com/vishalsachdev/openclaw-dashboard/internal/registry"
)

// tokenView is a TokenRecord with derived risk and display fields attached
// for the frontend.
type tokenView struct {
	feed.TokenRecord
	RiskLabel        feed.RiskLabel `json:"risk_label"`
	RiskScore        float64        `json:"risk_score"`
	PriceDisplay     string         `json:"price_display"`
	MarketCapDisplay string         `json:"market_cap_display"`
	Volume24hDisplay string         `json:"volume_24h_display"`
}

func newTokenView(rec feed.TokenRecord) tokenView {
	label, score := feed.RiskScore(rec.Holders, rec.TopPoolLiquidityUSD, rec.MarketCapUSD)
	return tokenView{
		TokenRecord:      rec,
		RiskLabel:        label,
		RiskScore:        score,
		PriceDisplay:     feed.FormatPrice(rec.PriceUSD),
		MarketCapDisplay: feed.FormatUSD(rec.MarketCapUSD),
		Volume24hDisplay: feed.FormatUSD(rec.Volume24h),
	}
}

// Tokens serves the full metrics table, live or sample.
func Tokens(engine *feed.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records := engine.TokenTable()
		views := make([]tokenView, 0, len(records))
		for _, rec := range records {
			views = append(views, newTokenView(rec))
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"live":   engine.Live(),
			"tokens": views,
		})
	}
}

// TokenProfile serves one token's registry profile together with its
// current metrics row.
func TokenProfile(reg *registry.Registry, engine *feed.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		symbol := chi.URLParam(r, "symbol")
		tok, ok := reg.Token(symbol)
		if !ok {
			http.Error(w, `{"error":"unknown token"}`, http.StatusNotFound)
			return
		}

		var view *tokenView
		for _, rec := range engine.TokenTable() {
			if rec.Symbol == symbol {
				v := newTokenView(rec)
				view = &v
				break
			}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"profile": tok,
			"metrics": view,
			"live":    engine.Live(),
		})
	}
}
