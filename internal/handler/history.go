package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vishalsachdev/openclaw-dashboard/internal/feed"
)

const (
	defaultWindowDays = 30
	maxWindowDays     = 90
)

// PriceHistory serves a daily close/volume series for one token.
func PriceHistory(engine *feed.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		symbol := chi.URLParam(r, "symbol")
		days := windowDays(r)

		points, err := engine.PriceHistory(symbol, days)
		if err != nil {
			http.Error(w, `{"error":"unknown token"}`, http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"symbol": symbol,
			"days":   days,
			"live":   engine.Live(),
			"points": points,
		})
	}
}

// windowDays reads the days query parameter, clamped to [1, 90].
func windowDays(r *http.Request) int {
	days := defaultWindowDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			days = n
		}
	}
	if days < 1 {
		days = 1
	}
	if days > maxWindowDays {
		days = maxWindowDays
	}
	return days
}
