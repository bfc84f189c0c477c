package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vishalsachdev/openclaw-dashboard/internal/feed"
)

// Ecosystem serves the live aggregate deployer summary. There is no sample
// fallback here; without live data the endpoint reports unavailability.
func Ecosystem(engine *feed.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eco, err := engine.Ecosystem()
		if err != nil {
			http.Error(w, `{"error":"live data unavailable"}`, http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(eco)
	}
}
