package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vishalsachdev/openclaw-dashboard/internal/feed"
)

// DeployerActivity serves the per-day deployment series plus derived
// growth numbers. Week-over-week growth is null when undefined.
func DeployerActivity(engine *feed.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days := windowDays(r)
		series := engine.DeployerActivity(days)

		var growth *float64
		if g, err := feed.WeekOverWeekGrowth(series); err == nil {
			growth = &g
		}

		cumulative := 0
		if len(series) > 0 {
			cumulative = series[len(series)-1].Cumulative
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"days":             days,
			"live":             engine.Live(),
			"points":           series,
			"wow_growth_pct":   growth,
			"cumulative_total": cumulative,
		})
	}
}
