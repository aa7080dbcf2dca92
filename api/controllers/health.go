package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/mrtribble/brewlist/api/responses"
	"github.com/mrtribble/brewlist/pkg/config"
	"github.com/mrtribble/brewlist/pkg/db"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Brewlist-Env", cfg.App.Env)
		responses.WriteJSON(w, http.StatusOK, map[string]string{"status": "live"})
	}
}

// HealthReady reports database status alongside readiness. A nil pinger
// means the process came up without a configured database.
func HealthReady(cfg *config.Config, pinger db.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Brewlist-Env", cfg.App.Env)

		dbStatus := "ok"
		if pinger == nil {
			dbStatus = "unconfigured"
		} else {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := pinger.Ping(ctx); err != nil {
				dbStatus = "unreachable"
			}
		}

		responses.WriteJSON(w, http.StatusOK, map[string]string{
			"status":   "ready",
			"database": dbStatus,
		})
	}
}
