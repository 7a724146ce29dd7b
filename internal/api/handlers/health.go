package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const serviceName = "gnosis-metadata"

type HealthHandler struct {
	db       *pgxpool.Pool
	redis    *redis.Client
	provider string
}

func NewHealthHandler(db *pgxpool.Pool, rdb *redis.Client, provider string) *HealthHandler {
	return &HealthHandler{db: db, redis: rdb, provider: provider}
}

func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": serviceName})
}

// Readyz reports dependency health. The redis cache is best-effort, so
// an unreachable redis degrades the report without failing readiness;
// only the database gates it.
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{}
	status := http.StatusOK

	if h.db != nil {
		if err := h.db.Ping(r.Context()); err != nil {
			checks["database"] = "unhealthy: " + err.Error()
			status = http.StatusServiceUnavailable
		} else {
			checks["database"] = "ok"
		}
	}

	if h.redis != nil {
		if err := h.redis.Ping(r.Context()).Err(); err != nil {
			checks["redis"] = "degraded: " + err.Error()
		} else {
			checks["redis"] = "ok"
		}
	}

	writeJSON(w, status, map[string]interface{}{
		"status":       statusStr(status),
		"service":      serviceName,
		"llm_provider": h.provider,
		"checks":       checks,
	})
}

func statusStr(code int) string {
	if code == http.StatusOK {
		return "ok"
	}
	return "unhealthy"
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
