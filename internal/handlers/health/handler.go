package health

import (
	"net/http"

	"gor/infras/postgres"
	"gor/transport/http/response"

	"github.com/go-chi/chi/v5"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type Status struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

type Handler struct {
	db    *postgres.Connection
	redis *goRedis.Client
}

func New(db *postgres.Connection, redis *goRedis.Client) Handler {
	return Handler{
		db:    db,
		redis: redis,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// Health reports liveness of the server and its backing services.
// @Summary Health check
// @Description Report the health of the server, database, and cache.
// @Tags Health
// @Produce json
// @Success 200 {object} Status "Service is healthy"
// @Failure 503 {object} Status "Service is unhealthy"
// @Router /health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status := Status{
		Status:   "ok",
		Database: "ok",
		Cache:    "ok",
	}

	httpStatus := http.StatusOK

	if err := handler.db.Read.PingContext(ctx); err != nil {
		log.Warn().Err(err).Msg("database health check failed")

		status.Status = "degraded"
		status.Database = "unreachable"
		httpStatus = http.StatusServiceUnavailable
	}

	if err := handler.redis.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("cache health check failed")

		status.Status = "degraded"
		status.Cache = "unreachable"
		httpStatus = http.StatusServiceUnavailable
	}

	response.WithJSON(w, httpStatus, status)
}
