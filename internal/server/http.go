package server

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/triviaworks/trivia-api/internal/config"
	"github.com/triviaworks/trivia-api/internal/question"
	"github.com/triviaworks/trivia-api/internal/quiz"
)

// NewHTTPServer wires all routes and the middleware chain for the API
// service.
func NewHTTPServer(
	cfg *config.App,
	logger zerolog.Logger,
	pool *pgxpool.Pool,
	redisClient *redis.Client,
	questionHandlers *question.HTTPHandlers,
	quizHandler *quiz.HTTPHandler,
) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := pool.Ping(r.Context()); err != nil {
			logger.Error().Err(err).Msg("health check: postgres ping failed")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"degraded"}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("/metrics", promhttp.Handler())

	limiter := NewRateLimiter(redisClient, logger)
	limit := limiter.Limit(RateLimitConfig{
		MaxRequests: cfg.RateLimit.MaxRequests,
		Window:      cfg.RateLimit.Window,
		KeyPrefix:   cfg.RateLimit.KeyPrefix,
	})

	mux.HandleFunc("/v1/categories", questionHandlers.HandleCategories)
	mux.HandleFunc("/v1/categories/{id}/questions", questionHandlers.HandleCategoryQuestions)
	mux.Handle("/v1/questions", limitWrites(limit, http.HandlerFunc(questionHandlers.HandleQuestions)))
	mux.Handle("/v1/questions/{id}", limit(http.HandlerFunc(questionHandlers.HandleQuestionByID)))
	mux.HandleFunc("/v1/quizzes", quizHandler.HandlePlay)

	handler := Chain(mux,
		RequestLogger(logger),
		RequestID(),
		CORS(cfg.CORS),
		Metrics(),
	)

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler,
	}
}

// limitWrites rate-limits only the mutating methods of a mixed-method route;
// GET listings stay unthrottled.
func limitWrites(limit func(http.Handler) http.Handler, next http.Handler) http.Handler {
	limited := limit(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		limited.ServeHTTP(w, r)
	})
}
