package dashboard

import (
	"Steelcheck/internal/logger"
	"Steelcheck/internal/metrics"
	"Steelcheck/internal/ratelimit"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type RouterOptions struct {
	StaticDir string
	RateLimit float64
	RateBurst int
	// Limiter overrides RateLimit/RateBurst when set.
	Limiter   *ratelimit.IPRateLimiter
}

func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// NewRouter fills a nil h.Log or log with a no-op logger.
func NewRouter(h *Handler, opts RouterOptions, log *zap.Logger) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	if h.Log == nil {
		h.Log = log
	}
	r := mux.NewRouter()
	r.Use(metrics.Middleware, logger.Middleware(log))

	limiter := opts.Limiter
	if limiter == nil {
		limiter = ratelimit.NewIPRateLimiter(rate.Limit(opts.RateLimit), opts.RateBurst)
	}
	limited := func(f http.HandlerFunc) http.Handler {
		return limiter.LimitMiddleware(f)
	}

	r.HandleFunc("/healthz", h.Health).Methods("GET")
	r.Handle("/metrics", metrics.Handler()).Methods("GET")

	r.Handle("/calculate", limited(h.Calculate)).Methods("POST")
	r.Handle("/complete-analysis", limited(h.CompleteAnalysis)).Methods("POST")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/steel-grades", h.SteelGrades).Methods("GET")
	api.HandleFunc("/load-combinations", h.LoadCombinations).Methods("GET")
	api.HandleFunc("/deflection-limits", h.DeflectionLimits).Methods("GET")
	api.HandleFunc("/safety-factors", h.SafetyFactors).Methods("GET")
	api.Handle("/tools/{tool}/calc", limited(h.Tool)).Methods("POST")
	api.Handle("/report/pdf", limited(h.ReportPDF)).Methods("POST")
	api.Handle("/batch/loads", limited(h.BatchLoads)).Methods("POST")
	api.HandleFunc("/batch/template", h.BatchTemplate).Methods("GET")

	if opts.StaticDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(opts.StaticDir)))
	}
	return CORS(r)
}
