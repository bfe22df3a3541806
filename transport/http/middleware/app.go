package middleware

import (
	"fmt"
	"net/http"

	"github.com/go-chi/cors"

	"posada/config"
	"posada/infras/otel"
	"posada/shared/cache"
	"posada/shared/constant"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	CORS(next http.Handler) http.Handler
	RateLimit() func(http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cache  cache.Cache
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.Cache) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		cache:  cache,
	}
}

func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		spanName := fmt.Sprintf("%s %s", r.Method, r.URL.Path)

		ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, spanName)
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       r.URL.Path,
			"http.method":     r.Method,
			"http.user_agent": r.Header.Get(constant.RequestHeaderUserAgent),
			"http.host":       r.Host,
			"http.source":     a.getClientIP(r),
		})

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r.WithContext(ctx))

		scope.SetAttributes(map[string]any{
			"http.status_code": recorder.status,
		})
	})
}

func (a *appMiddleware) CORS(next http.Handler) http.Handler {
	if !a.config.App.CORS.Enable {
		return next
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   a.config.App.CORS.AllowedOrigins,
		AllowedMethods:   a.config.App.CORS.AllowedMethods,
		AllowedHeaders:   a.config.App.CORS.AllowedHeaders,
		AllowCredentials: a.config.App.CORS.AllowCredentials,
		MaxAge:           a.config.App.CORS.MaxAgeSeconds,
	})(next)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
