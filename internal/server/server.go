package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/ChoreWheel_Go/internal/database"
	"github.com/osse101/ChoreWheel_Go/internal/handler"
	"github.com/osse101/ChoreWheel_Go/internal/logger"
	"github.com/osse101/ChoreWheel_Go/internal/metrics"
	"github.com/osse101/ChoreWheel_Go/internal/wheel"
)

// BuildInfo is reported by /version
type BuildInfo struct {
	ServiceName string
	Version     string
}

type Server struct {
	httpServer    *http.Server
	dbPool        database.Pool
	wheelService  wheel.Service
	configService wheel.ConfigService
}

// NewServer creates a new Server instance
func NewServer(port int, verifier TokenVerifier, trustedProxies []string, dbPool database.Pool, wheelService wheel.Service, configService wheel.ConfigService, build BuildInfo) *Server {
	r := chi.NewRouter()

	// Outermost first. Rate limiting needs the user id set by auth.
	detector := NewActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(AuthMiddleware(verifier, trustedProxies, detector))
	r.Use(RateLimitMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion(build.ServiceName, build.Version))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		wheelHandler := handler.NewWheelHandler(wheelService, configService)
		r.Route("/wheel", func(r chi.Router) {
			r.Post("/spin", wheelHandler.HandleSpin)
			r.Get("/spins", wheelHandler.HandleGetSpins)

			r.Get("/config", wheelHandler.HandleGetConfig)
			r.Put("/config", wheelHandler.HandleSaveConfig)

			r.Route("/custom-rewards", func(r chi.Router) {
				r.Post("/", wheelHandler.HandleCreateCustomReward)
				r.Put("/{id}", wheelHandler.HandleUpdateCustomReward)
				r.Delete("/{id}", wheelHandler.HandleDeleteCustomReward)
			})
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		dbPool:        dbPool,
		wheelService:  wheelService,
		configService: configService,
	}
}

// Handler exposes the router, mainly for httptest
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// quietPaths are polled by infrastructure and not worth a log line per hit
var quietPaths = []string{"/healthz", "/readyz", "/metrics"}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		for _, p := range quietPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		requestID := requestIDFor(r)
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(logger.HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", redactHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// requestIDFor reuses a caller-supplied UUID so client and server logs line up
func requestIDFor(r *http.Request) string {
	if id := r.Header.Get(logger.HeaderRequestID); uuid.Validate(id) == nil {
		return id
	}
	return logger.GenerateRequestID()
}

func redactHeaders(h http.Header) http.Header {
	sanitized := make(http.Header, len(h))
	for k, v := range h {
		sanitized[k] = v
		for _, secret := range RedactedHeaders {
			if strings.EqualFold(k, secret) {
				sanitized[k] = []string{RedactedValue}
				break
			}
		}
	}
	return sanitized
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
