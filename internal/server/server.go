package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/veylan/EmberArmory_Go/internal/access"
	"github.com/veylan/EmberArmory_Go/internal/catalog"
	"github.com/veylan/EmberArmory_Go/internal/database"
	"github.com/veylan/EmberArmory_Go/internal/eventlog"
	"github.com/veylan/EmberArmory_Go/internal/handler"
	"github.com/veylan/EmberArmory_Go/internal/logger"
	"github.com/veylan/EmberArmory_Go/internal/metrics"
	"github.com/veylan/EmberArmory_Go/internal/progression"
	"github.com/veylan/EmberArmory_Go/internal/token"
)

type Server struct {
	httpServer         *http.Server
	dbPool             database.Pool
	tokenService       token.Service
	catalogService     catalog.Service
	progressionService progression.Service
	accessService      access.Service
	eventLogService    eventlog.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, tokenService token.Service, catalogService catalog.Service, progressionService progression.Service, accessService access.Service, eventLogService eventlog.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Ember currency routes
		r.Route("/embers", func(r chi.Router) {
			r.Post("/mint", handler.HandleMint(tokenService))
			r.Post("/approve", handler.HandleApprove(tokenService))
			r.Post("/transfer", handler.HandleTransfer(tokenService))
			r.Post("/transfer-from", handler.HandleTransferFrom(tokenService))
			r.Get("/balance", handler.HandleBalanceOf(tokenService))
			r.Get("/allowance", handler.HandleAllowance(tokenService))
			r.Get("/supply", handler.HandleTotalSupply(tokenService))
			r.Get("/decimals", handler.HandleDecimals(tokenService))
		})

		// Equipment catalog routes
		r.Route("/equipment", func(r chi.Router) {
			r.Post("/", handler.HandleCreateItem(catalogService))
			r.Post("/mint", handler.HandleMintEquipment(catalogService))
			r.Post("/mint-batch", handler.HandleMintEquipmentBatch(catalogService))
			r.Get("/cost", handler.HandleGetTierCost(catalogService))
			r.Get("/balance", handler.HandleEquipmentBalance(catalogService))
			r.Post("/balance-batch", handler.HandleEquipmentBalanceBatch(catalogService))
			r.Get("/supply", handler.HandleTotalMinted(catalogService))
			r.Get("/uri", handler.HandleGetMetadataURI(catalogService))
			r.Post("/uri", handler.HandleSetMetadataURI(catalogService))
		})

		// User progression routes
		r.Route("/users", func(r chi.Router) {
			r.Post("/register", handler.HandleRegisterUser(progressionService))
			r.Post("/upgrade", handler.HandleUpgrade(progressionService))
			r.Get("/rank", handler.HandleGetRank(progressionService))
		})

		// Shop routes
		r.Route("/shop", func(r chi.Router) {
			r.Post("/purchase", handler.HandlePurchase(progressionService))
			r.Post("/purchase-batch", handler.HandlePurchaseBatch(progressionService))
			r.Post("/deposit", handler.HandleDeposit(progressionService))
			r.Get("/preview-cost", handler.HandlePreviewCost(progressionService))
		})

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Post("/withdraw", handler.HandleWithdraw(progressionService))

			r.Route("/equipment", func(r chi.Router) {
				r.Post("/mint", handler.HandleAdminMintEquipment(progressionService))
				r.Post("/uri", handler.HandleAdminSetEquipmentURI(progressionService))
			})

			r.Route("/roles", func(r chi.Router) {
				r.Get("/", handler.HandleGetRoles(accessService))
				r.Post("/grant", handler.HandleGrantRole(accessService))
				r.Post("/revoke", handler.HandleRevokeRole(accessService))
			})
		})

		// Event log routes
		r.Get("/events", handler.HandleGetEvents(eventLogService))
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:             dbPool,
		tokenService:       tokenService,
		catalogService:     catalogService,
		progressionService: progressionService,
		accessService:      accessService,
		eventLogService:    eventLogService,
	}
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
		statusCode:     http.StatusOK, // default status
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

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		// Log request start with details
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		// Process request
		next.ServeHTTP(rw, r)

		// Log request completion with metrics
		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
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
