package httpapi

import (
	"net/http"

	"github.com/wicketline/cricket-stats/internal/platform/logging"
	"github.com/wicketline/cricket-stats/internal/usecase"
)

func NewRouter(
	handler *Handler,
	auditService *usecase.AuditLogService,
	logger *logging.Logger,
	corsAllowedOrigins []string,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerDomainRoutes(mux, handler)

	audited := AuditLogging(auditService, logger, recoverPanic(logger, mux))
	return RequestTracing(RequestLogging(logger, CORS(corsAllowedOrigins, audited)))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
