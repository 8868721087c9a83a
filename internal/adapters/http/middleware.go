package httpadapter

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	api "contactrouter/internal/api"
	"contactrouter/internal/domain"
	"contactrouter/internal/metrics"
)

// instrument records latency per route pattern and logs each request.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		elapsed := time.Since(start)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		metrics.ObserveRequest(route, strconv.Itoa(status), elapsed.Seconds())
		s.log.DebugContext(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"duration", elapsed,
			"request_id", middleware.GetReqID(r.Context()))
	})
}

// logOperation logs failed strict operations. Client mistakes log at info;
// anything else is an error.
func (s *Server) logOperation(f api.StrictHandlerFunc, operationID string) api.StrictHandlerFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request, request any) (any, error) {
		resp, err := f(ctx, w, r, request)
		if err == nil {
			return resp, nil
		}
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidRequest) {
			s.log.InfoContext(ctx, "request rejected", "operation", operationID, "err", err)
		} else {
			s.log.ErrorContext(ctx, "operation failed", "operation", operationID, "err", err)
		}
		return resp, err
	}
}
