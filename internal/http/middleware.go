package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/nikolayk812/tilequote/internal/domain"
	"go.uber.org/zap"
)

const (
	HeaderUserID    = "X-User-ID"
	HeaderSessionID = "X-Session-ID"
)

type contextKey string

const userKey contextKey = "user"

type UserLookup interface {
	GetUser(ctx context.Context, userID uuid.UUID) (domain.User, error)
}

// Authenticate resolves the user named by the X-User-ID header set by the upstream proxy.
func Authenticate(users UserLookup, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := uuid.Parse(r.Header.Get(HeaderUserID))
			if err != nil {
				respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
				return
			}

			user, err := users.GetUser(r.Context(), userID)
			if errors.Is(err, domain.ErrNotFound) {
				respondError(w, http.StatusUnauthorized, "unauthorized", "unknown user")
				return
			}
			if err != nil {
				respondServiceError(w, logger, err)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects users without the given role. It must run after Authenticate.
func RequireRole(role domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := userFromContext(r.Context())
			if !ok {
				respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
				return
			}
			if user.Role != role {
				respondError(w, http.StatusForbidden, "forbidden", "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestLogger logs one line per request once the response is written.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Info("http request",
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)))
		})
	}
}

func userFromContext(ctx context.Context) (domain.User, bool) {
	user, ok := ctx.Value(userKey).(domain.User)
	return user, ok
}

// sessionID identifies the cart of the request. Without a header each user has one cart.
func sessionID(r *http.Request, user domain.User) string {
	if id := r.Header.Get(HeaderSessionID); id != "" {
		return id
	}
	return user.ID.String()
}
