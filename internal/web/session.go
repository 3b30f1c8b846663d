package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Mr-Dark-debug/agenda/internal/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionCookie names the cookie carrying the browser's session ID.
const SessionCookie = "agenda_session"

type sessionKey struct{}

// SessionFromContext returns the session ID set by the middleware.
func SessionFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionKey{}).(string)
	return id, ok
}

// sessionMiddleware attaches a session to every request, creating one
// (and its cookie) for new, unknown or expired browsers. Known sessions
// have their last activity refreshed.
func (s *Server) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(SessionCookie); err == nil {
			if _, err := uuid.Parse(c.Value); err == nil {
				id = c.Value
			}
		}

		if id != "" {
			err := s.store.TouchSession(id, s.now())
			switch {
			case errors.Is(err, database.ErrSessionNotFound):
				id = ""
			case err != nil:
				s.logger.Error("session lookup failed", zap.String("session", id), zap.Error(err))
				http.Error(w, "session lookup failed", http.StatusInternalServerError)
				return
			}
		}

		if id == "" {
			id = uuid.NewString()
			if err := s.store.CreateSession(id); err != nil {
				s.logger.Error("session create failed", zap.Error(err))
				http.Error(w, "session create failed", http.StatusInternalServerError)
				return
			}
			s.logger.Debug("session created", zap.String("session", id))
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    id,
				Path:     "/",
				MaxAge:   int(s.ttl / time.Second),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), sessionKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
