package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gamerfleet/merch-backend/internal/errors"
	"github.com/gamerfleet/merch-backend/internal/models"
	"github.com/gamerfleet/merch-backend/internal/utils/response"
	"github.com/golang-jwt/jwt/v5"
)

// AuthenticatedHandler receives the resolved identity as an explicit
// argument; protected handlers never dig it out of the request context.
type AuthenticatedHandler func(w http.ResponseWriter, r *http.Request, identity *models.Identity)

// Session verifies the session cookie left behind by the external OpenID
// Connect layer. The cookie payload is an HMAC-signed claim set carrying the
// provider's subject id and the user's email; this service only checks the
// signature and reads those two fields.
type Session struct {
	secret     []byte
	cookieName string
}

func NewSession(secret []byte, cookieName string) *Session {
	return &Session{secret: secret, cookieName: cookieName}
}

func (s *Session) Authenticate(next AuthenticatedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		cookie, err := r.Cookie(s.cookieName)
		if err != nil {
			logger.Warn("Missing session cookie")
			response.Error(w, errors.UnauthorizedError("Unauthorized"))
			return
		}

		claims := &models.SessionClaims{}

		token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.BadRequestError("unexpected signing method")
			}
			return s.secret, nil
		})

		if err != nil || !token.Valid {
			logger.Warn("Invalid session cookie", slog.Any("error", err))
			response.Error(w, errors.UnauthorizedError("Unauthorized"))
			return
		}

		if claims.Subject == "" {
			logger.Warn("Session cookie without a subject")
			response.Error(w, errors.UnauthorizedError("Unauthorized"))
			return
		}

		identity := &models.Identity{
			Subject: claims.Subject,
			Email:   claims.Email,
		}

		requestScopedLogger := logger.With(slog.String("subject", identity.Subject))
		ctx := context.WithValue(r.Context(), LoggerKey, requestScopedLogger)

		next(w, r.WithContext(ctx), identity)
	}
}
