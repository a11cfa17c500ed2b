package middleware

import (
	"sync"
	"time"

	"expense-tracker/internal/errors"
	"expense-tracker/internal/handlers"
	"expense-tracker/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// activeUserWindow is how long an authenticated user counts as active
// for the active_users gauge.
const activeUserWindow = 5 * time.Minute

type activeUserTracker struct {
	mu       sync.Mutex
	lastSeen map[uuid.UUID]time.Time
}

func newActiveUserTracker() *activeUserTracker {
	return &activeUserTracker{lastSeen: make(map[uuid.UUID]time.Time)}
}

// touch marks the user active and returns the current active count.
func (t *activeUserTracker) touch(userID uuid.UUID) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	t.lastSeen[userID] = now
	for id, seen := range t.lastSeen {
		if now.Sub(seen) > activeUserWindow {
			delete(t.lastSeen, id)
		}
	}
	return len(t.lastSeen)
}

// RequireAuth creates a middleware that requires a valid JWT token.
// On success the parsed user identity is stored in the request context
// under "user_id", which every protected handler reads.
func RequireAuth(tokenService services.TokenServiceInterface, metrics services.MetricsRecorderInterface) echo.MiddlewareFunc {
	tracker := newActiveUserTracker()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				if err == services.ErrExpiredToken {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Invalid user ID in token"))
			}

			c.Set("user_id", userID)
			c.Set("user_email", claims.Email)
			c.Set("user_role", claims.Role)

			if metrics != nil {
				metrics.RecordGauge("active_users", float64(tracker.touch(userID)), nil)
			}

			return next(c)
		}
	}
}
