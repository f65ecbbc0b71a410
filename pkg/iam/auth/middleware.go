package auth

import (
	"strings"

	"github.com/Abraxas-365/crewdesk/pkg/errx"
	"github.com/Abraxas-365/crewdesk/pkg/iam/session"
	"github.com/Abraxas-365/crewdesk/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

const localsKey = "auth"

// AuthContext is stored in fiber locals for authenticated requests
type AuthContext struct {
	AdminID   kernel.AdminID
	SessionID kernel.SessionID
	Session   *session.AdminSession
}

func (a *AuthContext) IsValid() bool {
	return a != nil && !a.AdminID.IsEmpty() && a.Session != nil
}

// TokenMiddleware authenticates admin bearer tokens against the session store
type TokenMiddleware struct {
	tokens   TokenService
	sessions SessionStore
}

func NewTokenMiddleware(tokens TokenService, sessions SessionStore) *TokenMiddleware {
	return &TokenMiddleware{
		tokens:   tokens,
		sessions: sessions,
	}
}

func (m *TokenMiddleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return ErrUnauthorized()
		}

		claims, err := m.tokens.ValidateAccessToken(token)
		if err != nil {
			return err
		}

		sess, err := m.sessions.Load(c.UserContext(), claims.SessionID)
		if err != nil {
			if errx.IsCode(err, session.CodeSessionNotFound) {
				return ErrUnauthorized().WithDetail("reason", "session expired")
			}
			return err
		}
		if sess.ID != claims.AdminID {
			return ErrTokenValidationFailed().WithDetail("error", "token does not match session")
		}

		c.Locals(localsKey, &AuthContext{
			AdminID:   claims.AdminID,
			SessionID: claims.SessionID,
			Session:   sess,
		})
		return c.Next()
	}
}

func extractToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" && parts[1] != "" {
			return parts[1]
		}
	}
	return c.Cookies("access_token")
}

// GetAuthContext helper to extract auth context from Fiber
func GetAuthContext(c *fiber.Ctx) (*AuthContext, bool) {
	authContext, ok := c.Locals(localsKey).(*AuthContext)
	return authContext, ok && authContext.IsValid()
}

// GetSession returns the admin session of the request, or nil
func GetSession(c *fiber.Ctx) *session.AdminSession {
	authContext, ok := GetAuthContext(c)
	if !ok {
		return nil
	}
	return authContext.Session
}
