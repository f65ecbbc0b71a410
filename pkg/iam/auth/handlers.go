package auth

import (
	"github.com/gofiber/fiber/v2"
)

type AuthHandlers struct {
	service *AuthService
}

func NewAuthHandlers(service *AuthService) *AuthHandlers {
	return &AuthHandlers{service: service}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies credentials and opens a session
// POST /api/auth/login
func (h *AuthHandlers) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	result, err := h.service.SignIn(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(result)
}

// Logout removes the current session
// POST /api/auth/logout
func (h *AuthHandlers) Logout(c *fiber.Ctx) error {
	authContext, ok := GetAuthContext(c)
	if !ok {
		return ErrUnauthorized()
	}

	h.service.ClearSession(c.UserContext(), authContext.SessionID)
	c.ClearCookie("access_token")

	return c.JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}

// Me returns the cached session of the caller
// GET /api/auth/me
func (h *AuthHandlers) Me(c *fiber.Ctx) error {
	authContext, ok := GetAuthContext(c)
	if !ok {
		return ErrUnauthorized()
	}

	return c.JSON(fiber.Map{
		"session": authContext.Session,
		"scopes":  ScopesOf(authContext.Session.Permissions),
	})
}

// RegisterRoutes registers the auth routes
func (h *AuthHandlers) RegisterRoutes(app *fiber.App, authMiddleware *TokenMiddleware) {
	api := app.Group("/api/auth")

	api.Post("/login", h.Login)
	api.Post("/logout", authMiddleware.Authenticate(), h.Logout)
	api.Get("/me", authMiddleware.Authenticate(), h.Me)
}
