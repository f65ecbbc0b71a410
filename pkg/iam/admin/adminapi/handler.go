package adminapi

import (
	"github.com/Abraxas-365/crewdesk/pkg/iam/admin"
	"github.com/Abraxas-365/crewdesk/pkg/iam/admin/adminsrv"
	"github.com/Abraxas-365/crewdesk/pkg/iam/auth"
	"github.com/Abraxas-365/crewdesk/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

type AdminHandlers struct {
	service *adminsrv.AdminService
}

func NewAdminHandlers(service *adminsrv.AdminService) *AdminHandlers {
	return &AdminHandlers{service: service}
}

// Register handles public self registration
// POST /api/admin/register
func (h *AdminHandlers) Register(c *fiber.Ctx) error {
	var req admin.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return admin.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.Register(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List handles GET /api/admin/users
func (h *AdminHandlers) List(c *fiber.Ctx) error {
	resp, err := h.service.List(c.UserContext(), auth.GetSession(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Approve handles POST /api/admin/users/:id/approve
func (h *AdminHandlers) Approve(c *fiber.Ctx) error {
	resp, err := h.service.Approve(c.UserContext(), auth.GetSession(c), kernel.AdminID(c.Params("id")))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Reject handles POST /api/admin/users/:id/reject
func (h *AdminHandlers) Reject(c *fiber.Ctx) error {
	if err := h.service.Reject(c.UserContext(), auth.GetSession(c), kernel.AdminID(c.Params("id"))); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateRole handles PUT /api/admin/users/:id/role
func (h *AdminHandlers) UpdateRole(c *fiber.Ctx) error {
	var req admin.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return admin.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.UpdateRole(c.UserContext(), auth.GetSession(c), kernel.AdminID(c.Params("id")), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// UpdatePermissions handles PUT /api/admin/users/:id/permissions
func (h *AdminHandlers) UpdatePermissions(c *fiber.Ctx) error {
	var req admin.UpdatePermissionsRequest
	if err := c.BodyParser(&req); err != nil {
		return admin.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.UpdatePermissions(c.UserContext(), auth.GetSession(c), kernel.AdminID(c.Params("id")), req.Permissions)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// UpdatePassword handles PUT /api/admin/users/:id/password
func (h *AdminHandlers) UpdatePassword(c *fiber.Ctx) error {
	var req admin.UpdatePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return admin.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	if err := h.service.UpdatePassword(c.UserContext(), auth.GetSession(c), kernel.AdminID(c.Params("id")), req.Password); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Password updated",
	})
}

// Delete handles DELETE /api/admin/users/:id
func (h *AdminHandlers) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), auth.GetSession(c), kernel.AdminID(c.Params("id"))); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RegisterRoutes registers admin account routes
func (h *AdminHandlers) RegisterRoutes(app *fiber.App, authMiddleware *auth.TokenMiddleware) {
	app.Post("/api/admin/register", h.Register)

	users := app.Group("/api/admin/users", authMiddleware.Authenticate())

	users.Get("/", h.List)
	users.Post("/:id/approve", h.Approve)
	users.Post("/:id/reject", h.Reject)
	users.Put("/:id/role", h.UpdateRole)
	users.Put("/:id/permissions", h.UpdatePermissions)
	users.Put("/:id/password", h.UpdatePassword)
	users.Delete("/:id", h.Delete)
}
