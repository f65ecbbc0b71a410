package settingsapi

import (
	"github.com/Abraxas-365/crewdesk/pkg/iam/auth"
	"github.com/Abraxas-365/crewdesk/pkg/kernel"
	"github.com/Abraxas-365/crewdesk/recruitment/settings"
	"github.com/Abraxas-365/crewdesk/recruitment/settings/settingssrv"
	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	service *settingssrv.SettingsService
}

func NewHandlers(service *settingssrv.SettingsService) *Handlers {
	return &Handlers{service: service}
}

// FormOptions handles GET /api/careers/options
func (h *Handlers) FormOptions(c *fiber.Ctx) error {
	form, err := h.service.FormOptions(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(form)
}

// ActiveAgencies handles GET /api/careers/agencies
func (h *Handlers) ActiveAgencies(c *fiber.Ctx) error {
	agencies, err := h.service.ActiveAgencies(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(agencies)
}

// ============================================================================
// Email recipients
// ============================================================================

func (h *Handlers) ListRecipients(c *fiber.Ctx) error {
	recipients, err := h.service.ListRecipients(c.UserContext(), auth.GetSession(c))
	if err != nil {
		return err
	}
	return c.JSON(recipients)
}

func (h *Handlers) CreateRecipient(c *fiber.Ctx) error {
	var req settings.CreateRecipientRequest
	if err := c.BodyParser(&req); err != nil {
		return settings.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	recipient, err := h.service.CreateRecipient(c.UserContext(), auth.GetSession(c), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(recipient)
}

func (h *Handlers) UpdateRecipient(c *fiber.Ctx) error {
	var req settings.UpdateRecipientRequest
	if err := c.BodyParser(&req); err != nil {
		return settings.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	recipient, err := h.service.UpdateRecipient(c.UserContext(), auth.GetSession(c), kernel.RecipientID(c.Params("id")), req)
	if err != nil {
		return err
	}
	return c.JSON(recipient)
}

func (h *Handlers) DeleteRecipient(c *fiber.Ctx) error {
	if err := h.service.DeleteRecipient(c.UserContext(), auth.GetSession(c), kernel.RecipientID(c.Params("id"))); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ============================================================================
// Agencies
// ============================================================================

func (h *Handlers) ListAgencies(c *fiber.Ctx) error {
	agencies, err := h.service.ListAgencies(c.UserContext(), auth.GetSession(c))
	if err != nil {
		return err
	}
	return c.JSON(agencies)
}

func (h *Handlers) CreateAgency(c *fiber.Ctx) error {
	var req settings.CreateAgencyRequest
	if err := c.BodyParser(&req); err != nil {
		return settings.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	agency, err := h.service.CreateAgency(c.UserContext(), auth.GetSession(c), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(agency)
}

func (h *Handlers) UpdateAgency(c *fiber.Ctx) error {
	var req settings.UpdateAgencyRequest
	if err := c.BodyParser(&req); err != nil {
		return settings.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	agency, err := h.service.UpdateAgency(c.UserContext(), auth.GetSession(c), kernel.AgencyID(c.Params("id")), req)
	if err != nil {
		return err
	}
	return c.JSON(agency)
}

func (h *Handlers) DeleteAgency(c *fiber.Ctx) error {
	if err := h.service.DeleteAgency(c.UserContext(), auth.GetSession(c), kernel.AgencyID(c.Params("id"))); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ============================================================================
// Option lists
// ============================================================================

func optionKind(c *fiber.Ctx) settings.OptionKind {
	return settings.OptionKind(c.Params("kind"))
}

func (h *Handlers) ListOptions(c *fiber.Ctx) error {
	options, err := h.service.ListOptions(c.UserContext(), auth.GetSession(c), optionKind(c))
	if err != nil {
		return err
	}
	return c.JSON(options)
}

func (h *Handlers) CreateOption(c *fiber.Ctx) error {
	var req settings.OptionRequest
	if err := c.BodyParser(&req); err != nil {
		return settings.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	option, err := h.service.CreateOption(c.UserContext(), auth.GetSession(c), optionKind(c), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(option)
}

func (h *Handlers) RenameOption(c *fiber.Ctx) error {
	var req settings.OptionRequest
	if err := c.BodyParser(&req); err != nil {
		return settings.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	option, err := h.service.RenameOption(c.UserContext(), auth.GetSession(c), optionKind(c), kernel.OptionID(c.Params("id")), req)
	if err != nil {
		return err
	}
	return c.JSON(option)
}

func (h *Handlers) DeleteOption(c *fiber.Ctx) error {
	if err := h.service.DeleteOption(c.UserContext(), auth.GetSession(c), optionKind(c), kernel.OptionID(c.Params("id"))); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RegisterRoutes registers public form data and admin settings routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	app.Get("/api/careers/options", handlers.FormOptions)
	app.Get("/api/careers/agencies", handlers.ActiveAgencies)

	api := app.Group("/api/admin/settings", authMiddleware.Authenticate())

	api.Get("/recipients", handlers.ListRecipients)
	api.Post("/recipients", handlers.CreateRecipient)
	api.Put("/recipients/:id", handlers.UpdateRecipient)
	api.Delete("/recipients/:id", handlers.DeleteRecipient)

	api.Get("/agencies", handlers.ListAgencies)
	api.Post("/agencies", handlers.CreateAgency)
	api.Put("/agencies/:id", handlers.UpdateAgency)
	api.Delete("/agencies/:id", handlers.DeleteAgency)

	api.Get("/options/:kind", handlers.ListOptions)
	api.Post("/options/:kind", handlers.CreateOption)
	api.Put("/options/:kind/:id", handlers.RenameOption)
	api.Delete("/options/:kind/:id", handlers.DeleteOption)
}
