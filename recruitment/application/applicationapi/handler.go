package applicationapi

import (
	"errors"
	"fmt"
	"io"

	"github.com/Abraxas-365/crewdesk/pkg/iam/auth"
	"github.com/Abraxas-365/crewdesk/pkg/kernel"
	"github.com/Abraxas-365/crewdesk/recruitment/application"
	"github.com/Abraxas-365/crewdesk/recruitment/application/applicationsrv"
	"github.com/Abraxas-365/crewdesk/recruitment/dashboard"
	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

// Handlers provides HTTP handlers for application operations
type Handlers struct {
	service *applicationsrv.ApplicationService
}

// NewHandlers creates a new application handlers instance
func NewHandlers(service *applicationsrv.ApplicationService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// ApplicationListResponse is one page of the admin applications table
type ApplicationListResponse struct {
	Items        []application.ApplicationResponse `json:"items"`
	PageInfo     dashboard.PageInfo                `json:"page_info"`
	Sort         dashboard.SortState               `json:"sort"`
	Capabilities dashboard.Controls                `json:"capabilities"`
}

// GroupedApplicationsResponse is the by-job view of the applications table
type GroupedApplicationsResponse struct {
	Groups       []dashboard.JobGroup `json:"groups"`
	Total        int                  `json:"total"`
	Capabilities dashboard.Controls   `json:"capabilities"`
}

// ============================================================================
// Public
// ============================================================================

// SubmitApplication accepts the careers form with an optional resume file
// POST /api/careers/applications
func (h *Handlers) SubmitApplication(c *fiber.Ctx) error {
	var req application.SubmitApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resume, err := readResume(c)
	if err != nil {
		return err
	}

	app, err := h.service.Submit(c.UserContext(), req, resume)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(app.ToResponse())
}

// ============================================================================
// Admin
// ============================================================================

// ListApplications returns the filtered, sorted, paginated table
// GET /api/admin/applications
func (h *Handlers) ListApplications(c *fiber.Ctx) error {
	sess := auth.GetSession(c)

	apps, err := h.service.ListApplications(c.UserContext(), sess)
	if err != nil {
		return err
	}

	sort := dashboard.ParseSortState(c.Query("sort"), c.Query("direction"))
	if !dashboard.IsApplicationColumn(sort.Column) {
		sort = dashboard.SortState{}
	}
	pagination := parsePaginationOptions(c)

	rows := dashboard.SortApplications(dashboard.FilterApplications(apps, parseFilter(c)), sort)
	window, info := dashboard.Paginate(rows, pagination.Page, pagination.PageSize)

	return c.JSON(ApplicationListResponse{
		Items:        toResponses(window),
		PageInfo:     info,
		Sort:         sort,
		Capabilities: dashboard.Capabilities(sess),
	})
}

// ListGroupedApplications groups the filtered table by job title
// GET /api/admin/applications/grouped
func (h *Handlers) ListGroupedApplications(c *fiber.Ctx) error {
	sess := auth.GetSession(c)

	apps, err := h.service.ListApplications(c.UserContext(), sess)
	if err != nil {
		return err
	}

	rows := dashboard.FilterApplications(apps, parseFilter(c))

	return c.JSON(GroupedApplicationsResponse{
		Groups:       dashboard.GroupByJob(rows),
		Total:        len(rows),
		Capabilities: dashboard.Capabilities(sess),
	})
}

// GetApplication retrieves an application by ID
// GET /api/admin/applications/:id
func (h *Handlers) GetApplication(c *fiber.Ctx) error {
	applicationID := kernel.ApplicationID(c.Params("id"))
	if applicationID == "" {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	app, err := h.service.GetApplication(c.UserContext(), auth.GetSession(c), applicationID)
	if err != nil {
		return err
	}

	return c.JSON(app.ToResponse())
}

// UpdateApplicationStatus sets the status of an application
// PUT /api/admin/applications/:id/status
func (h *Handlers) UpdateApplicationStatus(c *fiber.Ctx) error {
	var req application.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	app, err := h.service.SetStatus(c.UserContext(), auth.GetSession(c), kernel.ApplicationID(c.Params("id")), req.Status)
	if err != nil {
		return err
	}

	return c.JSON(app.ToResponse())
}

// BulkUpdateStatus sets one status on many applications
// POST /api/admin/applications/bulk/status
func (h *Handlers) BulkUpdateStatus(c *fiber.Ctx) error {
	var req application.BulkUpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	result, err := h.service.BulkSetStatus(c.UserContext(), auth.GetSession(c), req)
	if err != nil {
		return err
	}

	return c.JSON(result)
}

// DeleteApplication handles DELETE /api/admin/applications/:id
func (h *Handlers) DeleteApplication(c *fiber.Ctx) error {
	if err := h.service.DeleteApplication(c.UserContext(), auth.GetSession(c), kernel.ApplicationID(c.Params("id"))); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// BulkDelete removes many applications in one statement
// POST /api/admin/applications/bulk/delete
func (h *Handlers) BulkDelete(c *fiber.Ctx) error {
	var req application.BulkDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	result, err := h.service.DeleteApplications(c.UserContext(), auth.GetSession(c), req.ApplicationIDs)
	if err != nil {
		return err
	}

	return c.JSON(result)
}

// DownloadResume streams the stored resume
// GET /api/admin/applications/:id/resume
func (h *Handlers) DownloadResume(c *fiber.Ctx) error {
	stream, app, err := h.service.DownloadResume(c.UserContext(), auth.GetSession(c), kernel.ApplicationID(c.Params("id")))
	if err != nil {
		return err
	}

	filename := app.ResumeFilename
	if filename == "" {
		filename = app.ResumePath
	}

	c.Set(fiber.HeaderContentType, applicationsrv.ResumeContentType(filename))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))

	// fasthttp closes the stream once the body is written
	return c.SendStream(stream)
}

// ResendNotification queues the notification email again
// POST /api/admin/applications/:id/notify
func (h *Handlers) ResendNotification(c *fiber.Ctx) error {
	if err := h.service.ResendNotification(c.UserContext(), auth.GetSession(c), kernel.ApplicationID(c.Params("id"))); err != nil {
		return err
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"message": "Notification queued",
	})
}

// ============================================================================
// Helper Functions
// ============================================================================

// readResume loads the optional resume part. A missing part is not an error.
func readResume(c *fiber.Ctx) (*application.ResumeUpload, error) {
	header, err := c.FormFile("resume")
	if err != nil {
		if errors.Is(err, fasthttp.ErrMissingFile) {
			return nil, nil
		}
		return nil, application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	file, err := header.Open()
	if err != nil {
		return nil, application.ErrInvalidAttachment().WithDetail("reason", err.Error())
	}
	defer file.Close()

	// one byte past the limit is enough to reject oversized files
	data, err := io.ReadAll(io.LimitReader(file, applicationsrv.MaxResumeSize+1))
	if err != nil {
		return nil, application.ErrInvalidAttachment().WithDetail("reason", err.Error())
	}

	return &application.ResumeUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get(fiber.HeaderContentType),
		Data:        data,
	}, nil
}

func parseFilter(c *fiber.Ctx) dashboard.ApplicationFilter {
	return dashboard.ApplicationFilter{
		Status:      application.ApplicationStatus(c.Query("status")),
		Nationality: kernel.Nationality(c.Query("nationality")),
		JobTitle:    c.Query("job_title"),
		Search:      c.Query("search"),
	}
}

// parsePaginationOptions extracts pagination options from query parameters
func parsePaginationOptions(c *fiber.Ctx) kernel.PaginationOptions {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	return kernel.PaginationOptions{
		Page:     page,
		PageSize: dashboard.NormalizePageSize(c.QueryInt("page_size", dashboard.DefaultPageSize)),
	}
}

func toResponses(apps []application.Application) []application.ApplicationResponse {
	responses := make([]application.ApplicationResponse, 0, len(apps))
	for i := range apps {
		responses = append(responses, apps[i].ToResponse())
	}
	return responses
}

// RegisterRoutes registers all application routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	app.Post("/api/careers/applications", handlers.SubmitApplication)

	api := app.Group("/api/admin/applications", authMiddleware.Authenticate())

	api.Get("/", handlers.ListApplications)
	api.Get("/grouped", handlers.ListGroupedApplications)
	api.Post("/bulk/status", handlers.BulkUpdateStatus)
	api.Post("/bulk/delete", handlers.BulkDelete)
	api.Get("/:id", handlers.GetApplication)
	api.Put("/:id/status", handlers.UpdateApplicationStatus)
	api.Delete("/:id", handlers.DeleteApplication)
	api.Get("/:id/resume", handlers.DownloadResume)
	api.Post("/:id/notify", handlers.ResendNotification)
}
