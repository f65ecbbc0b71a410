package jobapi

import (
	"github.com/Abraxas-365/crewdesk/pkg/iam/auth"
	"github.com/Abraxas-365/crewdesk/pkg/kernel"
	"github.com/Abraxas-365/crewdesk/recruitment/dashboard"
	"github.com/Abraxas-365/crewdesk/recruitment/job"
	"github.com/Abraxas-365/crewdesk/recruitment/job/jobsrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for job operations
type Handlers struct {
	service *jobsrv.JobService
}

// NewHandlers creates a new job handlers instance
func NewHandlers(service *jobsrv.JobService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// JobListResponse is one page of the admin jobs table
type JobListResponse struct {
	Items    []job.JobResponse   `json:"items"`
	PageInfo dashboard.PageInfo  `json:"page_info"`
	Sort     dashboard.SortState `json:"sort"`
}

// ============================================================================
// Public
// ============================================================================

// ListActiveJobs lists open postings
// GET /api/careers/jobs
func (h *Handlers) ListActiveJobs(c *fiber.Ctx) error {
	jobs, err := h.service.ListActiveJobs(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(jobs)
}

// GetActiveJob returns one open posting
// GET /api/careers/jobs/:id
func (h *Handlers) GetActiveJob(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID == "" {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	j, err := h.service.GetActiveJob(c.UserContext(), jobID)
	if err != nil {
		return err
	}
	return c.JSON(j)
}

// ============================================================================
// Admin
// ============================================================================

// ListJobs returns the sorted, paginated jobs table
// GET /api/admin/jobs
func (h *Handlers) ListJobs(c *fiber.Ctx) error {
	jobs, err := h.service.ListJobs(c.UserContext(), auth.GetSession(c))
	if err != nil {
		return err
	}

	sort := dashboard.ParseSortState(c.Query("sort"), c.Query("direction"))
	if !dashboard.IsJobColumn(sort.Column) {
		sort = dashboard.SortState{}
	}
	pagination := parsePaginationOptions(c)

	window, info := dashboard.Paginate(dashboard.SortJobs(jobs, sort), pagination.Page, pagination.PageSize)

	items := make([]job.JobResponse, 0, len(window))
	for i := range window {
		items = append(items, window[i].ToResponse())
	}

	return c.JSON(JobListResponse{
		Items:    items,
		PageInfo: info,
		Sort:     sort,
	})
}

// GetJob returns a job in any status
// GET /api/admin/jobs/:id
func (h *Handlers) GetJob(c *fiber.Ctx) error {
	j, err := h.service.GetJob(c.UserContext(), auth.GetSession(c), kernel.JobID(c.Params("id")))
	if err != nil {
		return err
	}
	return c.JSON(j)
}

// GetJobStats returns application counts for a job
// GET /api/admin/jobs/:id/stats
func (h *Handlers) GetJobStats(c *fiber.Ctx) error {
	stats, err := h.service.GetJobStats(c.UserContext(), auth.GetSession(c), kernel.JobID(c.Params("id")))
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

// CreateJob creates a new posting
// POST /api/admin/jobs
func (h *Handlers) CreateJob(c *fiber.Ctx) error {
	var req job.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	created, err := h.service.CreateJob(c.UserContext(), auth.GetSession(c), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateJob applies a partial update
// PUT /api/admin/jobs/:id
func (h *Handlers) UpdateJob(c *fiber.Ctx) error {
	var req job.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	updated, err := h.service.UpdateJob(c.UserContext(), auth.GetSession(c), kernel.JobID(c.Params("id")), req)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

// CloseJob handles POST /api/admin/jobs/:id/close
func (h *Handlers) CloseJob(c *fiber.Ctx) error {
	j, err := h.service.CloseJob(c.UserContext(), auth.GetSession(c), kernel.JobID(c.Params("id")))
	if err != nil {
		return err
	}
	return c.JSON(j)
}

// ReopenJob handles POST /api/admin/jobs/:id/reopen
func (h *Handlers) ReopenJob(c *fiber.Ctx) error {
	j, err := h.service.ReopenJob(c.UserContext(), auth.GetSession(c), kernel.JobID(c.Params("id")))
	if err != nil {
		return err
	}
	return c.JSON(j)
}

// DeleteJob handles DELETE /api/admin/jobs/:id
func (h *Handlers) DeleteJob(c *fiber.Ctx) error {
	if err := h.service.DeleteJob(c.UserContext(), auth.GetSession(c), kernel.JobID(c.Params("id"))); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ============================================================================
// Helper Functions
// ============================================================================

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

// RegisterRoutes registers all job routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	careers := app.Group("/api/careers/jobs")
	careers.Get("/", handlers.ListActiveJobs)
	careers.Get("/:id", handlers.GetActiveJob)

	jobs := app.Group("/api/admin/jobs", authMiddleware.Authenticate())
	jobs.Get("/", handlers.ListJobs)
	jobs.Post("/", handlers.CreateJob)
	jobs.Get("/:id", handlers.GetJob)
	jobs.Get("/:id/stats", handlers.GetJobStats)
	jobs.Put("/:id", handlers.UpdateJob)
	jobs.Post("/:id/close", handlers.CloseJob)
	jobs.Post("/:id/reopen", handlers.ReopenJob)
	jobs.Delete("/:id", handlers.DeleteJob)
}
