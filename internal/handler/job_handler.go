package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/database/models"
	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/database/service"
)

// JobHandler handles job posting requests
type JobHandler struct {
	jobService service.JobService
	logger     *slog.Logger
}

// NewJobHandler creates a new job handler
func NewJobHandler(jobService service.JobService, logger *slog.Logger) *JobHandler {
	return &JobHandler{
		jobService: jobService,
		logger:     logger,
	}
}

type CreateJobRequest struct {
	Company   string   `json:"company" binding:"required"`
	Logo      string   `json:"logo" binding:"required"`
	Position  string   `json:"position" binding:"required"`
	Role      string   `json:"role" binding:"required"`
	Level     string   `json:"level" binding:"required"`
	PostedAt  string   `json:"postedAt" binding:"required"`
	Contract  string   `json:"contract" binding:"required"`
	Location  string   `json:"location" binding:"required"`
	Languages []string `json:"languages"`
	Tools     []string `json:"tools"`
}

// ListJobs handles GET /api/job
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.jobService.ListJobs(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// CreateJob handles POST /api/job
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("⚠️ [JobHandler] Invalid job request", "error", err)
		badRequest(c, "Company, logo, position, role, level, postedAt, contract and location are required.")
		return
	}

	job, err := h.jobService.CreateJob(c.Request.Context(), &models.Job{
		Company:   req.Company,
		Logo:      req.Logo,
		Position:  req.Position,
		Role:      req.Role,
		Level:     req.Level,
		PostedAt:  req.PostedAt,
		Contract:  req.Contract,
		Location:  req.Location,
		Languages: req.Languages,
		Tools:     req.Tools,
	})
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// DeleteJob handles DELETE /api/job/:id
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		badRequest(c, msgInvalidID)
		return
	}

	job, err := h.jobService.DeleteJob(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, job)
}
