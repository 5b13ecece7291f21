package preview

import (
	"errors"
	"strings"

	"feed-importer/core/job"
	"feed-importer/core/logger"
	"feed-importer/core/records"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for previews.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the preview routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/preview")
	group.Get("/health", h.HandleHealth)
	group.Get("/object", h.HandlePreviewObject)
	group.Get("/batch", h.HandlePreviewBatch)
	group.Post("/", h.HandlePreview)
}

// HandleHealth reports that the preview surface is up.
// @Summary Preview Health
// @Description Liveness check of the preview API.
// @Tags preview
// @Produce json
// @Success 200 {object} map[string]string "Status"
// @Router /preview/health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// HandlePreview previews the job document in the request body. YAML bodies
// are accepted when the content type says so; JSON otherwise.
// @Summary Preview Job
// @Description Resolves every field binding of the job and compares the result with the existing element. Nothing is written.
// @Tags preview
// @Accept json
// @Accept application/yaml
// @Produce json
// @Param job body job.Job true "Import job document"
// @Success 200 {object} Result "Preview result"
// @Failure 400 {object} map[string]string "Invalid job document"
// @Failure 404 {object} map[string]string "Element not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /preview [post]
func (h *Handler) HandlePreview(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	format := job.FormatJSON
	if strings.Contains(c.Get(fiber.HeaderContentType), "yaml") {
		format = job.FormatYAML
	}

	j, err := job.Parse(c.Body(), format)
	if err != nil {
		l.Warn("Rejected job document", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.service.Preview(c.Context(), j)
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(result)
}

// HandlePreviewObject previews a job document stored in the import bucket.
// @Summary Preview Stored Job
// @Description Loads a YAML or JSON job document from the import bucket and previews it.
// @Tags preview
// @Produce json
// @Param name query string true "Object name of the job document"
// @Success 200 {object} Result "Preview result"
// @Failure 400 {object} map[string]string "Missing name or unsupported format"
// @Failure 404 {object} map[string]string "Element not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /preview/object [get]
func (h *Handler) HandlePreviewObject(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	name := c.Query("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name parameter is required"})
	}

	result, err := h.service.PreviewObject(c.Context(), name)
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(result)
}

// HandlePreviewBatch previews every job document under a bucket prefix.
// @Summary Preview Job Batch
// @Description Previews every job document under a bucket prefix concurrently. Failing jobs are reported per item.
// @Tags preview
// @Produce json
// @Param prefix query string true "Object prefix holding job documents"
// @Param workers query int false "Concurrent previews" default(4)
// @Success 200 {object} BatchReport "Batch report"
// @Failure 400 {object} map[string]string "Missing prefix"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /preview/batch [get]
func (h *Handler) HandlePreviewBatch(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	prefix := c.Query("prefix")
	if prefix == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "prefix parameter is required"})
	}

	report, err := h.service.PreviewPrefix(c.Context(), prefix, c.QueryInt("workers", DefaultBatchWorkers))
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(report)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, job.ErrInvalidJob), errors.Is(err, job.ErrUnsupportedFormat):
		status = fiber.StatusBadRequest
	case errors.Is(err, records.ErrNotFound):
		status = fiber.StatusNotFound
	}
	if status == fiber.StatusInternalServerError {
		l.Error("Preview failed", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
