package handler

import (
	"dsa-tutor/internal/domain"
	"dsa-tutor/internal/dto"
	"dsa-tutor/internal/logger"
	"dsa-tutor/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ContentHandler handles content generation HTTP requests
type ContentHandler struct {
	service    domain.ContentService
	corsOrigin string
}

// NewContentHandler creates a new ContentHandler instance. corsOrigin is
// echoed on the manual preflight response.
func NewContentHandler(service domain.ContentService, corsOrigin string) *ContentHandler {
	return &ContentHandler{
		service:    service,
		corsOrigin: corsOrigin,
	}
}

// GenerateContent godoc
// @Summary Generate educational content
// @Description Generates a markdown lesson, a 10-question quiz and a 4-week study plan for a topic
// @Tags content
// @Accept json
// @Produce json
// @Param request body dto.GenerateContentRequest true "Topic details"
// @Success 200 {object} dto.GenerateContentResponse
// @Failure 500 {object} dto.ParseErrorResponse "Model call failed ({error} only) or its reply was not JSON ({error, rawResponse})"
// @Router /api/generate-content [post]
func (h *ContentHandler) GenerateContent(c *fiber.Ctx) error {
	var req dto.GenerateContentRequest
	if err := c.BodyParser(&req); err != nil {
		// An unreadable body is treated as an empty request
		logger.Get().Warn("Ignoring unparseable request body",
			zap.Error(err),
			zap.String("request_id", middleware.RequestIDFrom(c)),
		)
		req = dto.GenerateContentRequest{}
	}

	content, err := h.service.Generate(c.UserContext(), req.ToDomain())
	if err != nil {
		return err
	}

	return c.JSON(dto.NewGenerateContentResponse(content))
}

// Preflight answers the CORS preflight for the generation endpoint
func (h *ContentHandler) Preflight(c *fiber.Ctx) error {
	c.Set(fiber.HeaderAccessControlAllowOrigin, h.corsOrigin)
	c.Set(fiber.HeaderAccessControlAllowHeaders, fiber.HeaderContentType)
	c.Set(fiber.HeaderAccessControlAllowMethods, fiber.MethodPost)
	c.Set(fiber.HeaderAccessControlAllowCredentials, "true")
	return c.SendStatus(fiber.StatusOK)
}

// TopicHistory godoc
// @Summary List recent topics
// @Description Returns the most recently submitted topics, oldest first
// @Tags content
// @Produce json
// @Success 200 {object} dto.TopicHistoryResponse
// @Router /api/topic-history [get]
func (h *ContentHandler) TopicHistory(c *fiber.Ctx) error {
	return c.JSON(dto.NewTopicHistoryResponse(h.service.TopicHistory()))
}

// Status godoc
// @Summary Service status
// @Tags health
// @Produce json
// @Success 200 {object} dto.StatusResponse
// @Router /api/status [get]
func (h *ContentHandler) Status(c *fiber.Ctx) error {
	return c.JSON(dto.StatusResponse{Status: "API is running"})
}

// TestCORS godoc
// @Summary CORS check
// @Tags health
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /test-cors [get]
func (h *ContentHandler) TestCORS(c *fiber.Ctx) error {
	return c.JSON(dto.MessageResponse{Message: "CORS is working!"})
}
