package handlers

import (
	"context"

	"course-recommender/internal/dto"
	"course-recommender/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RecommendationService interface {
	Generate(ctx context.Context, in service.GenerateInput) (*dto.RecommendationResponse, error)
	Get(ctx context.Context, userID uuid.UUID, id int64) (*dto.RecommendationResponse, error)
	Save(ctx context.Context, userID uuid.UUID, id int64, saved bool) (*dto.SaveRecommendationResponse, error)
	FollowUp(ctx context.Context, userID uuid.UUID, id int64, question string) (*dto.FollowUpResponse, error)
	Clarify(ctx context.Context, userID *uuid.UUID, question string, extra map[string]any) (*dto.ClarifyResponse, error)
}

type RecommendationHandler struct {
	recService RecommendationService
	logger     *zap.Logger
}

func NewRecommendationHandler(recService RecommendationService, logger *zap.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		recService: recService,
		logger:     logger,
	}
}

// Generate godoc
// @Summary Generate a recommendation
// @Description Ask the model for a staged roadmap and match its topics against the course catalog
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body dto.GenerateRecommendationRequest true "Learner goal and preferences"
// @Security Bearer
// @Success 201 {object} dto.RecommendationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/recommendations [post]
func (h *RecommendationHandler) Generate(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.GenerateRecommendationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.recService.Generate(c.Context(), service.GenerateInput{
		UserID:       userID,
		Goal:         req.Goal,
		CurrentLevel: req.CurrentLevel,
		Preferences:  req.Preferences,
		Verbosity:    req.Verbosity,
		GuidanceMode: req.GuidanceMode,
	})
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to generate recommendation")
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Get godoc
// @Summary Get a recommendation
// @Description Reload a stored recommendation with its per-stage courses
// @Tags recommendations
// @Produce json
// @Param id path int true "Recommendation ID"
// @Security Bearer
// @Success 200 {object} dto.RecommendationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/recommendations/{id} [get]
func (h *RecommendationHandler) Get(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid recommendation ID")
	}

	resp, err := h.recService.Get(c.Context(), userID, id)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to load recommendation")
	}

	return c.JSON(resp)
}

// Save godoc
// @Summary Save a recommendation
// @Description Toggle the saved flag of a recommendation
// @Tags recommendations
// @Accept json
// @Produce json
// @Param id path int true "Recommendation ID"
// @Param request body dto.SaveRecommendationRequest true "Saved flag"
// @Security Bearer
// @Success 200 {object} dto.SaveRecommendationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/recommendations/{id}/save [post]
func (h *RecommendationHandler) Save(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid recommendation ID")
	}

	// A missing body or field stores saved=false.
	var req dto.SaveRecommendationRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
	}

	resp, err := h.recService.Save(c.Context(), userID, id, req.Saved)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to save recommendation")
	}

	return c.JSON(resp)
}

// FollowUp godoc
// @Summary Ask a follow-up question
// @Description Ask the model a question in the context of a stored recommendation
// @Tags recommendations
// @Accept json
// @Produce json
// @Param id path int true "Recommendation ID"
// @Param request body dto.FollowUpRequest true "Question"
// @Security Bearer
// @Success 200 {object} dto.FollowUpResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/v1/recommendations/{id}/followup [post]
func (h *RecommendationHandler) FollowUp(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid recommendation ID")
	}

	var req dto.FollowUpRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.recService.FollowUp(c.Context(), userID, id, req.Question)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to answer follow-up question")
	}

	return c.JSON(resp)
}

// Clarify godoc
// @Summary Clarify a learning question
// @Description Free-form mentoring answer; works for guests
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body dto.ClarifyRequest true "Question and optional context"
// @Success 200 {object} dto.ClarifyResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/v1/recommendations/clarify [post]
func (h *RecommendationHandler) Clarify(c *fiber.Ctx) error {
	var req dto.ClarifyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.recService.Clarify(c.Context(), optionalUserID(c), req.Question, req.Context)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to answer question")
	}

	return c.JSON(resp)
}
