package handlers

import (
	"context"

	"course-recommender/internal/dto"
	"course-recommender/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type LearningPathService interface {
	SavePath(ctx context.Context, in service.SavePathInput) (*dto.LearningPathResponse, error)
	ListPaths(ctx context.Context, userID uuid.UUID) ([]dto.LearningPathResponse, error)
}

type LearningPathHandler struct {
	pathService LearningPathService
	logger      *zap.Logger
}

func NewLearningPathHandler(pathService LearningPathService, logger *zap.Logger) *LearningPathHandler {
	return &LearningPathHandler{
		pathService: pathService,
		logger:      logger,
	}
}

// SavePath godoc
// @Summary Save a learning path
// @Description Build an ordered learning path from the courses of a recommendation
// @Tags learning-paths
// @Accept json
// @Produce json
// @Param id path int true "Recommendation ID"
// @Param request body dto.SavePathRequest false "Optional name and course selection"
// @Security Bearer
// @Success 201 {object} dto.LearningPathResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/recommendations/{id}/save-path [post]
func (h *LearningPathHandler) SavePath(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid recommendation ID")
	}

	var req dto.SavePathRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
	}

	resp, err := h.pathService.SavePath(c.Context(), service.SavePathInput{
		UserID:            userID,
		RecommendationID:  id,
		Name:              req.Name,
		SelectedCourseIDs: req.SelectedCourseIDs,
	})
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to save learning path")
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListPaths godoc
// @Summary List my learning paths
// @Description Learning paths of the current user, most recently updated first
// @Tags learning-paths
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.LearningPathResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/recommendations/my-paths [get]
func (h *LearningPathHandler) ListPaths(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	paths, err := h.pathService.ListPaths(c.Context(), userID)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to list learning paths")
	}

	return c.JSON(paths)
}
