package dto

import (
	"course-recommender/internal/models"
)

type SavePathRequest struct {
	Name              string  `json:"name,omitempty"`
	SelectedCourseIDs []int64 `json:"selectedCourseIds,omitempty"`
}

type LearningPathResponse struct {
	ID               int64                      `json:"id"`
	Name             string                     `json:"name"`
	RecommendationID *int64                     `json:"recommendation_id"`
	Metadata         models.PathMetadata        `json:"metadata"`
	Items            []LearningPathItemResponse `json:"items"`
	CreatedAt        string                     `json:"created_at"`
	UpdatedAt        string                     `json:"updated_at"`
}

type LearningPathItemResponse struct {
	ID         int64           `json:"id"`
	Stage      string          `json:"stage"`
	OrderIndex int             `json:"order_index"`
	Note       *string         `json:"note"`
	Course     *CourseResponse `json:"course"`
}
