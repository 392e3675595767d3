package models

import (
	"time"

	"course-recommender/internal/roadmap"

	"github.com/google/uuid"
)

type LearningPath struct {
	ID               int64        `db:"id"`
	UserID           uuid.UUID    `db:"user_id"`
	RecommendationID *int64       `db:"recommendation_id"`
	Name             string       `db:"name"`
	Metadata         PathMetadata `db:"metadata"`
	CreatedAt        time.Time    `db:"created_at"`
	UpdatedAt        time.Time    `db:"updated_at"`

	Items []*LearningPathItem `db:"-"`
}

// PathMetadata snapshots the source recommendation at the time the path was saved.
type PathMetadata struct {
	GoalText                  string        `json:"goal_text"`
	Input                     InputSnapshot `json:"input_json"`
	CreatedFromRecommendation int64         `json:"created_from_recommendation"`
}

// LearningPathItem.OrderIndex is 1-based and scoped to the item's stage.
type LearningPathItem struct {
	ID         int64         `db:"id"`
	PathID     int64         `db:"path_id"`
	CourseID   *int64        `db:"course_id"`
	Stage      roadmap.Stage `db:"stage"`
	OrderIndex int           `db:"order_index"`
	Note       *string       `db:"note"`

	Course *Course `db:"-"`
}
