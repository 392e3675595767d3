package models

import (
	"time"

	"course-recommender/internal/roadmap"

	"github.com/google/uuid"
)

type Recommendation struct {
	ID        int64          `db:"id"`
	UserID    uuid.UUID      `db:"user_id"`
	GoalText  string         `db:"goal_text"`
	Input     InputSnapshot  `db:"input_json"`
	Output    roadmap.Output `db:"output_json"`
	CreatedAt time.Time      `db:"created_at"`
}

// InputSnapshot is stored as JSON. Saved is only present once the owner toggled it.
type InputSnapshot struct {
	CurrentLevel string   `json:"currentLevel"`
	Preferences  []string `json:"preferences"`
	Verbosity    string   `json:"verbosity"`
	GuidanceMode string   `json:"guidanceMode"`
	Saved        *bool    `json:"saved,omitempty"`
}

// RecommendationCourse links a recommendation to a catalog course for one stage.
// A nil CourseID marks a placeholder: no course matched the topic.
type RecommendationCourse struct {
	ID               int64         `db:"id"`
	RecommendationID int64         `db:"recommendation_id"`
	CourseID         *int64        `db:"course_id"`
	Stage            roadmap.Stage `db:"stage"`
	MatchedTopics    []string      `db:"matched_topics"`
	Rationale        string        `db:"rationale"`

	Course *Course `db:"-"`
}

func (l *RecommendationCourse) IsPlaceholder() bool {
	return l.CourseID == nil
}
