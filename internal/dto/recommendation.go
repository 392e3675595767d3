package dto

import (
	"course-recommender/internal/models"
	"course-recommender/internal/roadmap"
)

type GenerateRecommendationRequest struct {
	Goal         string   `json:"goal"`
	CurrentLevel string   `json:"currentLevel"`
	Preferences  []string `json:"preferences"`
	Verbosity    string   `json:"verbosity,omitempty"`    // short|medium|deep
	GuidanceMode string   `json:"guidanceMode,omitempty"` // novice|guided|standard
}

type SaveRecommendationRequest struct {
	Saved bool `json:"saved"`
}

type SaveRecommendationResponse struct {
	ID    int64 `json:"id"`
	Saved bool  `json:"saved"`
}

type FollowUpRequest struct {
	Question string `json:"question"`
}

type FollowUpResponse struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type ClarifyRequest struct {
	Question string         `json:"question"`
	Context  map[string]any `json:"context,omitempty"`
}

type ClarifyResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type UserRef struct {
	ID string `json:"id"`
}

type RecommendationResponse struct {
	ID             int64                            `json:"id"`
	GoalText       string                           `json:"goal_text"`
	InputJSON      models.InputSnapshot             `json:"input_json"`
	OutputSummary  []roadmap.StageSummary           `json:"output_summary"`
	Concepts       []roadmap.Concept                `json:"concepts"`
	Careers        []roadmap.Career                 `json:"careers"`
	Roadmap        []roadmap.StagePlan              `json:"roadmap"`
	User           UserRef                          `json:"user"`
	CoursesByStage map[string][]CourseMatchResponse `json:"courses_by_stage"`
	Courses        []LegacyCourseResponse           `json:"courses"`
}

// LegacyCourseResponse is the flat course list kept for older clients.
type LegacyCourseResponse struct {
	ID        int64  `json:"id"`
	Stage     string `json:"stage"`
	Rationale string `json:"rationale"`
}

type CourseMatchResponse struct {
	CourseResponse
	MatchedTopics []string `json:"matchedTopics"`
	MatchCount    int      `json:"matchCount"`
	MatchScore    int      `json:"matchScore"`
}
