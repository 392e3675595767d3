package service

import (
	"time"

	"course-recommender/internal/dto"
	"course-recommender/internal/matching"
	"course-recommender/internal/models"
)

func newRecommendationResponse(rec *models.Recommendation, p matching.Presentation) *dto.RecommendationResponse {
	byStage := make(map[string][]dto.CourseMatchResponse, len(p.ByStage))
	for stage, items := range p.ByStage {
		list := make([]dto.CourseMatchResponse, 0, len(items))
		for _, item := range items {
			list = append(list, dto.CourseMatchResponse{
				CourseResponse: *newCourseResponse(item.Course),
				MatchedTopics:  item.MatchedTopics,
				MatchCount:     item.MatchCount,
				MatchScore:     item.MatchScore,
			})
		}
		byStage[string(stage)] = list
	}

	legacy := make([]dto.LegacyCourseResponse, 0, len(p.Legacy))
	for _, c := range p.Legacy {
		legacy = append(legacy, dto.LegacyCourseResponse{
			ID:        c.ID,
			Stage:     string(c.Stage),
			Rationale: c.Rationale,
		})
	}

	return &dto.RecommendationResponse{
		ID:             rec.ID,
		GoalText:       rec.GoalText,
		InputJSON:      rec.Input,
		OutputSummary:  rec.Output.Summary(),
		Concepts:       rec.Output.Concepts,
		Careers:        rec.Output.Careers,
		Roadmap:        rec.Output.Roadmap,
		User:           dto.UserRef{ID: rec.UserID.String()},
		CoursesByStage: byStage,
		Courses:        legacy,
	}
}

func newCourseResponse(c *models.Course) *dto.CourseResponse {
	if c == nil {
		return nil
	}

	resp := &dto.CourseResponse{
		ID:             c.ID,
		Title:          c.Title,
		Description:    c.Description,
		ThumbnailURL:   c.ThumbnailURL,
		Level:          optional(string(c.Level)),
		TotalEnrolled:  c.TotalEnrolled,
		Price:          c.Price,
		OriginalPrice:  c.OriginalPrice,
		DurationHours:  c.DurationHours,
		Rating:         c.Rating,
		RatingCount:    c.RatingCount,
		Status:         optional(string(c.Status)),
		ApprovalStatus: optional(string(c.ApprovalStatus)),
		Tags:           make([]dto.TagResponse, 0, len(c.Tags)),
	}

	if c.Instructor != nil {
		resp.Instructor = &dto.InstructorResponse{
			ID:        c.Instructor.ID.String(),
			FirstName: c.Instructor.FirstName,
			LastName:  c.Instructor.LastName,
			Email:     c.Instructor.Email,
		}
	}
	if c.Category != nil {
		resp.Category = &dto.CategoryResponse{ID: c.Category.ID, Name: c.Category.Name}
	}
	for _, t := range c.Tags {
		resp.Tags = append(resp.Tags, dto.TagResponse{ID: t.ID, Name: t.Name})
	}

	return resp
}

func newLearningPathResponse(path *models.LearningPath) dto.LearningPathResponse {
	items := make([]dto.LearningPathItemResponse, 0, len(path.Items))
	for _, item := range path.Items {
		items = append(items, dto.LearningPathItemResponse{
			ID:         item.ID,
			Stage:      string(item.Stage),
			OrderIndex: item.OrderIndex,
			Note:       item.Note,
			Course:     newCourseResponse(item.Course),
		})
	}

	return dto.LearningPathResponse{
		ID:               path.ID,
		Name:             path.Name,
		RecommendationID: path.RecommendationID,
		Metadata:         path.Metadata,
		Items:            items,
		CreatedAt:        path.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        path.UpdatedAt.Format(time.RFC3339),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
