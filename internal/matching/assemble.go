package matching

import (
	"math"
	"slices"
	"sort"

	"course-recommender/internal/models"
	"course-recommender/internal/roadmap"
)

type StageCourse struct {
	Course        *models.Course
	Stage         roadmap.Stage
	MatchedTopics []string
	MatchCount    int
	MatchScore    int
}

// LegacyCourse is the flat {id, stage, rationale} view kept for older clients.
type LegacyCourse struct {
	ID        int64
	Stage     roadmap.Stage
	Rationale string
}

type Presentation struct {
	ByStage map[roadmap.Stage][]StageCourse
	Legacy  []LegacyCourse
}

// Assemble builds the visible per-stage course lists from persisted links.
// Links are walked in stage priority order, then by course id; a course is
// shown only in the first stage that claims it and each stage holds at most
// perStage courses, never more than MaxPerStage. Placeholders never appear.
func Assemble(links []*models.RecommendationCourse, topicCounts map[roadmap.Stage]int, perStage int) Presentation {
	perStage = StageLimit(perStage)
	ordered := slices.Clone(links)
	sort.SliceStable(ordered, func(i, j int) bool {
		pi, pj := ordered[i].Stage.Priority(), ordered[j].Stage.Priority()
		if pi != pj {
			return pi < pj
		}
		return courseID(ordered[i]) < courseID(ordered[j])
	})

	presentation := Presentation{
		ByStage: make(map[roadmap.Stage][]StageCourse),
		Legacy:  []LegacyCourse{},
	}
	assigned := make(map[int64]struct{})

	for _, link := range ordered {
		stage := roadmap.ParseStage(string(link.Stage))
		if _, ok := presentation.ByStage[stage]; !ok {
			presentation.ByStage[stage] = []StageCourse{}
		}

		if link.IsPlaceholder() || link.Course == nil {
			continue
		}
		id := *link.CourseID
		if _, ok := assigned[id]; ok {
			continue
		}
		if len(presentation.ByStage[stage]) >= perStage {
			continue
		}
		assigned[id] = struct{}{}

		topics := link.MatchedTopics
		if len(topics) == 0 {
			topics = ParseRationale(link.Rationale)
		}

		presentation.ByStage[stage] = append(presentation.ByStage[stage], StageCourse{
			Course:        link.Course,
			Stage:         stage,
			MatchedTopics: topics,
			MatchCount:    len(topics),
			MatchScore:    Score(len(topics), topicCounts[stage]),
		})
	}

	for _, stage := range roadmap.StagePriority {
		for _, item := range presentation.ByStage[stage] {
			presentation.Legacy = append(presentation.Legacy, LegacyCourse{
				ID:        item.Course.ID,
				Stage:     stage,
				Rationale: MatchedRationale(item.MatchedTopics),
			})
		}
	}

	return presentation
}

// Score is the share of a stage's declared topics a course matched, 0..100.
func Score(matchCount, stageTopics int) int {
	if matchCount <= 0 {
		return 0
	}
	score := int(math.Round(float64(matchCount) / float64(max(1, stageTopics)) * 100))
	return min(100, score)
}

func courseID(link *models.RecommendationCourse) int64 {
	if link.CourseID == nil {
		return 0
	}
	return *link.CourseID
}
