package matching

import (
	"fmt"
	"math/rand"
	"testing"

	"course-recommender/internal/models"
	"course-recommender/internal/roadmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func courseLink(id int64, stage roadmap.Stage, topics ...string) *models.RecommendationCourse {
	courseID := id
	return &models.RecommendationCourse{
		CourseID:      &courseID,
		Stage:         stage,
		MatchedTopics: topics,
		Rationale:     MatchedRationale(topics),
		Course:        &models.Course{ID: id, Title: "course"},
	}
}

func placeholderLink(stage roadmap.Stage, topic string) *models.RecommendationCourse {
	return &models.RecommendationCourse{
		Stage:     stage,
		Rationale: NoMatchRationale(topic),
	}
}

func TestAssemble_DedupAcrossStages(t *testing.T) {
	links := []*models.RecommendationCourse{
		courseLink(4, roadmap.StageIntermediate, "React"),
		courseLink(9, roadmap.StageFoundation, "HTML"),
		courseLink(9, roadmap.StageIntermediate, "React"),
		courseLink(2, roadmap.StageFoundation, "HTML", "CSS"),
	}
	counts := map[roadmap.Stage]int{roadmap.StageFoundation: 2, roadmap.StageIntermediate: 1}

	p := Assemble(links, counts, 3)

	foundation := p.ByStage[roadmap.StageFoundation]
	require.Len(t, foundation, 2)
	assert.Equal(t, int64(2), foundation[0].Course.ID, "ascending course id within a stage")
	assert.Equal(t, 100, foundation[0].MatchScore)
	assert.Equal(t, int64(9), foundation[1].Course.ID)
	assert.Equal(t, 50, foundation[1].MatchScore)

	intermediate := p.ByStage[roadmap.StageIntermediate]
	require.Len(t, intermediate, 1)
	assert.Equal(t, int64(4), intermediate[0].Course.ID, "course 9 stays in FOUNDATION only")

	assert.Equal(t, []LegacyCourse{
		{ID: 2, Stage: roadmap.StageFoundation, Rationale: "Matched topics: HTML, CSS"},
		{ID: 9, Stage: roadmap.StageFoundation, Rationale: "Matched topics: HTML"},
		{ID: 4, Stage: roadmap.StageIntermediate, Rationale: "Matched topics: React"},
	}, p.Legacy)
}

func TestAssemble_PlaceholdersHidden(t *testing.T) {
	links := []*models.RecommendationCourse{
		placeholderLink(roadmap.StageAdvanced, "Quantum Teleportation"),
	}

	p := Assemble(links, map[roadmap.Stage]int{roadmap.StageAdvanced: 1}, 3)

	list, ok := p.ByStage[roadmap.StageAdvanced]
	assert.True(t, ok)
	assert.Empty(t, list)
	assert.Empty(t, p.Legacy)
}

func TestAssemble_NoLinks(t *testing.T) {
	p := Assemble(nil, nil, 3)
	assert.NotNil(t, p.ByStage)
	assert.Empty(t, p.ByStage)
	assert.NotNil(t, p.Legacy)
}

func TestAssemble_CapAndFallbackRationale(t *testing.T) {
	var links []*models.RecommendationCourse
	for id := int64(1); id <= 5; id++ {
		links = append(links, courseLink(id, roadmap.StageFoundation, "Go"))
	}
	legacy := courseLink(6, roadmap.StageAdvanced)
	legacy.MatchedTopics = nil
	legacy.Rationale = "Matched topics: Go, Testing"
	links = append(links, legacy)

	p := Assemble(links, map[roadmap.Stage]int{roadmap.StageFoundation: 4, roadmap.StageAdvanced: 1}, 3)

	assert.Len(t, p.ByStage[roadmap.StageFoundation], 3)
	for _, items := range p.ByStage {
		for _, item := range items {
			assert.GreaterOrEqual(t, item.MatchScore, 0)
			assert.LessOrEqual(t, item.MatchScore, 100)
		}
	}

	advanced := p.ByStage[roadmap.StageAdvanced]
	require.Len(t, advanced, 1)
	assert.Equal(t, []string{"Go", "Testing"}, advanced[0].MatchedTopics)
	assert.Equal(t, 2, advanced[0].MatchCount)
	assert.Equal(t, 100, advanced[0].MatchScore, "score is capped at 100")
}

func TestScore(t *testing.T) {
	assert.Equal(t, 0, Score(0, 3))
	assert.Equal(t, 33, Score(1, 3))
	assert.Equal(t, 67, Score(2, 3))
	assert.Equal(t, 100, Score(1, 0))
	assert.Equal(t, 100, Score(5, 2))
}

func TestAssemble_LimitAboveMaximumIsCapped(t *testing.T) {
	var links []*models.RecommendationCourse
	for id := int64(1); id <= 5; id++ {
		links = append(links, courseLink(id, roadmap.StageFoundation, fmt.Sprintf("topic-%d", id)))
	}

	p := Assemble(links, map[roadmap.Stage]int{roadmap.StageFoundation: 5}, 5)

	assert.Len(t, p.ByStage[roadmap.StageFoundation], MaxPerStage)
	assert.Len(t, p.Legacy, MaxPerStage)
}

// randomMatches draws topics over a small course id pool so the same course
// regularly lands in several stages.
func randomMatches(rng *rand.Rand) ([]TopicMatch, map[roadmap.Stage]int) {
	var matches []TopicMatch
	counts := make(map[roadmap.Stage]int)
	for _, stage := range roadmap.StagePriority {
		topics := rng.Intn(6)
		counts[stage] = topics
		for i := 0; i < topics; i++ {
			match := TopicMatch{Stage: stage, Topic: fmt.Sprintf("%s-%d", stage, i)}
			for n := rng.Intn(5); n > 0; n-- {
				match.CourseIDs = append(match.CourseIDs, int64(rng.Intn(8)+1))
			}
			matches = append(matches, match)
		}
	}
	return matches, counts
}

func TestAssemble_InvariantsOverRandomRoadmaps(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 500; round++ {
		matches, counts := randomMatches(rng)
		limit := rng.Intn(7) - 1

		links := Rank(matches, limit).Links()
		for _, link := range links {
			if !link.IsPlaceholder() {
				link.Course = &models.Course{ID: *link.CourseID}
			}
		}

		p := Assemble(links, counts, limit)

		seen := make(map[int64]roadmap.Stage)
		for stage, items := range p.ByStage {
			require.LessOrEqual(t, len(items), MaxPerStage, "round %d stage %s", round, stage)
			for _, item := range items {
				require.NotNil(t, item.Course, "round %d", round)
				prev, dup := seen[item.Course.ID]
				require.False(t, dup, "round %d: course %d in %s and %s", round, item.Course.ID, prev, stage)
				seen[item.Course.ID] = stage

				require.GreaterOrEqual(t, item.MatchScore, 0)
				require.LessOrEqual(t, item.MatchScore, 100)
				require.Equal(t, len(item.MatchedTopics), item.MatchCount)
			}
		}
		require.Len(t, p.Legacy, len(seen), "round %d", round)
	}
}
