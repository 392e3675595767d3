package matching

import (
	"testing"

	"course-recommender/internal/roadmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank_CountsDistinctTopics(t *testing.T) {
	matches := []TopicMatch{
		{Stage: roadmap.StageFoundation, Topic: "HTML", CourseIDs: []int64{10, 20}},
		{Stage: roadmap.StageFoundation, Topic: "CSS", CourseIDs: []int64{20}},
		{Stage: roadmap.StageFoundation, Topic: "CSS", CourseIDs: []int64{20}},
		{Stage: roadmap.StageIntermediate, Topic: "React", CourseIDs: []int64{20}},
	}

	ranking := Rank(matches, 3)

	assert.Equal(t, []roadmap.Stage{roadmap.StageFoundation, roadmap.StageIntermediate}, ranking.Stages)

	foundation := ranking.ByStage[roadmap.StageFoundation]
	require.Len(t, foundation, 2)
	assert.Equal(t, int64(20), foundation[0].CourseID)
	assert.Equal(t, []string{"HTML", "CSS"}, foundation[0].Topics)
	assert.Equal(t, 2, foundation[0].MatchCount())
	assert.Equal(t, int64(10), foundation[1].CourseID)

	intermediate := ranking.ByStage[roadmap.StageIntermediate]
	require.Len(t, intermediate, 1)
	assert.Equal(t, 1, intermediate[0].MatchCount(), "same course in another stage is a separate aggregate")
}

func TestRank_TruncatesWithStableTies(t *testing.T) {
	matches := []TopicMatch{
		{Stage: roadmap.StageFoundation, Topic: "A", CourseIDs: []int64{5, 4, 3, 2, 1}},
		{Stage: roadmap.StageFoundation, Topic: "B", CourseIDs: []int64{1}},
	}

	ranking := Rank(matches, 3)

	foundation := ranking.ByStage[roadmap.StageFoundation]
	require.Len(t, foundation, 3)
	ids := []int64{foundation[0].CourseID, foundation[1].CourseID, foundation[2].CourseID}
	assert.Equal(t, []int64{1, 5, 4}, ids)
}

func TestRank_PlaceholdersAndLinks(t *testing.T) {
	matches := []TopicMatch{
		{Stage: roadmap.StageFoundation, Topic: "HTML", CourseIDs: []int64{7}},
		{Stage: roadmap.StageAdvanced, Topic: "Quantum Teleportation"},
	}

	ranking := Rank(matches, 3)
	require.Len(t, ranking.Placeholders, 1)

	links := ranking.Links()
	require.Len(t, links, 2)

	assert.False(t, links[0].IsPlaceholder())
	assert.Equal(t, int64(7), *links[0].CourseID)
	assert.Equal(t, roadmap.StageFoundation, links[0].Stage)
	assert.Equal(t, []string{"HTML"}, links[0].MatchedTopics)
	assert.Equal(t, "Matched topics: HTML", links[0].Rationale)

	assert.True(t, links[1].IsPlaceholder())
	assert.Equal(t, roadmap.StageAdvanced, links[1].Stage)
	assert.Equal(t, "No matching course found for Quantum Teleportation", links[1].Rationale)
}

func TestRationaleRoundTrip(t *testing.T) {
	rationale := MatchedRationale([]string{"HTML", "CSS"})
	assert.Equal(t, "Matched topics: HTML, CSS", rationale)
	assert.Equal(t, []string{"HTML", "CSS"}, ParseRationale(rationale))
	assert.Equal(t, []string{"Go"}, ParseRationale("matched TOPICS:Go"))
	assert.Empty(t, ParseRationale("Matched topics: "))
}

func TestRank_LimitAboveMaximumIsCapped(t *testing.T) {
	matches := []TopicMatch{
		{Stage: roadmap.StageFoundation, Topic: "A", CourseIDs: []int64{1}},
		{Stage: roadmap.StageFoundation, Topic: "B", CourseIDs: []int64{2}},
		{Stage: roadmap.StageFoundation, Topic: "C", CourseIDs: []int64{3}},
		{Stage: roadmap.StageFoundation, Topic: "D", CourseIDs: []int64{4}},
		{Stage: roadmap.StageFoundation, Topic: "E", CourseIDs: []int64{5}},
	}

	for _, limit := range []int{0, 5, 100} {
		ranking := Rank(matches, limit)
		assert.Len(t, ranking.ByStage[roadmap.StageFoundation], MaxPerStage, "limit %d", limit)
	}
	assert.Len(t, Rank(matches, 2).ByStage[roadmap.StageFoundation], 2)
}

func TestStageLimit(t *testing.T) {
	assert.Equal(t, 3, StageLimit(0))
	assert.Equal(t, 3, StageLimit(-1))
	assert.Equal(t, 1, StageLimit(1))
	assert.Equal(t, 3, StageLimit(5))
}
