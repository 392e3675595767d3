package matching

import (
	"slices"
	"sort"

	"course-recommender/internal/models"
	"course-recommender/internal/roadmap"
)

// MaxPerStage bounds every stage's visible course list.
const MaxPerStage = 3

// StageLimit clamps a configured per-stage limit into 1..MaxPerStage.
func StageLimit(perStage int) int {
	if perStage <= 0 || perStage > MaxPerStage {
		return MaxPerStage
	}
	return perStage
}

// Aggregate collects the distinct topics of one stage that a course satisfied.
type Aggregate struct {
	CourseID int64
	Stage    roadmap.Stage
	Topics   []string
}

func (a *Aggregate) MatchCount() int {
	return len(a.Topics)
}

type Placeholder struct {
	Stage roadmap.Stage
	Topic string
}

// Ranking is the bounded per-stage result of Rank. Stages lists stage keys in
// the order they first produced a match.
type Ranking struct {
	Stages       []roadmap.Stage
	ByStage      map[roadmap.Stage][]*Aggregate
	Placeholders []Placeholder
}

type aggregateKey struct {
	courseID int64
	stage    roadmap.Stage
}

// Rank aggregates matches per (course, stage), orders each stage by distinct
// matched topics descending and keeps the first perStage entries (at most
// MaxPerStage). Ties keep insertion order.
func Rank(matches []TopicMatch, perStage int) Ranking {
	perStage = StageLimit(perStage)
	ranking := Ranking{
		Stages:       []roadmap.Stage{},
		ByStage:      make(map[roadmap.Stage][]*Aggregate),
		Placeholders: []Placeholder{},
	}

	index := make(map[aggregateKey]*Aggregate)
	for _, match := range matches {
		if len(match.CourseIDs) == 0 {
			ranking.Placeholders = append(ranking.Placeholders, Placeholder{Stage: match.Stage, Topic: match.Topic})
			continue
		}

		for _, courseID := range match.CourseIDs {
			key := aggregateKey{courseID: courseID, stage: match.Stage}
			agg, ok := index[key]
			if !ok {
				agg = &Aggregate{CourseID: courseID, Stage: match.Stage, Topics: []string{}}
				index[key] = agg
				if _, seen := ranking.ByStage[match.Stage]; !seen {
					ranking.Stages = append(ranking.Stages, match.Stage)
				}
				ranking.ByStage[match.Stage] = append(ranking.ByStage[match.Stage], agg)
			}
			if !slices.Contains(agg.Topics, match.Topic) {
				agg.Topics = append(agg.Topics, match.Topic)
			}
		}
	}

	for stage, aggs := range ranking.ByStage {
		sort.SliceStable(aggs, func(i, j int) bool {
			return aggs[i].MatchCount() > aggs[j].MatchCount()
		})
		if len(aggs) > perStage {
			aggs = aggs[:perStage]
		}
		ranking.ByStage[stage] = aggs
	}

	return ranking
}

// Links converts the ranking into link rows for persistence: retained
// aggregates first, stage by stage, then one placeholder per unmatched topic.
func (r Ranking) Links() []*models.RecommendationCourse {
	links := make([]*models.RecommendationCourse, 0, len(r.Placeholders)+len(r.Stages)*3)

	for _, stage := range r.Stages {
		for _, agg := range r.ByStage[stage] {
			courseID := agg.CourseID
			links = append(links, &models.RecommendationCourse{
				CourseID:      &courseID,
				Stage:         stage,
				MatchedTopics: slices.Clone(agg.Topics),
				Rationale:     MatchedRationale(agg.Topics),
			})
		}
	}

	for _, p := range r.Placeholders {
		links = append(links, &models.RecommendationCourse{
			Stage:         p.Stage,
			MatchedTopics: []string{},
			Rationale:     NoMatchRationale(p.Topic),
		})
	}

	return links
}
