package roadmap

import "strings"

// Stage is one phase of a learning journey.
type Stage string

const (
	StageFoundation     Stage = "FOUNDATION"
	StageIntermediate   Stage = "INTERMEDIATE"
	StageAdvanced       Stage = "ADVANCED"
	StageSpecialization Stage = "SPECIALIZATION"
)

// StagePriority is the order stages are presented and deduplicated in.
var StagePriority = []Stage{StageFoundation, StageIntermediate, StageAdvanced, StageSpecialization}

// ParseStage upper-cases s and falls back to FOUNDATION for anything unknown.
func ParseStage(s string) Stage {
	stage := Stage(strings.ToUpper(strings.TrimSpace(s)))
	switch stage {
	case StageFoundation, StageIntermediate, StageAdvanced, StageSpecialization:
		return stage
	default:
		return StageFoundation
	}
}

// Priority returns the sort rank of the stage. Unknown stages rank as FOUNDATION.
func (s Stage) Priority() int {
	for i, stage := range StagePriority {
		if stage == s {
			return i
		}
	}
	return 0
}

// Topic is a roadmap topic with the keyword set used for catalog matching.
// Keywords always contain the lower-cased topic name.
type Topic struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
	Tip      string   `json:"tip,omitempty"`
}

type StagePlan struct {
	Stage  Stage   `json:"stage"`
	Topics []Topic `json:"topics"`
}

type Concept struct {
	Name  string `json:"name"`
	Short string `json:"short"`
	Long  string `json:"long"`
}

type Career struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	TypicalRoles []string `json:"typicalRoles"`
}

// Output is the canonical form of a model response.
type Output struct {
	Concepts []Concept   `json:"concepts"`
	Careers  []Career    `json:"careers"`
	Roadmap  []StagePlan `json:"roadmap"`
	Notes    []string    `json:"notes"`
}

// Empty returns an Output whose sections encode as [] rather than null.
func Empty() Output {
	return Output{
		Concepts: []Concept{},
		Careers:  []Career{},
		Roadmap:  []StagePlan{},
		Notes:    []string{},
	}
}

// TopicCounts returns the number of declared topics per stage. A stage listed
// twice contributes both topic lists.
func (o Output) TopicCounts() map[Stage]int {
	counts := make(map[Stage]int, len(o.Roadmap))
	for _, plan := range o.Roadmap {
		counts[plan.Stage] += len(plan.Topics)
	}
	return counts
}

type TopicName struct {
	Name string `json:"name"`
}

type StageSummary struct {
	Stage      Stage       `json:"stage"`
	Topics     []TopicName `json:"topics"`
	TopicCount int         `json:"topicCount"`
}

// Summary is the lightweight per-stage view returned to clients.
func (o Output) Summary() []StageSummary {
	summary := make([]StageSummary, 0, len(o.Roadmap))
	for _, plan := range o.Roadmap {
		names := make([]TopicName, 0, len(plan.Topics))
		for _, topic := range plan.Topics {
			names = append(names, TopicName{Name: topic.Name})
		}
		summary = append(summary, StageSummary{
			Stage:      plan.Stage,
			Topics:     names,
			TopicCount: len(plan.Topics),
		})
	}
	return summary
}
