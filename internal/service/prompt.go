package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"course-recommender/internal/models"
	"course-recommender/internal/roadmap"
)

type Verbosity string

const (
	VerbosityShort  Verbosity = "short"
	VerbosityMedium Verbosity = "medium"
	VerbosityDeep   Verbosity = "deep"
)

type GuidanceMode string

const (
	GuidanceNovice   GuidanceMode = "novice"
	GuidanceGuided   GuidanceMode = "guided"
	GuidanceStandard GuidanceMode = "standard"
)

// ParseVerbosity defaults to medium for empty or unknown values.
func ParseVerbosity(s string) Verbosity {
	switch v := Verbosity(strings.ToLower(strings.TrimSpace(s))); v {
	case VerbosityShort, VerbosityMedium, VerbosityDeep:
		return v
	default:
		return VerbosityMedium
	}
}

// ParseGuidanceMode defaults to standard for empty or unknown values.
func ParseGuidanceMode(s string) GuidanceMode {
	switch m := GuidanceMode(strings.ToLower(strings.TrimSpace(s))); m {
	case GuidanceNovice, GuidanceGuided, GuidanceStandard:
		return m
	default:
		return GuidanceStandard
	}
}

// SplitPreferences flattens comma-joined entries, trimming and dropping empties.
func SplitPreferences(preferences []string) []string {
	out := []string{}
	for _, p := range preferences {
		for _, part := range strings.Split(p, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// ExplainLevel is the explanation depth requested from the model.
func ExplainLevel(verbosity Verbosity, mode GuidanceMode) string {
	switch {
	case verbosity == VerbosityDeep || mode == GuidanceNovice:
		return "detailed"
	case verbosity == VerbosityShort:
		return "brief"
	default:
		return "concise"
	}
}

type RoadmapRequest struct {
	Goal         string
	CurrentLevel string
	Preferences  []string
	Verbosity    Verbosity
	GuidanceMode GuidanceMode
}

const roadmapSystemInstruction = `You are an educational mentor and course recommender for programming learners. You always answer with strict JSON only, without markdown fences or commentary.`

// BuildRoadmapPrompt asks for exactly four top-level keys: concepts, careers,
// roadmap and notes.
func BuildRoadmapPrompt(req RoadmapRequest) string {
	explain := ExplainLevel(req.Verbosity, req.GuidanceMode)

	var b strings.Builder
	b.WriteString("User info:\n")
	fmt.Fprintf(&b, "- currentLevel: %s\n", req.CurrentLevel)
	fmt.Fprintf(&b, "- goal: %s\n", req.Goal)
	fmt.Fprintf(&b, "- preferences: %s\n", strings.Join(req.Preferences, ", "))
	fmt.Fprintf(&b, "- guidanceMode: %s (novice|guided|standard)\n", req.GuidanceMode)
	fmt.Fprintf(&b, "- verbosity: %s (short|medium|deep)\n\n", req.Verbosity)

	b.WriteString(`Task: Return JSON with four sections for a beginner-friendly learning journey:
1) concepts: core programming concepts the learner needs, each with a short and a long explanation (why it matters).
2) careers: software career paths relevant to the goal with a short description and typical roles.
3) roadmap: grouped by stages FOUNDATION, INTERMEDIATE, ADVANCED. Each stage contains topics. Each topic has a name and keywords used to match course titles, descriptions and tags. Optionally add a short tip.
4) notes: optional tips (may be empty).

Return strict JSON only, with exactly these four top-level keys:
{
  "concepts": [
    { "name": "Programming Basics", "short": "What programming is.", "long": "What programs are used for, algorithms, basic data structures." }
  ],
  "careers": [
    { "name": "Web Development", "description": "Build websites and web apps.", "typicalRoles": ["Frontend", "Backend", "Fullstack"] }
  ],
  "roadmap": [
    { "stage": "FOUNDATION", "topics": [ { "name": "HTML", "keywords": ["html", "html5"], "tip": "Learn page structure first." } ] }
  ],
  "notes": []
}

If you cannot provide keywords, topics may be plain strings. `)
	fmt.Fprintf(&b, "Use %s explanations", explain)
	if req.GuidanceMode == GuidanceNovice {
		b.WriteString(" and prefer clearer, more thorough wording for a novice")
	}
	b.WriteString(".")

	return b.String()
}

const followUpSystemInstruction = "You are a helpful mentor for programming learners."

// FollowUpContext is the recommendation snapshot sent along with a follow-up question.
type FollowUpContext struct {
	Goal   string               `json:"goal"`
	Input  models.InputSnapshot `json:"input"`
	Output roadmap.Output       `json:"output"`
}

func BuildFollowUpPrompt(ctx FollowUpContext, question string) string {
	encoded, err := json.Marshal(ctx)
	if err != nil {
		encoded = []byte("{}")
	}
	return fmt.Sprintf("Context (JSON): %s\n\nUser follow-up question: %s\n\nAnswer briefly and suggest specific next steps.",
		encoded, question)
}

const clarifySystemInstruction = `You are a friendly, precise programming mentor. Answer in the language of the question. Give structured, actionable answers for beginners. Use short paragraphs and bullet points when appropriate. Avoid writing code unless it is necessary.`

// BuildClarifyPrompt embeds the caller identity ("guest" when anonymous) and
// an optional free-form context object.
func BuildClarifyPrompt(userID, question string, extra map[string]any, maxWords int) string {
	if userID == "" {
		userID = "guest"
	}
	if extra == nil {
		extra = map[string]any{}
	}
	encoded, err := json.Marshal(extra)
	if err != nil {
		encoded = []byte("{}")
	}

	return fmt.Sprintf(`UserId: %s
Context (optional JSON): %s
Question: %s

Requirements:
- If the question is a greeting or too vague, ask 2-3 clarifying questions AND provide 3-5 concrete next steps for beginners.
- Else, answer directly with concise steps, pitfalls, and a tiny practice idea.
- Keep it under ~%d words.`, userID, encoded, question, maxWords)
}
