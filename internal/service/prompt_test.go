package service

import (
	"strings"
	"testing"

	"course-recommender/internal/models"
	"course-recommender/internal/roadmap"

	"github.com/stretchr/testify/assert"
)

func TestParseVerbosityAndGuidance(t *testing.T) {
	assert.Equal(t, VerbosityDeep, ParseVerbosity(" DEEP "))
	assert.Equal(t, VerbosityMedium, ParseVerbosity(""))
	assert.Equal(t, VerbosityMedium, ParseVerbosity("verbose"))

	assert.Equal(t, GuidanceNovice, ParseGuidanceMode("Novice"))
	assert.Equal(t, GuidanceStandard, ParseGuidanceMode("expert"))
}

func TestExplainLevel(t *testing.T) {
	assert.Equal(t, "detailed", ExplainLevel(VerbosityDeep, GuidanceStandard))
	assert.Equal(t, "detailed", ExplainLevel(VerbosityShort, GuidanceNovice))
	assert.Equal(t, "brief", ExplainLevel(VerbosityShort, GuidanceGuided))
	assert.Equal(t, "concise", ExplainLevel(VerbosityMedium, GuidanceStandard))
}

func TestSplitPreferences(t *testing.T) {
	assert.Equal(t, []string{"video", "projects", "english"}, SplitPreferences([]string{"video, projects", " ", "english"}))
	assert.Equal(t, []string{}, SplitPreferences(nil))
}

func TestBuildRoadmapPrompt(t *testing.T) {
	prompt := BuildRoadmapPrompt(RoadmapRequest{
		Goal:         "Backend in Go",
		CurrentLevel: "beginner",
		Preferences:  []string{"video", "practice"},
		Verbosity:    VerbosityShort,
		GuidanceMode: GuidanceNovice,
	})

	assert.Contains(t, prompt, "- goal: Backend in Go")
	assert.Contains(t, prompt, "- currentLevel: beginner")
	assert.Contains(t, prompt, "- preferences: video, practice")
	assert.Contains(t, prompt, `"concepts"`)
	assert.Contains(t, prompt, `"careers"`)
	assert.Contains(t, prompt, `"roadmap"`)
	assert.Contains(t, prompt, `"notes"`)
	assert.Contains(t, prompt, "Use detailed explanations and prefer clearer")
	assert.True(t, strings.HasSuffix(prompt, "."))
}

func TestBuildFollowUpPrompt(t *testing.T) {
	prompt := BuildFollowUpPrompt(FollowUpContext{
		Goal:   "frontend",
		Input:  models.InputSnapshot{CurrentLevel: "none", Preferences: []string{}},
		Output: roadmap.Empty(),
	}, "Where do I start?")

	assert.True(t, strings.HasPrefix(prompt, `Context (JSON): {"goal":"frontend"`))
	assert.Contains(t, prompt, `"roadmap":[]`)
	assert.Contains(t, prompt, "User follow-up question: Where do I start?")
}

func TestBuildClarifyPrompt(t *testing.T) {
	prompt := BuildClarifyPrompt("", "hi", nil, 120)
	assert.Contains(t, prompt, "UserId: guest")
	assert.Contains(t, prompt, "Context (optional JSON): {}")
	assert.Contains(t, prompt, "Question: hi")
	assert.Contains(t, prompt, "Keep it under ~120 words.")

	prompt = BuildClarifyPrompt("42", "loops?", map[string]any{"lang": "python"}, 250)
	assert.Contains(t, prompt, "UserId: 42")
	assert.Contains(t, prompt, `{"lang":"python"}`)
}

func TestTruncateWords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWords int
		expected string
	}{
		{"within limit", "one two three", 3, "one two three"},
		{"trailing space kept", "one two  ", 2, "one two  "},
		{"cut", "one two\nthree four", 2, "one two…"},
		{"no limit", "one two", 0, "one two"},
		{"empty", "", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, truncateWords(tt.input, tt.maxWords))
		})
	}
}

func TestSanitizeUTF8(t *testing.T) {
	assert.Equal(t, "ok", sanitizeUTF8("ok"))
	assert.Equal(t, "ab", sanitizeUTF8("a\xffb"))
}
