// Package roadmap turns untrusted generative-model output into a canonical
// learning roadmap. Nothing in this package returns an error: malformed or
// missing input degrades to empty sections.
package roadmap

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// Parse decodes raw model text. The text may be wrapped in a markdown fence or
// surrounded by commentary; only the outermost JSON object is considered.
func Parse(content string) Output {
	raw, ok := extractObject(content)
	if !ok {
		return Empty()
	}

	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return Empty()
	}
	return Normalize(value)
}

func extractObject(content string) (string, bool) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end <= start {
		return "", false
	}
	return content[start : end+1], true
}

// Normalize converts a decoded JSON value into an Output.
func Normalize(raw any) Output {
	out := Empty()
	obj, ok := raw.(map[string]any)
	if !ok {
		return out
	}

	out.Concepts = normalizeConcepts(obj["concepts"])
	out.Careers = normalizeCareers(obj["careers"])
	out.Roadmap = normalizeRoadmap(obj["roadmap"])
	out.Notes = normalizeNotes(obj["notes"])
	return out
}

func normalizeRoadmap(v any) []StagePlan {
	plans := []StagePlan{}

	switch r := v.(type) {
	case []any:
		for _, entry := range r {
			obj, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			plans = append(plans, StagePlan{
				Stage:  ParseStage(asString(obj["stage"])),
				Topics: normalizeTopics(obj["topics"]),
			})
		}
	case map[string]any:
		// {"FOUNDATION": [...], "ADVANCED": {"topics": [...]}}
		keys := make([]string, 0, len(r))
		for key := range r {
			keys = append(keys, key)
		}
		sort.SliceStable(keys, func(i, j int) bool {
			pi, pj := ParseStage(keys[i]).Priority(), ParseStage(keys[j]).Priority()
			if pi != pj {
				return pi < pj
			}
			return keys[i] < keys[j]
		})
		for _, key := range keys {
			topics := r[key]
			if obj, ok := topics.(map[string]any); ok {
				topics = obj["topics"]
			}
			plans = append(plans, StagePlan{
				Stage:  ParseStage(key),
				Topics: normalizeTopics(topics),
			})
		}
	}

	return plans
}

func normalizeTopics(v any) []Topic {
	var items []any
	switch t := v.(type) {
	case []any:
		items = t
	case string:
		items = []any{t}
	default:
		return []Topic{}
	}

	topics := make([]Topic, 0, len(items))
	for _, item := range items {
		switch t := item.(type) {
		case string:
			// "HTML, CSS" declares two topics
			for _, name := range splitList(t) {
				topics = append(topics, newTopic(name, nil, ""))
			}
		case map[string]any:
			name := firstString(t, "name", "topic", "title")
			if name == "" {
				continue
			}
			topics = append(topics, newTopic(name, stringList(t["keywords"]), firstString(t, "tip")))
		}
	}
	return topics
}

func newTopic(name string, declared []string, tip string) Topic {
	keywords := make([]string, 0, len(declared)+1)
	seen := make(map[string]struct{}, len(declared)+1)
	add := func(kw string) {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			return
		}
		if _, ok := seen[kw]; ok {
			return
		}
		seen[kw] = struct{}{}
		keywords = append(keywords, kw)
	}

	for _, kw := range declared {
		add(kw)
	}
	add(name)

	return Topic{Name: name, Keywords: keywords, Tip: tip}
}

func normalizeConcepts(v any) []Concept {
	concepts := []Concept{}
	items, ok := v.([]any)
	if !ok {
		return concepts
	}

	for _, item := range items {
		switch c := item.(type) {
		case string:
			if name := strings.TrimSpace(c); name != "" {
				concepts = append(concepts, Concept{Name: name})
			}
		case map[string]any:
			name := firstString(c, "name", "title")
			if name == "" {
				continue
			}
			concepts = append(concepts, Concept{
				Name:  name,
				Short: firstString(c, "short", "summary"),
				Long:  firstString(c, "long", "explanation"),
			})
		}
	}
	return concepts
}

func normalizeCareers(v any) []Career {
	careers := []Career{}
	items, ok := v.([]any)
	if !ok {
		return careers
	}

	for _, item := range items {
		switch c := item.(type) {
		case string:
			if name := strings.TrimSpace(c); name != "" {
				careers = append(careers, Career{Name: name, TypicalRoles: []string{}})
			}
		case map[string]any:
			name := firstString(c, "name", "title")
			if name == "" {
				continue
			}
			roles := c["typicalRoles"]
			if roles == nil {
				roles = c["roles"]
			}
			careers = append(careers, Career{
				Name:         name,
				Description:  firstString(c, "description", "desc"),
				TypicalRoles: stringList(roles),
			})
		}
	}
	return careers
}

func normalizeNotes(v any) []string {
	notes := []string{}
	switch n := v.(type) {
	case string:
		if s := strings.TrimSpace(n); s != "" {
			notes = append(notes, s)
		}
	case []any:
		for _, item := range n {
			var s string
			if obj, ok := item.(map[string]any); ok {
				s = firstString(obj, "text", "note", "tip")
			} else {
				s = strings.TrimSpace(asString(item))
			}
			if s != "" {
				notes = append(notes, s)
			}
		}
	}
	return notes
}

func firstString(obj map[string]any, keys ...string) string {
	for _, key := range keys {
		if s := strings.TrimSpace(asString(obj[key])); s != "" {
			return s
		}
	}
	return ""
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// stringList never returns nil.
func stringList(v any) []string {
	out := []string{}
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			if s := strings.TrimSpace(asString(item)); s != "" {
				out = append(out, s)
			}
		}
	case string:
		out = append(out, splitList(t)...)
	}
	return out
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
