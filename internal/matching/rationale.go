package matching

import (
	"strings"
)

const matchedPrefix = "Matched topics:"

func MatchedRationale(topics []string) string {
	return matchedPrefix + " " + strings.Join(topics, ", ")
}

func NoMatchRationale(topic string) string {
	return "No matching course found for " + topic
}

// ParseRationale recovers the topic list from a MatchedRationale sentence.
// It is only used for links stored without a structured topic list.
func ParseRationale(rationale string) []string {
	rationale = strings.TrimSpace(rationale)
	if len(rationale) >= len(matchedPrefix) && strings.EqualFold(rationale[:len(matchedPrefix)], matchedPrefix) {
		rationale = rationale[len(matchedPrefix):]
	}

	topics := []string{}
	for _, part := range strings.Split(rationale, ",") {
		if part = strings.TrimSpace(part); part != "" {
			topics = append(topics, part)
		}
	}
	return topics
}
