package statement

import "strings"

// AllTopics is the topic sentinel meaning "do not filter by topic"
const AllTopics = "all"

// Filter selects statements by topic and an inclusive period range.
// Empty fields do not constrain the result.
type Filter struct {
	Topic       string
	StartPeriod Period
	EndPeriod   Period
}

// HasTopic reports whether the filter constrains the topic
func (f Filter) HasTopic() bool {
	return f.Topic != "" && f.Topic != AllTopics
}

// Matches reports whether a statement with the given topic and period
// passes the filter
func (f Filter) Matches(topic string, period Period) bool {
	if f.HasTopic() && topic != f.Topic {
		return false
	}
	if !f.StartPeriod.IsZero() && period < f.StartPeriod {
		return false
	}
	if !f.EndPeriod.IsZero() && period > f.EndPeriod {
		return false
	}
	return true
}

// Key returns a stable string identifying the filter, for cache keys
func (f Filter) Key() string {
	topic := f.Topic
	if !f.HasTopic() {
		topic = AllTopics
	}
	return strings.Join([]string{topic, string(f.StartPeriod), string(f.EndPeriod)}, "|")
}
