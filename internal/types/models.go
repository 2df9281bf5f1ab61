package types

import "time"

type Message struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"` // user, assistant, system
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// CollectedData is the four-category fact-find record built up over a
// conversation. Values are plain scalars (string, bool, int, float64)
// so the record serializes cleanly across the API boundary.
type CollectedData struct {
	Personal    map[string]any `json:"personal"`
	Financial   map[string]any `json:"financial"`
	Insurance   map[string]any `json:"insurance"`
	Preferences map[string]any `json:"preferences"`
}

func NewCollectedData() CollectedData {
	return CollectedData{
		Personal:    map[string]any{},
		Financial:   map[string]any{},
		Insurance:   map[string]any{},
		Preferences: map[string]any{},
	}
}

// Category returns the value map for a category name, nil if unknown.
func (c CollectedData) Category(name string) map[string]any {
	switch name {
	case "personal":
		return c.Personal
	case "financial":
		return c.Financial
	case "insurance":
		return c.Insurance
	case "preferences":
		return c.Preferences
	}
	return nil
}

// Lookup scans all four categories for a field. A field counts as
// present only when its value is non-nil and not the empty string.
func (c CollectedData) Lookup(field string) (any, bool) {
	for _, m := range []map[string]any{c.Personal, c.Financial, c.Insurance, c.Preferences} {
		if m == nil {
			continue
		}
		if v, ok := m[field]; ok && v != nil && v != "" {
			return v, true
		}
	}
	return nil, false
}

// Set writes a field value into the named category.
func (c CollectedData) Set(category, field string, value any) {
	if m := c.Category(category); m != nil {
		m[field] = value
	}
}

type ConversationState struct {
	SessionID       string        `json:"session_id"`
	Messages        []Message     `json:"messages"`
	CollectedData   CollectedData `json:"collected_data"`
	CurrentQuestion string        `json:"current_question,omitempty"`
	Progress        int           `json:"progress"` // 0-100
	IsComplete      bool          `json:"is_complete"`
	StartTime       time.Time     `json:"start_time"`
	LastActivity    time.Time     `json:"last_activity"`
}

// History flattens the message contents in order, the shape the
// extraction context consumes.
func (s *ConversationState) History() []string {
	out := make([]string, 0, len(s.Messages))
	for _, m := range s.Messages {
		out = append(out, m.Content)
	}
	return out
}

// LastAssistantMessage returns the most recent assistant turn, "" if none.
func (s *ConversationState) LastAssistantMessage() string {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if s.Messages[i].Role == "assistant" {
			return s.Messages[i].Content
		}
	}
	return ""
}
