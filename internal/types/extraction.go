package types

// ExtractionResult is the outcome of applying one extractor to one
// message. On success Value holds the formatted typed value and
// Original the raw matched fragment; on failure Reason explains why and
// Suggestions offer example phrasings.
type ExtractionResult struct {
	Success     bool     `json:"success"`
	Value       any      `json:"value,omitempty"`
	Confidence  float64  `json:"confidence,omitempty"`
	Original    string   `json:"original,omitempty"`
	Reason      string   `json:"reason,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// ExtractionContext is the ambient state supplied with each utterance.
// The engine itself is stateless; everything it knows about the
// conversation arrives here.
type ExtractionContext struct {
	CurrentQuestionID    string        `json:"current_question_id,omitempty"`
	PreviousAnswers      CollectedData `json:"previous_answers"`
	ConversationHistory  []string      `json:"conversation_history,omitempty"`
	LastAssistantMessage string        `json:"last_assistant_message,omitempty"`
}

// SmartExtractionResult aggregates one utterance's extraction outcome.
// Confidence is the mean over accepted fields, 0 when none succeeded.
type SmartExtractionResult struct {
	Extracted              map[string]any `json:"extracted"`
	Confidence             float64        `json:"confidence"`
	NeedsClarification     bool           `json:"needs_clarification"`
	ClarificationQuestions []string       `json:"clarification_questions"`
	ValidationErrors       []string       `json:"validation_errors"`
}
