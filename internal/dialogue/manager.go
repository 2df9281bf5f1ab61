// Package dialogue runs a fact-find turn end to end: extract answers
// from the utterance, fold accepted values into the conversation state,
// pick the next question, and produce the adviser's reply.
package dialogue

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bunnyflex/factfind-chatbot/internal/engine"
	"github.com/bunnyflex/factfind-chatbot/internal/extractor"
	"github.com/bunnyflex/factfind-chatbot/internal/logger"
	"github.com/bunnyflex/factfind-chatbot/internal/mapping"
	"github.com/bunnyflex/factfind-chatbot/internal/prompt"
	"github.com/bunnyflex/factfind-chatbot/internal/questionnaire"
	"github.com/bunnyflex/factfind-chatbot/internal/responder"
	"github.com/bunnyflex/factfind-chatbot/internal/types"
)

// Policy is the confidence banding for applying extracted values.
// At or above Accept a value is committed outright. Between SoftAccept
// and Accept it is committed but flagged for confirmation. Below
// SoftAccept it is discarded.
type Policy struct {
	Accept     float64
	SoftAccept float64
}

func DefaultPolicy() Policy {
	return Policy{Accept: 0.85, SoftAccept: 0.75}
}

// PolicyFromEnv reads ACCEPT_THRESHOLD and SOFT_ACCEPT_THRESHOLD,
// keeping defaults for anything unset or unparseable.
func PolicyFromEnv() Policy {
	p := DefaultPolicy()
	if v, err := strconv.ParseFloat(os.Getenv("ACCEPT_THRESHOLD"), 64); err == nil && v > 0 && v <= 1 {
		p.Accept = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("SOFT_ACCEPT_THRESHOLD"), 64); err == nil && v > 0 && v <= 1 {
		p.SoftAccept = v
	}
	if p.SoftAccept > p.Accept {
		p.SoftAccept = p.Accept
	}
	return p
}

// TurnResult is everything one HandleTurn call produced.
type TurnResult struct {
	Reply             string                      `json:"reply"`
	Extraction        types.SmartExtractionResult `json:"extraction"`
	AppliedFields     []string                    `json:"applied_fields"`
	NeedsConfirmation bool                        `json:"needs_confirmation"`
	NextQuestionID    string                      `json:"next_question_id,omitempty"`
	Progress          int                         `json:"progress"`
	IsComplete        bool                        `json:"is_complete"`
}

type Manager struct {
	engine    *engine.Engine
	registry  *extractor.Registry
	table     []mapping.FieldMapping
	questions *questionnaire.Questionnaire
	responder *responder.Responder
	policy    Policy
	log       *logger.Logger
}

func NewManager(eng *engine.Engine, reg *extractor.Registry, table []mapping.FieldMapping, q *questionnaire.Questionnaire, resp *responder.Responder, policy Policy, log *logger.Logger) *Manager {
	return &Manager{
		engine:    eng,
		registry:  reg,
		table:     table,
		questions: q,
		responder: resp,
		policy:    policy,
		log:       log,
	}
}

// HandleTurn processes one user utterance against the session state.
// The state is mutated in place: messages appended, accepted values
// stored, progress and current question advanced.
func (m *Manager) HandleTurn(ctx context.Context, state *types.ConversationState, userMessage string) (TurnResult, error) {
	log := m.log.WithSession(state.SessionID)

	state.Messages = append(state.Messages, types.Message{
		ID:        uuid.New().String(),
		Role:      "user",
		Content:   userMessage,
		Timestamp: time.Now(),
	})
	state.LastActivity = time.Now()

	extractionCtx := types.ExtractionContext{
		CurrentQuestionID:    state.CurrentQuestion,
		PreviousAnswers:      state.CollectedData,
		ConversationHistory:  state.History(),
		LastAssistantMessage: state.LastAssistantMessage(),
	}
	res := m.engine.SmartExtract(userMessage, extractionCtx)

	var applied []string
	needsConfirmation := false
	if len(res.Extracted) > 0 && res.Confidence >= m.policy.SoftAccept {
		needsConfirmation = res.Confidence < m.policy.Accept
		for field, value := range res.Extracted {
			fm, ok := mapping.ByField(m.table, field)
			if !ok {
				continue
			}
			state.CollectedData.Set(fm.DataCategory, field, value)
			applied = append(applied, field)
		}
		log.WithField("fields", applied).WithField("confidence", res.Confidence).Info("applied extracted answers")
	} else if len(res.Extracted) > 0 {
		log.WithField("confidence", res.Confidence).Debug("extraction below soft-accept threshold, discarded")
	}

	// A direct answer to an unmapped follow-up question is captured from
	// the current-question context since no extractor covers it.
	if len(applied) == 0 && state.CurrentQuestion != "" {
		if field, value, ok := m.captureFollowUp(state.CurrentQuestion, userMessage); ok {
			state.CollectedData.Set("personal", field, value)
			applied = append(applied, field)
		}
	}

	state.Progress = prompt.Progress(state.CollectedData)
	state.IsComplete = state.Progress >= 100

	next := m.nextQuestion(state.CollectedData)
	if next != nil {
		state.CurrentQuestion = next.ID
	} else {
		state.CurrentQuestion = ""
		state.IsComplete = true
	}

	systemPrompt := prompt.WithExtraction(prompt.GenerateSystemPrompt(state), res)
	reply, err := m.responder.Reply(ctx, systemPrompt, state.Messages, res)
	if err != nil {
		log.WithError(err).Warn("responder unavailable, using scripted reply")
		reply = m.scriptedReply(res, next)
	}

	state.Messages = append(state.Messages, types.Message{
		ID:        uuid.New().String(),
		Role:      "assistant",
		Content:   reply,
		Timestamp: time.Now(),
	})

	result := TurnResult{
		Reply:             reply,
		Extraction:        res,
		AppliedFields:     applied,
		NeedsConfirmation: needsConfirmation,
		Progress:          state.Progress,
		IsComplete:        state.IsComplete,
	}
	if next != nil {
		result.NextQuestionID = next.ID
	}
	return result, nil
}

// nextQuestion returns the first visible question with no stored answer,
// in section order. Questions backed by the extraction table check their
// data field; follow-ups without one check their own id.
func (m *Manager) nextQuestion(data types.CollectedData) *questionnaire.Question {
	for _, q := range m.questions.Questions() {
		if !questionnaire.ShouldShow(q.ID, data) {
			continue
		}
		field := questionnaire.FieldName(q.ID)
		if fm, ok := mapping.ByQuestion(m.table, q.ID); ok {
			field = fm.DataField
		}
		if _, answered := data.Lookup(field); !answered {
			qq := q
			return &qq
		}
	}
	return nil
}

// captureFollowUp stores answers to questions the extraction table does
// not cover. Booleans go through the yes/no extractor; free-text answers
// are kept verbatim. Answers are keyed by the question's field name so
// the visibility rules see them.
func (m *Manager) captureFollowUp(questionID, message string) (string, any, bool) {
	if _, mapped := mapping.ByQuestion(m.table, questionID); mapped {
		return "", nil, false
	}
	q, ok := m.questions.Question(questionID)
	if !ok {
		return "", nil, false
	}
	field := questionnaire.FieldName(q.ID)
	switch q.Type {
	case questionnaire.TypeBoolean:
		res, err := m.registry.Apply(extractor.KeyBooleanResponse, message)
		if err != nil || !res.Success || res.Confidence < m.policy.SoftAccept {
			return "", nil, false
		}
		return field, res.Value, true
	case questionnaire.TypeText:
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			return "", nil, false
		}
		return field, trimmed, true
	case questionnaire.TypeSelect:
		trimmed := strings.TrimSpace(message)
		for _, opt := range q.Options {
			if strings.EqualFold(trimmed, opt) || strings.Contains(strings.ToLower(trimmed), strings.ToLower(opt)) {
				return field, opt, true
			}
		}
		return "", nil, false
	default:
		return "", nil, false
	}
}

// scriptedReply keeps the conversation moving when the gateway is down.
func (m *Manager) scriptedReply(res types.SmartExtractionResult, next *questionnaire.Question) string {
	if len(res.ClarificationQuestions) > 0 {
		return res.ClarificationQuestions[0]
	}
	if next != nil {
		return next.Text
	}
	return "Thanks, that completes your fact-find. I'll put your recommendations together now."
}
