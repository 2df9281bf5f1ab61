// Package engine is the smart-extraction orchestrator: one utterance in,
// one aggregate extraction result out. The engine is stateless per call;
// everything it knows about the conversation arrives in the
// ExtractionContext, so concurrent callers need no coordination.
package engine

import (
	"fmt"
	"strings"

	"github.com/bunnyflex/factfind-chatbot/internal/extractor"
	"github.com/bunnyflex/factfind-chatbot/internal/logger"
	"github.com/bunnyflex/factfind-chatbot/internal/mapping"
	"github.com/bunnyflex/factfind-chatbot/internal/types"
)

// clarificationFloor is the overall-confidence level below which the
// result is flagged for clarification even without missing fields.
const clarificationFloor = 0.7

type Option func(*Engine)

// WithVisibility filters clarification questions through a
// conditional-visibility predicate, so follow-ups whose parent answer is
// unknown are not asked. Without it every missing required field is
// surfaced.
func WithVisibility(fn func(questionID string, answers types.CollectedData) bool) Option {
	return func(e *Engine) { e.visible = fn }
}

type Engine struct {
	registry *extractor.Registry
	table    []mapping.FieldMapping
	visible  func(questionID string, answers types.CollectedData) bool
	log      *logger.Logger
}

func New(registry *extractor.Registry, table []mapping.FieldMapping, opts ...Option) *Engine {
	e := &Engine{
		registry: registry,
		table:    table,
		log:      logger.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SmartExtract runs the full per-utterance flow: small-talk
// short-circuit, relevance selection, extraction, mapping-level
// re-validation, then the missing-required-field clarification scan.
// The result is advisory; acceptance thresholds belong to the caller.
func (e *Engine) SmartExtract(message string, ctx types.ExtractionContext) types.SmartExtractionResult {
	clean := strings.ToLower(strings.TrimSpace(message))

	if isSmallTalk(clean) {
		return types.SmartExtractionResult{
			Extracted:              map[string]any{},
			Confidence:             0,
			NeedsClarification:     true,
			ClarificationQuestions: coreQuestionList(),
			ValidationErrors:       []string{},
		}
	}

	extracted := map[string]any{}
	validationErrors := []string{}
	totalConfidence := 0.0
	accepted := 0

	for _, m := range e.relevantMappings(clean, ctx) {
		res, err := e.registry.Apply(m.ExtractorKey, message)
		if err != nil {
			// Unknown extractor key is a configuration defect, not a
			// user-facing failure; log and move on.
			e.log.WithError(err).WithField("question_id", m.QuestionID).Error("field mapping references unknown extractor")
			continue
		}
		if !res.Success {
			continue
		}
		if ok, reason := m.Rules.Validate(res.Value); !ok {
			validationErrors = append(validationErrors, fmt.Sprintf("%s: %s", m.DataField, reason))
			continue
		}
		extracted[m.DataField] = res.Value
		totalConfidence += res.Confidence
		accepted++
	}

	// Ask about required fields that are globally missing, independent
	// of what this utterance was about.
	clarifications := []string{}
	for _, m := range e.table {
		if !m.Rules.Required {
			continue
		}
		if _, ok := extracted[m.DataField]; ok {
			continue
		}
		if _, ok := ctx.PreviousAnswers.Lookup(m.DataField); ok {
			continue
		}
		if e.visible != nil && !e.visible(m.QuestionID, ctx.PreviousAnswers) {
			continue
		}
		clarifications = append(clarifications, mapping.ClarificationQuestion(m))
	}

	confidence := 0.0
	if accepted > 0 {
		confidence = totalConfidence / float64(accepted)
	}

	return types.SmartExtractionResult{
		Extracted:              extracted,
		Confidence:             confidence,
		NeedsClarification:     len(clarifications) > 0 || len(validationErrors) > 0 || confidence < clarificationFloor,
		ClarificationQuestions: clarifications,
		ValidationErrors:       validationErrors,
	}
}

// ExtractForQuestion applies the extractor bound to a known question id.
func (e *Engine) ExtractForQuestion(message, questionID string) (types.ExtractionResult, error) {
	m, ok := mapping.ByQuestion(e.table, questionID)
	if !ok {
		return types.ExtractionResult{}, fmt.Errorf("unknown question id: %s", questionID)
	}
	return e.registry.Apply(m.ExtractorKey, message)
}
