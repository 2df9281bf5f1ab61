package engine

import (
	"regexp"

	"github.com/bunnyflex/factfind-chatbot/internal/mapping"
	"github.com/bunnyflex/factfind-chatbot/internal/types"
)

// Topic keyword gates. A message may hit several topics; candidates
// accumulate and are deduplicated by data field.
var (
	topicUKRE         = regexp.MustCompile(`(?i)\b(uk|united kingdom|britain|british|resident|residency|domiciled|tax resident)\b`)
	topicMaritalRE    = regexp.MustCompile(`(?i)\b(single|married|divorced|widowed|separated|civil partnership|partner|relationship|marital|marriage)\b`)
	topicDependentsRE = regexp.MustCompile(`(?i)\b(children|kids|dependents|child|kid|dependent|family|son|daughter|have children|have kids|no children|no kids|no dependents|don't have children|don't have kids|don't have dependents|haven't got children|haven't got kids|no family|childless)\b`)
	topicEmploymentRE = regexp.MustCompile(`(?i)\b(work|job|employed|employment|unemployed|retired|self-employed|freelance|occupation|career|profession)\b`)
	topicSmokingRE    = regexp.MustCompile(`(?i)\b(smoke|smoking|smoker|cigarette|tobacco|vape|vaping|non-smoker|never smoked)\b`)
	topicHeightRE     = regexp.MustCompile(`(?i)\b(height|tall|feet|foot|inches|cm|centimeters|metres|meters|ft|in)\b`)
	topicWeightRE     = regexp.MustCompile(`(?i)\b(weight|weigh|kg|kilograms|pounds|lbs|stone|st)\b`)

	bareYesNoRE = regexp.MustCompile(`(?i)\b(yes|no|yeah|nope|yep|nah)\b`)

	// Prior-assistant-turn cues for bare yes/no replies.
	cueUKRE         = regexp.MustCompile(`(?i)\b(uk|resident|domiciled|tax)\b`)
	cueDependentsRE = regexp.MustCompile(`(?i)\b(dependents|children|kids)\b`)
	cueSmokingRE    = regexp.MustCompile(`(?i)\b(smoke|smoking)\b`)
	cueMaritalRE    = regexp.MustCompile(`(?i)\b(married|single|marital|relationship)\b`)

	maritalAnswerRE    = regexp.MustCompile(`(?i)\b(single|married|divorced|widowed|separated)\b`)
	dependentsAnswerRE = regexp.MustCompile(`(?i)\b(children|kids|dependents|no children|no kids|no dependents)\b`)
)

// relevantMappings decides which field mappings are worth attempting for
// this utterance. An empty result means the orchestrator must not guess.
func (e *Engine) relevantMappings(clean string, ctx types.ExtractionContext) []mapping.FieldMapping {
	var out []mapping.FieldMapping
	seen := map[string]bool{}

	add := func(field string) {
		if seen[field] {
			return
		}
		if m, ok := mapping.ByField(e.table, field); ok {
			out = append(out, m)
			seen[field] = true
		}
	}

	if topicUKRE.MatchString(clean) {
		add("ukResident")
	}
	if topicMaritalRE.MatchString(clean) {
		add("maritalStatus")
	}
	if topicDependentsRE.MatchString(clean) {
		add("hasDependents")
		add("numDependents")
		add("dependentAges")
	}
	if topicEmploymentRE.MatchString(clean) {
		add("employmentStatus")
		add("occupation")
	}
	if topicSmokingRE.MatchString(clean) {
		add("smokingStatus")
	}
	if topicHeightRE.MatchString(clean) {
		add("height")
	}
	if topicWeightRE.MatchString(clean) {
		add("weight")
	}

	// Bare yes/no with no topic hit: let the previous assistant turn
	// (second-to-last history entry) decide what is being answered.
	if len(out) == 0 && bareYesNoRE.MatchString(clean) {
		prior := ""
		if n := len(ctx.ConversationHistory); n >= 2 {
			prior = ctx.ConversationHistory[n-2]
		}
		switch {
		case cueUKRE.MatchString(prior):
			add("ukResident")
		case cueDependentsRE.MatchString(prior):
			add("hasDependents")
		case cueSmokingRE.MatchString(prior):
			add("smokingStatus")
		}
	}

	// Cross-topic inference: a marital-status reply to a dependents
	// question is an indirect dependents answer, and vice versa.
	last := ctx.LastAssistantMessage
	if cueDependentsRE.MatchString(last) && maritalAnswerRE.MatchString(clean) {
		add("hasDependents")
	}
	if cueMaritalRE.MatchString(last) && dependentsAnswerRE.MatchString(clean) {
		add("maritalStatus")
	}

	return out
}
