// Package prompt builds the adviser persona system prompt from
// conversation state: what is known, what to ask next, and how to fold
// extraction results into the reply.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bunnyflex/factfind-chatbot/internal/types"
)

// targetFieldCount is the denominator for the progress figure. It is
// the count of tracked fact-find fields, not everything collected.
const targetFieldCount = 10

type infoCheck struct {
	key   string
	label string
	// condition nil = always tracked; false = skipped entirely
	condition func(types.CollectedData) *bool
}

func boolPtr(b bool) *bool { return &b }

var infoChecks = []infoCheck{
	{key: "ukResident", label: "UK residency"},
	{key: "maritalStatus", label: "marital status"},
	{key: "hasDependents", label: "dependents"},
	{key: "numDependents", label: "number of dependents", condition: func(d types.CollectedData) *bool {
		v, ok := d.Lookup("hasDependents")
		return boolPtr(ok && v == true)
	}},
	{key: "employmentStatus", label: "employment"},
	{key: "occupation", label: "occupation", condition: func(d types.CollectedData) *bool {
		v, ok := d.Lookup("employmentStatus")
		return boolPtr(ok && (v == "Employed" || v == "Self-employed"))
	}},
	{key: "smokingStatus", label: "smoking status"},
	{key: "height", label: "height"},
	{key: "weight", label: "weight"},
	{key: "annualIncome", label: "income"},
}

var nextFocusByLabel = map[string][2]string{
	"UK residency":         {"Ask about UK residency and tax status", "Start with a warm greeting and ask about UK residency"},
	"marital status":       {"Ask about marital status (married, single, etc.)", "React positively to their previous answer, then ask about relationship status"},
	"dependents":           {"Ask if they have any children or dependents", "Show interest in their family situation"},
	"number of dependents": {"Ask how many dependents they have and their ages", "Since they have dependents, get specific details"},
	"employment":           {"Ask about their employment status", "Transition naturally to their work situation"},
	"occupation":           {"Ask about their specific job or profession", "Get details about their occupation for insurance purposes"},
	"smoking status":       {"Ask about smoking habits", "Ask about smoking in a friendly, non-judgmental way"},
	"height":               {"Ask for their height", "Explain this helps with life insurance calculations"},
	"weight":               {"Ask for their weight", "Mention this is for health assessment purposes"},
	"income":               {"Ask about their annual income", "Ask about income to determine coverage needs"},
}

// Progress returns fact-find completion as a 0-100 percentage.
func Progress(data types.CollectedData) int {
	total := len(data.Personal) + len(data.Financial) + len(data.Insurance) + len(data.Preferences)
	pct := total * 100 / targetFieldCount
	if pct > 100 {
		pct = 100
	}
	return pct
}

// GenerateSystemPrompt renders the adviser persona prompt. Once the
// fact-find is effectively complete it switches to the recommendations
// variant.
func GenerateSystemPrompt(state *types.ConversationState) string {
	data := state.CollectedData
	progress := Progress(data)

	if progress >= 90 {
		raw, _ := json.MarshalIndent(data, "", "  ")
		return fmt.Sprintf(`You are Alex, a friendly UK insurance advisor AI. The user has completed their fact-find interview!

PERSONALITY: Enthusiastic, warm, knowledgeable. Use "brilliant!", "fantastic!", "perfect!" etc.

COLLECTED DATA: %s

TASK: Give personalized insurance recommendations based on their information. Be specific and helpful. Keep it under 100 words and offer to answer questions.`, raw)
	}

	known, unknown := classify(data)

	nextFocus := ""
	tone := ""
	if len(unknown) > 0 {
		next := pickNext(unknown, state.LastAssistantMessage())
		if pair, ok := nextFocusByLabel[next]; ok {
			nextFocus, tone = pair[0], pair[1]
		} else {
			nextFocus = "Continue gathering insurance information"
			tone = "Keep the conversation flowing naturally"
		}
	}

	contextInfo := "\n\nKNOWN INFORMATION: None yet"
	if len(known) > 0 {
		contextInfo = "\n\nKNOWN INFORMATION: " + strings.Join(known, ", ")
	}

	recentContext := ""
	if recent := recentMessages(state.Messages, 6); len(recent) > 0 {
		var lines []string
		for _, m := range recent {
			lines = append(lines, strings.ToUpper(m.Role)+": "+m.Content)
		}
		recentContext = "\n\nRECENT CONVERSATION:\n" + strings.Join(lines, "\n")
	}

	return fmt.Sprintf(`You are Alex, a friendly UK insurance advisor AI conducting a natural conversation to gather insurance information.

PERSONALITY:
- Warm, enthusiastic, and genuinely interested
- Use natural reactions: "That's great!", "Brilliant!", "I love that!"
- Be conversational, not robotic or formal
- Show you're listening by referencing what they just said
- Keep responses SHORT (30-50 words typically)
- Ask ONE question at a time

CURRENT PROGRESS: %d%% complete%s

NEXT FOCUS: %s
CONVERSATION TONE: %s%s

CRITICAL RULES:
1. NEVER repeat questions about information you already know
2. Always acknowledge their previous answer before asking the next question
3. Be natural and conversational - avoid formal language
4. Reference specific details they've shared to show you're listening
5. If they seem to have answered something, move on to the next topic
6. Don't ask about dependents details if they don't have dependents
7. Don't ask about occupation if they're unemployed/retired

CONVERSATION FLOW:
- Start by acknowledging what they just told you
- Make a brief positive comment about their answer
- Transition naturally to the next question
- Keep it feeling like a friendly chat, not an interrogation

Remember: This should feel like a natural conversation with a friendly advisor, not a boring form-filling exercise!`,
		progress, contextInfo, nextFocus, tone, recentContext)
}

// WithExtraction appends extraction results and handling instructions to
// a system prompt. No-op when nothing was extracted.
func WithExtraction(base string, res types.SmartExtractionResult) string {
	if len(res.Extracted) == 0 {
		return base
	}
	raw, _ := json.MarshalIndent(res.Extracted, "", "  ")

	var b strings.Builder
	b.WriteString(base)
	fmt.Fprintf(&b, `

DATA EXTRACTION RESULTS:
- Extracted data: %s
- Extraction confidence: %.1f%%
- Needs clarification: %t
`, raw, res.Confidence*100, res.NeedsClarification)
	if len(res.ClarificationQuestions) > 0 {
		fmt.Fprintf(&b, "- Clarification needed for: %s\n", strings.Join(res.ClarificationQuestions, ", "))
	}
	b.WriteString(`
INSTRUCTIONS FOR USING EXTRACTION DATA:
- If confidence is above 80%, acknowledge the extracted information confidently
- If confidence is 60-80%, acknowledge but ask for confirmation
- If confidence is below 60% or clarification is needed, ask for clarification
- Use the extracted data to personalize your response and move the conversation forward
- If multiple pieces of data were extracted, acknowledge all of them naturally`)
	return b.String()
}

func classify(data types.CollectedData) (known, unknown []string) {
	for _, check := range infoChecks {
		if check.condition != nil {
			if c := check.condition(data); c != nil && !*c {
				continue
			}
		}
		v, ok := data.Lookup(check.key)
		if !ok {
			unknown = append(unknown, check.label)
			continue
		}
		switch check.key {
		case "ukResident", "hasDependents":
			if v == true {
				known = append(known, check.label+": Yes")
			} else {
				known = append(known, check.label+": No")
			}
		default:
			known = append(known, fmt.Sprintf("%s: %v", check.label, v))
		}
	}
	return known, unknown
}

// pickNext skips topics the assistant just asked about so the prompt
// does not steer the model into repeating itself.
func pickNext(unknown []string, lastAssistant string) string {
	last := strings.ToLower(lastAssistant)
	for _, label := range unknown {
		if last == "" || !strings.Contains(last, strings.ToLower(label)) {
			return label
		}
	}
	return unknown[0]
}

func recentMessages(msgs []types.Message, n int) []types.Message {
	if len(msgs) <= n {
		return msgs
	}
	return msgs[len(msgs)-n:]
}
