package engine

import "regexp"

// Small-talk is matched against the whole normalized message, never as
// a substring, so "fine" short-circuits but "I'm fine with that plan"
// does not lose its tail to the greeting check.
var casualPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(hi|hello|hey|good morning|good afternoon|good evening)$`),
	regexp.MustCompile(`^(i am fine|i'm fine|fine|good|great|okay|ok)$`),
	regexp.MustCompile(`^(how are you|what's up|how's it going)$`),
	regexp.MustCompile(`^(thanks|thank you|cheers)$`),
	regexp.MustCompile(`^(bye|goodbye|see you|talk soon)$`),
}

// The seven core fact-find prompts returned when small-talk
// short-circuits extraction.
var coreQuestions = []string{
	"Are you UK domiciled and a UK tax resident?",
	"What is your marital status?",
	"Do you have any dependents?",
	"What is your employment status?",
	"Do you smoke?",
	"What is your height?",
	"What is your weight?",
}

func isSmallTalk(clean string) bool {
	for _, p := range casualPatterns {
		if p.MatchString(clean) {
			return true
		}
	}
	return false
}

func coreQuestionList() []string {
	out := make([]string, len(coreQuestions))
	copy(out, coreQuestions)
	return out
}
