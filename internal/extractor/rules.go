package extractor

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ---------- package-level compiled patterns, grouped per extractor ----------

// UK residency
var (
	ukAffirmRE  = regexp.MustCompile(`(?i)\b(yes|yeah|yep|y|true|correct|indeed|absolutely|definitely|of course)\b`)
	ukNegateRE  = regexp.MustCompile(`(?i)\b(no|nope|n|false|incorrect|not really|negative)\b`)
	ukCountryRE = regexp.MustCompile(`(?i)\b(uk|united kingdom|britain|british|england|scotland|wales|northern ireland)\b`)

	ukPositiveRE = regexp.MustCompile(`(?i)\b(yes|yeah|yep|y|true|correct|indeed|absolutely|definitely|of course|uk|united kingdom|britain|british|england|scotland|wales|northern ireland)\b`)
	ukStrongRE   = regexp.MustCompile(`(?i)\b(yes|absolutely|definitely|of course)\b`)
	ukNationRE   = regexp.MustCompile(`(?i)\b(uk|united kingdom|britain|british)\b`)
	ukCasualRE   = regexp.MustCompile(`(?i)\b(yeah|yep|y|true)\b`)
)

// Marital status
var (
	maritalRE      = regexp.MustCompile(`(?i)\b(single|married|divorced|widowed|separated|civil partnership|partner|relationship)\b`)
	maritalNotRE   = regexp.MustCompile(`(?i)\b(not married|unmarried|never married)\b`)
	maritalRelRE   = regexp.MustCompile(`(?i)\b(in a relationship|with someone|have a partner)\b`)
	maritalCivilRE = regexp.MustCompile(`(?i)\b(civil union|domestic partnership)\b`)

	mSingleRE    = regexp.MustCompile(`\b(single|not married|unmarried|never married)\b`)
	mMarriedRE   = regexp.MustCompile(`\b(married|marriage)\b`)
	mDivorcedRE  = regexp.MustCompile(`\b(divorced|divorce)\b`)
	mWidowedRE   = regexp.MustCompile(`\b(widowed|widow|widower)\b`)
	mSeparatedRE = regexp.MustCompile(`\b(separated|separation)\b`)
	mCivilRE     = regexp.MustCompile(`\b(civil partnership|civil union|domestic partnership)\b`)
	mPartnerRE   = regexp.MustCompile(`\b(partner|relationship|with someone|have a partner)\b`)

	maritalExactRE = regexp.MustCompile(`(?i)\b(single|married|divorced|widowed|separated|civil partnership)\b`)
)

// Generic yes/no (dependents and similar)
var (
	boolAffirmRE = regexp.MustCompile(`(?i)\b(yes|yeah|yep|y|true|correct|indeed|absolutely|definitely|of course|sure)\b`)
	boolNegateRE = regexp.MustCompile(`(?i)\b(no|nope|n|false|incorrect|not really|negative|nah|never)\b`)
	boolHaveRE   = regexp.MustCompile(`(?i)\b(i do have|i have children|i have kids|i have dependents)\b`)
	boolNoneRE   = regexp.MustCompile(`(?i)\b(i don't have|i haven't got|no children|no kids|no dependents|none|zero|don't have any|haven't got any|childless|no family)\b`)
	boolSingleRE = regexp.MustCompile(`(?i)\b(single|i am single|i'm single)\b`)

	boolPositiveRE  = regexp.MustCompile(`(?i)\b(yes|yeah|yep|y|true|correct|indeed|absolutely|definitely|of course|sure|i do have|i have children|i have kids|i have dependents)\b`)
	boolStrongYesRE = regexp.MustCompile(`(?i)\b(yes|absolutely|definitely|of course)\b`)
	boolStrongNoRE  = regexp.MustCompile(`(?i)\b(no|never|none)\b`)
	boolHaveKidsRE  = regexp.MustCompile(`(?i)\b(i have children|i have kids|i have dependents)\b`)
	boolNoKidsRE    = regexp.MustCompile(`(?i)\b(no children|no kids|no dependents|don't have any|haven't got any|childless)\b`)
	boolCasualRE    = regexp.MustCompile(`(?i)\b(yeah|yep|sure)\b`)
)

// Numbers
var (
	numDigitsRE    = regexp.MustCompile(`\b(\d+)\b`)
	numWordRE      = regexp.MustCompile(`(?i)\b(zero|one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve|thirteen|fourteen|fifteen|sixteen|seventeen|eighteen|nineteen|twenty)\b`)
	numNegRE       = regexp.MustCompile(`(?i)\b(none|no|not any|don't have any)\b`)
	numNegZeroRE   = regexp.MustCompile(`(?i)\b(none|no|not any|don't have any|zero)\b`)
	numAnyDigitRE  = regexp.MustCompile(`\d+`)
	numSmallWordRE = regexp.MustCompile(`(?i)\b(zero|one|two|three|four|five)\b`)
	numNoneConfRE  = regexp.MustCompile(`(?i)\b(none|no|not any)\b`)
	wordTokenRE    = regexp.MustCompile(`[a-z]+`)
)

var wordNumbers = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18,
	"nineteen": 19, "twenty": 20,
}

// Ages. The range and approximation patterns must be tried before the
// bare-number pattern: a bare 1-2 digit match would otherwise swallow
// "5 to 10" and "around 8" and lose the range/hedge information.
var (
	ageRangeRE   = regexp.MustCompile(`(?i)\b(\d{1,2})\s*(?:to|-)\s*(\d{1,2})\s*(?:years?\s*old)?\b`)
	ageApproxRE  = regexp.MustCompile(`(?i)\b(?:under|over|about|around|approximately|roughly)\s*(\d{1,2})\b`)
	ageBareRE    = regexp.MustCompile(`(?i)\b(\d{1,2})\s*(?:years?\s*old|yrs?\s*old|y\.?o\.?)?\b`)
	ageDescRE    = regexp.MustCompile(`(?i)\b(teen|teenager|adult|child|baby|infant|toddler|young|old)\b`)
	ageHedgeRE   = regexp.MustCompile(`(?i)\b(about|around|approximately|roughly)\b`)
	ageBucketRE  = regexp.MustCompile(`(?i)\b(teen|teenager|child|baby|infant|toddler)\b`)
	ageDigitsRE  = regexp.MustCompile(`\d{1,2}`)
	ageBabyRE    = regexp.MustCompile(`(?i)\b(baby|infant)\b`)
	ageRangeFmtRE  = regexp.MustCompile(`(\d{1,2})\s*(?:to|-)\s*(\d{1,2})`)
	ageApproxFmtRE = regexp.MustCompile(`(?i)(?:under|over|about|around|approximately|roughly)\s*(\d{1,2})`)
)

// Employment
var (
	empPrimaryRE = regexp.MustCompile(`(?i)\b(employed|unemployed|self[- ]?employed|retired|student|homemaker|disabled|part[- ]?time|full[- ]?time)\b`)
	empWorkRE    = regexp.MustCompile(`(?i)\b(work|working|job|career|business|company|freelance|contractor)\b`)
	empNotWorkRE = regexp.MustCompile(`(?i)\b(not working|out of work|between jobs|looking for work|job hunting)\b`)
	empOwnBizRE  = regexp.MustCompile(`(?i)\b(own business|run a business|entrepreneur|freelancer)\b`)

	empUnempRE    = regexp.MustCompile(`\b(unemployed|not working|out of work|between jobs|looking for work|job hunting)\b`)
	empSelfRE     = regexp.MustCompile(`\b(self[- ]?employed|own business|run a business|entrepreneur|freelance|contractor|freelancer)\b`)
	empRetiredRE  = regexp.MustCompile(`\b(retired|retirement)\b`)
	empStudentRE  = regexp.MustCompile(`\b(student|studying|university|college|school)\b`)
	empHomeRE     = regexp.MustCompile(`\b(homemaker|housewife|househusband|stay[- ]?at[- ]?home)\b`)
	empDisabledRE = regexp.MustCompile(`\b(disabled|disability|unable to work)\b`)
	empPartRE     = regexp.MustCompile(`\b(part[- ]?time)\b`)
	empEmployedRE = regexp.MustCompile(`\b(employed|work|working|job|career|company|full[- ]?time)\b`)
	empExactRE    = regexp.MustCompile(`(?i)\b(employed|unemployed|self[- ]?employed|retired|student)\b`)
)

// Occupation
var (
	occIntroduceRE = regexp.MustCompile(`(?i)\b(?:i am an?|i'm an?|i work as(?:\s+an?)?|my job is|i'm employed as(?:\s+an?)?)\s+([a-zA-Z\s]+?)(?:\.|,|$|\s+(?:at|for|in|with))`)
	occJobListRE   = regexp.MustCompile(`(?i)\b(teacher|nurse|doctor|engineer|manager|developer|programmer|accountant|lawyer|chef|driver|cleaner|builder|electrician|plumber|mechanic|sales|marketing|admin|secretary|consultant|analyst|designer|writer|artist|musician)\b`)
	occProfessionRE = regexp.MustCompile(`(?i)\b([a-zA-Z\s]+?)\s+(?:by profession|as a career|for a living)\b`)

	occStopwordRE  = regexp.MustCompile(`(?i)\b(yes|no|the|and|or|but|if|when|where|what|how|why)\b`)
	occArticleRE   = regexp.MustCompile(`(?i)^(a|an|the)\s+`)
	occCommonJobRE = regexp.MustCompile(`(?i)\b(teacher|nurse|doctor|engineer|manager|developer|programmer|accountant|lawyer|chef|driver|cleaner|builder|electrician|plumber|mechanic)\b`)
	occIntroConfRE = regexp.MustCompile(`(?i)\b(?:i am a|i'm a|i work as)\b`)
)

// Smoking. Negated and past-tense phrasings are matched before the bare
// cue words, so "don't smoke" never classifies as current smoking.
var (
	smokeNeverAltRE  = regexp.MustCompile(`(?i)\b(never smoked|non[- ]?smoker|don't smoke|quit smoking|stopped smoking|gave up smoking)\b`)
	smokeFormerAltRE = regexp.MustCompile(`(?i)\b(used to smoke|former smoker|ex[- ]?smoker|previously smoked)\b`)
	smokeCueRE       = regexp.MustCompile(`(?i)\b(smoke|smoking|smoker|cigarettes?|tobacco|vape|vaping|e[- ]?cigarettes?)\b`)

	smokeNeverRE    = regexp.MustCompile(`\b(never smoked|non[- ]?smoker|don't smoke|no)\b`)
	smokeFormerRE   = regexp.MustCompile(`\b(used to smoke|former smoker|ex[- ]?smoker|previously smoked|quit smoking|stopped smoking|gave up smoking)\b`)
	smokeActiveRE   = regexp.MustCompile(`\b(smoke|smoking|smoker|cigarettes?|tobacco|yes)\b`)
	smokeNegGuardRE = regexp.MustCompile(`\b(don't|never|quit|stopped|gave up|used to|former|ex)\b`)
	smokeVapeRE     = regexp.MustCompile(`\b(vape|vaping|e[- ]?cigarettes?)\b`)
	smokeCanonRE    = regexp.MustCompile(`(?i)\b(never smoked|non[- ]?smoker|current smoker|former smoker)\b`)
	smokeSimpleRE   = regexp.MustCompile(`(?i)\b(smoke|don't smoke|quit smoking)\b`)
)

// Heights. The outer capturing group hands the whole expression to the
// validator so the unit parser can see the units, not just the leading
// digits.
var (
	heightFtInRE   = regexp.MustCompile(`(?i)\b((\d+)\s*(?:ft|feet|foot)(?:\s*(\d+)\s*(?:in|inches?|")?)?)`)
	heightCmRE     = regexp.MustCompile(`(?i)\b((\d+)\s*(?:cm|centimetres?|centimeters?))\b`)
	heightSymRE    = regexp.MustCompile(`\b((\d+)['′]\s*(\d+)["″]?)`)
	heightMetresRE = regexp.MustCompile(`(?i)\b((\d+)\s*[.,]\s*(\d+)\s*(?:m|metres?|meters?))\b`)

	heightFtInConfRE = regexp.MustCompile(`(?i)\d+\s*(?:ft|feet|foot)\s*\d*\s*(?:in|inches?|")?`)
	heightCmConfRE   = regexp.MustCompile(`(?i)\d+\s*(?:cm|centimetres?)`)
	heightSymConfRE  = regexp.MustCompile(`\d+['′]\s*\d*["″]?`)
)

// Weights. The decimal-kilogram pattern is tried before the plain one so
// "80.5kg" is not split at the decimal point.
var (
	weightStoneRE = regexp.MustCompile(`(?i)\b((\d+)\s*(?:st|stone)(?:\s*(\d+)\s*(?:lb|lbs|pounds?)?)?)\b`)
	weightKgDecRE = regexp.MustCompile(`(?i)\b((\d+)\s*[.,]\s*(\d+)\s*(?:kg|kilograms?))\b`)
	weightKgRE    = regexp.MustCompile(`(?i)\b((\d+)\s*(?:kg|kilograms?|kilos?))\b`)
	weightLbRE    = regexp.MustCompile(`(?i)\b((\d+)\s*(?:lb|lbs|pounds?))\b`)

	weightStoneConfRE = regexp.MustCompile(`(?i)\d+\s*(?:st|stone)\s*\d*\s*(?:lb|lbs|pounds?)?`)
	weightKgConfRE    = regexp.MustCompile(`(?i)\d+\s*(?:kg|kilograms?)`)
	weightLbConfRE    = regexp.MustCompile(`(?i)\d+\s*(?:lb|lbs|pounds?)`)
)

func nonEmpty(v string) bool { return len(v) > 0 }

// buildRules assembles the full UK fact-find extractor set.
func buildRules() map[Key]Extractor {
	return map[Key]Extractor{
		KeyUKResident: {
			Pattern:    ukAffirmRE,
			Alternates: []*regexp.Regexp{ukNegateRE, ukCountryRE},
			Validate:   nonEmpty,
			Format: func(_, full string) any {
				return ukPositiveRE.MatchString(full)
			},
			Confidence: func(match string) float64 {
				switch {
				case ukStrongRE.MatchString(match):
					return 0.95
				case ukNationRE.MatchString(match):
					return 0.9
				case ukCasualRE.MatchString(match):
					return 0.8
				}
				return 0.6
			},
			Suggestions: []string{
				`Try answering with "yes" or "no"`,
				`You can say "I am UK resident" or "I live in the UK"`,
			},
		},

		KeyMaritalStatus: {
			Pattern:    maritalRE,
			Alternates: []*regexp.Regexp{maritalNotRE, maritalRelRE, maritalCivilRE},
			Validate:   nonEmpty,
			Format: func(value, full string) any {
				switch {
				case mSingleRE.MatchString(full):
					return "Single"
				case mMarriedRE.MatchString(full):
					return "Married"
				case mDivorcedRE.MatchString(full):
					return "Divorced"
				case mWidowedRE.MatchString(full):
					return "Widowed"
				case mSeparatedRE.MatchString(full):
					return "Separated"
				case mCivilRE.MatchString(full):
					return "Civil Partnership"
				case mPartnerRE.MatchString(full):
					return "In a relationship"
				}
				return value
			},
			Confidence: func(match string) float64 {
				if maritalExactRE.MatchString(match) {
					return 0.95
				}
				return 0.7
			},
			Suggestions: []string{
				"Please specify: single, married, divorced, widowed, or separated",
				`You can say "I am married" or "I'm single"`,
			},
		},

		KeyBooleanResponse: {
			Pattern:    boolAffirmRE,
			Alternates: []*regexp.Regexp{boolNegateRE, boolHaveRE, boolNoneRE, boolSingleRE},
			Validate:   nonEmpty,
			Format: func(_, full string) any {
				// "I am single" answering a dependents question is an
				// indirect no: infer no dependents at lower confidence.
				if boolSingleRE.MatchString(full) {
					return false
				}
				return boolPositiveRE.MatchString(full)
			},
			Confidence: func(match string) float64 {
				switch {
				case boolStrongYesRE.MatchString(match):
					return 0.95
				case boolStrongNoRE.MatchString(match):
					return 0.95
				case boolHaveKidsRE.MatchString(match):
					return 0.9
				case boolNoKidsRE.MatchString(match):
					return 0.9
				case boolSingleRE.MatchString(match):
					return 0.75
				case boolCasualRE.MatchString(match):
					return 0.8
				}
				return 0.6
			},
			Suggestions: []string{
				`Please answer with "yes" or "no"`,
				`You can say "I do" or "I don't"`,
			},
		},

		KeyNumber: {
			Pattern:    numDigitsRE,
			Alternates: []*regexp.Regexp{numWordRE, numNegRE},
			Validate: func(v string) bool {
				return numAnyDigitRE.MatchString(v) || numWordRE.MatchString(v) || numNegRE.MatchString(v)
			},
			Format: func(_, full string) any {
				if numNegZeroRE.MatchString(full) {
					return 0
				}
				for _, tok := range wordTokenRE.FindAllString(full, -1) {
					if n, ok := wordNumbers[tok]; ok {
						return n
					}
				}
				if digits := numAnyDigitRE.FindString(full); digits != "" {
					n, _ := strconv.Atoi(digits)
					return n
				}
				return 0
			},
			Confidence: func(match string) float64 {
				switch {
				case numAnyDigitRE.MatchString(match):
					return 0.9
				case numSmallWordRE.MatchString(match):
					return 0.85
				case numNoneConfRE.MatchString(match):
					return 0.8
				}
				return 0.7
			},
			Suggestions: []string{
				"Please provide a number",
				`You can write it as digits (e.g., "2") or words (e.g., "two")`,
				`Say "none" or "zero" if you don't have any`,
			},
		},

		KeyAge: {
			Pattern:    ageRangeRE,
			Alternates: []*regexp.Regexp{ageApproxRE, ageBareRE, ageDescRE},
			Validate: func(v string) bool {
				if digits := ageDigitsRE.FindString(v); digits != "" {
					n, _ := strconv.Atoi(digits)
					return n >= 0 && n <= 120
				}
				return ageDescRE.MatchString(v)
			},
			Format: func(_, full string) any {
				if m := ageRangeFmtRE.FindStringSubmatch(full); m != nil {
					return m[1] + "-" + m[2]
				}
				if m := ageApproxFmtRE.FindStringSubmatch(full); m != nil {
					return "~" + m[1]
				}
				switch {
				case ageBabyRE.MatchString(full):
					return "0-1"
				case strings.Contains(full, "toddler"):
					return "1-3"
				case strings.Contains(full, "child"):
					return "4-12"
				case strings.Contains(full, "teen"):
					return "13-19"
				}
				if digits := ageDigitsRE.FindString(full); digits != "" {
					n, _ := strconv.Atoi(digits)
					return n
				}
				return nil
			},
			Confidence: func(match string) float64 {
				switch {
				case ageDigitsRE.MatchString(match) && !ageHedgeRE.MatchString(match):
					return 0.9
				case ageHedgeRE.MatchString(match):
					return 0.7
				case ageBucketRE.MatchString(match):
					return 0.6
				}
				return 0.5
			},
			Suggestions: []string{
				"Please provide age in years",
				`You can say "25 years old" or just "25"`,
				`For ranges, say "5 to 10" or "around 8"`,
			},
		},

		KeyEmploymentStatus: {
			Pattern:    empPrimaryRE,
			Alternates: []*regexp.Regexp{empWorkRE, empNotWorkRE, empOwnBizRE},
			Validate:   nonEmpty,
			Format: func(value, full string) any {
				// Explicit unemployment and self-employment cues take
				// priority over generic work mentions.
				switch {
				case empUnempRE.MatchString(full):
					return "Unemployed"
				case empSelfRE.MatchString(full):
					return "Self-employed"
				case empRetiredRE.MatchString(full):
					return "Retired"
				case empStudentRE.MatchString(full):
					return "Student"
				case empHomeRE.MatchString(full):
					return "Homemaker"
				case empDisabledRE.MatchString(full):
					return "Disabled"
				case empPartRE.MatchString(full):
					return "Part-time employed"
				case empEmployedRE.MatchString(full):
					return "Employed"
				}
				return value
			},
			Confidence: func(match string) float64 {
				if empExactRE.MatchString(match) {
					return 0.9
				}
				return 0.7
			},
			Suggestions: []string{
				"Please specify: employed, unemployed, self-employed, retired, student, etc.",
				`You can say "I work" or "I'm retired"`,
			},
		},

		KeyOccupation: {
			Pattern:    occIntroduceRE,
			Alternates: []*regexp.Regexp{occJobListRE, occProfessionRE},
			Validate: func(v string) bool {
				return len(v) > 2 && !occStopwordRE.MatchString(v)
			},
			Format: func(value, _ string) any {
				return occArticleRE.ReplaceAllString(strings.TrimSpace(value), "")
			},
			Confidence: func(match string) float64 {
				switch {
				case occCommonJobRE.MatchString(match):
					return 0.9
				case occIntroConfRE.MatchString(match):
					return 0.8
				}
				return 0.6
			},
			Suggestions: []string{
				"Please specify your job title or profession",
				`You can say "I am a teacher" or "I work as an engineer"`,
			},
		},

		KeySmokingStatus: {
			Pattern:    smokeNeverAltRE,
			Alternates: []*regexp.Regexp{smokeFormerAltRE, smokeCueRE},
			Validate:   nonEmpty,
			Format: func(value, full string) any {
				switch {
				case smokeNeverRE.MatchString(full):
					return "Never smoked"
				case smokeFormerRE.MatchString(full):
					return "Former smoker"
				case smokeActiveRE.MatchString(full) && !smokeNegGuardRE.MatchString(full):
					return "Current smoker"
				case smokeVapeRE.MatchString(full):
					return "Vaper"
				}
				return value
			},
			Confidence: func(match string) float64 {
				switch {
				case smokeCanonRE.MatchString(match):
					return 0.9
				case smokeSimpleRE.MatchString(match):
					return 0.8
				}
				return 0.6
			},
			Suggestions: []string{
				"Please answer: do you smoke, never smoked, or used to smoke?",
				`You can say "I don't smoke" or "I quit smoking"`,
			},
		},

		KeyHeight: {
			Pattern:    heightFtInRE,
			Alternates: []*regexp.Regexp{heightCmRE, heightSymRE, heightMetresRE},
			Validate: func(v string) bool {
				cm := HeightToCm(v)
				return cm >= 50 && cm <= 250
			},
			Format: func(value, full string) any {
				if m := ftInRE.FindStringSubmatch(full); m != nil {
					inches := "0"
					if m[2] != "" {
						inches = m[2]
					}
					return fmt.Sprintf(`%s'%s"`, m[1], inches)
				}
				if m := ftInSymRE.FindStringSubmatch(full); m != nil {
					return fmt.Sprintf(`%s'%s"`, m[1], m[2])
				}
				if m := cmRE.FindStringSubmatch(full); m != nil {
					return m[1] + "cm"
				}
				if m := metresRE.FindStringSubmatch(full); m != nil {
					return m[1] + "." + m[2] + "m"
				}
				return value
			},
			Confidence: func(match string) float64 {
				switch {
				case heightFtInConfRE.MatchString(match):
					return 0.9
				case heightCmConfRE.MatchString(match):
					return 0.9
				case heightSymConfRE.MatchString(match):
					return 0.85
				}
				return 0.7
			},
			Suggestions: []string{
				`Please provide height in feet/inches (e.g., "5ft 8in") or centimeters (e.g., "175cm")`,
				`You can use symbols like 5'8" or write it out`,
			},
		},

		KeyWeight: {
			Pattern:    weightStoneRE,
			Alternates: []*regexp.Regexp{weightKgDecRE, weightKgRE, weightLbRE},
			Validate: func(v string) bool {
				kg := WeightToKg(v)
				return kg >= 20 && kg <= 300
			},
			Format: func(value, full string) any {
				if m := stoneLbRE.FindStringSubmatch(full); m != nil {
					if m[2] != "" && m[2] != "0" {
						return m[1] + "st " + m[2] + "lb"
					}
					return m[1] + "st"
				}
				if m := kgRE.FindStringSubmatch(full); m != nil {
					if m[2] != "" {
						return m[1] + "." + m[2] + "kg"
					}
					return m[1] + "kg"
				}
				if m := lbOnlyRE.FindStringSubmatch(full); m != nil {
					return m[1] + "lb"
				}
				return value
			},
			Confidence: func(match string) float64 {
				switch {
				case weightStoneConfRE.MatchString(match):
					return 0.9
				case weightKgConfRE.MatchString(match):
					return 0.9
				case weightLbConfRE.MatchString(match):
					return 0.8
				}
				return 0.7
			},
			Suggestions: []string{
				`Please provide weight in stone/pounds (e.g., "12st 5lb") or kilograms (e.g., "80kg")`,
				`You can say "12 stone" or "80 kilos"`,
			},
		},
	}
}
