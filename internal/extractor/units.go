package extractor

import (
	"regexp"
	"strconv"
)

// Shared unit parsers for the height and weight extractors. Both return
// 0 when nothing parses; callers treat 0 as out of range.

var (
	ftInRE     = regexp.MustCompile(`(?i)(\d+)\s*(?:ft|feet|foot)\s*(?:(\d+)\s*(?:in|inches?|")?)?`)
	ftInSymRE  = regexp.MustCompile(`(\d+)['′]\s*(\d+)["″]?`)
	cmRE       = regexp.MustCompile(`(?i)(\d+)\s*(?:cm|centimetres?|centimeters?)`)
	metresRE   = regexp.MustCompile(`(?i)(\d+)\s*[.,]\s*(\d+)\s*(?:m|metres?|meters?)`)
	stoneLbRE  = regexp.MustCompile(`(?i)(\d+)\s*(?:st|stone)\s*(?:(\d+)\s*(?:lb|lbs|pounds?)?)?`)
	kgRE       = regexp.MustCompile(`(?i)(\d+)(?:\s*[.,]\s*(\d+))?\s*(?:kg|kilograms?|kilos?)`)
	lbOnlyRE   = regexp.MustCompile(`(?i)(\d+)\s*(?:lb|lbs|pounds?)`)
)

// HeightToCm converts a height expression to centimetres.
// Accepts "5ft 8in", "5'8\"", "175cm" and "1.75m" style inputs.
func HeightToCm(s string) float64 {
	if m := ftInRE.FindStringSubmatch(s); m != nil {
		feet, _ := strconv.Atoi(m[1])
		inches := 0
		if m[2] != "" {
			inches, _ = strconv.Atoi(m[2])
		}
		return float64(feet*12+inches) * 2.54
	}
	if m := ftInSymRE.FindStringSubmatch(s); m != nil {
		feet, _ := strconv.Atoi(m[1])
		inches, _ := strconv.Atoi(m[2])
		return float64(feet*12+inches) * 2.54
	}
	if m := cmRE.FindStringSubmatch(s); m != nil {
		cm, _ := strconv.Atoi(m[1])
		return float64(cm)
	}
	if m := metresRE.FindStringSubmatch(s); m != nil {
		whole, _ := strconv.Atoi(m[1])
		frac, _ := strconv.Atoi(m[2])
		return float64(whole*100 + frac)
	}
	return 0
}

// WeightToKg converts a weight expression to kilograms.
// Accepts "12st 5lb", "80kg", "80.5kg" and "170lbs" style inputs.
func WeightToKg(s string) float64 {
	if m := stoneLbRE.FindStringSubmatch(s); m != nil {
		stone, _ := strconv.Atoi(m[1])
		pounds := 0
		if m[2] != "" {
			pounds, _ = strconv.Atoi(m[2])
		}
		return float64(stone)*6.35029 + float64(pounds)*0.453592
	}
	if m := kgRE.FindStringSubmatch(s); m != nil {
		kg, _ := strconv.Atoi(m[1])
		frac := 0.0
		if m[2] != "" {
			d, _ := strconv.Atoi(m[2])
			frac = float64(d) / 10
		}
		return float64(kg) + frac
	}
	if m := lbOnlyRE.FindStringSubmatch(s); m != nil {
		pounds, _ := strconv.Atoi(m[1])
		return float64(pounds) * 0.453592
	}
	return 0
}
