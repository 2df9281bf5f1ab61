// Package recommend derives adviser-facing suggestion cards from the
// collected fact-find data.
package recommend

import (
	"fmt"

	"github.com/bunnyflex/factfind-chatbot/internal/extractor"
	"github.com/bunnyflex/factfind-chatbot/internal/types"
)

type Card struct {
	Insight string `json:"insight"`
	Action  string `json:"action"`
	Impact  string `json:"impact"`
}

// Generate inspects the collected answers and returns the cards that
// apply. Order is stable: underwriting factors first, then coverage
// shape.
func Generate(data types.CollectedData) []Card {
	var cards []Card

	if v, ok := data.Lookup("smokingStatus"); ok {
		switch v {
		case "Current smoker", "Vaper":
			cards = append(cards, Card{
				Insight: fmt.Sprintf("Applicant is a %s", v),
				Action:  "Quote with smoker rates and flag cessation discount eligibility at 12 months smoke-free",
				Impact:  "Premium loading of roughly 50-100% on life cover",
			})
		case "Former smoker":
			cards = append(cards, Card{
				Insight: "Applicant is a former smoker",
				Action:  "Confirm the quit date; most insurers need 12 months smoke-free for non-smoker rates",
				Impact:  "Potential move to non-smoker rates",
			})
		}
	}

	if bmi, ok := bodyMassIndex(data); ok && (bmi < 18.5 || bmi >= 30) {
		cards = append(cards, Card{
			Insight: fmt.Sprintf("BMI of %.1f is outside the standard band", bmi),
			Action:  "Expect medical underwriting questions; gather GP details up front",
			Impact:  "Possible rating or exclusions on health cover",
		})
	}

	if v, ok := data.Lookup("hasDependents"); ok && v == true {
		insight := "Applicant has dependents"
		if n, ok := data.Lookup("numDependents"); ok {
			insight = fmt.Sprintf("Applicant has %v dependents", n)
		}
		cards = append(cards, Card{
			Insight: insight,
			Action:  "Prioritise family income benefit or level term cover sized to dependent years",
			Impact:  "Protects household income through the dependency period",
		})
	}

	if v, ok := data.Lookup("employmentStatus"); ok && v == "Self-employed" {
		cards = append(cards, Card{
			Insight: "Applicant is self-employed",
			Action:  "Discuss income protection with an own-occupation definition; no employer sick pay to fall back on",
			Impact:  "Covers the income gap statutory benefits leave",
		})
	}

	if v, ok := data.Lookup("ukResident"); ok && v == false {
		cards = append(cards, Card{
			Insight: "Applicant is not a UK resident",
			Action:  "Check insurer residency requirements before quoting; most UK products need UK domicile",
			Impact:  "May restrict the available product set",
		})
	}

	if len(cards) == 0 {
		cards = append(cards, Card{
			Insight: "No risk factors identified so far",
			Action:  "Complete the remaining fact-find questions before quoting",
			Impact:  "Standard rates likely",
		})
	}
	return cards
}

// bodyMassIndex computes BMI from the stored height and weight strings.
func bodyMassIndex(data types.CollectedData) (float64, bool) {
	h, okH := data.Lookup("height")
	w, okW := data.Lookup("weight")
	if !okH || !okW {
		return 0, false
	}
	hs, ok := h.(string)
	if !ok {
		return 0, false
	}
	ws, ok := w.(string)
	if !ok {
		return 0, false
	}
	cm := extractor.HeightToCm(hs)
	kg := extractor.WeightToKg(ws)
	if cm <= 0 || kg <= 0 {
		return 0, false
	}
	m := cm / 100
	return kg / (m * m), true
}
