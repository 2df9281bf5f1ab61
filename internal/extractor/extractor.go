package extractor

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/bunnyflex/factfind-chatbot/internal/types"
)

// Key identifies one extraction rule. The set of keys is closed: every
// key is declared below and registered in buildRules, so a mapping that
// names an unknown key is a configuration error, not a runtime guess.
type Key string

const (
	KeyUKResident       Key = "ukResident"
	KeyMaritalStatus    Key = "maritalStatus"
	KeyBooleanResponse  Key = "booleanResponse"
	KeyNumber           Key = "number"
	KeyAge              Key = "age"
	KeyEmploymentStatus Key = "employmentStatus"
	KeyOccupation       Key = "occupation"
	KeySmokingStatus    Key = "smokingStatus"
	KeyHeight           Key = "height"
	KeyWeight           Key = "weight"
)

// Extractor is one immutable extraction rule.
//
// Matching contract: the primary pattern is tried first, then the
// alternates in declared order, stopping at the first match. The raw
// value handed to Validate and Format is the first capturing group when
// it matched non-empty, otherwise the whole matched text. Format runs
// only after Validate succeeds; Confidence is scored on the full
// matched text (nil Confidence means the 0.8 default).
type Extractor struct {
	Pattern     *regexp.Regexp
	Alternates  []*regexp.Regexp
	Validate    func(value string) bool
	Format      func(value, fullMatch string) any
	Confidence  func(match string) float64
	Suggestions []string
}

const defaultConfidence = 0.8

// Registry holds the full extractor rule set. It is built once at
// startup and read-only afterwards, so it is safe for concurrent use.
type Registry struct {
	rules map[Key]Extractor
}

func NewRegistry() *Registry {
	return &Registry{rules: buildRules()}
}

// Keys lists the registered extractor keys in stable order.
func (r *Registry) Keys() []Key {
	keys := make([]Key, 0, len(r.rules))
	for k := range r.rules {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Apply runs one extractor against a message. The error return is
// reserved for unknown keys; every per-message failure (no match,
// validation) comes back as a failed ExtractionResult instead.
func (r *Registry) Apply(key Key, message string) (types.ExtractionResult, error) {
	ex, ok := r.rules[key]
	if !ok {
		return types.ExtractionResult{}, fmt.Errorf("unknown extractor: %s", key)
	}

	clean := strings.ToLower(strings.TrimSpace(message))

	m := ex.Pattern.FindStringSubmatch(clean)
	for _, alt := range ex.Alternates {
		if m != nil {
			break
		}
		m = alt.FindStringSubmatch(clean)
	}
	if m == nil {
		return types.ExtractionResult{
			Success:     false,
			Reason:      "no matching pattern found",
			Suggestions: ex.Suggestions,
		}, nil
	}

	full := m[0]
	raw := full
	if len(m) > 1 && m[1] != "" {
		raw = m[1]
	}

	if !ex.Validate(raw) {
		return types.ExtractionResult{
			Success:     false,
			Reason:      "validation failed",
			Original:    raw,
			Suggestions: ex.Suggestions,
		}, nil
	}

	confidence := defaultConfidence
	if ex.Confidence != nil {
		confidence = ex.Confidence(full)
	}

	return types.ExtractionResult{
		Success:    true,
		Value:      ex.Format(raw, full),
		Confidence: confidence,
		Original:   raw,
	}, nil
}
