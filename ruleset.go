package ishi

// Category names one of the fixed rule-set categories.
type Category string

const (
	// CatValidNominatives lists surface strings accepted as volitional
	// subjects (exophoric first/second person, unspecified person).
	CatValidNominatives Category = "valid_nominatives"
	// CatValidNominativeSemanticMarkers lists chunk feature flags marking
	// an agentive subject.
	CatValidNominativeSemanticMarkers Category = "valid_nominative_semantic_markers"
	// CatVolitionModalities lists modality names implying volition.
	CatVolitionModalities Category = "volition_modalities"
	// CatVolitionVoices lists voice annotations implying volition.
	CatVolitionVoices Category = "volition_voices"
	// CatNonVolitionVoices lists voice annotations excluding volition.
	CatNonVolitionVoices Category = "non_volition_voices"
	// CatValidAdjectivePredicateSuffixes lists adjectival-predicate-suffix
	// lemmas that retain volitionality (negation, desire).
	CatValidAdjectivePredicateSuffixes Category = "valid_adjective_predicate_suffixes"
	// CatNonVolitionVerbalSuffixSemanticLabels lists verbal-suffix semantic
	// labels excluding volition.
	CatNonVolitionVerbalSuffixSemanticLabels Category = "non_volition_verbal_suffix_semantic_labels"
	// CatNonVolitionVerbalSuffixes lists verbal-suffix lemmas excluding
	// volition (involuntary completion, received benefaction, excess, ...).
	CatNonVolitionVerbalSuffixes Category = "non_volition_verbal_suffixes"
	// CatNonVolitionTypes lists predicate types excluding volition
	// (adjectival, copular).
	CatNonVolitionTypes Category = "non_volition_types"
	// CatNonVolitionHeads lists head repnames of verbs denoting
	// involuntary events.
	CatNonVolitionHeads Category = "non_volition_heads"
	// CatNonVolitionSemanticLabels lists morpheme semantic labels excluding
	// volition (potential verb, unintentional alternation).
	CatNonVolitionSemanticLabels Category = "non_volition_semantic_labels"
)

// Categories lists every rule-set category in a fixed order.
var Categories = []Category{
	CatValidNominatives,
	CatValidNominativeSemanticMarkers,
	CatVolitionModalities,
	CatVolitionVoices,
	CatNonVolitionVoices,
	CatValidAdjectivePredicateSuffixes,
	CatNonVolitionVerbalSuffixSemanticLabels,
	CatNonVolitionVerbalSuffixes,
	CatNonVolitionTypes,
	CatNonVolitionHeads,
	CatNonVolitionSemanticLabels,
}

// RuleSet is an unordered set of exact-match strings.
type RuleSet map[string]bool

// Contains reports exact membership of s.
func (r RuleSet) Contains(s string) bool {
	return r[s]
}

// newRuleSet builds a RuleSet from a list of entries.
func newRuleSet(entries []string) RuleSet {
	r := make(RuleSet, len(entries))
	for _, e := range entries {
		r[e] = true
	}
	return r
}

// RuleStore holds the eleven loaded rule sets. It is read-only after
// construction and safe for unsynchronized concurrent reads.
type RuleStore struct {
	sets map[Category]RuleSet
}

// Set returns the rule set for the given category. Unknown categories
// yield an empty set.
func (s *RuleStore) Set(cat Category) RuleSet {
	return s.sets[cat]
}

// Len returns the number of entries loaded for the given category.
func (s *RuleStore) Len(cat Category) int {
	return len(s.sets[cat])
}
