package ishi

import "strings"

// Suffix subcategories tested by the suffix stage.
const (
	adjNominalSuffix   = "形容詞性名詞接尾辞"
	adjPredicateSuffix = "形容詞性述語接尾辞"
	verbalSuffix       = "動詞性接尾辞"
)

// Decision is the diagnostic result of one evaluation: the verdict plus the
// stage and the lemma/label/marker that produced it.
type Decision struct {
	Verdict bool   `json:"verdict"`
	Stage   string `json:"stage"`
	Trigger string `json:"trigger,omitempty"`
}

// stageFunc is one pure cascade stage. A nil result means "no verdict,
// continue"; the first non-nil result ends the evaluation.
type stageFunc func(pred *Chunk, nom Nominative, rules *RuleStore) *Decision

type stage struct {
	name string
	eval stageFunc
}

// stages is the fixed evaluation order. It is load-bearing: modality is
// checked before voice, morphology before lexical semantics.
var stages = []stage{
	{"nominative", checkNominative},
	{"modality", checkModality},
	{"voice", checkVoice},
	{"suffix", checkSuffixes},
	{"type", checkPredicateType},
	{"meaning", checkMeaning},
}

// Evaluate runs the decision cascade for one predicate chunk and resolved
// nominative. It is total: every input resolves to exactly true or false.
func Evaluate(pred *Chunk, nom Nominative, rules *RuleStore) bool {
	v, _ := EvaluateTrace(pred, nom, rules)
	return v
}

// EvaluateTrace is Evaluate with the firing stage exposed. An unmarked
// verbal predicate with a valid-or-unknown subject defaults to true.
func EvaluateTrace(pred *Chunk, nom Nominative, rules *RuleStore) (bool, Decision) {
	for _, st := range stages {
		if d := st.eval(pred, nom, rules); d != nil {
			d.Stage = st.name
			return d.Verdict, *d
		}
	}
	return true, Decision{Verdict: true, Stage: "default"}
}

// checkNominative rejects predicates whose subject cannot act with intent.
// An unknown subject does not short-circuit.
func checkNominative(pred *Chunk, nom Nominative, rules *RuleStore) *Decision {
	switch nom.Kind {
	case NominativeSurface:
		if !rules.Set(CatValidNominatives).Contains(nom.Surface) {
			return &Decision{Verdict: false, Trigger: nom.Surface}
		}
	case NominativeChunk:
		markers := rules.Set(CatValidNominativeSemanticMarkers)
		for _, f := range nom.Chunk.Features {
			if markers.Contains(f) {
				return nil
			}
		}
		return &Decision{Verdict: false, Trigger: nom.Chunk.Surface()}
	}
	return nil
}

// checkModality fires true on intention, imperative, request and
// desirability modalities.
func checkModality(pred *Chunk, _ Nominative, rules *RuleStore) *Decision {
	set := rules.Set(CatVolitionModalities)
	for _, f := range pred.Features {
		if !strings.HasPrefix(f, modalityPrefix) {
			continue
		}
		if m := strings.TrimPrefix(f, modalityPrefix); set.Contains(m) {
			return &Decision{Verdict: true, Trigger: m}
		}
	}
	return nil
}

// checkVoice fires true on causative voice and false on passive/potential
// voices, including their causative combinations. Voice annotations are
// matched whole, so 使役&受動 never matches the bare 使役 entry.
func checkVoice(pred *Chunk, _ Nominative, rules *RuleStore) *Decision {
	v, ok := pred.Features.Value(voiceKey)
	if !ok {
		return nil
	}
	if rules.Set(CatVolitionVoices).Contains(v) {
		return &Decision{Verdict: true, Trigger: v}
	}
	if rules.Set(CatNonVolitionVoices).Contains(v) {
		return &Decision{Verdict: false, Trigger: v}
	}
	return nil
}

// checkSuffixes scans morphemes right-to-left, so the suffix closest to the
// sentence end wins on stacked auxiliaries. Non-suffix morphemes (a trailing
// copula, for instance) are skipped, not terminal.
func checkSuffixes(pred *Chunk, _ Nominative, rules *RuleStore) *Decision {
	for i := len(pred.Morphemes) - 1; i >= 0; i-- {
		m := &pred.Morphemes[i]
		switch m.POSSub {
		case adjNominalSuffix:
			return &Decision{Verdict: false, Trigger: m.Lemma}
		case adjPredicateSuffix:
			if rules.Set(CatValidAdjectivePredicateSuffixes).Contains(m.Lemma) {
				continue
			}
			return &Decision{Verdict: false, Trigger: m.Lemma}
		case verbalSuffix:
			labels := rules.Set(CatNonVolitionVerbalSuffixSemanticLabels)
			for _, l := range m.Labels {
				if labels.Contains(l) {
					return &Decision{Verdict: false, Trigger: l}
				}
			}
			if rules.Set(CatNonVolitionVerbalSuffixes).Contains(m.Lemma) {
				return &Decision{Verdict: false, Trigger: m.Lemma}
			}
		}
	}
	return nil
}

// checkPredicateType fires false on non-verbal (adjectival, copular)
// predicates.
func checkPredicateType(pred *Chunk, _ Nominative, rules *RuleStore) *Decision {
	t, ok := pred.Features.Value(predicateTypeKey)
	if !ok {
		return nil
	}
	if rules.Set(CatNonVolitionTypes).Contains(t) {
		return &Decision{Verdict: false, Trigger: t}
	}
	return nil
}

// checkMeaning fires false on head lemmas denoting involuntary events
// (perception, surprise, state change), then on non-volitional morpheme
// semantic labels, scanned right-to-left.
func checkMeaning(pred *Chunk, _ Nominative, rules *RuleStore) *Decision {
	if head := pred.HeadRepname(); head != "" &&
		rules.Set(CatNonVolitionHeads).Contains(head) {
		return &Decision{Verdict: false, Trigger: head}
	}
	labels := rules.Set(CatNonVolitionSemanticLabels)
	for i := len(pred.Morphemes) - 1; i >= 0; i-- {
		for _, l := range pred.Morphemes[i].Labels {
			if labels.Contains(l) {
				return &Decision{Verdict: false, Trigger: l}
			}
		}
	}
	return nil
}
