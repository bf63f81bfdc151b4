package ishi

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// ruleFiles maps each category to its file name under the data directory.
var ruleFiles = map[Category]string{
	CatValidNominatives:                      "valid_nominatives.txt",
	CatValidNominativeSemanticMarkers:        "valid_nominative_semantic_markers.txt",
	CatVolitionModalities:                    "volition_modalities.txt",
	CatVolitionVoices:                        "volition_voices.txt",
	CatNonVolitionVoices:                     "non_volition_voices.txt",
	CatValidAdjectivePredicateSuffixes:       "valid_adjective_predicate_suffixes.txt",
	CatNonVolitionVerbalSuffixSemanticLabels: "non_volition_verbal_suffix_semantic_labels.txt",
	CatNonVolitionVerbalSuffixes:             "non_volition_verbal_suffixes.txt",
	CatNonVolitionTypes:                      "non_volition_types.txt",
	CatNonVolitionHeads:                      "non_volition_heads.txt",
	CatNonVolitionSemanticLabels:             "non_volition_semantic_labels.txt",
}

// NewRuleStore loads every category from dataDir. An entry in overrides
// fully replaces the file-backed default for that category, and the file
// is not read. The returned store is immutable.
func NewRuleStore(dataDir string, overrides map[Category][]string) (*RuleStore, error) {
	s := &RuleStore{sets: make(map[Category]RuleSet, len(ruleFiles))}
	for cat, name := range ruleFiles {
		if entries, ok := overrides[cat]; ok {
			s.sets[cat] = newRuleSet(entries)
			continue
		}
		set, err := loadRuleFile(filepath.Join(dataDir, name))
		if err != nil {
			return nil, err
		}
		s.sets[cat] = set
	}
	return s, nil
}

// loadRuleFile reads one rule file: UTF-8 text, one entry per line,
// surrounding whitespace stripped, blank lines and #-comments skipped.
func loadRuleFile(path string) (RuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	defer f.Close()

	set := make(RuleSet)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set[line] = true
	}
	if err := sc.Err(); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	return set, nil
}
