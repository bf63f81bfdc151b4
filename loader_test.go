package ishi

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewRuleStore(t *testing.T) {
	rules, err := NewRuleStore(dataDir, nil)
	if err != nil {
		t.Fatalf("NewRuleStore(%q): %v", dataDir, err)
	}
	for _, cat := range Categories {
		if rules.Len(cat) == 0 {
			t.Errorf("category %s loaded empty", cat)
		}
		t.Logf("%s: %d entries", cat, rules.Len(cat))
	}
}

func TestRuleStoreContents(t *testing.T) {
	rules, _ := NewRuleStore(dataDir, nil)
	tests := []struct {
		cat   Category
		entry string
		want  bool
	}{
		{CatValidNominatives, "著者", true},
		{CatValidNominatives, "机", false},
		{CatVolitionModalities, "意志", true},
		{CatVolitionVoices, "使役", true},
		{CatNonVolitionVoices, "使役&受動", true},
		{CatNonVolitionVoices, "使役", false},
		{CatValidAdjectivePredicateSuffixes, "ない", true},
		{CatNonVolitionVerbalSuffixes, "しまう", true},
		{CatNonVolitionVerbalSuffixes, "出来る", true},
		{CatNonVolitionTypes, "形", true},
		{CatNonVolitionTypes, "動", false},
		{CatNonVolitionHeads, "気付く/きづく", true},
		{CatNonVolitionSemanticLabels, "可能動詞", true},
	}
	for _, tt := range tests {
		if got := rules.Set(tt.cat).Contains(tt.entry); got != tt.want {
			t.Errorf("%s contains %q = %v, want %v", tt.cat, tt.entry, got, tt.want)
		}
	}
}

func TestNewRuleStoreMissingFile(t *testing.T) {
	_, err := NewRuleStore(t.TempDir(), nil)
	if err == nil {
		t.Fatal("expected error for empty data dir")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error is %T, want *ConfigError", err)
	}
}

func TestNewRuleStoreOverride(t *testing.T) {
	// Overrides fully replace the file-backed default, so overriding every
	// category needs no data directory at all.
	overrides := make(map[Category][]string, len(Categories))
	for _, cat := range Categories {
		overrides[cat] = nil
	}
	overrides[CatVolitionModalities] = []string{"意志"}

	rules, err := NewRuleStore("no-such-dir", overrides)
	if err != nil {
		t.Fatalf("NewRuleStore with full overrides: %v", err)
	}
	if !rules.Set(CatVolitionModalities).Contains("意志") {
		t.Error("override entry missing")
	}
	if rules.Len(CatNonVolitionHeads) != 0 {
		t.Error("nil override should yield an empty set")
	}
}

func TestLoadRuleFileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.txt")
	content := "# comment\n\n  しまう  \nくれる\n\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	set, err := loadRuleFile(path)
	if err != nil {
		t.Fatalf("loadRuleFile: %v", err)
	}
	if len(set) != 2 {
		t.Errorf("got %d entries, want 2: %v", len(set), set)
	}
	if !set.Contains("しまう") {
		t.Error("whitespace should be stripped from entries")
	}
}
