package ishi

import (
	"errors"
	"testing"
)

func nounChunk(surface string, idx int) Chunk {
	return Chunk{
		Index:     idx,
		Morphemes: []Morpheme{{Surface: surface, Lemma: surface, POS: "名詞"}},
	}
}

func TestLocatePredicate(t *testing.T) {
	sent := &Sentence{Chunks: []Chunk{
		nounChunk("勉強を", 0),
		{
			Index:     1,
			Morphemes: []Morpheme{{Surface: "する", Lemma: "する", POS: "動詞"}},
			Features:  FeatureSet{"用言:動"},
		},
		nounChunk("こと", 2),
	}}
	pred, err := LocatePredicate(sent)
	if err != nil {
		t.Fatalf("LocatePredicate: %v", err)
	}
	if pred.Index != 1 {
		t.Errorf("predicate index = %d, want 1", pred.Index)
	}
}

func TestLocatePredicateRightmostWins(t *testing.T) {
	sent := &Sentence{Chunks: []Chunk{
		{Index: 0, Morphemes: []Morpheme{verb("考える", "考える")}, Features: FeatureSet{"用言:動"}},
		{Index: 1, Morphemes: []Morpheme{verb("する", "する")}, Features: FeatureSet{"用言:動"}},
	}}
	pred, err := LocatePredicate(sent)
	if err != nil {
		t.Fatal(err)
	}
	if pred.Index != 1 {
		t.Errorf("predicate index = %d, want rightmost 1", pred.Index)
	}
}

func TestLocatePredicateFallback(t *testing.T) {
	sent := &Sentence{Chunks: []Chunk{
		nounChunk("これは", 0),
		nounChunk("花火", 1),
	}}
	pred, err := LocatePredicate(sent)
	if err != nil {
		t.Fatal(err)
	}
	if pred.Index != 1 {
		t.Errorf("fallback should pick the last chunk, got index %d", pred.Index)
	}
}

func TestLocatePredicateEmpty(t *testing.T) {
	_, err := LocatePredicate(&Sentence{})
	if err == nil {
		t.Fatal("expected error for empty sentence")
	}
	var inErr *InputError
	if !errors.As(err, &inErr) {
		t.Fatalf("error is %T, want *InputError", err)
	}
}

func TestResolveNominative(t *testing.T) {
	sent := &Sentence{ID: "s1", Chunks: []Chunk{
		{
			Index:     0,
			Morphemes: []Morpheme{{Surface: "住人", Lemma: "住人", POS: "名詞"}},
			Features:  FeatureSet{"SM-主体"},
		},
		{Index: 1},
	}}

	t.Run("chunk reference", func(t *testing.T) {
		pred := &Chunk{CaseFrame: map[string][]ArgRef{
			"ガ": {{SentenceID: "s1", ChunkIndex: 0}},
		}}
		nom := resolveNominative(pred, sent)
		if nom.Kind != NominativeChunk {
			t.Fatalf("kind = %v, want NominativeChunk", nom.Kind)
		}
		if nom.Chunk.Surface() != "住人" {
			t.Errorf("resolved chunk = %q, want 住人", nom.Chunk.Surface())
		}
	})

	t.Run("exophoric surface", func(t *testing.T) {
		pred := &Chunk{CaseFrame: map[string][]ArgRef{
			"ガ": {{Surface: "著者"}},
		}}
		nom := resolveNominative(pred, sent)
		if nom.Kind != NominativeSurface || nom.Surface != "著者" {
			t.Errorf("got %+v, want surface 著者", nom)
		}
	})

	t.Run("first argument wins", func(t *testing.T) {
		pred := &Chunk{CaseFrame: map[string][]ArgRef{
			"ガ": {{Surface: "読者"}, {SentenceID: "s1", ChunkIndex: 0}},
		}}
		nom := resolveNominative(pred, sent)
		if nom.Kind != NominativeSurface || nom.Surface != "読者" {
			t.Errorf("got %+v, want first argument 読者", nom)
		}
	})

	t.Run("out of range is unknown", func(t *testing.T) {
		pred := &Chunk{CaseFrame: map[string][]ArgRef{
			"ガ": {{SentenceID: "s1", ChunkIndex: 9}},
		}}
		if nom := resolveNominative(pred, sent); nom.Kind != NominativeUnknown {
			t.Errorf("got %+v, want unknown", nom)
		}
	})

	t.Run("other sentence is unknown", func(t *testing.T) {
		pred := &Chunk{CaseFrame: map[string][]ArgRef{
			"ガ": {{SentenceID: "s0", ChunkIndex: 0}},
		}}
		if nom := resolveNominative(pred, sent); nom.Kind != NominativeUnknown {
			t.Errorf("got %+v, want unknown", nom)
		}
	})

	t.Run("no case frame is unknown", func(t *testing.T) {
		if nom := resolveNominative(&Chunk{}, sent); nom.Kind != NominativeUnknown {
			t.Errorf("got %+v, want unknown", nom)
		}
	})
}
