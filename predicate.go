package ishi

// Feature-flag conventions used by the parser collaborator.
const (
	// predicateTypeKey is the key of the predicate-type flag ("用言:動" etc.).
	predicateTypeKey = "用言"
	// voiceKey is the key of the voice flag ("態:受動" etc.).
	voiceKey = "態"
	// modalityPrefix prefixes modality flags ("モダリティ-意志" etc.).
	modalityPrefix = "モダリティ-"
	// nominativeRole is the case-frame role of the grammatical subject.
	nominativeRole = "ガ"
)

// LocatePredicate finds the predicate chunk of a sentence: the rightmost
// chunk carrying a predicate-type flag, or the last chunk when none does.
func LocatePredicate(sent *Sentence) (*Chunk, error) {
	if sent == nil || len(sent.Chunks) == 0 {
		return nil, &InputError{Reason: "sentence has no chunks"}
	}
	for i := len(sent.Chunks) - 1; i >= 0; i-- {
		if _, ok := sent.Chunks[i].Features.Value(predicateTypeKey); ok {
			return &sent.Chunks[i], nil
		}
	}
	return &sent.Chunks[len(sent.Chunks)-1], nil
}

// resolveNominative determines the subject of the predicate chunk from its
// case frame. The first argument of the nominative slot wins: an exophoric
// argument yields a surface descriptor, an in-range reference into sent
// yields a chunk descriptor, anything else is Unknown. Unknown is a
// recoverable state, not an error.
func resolveNominative(pred *Chunk, sent *Sentence) Nominative {
	if pred == nil || len(pred.CaseFrame) == 0 {
		return Nominative{Kind: NominativeUnknown}
	}
	args := pred.CaseFrame[nominativeRole]
	if len(args) == 0 {
		return Nominative{Kind: NominativeUnknown}
	}
	arg := args[0]
	if arg.Exophoric() {
		return Nominative{Kind: NominativeSurface, Surface: arg.Surface}
	}
	if sent != nil &&
		(arg.SentenceID == "" || arg.SentenceID == sent.ID) &&
		arg.ChunkIndex >= 0 && arg.ChunkIndex < len(sent.Chunks) {
		return Nominative{Kind: NominativeChunk, Chunk: &sent.Chunks[arg.ChunkIndex]}
	}
	return Nominative{Kind: NominativeUnknown}
}
