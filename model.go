package ishi

import "strings"

// Morpheme is the smallest lexical unit produced by the parser.
type Morpheme struct {
	// Surface is the form as it appears in the text.
	Surface string `json:"surface"`
	// Lemma is the dictionary form.
	Lemma string `json:"lemma"`
	// POS is the part-of-speech category (e.g. "動詞", "接尾辞").
	POS string `json:"pos"`
	// POSSub is the part-of-speech subcategory
	// (e.g. "動詞性接尾辞", "形容詞性述語接尾辞").
	POSSub string `json:"pos_sub,omitempty"`
	// Repname is the canonical lemma/reading pair (e.g. "考える/かんがえる").
	Repname string `json:"repname,omitempty"`
	// Labels holds the parser's free-form semantic labels
	// (e.g. "可能動詞", "自他動詞:他").
	Labels []string `json:"labels,omitempty"`
}

// HasLabel reports whether the morpheme carries the given semantic label.
func (m *Morpheme) HasLabel(label string) bool {
	for _, l := range m.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// FeatureSet is the bag of feature flags the parser attaches to a chunk.
// Flags are either bare markers ("SM-主体") or key:value pairs ("態:受動",
// "用言:動"); modality flags use the "モダリティ-" prefix convention.
type FeatureSet []string

// Has reports whether the exact flag is present.
func (fs FeatureSet) Has(flag string) bool {
	for _, f := range fs {
		if f == flag {
			return true
		}
	}
	return false
}

// Value returns the value of the first "key:value" flag for key.
func (fs FeatureSet) Value(key string) (string, bool) {
	prefix := key + ":"
	for _, f := range fs {
		if strings.HasPrefix(f, prefix) {
			return f[len(prefix):], true
		}
	}
	return "", false
}

// ArgRef is one argument of a case-frame slot: either a reference to a chunk
// of some sentence, or a bare surface string for referents outside the parse
// (exophora such as 著者/読者).
type ArgRef struct {
	SentenceID string `json:"sentence_id,omitempty"`
	ChunkIndex int    `json:"chunk_index,omitempty"`
	// Surface, when non-empty, marks an exophoric referent.
	Surface string `json:"surface,omitempty"`
}

// Exophoric reports whether the reference points outside the parse.
func (a ArgRef) Exophoric() bool {
	return a.Surface != ""
}

// Chunk is a contiguous phrase unit of one sentence.
type Chunk struct {
	// SentenceID and Index identify the chunk for cross-references.
	SentenceID string `json:"sentence_id,omitempty"`
	Index      int    `json:"index"`
	// Morphemes in document order; a well-formed chunk has at least one.
	Morphemes []Morpheme `json:"morphemes"`
	// Features is the parser's flag annotation for the chunk.
	Features FeatureSet `json:"features,omitempty"`
	// CaseFrame maps a role label (e.g. "ガ") to its ordered arguments.
	CaseFrame map[string][]ArgRef `json:"case_frame,omitempty"`
	// Head is the head repname (主辞代表表記).
	Head string `json:"head,omitempty"`
	// PrimeHead is the higher-precedence head repname (主辞’代表表記);
	// it is used instead of Head when present.
	PrimeHead string `json:"prime_head,omitempty"`
}

// HeadRepname returns the effective head repname, preferring PrimeHead.
func (c *Chunk) HeadRepname() string {
	if c.PrimeHead != "" {
		return c.PrimeHead
	}
	return c.Head
}

// Surface concatenates the surfaces of all morphemes.
func (c *Chunk) Surface() string {
	var b strings.Builder
	for i := range c.Morphemes {
		b.WriteString(c.Morphemes[i].Surface)
	}
	return b.String()
}

// Sentence is an ordered sequence of chunks, addressable by index.
type Sentence struct {
	ID     string  `json:"id,omitempty"`
	Chunks []Chunk `json:"chunks"`
}

// NominativeKind distinguishes the three outcomes of nominative resolution.
type NominativeKind int

const (
	// NominativeUnknown means the subject could not be verified; the
	// cascade proceeds without a subject check.
	NominativeUnknown NominativeKind = iota
	// NominativeSurface is a bare surface string (explicit or exophoric).
	NominativeSurface
	// NominativeChunk is a chunk resolved within the sentence.
	NominativeChunk
)

// Nominative describes the resolved subject of a predicate.
type Nominative struct {
	Kind    NominativeKind
	Surface string
	Chunk   *Chunk
}
