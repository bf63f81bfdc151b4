// Package ishi decides whether the main predicate of a single Japanese
// sentence expresses volition — an intentional act by its subject — as
// opposed to a state, an involuntary event, a passive or potential
// occurrence, or a non-verbal predicate.
//
// The verdict is produced by an ordered cascade of rule stages over the
// predicate's parsed analysis (morphemes, feature flags, case frame) and
// its resolved subject. The rules themselves are plain string sets loaded
// from a data directory and may be overridden per category at construction.
package ishi

import (
	"context"

	"go.uber.org/zap"
)

// Parser is the external collaborator that turns raw Japanese text into a
// parsed sentence. Character-width normalization of the input is the
// parser's responsibility, as are retries, timeouts and cancellation.
type Parser interface {
	Parse(ctx context.Context, text string) (*Sentence, error)
}

// Classifier is the volition classifier. It is immutable after New and
// safe for concurrent use; every classification call is self-contained.
type Classifier struct {
	rules  *RuleStore
	parser Parser
	logger *zap.Logger

	// overrides is only consulted during New.
	overrides map[Category][]string
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithParser sets the external parser used for raw-text input.
func WithParser(p Parser) Option {
	return func(c *Classifier) { c.parser = p }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Classifier) { c.logger = l }
}

// WithRules replaces the file-backed rule set for one category.
func WithRules(cat Category, entries []string) Option {
	return func(c *Classifier) {
		if c.overrides == nil {
			c.overrides = make(map[Category][]string)
		}
		c.overrides[cat] = entries
	}
}

// New loads the rule data from dataDir and returns a ready Classifier.
func New(dataDir string, opts ...Option) (*Classifier, error) {
	c := &Classifier{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	rules, err := NewRuleStore(dataDir, c.overrides)
	if err != nil {
		return nil, err
	}
	c.rules = rules
	return c, nil
}

// Rules exposes the loaded rule store (read-only).
func (c *Classifier) Rules() *RuleStore {
	return c.rules
}

// Classify evaluates one input: raw text (string), a parsed *Sentence, or a
// pre-identified predicate *Chunk. nominative optionally supplies the
// subject — nil, a surface string, or a *Chunk — overriding case-frame
// resolution; this is the injection point for externally resolved anaphora.
func (c *Classifier) Classify(ctx context.Context, input any, nominative any) (bool, error) {
	v, _, err := c.ClassifyTrace(ctx, input, nominative)
	return v, err
}

// ClassifyTrace is Classify with the firing stage exposed.
func (c *Classifier) ClassifyTrace(ctx context.Context, input any, nominative any) (bool, Decision, error) {
	switch in := input.(type) {
	case string:
		return c.classifyText(ctx, in, nominative)
	case *Sentence:
		return c.classifySentence(in, nominative)
	case Sentence:
		return c.classifySentence(&in, nominative)
	case *Chunk:
		return c.classifyChunk(in, nil, nominative)
	default:
		return false, Decision{}, &UnsupportedInputError{Input: input}
	}
}

// ClassifyText parses text with the configured parser and classifies the
// resulting sentence.
func (c *Classifier) ClassifyText(ctx context.Context, text string, nominative any) (bool, error) {
	v, _, err := c.classifyText(ctx, text, nominative)
	return v, err
}

// ClassifySentence classifies a pre-parsed sentence.
func (c *Classifier) ClassifySentence(sent *Sentence, nominative any) (bool, error) {
	v, _, err := c.classifySentence(sent, nominative)
	return v, err
}

// ClassifyChunk classifies a pre-identified predicate chunk directly,
// bypassing predicate location.
func (c *Classifier) ClassifyChunk(pred *Chunk, nominative any) (bool, error) {
	v, _, err := c.classifyChunk(pred, nil, nominative)
	return v, err
}

func (c *Classifier) classifyText(ctx context.Context, text string, nominative any) (bool, Decision, error) {
	if c.parser == nil {
		return false, Decision{}, &InputError{Reason: "raw-text input requires a parser"}
	}
	sent, err := c.parser.Parse(ctx, text)
	if err != nil {
		// Parser failures propagate unchanged.
		return false, Decision{}, err
	}
	return c.classifySentence(sent, nominative)
}

func (c *Classifier) classifySentence(sent *Sentence, nominative any) (bool, Decision, error) {
	pred, err := LocatePredicate(sent)
	if err != nil {
		return false, Decision{}, err
	}
	return c.classifyChunk(pred, sent, nominative)
}

func (c *Classifier) classifyChunk(pred *Chunk, sent *Sentence, nominative any) (bool, Decision, error) {
	if pred == nil {
		return false, Decision{}, &InputError{Reason: "predicate chunk is nil"}
	}
	nom, err := c.explicitNominative(nominative)
	if err != nil {
		return false, Decision{}, err
	}
	if nom.Kind == NominativeUnknown {
		nom = resolveNominative(pred, sent)
	}
	if nom.Kind == NominativeUnknown {
		c.logger.Warn("nominative unresolved, proceeding without subject check",
			zap.String("predicate", pred.Surface()))
	}
	v, d := EvaluateTrace(pred, nom, c.rules)
	return v, d, nil
}

// explicitNominative wraps a caller-supplied nominative, when present.
func (c *Classifier) explicitNominative(v any) (Nominative, error) {
	switch n := v.(type) {
	case nil:
		return Nominative{Kind: NominativeUnknown}, nil
	case string:
		return Nominative{Kind: NominativeSurface, Surface: n}, nil
	case *Chunk:
		if n == nil {
			return Nominative{}, &InputError{Reason: "nominative chunk is nil"}
		}
		return Nominative{Kind: NominativeChunk, Chunk: n}, nil
	default:
		return Nominative{}, &UnsupportedInputError{Input: v}
	}
}
