// Package knp adapts the Juman++/KNP morphological and dependency analyzers
// to the ishi parser contract. The analyzers run as a subprocess pipeline;
// their -tab output is parsed into ishi sentences.
package knp

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/jp-nlp/ishi"
)

// Client invokes the analysis pipeline. The zero value is not usable; use
// NewClient.
type Client struct {
	jumanCmd []string
	knpCmd   []string
	logger   *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithJumanCommand overrides the morphological-analyzer command line.
func WithJumanCommand(cmd ...string) Option {
	return func(c *Client) { c.jumanCmd = cmd }
}

// WithKNPCommand overrides the parser command line. It must emit -tab
// formatted output on stdout.
func WithKNPCommand(cmd ...string) Option {
	return func(c *Client) { c.knpCmd = cmd }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient returns a Client running "jumanpp" piped into
// "knp -tab -anaphora" unless overridden.
func NewClient(opts ...Option) *Client {
	c := &Client{
		jumanCmd: []string{"jumanpp"},
		knpCmd:   []string{"knp", "-tab", "-anaphora"},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Parse normalizes text, runs the pipeline and returns the first parsed
// sentence. It implements ishi.Parser.
func (c *Client) Parse(ctx context.Context, text string) (*ishi.Sentence, error) {
	text = Normalize(text)
	if text == "" {
		return nil, fmt.Errorf("knp: empty input")
	}
	out, err := c.run(ctx, text)
	if err != nil {
		return nil, err
	}
	sents, err := ParseTab(bytes.NewReader(out))
	if err != nil {
		return nil, fmt.Errorf("knp: parse output: %w", err)
	}
	if len(sents) == 0 {
		return nil, fmt.Errorf("knp: no sentence in output for %q", text)
	}
	c.logger.Debug("parsed sentence",
		zap.String("text", text),
		zap.Int("chunks", len(sents[0].Chunks)))
	return sents[0], nil
}

// run feeds text through juman and knp, returning knp's stdout.
func (c *Client) run(ctx context.Context, text string) ([]byte, error) {
	juman := exec.CommandContext(ctx, c.jumanCmd[0], c.jumanCmd[1:]...)
	juman.Stdin = strings.NewReader(text + "\n")
	pipe, err := juman.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("knp: pipe: %w", err)
	}

	knp := exec.CommandContext(ctx, c.knpCmd[0], c.knpCmd[1:]...)
	knp.Stdin = pipe
	var out, stderr bytes.Buffer
	knp.Stdout = &out
	knp.Stderr = &stderr

	if err := juman.Start(); err != nil {
		return nil, fmt.Errorf("knp: start %s: %w", c.jumanCmd[0], err)
	}
	if err := knp.Start(); err != nil {
		_ = juman.Process.Kill()
		_ = juman.Wait()
		return nil, fmt.Errorf("knp: start %s: %w", c.knpCmd[0], err)
	}
	if err := juman.Wait(); err != nil {
		_ = knp.Wait()
		return nil, fmt.Errorf("knp: %s: %w", c.jumanCmd[0], err)
	}
	if err := knp.Wait(); err != nil {
		return nil, fmt.Errorf("knp: %s: %w (stderr: %s)",
			c.knpCmd[0], err, strings.TrimSpace(stderr.String()))
	}
	return out.Bytes(), nil
}
