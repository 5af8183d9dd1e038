// Package pipeline wires the source resolver, the PDF extractor, and the
// layout formatter into a single linear flow and assembles the output
// record callers consume.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ConniAU/n8n-pdf-parse/config"
	"github.com/ConniAU/n8n-pdf-parse/extract"
	"github.com/ConniAU/n8n-pdf-parse/layout"
	"github.com/ConniAU/n8n-pdf-parse/source"
)

// Options controls one extraction request.
type Options struct {
	// Mode selects the formatting rule sequence. An unrecognized mode
	// passes text through unchanged.
	Mode layout.Mode

	// Pages restricts extraction to a page selection like "1-5" or
	// "1,3,5". Empty or "all" selects every page.
	Pages string

	// SplitPages returns the formatted text as one element per page
	// instead of a single string.
	SplitPages bool

	// IncludeMetadata attaches the document information dictionary to the
	// result.
	IncludeMetadata bool
}

// Result is the assembled output record for one input item.
type Result struct {
	Text      string            `json:"text,omitempty"`
	Pages     []string          `json:"pages,omitempty"`
	PageCount int               `json:"pageCount"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Stats     layout.Stats      `json:"stats"`

	// Error annotates a failed item when the batch runs with the
	// continue-on-failure policy.
	Error string `json:"error,omitempty"`
}

// Pipeline is the extraction engine.
type Pipeline struct {
	cfg      *config.Config
	resolver *source.Resolver
	logger   *slog.Logger
}

// New creates a Pipeline from runtime configuration. A nil logger falls
// back to slog.Default().
func New(cfg *config.Config, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		cfg:      cfg,
		resolver: source.NewResolver(cfg.MaxFileSizeBytes, cfg.FetchTimeout(), logger),
		logger:   logger,
	}
}

// Process resolves uri, extracts its text, and assembles the formatted
// result.
func (p *Pipeline) Process(ctx context.Context, uri string, opts Options) (*Result, error) {
	buf, err := p.resolver.Resolve(ctx, uri)
	if err != nil {
		return nil, err
	}
	return p.ProcessBuffer(buf, opts)
}

// ProcessBuffer runs extraction and formatting over an already-resolved
// byte buffer, e.g. an attached binary blob.
func (p *Pipeline) ProcessBuffer(buf []byte, opts Options) (*Result, error) {
	if err := p.resolver.Validate(buf); err != nil {
		return nil, err
	}

	selector, err := extract.ParsePageRange(opts.Pages)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", source.ErrInvalidSource, err)
	}

	ext, err := extract.Extract(buf, selector)
	if err != nil {
		return nil, err
	}

	formatted := layout.Format(ext.Text, opts.Mode)
	p.logger.Debug("formatted document",
		"mode", string(opts.Mode),
		"pages", ext.PageCount,
		"chars", len(formatted))

	res := &Result{
		PageCount: ext.PageCount,
		Stats:     layout.ComputeStats(formatted, ext.PageCount),
	}
	if opts.SplitPages {
		res.Pages = layout.SplitPages(formatted)
	} else {
		res.Text = formatted
	}
	if opts.IncludeMetadata {
		res.Metadata = ext.Metadata
	}
	return res, nil
}

// ProcessBatch runs Process over each uri in order. With continueOnFail,
// a failed item yields a Result annotated with its error description and
// the batch keeps going; otherwise the first failure aborts the batch,
// reported with the failing item index.
func (p *Pipeline) ProcessBatch(ctx context.Context, uris []string, opts Options, continueOnFail bool) ([]Result, error) {
	results := make([]Result, 0, len(uris))
	for i, uri := range uris {
		res, err := p.Process(ctx, uri, opts)
		if err != nil {
			if !continueOnFail {
				return nil, fmt.Errorf("item %d (%s): %w", i, uri, err)
			}
			p.logger.Warn("item failed, continuing", "item", i, "uri", uri, "error", err)
			results = append(results, Result{Error: err.Error()})
			continue
		}
		results = append(results, *res)
	}
	return results, nil
}
