// Package source resolves a document reference — local path, file:// URI,
// or http(s) URL — into a validated PDF byte buffer.
package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Error taxonomy at the system boundary. The layout formatter itself is
// total; these are the only failure classes the pipeline surfaces.
var (
	// ErrInvalidSource marks an empty buffer, a bad magic signature, an
	// oversized document, or a malformed URI.
	ErrInvalidSource = errors.New("invalid source")

	// ErrFetchFailure marks a network or transport failure.
	ErrFetchFailure = errors.New("fetch failure")
)

// pdfMagic is the signature every PDF buffer must begin with.
var pdfMagic = []byte("%PDF-")

// Resolver obtains and validates PDF byte buffers.
type Resolver struct {
	maxBytes int64
	client   *http.Client
	logger   *slog.Logger
}

// NewResolver creates a Resolver with the given size cap and fetch timeout.
// A nil logger falls back to slog.Default().
func NewResolver(maxBytes int64, timeout time.Duration, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		maxBytes: maxBytes,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

// Resolve returns the validated byte buffer for uri. Supported forms:
// an absolute or relative file path, a file:// URI, or an http(s) URL.
func (r *Resolver) Resolve(ctx context.Context, uri string) ([]byte, error) {
	var (
		buf []byte
		err error
	)
	switch {
	case strings.HasPrefix(uri, "http://"), strings.HasPrefix(uri, "https://"):
		buf, err = r.fetch(ctx, uri)
	case strings.HasPrefix(uri, "file://"):
		u, perr := url.Parse(uri)
		if perr != nil {
			return nil, fmt.Errorf("%w: malformed URI %q", ErrInvalidSource, uri)
		}
		buf, err = r.readFile(u.Path)
	default:
		buf, err = r.readFile(uri)
	}
	if err != nil {
		return nil, err
	}
	return buf, r.validate(buf, uri)
}

// Validate checks that buf looks like a PDF. Exposed for callers that
// already hold an attached binary buffer and skip resolution.
func (r *Resolver) Validate(buf []byte) error {
	return r.validate(buf, "attachment")
}

func (r *Resolver) fetch(ctx context.Context, uri string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed URL %q", ErrInvalidSource, uri)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: HTTP %d fetching %s", ErrFetchFailure, resp.StatusCode, uri)
	}

	buf, err := io.ReadAll(io.LimitReader(resp.Body, r.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrFetchFailure, err)
	}
	if int64(len(buf)) > r.maxBytes {
		return nil, fmt.Errorf("%w: document exceeds %d bytes", ErrInvalidSource, r.maxBytes)
	}

	r.logger.Debug("fetched document", "uri", uri, "bytes", len(buf))
	return buf, nil
}

func (r *Resolver) readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSource, err)
	}
	if info.Size() > r.maxBytes {
		return nil, fmt.Errorf("%w: file too large: %d bytes (max %d)", ErrInvalidSource, info.Size(), r.maxBytes)
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSource, err)
	}
	return buf, nil
}

func (r *Resolver) validate(buf []byte, origin string) error {
	if len(buf) == 0 {
		return fmt.Errorf("%w: empty buffer from %s", ErrInvalidSource, origin)
	}
	if !bytes.HasPrefix(buf, pdfMagic) {
		return fmt.Errorf("%w: %s does not begin with %%PDF-", ErrInvalidSource, origin)
	}
	return nil
}
