// Package extract decodes the text layer of a PDF byte buffer.
//
// Text comes from the embedded text layer via github.com/ledongthuc/pdf;
// structural validation, page count, and the encryption flag come from
// pdfcpu. Scanned (image-only) PDFs yield an empty text layer, which is not
// an error — OCR is out of scope.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ErrDecodeFailure marks a buffer that is structurally unreadable as a PDF.
var ErrDecodeFailure = errors.New("pdf decode failure")

// PageSelector restricts which pages contribute text. The page index is
// 1-based; returning false skips the page. A nil selector selects all pages.
type PageSelector func(page int) bool

// Result is the outcome of decoding one document.
type Result struct {
	// Text is the concatenated raw text of the selected pages, with a
	// form-feed character between consecutive pages.
	Text string

	// PageCount is the total number of pages in the document, independent
	// of the selector.
	PageCount int

	// Metadata holds document information fields (title, author, subject,
	// creator, producer, encrypted). Only non-empty values are present.
	Metadata map[string]string
}

// Extract decodes buf and returns the raw text of the pages selector
// accepts.
func Extract(buf []byte, selector PageSelector) (*Result, error) {
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(buf), model.NewDefaultConfiguration())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}

	r, err := pdf.NewReader(bytes.NewReader(buf), int64(len(buf)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}

	numPages := r.NumPage()
	fonts := make(map[string]*pdf.Font)
	pageTexts := make([]string, 0, numPages)

	for i := 1; i <= numPages; i++ {
		if selector != nil && !selector(i) {
			continue
		}
		pageTexts = append(pageTexts, pageText(r, i, fonts))
	}

	return &Result{
		Text:      strings.Join(pageTexts, "\f"),
		PageCount: ctx.PageCount,
		Metadata:  docInfo(r, ctx.Encrypt != nil),
	}, nil
}

// pageText extracts one page's text layer. Pages with a broken font or
// content stream contribute an empty string; the reader can panic on
// malformed structures, so recovery is handled here per page.
func pageText(r *pdf.Reader, pageNr int, fonts map[string]*pdf.Font) (text string) {
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
		}
	}()

	p := r.Page(pageNr)
	if p.V.IsNull() {
		return ""
	}

	for _, name := range p.Fonts() {
		if _, ok := fonts[name]; !ok {
			f := p.Font(name)
			fonts[name] = &f
		}
	}

	text, err := p.GetPlainText(fonts)
	if err != nil {
		return ""
	}
	return text
}

// docInfo reads the document information dictionary. Best effort: a
// document without an Info dict yields only the encrypted entry.
func docInfo(r *pdf.Reader, encrypted bool) map[string]string {
	md := map[string]string{"encrypted": fmt.Sprintf("%t", encrypted)}

	defer func() { _ = recover() }()
	info := r.Trailer().Key("Info")
	if info.IsNull() {
		return md
	}
	for _, key := range []string{"Title", "Author", "Subject", "Creator", "Producer"} {
		if v := info.Key(key); v.Kind() == pdf.String {
			if text := strings.TrimSpace(v.Text()); text != "" {
				md[strings.ToLower(key)] = text
			}
		}
	}
	return md
}
