// Package extract turns uploaded documents into plain text.
package extract

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// TextExtractor produces plain text from a binary document stream.
type TextExtractor interface {
	ExtractText(r io.Reader) (string, error)
}

// Nop is used when PDF extraction is disabled; it always yields "".
type Nop struct{}

func (Nop) ExtractText(io.Reader) (string, error) { return "", nil }

// PDF extracts the text of every page, pages separated by a blank line.
// The underlying parser panics on malformed input; that surfaces as an error.
type PDF struct{}

func (PDF) ExtractText(r io.Reader) (text string, err error) {
	defer func() {
		if p := recover(); p != nil {
			text, err = "", fmt.Errorf("pdf: malformed document: %v", p)
		}
	}()

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("pdf: read: %w", err)
	}

	doc, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("pdf: open: %w", err)
	}

	pages := make([]string, 0, doc.NumPage())
	for i := 1; i <= doc.NumPage(); i++ {
		p := doc.Page(i)
		if p.V.IsNull() {
			continue
		}
		pageText, err := p.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("pdf: page %d: %w", i, err)
		}
		pages = append(pages, pageText)
	}
	return strings.Join(pages, "\n\n"), nil
}
