// Package ingestion turns uploaded résumé documents into plain UTF-8 text.
// Dispatch is by declared MIME type; every branch tolerates malformed input
// by degrading to partial or empty text rather than failing the upload.
package ingestion

import (
	"bytes"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/fetch"
)

// MIME type prefixes recognized by ExtractText.
const (
	mimePDF  = "application/pdf"
	mimeHTML = "text/html"
)

// ExtractText reads a document and returns its plain text based on the
// declared content type:
//
//   - application/pdf: page text concatenated with newlines; an unreadable
//     or blank page contributes an empty string, never an error
//   - "document"-family types (DOCX and friends): paragraph text joined
//     with newlines
//   - text/html: tag-stripped visible text
//   - anything else: raw bytes decoded with invalid-UTF-8 tolerance
func ExtractText(r io.Reader, contentType string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	ct := strings.ToLower(contentType)
	switch {
	case strings.HasPrefix(ct, mimePDF):
		return extractPDFText(data)
	case strings.Contains(ct, "document"):
		return extractDocxText(data)
	case strings.HasPrefix(ct, mimeHTML):
		return fetch.HTMLToText(string(data))
	default:
		return decodeLossy(data), nil
	}
}

// decodeLossy converts raw bytes to a string, dropping invalid UTF-8
// sequences instead of erroring on bad encodings.
func decodeLossy(data []byte) string {
	return strings.ToValidUTF8(string(bytes.TrimSpace(data)), "")
}
