package ingestion

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dslipak/pdf"
)

// extractPDFText concatenates the plain text of every page with newlines.
// Pages that cannot be decoded contribute an empty string; only a document
// that cannot be opened at all is an error.
func extractPDFText(data []byte) (text string, err error) {
	// The pdf library panics on some malformed files; treat that the same
	// as an unreadable document.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("failed to parse PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, pageText)
	}

	return strings.Join(pages, "\n"), nil
}
