package ingestion

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// docxDocumentPath is where the main document body lives inside the archive.
const docxDocumentPath = "word/document.xml"

// extractDocxText joins the text of every paragraph in a DOCX body with
// newlines. A DOCX file is a zip archive; the paragraph text is the character
// data of w:t elements, with w:p element boundaries marking paragraphs.
func extractDocxText(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX archive: %w", err)
	}

	var docFile *zip.File
	for _, f := range archive.File {
		if f.Name == docxDocumentPath {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", fmt.Errorf("DOCX archive has no %s", docxDocumentPath)
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", fmt.Errorf("failed to read DOCX document body: %w", err)
	}
	defer func() { _ = rc.Close() }()

	return docxParagraphs(rc)
}

// docxParagraphs streams the document XML and collects paragraph text.
func docxParagraphs(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var paragraphs []string
	var current strings.Builder
	inText := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse DOCX XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}

	if current.Len() > 0 {
		paragraphs = append(paragraphs, current.String())
	}

	return strings.Join(paragraphs, "\n"), nil
}
