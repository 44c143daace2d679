package ingestion

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docxArchive(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf.Bytes()
}

const sampleDocumentXML = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
    <w:p><w:r><w:t>Python developer, </w:t></w:r><w:r><w:t>4 years</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestExtractText_Docx(t *testing.T) {
	data := docxArchive(t, sampleDocumentXML)

	text, err := ExtractText(bytes.NewReader(data),
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document")

	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
	// Runs within one paragraph concatenate without separators
	assert.Contains(t, text, "Python developer, 4 years")
}

func TestExtractText_DocxParagraphBoundaries(t *testing.T) {
	data := docxArchive(t, sampleDocumentXML)

	text, err := ExtractText(bytes.NewReader(data),
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document")

	require.NoError(t, err)
	lines := strings.Split(text, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Jane Doe", lines[0])
}

func TestExtractText_DocxNotAZip(t *testing.T) {
	_, err := ExtractText(strings.NewReader("plain bytes"),
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	assert.Error(t, err)
}

func TestExtractText_DocxMissingDocumentBody(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	file, err := w.Create("other.xml")
	require.NoError(t, err)
	_, err = file.Write([]byte("<x/>"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = ExtractText(bytes.NewReader(buf.Bytes()),
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	assert.Error(t, err)
}

func TestExtractText_HTML(t *testing.T) {
	html := `<html><body><nav>menu</nav><p>Python developer</p><script>x()</script></body></html>`

	text, err := ExtractText(strings.NewReader(html), "text/html")

	require.NoError(t, err)
	assert.Contains(t, text, "Python developer")
	assert.NotContains(t, text, "menu")
	assert.NotContains(t, text, "x()")
}

func TestExtractText_PlainTextPassthrough(t *testing.T) {
	text, err := ExtractText(strings.NewReader("  plain resume text  "), "text/plain")

	require.NoError(t, err)
	assert.Equal(t, "plain resume text", text)
}

func TestExtractText_InvalidUTF8Dropped(t *testing.T) {
	input := append([]byte("resume"), 0xff, 0xfe)
	input = append(input, []byte(" text")...)

	text, err := ExtractText(bytes.NewReader(input), "text/plain")

	require.NoError(t, err)
	assert.Equal(t, "resume text", text)
}

func TestExtractText_MalformedPDF(t *testing.T) {
	_, err := ExtractText(strings.NewReader("not a pdf"), "application/pdf")
	assert.Error(t, err)
}

func TestCleanText_NormalizesWhitespace(t *testing.T) {
	input := "Name:   Jane\r\n\r\n\r\n\r\nSkills:  Python\t\n"

	out := CleanText(input)

	assert.Equal(t, "Name: Jane\n\nSkills: Python", out)
}

func TestCleanText_PreservesIndentation(t *testing.T) {
	out := CleanText("Experience:\n  Acme   Corp\n")
	assert.Equal(t, "Experience:\n  Acme Corp", out)
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n\t  "))
}
