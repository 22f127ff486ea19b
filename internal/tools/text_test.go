package tools

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writePDF writes a minimal PDF with n empty pages and a correct xref table.
func writePDF(t *testing.T, n int) string {
	t.Helper()
	var b bytes.Buffer
	var offsets []int
	obj := func(body string) {
		offsets = append(offsets, b.Len())
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	b.WriteString("%PDF-1.4\n")
	obj("<< /Type /Catalog /Pages 2 0 R >>")
	kids := make([]string, n)
	for i := range kids {
		kids[i] = fmt.Sprintf("%d 0 R", i+3)
	}
	obj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), n))
	for i := 0; i < n; i++ {
		obj("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << >> >>")
	}

	xref := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n0000000000 65535 f \n", len(offsets)+1)
	for _, off := range offsets {
		fmt.Fprintf(&b, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%EOF\n", len(offsets)+1, xref)

	p := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, os.WriteFile(p, b.Bytes(), 0o644))
	return p
}

func TestPdfPageCount(t *testing.T) {
	n, err := pdfPageCount(writePDF(t, 3))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestPageTextsVerifiesPageCount(t *testing.T) {
	doc := writePDF(t, 2)

	tests := []struct {
		name    string
		text    string
		wantLog string
	}{
		{name: "split matches", text: "one\ftwo\f"},
		{name: "split short", text: "one\f", wantLog: "page split does not match pdf page count"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			r := &fakeRunner{stdout: map[string][]byte{"-layout": []byte(tt.text)}}
			e := NewExtractorWithRunner(Config{VerifyPageCount: true}, r, bufferLogger(&logs))

			_, err := e.PageTexts(context.Background(), doc)
			require.NoError(t, err)
			assert.NotContains(t, logs.String(), "page count check skipped")
			if tt.wantLog == "" {
				assert.Empty(t, logs.String())
			} else {
				assert.Contains(t, logs.String(), tt.wantLog)
				assert.Contains(t, logs.String(), `"pdf_pages":2`)
			}
		})
	}
}

func TestPageTextsPageCountUnreadable(t *testing.T) {
	var logs bytes.Buffer
	bad := filepath.Join(t.TempDir(), "bad.pdf")
	require.NoError(t, os.WriteFile(bad, []byte("not a pdf"), 0o644))

	r := &fakeRunner{stdout: map[string][]byte{"-layout": []byte("one\f")}}
	e := NewExtractorWithRunner(Config{VerifyPageCount: true}, r, bufferLogger(&logs))

	pages, err := e.PageTexts(context.Background(), bad)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", ""}, pages)
	assert.Contains(t, logs.String(), "page count check skipped")
}
