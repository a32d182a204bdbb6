package ocr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeMinimalPDF builds a single-page PDF containing the given text, with a
// correct xref table so any conforming reader accepts it.
func writeMinimalPDF(t *testing.T, dir, text string) string {
	t.Helper()

	content := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefStart := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xrefStart)

	path := filepath.Join(dir, "sample.pdf")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	return path
}

func TestLocalEngineExtractsPDFText(t *testing.T) {
	path := writeMinimalPDF(t, t.TempDir(), "Hello World")

	engine := NewLocalEngine()
	text, err := engine.ExtractText(context.Background(), path)
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}

	if !strings.Contains(text, "Hello World") {
		t.Errorf("extracted text %q does not contain %q", text, "Hello World")
	}
}

func TestLocalEngineRejectsUnknownType(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("plain text"), 0o644); err != nil {
		t.Fatal(err)
	}

	engine := NewLocalEngine()
	_, err := engine.ExtractText(context.Background(), path)

	var stageErr *StageError
	if !errors.As(err, &stageErr) {
		t.Fatalf("want *StageError, got %T: %v", err, err)
	}
	if stageErr.Stage != StageExtract {
		t.Errorf("Stage = %q, want %q", stageErr.Stage, StageExtract)
	}
}

func TestPipelineFallbackRestrictsToPDF(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "page.png")
	if err := os.WriteFile(imgPath, []byte{0x89, 'P', 'N', 'G'}, 0o644); err != nil {
		t.Fatal(err)
	}

	pipeline := NewPipeline(NewLocalEngine(), nil)

	_, _, err := pipeline.ExtractText(context.Background(), imgPath, "vision")
	var stageErr *StageError
	if !errors.As(err, &stageErr) {
		t.Fatalf("want *StageError, got %T: %v", err, err)
	}
	if stageErr.Stage != StageExtract {
		t.Errorf("Stage = %q, want %q", stageErr.Stage, StageExtract)
	}

	// PDFs still work through the transparent fallback.
	pdfPath := writeMinimalPDF(t, dir, "Fallback works")
	text, engine, err := pipeline.ExtractText(context.Background(), pdfPath, "vision")
	if err != nil {
		t.Fatalf("fallback extraction failed: %v", err)
	}
	if !strings.Contains(text, "Fallback works") {
		t.Errorf("extracted text %q missing expected content", text)
	}
	if engine != "local" {
		t.Errorf("engine = %q, want %q", engine, "local")
	}
}
