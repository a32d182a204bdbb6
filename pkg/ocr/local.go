package ocr

import (
	"context"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/otiai10/gosseract/v2"
)

// LocalEngine extracts text without any network call: embedded text layers
// for PDFs, Tesseract for images.
type LocalEngine struct{}

var _ Engine = &LocalEngine{}

func NewLocalEngine() *LocalEngine {
	return &LocalEngine{}
}

func (e *LocalEngine) Name() string {
	return "local"
}

func (e *LocalEngine) ExtractText(ctx context.Context, path string) (string, error) {
	switch {
	case IsPDF(path):
		return e.extractPDF(path)
	case IsImage(path):
		return e.extractImage(path)
	default:
		return "", newStageError(StageExtract, "unsupported file type for local extraction", nil)
	}
}

func (e *LocalEngine) extractPDF(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", newStageError(StageExtract, "failed to open PDF", err)
	}
	defer f.Close()

	var pages []string
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", newStageError(StageExtract, "failed to read PDF page text", err)
		}
		pages = append(pages, text)
	}

	return strings.TrimSpace(strings.Join(pages, PageSeparator)), nil
}

func (e *LocalEngine) extractImage(path string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetImage(path); err != nil {
		return "", newStageError(StageOCR, "failed to load image into tesseract", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", newStageError(StageOCR, "tesseract recognition failed", err)
	}

	return strings.TrimSpace(text), nil
}
