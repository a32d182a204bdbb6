package ocr

import (
	"context"
)

// Pipeline selects an extraction engine per request and applies the
// degradation policy: when the vision backend has no credentials, requests
// fall back to the local engine, which then only accepts PDFs (the local
// image path depends on a tesseract install we cannot assume).
type Pipeline struct {
	local  Engine
	vision Engine // nil when credentials are absent
}

func NewPipeline(local, vision Engine) *Pipeline {
	return &Pipeline{
		local:  local,
		vision: vision,
	}
}

// VisionAvailable reports whether the remote OCR backend is configured.
func (p *Pipeline) VisionAvailable() bool {
	return p.vision != nil
}

// ExtractText runs one document through the requested engine and reports
// which engine produced the text. requested is "vision" or "local"; anything
// else defaults to vision when available. The whole request aborts on the
// first unrecoverable error; no partial results are returned.
func (p *Pipeline) ExtractText(ctx context.Context, path, requested string) (string, string, error) {
	if !IsPDF(path) && !IsImage(path) {
		return "", "", newStageError(StageExtract, "unsupported file type: only pdf, png, jpg, jpeg are accepted", nil)
	}

	engine := p.vision
	if requested == "local" || engine == nil {
		engine = p.local
		if p.vision == nil && requested != "local" && !IsPDF(path) {
			// Transparent fallback is documented as PDF-only.
			return "", "", newStageError(StageExtract, "vision OCR is not configured; fallback extraction accepts PDF only", nil)
		}
	}

	text, err := engine.ExtractText(ctx, path)
	if err != nil {
		return "", engine.Name(), err
	}
	return text, engine.Name(), nil
}
