package ocr

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"os"
	"strings"

	"supernote-be/pkg/llm"
)

// visionPrompt instructs the model to answer with a single-key JSON object.
// The RAW_TEXT markers carry any text we could extract locally as an anchor.
const visionPrompt = "Below is an image of a document page along with its dimensions. " +
	"Simply return the markdown representation of this document, presenting tables in markdown format as they naturally appear.\n" +
	"If the document contains images, use a placeholder like dummy.png for each image.\n" +
	"Your final output must be in JSON format with a single key `natural_text` containing the response.\n" +
	"RAW_TEXT_START\n%s\nRAW_TEXT_END"

// VisionEngine submits the document inline to a multimodal completion API and
// expects a {"natural_text": ...} JSON answer. A non-JSON answer is used
// verbatim: that is degradation, not an error.
type VisionEngine struct {
	provider llm.VisionProvider
	anchor   *LocalEngine
}

var _ Engine = &VisionEngine{}

func NewVisionEngine(provider llm.VisionProvider) *VisionEngine {
	return &VisionEngine{
		provider: provider,
		anchor:   NewLocalEngine(),
	}
}

func (e *VisionEngine) Name() string {
	return "vision"
}

func (e *VisionEngine) ExtractText(ctx context.Context, path string) (string, error) {
	mime := MimeType(path)
	if mime == "" {
		return "", newStageError(StageExtract, "unsupported file type for vision OCR", nil)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", newStageError(StageExtract, "failed to read uploaded file", err)
	}

	// Anchor text improves recognition; missing anchors are fine.
	anchorText := ""
	if IsPDF(path) {
		if text, err := e.anchor.ExtractText(ctx, path); err == nil {
			anchorText = text
		}
	}

	prompt := strings.Replace(visionPrompt, "%s", anchorText, 1)
	dataB64 := base64.StdEncoding.EncodeToString(raw)

	response, err := e.provider.GenerateVision(ctx, prompt, mime, dataB64, llm.WithTemperature(0.1))
	if err != nil {
		return "", newStageError(StageOCR, "vision OCR call failed", err)
	}

	return decodeNaturalText(response), nil
}

// decodeNaturalText pulls the natural_text field out of the model's JSON
// answer, falling back to the raw response when decoding fails.
func decodeNaturalText(response string) string {
	cleaned := strings.TrimSpace(response)
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")

	var payload struct {
		NaturalText string `json:"natural_text"`
	}
	if err := json.Unmarshal([]byte(cleaned), &payload); err == nil && payload.NaturalText != "" {
		return strings.TrimSpace(payload.NaturalText)
	}
	return strings.TrimSpace(response)
}
