package controller

import (
	"supernote-be/internal/dto"
	"supernote-be/internal/pkg/serverutils"
	"supernote-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAiController interface {
	RegisterRoutes(r fiber.Router)
	FormatText(ctx *fiber.Ctx) error
	Summarize(ctx *fiber.Ctx) error
	EnhanceNote(ctx *fiber.Ctx) error
	FactCheck(ctx *fiber.Ctx) error
	GenerateQuiz(ctx *fiber.Ctx) error
	GetQuiz(ctx *fiber.Ctx) error
}

type aiController struct {
	aiService service.IAiService
}

func NewAiController(aiService service.IAiService) IAiController {
	return &aiController{
		aiService: aiService,
	}
}

func (c *aiController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ai/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("format-text", c.FormatText)
	h.Post("summarize", c.Summarize)
	h.Post("enhance-note", c.EnhanceNote)
	h.Post("fact-check", c.FactCheck)
	h.Post("generate-quiz", c.GenerateQuiz)
	h.Get("quiz/:id", c.GetQuiz)
}

func (c *aiController) FormatText(ctx *fiber.Ctx) error {
	var req dto.FormatTextRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.aiService.FormatText(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success format text", res))
}

func (c *aiController) Summarize(ctx *fiber.Ctx) error {
	var req dto.SummarizeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.aiService.Summarize(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success summarize text", res))
}

func (c *aiController) EnhanceNote(ctx *fiber.Ctx) error {
	var req dto.EnhanceNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.aiService.EnhanceNote(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success enhance note", res))
}

func (c *aiController) FactCheck(ctx *fiber.Ctx) error {
	var req dto.FactCheckRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.aiService.FactCheck(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fact-check text", res))
}

func (c *aiController) GenerateQuiz(ctx *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.aiService.GenerateQuiz(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate quiz", res))
}

func (c *aiController) GetQuiz(ctx *fiber.Ctx) error {
	res, err := c.aiService.GetQuiz(ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get quiz", res))
}
