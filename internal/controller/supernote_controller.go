package controller

import (
	"supernote-be/internal/dto"
	"supernote-be/internal/pkg/serverutils"
	"supernote-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISupernoteController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type supernoteController struct {
	supernoteService service.ISupernoteService
}

func NewSupernoteController(supernoteService service.ISupernoteService) ISupernoteController {
	return &supernoteController{
		supernoteService: supernoteService,
	}
}

func (c *supernoteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/supernote/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Delete(":id", c.Delete)
}

func (c *supernoteController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateSupernoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	doc, err := c.supernoteService.Create(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create supernote", doc))
}

func (c *supernoteController) List(ctx *fiber.Ctx) error {
	docs, err := c.supernoteService.List(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get supernotes", docs))
}

func (c *supernoteController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.BadRequest("Invalid supernote id")
	}

	if err := c.supernoteService.Delete(ctx.Context(), currentUserId(ctx), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete supernote", nil))
}
