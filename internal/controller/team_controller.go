package controller

import (
	"supernote-be/internal/dto"
	"supernote-be/internal/pkg/serverutils"
	"supernote-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITeamController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	AddMember(ctx *fiber.Ctx) error
	ListMembers(ctx *fiber.Ctx) error
	RemoveMember(ctx *fiber.Ctx) error
}

type teamController struct {
	teamService service.ITeamService
}

func NewTeamController(teamService service.ITeamService) ITeamController {
	return &teamController{
		teamService: teamService,
	}
}

func (c *teamController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/team/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":id", c.Get)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Post(":id/members", c.AddMember)
	h.Get(":id/members", c.ListMembers)
	h.Delete(":id/members/:userId", c.RemoveMember)
}

func (c *teamController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateTeamRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.teamService.Create(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create team", res))
}

func (c *teamController) List(ctx *fiber.Ctx) error {
	res, err := c.teamService.List(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get teams", res))
}

func (c *teamController) Get(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.BadRequest("Invalid team id")
	}

	res, err := c.teamService.Get(ctx.Context(), currentUserId(ctx), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get team", res))
}

func (c *teamController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.BadRequest("Invalid team id")
	}

	var req dto.UpdateTeamRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.teamService.Update(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update team", res))
}

func (c *teamController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.BadRequest("Invalid team id")
	}

	if err := c.teamService.Delete(ctx.Context(), currentUserId(ctx), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete team", nil))
}

func (c *teamController) AddMember(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.BadRequest("Invalid team id")
	}

	var req dto.AddTeamMemberRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.TeamId = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.teamService.AddMember(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success add member", res))
}

func (c *teamController) ListMembers(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.BadRequest("Invalid team id")
	}

	res, err := c.teamService.ListMembers(ctx.Context(), currentUserId(ctx), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get members", res))
}

func (c *teamController) RemoveMember(ctx *fiber.Ctx) error {
	teamId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.BadRequest("Invalid team id")
	}
	memberUserId, err := uuid.Parse(ctx.Params("userId"))
	if err != nil {
		return serverutils.BadRequest("Invalid user id")
	}

	if err := c.teamService.RemoveMember(ctx.Context(), currentUserId(ctx), teamId, memberUserId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success remove member", nil))
}
